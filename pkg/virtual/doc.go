// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lightweight DDD Contributors

// Package virtual implements partially hydrated entity properties.
//
// A Property starts unresolved and is populated through one of two paths
// with different repeatability contracts: hydration (via a Builder, used by
// read/projection infrastructure, at most once per property) and mutation
// (via Update, used by domain logic, repeatable). Reading an unresolved
// property fails instead of returning a zero value, so a use case that
// forgot to request a field in its projection surfaces immediately rather
// than corrupting state.
//
// Every transition returns a new Property value; instances are never
// mutated in place.
package virtual
