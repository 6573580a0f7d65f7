// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lightweight DDD Contributors

package virtual

import "errors"

// ErrInvalidIdentity indicates an empty entity or property name was supplied
// when declaring a property slot.
var ErrInvalidIdentity = errors.New("entity and property names cannot be empty")

// ErrInvalidValue indicates a value was rejected by the property's validation policy.
var ErrInvalidValue = errors.New("value rejected by validation policy")

// ErrAlreadyResolved indicates a second hydration attempt on a property that
// was already hydrated. Hydration is at-most-once; further changes must go
// through Update.
var ErrAlreadyResolved = errors.New("property already resolved")

// ErrUnresolvedAccess indicates a read of a property that was never hydrated
// or mutated. The projection that produced the owning entity did not include
// a field the caller needed.
var ErrUnresolvedAccess = errors.New("property accessed before being resolved")

// Error codes attached to oops-wrapped failures for structured logging.
const (
	CodeInvalidIdentity  = "INVALID_IDENTITY"
	CodeInvalidValue     = "INVALID_VALUE"
	CodeAlreadyResolved  = "ALREADY_RESOLVED"
	CodeUnresolvedAccess = "UNRESOLVED_ACCESS"
)
