// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lightweight DDD Contributors

// Package result provides a small success/failure wrapper for operations
// whose outcome is passed around as a value rather than returned directly.
// It is deliberately minimal; most code should return (T, error) as usual.
package result

// Result holds either a value or an error.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err wraps a failure.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// OK reports whether the result carries a value.
func (r Result[T]) OK() bool { return r.err == nil }

// Value returns the value, or the error for a failed result.
func (r Result[T]) Value() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// MustValue returns the value, panicking on a failed result. Use only where
// failure is a programming error.
func (r Result[T]) MustValue() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

// Error returns the error for a failed result, nil otherwise.
func (r Result[T]) Error() error { return r.err }
