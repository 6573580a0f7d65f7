// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lightweight DDD Contributors

package virtual

import (
	"errors"
	"reflect"
)

// Policy decides whether a candidate value may populate a property slot.
// The same policy runs on both the hydration and the mutation path, so a
// value the domain may not set can never sneak in through a projection
// either.
//
// Policies are a capability of the property kind, chosen at declaration
// time, not a subtype of Property.
type Policy[T any] interface {
	Validate(value T) error
}

// PolicyFunc adapts a plain function to a Policy.
type PolicyFunc[T any] func(value T) error

// Validate implements Policy.
func (f PolicyFunc[T]) Validate(value T) error { return f(value) }

var errNilValue = errors.New("value is required but was nil")

// Required returns the policy that rejects nil values. For pointer,
// interface, map, slice, channel, and function types a nil value fails;
// zero values of non-nilable types (empty string, 0) are accepted.
func Required[T any]() Policy[T] {
	return PolicyFunc[T](func(value T) error {
		if isNil(value) {
			return errNilValue
		}
		return nil
	})
}

// Nullable returns the policy that accepts any value, nil included.
func Nullable[T any]() Policy[T] {
	return PolicyFunc[T](func(T) error { return nil })
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
