// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lightweight DDD Contributors

package virtual

import (
	"fmt"

	"github.com/samber/oops"
)

// Property is the hydration state of one entity field. It is a value type:
// resolve and Update return a new Property and leave the receiver untouched.
//
// State machine per slot lineage:
//
//	UNRESOLVED --resolve(v)--> RESOLVED(changed=false)
//	UNRESOLVED --Update(v)---> RESOLVED(changed=true)
//	RESOLVED   --Update(v)---> RESOLVED(changed=true)
//	RESOLVED   --resolve(v)--> ErrAlreadyResolved
//
// Hydration (resolve) is deliberately package-private: infrastructure code
// populates slots through Builder.WithField, which is the only exported
// wrapper around it. Domain code uses Update, which is always permitted.
type Property[T any] struct {
	id       Identity
	policy   Policy[T]
	value    T
	resolved bool
	changed  bool
}

// Unresolved declares a property slot for the given entity kind and field.
// The slot starts with no value; reading it before hydration or mutation
// fails with ErrUnresolvedAccess. A nil policy defaults to Required.
func Unresolved[T any](entity, property string, policy Policy[T]) (Property[T], error) {
	id, err := NewIdentity(entity, property)
	if err != nil {
		return Property[T]{}, err
	}
	if policy == nil {
		policy = Required[T]()
	}
	return Property[T]{id: id, policy: policy}, nil
}

// MustUnresolved is like Unresolved but panics on invalid identifiers.
// Intended for entity-kind declarations where the names are literals.
func MustUnresolved[T any](entity, property string, policy Policy[T]) Property[T] {
	p, err := Unresolved[T](entity, property, policy)
	if err != nil {
		panic(err)
	}
	return p
}

// resolve populates the slot from a read path. It succeeds at most once per
// slot lineage: a second resolve on an already-resolved property fails with
// ErrAlreadyResolved regardless of the value. The policy runs first; a
// rejected value fails with ErrInvalidValue and no transition occurs.
//
// Hydration is not a domain change: the returned property reports
// Changed() == false.
func (p Property[T]) resolve(value T) (Property[T], error) {
	if err := p.check(value); err != nil {
		return p, err
	}
	if p.resolved {
		return p, oops.
			Code(CodeAlreadyResolved).
			With("entity", p.id.Entity()).
			With("property", p.id.Property()).
			Wrap(ErrAlreadyResolved)
	}
	next := p
	next.value = value
	next.resolved = true
	next.changed = false
	return next, nil
}

// Update changes the slot's value from domain logic. It is permitted in any
// state and any number of times; the policy runs first, exactly as on the
// hydration path. The returned property reports Changed() == true.
func (p Property[T]) Update(value T) (Property[T], error) {
	if err := p.check(value); err != nil {
		return p, err
	}
	next := p
	next.value = value
	next.resolved = true
	next.changed = true
	return next, nil
}

// Value returns the property's value, or ErrUnresolvedAccess when the slot
// was never hydrated or mutated. The error names the entity and field so a
// projection gap is attributable from several layers up.
func (p Property[T]) Value() (T, error) {
	if !p.resolved {
		var zero T
		return zero, oops.
			Code(CodeUnresolvedAccess).
			With("entity", p.id.Entity()).
			With("property", p.id.Property()).
			Wrap(ErrUnresolvedAccess)
	}
	return p.value, nil
}

// Resolved reports whether the slot holds a value.
func (p Property[T]) Resolved() bool { return p.resolved }

// Changed reports whether the value was set by domain logic rather than
// hydration. Changed implies Resolved.
func (p Property[T]) Changed() bool { return p.changed }

// Identity returns the slot's entity/field identity.
func (p Property[T]) Identity() Identity { return p.id }

// String describes the slot state for diagnostics without exposing the value.
func (p Property[T]) String() string {
	switch {
	case !p.resolved:
		return fmt.Sprintf("%s (unresolved)", p.id)
	case p.changed:
		return fmt.Sprintf("%s (changed)", p.id)
	default:
		return fmt.Sprintf("%s (resolved)", p.id)
	}
}

// check guards transitions on declared slots and runs the validation policy.
func (p Property[T]) check(value T) error {
	if p.id.IsZero() {
		return oops.
			Code(CodeInvalidIdentity).
			Wrap(ErrInvalidIdentity)
	}
	if err := p.policy.Validate(value); err != nil {
		return oops.
			Code(CodeInvalidValue).
			With("entity", p.id.Entity()).
			With("property", p.id.Property()).
			With("reason", err.Error()).
			Wrap(ErrInvalidValue)
	}
	return nil
}
