// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lightweight DDD Contributors

package virtual

import "github.com/samber/oops"

// Builder hydrates the property slots of an args struct A, one slot at most
// once, and yields the struct by value on Build. It is the only exported
// path to the hydration transition; projections that double-supply a field
// get ErrAlreadyResolved instead of a silent overwrite.
//
// A Builder is a thin accumulator, not a validator of completeness: slots
// never passed to WithField stay unresolved, which is the point of partial
// hydration. The first failure is sticky and is returned again by Build.
//
// Builders are not safe for concurrent use.
type Builder[A any] struct {
	args *A
	err  error
}

// NewBuilder wraps an args struct whose slots are all unresolved. The struct
// is hydrated in place through WithField and snapshotted by Build.
func NewBuilder[A any](args *A) *Builder[A] {
	return &Builder[A]{args: args}
}

// WithField hydrates one slot of the builder's args struct. The slot pointer
// must address a field of the struct passed to NewBuilder. Policy rejections
// (ErrInvalidValue) and repeated hydration (ErrAlreadyResolved) are returned
// unchanged and recorded so Build fails too.
func WithField[A, T any](b *Builder[A], slot *Property[T], value T) error {
	next, err := slot.resolve(value)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return err
	}
	*slot = next
	return nil
}

// Build returns the hydrated args struct by value, or the first error
// recorded by WithField. Unresolved slots are not an error.
func (b *Builder[A]) Build() (A, error) {
	if b.err != nil {
		var zero A
		return zero, b.err
	}
	if b.args == nil {
		var zero A
		return zero, oops.Code(CodeInvalidIdentity).Errorf("builder has no args struct")
	}
	return *b.args, nil
}

// Err returns the first error recorded by WithField, if any.
func (b *Builder[A]) Err() error {
	return b.err
}

// Apply runs Update on the slot and stores the new property back. It is the
// setter half of the virtual-entity accessor pattern: entity setters call
// Apply, entity getters call Value.
func Apply[T any](slot *Property[T], value T) error {
	next, err := slot.Update(value)
	if err != nil {
		return err
	}
	*slot = next
	return nil
}
