// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lightweight DDD Contributors

package virtual

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests exercise the package-private hydration transition directly.
// Callers outside the package go through Builder.WithField, covered in
// builder_test.go.

func TestUnresolved(t *testing.T) {
	t.Run("starts unresolved and unchanged", func(t *testing.T) {
		p, err := Unresolved[string]("Widget", "Name", Required[string]())
		require.NoError(t, err)
		assert.False(t, p.Resolved())
		assert.False(t, p.Changed())
		assert.Equal(t, "Widget.Name", p.Identity().String())
	})

	t.Run("empty entity name fails", func(t *testing.T) {
		_, err := Unresolved[string]("", "Name", nil)
		require.ErrorIs(t, err, ErrInvalidIdentity)
	})

	t.Run("blank property name fails", func(t *testing.T) {
		_, err := Unresolved[string]("Widget", "   ", nil)
		require.ErrorIs(t, err, ErrInvalidIdentity)
	})

	t.Run("nil policy defaults to required", func(t *testing.T) {
		p, err := Unresolved[*string]("Widget", "Name", nil)
		require.NoError(t, err)
		_, err = p.Update(nil)
		require.ErrorIs(t, err, ErrInvalidValue)
	})
}

func TestProperty_Value_Unresolved(t *testing.T) {
	p := MustUnresolved[string]("Widget", "Name", Required[string]())

	v, err := p.Value()
	require.ErrorIs(t, err, ErrUnresolvedAccess)
	assert.Empty(t, v)
	assert.Contains(t, err.Error(), "property accessed before being resolved")
}

func TestProperty_Resolve(t *testing.T) {
	t.Run("resolve then value returns supplied value", func(t *testing.T) {
		p := MustUnresolved[string]("Widget", "Name", Required[string]())

		resolved, err := p.resolve("Gadget")
		require.NoError(t, err)

		v, err := resolved.Value()
		require.NoError(t, err)
		assert.Equal(t, "Gadget", v)
		assert.True(t, resolved.Resolved())
		assert.False(t, resolved.Changed(), "hydration is not a domain change")
	})

	t.Run("resolve is at most once", func(t *testing.T) {
		p := MustUnresolved[string]("Widget", "Name", Required[string]())

		resolved, err := p.resolve("Gadget")
		require.NoError(t, err)

		_, err = resolved.resolve("Widget2")
		require.ErrorIs(t, err, ErrAlreadyResolved)
	})

	t.Run("second resolve fails even after update", func(t *testing.T) {
		p := MustUnresolved[string]("Widget", "Name", Required[string]())

		resolved, err := p.resolve("Gadget")
		require.NoError(t, err)
		updated, err := resolved.Update("Gizmo")
		require.NoError(t, err)

		_, err = updated.resolve("Widget2")
		require.ErrorIs(t, err, ErrAlreadyResolved)
	})

	t.Run("receiver is untouched by resolve", func(t *testing.T) {
		p := MustUnresolved[string]("Widget", "Name", Required[string]())

		_, err := p.resolve("Gadget")
		require.NoError(t, err)
		assert.False(t, p.Resolved(), "transitions must return a new value")
	})

	t.Run("rejected value does not transition", func(t *testing.T) {
		p := MustUnresolved[*string]("Widget", "Name", Required[*string]())

		same, err := p.resolve(nil)
		require.ErrorIs(t, err, ErrInvalidValue)
		assert.False(t, same.Resolved())

		// The slot is still hydratable after the failed attempt.
		name := "Gadget"
		resolved, err := same.resolve(&name)
		require.NoError(t, err)
		assert.True(t, resolved.Resolved())
	})

	t.Run("zero-value property cannot be resolved", func(t *testing.T) {
		var p Property[string]
		_, err := p.resolve("Gadget")
		require.ErrorIs(t, err, ErrInvalidIdentity)
	})
}

func TestProperty_Update(t *testing.T) {
	t.Run("update from unresolved marks changed", func(t *testing.T) {
		p := MustUnresolved[string]("Widget", "Name", Required[string]())

		updated, err := p.Update("Gadget")
		require.NoError(t, err)
		assert.True(t, updated.Resolved())
		assert.True(t, updated.Changed())

		v, err := updated.Value()
		require.NoError(t, err)
		assert.Equal(t, "Gadget", v)
	})

	t.Run("update is repeatable and last write wins", func(t *testing.T) {
		p := MustUnresolved[string]("Widget", "Name", Required[string]())

		first, err := p.Update("v1")
		require.NoError(t, err)
		second, err := first.Update("v2")
		require.NoError(t, err)

		v, err := second.Value()
		require.NoError(t, err)
		assert.Equal(t, "v2", v)
		assert.True(t, second.Changed())
	})

	t.Run("update succeeds on a resolved slot", func(t *testing.T) {
		p := MustUnresolved[string]("Widget", "Name", Required[string]())

		resolved, err := p.resolve("Gadget")
		require.NoError(t, err)
		updated, err := resolved.Update("Widget2")
		require.NoError(t, err)

		v, err := updated.Value()
		require.NoError(t, err)
		assert.Equal(t, "Widget2", v)
		assert.True(t, updated.Changed())
	})

	t.Run("rejected value does not transition", func(t *testing.T) {
		p := MustUnresolved[*string]("Widget", "Name", Required[*string]())

		same, err := p.Update(nil)
		require.ErrorIs(t, err, ErrInvalidValue)
		assert.False(t, same.Resolved())
		assert.False(t, same.Changed())
	})

	t.Run("zero-value property cannot be updated", func(t *testing.T) {
		var p Property[int]
		_, err := p.Update(42)
		require.ErrorIs(t, err, ErrInvalidIdentity)
	})
}

func TestProperty_NullablePolicy(t *testing.T) {
	t.Run("nil resolves on a nullable slot", func(t *testing.T) {
		p := MustUnresolved[*string]("Widget", "Note", Nullable[*string]())

		resolved, err := p.resolve(nil)
		require.NoError(t, err)

		v, err := resolved.Value()
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("nil rejected on a required slot", func(t *testing.T) {
		p := MustUnresolved[*string]("Widget", "Name", Required[*string]())

		_, err := p.resolve(nil)
		require.ErrorIs(t, err, ErrInvalidValue)
	})
}

func TestProperty_CustomPolicy(t *testing.T) {
	nonEmpty := PolicyFunc[string](func(v string) error {
		if v == "" {
			return errors.New("cannot be empty")
		}
		return nil
	})

	p := MustUnresolved[string]("Widget", "Name", nonEmpty)

	t.Run("rejected on both paths", func(t *testing.T) {
		_, err := p.resolve("")
		require.ErrorIs(t, err, ErrInvalidValue)
		_, err = p.Update("")
		require.ErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("accepted value passes", func(t *testing.T) {
		resolved, err := p.resolve("Gadget")
		require.NoError(t, err)
		v, err := resolved.Value()
		require.NoError(t, err)
		assert.Equal(t, "Gadget", v)
	})
}

func TestProperty_String(t *testing.T) {
	p := MustUnresolved[string]("Widget", "Name", Required[string]())
	assert.Equal(t, "Widget.Name (unresolved)", p.String())

	resolved, err := p.resolve("Gadget")
	require.NoError(t, err)
	assert.Equal(t, "Widget.Name (resolved)", resolved.String())

	updated, err := resolved.Update("Gizmo")
	require.NoError(t, err)
	assert.Equal(t, "Widget.Name (changed)", updated.String())
}
