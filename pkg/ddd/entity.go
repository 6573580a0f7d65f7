// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lightweight DDD Contributors

// Package ddd provides the base building blocks shared by domain entities:
// ULID-backed identity with equality, and domain event markers with an
// embeddable recorder for aggregate roots. Event dispatch and delivery are
// out of scope; this package only defines the contract and the accumulation.
package ddd

import (
	"errors"

	"github.com/oklog/ulid/v2"
)

// ErrZeroID indicates an entity was given a zero identity.
var ErrZeroID = errors.New("entity id cannot be zero")

// Entity carries the identity of a domain entity. Embed it in concrete
// entity types; equality is by identity, never by field values.
type Entity struct {
	id ulid.ULID
}

// NewEntity creates an Entity with a freshly generated ULID.
func NewEntity() Entity {
	return Entity{id: ulid.Make()}
}

// NewEntityWithID creates an Entity with the provided identity, as when
// rehydrating from storage.
func NewEntityWithID(id ulid.ULID) (Entity, error) {
	if id == (ulid.ULID{}) {
		return Entity{}, ErrZeroID
	}
	return Entity{id: id}, nil
}

// ID returns the entity's identity.
func (e Entity) ID() ulid.ULID { return e.id }

// Identified is anything with a ULID identity.
type Identified interface {
	ID() ulid.ULID
}

// Equal reports whether two entities are the same entity, by identity.
// A zero-identity entity equals nothing, itself included.
func (e Entity) Equal(other Identified) bool {
	if other == nil || e.id == (ulid.ULID{}) {
		return false
	}
	return e.id == other.ID()
}
