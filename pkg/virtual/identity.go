// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lightweight DDD Contributors

package virtual

import (
	"strings"

	"github.com/samber/oops"
)

// Identity names a property slot: the entity kind it belongs to and the
// field it represents. It exists for diagnostics; every failure produced by
// this package carries the identity of the offending slot.
type Identity struct {
	entity   string
	property string
}

// NewIdentity creates an Identity from an entity kind name and a field name.
// Both must be non-blank.
func NewIdentity(entity, property string) (Identity, error) {
	if strings.TrimSpace(entity) == "" || strings.TrimSpace(property) == "" {
		return Identity{}, oops.
			Code(CodeInvalidIdentity).
			With("entity", entity).
			With("property", property).
			Wrap(ErrInvalidIdentity)
	}
	return Identity{entity: entity, property: property}, nil
}

// Entity returns the entity kind name.
func (i Identity) Entity() string { return i.entity }

// Property returns the field name.
func (i Identity) Property() string { return i.property }

// IsZero reports whether the identity was never initialized.
func (i Identity) IsZero() bool { return i.entity == "" && i.property == "" }

// String returns "Entity.Property".
func (i Identity) String() string { return i.entity + "." + i.property }
