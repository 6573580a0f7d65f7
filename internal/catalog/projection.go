// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lightweight DDD Contributors

package catalog

import (
	"fmt"
	"strings"
)

// Projection is the set of widget fields a use case wants hydrated. Fields
// outside the projection stay unresolved; reading them through the entity
// fails rather than returning zero values.
type Projection uint8

// Widget fields selectable in a projection.
const (
	FieldName Projection = 1 << iota
	FieldNote
	FieldPrice

	// ProjectionAll hydrates every widget field.
	ProjectionAll = FieldName | FieldNote | FieldPrice
)

// Has reports whether the projection includes the given field.
func (p Projection) Has(field Projection) bool { return p&field != 0 }

// IsEmpty reports whether the projection selects no fields.
func (p Projection) IsEmpty() bool { return p == 0 }

// String lists the selected fields, e.g. "name,price".
func (p Projection) String() string {
	var fields []string
	if p.Has(FieldName) {
		fields = append(fields, "name")
	}
	if p.Has(FieldNote) {
		fields = append(fields, "note")
	}
	if p.Has(FieldPrice) {
		fields = append(fields, "price")
	}
	return strings.Join(fields, ",")
}

// ParseProjection builds a projection from field names, as supplied on a
// command line. An empty list selects all fields.
func ParseProjection(fields []string) (Projection, error) {
	if len(fields) == 0 {
		return ProjectionAll, nil
	}
	var p Projection
	for _, f := range fields {
		switch strings.ToLower(strings.TrimSpace(f)) {
		case "name":
			p |= FieldName
		case "note":
			p |= FieldNote
		case "price":
			p |= FieldPrice
		default:
			return 0, fmt.Errorf("unknown widget field %q", f)
		}
	}
	return p, nil
}
