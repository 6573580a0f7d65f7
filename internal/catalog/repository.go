// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lightweight DDD Contributors

package catalog

import (
	"context"
	"errors"

	"github.com/oklog/ulid/v2"
)

// ErrNotFound indicates no widget exists with the requested ID.
var ErrNotFound = errors.New("widget not found")

// ErrDuplicate indicates a widget with the same ID already exists.
var ErrDuplicate = errors.New("widget already exists")

// ErrNoChanges indicates a save was requested for a widget with no changed fields.
var ErrNoChanges = errors.New("widget has no changed fields")

// Repository manages widget persistence.
type Repository interface {
	// Get retrieves a widget hydrated with exactly the projected fields.
	// Returns ErrNotFound if the widget does not exist.
	Get(ctx context.Context, id ulid.ULID, projection Projection) (*Widget, error)

	// Create persists a new, fully hydrated widget.
	// Returns ErrDuplicate if the ID is already taken.
	Create(ctx context.Context, w *Widget) error

	// Save persists the widget's changed fields only. Fields that were
	// hydrated but never mutated are left alone, so a partial projection
	// can never clobber columns it did not load.
	// Returns ErrNoChanges if nothing was changed and ErrNotFound if the
	// widget does not exist.
	Save(ctx context.Context, w *Widget) error

	// List retrieves all widgets ordered by ID, each hydrated with exactly
	// the projected fields.
	List(ctx context.Context, projection Projection) ([]*Widget, error)
}
