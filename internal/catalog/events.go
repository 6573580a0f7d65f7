// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lightweight DDD Contributors

package catalog

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// WidgetRepriced is raised when domain logic changes a widget's price.
type WidgetRepriced struct {
	WidgetID ulid.ULID
	OldPrice int64
	NewPrice int64
	At       time.Time
}

// EventName implements ddd.Event.
func (WidgetRepriced) EventName() string { return "widget.repriced" }

// OccurredAt implements ddd.Event.
func (e WidgetRepriced) OccurredAt() time.Time { return e.At }
