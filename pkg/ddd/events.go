// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lightweight DDD Contributors

package ddd

import "time"

// Event marks a domain event raised by an aggregate. Payloads are opaque to
// this package; dispatch is the owning application's concern.
type Event interface {
	// EventName identifies the event kind, e.g. "widget.repriced".
	EventName() string
	// OccurredAt is when the event was raised.
	OccurredAt() time.Time
}

// Recorder accumulates events raised during an aggregate operation until
// the application layer collects them. Embed it in aggregate roots.
//
// The zero value is ready to use. Recorder is not safe for concurrent use.
type Recorder struct {
	events []Event
}

// Record appends an event. Nil events are ignored.
func (r *Recorder) Record(e Event) {
	if e == nil {
		return
	}
	r.events = append(r.events, e)
}

// Events returns the recorded events in order. The returned slice is a copy.
func (r *Recorder) Events() []Event {
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// ClearEvents drops all recorded events, typically after dispatch.
func (r *Recorder) ClearEvents() {
	r.events = nil
}
