// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lightweight DDD Contributors

// Package catalog is the sample domain for the virtual property system: a
// widget catalog whose entities are partially hydrated by a storage
// projection and mutated by domain logic.
package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ivanhoe-k/lightweight-ddd/pkg/ddd"
	"github.com/ivanhoe-k/lightweight-ddd/pkg/virtual"
)

// EntityWidget is the entity kind name carried by widget property identities.
const EntityWidget = "Widget"

// MaxNameLength bounds widget names.
const MaxNameLength = 120

// WidgetArgs is the property set of the widget entity kind: one virtual
// property per virtualizable field, all unresolved until a projection
// hydrates them.
type WidgetArgs struct {
	Name  virtual.Property[string]
	Note  virtual.Property[*string]
	Price virtual.Property[int64]
}

// NewWidgetArgs declares the widget property set with every slot unresolved.
func NewWidgetArgs() WidgetArgs {
	return WidgetArgs{
		Name:  virtual.MustUnresolved[string](EntityWidget, "Name", virtual.PolicyFunc[string](validateName)),
		Note:  virtual.MustUnresolved[*string](EntityWidget, "Note", virtual.Nullable[*string]()),
		Price: virtual.MustUnresolved[int64](EntityWidget, "Price", virtual.PolicyFunc[int64](validatePrice)),
	}
}

// Widget is a catalog entry backed by virtual properties. Accessors delegate
// to the underlying slots: getters fail on fields the projection did not
// supply, setters record the new value as a domain change.
type Widget struct {
	ddd.Entity
	ddd.Recorder

	args WidgetArgs
}

// NewWidget constructs a widget from its identity and a (possibly partially
// hydrated) property set. The widget owns the args by value.
func NewWidget(id ulid.ULID, args WidgetArgs) (*Widget, error) {
	base, err := ddd.NewEntityWithID(id)
	if err != nil {
		return nil, err
	}
	return &Widget{Entity: base, args: args}, nil
}

// Name returns the widget name, failing if the field was not hydrated.
func (w *Widget) Name() (string, error) { return w.args.Name.Value() }

// SetName changes the widget name.
func (w *Widget) SetName(name string) error { return virtual.Apply(&w.args.Name, name) }

// Note returns the optional note, failing if the field was not hydrated.
// A hydrated nil note is a valid value.
func (w *Widget) Note() (*string, error) { return w.args.Note.Value() }

// SetNote changes the note. Passing nil clears it.
func (w *Widget) SetNote(note *string) error { return virtual.Apply(&w.args.Note, note) }

// Price returns the price in cents, failing if the field was not hydrated.
func (w *Widget) Price() (int64, error) { return w.args.Price.Value() }

// SetPrice changes the price in cents.
func (w *Widget) SetPrice(price int64) error { return virtual.Apply(&w.args.Price, price) }

// Args returns a copy of the widget's property set. Infrastructure uses it
// to inspect which fields are resolved or changed; the copy keeps the
// widget's own state out of reach.
func (w *Widget) Args() WidgetArgs { return w.args }

// ApplyDiscount reduces the price by the given percentage (0 < percent < 100)
// and records a WidgetRepriced event. The price field must be hydrated.
func (w *Widget) ApplyDiscount(percent int) (int64, error) {
	if percent <= 0 || percent >= 100 {
		return 0, fmt.Errorf("discount percent must be between 1 and 99, got %d", percent)
	}
	current, err := w.Price()
	if err != nil {
		return 0, err
	}
	discounted := current - current*int64(percent)/100
	if err := w.SetPrice(discounted); err != nil {
		return 0, err
	}
	w.Record(WidgetRepriced{
		WidgetID: w.ID(),
		OldPrice: current,
		NewPrice: discounted,
		At:       time.Now(),
	})
	return discounted, nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("cannot be empty")
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("exceeds maximum length of %d", MaxNameLength)
	}
	return nil
}

func validatePrice(price int64) error {
	if price < 0 {
		return errors.New("cannot be negative")
	}
	return nil
}
