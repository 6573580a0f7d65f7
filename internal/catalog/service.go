// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lightweight DDD Contributors

package catalog

import (
	"context"
	"log/slog"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/ivanhoe-k/lightweight-ddd/pkg/errutil"
	"github.com/ivanhoe-k/lightweight-ddd/pkg/result"
)

// Service coordinates widget use cases over a Repository. Each use case
// requests the projection it actually needs; the entity guards against
// reads outside that projection.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a widget service. A nil logger defaults to slog.Default.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Show fetches a widget hydrated with the projected fields.
func (s *Service) Show(ctx context.Context, id ulid.ULID, projection Projection) (*Widget, error) {
	w, err := s.repo.Get(ctx, id, projection)
	if err != nil {
		return nil, oops.With("widget_id", id.String()).With("projection", projection.String()).Wrap(err)
	}
	return w, nil
}

// List fetches all widgets hydrated with the projected fields.
func (s *Service) List(ctx context.Context, projection Projection) ([]*Widget, error) {
	ws, err := s.repo.List(ctx, projection)
	if err != nil {
		return nil, oops.With("projection", projection.String()).Wrap(err)
	}
	return ws, nil
}

// Create registers a new widget and returns its generated ID.
func (s *Service) Create(ctx context.Context, name string, note *string, price int64) (ulid.ULID, error) {
	id := ulid.Make()
	args := NewWidgetArgs()
	w, err := NewWidget(id, args)
	if err != nil {
		return ulid.ULID{}, err
	}
	if err := w.SetName(name); err != nil {
		return ulid.ULID{}, err
	}
	if err := w.SetNote(note); err != nil {
		return ulid.ULID{}, err
	}
	if err := w.SetPrice(price); err != nil {
		return ulid.ULID{}, err
	}
	if err := s.repo.Create(ctx, w); err != nil {
		return ulid.ULID{}, oops.With("widget_id", id.String()).Wrap(err)
	}
	s.logger.Info("widget created", "widget_id", id.String(), "name", name)
	return id, nil
}

// Reprice applies a percentage discount to a widget. Only the price field is
// projected; the whole operation runs without touching name or note.
func (s *Service) Reprice(ctx context.Context, id ulid.ULID, percent int) result.Result[int64] {
	w, err := s.repo.Get(ctx, id, FieldPrice)
	if err != nil {
		return result.Err[int64](oops.With("widget_id", id.String()).Wrap(err))
	}

	newPrice, err := w.ApplyDiscount(percent)
	if err != nil {
		errutil.LogError(s.logger, "discount rejected", err)
		return result.Err[int64](err)
	}

	if err := s.repo.Save(ctx, w); err != nil {
		return result.Err[int64](oops.With("widget_id", id.String()).Wrap(err))
	}

	for _, e := range w.Events() {
		s.logger.Info("domain event", "event", e.EventName(), "occurred_at", e.OccurredAt())
	}
	w.ClearEvents()

	return result.Ok(newPrice)
}
