// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lightweight DDD Contributors

// Package postgres implements the catalog repository over PostgreSQL.
//
// Get builds its SELECT column list from the requested projection and
// hydrates the widget's property set through the virtual builder, so each
// column is supplied to its slot exactly once. Save writes back only the
// fields domain logic changed; hydrated-but-unchanged fields never appear
// in the UPDATE.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/ivanhoe-k/lightweight-ddd/internal/catalog"
	"github.com/ivanhoe-k/lightweight-ddd/pkg/virtual"
)

// dbPool abstracts query execution so tests can substitute pgxmock for a
// real *pgxpool.Pool.
type dbPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// WidgetRepository implements catalog.Repository using PostgreSQL.
type WidgetRepository struct {
	pool dbPool
}

// Compile-time check that WidgetRepository implements catalog.Repository.
var _ catalog.Repository = (*WidgetRepository)(nil)

// NewWidgetRepository creates a new WidgetRepository.
func NewWidgetRepository(pool dbPool) *WidgetRepository {
	return &WidgetRepository{pool: pool}
}

// Get retrieves a widget hydrated with exactly the projected fields.
func (r *WidgetRepository) Get(ctx context.Context, id ulid.ULID, projection catalog.Projection) (*catalog.Widget, error) {
	var (
		name  string
		note  *string
		price int64
	)

	cols := make([]string, 0, 3)
	dest := make([]any, 0, 3)
	if projection.Has(catalog.FieldName) {
		cols = append(cols, "name")
		dest = append(dest, &name)
	}
	if projection.Has(catalog.FieldNote) {
		cols = append(cols, "note")
		dest = append(dest, &note)
	}
	if projection.Has(catalog.FieldPrice) {
		cols = append(cols, "price_cents")
		dest = append(dest, &price)
	}
	if len(cols) == 0 {
		// Identity-only projection: confirm existence, hydrate nothing.
		cols = append(cols, "1")
		var one int
		dest = append(dest, &one)
	}

	query := fmt.Sprintf(`SELECT %s FROM widgets WHERE id = $1`, strings.Join(cols, ", "))
	err := r.pool.QueryRow(ctx, query, id.String()).Scan(dest...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.With("id", id.String()).Wrap(catalog.ErrNotFound)
	}
	if err != nil {
		return nil, oops.With("operation", "get widget").With("id", id.String()).Wrap(err)
	}

	return hydrate(id, projection, name, note, price)
}

// List retrieves all widgets ordered by ID, each hydrated with exactly the
// projected fields.
func (r *WidgetRepository) List(ctx context.Context, projection catalog.Projection) ([]*catalog.Widget, error) {
	cols := make([]string, 0, 4)
	cols = append(cols, "id")
	if projection.Has(catalog.FieldName) {
		cols = append(cols, "name")
	}
	if projection.Has(catalog.FieldNote) {
		cols = append(cols, "note")
	}
	if projection.Has(catalog.FieldPrice) {
		cols = append(cols, "price_cents")
	}

	query := fmt.Sprintf(`SELECT %s FROM widgets ORDER BY id`, strings.Join(cols, ", "))
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, oops.With("operation", "list widgets").Wrap(err)
	}
	defer rows.Close()

	var widgets []*catalog.Widget
	for rows.Next() {
		var (
			rawID string
			name  string
			note  *string
			price int64
		)
		dest := make([]any, 0, 4)
		dest = append(dest, &rawID)
		if projection.Has(catalog.FieldName) {
			dest = append(dest, &name)
		}
		if projection.Has(catalog.FieldNote) {
			dest = append(dest, &note)
		}
		if projection.Has(catalog.FieldPrice) {
			dest = append(dest, &price)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, oops.With("operation", "list widgets").Wrap(err)
		}
		id, err := ulid.Parse(rawID)
		if err != nil {
			return nil, oops.With("operation", "list widgets").With("id", rawID).Wrap(err)
		}
		w, err := hydrate(id, projection, name, note, price)
		if err != nil {
			return nil, err
		}
		widgets = append(widgets, w)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.With("operation", "list widgets").Wrap(err)
	}
	return widgets, nil
}

// hydrate builds a widget whose property set holds exactly the projected
// columns, each supplied to its slot once.
func hydrate(id ulid.ULID, projection catalog.Projection, name string, note *string, price int64) (*catalog.Widget, error) {
	args := catalog.NewWidgetArgs()
	b := virtual.NewBuilder(&args)
	if projection.Has(catalog.FieldName) {
		if err := virtual.WithField(b, &args.Name, name); err != nil {
			return nil, oops.With("operation", "hydrate widget").With("id", id.String()).Wrap(err)
		}
	}
	if projection.Has(catalog.FieldNote) {
		if err := virtual.WithField(b, &args.Note, note); err != nil {
			return nil, oops.With("operation", "hydrate widget").With("id", id.String()).Wrap(err)
		}
	}
	if projection.Has(catalog.FieldPrice) {
		if err := virtual.WithField(b, &args.Price, price); err != nil {
			return nil, oops.With("operation", "hydrate widget").With("id", id.String()).Wrap(err)
		}
	}
	set, err := b.Build()
	if err != nil {
		return nil, oops.With("operation", "hydrate widget").With("id", id.String()).Wrap(err)
	}
	return catalog.NewWidget(id, set)
}

// Create persists a new, fully hydrated widget.
func (r *WidgetRepository) Create(ctx context.Context, w *catalog.Widget) error {
	name, err := w.Name()
	if err != nil {
		return oops.With("operation", "create widget").Wrap(err)
	}
	note, err := w.Note()
	if err != nil {
		return oops.With("operation", "create widget").Wrap(err)
	}
	price, err := w.Price()
	if err != nil {
		return oops.With("operation", "create widget").Wrap(err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO widgets (id, name, note, price_cents, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`, w.ID().String(), name, note, price)
	if isUniqueViolation(err) {
		return oops.With("id", w.ID().String()).Wrap(catalog.ErrDuplicate)
	}
	if err != nil {
		return oops.With("operation", "create widget").With("id", w.ID().String()).Wrap(err)
	}
	return nil
}

// Save persists the widget's changed fields only.
func (r *WidgetRepository) Save(ctx context.Context, w *catalog.Widget) error {
	args := w.Args()

	sets := make([]string, 0, 3)
	sqlArgs := make([]any, 0, 4)
	appendSet := func(column string, value any) {
		sqlArgs = append(sqlArgs, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(sqlArgs)))
	}

	if args.Name.Changed() {
		v, err := args.Name.Value()
		if err != nil {
			return oops.With("operation", "save widget").Wrap(err)
		}
		appendSet("name", v)
	}
	if args.Note.Changed() {
		v, err := args.Note.Value()
		if err != nil {
			return oops.With("operation", "save widget").Wrap(err)
		}
		appendSet("note", v)
	}
	if args.Price.Changed() {
		v, err := args.Price.Value()
		if err != nil {
			return oops.With("operation", "save widget").Wrap(err)
		}
		appendSet("price_cents", v)
	}

	if len(sets) == 0 {
		return oops.With("id", w.ID().String()).Wrap(catalog.ErrNoChanges)
	}

	sqlArgs = append(sqlArgs, w.ID().String())
	query := fmt.Sprintf(`UPDATE widgets SET %s, updated_at = NOW() WHERE id = $%d`,
		strings.Join(sets, ", "), len(sqlArgs))

	tag, err := r.pool.Exec(ctx, query, sqlArgs...)
	if err != nil {
		return oops.With("operation", "save widget").With("id", w.ID().String()).Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return oops.With("id", w.ID().String()).Wrap(catalog.ErrNotFound)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
