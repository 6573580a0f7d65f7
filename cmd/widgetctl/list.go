// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lightweight DDD Contributors

package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ivanhoe-k/lightweight-ddd/internal/catalog"
)

// NewListCmd creates the list subcommand.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all widgets",
		Long: `List all widgets ordered by ID. Only the requested fields are fetched
from the database.`,
		RunE: runList,
	}
	cmd.Flags().StringSlice("fields", nil, "fields to fetch (name, note, price); all when omitted")
	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	fields, _ := cmd.Flags().GetStringSlice("fields")
	projection, err := catalog.ParseProjection(fields)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	svc, pool, err := openService(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	widgets, err := svc.List(ctx, projection)
	if err != nil {
		return err
	}

	for _, w := range widgets {
		parts := []string{w.ID().String()}
		if projection.Has(catalog.FieldName) {
			name, err := w.Name()
			if err != nil {
				return err
			}
			parts = append(parts, name)
		}
		if projection.Has(catalog.FieldNote) {
			note, err := w.Note()
			if err != nil {
				return err
			}
			if note != nil {
				parts = append(parts, *note)
			} else {
				parts = append(parts, "<none>")
			}
		}
		if projection.Has(catalog.FieldPrice) {
			price, err := w.Price()
			if err != nil {
				return err
			}
			parts = append(parts, strconv.FormatInt(price, 10))
		}
		cmd.Println(strings.Join(parts, "\t"))
	}
	return nil
}
