// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lightweight DDD Contributors

package main

import (
	"github.com/spf13/cobra"

	"github.com/ivanhoe-k/lightweight-ddd/internal/catalog"
)

// NewShowCmd creates the show subcommand.
func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a widget",
		Long: `Show a widget by ID. Only the requested fields are fetched from the
database; the rest of the entity stays unhydrated.`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}
	cmd.Flags().StringSlice("fields", nil, "fields to fetch (name, note, price); all when omitted")
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	id, err := parseWidgetID(args[0])
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

	w, err := svc.Show(ctx, id, projection)
	if err != nil {
		return err
	}

	cmd.Printf("id: %s\n", w.ID().String())
	if projection.Has(catalog.FieldName) {
		name, err := w.Name()
		if err != nil {
			return err
		}
		cmd.Printf("name: %s\n", name)
	}
	if projection.Has(catalog.FieldNote) {
		note, err := w.Note()
		if err != nil {
			return err
		}
		if note != nil {
			cmd.Printf("note: %s\n", *note)
		} else {
			cmd.Println("note: <none>")
		}
	}
	if projection.Has(catalog.FieldPrice) {
		price, err := w.Price()
		if err != nil {
			return err
		}
		cmd.Printf("price: %d\n", price)
	}
	return nil
}
