// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lightweight DDD Contributors

package main

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/ivanhoe-k/lightweight-ddd/internal/catalog"
	catalogpg "github.com/ivanhoe-k/lightweight-ddd/internal/catalog/postgres"
	"github.com/ivanhoe-k/lightweight-ddd/internal/config"
	"github.com/ivanhoe-k/lightweight-ddd/internal/logging"
	"github.com/ivanhoe-k/lightweight-ddd/internal/store"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the widgetctl CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "widgetctl",
		Short: "widgetctl - administer the widget catalog",
		Long: `widgetctl administers a PostgreSQL-backed widget catalog whose
entities hydrate only the fields each operation needs.`,
	}

	// Config file plus dotted keys that mirror the file layout.
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	cmd.PersistentFlags().String("database.url", "", "PostgreSQL connection URL")
	cmd.PersistentFlags().String("log.format", "json", "log format (json or text)")
	cmd.PersistentFlags().String("log.level", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewCreateCmd())
	cmd.AddCommand(NewShowCmd())
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewRepriceCmd())

	return cmd
}

// loadConfig merges the config file (when given) with any set flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	return config.Load(configFile, cmd.Root().PersistentFlags())
}

func newLogger(cfg config.Config) *slog.Logger {
	return logging.Setup("widgetctl", version, cfg.Log.Format, cfg.Log.Level, nil)
}

// openService connects to the configured database and assembles the catalog
// service on top of it. The returned pool must be closed by the caller.
func openService(ctx context.Context, cfg config.Config) (*catalog.Service, *pgxpool.Pool, error) {
	if err := cfg.RequireDatabase(); err != nil {
		return nil, nil, err
	}
	pool, err := store.Connect(ctx, cfg.Database.URL)
	if err != nil {
		return nil, nil, err
	}
	repo := catalogpg.NewWidgetRepository(pool)
	return catalog.NewService(repo, newLogger(cfg)), pool, nil
}

func parseWidgetID(raw string) (ulid.ULID, error) {
	id, err := ulid.ParseStrict(raw)
	if err != nil {
		return ulid.ULID{}, oops.Code("INVALID_ID").With("id", raw).Wrap(err)
	}
	return id, nil
}
