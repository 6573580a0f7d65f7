// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lightweight DDD Contributors

package main

import (
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/ivanhoe-k/lightweight-ddd/internal/store"
)

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long:  `Run all pending schema migrations against the PostgreSQL database.`,
		RunE:  runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}

	m, err := store.NewMigrator(cfg.Database.URL)
	if err != nil {
		return err
	}
	defer m.Close()

	cmd.Println("Running migrations...")
	if err := m.Up(); err != nil {
		return oops.Code("MIGRATION_FAILED").Wrap(err)
	}

	v, dirty, err := m.Version()
	if err != nil {
		return oops.Code("MIGRATION_FAILED").Wrap(err)
	}
	if dirty {
		cmd.Printf("Migrations at version %d (dirty)\n", v)
	} else {
		cmd.Printf("Migrations at version %d\n", v)
	}
	return nil
}
