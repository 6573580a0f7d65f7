// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lightweight DDD Contributors

package main

import (
	"github.com/spf13/cobra"
)

// NewCreateCmd creates the create subcommand.
func NewCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a widget",
		Long:  `Create a widget with a name, an optional note, and a price in cents.`,
		RunE:  runCreate,
	}
	cmd.Flags().String("name", "", "widget name (required)")
	cmd.Flags().String("note", "", "optional free-form note")
	cmd.Flags().Int64("price", 0, "price in cents")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func runCreate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("name")
	price, _ := cmd.Flags().GetInt64("price")
	var note *string
	if cmd.Flags().Changed("note") {
		v, _ := cmd.Flags().GetString("note")
		note = &v
	}

	ctx := cmd.Context()
	svc, pool, err := openService(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	id, err := svc.Create(ctx, name, note, price)
	if err != nil {
		return err
	}

	cmd.Println(id.String())
	return nil
}
