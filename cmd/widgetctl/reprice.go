// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lightweight DDD Contributors

package main

import (
	"strconv"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

// NewRepriceCmd creates the reprice subcommand.
func NewRepriceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reprice <id> <percent>",
		Short: "Apply a percentage discount to a widget",
		Long: `Apply a percentage discount to a widget's price. Only the price field
is fetched and only the price field is written back.`,
		Args: cobra.ExactArgs(2),
		RunE: runReprice,
	}
}

func parsePercent(raw string) (int, error) {
	percent, err := strconv.Atoi(raw)
	if err != nil {
		return 0, oops.Code("INVALID_PERCENT").With("percent", raw).Wrap(err)
	}
	return percent, nil
}

func runReprice(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	id, err := parseWidgetID(args[0])
	if err != nil {
		return err
	}
	percent, err := parsePercent(args[1])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	svc, pool, err := openService(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	res := svc.Reprice(ctx, id, percent)
	if !res.OK() {
		return res.Error()
	}
	newPrice, err := res.Value()
	if err != nil {
		return err
	}

	cmd.Printf("new price: %d\n", newPrice)
	return nil
}
