// Copyright Meridian Materials Lab Ltd., 2026. All rights reserved.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/wkcheung/cubereport/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List archived extraction runs",
	RunE:  runRuns,
}

func runRuns(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()

	s, err := store.New(cfg.Store)
	if err != nil {
		return err
	}
	defer s.Close()

	runs, err := s.ListRuns(context.Background())
	if err != nil {
		return err
	}
	store.PrintRuns(runs, os.Stdout)
	return nil
}

func init() {
	rootCmd.AddCommand(runsCmd)
}
