// Copyright Meridian Materials Lab Ltd., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the cubereport version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cubereport %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
