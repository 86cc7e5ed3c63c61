// Copyright Meridian Materials Lab Ltd., 2026. All rights reserved.

// Package main is the entry point for the cubereport CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wkcheung/cubereport/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the cubereport CLI.
var rootCmd = &cobra.Command{
	Use:   "cubereport",
	Short: "Convert concrete-cube test PDF reports to formatted spreadsheets",
	Long: `cubereport extracts specimen test records from concrete-cube test PDF
reports and reshapes them into formatted XLSX workbooks grouped by
specimen type, with optional CSV output, a non-blocking validation
pass, and a local archive of extraction runs.

Use process for a single report, batch for a folder of reports, and
check to validate a report without writing a spreadsheet.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./cubereport.yaml or ~/.config/cubereport/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("cubereport")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "cubereport"))
		}
	}

	viper.SetEnvPrefix("CUBEREPORT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig assembles the stage configurations from the config
// file and environment. Zero values fall back to defaults at use sites.
func pipelineConfig() types.PipelineConfig {
	return types.PipelineConfig{
		Conversion: types.ConversionConfig{
			PdftotextPath: viper.GetString("conversion.pdftotext_path"),
		},
		Validation: types.ValidationConfig{
			MinStrength: viper.GetFloat64("validation.min_strength"),
			MaxStrength: viper.GetFloat64("validation.max_strength"),
		},
		Output: types.OutputConfig{
			Format:         types.OutputFormat(viper.GetString("output.format")),
			RawSheet:       viper.GetString("output.raw_sheet"),
			PairColumns:    viper.GetStringSlice("output.pair_columns"),
			LocationColumn: viper.GetString("output.location_column"),
		},
		Store: types.StoreConfig{
			Enabled: viper.GetBool("store.enabled"),
			DBPath:  viper.GetString("store.db_path"),
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
