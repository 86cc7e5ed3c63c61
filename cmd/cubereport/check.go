// Copyright Meridian Materials Lab Ltd., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wkcheung/cubereport/internal/extract"
	"github.com/wkcheung/cubereport/internal/pdftext"
	"github.com/wkcheung/cubereport/internal/validate"
)

var checkCmd = &cobra.Command{
	Use:   "check [input.pdf]",
	Short: "Validate a PDF report without writing a spreadsheet",
	Long: `Check extracts specimen records from a PDF report, runs the
validation pass, and prints the YAML report to stdout. Validation
findings are informational; the command only fails when extraction
itself cannot run.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	pdfPath := args[0]
	cfg := pipelineConfig()

	src, err := pdftext.NewPdftotext(cfg.Conversion)
	if err != nil {
		return err
	}
	pages, err := src.Pages(pdfPath)
	if err != nil {
		return err
	}

	records, summary := extract.ExtractPages(pages, os.Stderr)
	if len(records) == 0 {
		return fmt.Errorf("no specimen records extracted from %s", pdfPath)
	}
	fmt.Fprintf(os.Stderr, "extracted %d record(s) from %d page(s), %d line(s) skipped\n",
		summary.Records, summary.Pages, summary.Skipped)

	report := validate.NewReport(records, cfg.Validation)
	return report.WriteYAML(os.Stdout)
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
