// Copyright Meridian Materials Lab Ltd., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wkcheung/cubereport/internal/csvout"
	"github.com/wkcheung/cubereport/internal/extract"
	"github.com/wkcheung/cubereport/internal/pdftext"
	"github.com/wkcheung/cubereport/internal/store"
	"github.com/wkcheung/cubereport/internal/validate"
	"github.com/wkcheung/cubereport/internal/workbook"
	"github.com/wkcheung/cubereport/pkg/types"
)

var processCmd = &cobra.Command{
	Use:   "process [input.pdf]",
	Short: "Convert one PDF report to a formatted spreadsheet",
	Long: `Process extracts specimen records from a single PDF report and writes
a formatted XLSX workbook (or pipe-delimited CSV) grouped by specimen
type. With --validate, a YAML validation report is written next to the
output; validation findings never block the spreadsheet.`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func runProcess(cmd *cobra.Command, args []string) error {
	pdfPath := args[0]
	cfg := pipelineConfig()

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = defaultOutputPath(pdfPath, outputFormat(cmd, cfg))
	}
	doValidate, _ := cmd.Flags().GetBool("validate")
	useStore, _ := cmd.Flags().GetBool("store")

	src, err := pdftext.NewPdftotext(cfg.Conversion)
	if err != nil {
		return err
	}

	count, err := processFile(src, pdfPath, out, processOptions{
		format:   outputFormat(cmd, cfg),
		validate: doValidate,
		useStore: useStore || cfg.Store.Enabled,
		cfg:      cfg,
	}, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "wrote %d records to %s\n", count, out)
	return nil
}

// processOptions bundles the per-file pipeline switches shared by the
// process and batch commands.
type processOptions struct {
	format   types.OutputFormat
	validate bool
	useStore bool
	cfg      types.PipelineConfig
}

// processFile runs the full pipeline for one PDF: page text, record
// extraction, optional validation and archiving, then the spreadsheet
// or CSV writer. It returns the number of extracted records.
func processFile(src pdftext.PageSource, pdfPath, outPath string, opts processOptions, w io.Writer) (int, error) {
	pages, err := src.Pages(pdfPath)
	if err != nil {
		return 0, err
	}

	records, summary := extract.ExtractPages(pages, w)
	if summary.Skipped > 0 {
		fmt.Fprintf(w, "skipped %d unparsable specimen line(s)\n", summary.Skipped)
	}
	if len(records) == 0 {
		return 0, fmt.Errorf("no specimen records extracted from %s", pdfPath)
	}

	var problems []validate.Problem
	if opts.validate {
		report := validate.NewReport(records, opts.cfg.Validation)
		problems = report.Problems
		reportPath := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ".validation.yaml"
		if err := report.WriteFile(reportPath); err != nil {
			return 0, err
		}
		fmt.Fprintf(w, "validation: %d finding(s), report at %s\n", len(problems), reportPath)
	}

	if opts.useStore {
		s, err := store.New(opts.cfg.Store)
		if err != nil {
			return 0, err
		}
		defer s.Close()
		runID, err := s.SaveRun(context.Background(), pdfPath, records, problems)
		if err != nil {
			return 0, err
		}
		fmt.Fprintf(w, "archived as run %d\n", runID)
	}

	switch opts.format {
	case types.OutputCSV:
		if err := writeCSV(outPath, records); err != nil {
			return 0, err
		}
	default:
		if err := workbook.WriteFile(outPath, records, opts.cfg.Output); err != nil {
			return 0, err
		}
	}

	return len(records), nil
}

func writeCSV(path string, records []types.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	cw := csvout.NewWriter(f)
	if err := cw.WriteRecords(records); err != nil {
		return fmt.Errorf("writing csv rows: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// outputFormat resolves the output format from the flag, then config,
// then the xlsx default.
func outputFormat(cmd *cobra.Command, cfg types.PipelineConfig) types.OutputFormat {
	if s, _ := cmd.Flags().GetString("format"); s != "" {
		return types.OutputFormat(s)
	}
	if cfg.Output.Format != "" {
		return cfg.Output.Format
	}
	return types.OutputXLSX
}

// defaultOutputPath places the output next to the input, named after
// its stem.
func defaultOutputPath(pdfPath string, format types.OutputFormat) string {
	stem := strings.TrimSuffix(pdfPath, filepath.Ext(pdfPath))
	ext := ".xlsx"
	if format == types.OutputCSV {
		ext = ".csv"
	}
	return stem + "_processed" + ext
}

func init() {
	processCmd.Flags().String("out", "", "output file path (default: <input>_processed.xlsx)")
	processCmd.Flags().String("format", "", "output format: xlsx or csv")
	processCmd.Flags().Bool("validate", false, "run the validation pass and write a YAML report")
	processCmd.Flags().Bool("store", false, "archive the extraction run in the local database")

	rootCmd.AddCommand(processCmd)
}
