// Copyright Meridian Materials Lab Ltd., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wkcheung/cubereport/internal/pdftext"
)

var batchCmd = &cobra.Command{
	Use:   "batch [directory]",
	Short: "Process every PDF report in a directory",
	Long: `Batch discovers PDF files in a directory (case-insensitive *.pdf,
processed in filename order) and runs the full pipeline on each. A
failure on one file is logged and the remaining files still run; the
command exits non-zero if any file failed.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

// batchSummary tracks per-directory outcomes.
type batchSummary struct {
	Processed int
	Records   int
	Failed    []string
}

func (s batchSummary) Total() int {
	return s.Processed + len(s.Failed)
}

func (s batchSummary) HasFailures() bool {
	return len(s.Failed) > 0
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	cfg := pipelineConfig()

	outDir, _ := cmd.Flags().GetString("output-dir")
	if outDir == "" {
		outDir = dir
	}
	doValidate, _ := cmd.Flags().GetBool("validate")
	useStore, _ := cmd.Flags().GetBool("store")
	format := outputFormat(cmd, cfg)

	pdfs, err := findPDFs(dir)
	if err != nil {
		return err
	}
	if len(pdfs) == 0 {
		return fmt.Errorf("no PDF files found in %s", dir)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	src, err := pdftext.NewPdftotext(cfg.Conversion)
	if err != nil {
		return err
	}

	opts := processOptions{
		format:   format,
		validate: doValidate,
		useStore: useStore || cfg.Store.Enabled,
		cfg:      cfg,
	}

	var summary batchSummary
	for _, pdfPath := range pdfs {
		out := filepath.Join(outDir, filepath.Base(defaultOutputPath(pdfPath, format)))
		fmt.Fprintf(os.Stdout, "processing %s\n", pdfPath)

		count, err := processFile(src, pdfPath, out, opts, os.Stdout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  failed: %v\n", err)
			summary.Failed = append(summary.Failed, pdfPath)
			continue
		}
		summary.Processed++
		summary.Records += count
		fmt.Fprintf(os.Stdout, "  wrote %d records to %s\n", count, out)
	}

	fmt.Fprintf(os.Stdout, "batch complete: %d/%d file(s) processed, %d record(s)\n",
		summary.Processed, summary.Total(), summary.Records)
	if summary.HasFailures() {
		return fmt.Errorf("%d file(s) failed: %s", len(summary.Failed), strings.Join(summary.Failed, ", "))
	}
	return nil
}

// findPDFs lists PDF files directly under dir, matched case-insensitively
// on the .pdf extension and sorted by lowercased filename.
func findPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var pdfs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			pdfs = append(pdfs, filepath.Join(dir, e.Name()))
		}
	}
	sort.Slice(pdfs, func(i, j int) bool {
		return strings.ToLower(filepath.Base(pdfs[i])) < strings.ToLower(filepath.Base(pdfs[j]))
	})
	return pdfs, nil
}

func init() {
	batchCmd.Flags().String("output-dir", "", "directory for output files (default: the input directory)")
	batchCmd.Flags().String("format", "", "output format: xlsx or csv")
	batchCmd.Flags().Bool("validate", false, "run the validation pass for each file")
	batchCmd.Flags().Bool("store", false, "archive each extraction run in the local database")

	rootCmd.AddCommand(batchCmd)
}
