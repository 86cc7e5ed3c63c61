// Copyright Meridian Materials Lab Ltd., 2026. All rights reserved.

// Package workbook renders extracted records as a formatted XLSX
// workbook: a Raw sheet with every record, plus one sheet per known
// specimen type with the presentation merges applied.
package workbook

import (
	"fmt"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/wkcheung/cubereport/internal/layout"
	"github.com/wkcheung/cubereport/pkg/types"
)

const (
	defaultRawSheet       = "Raw"
	defaultLocationColumn = "G"
	// headerRows is the count of header rows the writer owns on every
	// sheet; merge spans from the layout engine are offset past them.
	headerRows = 1
)

// defaultPairColumns are the identity columns merged two rows at a time
// on the per-type sheets: mark prefix, mark number, report number, and
// date cast.
var defaultPairColumns = []string{"A", "B", "D", "E"}

// Write renders records into an XLSX workbook and returns its bytes.
// Unclassified records appear on the Raw sheet only; the four type
// sheets receive their groups in input order with pair merges on the
// identity columns and run-length merges on the pour-location column.
func Write(records []types.Record, cfg types.OutputConfig) ([]byte, error) {
	rawSheet := cfg.RawSheet
	if rawSheet == "" {
		rawSheet = defaultRawSheet
	}
	pairCols := cfg.PairColumns
	if len(pairCols) == 0 {
		pairCols = defaultPairColumns
	}
	locCol := cfg.LocationColumn
	if locCol == "" {
		locCol = defaultLocationColumn
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", rawSheet); err != nil {
		return nil, fmt.Errorf("naming raw sheet: %w", err)
	}
	writeRows(f, rawSheet, records)

	centered, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("creating merge style: %w", err)
	}

	partition := layout.PartitionRecords(records)
	for _, group := range partition.Groups {
		sheet := string(group.Type)
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("creating sheet %s: %w", sheet, err)
		}
		writeRows(f, sheet, group.Records)

		if err := applyMerges(f, sheet, group.Records, pairCols, locCol, centered); err != nil {
			return nil, fmt.Errorf("merging cells on %s: %w", sheet, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders records and writes the workbook to path.
func WriteFile(path string, records []types.Record, cfg types.OutputConfig) error {
	data, err := Write(records, cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// writeRows writes the header row and one row per record in the
// canonical column order.
func writeRows(f *excelize.File, sheet string, records []types.Record) {
	for i, h := range types.Header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, r := range records {
		row := i + 1 + headerRows
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.MarkPrefix)
		write(2, cellNumber(r.MarkNumber))
		write(3, r.MarkSuffix)
		write(4, r.ReportNumber)
		write(5, r.DateCast)
		write(6, r.StrengthMPa)
		write(7, r.PourLocation)
	}

	_ = f.SetColWidth(sheet, "A", "A", 18)
	_ = f.SetColWidth(sheet, "D", "D", 16)
	_ = f.SetColWidth(sheet, "E", "F", 14)
	_ = f.SetColWidth(sheet, "G", "G", 36)
}

// applyMerges applies the two independent span sets for one type group:
// fixed pair merges on the identity columns and value-run merges on the
// pour-location column. Merge anchors are vertically centered.
func applyMerges(f *excelize.File, sheet string, records []types.Record, pairCols []string, locCol string, style int) error {
	var spans []types.MergeSpan
	for _, col := range pairCols {
		spans = append(spans, layout.PairSpans(len(records), types.ColumnID(col), headerRows)...)
	}

	locations := make([]string, len(records))
	for i, r := range records {
		locations[i] = r.PourLocation
	}
	spans = append(spans, layout.RunSpans(locations, types.ColumnID(locCol), headerRows)...)

	for _, span := range spans {
		top := fmt.Sprintf("%s%d", span.Col, span.StartRow)
		bottom := fmt.Sprintf("%s%d", span.Col, span.EndRow)
		if err := f.MergeCell(sheet, top, bottom); err != nil {
			return err
		}
		_ = f.SetCellStyle(sheet, top, top, style)
	}
	return nil
}

// cellNumber writes the mark number as an integer when it parses
// cleanly, matching how the legacy sheets stored it, and falls back to
// the raw string otherwise.
func cellNumber(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return s
}
