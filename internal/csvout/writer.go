// Copyright Meridian Materials Lab Ltd., 2026. All rights reserved.

// Package csvout writes records as pipe-delimited CSV, one row per
// record in the canonical column order, without a header row.
package csvout

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/wkcheung/cubereport/pkg/types"
)

// Writer wraps csv.Writer for exporting records.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes pipe-delimited rows to w.
func NewWriter(w io.Writer) *Writer {
	cw := csv.NewWriter(w)
	cw.Comma = '|'
	return &Writer{csv: cw}
}

// WriteRecords writes one row per record.
func (w *Writer) WriteRecords(records []types.Record) error {
	for _, r := range records {
		row := []string{
			r.MarkPrefix,
			r.MarkNumber,
			r.MarkSuffix,
			r.ReportNumber,
			r.DateCast,
			strconv.FormatFloat(r.StrengthMPa, 'f', -1, 64),
			r.PourLocation,
		}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}
