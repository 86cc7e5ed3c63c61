// Copyright Meridian Materials Lab Ltd., 2026. All rights reserved.

package types

// Record holds one specimen test result extracted from a report page.
// Records are immutable once produced: validation reports problems
// without modifying them, and grouping only partitions references.
type Record struct {
	// MarkPrefix is the leading part of the specimen mark, including the
	// trailing separator (e.g. "20250621-45D-"). It encodes the cast
	// date stamp and the nominal specimen type.
	MarkPrefix string `json:"mark_prefix" yaml:"mark_prefix"`

	// MarkNumber is the specimen sequence within a cast/type group. It
	// is kept as a digit string, never arithmetic, so leading digits
	// survive round-trips.
	MarkNumber string `json:"mark_number" yaml:"mark_number"`

	// MarkSuffix is the single-letter sub-specimen identity ("A", "B", ...).
	MarkSuffix string `json:"mark_suffix" yaml:"mark_suffix"`

	// ReportNumber is the opaque identifier of the source report page.
	ReportNumber string `json:"report_number" yaml:"report_number"`

	// DateCast is the cast date in the fixed textual form DD-Mon-YYYY.
	DateCast string `json:"date_cast" yaml:"date_cast"`

	// StrengthMPa is the compressive strength reading.
	StrengthMPa float64 `json:"strength_mpa" yaml:"strength_mpa"`

	// PourLocation is free text describing the pour; may be empty when
	// the source page omits it.
	PourLocation string `json:"pour_location" yaml:"pour_location"`
}

// Mark reconstructs the full specimen mark exactly as read from the
// source: prefix + number + suffix.
func (r Record) Mark() string {
	return r.MarkPrefix + r.MarkNumber + r.MarkSuffix
}

// SpecimenType is the nominal curing/waterproofing category encoded in
// a specimen mark prefix. The set is closed: classification always
// yields exactly one of the five values.
type SpecimenType string

const (
	Type45D     SpecimenType = "45D"
	Type60D     SpecimenType = "60D"
	Type45DWP   SpecimenType = "45DWP"
	Type60DWP   SpecimenType = "60DWP"
	TypeUnknown SpecimenType = "Unknown"
)

// KnownTypes lists the four recognized specimen types in the fixed
// presentation order used for grouping and for workbook sheets.
var KnownTypes = []SpecimenType{Type45D, Type60D, Type45DWP, Type60DWP}

// ColumnID identifies an output column by its spreadsheet letter.
type ColumnID string

// MergeSpan describes an inclusive range of consecutive output rows to
// be visually merged into one cell in a single column. Spans are only
// emitted when EndRow > StartRow; a single row never merges.
type MergeSpan struct {
	Col      ColumnID `json:"col" yaml:"col"`
	StartRow int      `json:"start_row" yaml:"start_row"`
	EndRow   int      `json:"end_row" yaml:"end_row"`
}

// Rows returns the number of rows covered by the span.
func (s MergeSpan) Rows() int {
	return s.EndRow - s.StartRow + 1
}

// Header lists the output column titles in the canonical record column
// order: mark prefix, mark number, mark suffix, report number, date
// cast, strength, pour location. Every downstream writer honors this
// order.
var Header = []string{
	"Cube Mark Prefix",
	"Cube Number",
	"Cube Suffix",
	"Report Number",
	"Date Cast",
	"Compressive Strength (MPa)",
	"Pour Location",
}
