// Copyright Meridian Materials Lab Ltd., 2026. All rights reserved.

// Package validate inspects extracted record sequences and reports
// problems without altering the records or blocking downstream output.
package validate

import (
	"fmt"
	"math"
	"time"

	"github.com/wkcheung/cubereport/internal/layout"
	"github.com/wkcheung/cubereport/pkg/types"
)

const (
	defaultMinStrength = 20.0
	defaultMaxStrength = 100.0
)

// dateCastLayout is the only accepted cast date shape: two-digit day,
// three-letter month abbreviation, four-digit year.
const dateCastLayout = "02-Jan-2006"

// Kind classifies a validation finding.
type Kind string

const (
	KindMissingField       Kind = "missing_field"
	KindStrengthOutOfRange Kind = "strength_out_of_range"
	KindMalformedDate      Kind = "malformed_date"
	KindDuplicateMark      Kind = "duplicate_mark"
)

// Problem is one validation finding. Row is the 1-based position of the
// record in the checked sequence.
type Problem struct {
	Kind   Kind   `json:"kind" yaml:"kind"`
	Row    int    `json:"row" yaml:"row"`
	Field  string `json:"field,omitempty" yaml:"field,omitempty"`
	Detail string `json:"detail" yaml:"detail"`
}

// Check runs all validation passes over a record sequence and returns
// the findings in record order, with per-record checks in a fixed
// order. Reporting is exhaustive: a record with several problems yields
// several findings, and every record sharing a duplicated mark is
// reported, not just the later occurrences. Check never fails; it only
// classifies.
func Check(records []types.Record, cfg types.ValidationConfig) []Problem {
	minStrength := cfg.MinStrength
	maxStrength := cfg.MaxStrength
	if minStrength == 0 && maxStrength == 0 {
		minStrength, maxStrength = defaultMinStrength, defaultMaxStrength
	}

	markCounts := make(map[string]int, len(records))
	for _, r := range records {
		markCounts[r.Mark()]++
	}

	var problems []Problem
	for i, r := range records {
		row := i + 1

		for _, f := range []struct{ name, value string }{
			{"report_number", r.ReportNumber},
			{"date_cast", r.DateCast},
			{"pour_location", r.PourLocation},
		} {
			if f.value == "" {
				problems = append(problems, Problem{
					Kind:   KindMissingField,
					Row:    row,
					Field:  f.name,
					Detail: fmt.Sprintf("missing %s", f.name),
				})
			}
		}
		// A zero reading falls below the lower bound like any other value.
		if r.StrengthMPa < minStrength || r.StrengthMPa > maxStrength {
			problems = append(problems, Problem{
				Kind:   KindStrengthOutOfRange,
				Row:    row,
				Field:  "strength_mpa",
				Detail: fmt.Sprintf("strength %.1f MPa outside %.1f-%.1f MPa", r.StrengthMPa, minStrength, maxStrength),
			})
		}

		if r.DateCast != "" {
			if _, err := time.Parse(dateCastLayout, r.DateCast); err != nil {
				problems = append(problems, Problem{
					Kind:   KindMalformedDate,
					Row:    row,
					Field:  "date_cast",
					Detail: fmt.Sprintf("invalid date_cast %q", r.DateCast),
				})
			}
		}

		if mark := r.Mark(); mark != "" && markCounts[mark] > 1 {
			problems = append(problems, Problem{
				Kind:   KindDuplicateMark,
				Row:    row,
				Detail: fmt.Sprintf("duplicate mark %q", mark),
			})
		}
	}

	return problems
}

// Stats summarizes a record sequence by specimen type.
type Stats struct {
	Total       int                            `json:"total" yaml:"total"`
	ByType      map[types.SpecimenType]int     `json:"by_type" yaml:"by_type"`
	AvgStrength map[types.SpecimenType]float64 `json:"avg_strength" yaml:"avg_strength"`
}

// Summarize computes per-type record counts and average strengths,
// rounded to two decimals.
func Summarize(records []types.Record) Stats {
	stats := Stats{
		Total:       len(records),
		ByType:      make(map[types.SpecimenType]int),
		AvgStrength: make(map[types.SpecimenType]float64),
	}

	sums := make(map[types.SpecimenType]float64)
	for _, r := range records {
		t := layout.Classify(r.MarkPrefix)
		stats.ByType[t]++
		sums[t] += r.StrengthMPa
	}
	for t, sum := range sums {
		stats.AvgStrength[t] = math.Round(sum/float64(stats.ByType[t])*100) / 100
	}

	return stats
}
