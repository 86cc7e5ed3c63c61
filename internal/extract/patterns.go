// Copyright Meridian Materials Lab Ltd., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"
)

// Field recognizers for page-level metadata. Each returns the first
// occurrence in the block; a field that never matches reports ok=false
// and callers decide the fallback.

var reportNumberRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Report\s+No\.?:?\s*([A-Z0-9]+)`),
	regexp.MustCompile(`(?i)Report\s+Number:?\s*([A-Z0-9]+)`),
}

var dateCastRe = regexp.MustCompile(`(?i)Date\s+Cast\s*:\s*(\d{2}-[A-Za-z]{3}-\d{4})`)

// pourLocationRe captures from the label up to the next recognized
// label ("Date Cast") or the end of the block. The value may wrap
// across source lines.
var pourLocationRe = regexp.MustCompile(`(?is)(?:Pour\sLocation|Location)\s*:\s*(.+?)(?:\nDate\sCast|\z)`)

// FindReportNumber returns the report number token from a page block.
func FindReportNumber(text string) (string, bool) {
	for _, re := range reportNumberRes {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}

// FindDateCast returns the cast date in DD-Mon-YYYY form from a page
// block. Other date shapes are not accepted.
func FindDateCast(text string) (string, bool) {
	if m := dateCastRe.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	return "", false
}

// FindPourLocation returns the pour location from a page block with
// internal whitespace collapsed to single spaces.
func FindPourLocation(text string) (string, bool) {
	m := pourLocationRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.Join(strings.Fields(m[1]), " "), true
}

// SpecimenLine is one recognized specimen entry: the full mark token
// and the raw strength token, both exactly as read.
type SpecimenLine struct {
	Mark     string
	Strength string
}

// Specimen rows carry a lab cube ID, the customer mark, dimensional
// columns, and end with "<load> <strength> S -". The strength is the
// second numeric token before the terminal marker. PDF text extraction
// wraps the mark in several ways, so the mark group varies per case and
// the remainder may continue on following lines.
const specimenTail = `\s+.*?\s+(\d+\.?\d*)\s+(\d+\.?\d*)\s+S\s+-`

var (
	// Case 1: complete mark on the specimen line (20250801-60D-6A).
	fullMarkRe = regexp.MustCompile(`CU\d+\s+(\d{8}-\d+[A-Z]+-\d+[A-Z])` + specimenTail)
	// Case 2: mark missing its suffix letter; the letter stands alone
	// on the next line (20250801-60D-11 / A).
	noSuffixRe = regexp.MustCompile(`CU\d+\s+(\d{8}-\d+[A-Z]+-\d+)` + specimenTail)
	// Case 3: mark ends at the separator; number+letter follow on the
	// next line (20250802-45DWP- / 1A).
	bareDashRe = regexp.MustCompile(`CU\d+\s+(\d{8}-\d+[A-Z]+-)` + specimenTail)
	// Cases 4 and 5: mark ends before the separator; -number+letter
	// follow on the next line, or two lines down with one interleaved
	// continuation line (20250802-45DWP / -1A).
	noDashRe = regexp.MustCompile(`CU\d+\s+(\d{8}-\d+[A-Z]+)` + specimenTail)

	trailingIDRe     = regexp.MustCompile(`^(\d+)([A-Z])$`)
	dashTrailingIDRe = regexp.MustCompile(`^-\s*(\d+)([A-Z])$`)

	// Fallback: a pre-joined "<mark> <strength>" row with no lab cube ID
	// or dimensional columns. The mark follows the decomposer grammar.
	bareLineRe = regexp.MustCompile(`^(\S+-\d+[A-Z])\s+(\d+\.?\d*)$`)
)

// FindSpecimenLines scans a page's lines for specimen entries and
// returns one (mark, strength) pair per recognized entry, in encounter
// order. Continuation lines consumed by a multi-line case are not
// rescanned.
func FindSpecimenLines(lines []string) []SpecimenLine {
	var out []SpecimenLine
	i := 0
	for i < len(lines) {
		sl, next, ok := matchSpecimenLine(lines, i)
		if !ok {
			i++
			continue
		}
		out = append(out, sl)
		i = next
	}
	return out
}

// matchSpecimenLine tries the five layout cases against line i in
// fixed precedence order, then the bare "<mark> <strength>" fallback,
// and returns the assembled specimen line plus the index of the next
// unconsumed line.
func matchSpecimenLine(lines []string, i int) (SpecimenLine, int, bool) {
	line := strings.TrimSpace(lines[i])

	if m := fullMarkRe.FindStringSubmatch(line); m != nil {
		return SpecimenLine{Mark: m[1], Strength: m[3]}, i + 1, true
	}

	if m := noSuffixRe.FindStringSubmatch(line); m != nil && i+1 < len(lines) {
		next := strings.TrimSpace(lines[i+1])
		if len(next) == 1 && next[0] >= 'A' && next[0] <= 'Z' {
			return SpecimenLine{Mark: m[1] + next, Strength: m[3]}, i + 2, true
		}
	}

	if m := bareDashRe.FindStringSubmatch(line); m != nil && i+1 < len(lines) {
		next := strings.TrimSpace(lines[i+1])
		if id := trailingIDRe.FindStringSubmatch(next); id != nil {
			return SpecimenLine{Mark: m[1] + id[1] + id[2], Strength: m[3]}, i + 2, true
		}
	}

	if m := noDashRe.FindStringSubmatch(line); m != nil {
		if i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if id := dashTrailingIDRe.FindStringSubmatch(next); id != nil {
				return SpecimenLine{Mark: m[1] + "-" + id[1] + id[2], Strength: m[3]}, i + 2, true
			}
		}
		if i+2 < len(lines) {
			over := strings.TrimSpace(lines[i+2])
			if id := dashTrailingIDRe.FindStringSubmatch(over); id != nil {
				return SpecimenLine{Mark: m[1] + "-" + id[1] + id[2], Strength: m[3]}, i + 3, true
			}
		}
	}

	if m := bareLineRe.FindStringSubmatch(line); m != nil {
		return SpecimenLine{Mark: m[1], Strength: m[2]}, i + 1, true
	}

	return SpecimenLine{}, i, false
}
