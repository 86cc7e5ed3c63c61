// Copyright Meridian Materials Lab Ltd., 2026. All rights reserved.

// Package layout partitions record sequences by specimen type and
// computes the cell-merge geometry for the spreadsheet writer.
package layout

import (
	"strings"

	"github.com/wkcheung/cubereport/pkg/types"
)

// Classify maps a mark prefix to its specimen type. Matching is
// case-insensitive substring containment with fixed precedence: the
// waterproofed branches are tested first, so a prefix containing
// "45DWP" never falls through to plain 45D.
func Classify(markPrefix string) types.SpecimenType {
	mark := strings.ToUpper(markPrefix)
	is45 := strings.Contains(mark, "45D")
	is60 := strings.Contains(mark, "60D")
	isWP := strings.Contains(mark, "WP")

	switch {
	case is45 && isWP:
		return types.Type45DWP
	case is60 && isWP:
		return types.Type60DWP
	case is45:
		return types.Type45D
	case is60:
		return types.Type60D
	default:
		return types.TypeUnknown
	}
}
