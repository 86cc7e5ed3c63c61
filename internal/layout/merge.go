// Copyright Meridian Materials Lab Ltd., 2026. All rights reserved.

package layout

import (
	"github.com/wkcheung/cubereport/pkg/types"
)

// RunSpans computes run-length merge spans for one column of values:
// each maximal run of consecutive equal values becomes one span. Rows
// are 1-indexed relative to the group's first data row; offset shifts
// them past header rows owned by the writer. A run of length 1 emits
// no span, and spans never overlap.
func RunSpans(values []string, col types.ColumnID, offset int) []types.MergeSpan {
	var spans []types.MergeSpan
	i := 0
	for i < len(values) {
		start := i
		for i < len(values) && values[i] == values[start] {
			i++
		}
		if i-start > 1 {
			spans = append(spans, types.MergeSpan{
				Col:      col,
				StartRow: start + 1 + offset,
				EndRow:   i + offset,
			})
		}
	}
	return spans
}

// PairSpans computes fixed-stride merge spans for one column over n
// rows: rows are paired (1,2), (3,4), ... regardless of value, giving
// floor(n/2) two-row spans. A trailing unpaired row emits no span.
func PairSpans(n int, col types.ColumnID, offset int) []types.MergeSpan {
	spans := make([]types.MergeSpan, 0, n/2)
	for row := 1; row+1 <= n; row += 2 {
		spans = append(spans, types.MergeSpan{
			Col:      col,
			StartRow: row + offset,
			EndRow:   row + 1 + offset,
		})
	}
	return spans
}
