// Copyright Meridian Materials Lab Ltd., 2026. All rights reserved.

package layout

import (
	"testing"

	"github.com/wkcheung/cubereport/pkg/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		prefix string
		want   types.SpecimenType
	}{
		{"20250621-45D-", types.Type45D},
		{"20250621-60D-", types.Type60D},
		{"20250621-45DWP-", types.Type45DWP},
		{"20250621-60DWP-", types.Type60DWP},
		{"20250621-45dwp-", types.Type45DWP},
		{"20250621-60dWp-", types.Type60DWP},
		{"20250621-30D-", types.TypeUnknown},
		{"", types.TypeUnknown},
		{"garbage", types.TypeUnknown},
	}

	for _, tt := range tests {
		if got := Classify(tt.prefix); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.prefix, got, tt.want)
		}
	}
}

// Waterproofed prefixes contain the plain type as a substring; the
// waterproofed branch must win.
func TestClassifyWaterproofPrecedence(t *testing.T) {
	if got := Classify("20250802-45DWP-"); got != types.Type45DWP {
		t.Errorf("45DWP classified as %v", got)
	}
	if got := Classify("20250802-60DWP-"); got != types.Type60DWP {
		t.Errorf("60DWP classified as %v", got)
	}
}
