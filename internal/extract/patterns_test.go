// Copyright Meridian Materials Lab Ltd., 2026. All rights reserved.

package extract

import (
	"strings"
	"testing"
)

func TestFindReportNumber(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{
			name:   "report no with colon",
			text:   "Report No.: 04428CU763515\nDate Cast: 02-Jul-2025",
			want:   "04428CU763515",
			wantOK: true,
		},
		{
			name:   "report no without dot",
			text:   "Report No: 04428CU763515",
			want:   "04428CU763515",
			wantOK: true,
		},
		{
			name:   "report number variant",
			text:   "Report Number: 04428CU763516",
			want:   "04428CU763516",
			wantOK: true,
		},
		{
			name:   "case insensitive",
			text:   "REPORT NO.: 04428CU763517",
			want:   "04428CU763517",
			wantOK: true,
		},
		{
			name:   "first occurrence wins",
			text:   "Report No.: FIRST111\nReport No.: SECOND222",
			want:   "FIRST111",
			wantOK: true,
		},
		{
			name:   "absent",
			text:   "no labels here",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindReportNumber(tt.text)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("FindReportNumber = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFindDateCast(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{
			name:   "standard form",
			text:   "Date Cast : 02-Jul-2025",
			want:   "02-Jul-2025",
			wantOK: true,
		},
		{
			name:   "tight colon",
			text:   "Date Cast: 21-Jun-2025",
			want:   "21-Jun-2025",
			wantOK: true,
		},
		{
			name:   "numeric date rejected",
			text:   "Date Cast: 2025-07-02",
			wantOK: false,
		},
		{
			name:   "absent",
			text:   "Report No.: X1",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindDateCast(tt.text)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("FindDateCast = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFindPourLocation(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{
			name:   "single line bounded by date cast",
			text:   "Pour Location : 23/F Zone 2\nDate Cast : 02-Jul-2025",
			want:   "23/F Zone 2",
			wantOK: true,
		},
		{
			name:   "wrapped value collapses whitespace",
			text:   "Pour Location : 23/F Zone 2\n   Core Wall C3\nDate Cast : 02-Jul-2025",
			want:   "23/F Zone 2 Core Wall C3",
			wantOK: true,
		},
		{
			name:   "short label at end of block",
			text:   "Location : Podium Slab Area B",
			want:   "Podium Slab Area B",
			wantOK: true,
		},
		{
			name:   "absent",
			text:   "Date Cast : 02-Jul-2025",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindPourLocation(tt.text)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("FindPourLocation = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFindSpecimenLines(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []SpecimenLine
	}{
		{
			name: "full mark on one line",
			lines: []string{
				"CU763515   20250801-60D-6A   100   2121.5   910.5   82.6   S -",
			},
			want: []SpecimenLine{{Mark: "20250801-60D-6A", Strength: "82.6"}},
		},
		{
			name: "suffix letter on next line",
			lines: []string{
				"CU763516   20250801-60D-11   100   2118.0   877.3   79.8   S -",
				"A",
			},
			want: []SpecimenLine{{Mark: "20250801-60D-11A", Strength: "79.8"}},
		},
		{
			name: "mark ends at separator",
			lines: []string{
				"CU763517   20250802-45DWP-   100   2120.1   512.4   46.6   S -",
				"1A",
			},
			want: []SpecimenLine{{Mark: "20250802-45DWP-1A", Strength: "46.6"}},
		},
		{
			name: "dash and id on next line",
			lines: []string{
				"CU763518   20250802-45DWP   100   2119.4   508.9   46.3   S -",
				"-1A",
			},
			want: []SpecimenLine{{Mark: "20250802-45DWP-1A", Strength: "46.3"}},
		},
		{
			name: "dash and id two lines down",
			lines: []string{
				"CU763519   20250802-45DWP   100   2122.8   520.0   47.3   S -",
				"Zone 2 continuation",
				"-2B",
			},
			want: []SpecimenLine{{Mark: "20250802-45DWP-2B", Strength: "47.3"}},
		},
		{
			name: "bare mark and strength row",
			lines: []string{
				"20250702-60D-1A 82.6",
			},
			want: []SpecimenLine{{Mark: "20250702-60D-1A", Strength: "82.6"}},
		},
		{
			name: "mixed entries keep encounter order",
			lines: []string{
				"header text",
				"CU763515   20250801-60D-6A   100   2121.5   910.5   82.6   S -",
				"CU763516   20250801-60D-11   100   2118.0   877.3   79.8   S -",
				"A",
				"footer text",
			},
			want: []SpecimenLine{
				{Mark: "20250801-60D-6A", Strength: "82.6"},
				{Mark: "20250801-60D-11A", Strength: "79.8"},
			},
		},
		{
			name: "non specimen lines yield nothing",
			lines: []string{
				"Report No.: 04428CU763515",
				"Date Cast : 02-Jul-2025",
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindSpecimenLines(tt.lines)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lines, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d: got %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFindSpecimenLinesConsumesContinuation(t *testing.T) {
	// The standalone "A" consumed by the suffix case must not be
	// rescanned as the start of another entry.
	lines := []string{
		"CU763516   20250801-60D-11   100   2118.0   877.3   79.8   S -",
		"A",
		"CU763517   20250801-60D-12A   100   2117.2   880.0   80.0   S -",
	}
	got := FindSpecimenLines(lines)
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2: %+v", len(got), got)
	}
	if got[0].Mark != "20250801-60D-11A" || got[1].Mark != "20250801-60D-12A" {
		t.Errorf("marks = %q, %q", got[0].Mark, got[1].Mark)
	}
}

func TestSpecimenTailStrengthColumn(t *testing.T) {
	// The strength is the second numeric token before the terminal
	// "S -" marker, not the first numeric column after the mark.
	line := "CU763515   20250801-60D-6A   100   100   100   2121.5   910.5   82.6   S -"
	got := FindSpecimenLines([]string{line})
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	if got[0].Strength != "82.6" {
		t.Errorf("strength = %q, want %q", got[0].Strength, "82.6")
	}
	if !strings.HasSuffix(got[0].Mark, "6A") {
		t.Errorf("mark = %q", got[0].Mark)
	}
}
