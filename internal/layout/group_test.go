// Copyright Meridian Materials Lab Ltd., 2026. All rights reserved.

package layout

import (
	"testing"

	"github.com/wkcheung/cubereport/pkg/types"
)

func rec(prefix, number string) types.Record {
	return types.Record{MarkPrefix: prefix, MarkNumber: number, MarkSuffix: "A"}
}

func TestPartitionRecords(t *testing.T) {
	records := []types.Record{
		rec("20250621-60D-", "1"),
		rec("20250621-45D-", "1"),
		rec("20250621-60D-", "2"),
		rec("20250622-45DWP-", "1"),
		rec("20250621-30X-", "1"), // unclassifiable
		rec("20250621-45D-", "2"),
	}

	p := PartitionRecords(records)

	if len(p.Groups) != len(types.KnownTypes) {
		t.Fatalf("got %d groups, want %d", len(p.Groups), len(types.KnownTypes))
	}
	for i, g := range p.Groups {
		if g.Type != types.KnownTypes[i] {
			t.Errorf("group %d type = %v, want %v", i, g.Type, types.KnownTypes[i])
		}
	}

	byType := map[types.SpecimenType][]types.Record{}
	for _, g := range p.Groups {
		byType[g.Type] = g.Records
	}

	if n := len(byType[types.Type45D]); n != 2 {
		t.Errorf("45D count = %d, want 2", n)
	}
	if n := len(byType[types.Type60D]); n != 2 {
		t.Errorf("60D count = %d, want 2", n)
	}
	if n := len(byType[types.Type45DWP]); n != 1 {
		t.Errorf("45DWP count = %d, want 1", n)
	}
	if n := len(byType[types.Type60DWP]); n != 0 {
		t.Errorf("60DWP count = %d, want 0", n)
	}
	if n := len(p.Unknown); n != 1 {
		t.Errorf("unknown count = %d, want 1", n)
	}

	// Relative order inside a bucket follows input order.
	if byType[types.Type60D][0].MarkNumber != "1" || byType[types.Type60D][1].MarkNumber != "2" {
		t.Errorf("60D order not preserved: %+v", byType[types.Type60D])
	}

	// Groups plus Unknown account for every input record exactly once.
	total := len(p.Unknown)
	for _, g := range p.Groups {
		total += len(g.Records)
	}
	if total != len(records) {
		t.Errorf("partition covers %d records, want %d", total, len(records))
	}
}

func TestPartitionRecordsEmpty(t *testing.T) {
	p := PartitionRecords(nil)
	if len(p.Groups) != len(types.KnownTypes) {
		t.Fatalf("got %d groups, want %d", len(p.Groups), len(types.KnownTypes))
	}
	for _, g := range p.Groups {
		if len(g.Records) != 0 {
			t.Errorf("group %v not empty", g.Type)
		}
	}
	if len(p.Unknown) != 0 {
		t.Errorf("unknown not empty")
	}
}
