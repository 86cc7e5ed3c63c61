// Copyright Meridian Materials Lab Ltd., 2026. All rights reserved.

package layout

import (
	"github.com/wkcheung/cubereport/pkg/types"
)

// Group is one ordered sub-sequence of records sharing a specimen type.
type Group struct {
	Type    types.SpecimenType
	Records []types.Record
}

// Partition holds the result of splitting a record sequence by type:
// the four known groups in fixed type order, plus whatever could not be
// classified. Callers that want to drop unclassified records simply
// ignore Unknown.
type Partition struct {
	Groups  []Group
	Unknown []types.Record
}

// PartitionRecords splits records into the four known specimen types,
// preserving relative input order within every bucket. It is a stable
// partition, not a sort: concatenating the groups in type order yields
// exactly the classified input records, each exactly once.
func PartitionRecords(records []types.Record) Partition {
	byType := make(map[types.SpecimenType][]types.Record, len(types.KnownTypes))
	var unknown []types.Record

	for _, r := range records {
		t := Classify(r.MarkPrefix)
		if t == types.TypeUnknown {
			unknown = append(unknown, r)
			continue
		}
		byType[t] = append(byType[t], r)
	}

	groups := make([]Group, 0, len(types.KnownTypes))
	for _, t := range types.KnownTypes {
		groups = append(groups, Group{Type: t, Records: byType[t]})
	}

	return Partition{Groups: groups, Unknown: unknown}
}
