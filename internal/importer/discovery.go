package importer

import (
	"context"
	"sort"

	"github.com/google/uuid"
)

// DiscoveryItem is one distinct reference name found in the valid rows,
// annotated with whether it already exists in the destination store.
type DiscoveryItem struct {
	Type     ReferenceType `json:"type"`
	Value    string        `json:"value"`
	Exists   bool          `json:"exists"`
	RecordID *uuid.UUID    `json:"recordId"`
}

// DiscoveryPlan is the metadata discovery output: per reference type, the
// deduplicated names and how many of them the writer will have to create.
type DiscoveryPlan struct {
	ByType          map[ReferenceType][]DiscoveryItem `json:"byType"`
	WillCreateCount map[ReferenceType]int             `json:"willCreateCount"`
}

// Names returns the distinct names of a reference type, sorted.
func (p *DiscoveryPlan) Names(rt ReferenceType) []string {
	items := p.ByType[rt]
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Value)
	}
	return names
}

// referenceNames set-deduplicates the reference names carried by the rows.
func referenceNames(rows []ComponentRow, rt ReferenceType) []string {
	set := make(map[string]struct{})
	for _, row := range rows {
		var v string
		switch rt {
		case RefArea:
			v = row.Area
		case RefSystem:
			v = row.System
		case RefTestPackage:
			v = row.TestPackage
		}
		if v != "" {
			set[v] = struct{}{}
		}
	}
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// DiscoverMetadata scans valid rows for implicit reference-entity names and
// checks, with one batch query per reference type, which already exist. It
// never persists anything.
func DiscoverMetadata(ctx context.Context, store MetadataStore, projectID uuid.UUID, rows []ComponentRow) (*DiscoveryPlan, error) {
	plan := &DiscoveryPlan{
		ByType:          make(map[ReferenceType][]DiscoveryItem),
		WillCreateCount: make(map[ReferenceType]int),
	}

	for _, rt := range ReferenceTypes {
		names := referenceNames(rows, rt)
		if len(names) == 0 {
			plan.ByType[rt] = nil
			continue
		}
		existing, err := store.LookupByName(ctx, projectID, rt, names)
		if err != nil {
			return nil, err
		}
		items := make([]DiscoveryItem, 0, len(names))
		for _, name := range names {
			item := DiscoveryItem{Type: rt, Value: name}
			if id, ok := existing[name]; ok {
				item.Exists = true
				idCopy := id
				item.RecordID = &idCopy
			} else {
				plan.WillCreateCount[rt]++
			}
			items = append(items, item)
		}
		plan.ByType[rt] = items
	}
	return plan, nil
}
