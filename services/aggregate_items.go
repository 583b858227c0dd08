package services

import "strings"

// AggregateKey merges placed schematic items into one displayed unit.
// A typed composite key, so "Riser-12" + id "3" can never collide with
// "Riser" + id "12-3".
type AggregateKey struct {
	Name       string
	OriginalID string
}

// MergedItem is one display/pricing unit produced from the flat placed
// list.
type MergedItem struct {
	SchematicItem
	Count int      // placed instances folded into this unit
	IDs   []string // ids of every folded instance
}

// MergeAggregateItems collapses the placed list for display and
// per-unit pricing. Items flagged as aggregate entries fold together
// when they share a lowercased name and original catalogue id; the two
// halves of a connector pair fold by pair id so each pair lists once.
// Everything else passes through unchanged, in placement order.
func MergeAggregateItems(items []SchematicItem) []MergedItem {
	var merged []MergedItem
	byKey := map[AggregateKey]int{}
	byPair := map[string]int{}

	for _, it := range items {
		if it.ItemType == "connectors" && it.PairID != "" {
			if idx, ok := byPair[it.PairID]; ok {
				merged[idx].IDs = append(merged[idx].IDs, it.ID)
				continue
			}
			merged = append(merged, MergedItem{SchematicItem: it, Count: 1, IDs: []string{it.ID}})
			byPair[it.PairID] = len(merged) - 1
			continue
		}

		if it.AggregateEntry {
			key := AggregateKey{Name: strings.ToLower(it.Name), OriginalID: it.OriginalID}
			if idx, ok := byKey[key]; ok {
				merged[idx].Count++
				merged[idx].IDs = append(merged[idx].IDs, it.ID)
				continue
			}
			merged = append(merged, MergedItem{SchematicItem: it, Count: 1, IDs: []string{it.ID}})
			byKey[key] = len(merged) - 1
			continue
		}

		merged = append(merged, MergedItem{SchematicItem: it, Count: 1, IDs: []string{it.ID}})
	}

	return merged
}
