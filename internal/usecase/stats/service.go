// Package stats provides entity extraction and frequency aggregation over
// dataset columns. Cells hold delimiter-separated entity lists (narasumber,
// media outlets, locations); tokens marked with the upstream exclusion
// sentinel are dropped during extraction.
package stats

import (
	"strings"

	"github.com/iboet2004/db-rilis/internal/domain/entity"
)

// ExcludeSentinel marks tokens the sheet maintainers want ignored.
// Any token containing it is dropped verbatim, the rest of the cell survives.
const ExcludeSentinel = "##"

// Extract splits a raw cell into its entity tokens.
// Tokens are trimmed but otherwise verbatim: no case folding, no dedup,
// split order preserved. Repeated tokens within one cell count repeatedly
// downstream; that weighting is intentional.
func Extract(raw, separator string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if separator == "" {
		separator = entity.DefaultSeparator
	}

	pieces := strings.Split(raw, separator)
	out := make([]string, 0, len(pieces))
	for _, p := range pieces {
		token := strings.TrimSpace(p)
		if token == "" || strings.Contains(token, ExcludeSentinel) {
			continue
		}
		out = append(out, token)
	}
	return out
}

// Service aggregates extracted entities across a whole dataset column.
type Service struct{}

// Aggregate counts entity occurrences over every row of the field's column.
// A missing column or empty dataset yields empty Counts, never an error:
// the caller renders it as a "no data" panel.
func (Service) Aggregate(ds *entity.Dataset, field entity.ResolvedField) *Counts {
	counts := NewCounts()
	if !field.Present() {
		return counts
	}
	for _, cell := range ds.Column(field.Column) {
		for _, token := range Extract(cell, field.Separator) {
			counts.Add(token)
		}
	}
	return counts
}

// Unique returns the deduplicated entity set of a column in first-seen
// order. Used for the locations panel, where each place appears once no
// matter how many releases mention it.
func (Service) Unique(ds *entity.Dataset, field entity.ResolvedField) []string {
	if !field.Present() {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, cell := range ds.Column(field.Column) {
		for _, token := range Extract(cell, field.Separator) {
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			out = append(out, token)
		}
	}
	return out
}
