package engine

import "strings"

// ============================================================================
// ROW ENRICHMENT — Normalizes raw plan rows
// ============================================================================
// Two guarantees after this stage, for every row:
//   - ComponentSubtype is non-empty (absent → UnspecifiedSubtype)
//   - Component is a non-empty display label, subtype first
// ============================================================================

// Enrich normalizes plan rows into enriched rows. It never fails: column
// presence is the schema package's concern, value gaps are handled here.
func Enrich(rows []PlanRow) []EnrichedRow {
	enriched := make([]EnrichedRow, 0, len(rows))
	for _, r := range rows {
		enriched = append(enriched, enrichRow(r))
	}
	return enriched
}

func enrichRow(r PlanRow) EnrichedRow {
	r.ComponentSubtype = strings.TrimSpace(r.ComponentSubtype)
	if r.ComponentSubtype == "" {
		r.ComponentSubtype = UnspecifiedSubtype
	}
	r.ComponentType = strings.TrimSpace(r.ComponentType)

	return EnrichedRow{
		PlanRow:   r,
		Component: ComponentLabel(r.ComponentSubtype, r.ComponentType),
	}
}

// ComponentLabel derives the display/series label for a subtype+type pair.
// Identical pairs always produce identical labels — this is the join key
// between rows and the chart color map.
func ComponentLabel(subtype, componentType string) string {
	return strings.TrimSpace(subtype + " " + componentType)
}
