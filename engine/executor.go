package engine

import (
	"fmt"
	"log"
)

// ============================================================================
// EXECUTOR — full pipeline for one calculation request
// ============================================================================
// Pipeline:
//   1. Enrich rows (sentinel subtype, component label)
//   2. Compute per-row impacts from the factor table
//   3. Filter / group / pivot / (cumulative) / melt
//   4. Build chart config with stable colors
//
// Stateless request/response — identical inputs give identical results.
// Callers wanting to flip controls without recomputing impacts should run
// Calculate once and Reslice per control change.
// ============================================================================

// Execute runs the whole pipeline and returns a render-ready Result.
func Execute(plan []PlanRow, ctrl Controls, opts ...Option) (*Result, error) {
	cfg := applyOptions(opts)

	rows := Calculate(plan, cfg.Factors)
	log.Printf("🧮 gridimpact: computed %d rows, total=%.2f, group=%s, cumulative=%v",
		len(rows), TotalImpact(rows), displayGroup(ctrl.Group), ctrl.Cumulative)

	return reslice(rows, ctrl, cfg), nil
}

// Calculate runs enrichment and impact computation — the part worth
// caching. The returned table is a fresh value each call.
func Calculate(plan []PlanRow, factors FactorTable) []ImpactRow {
	if factors == nil {
		factors = ReferenceFactors()
	}
	return ComputeImpacts(Enrich(plan), factors)
}

// Reslice re-aggregates an already computed table for a new set of
// controls. No impact recomputation happens.
func Reslice(rows []ImpactRow, ctrl Controls, opts ...Option) *Result {
	return reslice(rows, ctrl, applyOptions(opts))
}

func reslice(rows []ImpactRow, ctrl Controls, cfg *config) *Result {
	// Filter once; the aggregation steps run on the filtered slice.
	filtered := FilterGroup(rows, ctrl.Group)
	matrix := GroupSum(filtered)
	if ctrl.Cumulative {
		matrix = matrix.Cumulative()
	}
	long := matrix.Melt()

	// Color assignment iterates the unfiltered component list so a group
	// toggle never reshuffles series colors.
	components := Components(rows)

	yAxis := "Impact"
	if cfg.Category != "" {
		yAxis = fmt.Sprintf("%s Impact (%s)", cfg.Category, cfg.Unit)
	}

	return &Result{
		Rows:        rows,
		Long:        long,
		Chart:       BuildChart(long, components, cfg.Title, yAxis, cfg.Palette),
		Groups:      append([]string{AllGroups}, ComponentTypes(rows)...),
		Total:       TotalImpact(filtered),
		Unit:        cfg.Unit,
		Category:    cfg.Category,
		Scenario:    cfg.Scenario,
		RowCount:    len(rows),
		FilteredOut: len(rows) - len(filtered),
	}
}

func displayGroup(group string) string {
	if group == "" {
		return AllGroups
	}
	return group
}
