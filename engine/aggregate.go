package engine

import "sort"

// ============================================================================
// AGGREGATION & RESHAPING — filter → group/sum → pivot → cumsum → melt
// ============================================================================
// Single pass over the computed table per step. The pivot is dense: every
// (year, component) pair observed after filtering gets a cell, missing
// combinations are 0, never absent. Years sort ascending; components keep
// first-seen order so the color map stays stable.
// ============================================================================

// FilterGroup keeps rows whose ComponentType equals group. AllGroups or
// the empty string is the identity filter.
func FilterGroup(rows []ImpactRow, group string) []ImpactRow {
	if group == "" || group == AllGroups {
		return rows
	}
	filtered := make([]ImpactRow, 0, len(rows))
	for _, r := range rows {
		if r.ComponentType == group {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// GroupSum groups rows by (year, component) and sums CO2 per cell,
// returning the dense pivoted matrix. An empty input yields an empty
// matrix, not an error.
func GroupSum(rows []ImpactRow) Matrix {
	if len(rows) == 0 {
		return Matrix{}
	}

	type cellKey struct {
		year      int
		component string
	}

	sums := make(map[cellKey]float64)
	yearSeen := make(map[int]bool)
	compSeen := make(map[string]bool)

	var years []int
	var components []string

	for _, r := range rows {
		if !yearSeen[r.Year] {
			yearSeen[r.Year] = true
			years = append(years, r.Year)
		}
		if !compSeen[r.Component] {
			compSeen[r.Component] = true
			components = append(components, r.Component)
		}
		sums[cellKey{r.Year, r.Component}] += r.CO2
	}

	sort.Ints(years)

	cells := make([][]float64, len(years))
	for i, y := range years {
		cells[i] = make([]float64, len(components))
		for j, c := range components {
			cells[i][j] = sums[cellKey{y, c}] // dense: absent pairs stay 0
		}
	}

	return Matrix{Years: years, Components: components, Cells: cells}
}

// Cumulative returns a copy of the matrix with each component column
// replaced by its running total across ascending years. With non-negative
// inputs every column is monotonically non-decreasing.
func (m Matrix) Cumulative() Matrix {
	out := Matrix{
		Years:      m.Years,
		Components: m.Components,
		Cells:      make([][]float64, len(m.Cells)),
	}
	running := make([]float64, len(m.Components))
	for i, row := range m.Cells {
		out.Cells[i] = make([]float64, len(row))
		for j, v := range row {
			running[j] += v
			out.Cells[i][j] = running[j]
		}
	}
	return out
}

// Melt flattens the matrix back to long form: exactly
// len(Years) × len(Components) rows, year-major.
func (m Matrix) Melt() []LongRow {
	long := make([]LongRow, 0, len(m.Years)*len(m.Components))
	for i, y := range m.Years {
		for j, c := range m.Components {
			long = append(long, LongRow{Year: y, Component: c, Value: m.Cells[i][j]})
		}
	}
	return long
}

// Aggregate runs the full reshaping stage for one set of controls.
func Aggregate(rows []ImpactRow, ctrl Controls) []LongRow {
	matrix := GroupSum(FilterGroup(rows, ctrl.Group))
	if ctrl.Cumulative {
		matrix = matrix.Cumulative()
	}
	return matrix.Melt()
}

// ============================================================================
// GROUP ENUMERATION
// ============================================================================

// ComponentTypes returns the distinct component types of a computed table
// in first-seen order. The UI prepends AllGroups to build its filter.
func ComponentTypes(rows []ImpactRow) []string {
	seen := make(map[string]bool)
	var types []string
	for _, r := range rows {
		if !seen[r.ComponentType] {
			seen[r.ComponentType] = true
			types = append(types, r.ComponentType)
		}
	}
	return types
}

// Components returns the distinct component labels in first-seen order.
// This order drives stable palette assignment.
func Components(rows []ImpactRow) []string {
	seen := make(map[string]bool)
	var components []string
	for _, r := range rows {
		if !seen[r.Component] {
			seen[r.Component] = true
			components = append(components, r.Component)
		}
	}
	return components
}
