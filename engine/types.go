package engine

// ============================================================================
// ENGINE TYPES — Grid Expansion Impact Pipeline
// ============================================================================
// The pipeline is a chain of value-to-value transforms:
//
//   []PlanRow → []EnrichedRow → []ImpactRow → Matrix → []LongRow → ChartConfig
//
// Every stage owns its output; nothing is mutated in place.
// ============================================================================

// UnspecifiedSubtype is the sentinel written into rows whose component
// subtype is absent or empty. Factor tables key on it directly
// (e.g. substation/unspecified).
const UnspecifiedSubtype = "unspecified"

// AllGroups is the sentinel group filter meaning "no filtering".
const AllGroups = "All"

// PlanRow is one planned installation event: in year Year, UnitCount units
// of ComponentType/ComponentSubtype are installed. Duplicate years across
// rows are expected — one row per subtype per year.
type PlanRow struct {
	Year             int     `json:"year"`
	ComponentType    string  `json:"component_type"`
	ComponentSubtype string  `json:"component_subtype,omitempty"`
	UnitCount        float64 `json:"unit_count"`
}

// EnrichedRow is a PlanRow after enrichment: the subtype is never empty and
// Component carries the derived display label ("underground cable").
// Component is the join key between data and the chart color map.
type EnrichedRow struct {
	PlanRow
	Component string `json:"component"`
}

// ImpactRow is an EnrichedRow plus its computed impact value.
// Computed once per calculation and never mutated; a recalculation
// replaces the whole table.
type ImpactRow struct {
	EnrichedRow
	CO2 float64 `json:"co2"`
}

// Controls are the resolved values of the user-facing chart controls.
type Controls struct {
	// Group filters rows to a single component_type. AllGroups (or empty)
	// keeps every row.
	Group string `json:"group"`
	// Cumulative replaces each component column with its running total
	// across ascending years.
	Cumulative bool `json:"cumulative"`
}

// LongRow is one (year, component, value) cell of the dense pivoted matrix,
// the format the chart renderer consumes.
type LongRow struct {
	Year      int     `json:"year"`
	Component string  `json:"component"`
	Value     float64 `json:"value"`
}

// Matrix is the dense year × component impact matrix. Years are ascending;
// Components keep first-seen order from the grouped input. Cells[i][j] is
// the summed impact for Years[i] × Components[j], 0 where no row existed.
type Matrix struct {
	Years      []int
	Components []string
	Cells      [][]float64
}

// ============================================================================
// RESULT — render-ready output
// ============================================================================

// Result is the executor's render-ready output for one set of controls.
type Result struct {
	Rows        []ImpactRow  `json:"rows"`
	Long        []LongRow    `json:"long"`
	Chart       *ChartConfig `json:"chart,omitempty"`
	Groups      []string     `json:"groups"`
	Total       float64      `json:"total"`
	Unit        string       `json:"unit,omitempty"`
	Category    string       `json:"category,omitempty"`
	Scenario    string       `json:"scenario,omitempty"`
	RowCount    int          `json:"rowCount"`
	FilteredOut int          `json:"filteredOut"`
}

// ChartConfig defines how to render the stacked bar chart.
type ChartConfig struct {
	ChartType  string            `json:"chartType"`
	Title      string            `json:"title"`
	XAxis      string            `json:"xAxis"`
	YAxis      string            `json:"yAxis"`
	Series     []ChartSeries     `json:"series"`
	ColorMap   map[string]string `json:"colorMap"`
	ShowLegend bool              `json:"showLegend"`
	ShowGrid   bool              `json:"showGrid"`
}

// ChartSeries is one component's bars across years.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint is a single bar segment.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}
