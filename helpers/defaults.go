package helpers

import "github.com/gridimpact-org/gridimpact/engine"

// DefaultPlanCSV is the documented demo expansion plan that seeds the
// editable grid and the CLI when no input file is given.
const DefaultPlanCSV = `year,component_type,component_subtype,unit_count
2020,cable,underground,65
2020,cable,overhead,50
2020,transformer,step-up,30
2020,transformer,step-down,25
2020,substation,,23
2025,cable,underground,35
2025,cable,overhead,40
2025,transformer,step-up,12
2025,transformer,step-down,6
2025,substation,,4
2030,cable,underground,21
2030,cable,overhead,50
2030,transformer,step-up,14
2030,transformer,step-down,7
2030,substation,,5
2035,cable,underground,20
2035,cable,overhead,60
2035,transformer,step-up,8
2035,transformer,step-down,8
2035,substation,,6
2040,cable,underground,28
2040,cable,overhead,70
2040,transformer,step-up,12
2040,transformer,step-down,9
2040,substation,,7
`

// DefaultPlan returns the demo plan as typed rows.
func DefaultPlan() []engine.PlanRow {
	rows, err := ParsePlanCSV([]byte(DefaultPlanCSV))
	if err != nil {
		// The embedded dataset matches the schema by construction.
		panic("helpers: embedded default plan is invalid: " + err.Error())
	}
	return rows
}
