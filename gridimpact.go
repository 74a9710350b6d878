// Package gridimpact computes the environmental impact of multi-year grid
// expansion plans.
//
// Usage:
//
//	import "github.com/gridimpact-org/gridimpact/engine"
//
//	result, err := engine.Execute(plan, engine.Controls{Cumulative: true},
//	    engine.WithFactors(table),
//	    engine.WithImpactCategory("Climate Change", "kg CO₂-eq"),
//	)
//
// A plan is a table of installation events (year, component type/subtype,
// unit count). The engine enriches each row, multiplies unit counts by
// per-component impact factors, aggregates by year and component into a
// dense matrix with optional running totals, and returns long-form rows
// plus a render-ready stacked bar chart config.
//
// Factor tables per impact category and climate scenario live in the
// factorset package; CSV/XLSX input and output in helpers; the HTTP API in
// server. The engine itself performs no I/O — every calculation is a pure
// function of the plan, the factor table and the chart controls.
package gridimpact
