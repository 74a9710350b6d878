package helpers

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/gridimpact-org/gridimpact/engine"
)

// ============================================================================
// XLSX EXPORT — plan + impact workbook with a native stacked chart
// ============================================================================

const (
	planSheet   = "Plan"
	impactSheet = "Impact"
)

// WriteWorkbook writes an XLSX workbook with the plan table, the pivoted
// impact table and a stacked column chart over it.
func WriteWorkbook(w io.Writer, plan []engine.PlanRow, result *engine.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", planSheet)
	if err := writePlanSheet(f, plan); err != nil {
		return err
	}
	if _, err := f.NewSheet(impactSheet); err != nil {
		return err
	}
	if err := writeImpactSheet(f, result); err != nil {
		return err
	}
	return f.Write(w)
}

func writePlanSheet(f *excelize.File, plan []engine.PlanRow) error {
	header := []interface{}{"year", "component_type", "component_subtype", "unit_count"}
	if err := f.SetSheetRow(planSheet, "A1", &header); err != nil {
		return err
	}
	for i, row := range plan {
		cells := []interface{}{row.Year, row.ComponentType, row.ComponentSubtype, row.UnitCount}
		if err := f.SetSheetRow(planSheet, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			return err
		}
	}
	return nil
}

func writeImpactSheet(f *excelize.File, result *engine.Result) error {
	years, components, cells := wideTable(result.Long)

	header := make([]interface{}, 0, len(components)+1)
	header = append(header, "year")
	for _, c := range components {
		header = append(header, c)
	}
	if err := f.SetSheetRow(impactSheet, "A1", &header); err != nil {
		return err
	}

	for i, y := range years {
		row := make([]interface{}, 0, len(components)+1)
		row = append(row, y)
		for j := range components {
			row = append(row, cells[i][j])
		}
		if err := f.SetSheetRow(impactSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	if len(years) == 0 || len(components) == 0 {
		return nil // empty result: sheets only, nothing to chart
	}
	return addImpactChart(f, result, len(years), components)
}

func addImpactChart(f *excelize.File, result *engine.Result, yearCount int, components []string) error {
	lastRow := yearCount + 1
	series := make([]excelize.ChartSeries, 0, len(components))
	for j := range components {
		col, err := excelize.ColumnNumberToName(j + 2)
		if err != nil {
			return err
		}
		series = append(series, excelize.ChartSeries{
			Name:       fmt.Sprintf("%s!$%s$1", impactSheet, col),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", impactSheet, lastRow),
			Values:     fmt.Sprintf("%s!$%s$2:$%s$%d", impactSheet, col, col, lastRow),
		})
	}

	title := "Grid Expansion Impact"
	if result.Chart != nil && result.Chart.Title != "" {
		title = result.Chart.Title
	}

	anchor, err := excelize.CoordinatesToCellName(len(components)+3, 2)
	if err != nil {
		return err
	}
	return f.AddChart(impactSheet, anchor, &excelize.Chart{
		Type:   excelize.ColStacked,
		Series: series,
		Title:  []excelize.RichTextRun{{Text: title}},
		Legend: excelize.ChartLegend{Position: "bottom"},
	})
}

// wideTable reshapes long rows back into a wide year × component table.
// Long rows are dense and year-major by construction.
func wideTable(long []engine.LongRow) ([]int, []string, [][]float64) {
	var years []int
	var components []string
	yearSeen := make(map[int]int)
	compSeen := make(map[string]int)

	for _, row := range long {
		if _, ok := yearSeen[row.Year]; !ok {
			yearSeen[row.Year] = len(years)
			years = append(years, row.Year)
		}
		if _, ok := compSeen[row.Component]; !ok {
			compSeen[row.Component] = len(components)
			components = append(components, row.Component)
		}
	}

	cells := make([][]float64, len(years))
	for i := range cells {
		cells[i] = make([]float64, len(components))
	}
	for _, row := range long {
		cells[yearSeen[row.Year]][compSeen[row.Component]] = row.Value
	}
	return years, components, cells
}
