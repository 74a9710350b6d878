package engine

import "fmt"

// ============================================================================
// CHART BUILDER — Produces ChartConfig from long-form rows
// ============================================================================
// Colors are assigned by stable iteration over the component list (first
// seen order, typically from the unfiltered table) cycling the palette
// with wraparound. Filtering must not reshuffle colors, so callers pass
// the full component list even when the long rows are filtered.
// ============================================================================

// defaultPalette is the default series palette.
var defaultPalette = []string{
	"#00549F", "#F6A800", "#57AB27", "#CC071E",
	"#7A6FAC", "#0098A1", "#BDCD00", "#006165",
}

// AssignColors maps each component to a palette color, cycling with
// wraparound. Component order determines the assignment.
func AssignColors(components []string, palette []string) map[string]string {
	if len(palette) == 0 {
		palette = defaultPalette
	}
	colors := make(map[string]string, len(components))
	for i, c := range components {
		colors[c] = palette[i%len(palette)]
	}
	return colors
}

// BuildChart produces a stacked-bar ChartConfig from long-form rows.
// components fixes the series order and color assignment; long rows for
// components not in the list are dropped (they cannot be colored).
// Returns nil when there is nothing to draw — the caller decides how an
// empty chart renders.
func BuildChart(long []LongRow, components []string, title, yAxis string, palette []string) *ChartConfig {
	if len(long) == 0 {
		return nil
	}

	colors := AssignColors(components, palette)

	// Bucket points per component, preserving the year order of the melt.
	points := make(map[string][]ChartPoint, len(components))
	for _, row := range long {
		if _, ok := colors[row.Component]; !ok {
			continue
		}
		points[row.Component] = append(points[row.Component], ChartPoint{
			Label: fmt.Sprintf("%d", row.Year),
			Value: row.Value,
		})
	}

	series := make([]ChartSeries, 0, len(components))
	for _, c := range components {
		if len(points[c]) == 0 {
			continue
		}
		series = append(series, ChartSeries{
			Name:  c,
			Data:  points[c],
			Color: colors[c],
		})
	}
	if len(series) == 0 {
		return nil
	}

	return &ChartConfig{
		ChartType:  "stacked_bar",
		Title:      title,
		XAxis:      "Year",
		YAxis:      yAxis,
		Series:     series,
		ColorMap:   colors,
		ShowLegend: true,
		ShowGrid:   true,
	}
}
