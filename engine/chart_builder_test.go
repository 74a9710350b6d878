package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignColorsCyclesPalette(t *testing.T) {
	components := []string{"a", "b", "c"}
	palette := []string{"#111111", "#222222"}

	colors := AssignColors(components, palette)
	assert.Equal(t, "#111111", colors["a"])
	assert.Equal(t, "#222222", colors["b"])
	assert.Equal(t, "#111111", colors["c"], "palette wraps around")
}

func TestAssignColorsStableAcrossFiltering(t *testing.T) {
	rows := Calculate(testPlan(), nil)
	components := Components(rows)

	full := AssignColors(components, nil)
	again := AssignColors(components, nil)
	assert.Equal(t, full, again, "same component order gives same colors")
}

func TestBuildChartStackedBar(t *testing.T) {
	rows := Calculate(testPlan(), nil)
	long := Aggregate(rows, Controls{})
	components := Components(rows)

	chart := BuildChart(long, components, "Grid Expansion Impact", "Climate Change Impact (kg CO₂-eq)", nil)
	require.NotNil(t, chart)
	assert.Equal(t, "stacked_bar", chart.ChartType)
	assert.Equal(t, "Year", chart.XAxis)
	assert.True(t, chart.ShowLegend)

	// One series per component, one point per year, in ascending year order.
	require.Len(t, chart.Series, len(components))
	for _, s := range chart.Series {
		require.Len(t, s.Data, 3)
		assert.Equal(t, []string{"2020", "2025", "2030"},
			[]string{s.Data[0].Label, s.Data[1].Label, s.Data[2].Label})
		assert.Equal(t, chart.ColorMap[s.Name], s.Color)
	}
}

func TestBuildChartFilteredKeepsFullColorMap(t *testing.T) {
	rows := Calculate(testPlan(), nil)
	components := Components(rows)
	long := Aggregate(rows, Controls{Group: "transformer"})

	chart := BuildChart(long, components, "", "", nil)
	require.NotNil(t, chart)
	require.Len(t, chart.Series, 1)
	assert.Equal(t, "step-up transformer", chart.Series[0].Name)

	// The transformer series keeps the color it had unfiltered.
	unfiltered := AssignColors(components, nil)
	assert.Equal(t, unfiltered["step-up transformer"], chart.Series[0].Color)
}

func TestBuildChartEmptyInput(t *testing.T) {
	assert.Nil(t, BuildChart(nil, []string{"a"}, "", "", nil))
	assert.Nil(t, BuildChart([]LongRow{}, nil, "", "", nil))
}
