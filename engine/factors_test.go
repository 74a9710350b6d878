package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceFactorsWithinPlausibleRange(t *testing.T) {
	for key, factor := range ReferenceFactors() {
		assert.GreaterOrEqual(t, factor, 0.0, "factor for %v must be non-negative", key)
		assert.LessOrEqual(t, factor, 10.0, "factor for %v is implausibly large", key)
	}
}

func TestFactorLookupDefaultsToZero(t *testing.T) {
	factors := ReferenceFactors()

	assert.Equal(t, 3.12, factors.Factor("cable", "underground"))
	assert.Equal(t, 5.0, factors.Factor("substation", UnspecifiedSubtype))

	// Unknown combinations are a documented zero, not an error.
	assert.Zero(t, factors.Factor("wire", "underground"))
	assert.Zero(t, factors.Factor("cable", "submarine"))
	assert.Zero(t, factors.Factor("", ""))
}

func TestComputeImpactsKnownScenarios(t *testing.T) {
	tests := []struct {
		name     string
		row      PlanRow
		wantCO2  float64
		wantComp string
	}{
		{
			name:     "underground cable",
			row:      PlanRow{Year: 2020, ComponentType: "cable", ComponentSubtype: "underground", UnitCount: 65},
			wantCO2:  202.8,
			wantComp: "underground cable",
		},
		{
			name:     "substation with absent subtype keys on the sentinel",
			row:      PlanRow{Year: 2020, ComponentType: "substation", UnitCount: 23},
			wantCO2:  115,
			wantComp: "unspecified substation",
		},
		{
			name:     "unknown type contributes zero regardless of count",
			row:      PlanRow{Year: 2020, ComponentType: "wire", ComponentSubtype: "underground", UnitCount: 9999},
			wantCO2:  0,
			wantComp: "underground wire",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := ComputeImpacts(Enrich([]PlanRow{tt.row}), ReferenceFactors())
			require.Len(t, rows, 1)
			assert.InDelta(t, tt.wantCO2, rows[0].CO2, 1e-9)
			assert.Equal(t, tt.wantComp, rows[0].Component)
		})
	}
}

func TestComputeImpactsKeepsUnknownRows(t *testing.T) {
	rows := Calculate([]PlanRow{
		{Year: 2020, ComponentType: "wire", UnitCount: 10},
		{Year: 2020, ComponentType: "cable", ComponentSubtype: "overhead", UnitCount: 10},
	}, nil)

	require.Len(t, rows, 2, "unknown rows stay in the table")
	assert.Zero(t, rows[0].CO2)
	assert.InDelta(t, 20.8, rows[1].CO2, 1e-9)

	// The unknown row still appears in aggregation output.
	long := Aggregate(rows, Controls{})
	labels := make(map[string]bool)
	for _, l := range long {
		labels[l.Component] = true
	}
	assert.True(t, labels["unspecified wire"])
}

func TestTotalImpact(t *testing.T) {
	rows := Calculate([]PlanRow{
		{Year: 2020, ComponentType: "cable", ComponentSubtype: "underground", UnitCount: 10},
		{Year: 2025, ComponentType: "cable", ComponentSubtype: "underground", UnitCount: 5},
	}, nil)
	assert.InDelta(t, 46.8, TotalImpact(rows), 1e-9)
}
