package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnrichFillsMissingSubtype(t *testing.T) {
	rows := Enrich([]PlanRow{
		{Year: 2020, ComponentType: "substation", UnitCount: 23},
		{Year: 2020, ComponentType: "cable", ComponentSubtype: "underground", UnitCount: 65},
		{Year: 2025, ComponentType: "transformer", ComponentSubtype: "   ", UnitCount: 4},
	})

	for _, r := range rows {
		assert.NotEmpty(t, r.ComponentSubtype, "subtype must never be empty after enrichment")
		assert.NotEmpty(t, r.Component, "component label must never be empty after enrichment")
	}

	assert.Equal(t, UnspecifiedSubtype, rows[0].ComponentSubtype)
	assert.Equal(t, "unspecified substation", rows[0].Component)
	assert.Equal(t, "underground", rows[1].ComponentSubtype)
	assert.Equal(t, "underground cable", rows[1].Component)
	// whitespace-only counts as absent
	assert.Equal(t, UnspecifiedSubtype, rows[2].ComponentSubtype)
}

func TestEnrichPreservesRowOrderAndCount(t *testing.T) {
	plan := []PlanRow{
		{Year: 2030, ComponentType: "cable", ComponentSubtype: "overhead", UnitCount: 50},
		{Year: 2020, ComponentType: "cable", ComponentSubtype: "overhead", UnitCount: 1},
	}
	rows := Enrich(plan)

	assert.Len(t, rows, len(plan))
	assert.Equal(t, 2030, rows[0].Year)
	assert.Equal(t, 2020, rows[1].Year)
}

func TestComponentLabelIsDeterministic(t *testing.T) {
	a := ComponentLabel("underground", "cable")
	b := ComponentLabel("underground", "cable")
	assert.Equal(t, a, b)
	assert.Equal(t, "underground cable", a)

	// No dangling space when one side is empty.
	assert.Equal(t, "cable", ComponentLabel("", "cable"))
}

func TestEnrichEmptyPlan(t *testing.T) {
	assert.Empty(t, Enrich(nil))
}
