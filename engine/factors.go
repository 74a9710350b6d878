package engine

// ============================================================================
// IMPACT FACTORS — (type, subtype) → impact per installed unit
// ============================================================================
// Lookup is exact-match with an explicit default: combinations missing from
// the table contribute zero impact instead of failing. That keeps uploads
// with unknown component names working, at the price of silent typos —
// callers who care should diff their types against Keys().
// ============================================================================

// FactorKey identifies one factor table entry.
type FactorKey struct {
	ComponentType    string `json:"component_type"`
	ComponentSubtype string `json:"component_subtype"`
}

// FactorTable maps component classifications to impact multipliers
// (impact units per installed unit).
type FactorTable map[FactorKey]float64

// Factor returns the multiplier for a (type, subtype) pair, or 0 when the
// pair is not in the table. Zero is the documented default, not an error.
func (t FactorTable) Factor(componentType, componentSubtype string) float64 {
	return t[FactorKey{ComponentType: componentType, ComponentSubtype: componentSubtype}]
}

// Keys returns the table's keys in unspecified order.
func (t FactorTable) Keys() []FactorKey {
	keys := make([]FactorKey, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	return keys
}

// ReferenceFactors is the built-in carbon factor table (tons CO₂-eq per
// unit) used when no factor set is configured.
func ReferenceFactors() FactorTable {
	return FactorTable{
		{ComponentType: "cable", ComponentSubtype: "underground"}:           3.12,
		{ComponentType: "cable", ComponentSubtype: "overhead"}:              2.08,
		{ComponentType: "transformer", ComponentSubtype: "step-up"}:         2.5,
		{ComponentType: "transformer", ComponentSubtype: "step-down"}:       1.5,
		{ComponentType: "substation", ComponentSubtype: UnspecifiedSubtype}: 5,
	}
}

// ============================================================================
// IMPACT COMPUTATION
// ============================================================================

// ComputeImpacts multiplies each row's unit count by its factor.
// Every row gets exactly one CO2 value; rows with unknown combinations get
// 0 and stay in the table so they still show up downstream.
func ComputeImpacts(rows []EnrichedRow, factors FactorTable) []ImpactRow {
	impacts := make([]ImpactRow, 0, len(rows))
	for _, r := range rows {
		impacts = append(impacts, ImpactRow{
			EnrichedRow: r,
			CO2:         r.UnitCount * factors.Factor(r.ComponentType, r.ComponentSubtype),
		})
	}
	return impacts
}

// TotalImpact sums CO2 across a computed table.
func TotalImpact(rows []ImpactRow) float64 {
	var total float64
	for _, r := range rows {
		total += r.CO2
	}
	return total
}
