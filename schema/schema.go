package schema

// ============================================================================
// PLAN SCHEMA — the shape of an expansion plan table
// ============================================================================
// The input contract is fixed, not discovered: a plan table has a year, a
// component type, an optional subtype, and a unit count. Validation happens
// once at the input boundary; past it, rows are typed engine.PlanRow values
// and nothing downstream re-checks shape.
// ============================================================================

import (
	"strings"
)

// Canonical column keys of the plan table contract.
const (
	ColYear             = "year"
	ColComponentType    = "component_type"
	ColComponentSubtype = "component_subtype"
	ColUnitCount        = "unit_count"
)

// Column describes one plan table column.
type Column struct {
	Key         string `json:"key"`
	DisplayName string `json:"displayName"`
	Kind        Kind   `json:"kind"`
	Required    bool   `json:"required"`
}

// Kind classifies a column's cell type.
type Kind string

const (
	KindInt    Kind = "int"
	KindString Kind = "string"
	KindNumber Kind = "number"
)

// Columns returns the plan table schema in contract order.
func Columns() []Column {
	return []Column{
		{Key: ColYear, DisplayName: "Year", Kind: KindInt, Required: true},
		{Key: ColComponentType, DisplayName: "Component Type", Kind: KindString, Required: true},
		{Key: ColComponentSubtype, DisplayName: "Component Subtype", Kind: KindString, Required: false},
		{Key: ColUnitCount, DisplayName: "Unit Count", Kind: KindNumber, Required: true},
	}
}

// RequiredKeys returns the keys a header must carry.
func RequiredKeys() []string {
	var keys []string
	for _, c := range Columns() {
		if c.Required {
			keys = append(keys, c.Key)
		}
	}
	return keys
}

// NormalizeKey converts a raw header cell ("Component Type") to its
// canonical snake_case key ("component_type").
func NormalizeKey(header string) string {
	k := strings.ToLower(strings.TrimSpace(header))
	k = strings.ReplaceAll(k, " ", "_")
	k = strings.ReplaceAll(k, "-", "_")
	return k
}
