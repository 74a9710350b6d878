package factorset

import "github.com/gridimpact-org/gridimpact/engine"

// ============================================================================
// BUILT-IN REFERENCE SET
// ============================================================================

// CategoryUnits maps every supported impact category to its display unit.
// Categories beyond Climate Change have no built-in factor tables; a YAML
// factor set supplies them.
var CategoryUnits = map[string]string{
	"Climate Change":                                "kg CO₂-eq",
	"Acidification":                                 "mol H⁺-eq",
	"Ecotoxicity: Freshwater":                       "CTUe",
	"Energy Resources: Non-Renewable":               "MJ",
	"Eutrophication: Freshwater":                    "kg P-eq",
	"Eutrophication: Marine":                        "kg N-eq",
	"Eutrophication: Terrestrial":                   "mol N-eq",
	"Human Toxicity: Carcinogenic":                  "CTUh",
	"Human Toxicity: Non-Carcinogenic":              "CTUh",
	"Ionising Radiation: Human Health":              "kBq U235-eq",
	"Land Use":                                      "-",
	"Material Resources: Metals/Minerals":           "kg Sb-eq",
	"Ozone Depletion":                               "kg CFC-11-eq",
	"Particulate Matter Formation":                  "[-]",
	"Photochemical Oxidant Formation: Human Health": "kg NMVOC-eq",
	"Water Use":                                     "m³",
}

// KnownScenarios are the supported climate scenarios.
var KnownScenarios = []string{"1.5 °C", "2 °C", "3.5 °C"}

// scenarioScale derives warmer-scenario tables from the 1.5 °C reference:
// less decarbonized supply chains raise the embodied impact per unit.
// Constants are a configuration concern, chosen, not measured.
var scenarioScale = map[string]float64{
	"1.5 °C": 1.0,
	"2 °C":   1.08,
	"3.5 °C": 1.21,
}

// Default returns the built-in factor set: the Climate Change reference
// table per scenario.
func Default() *Set {
	reference := engine.ReferenceFactors()

	scenarios := make(map[string][]Entry, len(KnownScenarios))
	for _, name := range KnownScenarios {
		scale := scenarioScale[name]
		entries := make([]Entry, 0, len(reference))
		for key, value := range reference {
			entries = append(entries, Entry{
				ComponentType:    key.ComponentType,
				ComponentSubtype: key.ComponentSubtype,
				Value:            value * scale,
			})
		}
		scenarios[name] = entries
	}

	return &Set{
		Scenarios: KnownScenarios,
		Categories: map[string]Category{
			DefaultCategory: {
				Unit:      CategoryUnits[DefaultCategory],
				Scenarios: scenarios,
			},
		},
	}
}
