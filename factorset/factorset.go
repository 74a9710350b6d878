package factorset

// ============================================================================
// FACTOR SETS — impact factor tables per (category, scenario)
// ============================================================================
// A Set bundles every factor table the calculator can use: one table per
// impact category and climate scenario pair, plus the category's display
// unit. The built-in set carries the Climate Change reference tables; a
// YAML file can replace the whole set, which is also how alternate factor
// constants for the same plan are expressed.
// ============================================================================

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gridimpact-org/gridimpact/engine"
)

// Defaults applied when a request leaves category or scenario empty.
const (
	DefaultCategory = "Climate Change"
	DefaultScenario = "1.5 °C"
)

// EnvFactors names the environment variable pointing at a factor set file.
const EnvFactors = "GRIDIMPACT_FACTORS"

var (
	ErrUnknownCategory = errors.New("unknown impact category")
	ErrUnknownScenario = errors.New("unknown climate scenario")
)

// Set is a complete factor configuration.
type Set struct {
	Scenarios  []string            `yaml:"scenarios"`
	Categories map[string]Category `yaml:"categories"`
}

// Category holds one impact category's unit and per-scenario tables.
type Category struct {
	Unit      string             `yaml:"unit"`
	Scenarios map[string][]Entry `yaml:"scenarios"`
}

// Entry is one factor table row in a YAML file.
type Entry struct {
	ComponentType    string  `yaml:"component_type"`
	ComponentSubtype string  `yaml:"component_subtype"`
	Value            float64 `yaml:"value"`
}

// Resolve returns the factor table and unit for a category/scenario pair.
// Empty selections fall back to the defaults.
func (s *Set) Resolve(category, scenario string) (engine.FactorTable, string, error) {
	if category == "" {
		category = DefaultCategory
	}
	if scenario == "" {
		scenario = DefaultScenario
	}

	cat, ok := s.Categories[category]
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	entries, ok := cat.Scenarios[scenario]
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownScenario, scenario)
	}

	table := make(engine.FactorTable, len(entries))
	for _, e := range entries {
		subtype := e.ComponentSubtype
		if subtype == "" {
			subtype = engine.UnspecifiedSubtype
		}
		table[engine.FactorKey{ComponentType: e.ComponentType, ComponentSubtype: subtype}] = e.Value
	}
	return table, cat.Unit, nil
}

// CategoryNames lists the configured categories, defaults first.
func (s *Set) CategoryNames() []string {
	names := make([]string, 0, len(s.Categories))
	if _, ok := s.Categories[DefaultCategory]; ok {
		names = append(names, DefaultCategory)
	}
	for name := range s.Categories {
		if name != DefaultCategory {
			names = append(names, name)
		}
	}
	return names
}

// ============================================================================
// LOADING
// ============================================================================

// Load reads a factor set from a YAML file.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read factor set: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML factor set.
func Parse(data []byte) (*Set, error) {
	var s Set
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse factor set: %w", err)
	}
	if len(s.Categories) == 0 {
		return nil, errors.New("factor set defines no categories")
	}
	return &s, nil
}

// FromEnv loads the factor set named by GRIDIMPACT_FACTORS, or the built-in
// set when the variable is unset.
func FromEnv() (*Set, error) {
	path := os.Getenv(EnvFactors)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
