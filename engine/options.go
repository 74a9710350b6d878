package engine

// ============================================================================
// ENGINE OPTIONS — Functional options for Execute()
// ============================================================================

// Option configures engine behavior via functional options pattern.
type Option func(*config)

type config struct {
	Factors  FactorTable
	Palette  []string
	Title    string
	Unit     string
	Category string
	Scenario string
}

// WithFactors sets the factor table. Defaults to ReferenceFactors().
func WithFactors(t FactorTable) Option {
	return func(c *config) { c.Factors = t }
}

// WithPalette overrides the default chart palette.
func WithPalette(palette []string) Option {
	return func(c *config) { c.Palette = palette }
}

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(c *config) { c.Title = title }
}

// WithImpactCategory labels the result with its impact category and unit
// (e.g. "Climate Change", "kg CO₂-eq"). Label only — the factor table
// passed via WithFactors must already match the category.
func WithImpactCategory(category, unit string) Option {
	return func(c *config) {
		c.Category = category
		c.Unit = unit
	}
}

// WithScenario labels the result with its climate scenario.
func WithScenario(scenario string) Option {
	return func(c *config) { c.Scenario = scenario }
}

func applyOptions(opts []Option) *config {
	cfg := &config{
		Title: "Grid Expansion Impact",
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Factors == nil {
		cfg.Factors = ReferenceFactors()
	}
	return cfg
}
