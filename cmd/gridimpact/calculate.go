package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridimpact-org/gridimpact/engine"
	"github.com/gridimpact-org/gridimpact/factorset"
	"github.com/gridimpact-org/gridimpact/helpers"
)

// ============================================================================
// CALCULATE — run the pipeline once from the command line
// ============================================================================

type calculateOptions struct {
	file        string
	factorsPath string
	category    string
	scenario    string
	group       string
	cumulative  bool
	format      string
	outFile     string
}

func newCalculateCmd() *cobra.Command {
	opts := &calculateOptions{}

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Compute the impact of an expansion plan",
		Long: `Reads an expansion plan CSV (columns: year, component_type,
component_subtype, unit_count), computes per-row impacts and prints the
aggregated year × component output. Without --file the embedded demo plan
is used.`,
		Example: `  gridimpact calculate --file plan.csv --format csv
  gridimpact calculate --group cable --cumulative --format pretty
  gridimpact calculate --file plan.csv --format xlsx --out impact.xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalculate(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Plan CSV file (default: embedded demo plan)")
	cmd.Flags().StringVar(&opts.factorsPath, "factors", "", "Factor set YAML (default: $GRIDIMPACT_FACTORS or built-in)")
	cmd.Flags().StringVar(&opts.category, "category", "", "Impact category (default: Climate Change)")
	cmd.Flags().StringVar(&opts.scenario, "scenario", "", "Climate scenario (default: 1.5 °C)")
	cmd.Flags().StringVar(&opts.group, "group", engine.AllGroups, "Filter to one component type")
	cmd.Flags().BoolVar(&opts.cumulative, "cumulative", false, "Running totals across years")
	cmd.Flags().StringVar(&opts.format, "format", "json", "Output format: json, pretty, csv, xlsx")
	cmd.Flags().StringVarP(&opts.outFile, "out", "o", "", "Write output to file instead of stdout")

	return cmd
}

func runCalculate(opts *calculateOptions) error {
	plan, err := loadPlan(opts.file)
	if err != nil {
		return err
	}

	set, err := loadFactorSet(opts.factorsPath)
	if err != nil {
		return err
	}
	table, unit, err := set.Resolve(opts.category, opts.scenario)
	if err != nil {
		return err
	}

	category := opts.category
	if category == "" {
		category = factorset.DefaultCategory
	}
	scenario := opts.scenario
	if scenario == "" {
		scenario = factorset.DefaultScenario
	}

	result, err := engine.Execute(plan, engine.Controls{Group: opts.group, Cumulative: opts.cumulative},
		engine.WithFactors(table),
		engine.WithImpactCategory(category, unit),
		engine.WithScenario(scenario),
	)
	if err != nil {
		return err
	}

	writer, closeFn, err := openOutput(opts.outFile)
	if err != nil {
		return err
	}

	switch opts.format {
	case "csv":
		err = helpers.WriteLongCSV(writer, result.Long)
	case "xlsx":
		if opts.outFile == "" {
			err = fmt.Errorf("--format xlsx requires --out")
		} else {
			err = helpers.WriteWorkbook(writer, plan, result)
		}
	case "pretty":
		err = writeJSON(writer, result, true)
	case "json":
		err = writeJSON(writer, result, false)
	default:
		err = fmt.Errorf("unknown format %q", opts.format)
	}

	// A failed close means the output never fully flushed; that must not
	// report success.
	if cerr := closeFn(); err == nil {
		err = cerr
	}
	return err
}

func loadPlan(path string) ([]engine.PlanRow, error) {
	if path == "" {
		log.Printf("📋 gridimpact: no --file given, using the embedded demo plan")
		return helpers.DefaultPlan(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}
	return helpers.ParsePlanCSV(data)
}

func loadFactorSet(path string) (*factorset.Set, error) {
	if path != "" {
		return factorset.Load(path)
	}
	return factorset.FromEnv()
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	return f, f.Close, nil
}

func writeJSON(w io.Writer, v interface{}, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
