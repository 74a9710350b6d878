package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gridimpact-org/gridimpact/engine"
)

func newFactorsCmd() *cobra.Command {
	var factorsPath, category, scenario string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "factors",
		Short: "Print the active impact factor table",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadFactorSet(factorsPath)
			if err != nil {
				return err
			}
			table, unit, err := set.Resolve(category, scenario)
			if err != nil {
				return err
			}

			if asJSON {
				entries := make([]map[string]interface{}, 0, len(table))
				for _, key := range sortedKeys(table) {
					entries = append(entries, map[string]interface{}{
						"component_type":    key.ComponentType,
						"component_subtype": key.ComponentSubtype,
						"value":             table[key],
					})
				}
				return writeJSON(cmd.OutOrStdout(), map[string]interface{}{
					"unit": unit, "factors": entries,
				}, true)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Impact factors (%s per unit):\n", unit)
			for _, key := range sortedKeys(table) {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-14s %-14s %8.2f\n",
					key.ComponentType, key.ComponentSubtype, table[key])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&factorsPath, "factors", "", "Factor set YAML (default: $GRIDIMPACT_FACTORS or built-in)")
	cmd.Flags().StringVar(&category, "category", "", "Impact category (default: Climate Change)")
	cmd.Flags().StringVar(&scenario, "scenario", "", "Climate scenario (default: 1.5 °C)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func sortedKeys(table engine.FactorTable) []engine.FactorKey {
	keys := table.Keys()
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].ComponentType != keys[j].ComponentType {
			return keys[i].ComponentType < keys[j].ComponentType
		}
		return keys[i].ComponentSubtype < keys[j].ComponentSubtype
	})
	return keys
}
