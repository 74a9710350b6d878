package helpers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gridimpact-org/gridimpact/engine"
	"github.com/gridimpact-org/gridimpact/schema"
)

// ============================================================================
// CSV HELPER — plan table ingestion
// ============================================================================
// The consumer reads the CSV from wherever it lives (upload, file, stdin).
// This helper turns the raw bytes into typed plan rows: header checked
// against the schema once, every cell parsed to its column kind. A missing
// required column or an unparseable cell stops the whole parse — a plan
// with a broken shape never reaches the pipeline.
// ============================================================================

// ParsePlanCSV parses CSV bytes into plan rows. The first record must be a
// header naming at least year, component_type and unit_count (any casing,
// spaces or dashes allowed).
func ParsePlanCSV(data []byte) ([]engine.PlanRow, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}
	idx, err := schema.ValidateHeader(header)
	if err != nil {
		return nil, err
	}

	var rows []engine.PlanRow
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if isBlank(record) {
			continue
		}
		row, err := idx.ParseRow(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// WriteLongCSV writes long-form output rows as CSV (year,component,value),
// the same layout the chart renderer consumes.
func WriteLongCSV(w io.Writer, long []engine.LongRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"year", "component", "value"}); err != nil {
		return err
	}
	for _, row := range long {
		if err := cw.Write([]string{
			fmt.Sprintf("%d", row.Year),
			row.Component,
			formatValue(row.Value),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
