package schema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gridimpact-org/gridimpact/engine"
)

// ============================================================================
// INPUT-BOUNDARY VALIDATION
// ============================================================================
// Shape errors are fatal: a table without the required columns never enters
// the pipeline. Value gaps (empty subtype) are not errors — enrichment owns
// those.
// ============================================================================

// ErrMissingColumn is the fatal input-shape error: a required column is
// absent from the table header. Check with errors.Is.
var ErrMissingColumn = errors.New("required column missing")

// ErrBadCell reports a cell that cannot be parsed to its column kind.
var ErrBadCell = errors.New("malformed cell")

// HeaderIndex maps canonical column keys to positions in a raw header row.
type HeaderIndex map[string]int

// ValidateHeader checks a raw header row against the plan schema and
// returns the key → position index. Unknown columns are ignored; missing
// required columns fail with ErrMissingColumn.
func ValidateHeader(header []string) (HeaderIndex, error) {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		key := NormalizeKey(h)
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
	}

	var missing []string
	for _, key := range RequiredKeys() {
		if _, ok := idx[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return idx, nil
}

// ParseRow converts one data row into a typed PlanRow using the header
// index. The subtype cell may be absent or empty; numeric cells must parse.
func (idx HeaderIndex) ParseRow(record []string) (engine.PlanRow, error) {
	var row engine.PlanRow

	yearCell := idx.cell(record, ColYear)
	year, err := strconv.Atoi(strings.TrimSpace(yearCell))
	if err != nil {
		return row, fmt.Errorf("%w: %s=%q", ErrBadCell, ColYear, yearCell)
	}

	countCell := idx.cell(record, ColUnitCount)
	count, err := strconv.ParseFloat(strings.TrimSpace(countCell), 64)
	if err != nil {
		return row, fmt.Errorf("%w: %s=%q", ErrBadCell, ColUnitCount, countCell)
	}

	row.Year = year
	row.UnitCount = count
	row.ComponentType = strings.TrimSpace(idx.cell(record, ColComponentType))
	row.ComponentSubtype = strings.TrimSpace(idx.cell(record, ColComponentSubtype))
	return row, nil
}

func (idx HeaderIndex) cell(record []string, key string) string {
	i, ok := idx[key]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}
