package helpers

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/gridimpact-org/gridimpact/engine"
)

func TestWriteWorkbook(t *testing.T) {
	plan := DefaultPlan()
	result, err := engine.Execute(plan, engine.Controls{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, plan, result))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Plan", "Impact"}, f.GetSheetList())

	// Plan sheet: header plus one row per plan row.
	planRows, err := f.GetRows("Plan")
	require.NoError(t, err)
	assert.Len(t, planRows, len(plan)+1)

	// Impact sheet: header plus one row per year, one column per component.
	impactRows, err := f.GetRows("Impact")
	require.NoError(t, err)
	require.Len(t, impactRows, 5+1)
	assert.Len(t, impactRows[0], 5+1, "year column plus five components")
	assert.Equal(t, "year", impactRows[0][0])
}

func TestWriteWorkbookEmptyResult(t *testing.T) {
	result, err := engine.Execute(nil, engine.Controls{})
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, WriteWorkbook(&buf, nil, result), "empty table must not break export")
}
