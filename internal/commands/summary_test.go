package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesplot-dev/salesplot/internal/ingest"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunSummary(t *testing.T) {
	path := writeCSV(t, "month,product,sales_amount\n"+
		"2023-01,Product A,100.50\n"+
		"2023-01,Product B,200.75\n"+
		"2023-02,Product A,150.25\n")

	var buf bytes.Buffer
	require.NoError(t, runSummary(&buf, path, false))

	out := buf.String()
	assert.Contains(t, out, "2023-01")
	assert.Contains(t, out, "301.25")
	assert.Contains(t, out, "Product A")
	assert.Contains(t, out, "250.75")
	assert.Contains(t, out, "451.50") // grand total
}

func TestRunSummary_LenientReportsSkips(t *testing.T) {
	path := writeCSV(t, "month,product,sales_amount\n"+
		"2023-01,Product A,100.50\n"+
		"2023-01,Product B,-5.00\n")

	var buf bytes.Buffer
	require.NoError(t, runSummary(&buf, path, true))
	assert.Contains(t, buf.String(), "skipped 1 invalid rows")
}

func TestRunSummary_StrictFailsOnInvalidRow(t *testing.T) {
	path := writeCSV(t, "month,product,sales_amount\n2023-01,Product A,-5.00\n")

	var buf bytes.Buffer
	err := runSummary(&buf, path, false)
	var verr *ingest.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 2, verr.Line)
}

func TestRunSummary_EmptyData(t *testing.T) {
	path := writeCSV(t, "month,product,sales_amount\n")

	var buf bytes.Buffer
	require.NoError(t, runSummary(&buf, path, false))
	assert.Contains(t, buf.String(), "no data")
}

func TestRunSummary_SchemaError(t *testing.T) {
	path := writeCSV(t, "month,product\n2023-01,Widget\n")

	var buf bytes.Buffer
	err := runSummary(&buf, path, false)
	var serr *ingest.SchemaError
	require.ErrorAs(t, err, &serr)
}
