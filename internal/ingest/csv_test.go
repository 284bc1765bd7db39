package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRows_Valid(t *testing.T) {
	in := "month,product,sales_amount\n2023-01,Product A,100.50\n2023-02,Product B,200.75\n"
	rows, err := ReadRows(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, RawRow{Line: 2, Month: "2023-01", Product: "Product A", Amount: "100.50"}, rows[0])
	assert.Equal(t, RawRow{Line: 3, Month: "2023-02", Product: "Product B", Amount: "200.75"}, rows[1])
}

func TestReadRows_HeaderCaseAndOrder(t *testing.T) {
	in := "Product,SALES_AMOUNT,month\nWidget,10,2023-01\n"
	rows, err := ReadRows(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2023-01", rows[0].Month)
	assert.Equal(t, "Widget", rows[0].Product)
	assert.Equal(t, "10", rows[0].Amount)
}

func TestReadRows_MissingColumn(t *testing.T) {
	in := "month,product\n2023-01,Widget\n"
	_, err := ReadRows(strings.NewReader(in))
	var serr *SchemaError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, []string{"sales_amount"}, serr.Missing)
	assert.Empty(t, serr.Unexpected)
}

func TestReadRows_UnexpectedColumn(t *testing.T) {
	in := "month,product,sales_amount,region\n2023-01,Widget,10,EU\n"
	_, err := ReadRows(strings.NewReader(in))
	var serr *SchemaError
	require.ErrorAs(t, err, &serr)
	assert.Empty(t, serr.Missing)
	assert.Equal(t, []string{"region"}, serr.Unexpected)
}

func TestReadRows_DuplicateColumn(t *testing.T) {
	in := "month,month,product\n"
	_, err := ReadRows(strings.NewReader(in))
	var serr *SchemaError
	require.ErrorAs(t, err, &serr)
	assert.Contains(t, serr.Missing, "sales_amount")
	assert.Contains(t, serr.Unexpected, "month")
}

func TestReadRows_EmptyInput(t *testing.T) {
	_, err := ReadRows(strings.NewReader(""))
	var serr *SchemaError
	require.ErrorAs(t, err, &serr)
	assert.Len(t, serr.Missing, 3)
}

func TestReadRows_HeaderOnly(t *testing.T) {
	rows, err := ReadRows(strings.NewReader("month,product,sales_amount\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadRows_RaggedRow(t *testing.T) {
	in := "month,product,sales_amount\n2023-01,Widget\n"
	_, err := ReadRows(strings.NewReader(in))
	assert.Error(t, err)
}
