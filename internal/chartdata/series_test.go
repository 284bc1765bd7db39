package chartdata

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesplot-dev/salesplot/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFromTable_Empty(t *testing.T) {
	s := FromTable(nil)
	assert.True(t, s.Empty)
	assert.Empty(t, s.Points)
}

func TestFromTable_PreservesOrderAndRange(t *testing.T) {
	table := model.AggregateTable{
		{Key: "2023-01", Total: dec("10.00")},
		{Key: "2023-02", Total: dec("2.50")},
		{Key: "2023-03", Total: dec("7.00")},
	}
	s := FromTable(table)

	assert.False(t, s.Empty)
	require.Len(t, s.Points, 3)
	assert.Equal(t, "2023-01", s.Points[0].Label)
	assert.Equal(t, "2023-02", s.Points[1].Label)
	assert.Equal(t, "2023-03", s.Points[2].Label)
	assert.True(t, s.Min.Equal(dec("2.50")), "min %s", s.Min)
	assert.True(t, s.Max.Equal(dec("10.00")), "max %s", s.Max)
}

func TestFromTable_SingleEntry(t *testing.T) {
	s := FromTable(model.AggregateTable{{Key: "Widget", Total: dec("42.00")}})
	assert.False(t, s.Empty)
	assert.True(t, s.Min.Equal(dec("42.00")))
	assert.True(t, s.Max.Equal(dec("42.00")))
}
