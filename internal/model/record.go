package model

import "github.com/shopspring/decimal"

// SalesRecord is a single validated sales row.
type SalesRecord struct {
	Month   string // "YYYY-MM"; sorts chronologically as a plain string
	Product string
	Amount  decimal.Decimal // non-negative
}

// AggregateEntry is one grouping key with its summed amount.
type AggregateEntry struct {
	Key   string
	Total decimal.Decimal
}

// AggregateTable is an ordered sequence of entries, one per distinct key.
type AggregateTable []AggregateEntry

// Sum returns the sum of all entry totals in the table.
func (t AggregateTable) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, e := range t {
		total = total.Add(e.Total)
	}
	return total
}
