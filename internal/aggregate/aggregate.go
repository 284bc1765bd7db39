package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/salesplot-dev/salesplot/internal/model"
)

// Totals groups records by month and by product in a single pass, summing
// amounts per key. The monthly table is sorted ascending by month label
// (lexicographic order is chronological for YYYY-MM); the product table
// keeps first-seen key order. Empty input yields two empty tables.
func Totals(records []model.SalesRecord) (monthly, products model.AggregateTable) {
	byMonth := make(map[string]decimal.Decimal)
	byProduct := make(map[string]decimal.Decimal)
	var productOrder []string

	for _, rec := range records {
		byMonth[rec.Month] = byMonth[rec.Month].Add(rec.Amount)
		if _, seen := byProduct[rec.Product]; !seen {
			productOrder = append(productOrder, rec.Product)
		}
		byProduct[rec.Product] = byProduct[rec.Product].Add(rec.Amount)
	}

	monthly = make(model.AggregateTable, 0, len(byMonth))
	for month, total := range byMonth {
		monthly = append(monthly, model.AggregateEntry{Key: month, Total: total})
	}
	sort.Slice(monthly, func(i, j int) bool { return monthly[i].Key < monthly[j].Key })

	products = make(model.AggregateTable, 0, len(productOrder))
	for _, product := range productOrder {
		products = append(products, model.AggregateEntry{Key: product, Total: byProduct[product]})
	}
	return monthly, products
}
