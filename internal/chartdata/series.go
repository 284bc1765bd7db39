package chartdata

import (
	"github.com/shopspring/decimal"

	"github.com/salesplot-dev/salesplot/internal/model"
)

// Point is one plotted category: an x-axis label and its value.
type Point struct {
	Label string
	Value decimal.Decimal
}

// Series is the shape a renderer needs for one chart: ordered points plus
// the value range for axis scaling. Empty marks a table with no entries so
// the renderer can draw a placeholder instead of scaling an undefined range.
type Series struct {
	Points []Point
	Min    decimal.Decimal
	Max    decimal.Decimal
	Empty  bool
}

// FromTable reshapes an aggregate table into a Series, preserving the
// table's entry order.
func FromTable(t model.AggregateTable) Series {
	if len(t) == 0 {
		return Series{Empty: true}
	}

	s := Series{
		Points: make([]Point, len(t)),
		Min:    t[0].Total,
		Max:    t[0].Total,
	}
	for i, e := range t {
		s.Points[i] = Point{Label: e.Key, Value: e.Total}
		if e.Total.LessThan(s.Min) {
			s.Min = e.Total
		}
		if e.Total.GreaterThan(s.Max) {
			s.Max = e.Total
		}
	}
	return s
}
