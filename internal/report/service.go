package report

import (
	"errors"

	"github.com/salesplot-dev/salesplot/internal/aggregate"
	"github.com/salesplot-dev/salesplot/internal/ingest"
	"github.com/salesplot-dev/salesplot/internal/model"
)

// Result holds the aggregates for one run plus ingestion bookkeeping.
type Result struct {
	Monthly  model.AggregateTable
	Products model.AggregateTable
	RowCount int                      // validated rows that fed the aggregates
	Skipped  []ingest.ValidationError // lenient mode only
}

// Service turns raw rows into aggregate tables. It owns the batch-level
// policy for invalid rows: strict (first bad row aborts the run) or lenient
// (bad rows are skipped and reported).
type Service struct {
	lenient bool
}

// NewService creates a report Service.
func NewService(lenient bool) *Service {
	return &Service{lenient: lenient}
}

// Build validates rows, aggregates the survivors, and returns the result.
func (s *Service) Build(rows []ingest.RawRow) (*Result, error) {
	res := &Result{}
	records := make([]model.SalesRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := ingest.Record(row)
		if err != nil {
			var verr *ingest.ValidationError
			if s.lenient && errors.As(err, &verr) {
				res.Skipped = append(res.Skipped, *verr)
				continue
			}
			return nil, err
		}
		records = append(records, rec)
	}

	res.RowCount = len(records)
	res.Monthly, res.Products = aggregate.Totals(records)
	return res, nil
}
