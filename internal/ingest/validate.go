package ingest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/salesplot-dev/salesplot/internal/model"
)

// Field names reported in validation errors.
const (
	FieldMonth   = "month"
	FieldProduct = "product"
	FieldAmount  = "sales_amount"
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// ValidationError describes a single row that failed field validation.
type ValidationError struct {
	Line   int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("row %d: invalid %s: %s", e.Line, e.Field, e.Reason)
}

// Record validates one raw row and converts it to a SalesRecord. It only
// classifies; whether a bad row aborts the whole batch is the caller's call.
func Record(row RawRow) (model.SalesRecord, error) {
	month := strings.TrimSpace(row.Month)
	if !monthPattern.MatchString(month) {
		return model.SalesRecord{}, &ValidationError{
			Line:   row.Line,
			Field:  FieldMonth,
			Reason: fmt.Sprintf("%q is not in YYYY-MM form", row.Month),
		}
	}

	product := strings.TrimSpace(row.Product)
	if product == "" {
		return model.SalesRecord{}, &ValidationError{
			Line:   row.Line,
			Field:  FieldProduct,
			Reason: "product is empty",
		}
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(row.Amount))
	if err != nil {
		return model.SalesRecord{}, &ValidationError{
			Line:   row.Line,
			Field:  FieldAmount,
			Reason: fmt.Sprintf("%q is not a number", row.Amount),
		}
	}
	if amount.IsNegative() {
		return model.SalesRecord{}, &ValidationError{
			Line:   row.Line,
			Field:  FieldAmount,
			Reason: fmt.Sprintf("amount %s is negative", amount),
		}
	}

	return model.SalesRecord{Month: month, Product: product, Amount: amount}, nil
}
