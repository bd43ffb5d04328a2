// Package split computes per-party shares for validated expense records.
package split

import (
	"fmt"

	"github.com/guillemsala/expenses-app/internal/expense"
	"go.uber.org/zap"
)

// Calculator maps validated records to per-party shares. It is total over
// validated input: any record that passed validation produces a share pair,
// never an error.
type Calculator struct {
	logger *zap.Logger
}

// NewCalculator creates a new split calculator with the given logger.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewCalculator(logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger}
}

// Compute returns the share pair for one record. The second return value
// carries a non-fatal warning where one applies, nil otherwise.
//
// For SalaryWeighted and CustomRelative the second party's share is derived
// by subtraction from the effective amount so the two shares sum to it
// exactly under floating-point rounding.
func (c *Calculator) Compute(rec expense.Record) (expense.PersonShare, *expense.Warning) {
	var share expense.PersonShare
	effective := rec.EffectiveAmount()

	switch rec.SplitType {
	case expense.SalaryWeighted:
		totalSalary := rec.Salaries.Sum()
		if totalSalary == 0 {
			// Explicit fallback: an even split instead of dividing by zero.
			share[expense.PartyA] = effective / 2
			share[expense.PartyB] = effective - share[expense.PartyA]

			warning := &expense.Warning{
				Row:     rec.Row,
				Kind:    expense.ZeroSalaryFallback,
				Message: fmt.Sprintf("record %q has zero combined salary, splitting 50/50", rec.Name),
			}
			c.logger.Warn(warning.Message,
				zap.String("op", "split.Compute"),
				zap.Int("row", rec.Row),
			)
			return share, warning
		}
		share[expense.PartyA] = effective * rec.Salaries[expense.PartyA] / totalSalary
		share[expense.PartyB] = effective - share[expense.PartyA]

	case expense.CustomAbsolute:
		// Each party's fixed amount scales by units independently; the
		// nominal baseAmount does not enter absolute splits.
		share[expense.PartyA] = rec.Split.Amounts[expense.PartyA] * float64(rec.Units)
		share[expense.PartyB] = rec.Split.Amounts[expense.PartyB] * float64(rec.Units)

	case expense.CustomRelative:
		share[expense.PartyA] = rec.Split.Ratios[expense.PartyA] * effective
		share[expense.PartyB] = effective - share[expense.PartyA]
	}

	c.logger.Debug("computed split",
		zap.String("op", "split.Compute"),
		zap.Int("row", rec.Row),
		zap.String("splitType", string(rec.SplitType)),
		zap.Float64("partyA", share[expense.PartyA]),
		zap.Float64("partyB", share[expense.PartyB]),
	)
	return share, nil
}

// ComputeAll computes shares for every record in input order and collects the
// warnings emitted along the way. The returned shares align index-for-index
// with the records.
func (c *Calculator) ComputeAll(records []expense.Record) ([]expense.PersonShare, []expense.Warning) {
	shares := make([]expense.PersonShare, len(records))
	var warnings []expense.Warning

	for i, rec := range records {
		share, warning := c.Compute(rec)
		shares[i] = share
		if warning != nil {
			warnings = append(warnings, *warning)
		}
	}

	return shares, warnings
}
