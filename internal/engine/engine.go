// Package engine wires the validate -> split -> aggregate pipeline and
// exposes its combined output as a single report.
package engine

import (
	"github.com/guillemsala/expenses-app/internal/expense"
	"github.com/guillemsala/expenses-app/internal/loader"
	"github.com/guillemsala/expenses-app/internal/split"
	"github.com/guillemsala/expenses-app/internal/summary"
	"github.com/guillemsala/expenses-app/internal/validate"
	"go.uber.org/zap"
)

// Report is the full output of one pipeline run over a dataset snapshot.
// Every field is plain read-only data; presentation belongs to callers.
type Report struct {
	// Records are the rows that passed validation, in input order.
	Records []expense.Record

	// Shares align index-for-index with Records.
	Shares []expense.PersonShare

	// RowErrors lists the rows excluded by validation, in input order.
	RowErrors []expense.RowError

	// Warnings are non-fatal conditions attached during share computation.
	Warnings []expense.Warning

	Periods    []summary.PeriodSummary
	Categories []summary.CategorySummary
	Financials []summary.PeriodFinancials
	Totals     [expense.PartyCount]summary.PartyTotals
}

// Run executes the full pipeline over a raw dataset. Row-level validation
// failures never abort the run; they are collected on the report. The only
// returned errors are programming errors surfaced by the aggregation stage.
func Run(logger *zap.Logger, ds loader.Dataset) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	report := &Report{}
	report.Records, report.RowErrors = validate.Validate(ds)
	for _, rowErr := range report.RowErrors {
		logger.Warn("row rejected by validation",
			zap.String("op", "engine.Run"),
			zap.Int("row", rowErr.Row),
			zap.String("reason", string(rowErr.Reason)),
			zap.String("field", rowErr.Field),
		)
	}

	calculator := split.NewCalculator(logger)
	report.Shares, report.Warnings = calculator.ComputeAll(report.Records)

	var err error
	report.Periods, err = summary.Aggregate(report.Records, report.Shares)
	if err != nil {
		return nil, err
	}
	report.Categories, err = summary.AggregateByCategory(report.Records, report.Shares)
	if err != nil {
		return nil, err
	}
	report.Financials, err = summary.Financials(report.Records, report.Shares)
	if err != nil {
		return nil, err
	}
	report.Totals = summary.GrandTotals(report.Financials)

	logger.Debug("pipeline complete",
		zap.String("op", "engine.Run"),
		zap.Int("validRecords", len(report.Records)),
		zap.Int("rowErrors", len(report.RowErrors)),
		zap.Int("warnings", len(report.Warnings)),
		zap.Int("periods", len(report.Periods)),
	)

	return report, nil
}
