package engine

import (
	"math"
	"testing"
	"time"

	"github.com/guillemsala/expenses-app/internal/expense"
	"github.com/guillemsala/expenses-app/internal/loader"
	"go.uber.org/zap"
)

func TestRunEndToEnd(t *testing.T) {
	ds := loader.Dataset{
		Rows: []loader.Row{
			{
				"inputDate":    "2025-01-01",
				"forMonth":     "January",
				"forYear":      "2025",
				"category":     "household",
				"name":         "rent",
				"baseAmount":   "2000",
				"units":        "1",
				"splitType":    "SalaryWeighted",
				"partyASalary": "6000",
				"partyBSalary": "4000",
			},
			{
				"inputDate":    "2025-01-02",
				"forMonth":     "January",
				"forYear":      "2025",
				"category":     "personal",
				"name":         "gym",
				"baseAmount":   "100",
				"units":        "1",
				"splitType":    "CustomAbsolute",
				"partyASalary": "6000",
				"partyBSalary": "4000",
				"partyAAmount": "100",
				"partyBAmount": "0",
			},
		},
	}

	report, err := Run(zap.NewNop(), ds)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(report.RowErrors) != 0 {
		t.Fatalf("expected no row errors, got %v", report.RowErrors)
	}
	if len(report.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(report.Records))
	}

	if report.Shares[0] != (expense.PersonShare{1200, 800}) {
		t.Errorf("shares[0] = %v, expected (1200, 800)", report.Shares[0])
	}
	if report.Shares[1] != (expense.PersonShare{100, 0}) {
		t.Errorf("shares[1] = %v, expected (100, 0)", report.Shares[1])
	}

	if len(report.Periods) != 1 {
		t.Fatalf("expected 1 period summary, got %d", len(report.Periods))
	}
	period := report.Periods[0]
	if period.TotalEffectiveAmount != 2100 {
		t.Errorf("total effective amount = %v, expected 2100", period.TotalEffectiveAmount)
	}
	if period.SharedTotal != 2000 {
		t.Errorf("shared total = %v, expected 2000", period.SharedTotal)
	}
	if period.PersonalTotals[expense.PartyA] != 100 {
		t.Errorf("personal party A total = %v, expected 100", period.PersonalTotals[expense.PartyA])
	}

	if len(report.Categories) != 2 {
		t.Errorf("expected 2 category buckets, got %d", len(report.Categories))
	}
	if len(report.Financials) != 1 {
		t.Fatalf("expected 1 period financials, got %d", len(report.Financials))
	}
	if report.Totals[expense.PartyA].Income != 6000 {
		t.Errorf("party A total income = %v, expected 6000", report.Totals[expense.PartyA].Income)
	}
}

func TestRunCollectsRowErrorsWithoutAborting(t *testing.T) {
	ds := loader.Dataset{
		Rows: []loader.Row{
			{
				"inputDate":    "2025-01-01",
				"forMonth":     "January",
				"forYear":      "2025",
				"category":     "household",
				"name":         "rent",
				"baseAmount":   "2000",
				"units":        "1",
				"splitType":    "SalaryWeighted",
				"partyASalary": "6000",
				"partyBSalary": "4000",
			},
			{
				// splitType missing entirely.
				"inputDate":    "2025-01-02",
				"forMonth":     "January",
				"forYear":      "2025",
				"category":     "household",
				"name":         "mystery",
				"baseAmount":   "10",
				"units":        "1",
				"partyASalary": "6000",
				"partyBSalary": "4000",
			},
		},
	}

	report, err := Run(zap.NewNop(), ds)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(report.Records) != 1 {
		t.Errorf("expected 1 valid record, got %d", len(report.Records))
	}
	if len(report.RowErrors) != 1 {
		t.Fatalf("expected 1 row error, got %d", len(report.RowErrors))
	}
	if report.RowErrors[0].Reason != expense.MissingField {
		t.Errorf("reason = %v, expected MissingField", report.RowErrors[0].Reason)
	}
	if report.RowErrors[0].Row != 1 {
		t.Errorf("row = %d, expected 1", report.RowErrors[0].Row)
	}
}

func TestRunShareSumInvariant(t *testing.T) {
	ds := loader.Dataset{
		Rows: []loader.Row{
			{
				"inputDate":    "2025-03-01",
				"forMonth":     "March",
				"forYear":      "2025",
				"category":     "household",
				"name":         "internet",
				"baseAmount":   "83.33",
				"units":        "3",
				"splitType":    "CustomRelative",
				"partyASalary": "1",
				"partyBSalary": "2",
				"partyARatio":  "0.333333",
				"partyBRatio":  "0.666667",
			},
			{
				"inputDate":    "2025-03-02",
				"forMonth":     "March",
				"forYear":      "2025",
				"category":     "household",
				"name":         "water",
				"baseAmount":   "47.11",
				"units":        "1",
				"splitType":    "SalaryWeighted",
				"partyASalary": "3141.59",
				"partyBSalary": "2718.28",
			},
		},
	}

	report, err := Run(zap.NewNop(), ds)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for i, rec := range report.Records {
		if math.Abs(report.Shares[i].Sum()-rec.EffectiveAmount()) > 1e-9 {
			t.Errorf("record %d (%s): shares %v do not sum to effective amount %v",
				i, rec.Name, report.Shares[i], rec.EffectiveAmount())
		}
	}

	if report.Periods[0].Period.Month != time.March {
		t.Errorf("period month = %v, expected March", report.Periods[0].Period.Month)
	}
}
