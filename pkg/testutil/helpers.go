// Package testutil provides common utility functions for testing.
package testutil

import (
	"time"

	"github.com/guillemsala/expenses-app/internal/summary"
	"github.com/guillemsala/expenses-app/pkg/datetime"
)

// FindPeriod finds a period summary by (year, month) in the summaries slice.
// Returns a pointer to the summary if found, nil otherwise.
func FindPeriod(summaries []summary.PeriodSummary, year int, month time.Month) *summary.PeriodSummary {
	target := datetime.Period{Year: year, Month: month}
	for i := range summaries {
		if summaries[i].Period == target {
			return &summaries[i]
		}
	}
	return nil
}

// FindCategory finds a category summary by (year, month, category).
// Returns a pointer to the summary if found, nil otherwise.
func FindCategory(summaries []summary.CategorySummary, year int, month time.Month, category string) *summary.CategorySummary {
	target := datetime.Period{Year: year, Month: month}
	for i := range summaries {
		if summaries[i].Period == target && summaries[i].Category == category {
			return &summaries[i]
		}
	}
	return nil
}
