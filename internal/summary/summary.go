// Package summary groups validated records and their computed shares into
// period and category rollups. Summaries are rebuilt from scratch on every
// call, so repeated aggregation over the same snapshot is idempotent.
package summary

import (
	"fmt"
	"sort"

	"github.com/guillemsala/expenses-app/internal/expense"
	"github.com/guillemsala/expenses-app/pkg/datetime"
)

// PeriodSummary holds the aggregated totals for one (year, month) bucket.
type PeriodSummary struct {
	Period datetime.Period

	// TotalEffectiveAmount is the sum of effective amounts over every record
	// in the period, personal or shared.
	TotalEffectiveAmount float64

	// PartyTotals sums each party's share across every record in the period;
	// the pair sums to TotalEffectiveAmount.
	PartyTotals expense.Pair

	// SharedTotal excludes records marked personal.
	SharedTotal float64

	// PersonalTotals restricts each party's share sum to personal records.
	PersonalTotals expense.Pair
}

// CategorySummary holds the totals for one (period, category) bucket.
type CategorySummary struct {
	Period   datetime.Period
	Category string

	TotalEffectiveAmount float64
	PartyTotals          expense.Pair
	RecordCount          int
}

// Aggregate groups records and their aligned shares by (year, month) and
// returns one summary per period in chronological order: year ascending,
// then calendar month order.
func Aggregate(records []expense.Record, shares []expense.PersonShare) ([]PeriodSummary, error) {
	if len(records) != len(shares) {
		return nil, fmt.Errorf("records and shares are misaligned: %d records, %d shares", len(records), len(shares))
	}

	buckets := make(map[datetime.Period]*PeriodSummary)
	for i, rec := range records {
		period := rec.Period()
		bucket, ok := buckets[period]
		if !ok {
			bucket = &PeriodSummary{Period: period}
			buckets[period] = bucket
		}

		bucket.TotalEffectiveAmount += rec.EffectiveAmount()
		bucket.PartyTotals[expense.PartyA] += shares[i][expense.PartyA]
		bucket.PartyTotals[expense.PartyB] += shares[i][expense.PartyB]

		if rec.Personal() {
			bucket.PersonalTotals[expense.PartyA] += shares[i][expense.PartyA]
			bucket.PersonalTotals[expense.PartyB] += shares[i][expense.PartyB]
		} else {
			bucket.SharedTotal += rec.EffectiveAmount()
		}
	}

	summaries := make([]PeriodSummary, 0, len(buckets))
	for _, bucket := range buckets {
		summaries = append(summaries, *bucket)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Period.Before(summaries[j].Period)
	})

	return summaries, nil
}

type categoryKey struct {
	period   datetime.Period
	category string
}

// AggregateByCategory produces the secondary (period, category) breakdown
// over the same validated records and shares, without re-validation. Output
// is ordered chronologically by period, then by category name within a
// period.
func AggregateByCategory(records []expense.Record, shares []expense.PersonShare) ([]CategorySummary, error) {
	if len(records) != len(shares) {
		return nil, fmt.Errorf("records and shares are misaligned: %d records, %d shares", len(records), len(shares))
	}

	buckets := make(map[categoryKey]*CategorySummary)
	for i, rec := range records {
		key := categoryKey{period: rec.Period(), category: rec.Category}
		bucket, ok := buckets[key]
		if !ok {
			bucket = &CategorySummary{Period: key.period, Category: key.category}
			buckets[key] = bucket
		}

		bucket.TotalEffectiveAmount += rec.EffectiveAmount()
		bucket.PartyTotals[expense.PartyA] += shares[i][expense.PartyA]
		bucket.PartyTotals[expense.PartyB] += shares[i][expense.PartyB]
		bucket.RecordCount++
	}

	summaries := make([]CategorySummary, 0, len(buckets))
	for _, bucket := range buckets {
		summaries = append(summaries, *bucket)
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Period != summaries[j].Period {
			return summaries[i].Period.Before(summaries[j].Period)
		}
		return summaries[i].Category < summaries[j].Category
	})

	return summaries, nil
}
