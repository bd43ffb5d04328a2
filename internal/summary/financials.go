package summary

import (
	"fmt"
	"sort"

	"github.com/guillemsala/expenses-app/internal/expense"
	"github.com/guillemsala/expenses-app/pkg/datetime"
	"github.com/guillemsala/expenses-app/pkg/mathutil"
)

// PartyFinancials carries one party's financial picture for a period.
type PartyFinancials struct {
	Salary float64
	Bonus  float64

	// TotalIncome is salary plus bonus.
	TotalIncome float64

	SharedExpenses   float64
	PersonalExpenses float64
	TotalExpenses    float64
	NetSavings       float64

	// SavingsRate is net savings as a percentage of total income.
	SavingsRate float64

	// SplitRate is this party's percentage of the period's shared total.
	SplitRate float64
}

// PeriodFinancials extends the period rollup with per-party income, savings,
// and split-rate metrics.
type PeriodFinancials struct {
	Period  datetime.Period
	Parties [expense.PartyCount]PartyFinancials

	TotalSharedExpenses float64
	CombinedIncome      float64
	CombinedSavings     float64
	CombinedSavingsRate float64
}

// PartyTotals accumulates one party's figures across all periods.
type PartyTotals struct {
	Income           float64
	SharedExpenses   float64
	PersonalExpenses float64
	NetSavings       float64
}

// Financials computes the per-party financial metrics for every period, in
// chronological order. Salaries and bonuses are taken from the first record
// of each period; the schema assumes they are consistent within a period.
func Financials(records []expense.Record, shares []expense.PersonShare) ([]PeriodFinancials, error) {
	if len(records) != len(shares) {
		return nil, fmt.Errorf("records and shares are misaligned: %d records, %d shares", len(records), len(shares))
	}

	type accumulator struct {
		first    expense.Record
		shared   expense.Pair
		personal expense.Pair
		total    float64
	}

	buckets := make(map[datetime.Period]*accumulator)
	for i, rec := range records {
		period := rec.Period()
		bucket, ok := buckets[period]
		if !ok {
			bucket = &accumulator{first: rec}
			buckets[period] = bucket
		}

		if rec.Personal() {
			bucket.personal[expense.PartyA] += shares[i][expense.PartyA]
			bucket.personal[expense.PartyB] += shares[i][expense.PartyB]
		} else {
			bucket.shared[expense.PartyA] += shares[i][expense.PartyA]
			bucket.shared[expense.PartyB] += shares[i][expense.PartyB]
			bucket.total += rec.EffectiveAmount()
		}
	}

	financials := make([]PeriodFinancials, 0, len(buckets))
	for period, bucket := range buckets {
		pf := PeriodFinancials{
			Period:              period,
			TotalSharedExpenses: bucket.total,
		}

		for party := range pf.Parties {
			salary := bucket.first.Salaries[party]
			bonus := bucket.first.Bonuses[party]
			income := salary + bonus
			totalExpenses := bucket.shared[party] + bucket.personal[party]
			savings := income - totalExpenses

			pf.Parties[party] = PartyFinancials{
				Salary:           salary,
				Bonus:            bonus,
				TotalIncome:      income,
				SharedExpenses:   bucket.shared[party],
				PersonalExpenses: bucket.personal[party],
				TotalExpenses:    totalExpenses,
				NetSavings:       savings,
				SavingsRate:      mathutil.CalculatePercentage(savings, income),
				SplitRate:        mathutil.CalculatePercentage(bucket.shared[party], bucket.total),
			}

			pf.CombinedIncome += income
			pf.CombinedSavings += savings
		}
		pf.CombinedSavingsRate = mathutil.CalculatePercentage(pf.CombinedSavings, pf.CombinedIncome)

		financials = append(financials, pf)
	}

	sort.Slice(financials, func(i, j int) bool {
		return financials[i].Period.Before(financials[j].Period)
	})

	return financials, nil
}

// GrandTotals accumulates each party's income, expenses, and savings across
// all periods.
func GrandTotals(financials []PeriodFinancials) [expense.PartyCount]PartyTotals {
	var totals [expense.PartyCount]PartyTotals

	for _, pf := range financials {
		for party := range pf.Parties {
			totals[party].Income += pf.Parties[party].TotalIncome
			totals[party].SharedExpenses += pf.Parties[party].SharedExpenses
			totals[party].PersonalExpenses += pf.Parties[party].PersonalExpenses
			totals[party].NetSavings += pf.Parties[party].NetSavings
		}
	}

	return totals
}
