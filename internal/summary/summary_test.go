package summary

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/guillemsala/expenses-app/internal/expense"
	"github.com/guillemsala/expenses-app/pkg/datetime"
)

// fixture returns records spanning two periods with aligned shares, listed
// deliberately out of chronological order.
func fixture() ([]expense.Record, []expense.PersonShare) {
	records := []expense.Record{
		{
			Row:        0,
			ForMonth:   time.February,
			ForYear:    2025,
			Category:   "household",
			Name:       "rent",
			BaseAmount: 2000,
			Units:      1,
			SplitType:  expense.SalaryWeighted,
			Salaries:   expense.Pair{6000, 4000},
		},
		{
			Row:        1,
			ForMonth:   time.January,
			ForYear:    2025,
			Category:   "personal",
			Name:       "gym",
			BaseAmount: 100,
			Units:      1,
			SplitType:  expense.CustomAbsolute,
			Salaries:   expense.Pair{6000, 4000},
			Split:      expense.SplitConfig{Amounts: expense.Pair{100, 0}},
		},
		{
			Row:        2,
			ForMonth:   time.January,
			ForYear:    2025,
			Category:   "household",
			Name:       "groceries",
			BaseAmount: 400,
			Units:      1,
			SplitType:  expense.SalaryWeighted,
			Salaries:   expense.Pair{6000, 4000},
		},
		{
			Row:        3,
			ForMonth:   time.December,
			ForYear:    2024,
			Category:   "household",
			Name:       "utilities",
			BaseAmount: 150,
			Units:      1,
			SplitType:  expense.CustomRelative,
			Salaries:   expense.Pair{6000, 4000},
			Split:      expense.SplitConfig{Ratios: expense.Pair{0.5, 0.5}},
		},
	}
	shares := []expense.PersonShare{
		{1200, 800},
		{100, 0},
		{240, 160},
		{75, 75},
	}
	return records, shares
}

func TestAggregateChronologicalOrder(t *testing.T) {
	records, shares := fixture()

	summaries, err := Aggregate(records, shares)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	expected := []datetime.Period{
		{Year: 2024, Month: time.December},
		{Year: 2025, Month: time.January},
		{Year: 2025, Month: time.February},
	}
	if len(summaries) != len(expected) {
		t.Fatalf("expected %d summaries, got %d", len(expected), len(summaries))
	}
	for i, period := range expected {
		if summaries[i].Period != period {
			t.Errorf("summary %d period = %v, expected %v", i, summaries[i].Period, period)
		}
	}
}

func TestAggregateTotals(t *testing.T) {
	records, shares := fixture()

	summaries, err := Aggregate(records, shares)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	january := summaries[1]
	if january.TotalEffectiveAmount != 500 {
		t.Errorf("January total = %v, expected 500", january.TotalEffectiveAmount)
	}
	if january.SharedTotal != 400 {
		t.Errorf("January shared total = %v, expected 400 (personal excluded)", january.SharedTotal)
	}
	if january.PersonalTotals != (expense.Pair{100, 0}) {
		t.Errorf("January personal totals = %v, expected {100 0}", january.PersonalTotals)
	}
	if january.PartyTotals != (expense.Pair{340, 160}) {
		t.Errorf("January party totals = %v, expected {340 160}", january.PartyTotals)
	}

	// partyATotal + partyBTotal == totalEffectiveAmount for every period.
	for _, s := range summaries {
		if math.Abs(s.PartyTotals.Sum()-s.TotalEffectiveAmount) > 1e-9 {
			t.Errorf("period %v: party totals %v do not sum to %v",
				s.Period, s.PartyTotals, s.TotalEffectiveAmount)
		}
	}
}

func TestAggregatePersonalNeverInSharedTotal(t *testing.T) {
	records, shares := fixture()

	summaries, err := Aggregate(records, shares)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	for _, s := range summaries {
		if s.SharedTotal > s.TotalEffectiveAmount {
			t.Errorf("period %v: shared total %v exceeds total %v",
				s.Period, s.SharedTotal, s.TotalEffectiveAmount)
		}
	}
	// The only personal record sits in January 2025.
	if summaries[1].SharedTotal+100 != summaries[1].TotalEffectiveAmount {
		t.Errorf("personal record leaked into shared total: %v", summaries[1])
	}
}

func TestAggregateIdempotent(t *testing.T) {
	records, shares := fixture()

	first, err := Aggregate(records, shares)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	second, err := Aggregate(records, shares)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated aggregation differed:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestAggregateMisalignedInputs(t *testing.T) {
	records, shares := fixture()

	if _, err := Aggregate(records, shares[:1]); err == nil {
		t.Error("Aggregate() expected error for misaligned inputs but got none")
	}
	if _, err := AggregateByCategory(records, shares[:1]); err == nil {
		t.Error("AggregateByCategory() expected error for misaligned inputs but got none")
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	summaries, err := Aggregate(nil, nil)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if len(summaries) != 0 {
		t.Errorf("expected no summaries for empty input, got %d", len(summaries))
	}
}

func TestAggregateByCategory(t *testing.T) {
	records, shares := fixture()

	summaries, err := AggregateByCategory(records, shares)
	if err != nil {
		t.Fatalf("AggregateByCategory() error = %v", err)
	}

	// December household, January household, January personal, February household.
	if len(summaries) != 4 {
		t.Fatalf("expected 4 category buckets, got %d", len(summaries))
	}

	january := datetime.Period{Year: 2025, Month: time.January}
	if summaries[1].Period != january || summaries[1].Category != "household" {
		t.Errorf("bucket 1 = (%v, %s), expected (January 2025, household)",
			summaries[1].Period, summaries[1].Category)
	}
	if summaries[2].Period != january || summaries[2].Category != "personal" {
		t.Errorf("bucket 2 = (%v, %s), expected (January 2025, personal)",
			summaries[2].Period, summaries[2].Category)
	}

	if summaries[1].TotalEffectiveAmount != 400 || summaries[1].RecordCount != 1 {
		t.Errorf("January household = %+v, expected total 400 over 1 record", summaries[1])
	}
	if summaries[2].PartyTotals != (expense.Pair{100, 0}) {
		t.Errorf("January personal party totals = %v, expected {100 0}", summaries[2].PartyTotals)
	}
}
