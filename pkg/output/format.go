// Package output provides utilities for formatting and displaying expense
// reports.
package output

import (
	"fmt"

	"github.com/guillemsala/expenses-app/internal/expense"
	"github.com/guillemsala/expenses-app/internal/summary"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(summaries []summary.PeriodSummary, labels [expense.PartyCount]string) {
	p := message.NewPrinter(language.English)
	fmt.Printf("Period          | Total         | %s | %s | Shared        | Personal\n",
		labels[expense.PartyA], labels[expense.PartyB])
	fmt.Printf("______          | _____         | _____ | _____ | ______        | ________\n")
	for _, s := range summaries {
		_, _ = p.Printf("%-15s | $%.2f | $%.2f | $%.2f | $%.2f | $%.2f\n",
			s.Period.Label(),
			s.TotalEffectiveAmount,
			s.PartyTotals[expense.PartyA],
			s.PartyTotals[expense.PartyB],
			s.SharedTotal,
			s.PersonalTotals.Sum(),
		)
	}
}

// PrettyFormatTotals outputs the per-party grand totals across all periods.
func PrettyFormatTotals(totals [expense.PartyCount]summary.PartyTotals, labels [expense.PartyCount]string) {
	p := message.NewPrinter(language.English)
	for party, total := range totals {
		fmt.Printf("--- Totals for %s ---\n", labels[party])
		_, _ = p.Printf("Income:            $%.2f\n", total.Income)
		_, _ = p.Printf("Shared expenses:   $%.2f\n", total.SharedExpenses)
		_, _ = p.Printf("Personal expenses: $%.2f\n", total.PersonalExpenses)
		_, _ = p.Printf("Net savings:       $%.2f\n", total.NetSavings)
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(summaries []summary.PeriodSummary, labels [expense.PartyCount]string) {
	fmt.Printf(`"period","total","%s","%s","shared","personal %s","personal %s"`,
		labels[expense.PartyA], labels[expense.PartyB], labels[expense.PartyA], labels[expense.PartyB])
	fmt.Printf("\n")
	for _, s := range summaries {
		fmt.Printf(`"%s","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f"`,
			s.Period.Label(),
			s.TotalEffectiveAmount,
			s.PartyTotals[expense.PartyA],
			s.PartyTotals[expense.PartyB],
			s.SharedTotal,
			s.PersonalTotals[expense.PartyA],
			s.PersonalTotals[expense.PartyB],
		)
		fmt.Printf("\n")
	}
}
