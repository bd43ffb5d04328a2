// Package datetime provides month and period utility functions.
package datetime

import (
	"fmt"
	"strings"
	"time"
)

// InputDateLayout is the ISO-8601 format expected for the inputDate column.
const InputDateLayout = "2006-01-02"

// monthsByName maps lowercased full English month names to their calendar month.
var monthsByName = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

// ParseMonth resolves a full English month name, case-insensitively, to its
// calendar month. The second return value reports whether the name was
// recognized.
func ParseMonth(name string) (time.Month, bool) {
	month, ok := monthsByName[strings.ToLower(strings.TrimSpace(name))]
	return month, ok
}

// Period identifies one (year, month) bucket.
type Period struct {
	Year  int
	Month time.Month
}

// Before returns true if p falls strictly earlier than other: year ascending,
// then calendar month order.
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}

// Label returns the display form of the period, e.g. "January 2025".
func (p Period) Label() string {
	return fmt.Sprintf("%s %d", p.Month.String(), p.Year)
}

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}
