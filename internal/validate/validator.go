// Package validate checks raw dataset rows against the expense schema and
// coerces them into validated records.
package validate

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/guillemsala/expenses-app/internal/expense"
	"github.com/guillemsala/expenses-app/internal/loader"
	"github.com/guillemsala/expenses-app/pkg/constants"
	"github.com/guillemsala/expenses-app/pkg/datetime"
	"github.com/guillemsala/expenses-app/pkg/mathutil"
)

// Validate checks every row of the dataset independently and returns the
// validated records alongside the row-level failures. One row's failure never
// blocks another; validated records retain input order.
func Validate(ds loader.Dataset) ([]expense.Record, []expense.RowError) {
	var records []expense.Record
	var rowErrors []expense.RowError

	for i, row := range ds.Rows {
		record, rowErr := validateRow(i, row)
		if rowErr != nil {
			rowErrors = append(rowErrors, *rowErr)
			continue
		}
		records = append(records, record)
	}

	return records, rowErrors
}

// validateRow applies the schema rules to a single row. The first failing
// rule decides the row's error; rules run in contract order.
func validateRow(index int, row loader.Row) (expense.Record, *expense.RowError) {
	record := expense.Record{Row: index}

	// Rule 1: all core columns present and non-empty.
	var missing []string
	for _, col := range constants.CoreColumns {
		if strings.TrimSpace(row[col]) == "" {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return record, &expense.RowError{
			Row:     index,
			Field:   missing[0],
			Reason:  expense.MissingField,
			Message: fmt.Sprintf("required columns missing or empty: %s", strings.Join(missing, ", ")),
		}
	}

	record.InputDate = strings.TrimSpace(row[constants.ColumnInputDate])
	record.Category = strings.TrimSpace(row[constants.ColumnCategory])
	record.Name = strings.TrimSpace(row[constants.ColumnName])

	// Rule 2: splitType must be one of the three strategy literals.
	splitType, ok := expense.ParseSplitType(strings.TrimSpace(row[constants.ColumnSplitType]))
	if !ok {
		return record, &expense.RowError{
			Row:     index,
			Field:   constants.ColumnSplitType,
			Reason:  expense.InvalidSplitType,
			Message: fmt.Sprintf("unrecognized splitType %q", row[constants.ColumnSplitType]),
		}
	}
	record.SplitType = splitType

	// Rule 3: numeric coercion and range checks.
	year, ok := parseInteger(row[constants.ColumnForYear])
	if !ok {
		return record, numericError(index, constants.ColumnForYear, row[constants.ColumnForYear], "must be an integer")
	}
	record.ForYear = year

	baseAmount, ok := parseDecimal(row[constants.ColumnBaseAmount])
	if !ok || baseAmount < 0 {
		return record, numericError(index, constants.ColumnBaseAmount, row[constants.ColumnBaseAmount], "must be a decimal >= 0")
	}
	record.BaseAmount = baseAmount

	units, ok := parseInteger(row[constants.ColumnUnits])
	if !ok || units < 1 {
		return record, numericError(index, constants.ColumnUnits, row[constants.ColumnUnits], "must be an integer >= 1")
	}
	record.Units = units

	salaryColumns := [expense.PartyCount]string{constants.ColumnPartyASalary, constants.ColumnPartyBSalary}
	for party, col := range salaryColumns {
		salary, ok := parseDecimal(row[col])
		if !ok || salary < 0 {
			return record, numericError(index, col, row[col], "must be a decimal >= 0")
		}
		record.Salaries[party] = salary
	}

	// Bonuses are optional and informational, but still have to be numeric
	// when given.
	bonusColumns := [expense.PartyCount]string{constants.ColumnPartyABonus, constants.ColumnPartyBBonus}
	for party, col := range bonusColumns {
		raw := strings.TrimSpace(row[col])
		if raw == "" {
			continue
		}
		bonus, ok := parseDecimal(raw)
		if !ok {
			return record, numericError(index, col, raw, "must be a decimal when present")
		}
		record.Bonuses[party] = bonus
	}

	// Rules 4 and 5: strategy-specific payload.
	if rowErr := validateSplitConfig(index, row, &record); rowErr != nil {
		return record, rowErr
	}

	// Rule 6: forMonth must be a recognized full month name.
	month, ok := datetime.ParseMonth(row[constants.ColumnForMonth])
	if !ok {
		return record, &expense.RowError{
			Row:     index,
			Field:   constants.ColumnForMonth,
			Reason:  expense.InvalidMonth,
			Message: fmt.Sprintf("unrecognized month name %q", row[constants.ColumnForMonth]),
		}
	}
	record.ForMonth = month

	return record, nil
}

// validateSplitConfig enforces the conditional column contract for the row's
// split strategy. SalaryWeighted carries no extra fields.
func validateSplitConfig(index int, row loader.Row, record *expense.Record) *expense.RowError {
	switch record.SplitType {
	case expense.CustomAbsolute:
		cols := [expense.PartyCount]string{constants.ColumnPartyAAmount, constants.ColumnPartyBAmount}
		for party, col := range cols {
			amount, ok := parseDecimal(row[col])
			if !ok || amount < 0 {
				return &expense.RowError{
					Row:     index,
					Field:   col,
					Reason:  expense.MissingSplitFields,
					Message: fmt.Sprintf("%s requires %s as a decimal >= 0", expense.CustomAbsolute, col),
				}
			}
			record.Split.Amounts[party] = amount
		}
	case expense.CustomRelative:
		cols := [expense.PartyCount]string{constants.ColumnPartyARatio, constants.ColumnPartyBRatio}
		for party, col := range cols {
			ratio, ok := parseDecimal(row[col])
			if !ok {
				return &expense.RowError{
					Row:     index,
					Field:   col,
					Reason:  expense.MissingSplitFields,
					Message: fmt.Sprintf("%s requires %s as a decimal", expense.CustomRelative, col),
				}
			}
			record.Split.Ratios[party] = ratio
		}
		if !mathutil.WithinTolerance(record.Split.Ratios.Sum(), 1.0, constants.RatioSumTolerance) {
			return &expense.RowError{
				Row:     index,
				Field:   constants.ColumnPartyARatio,
				Reason:  expense.RatioMismatch,
				Message: fmt.Sprintf("ratios sum to %v, expected 1.0 within %v", record.Split.Ratios.Sum(), constants.RatioSumTolerance),
			}
		}
	}
	return nil
}

func numericError(index int, field, raw, constraint string) *expense.RowError {
	return &expense.RowError{
		Row:     index,
		Field:   field,
		Reason:  expense.InvalidNumeric,
		Message: fmt.Sprintf("value %q %s", raw, constraint),
	}
}

// parseDecimal coerces a raw cell to a float64.
func parseDecimal(raw string) (float64, bool) {
	val, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
		return 0, false
	}
	return val, true
}

// parseInteger coerces a raw cell to an int, accepting decimal notation with
// no fractional part (e.g. "2.0" spreadsheet exports).
func parseInteger(raw string) (int, bool) {
	val, ok := parseDecimal(raw)
	if !ok || math.Trunc(val) != val {
		return 0, false
	}
	return int(val), true
}
