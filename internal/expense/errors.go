package expense

import "fmt"

// Reason classifies why a row failed validation.
type Reason string

const (
	MissingField       Reason = "MissingField"
	InvalidSplitType   Reason = "InvalidSplitType"
	InvalidNumeric     Reason = "InvalidNumeric"
	MissingSplitFields Reason = "MissingSplitFields"
	RatioMismatch      Reason = "RatioMismatch"
	InvalidMonth       Reason = "InvalidMonth"
)

// RowError describes one row-level validation failure. Row errors are
// collected, never raised; a failing row is excluded from the validated set
// without affecting any other row.
type RowError struct {
	// Row is the zero-based index of the offending row in the input dataset.
	Row int

	// Field names the column that triggered the failure, where one applies.
	Field string

	Reason  Reason
	Message string
}

// Error satisfies the error interface for logging convenience; row errors
// still travel as values, not as returned errors.
func (e RowError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("row %d: %s (%s): %s", e.Row, e.Reason, e.Field, e.Message)
	}
	return fmt.Sprintf("row %d: %s: %s", e.Row, e.Reason, e.Message)
}

// WarningKind classifies non-fatal conditions surfaced by the calculator.
type WarningKind string

// ZeroSalaryFallback marks a SalaryWeighted record whose combined salary was
// zero, forcing the explicit 50/50 fallback.
const ZeroSalaryFallback WarningKind = "ZeroSalaryFallback"

// Warning is attached to a record's result without excluding the record from
// any downstream processing.
type Warning struct {
	Row     int
	Kind    WarningKind
	Message string
}
