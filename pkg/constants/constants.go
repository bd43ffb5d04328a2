// Package constants provides shared constants for the expenses-app engine.
package constants

// Core dataset columns that must be present and non-empty on every row.
const (
	ColumnInputDate    = "inputDate"
	ColumnForMonth     = "forMonth"
	ColumnForYear      = "forYear"
	ColumnCategory     = "category"
	ColumnName         = "name"
	ColumnBaseAmount   = "baseAmount"
	ColumnUnits        = "units"
	ColumnSplitType    = "splitType"
	ColumnPartyASalary = "partyASalary"
	ColumnPartyBSalary = "partyBSalary"
)

// Conditional and optional columns.
const (
	ColumnPartyABonus  = "partyABonus"
	ColumnPartyBBonus  = "partyBBonus"
	ColumnPartyAAmount = "partyAAmount"
	ColumnPartyBAmount = "partyBAmount"
	ColumnPartyARatio  = "partyARatio"
	ColumnPartyBRatio  = "partyBRatio"
)

// CoreColumns lists every required column in schema order.
var CoreColumns = []string{
	ColumnInputDate,
	ColumnForMonth,
	ColumnForYear,
	ColumnCategory,
	ColumnName,
	ColumnBaseAmount,
	ColumnUnits,
	ColumnSplitType,
	ColumnPartyASalary,
	ColumnPartyBSalary,
}

// PersonalCategory marks a record as one party's private spending; such
// records are excluded from shared totals but still split and summed.
const PersonalCategory = "personal"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// RatioSumTolerance is the allowed deviation of a relative split's
	// ratio pair from summing to exactly 1.0
	RatioSumTolerance = 1e-6

	// ShareSumTolerance is the allowed deviation of a record's two shares
	// from summing to the effective amount
	ShareSumTolerance = 1e-9

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultInputFile is the default expenses CSV file name
	DefaultInputFile = "expenses.csv"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the report API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for CSV datasets (1 MB)
	DefaultMaxUploadSizeBytes int64 = 1024 * 1024
)
