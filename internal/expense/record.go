// Package expense defines the data structures for validated expense records,
// split strategies, and per-party shares.
package expense

import (
	"time"

	"github.com/guillemsala/expenses-app/pkg/constants"
	"github.com/guillemsala/expenses-app/pkg/datetime"
)

// The engine is strictly bipartite, but party-indexed values are held as
// ordered pairs rather than named fields so the fixed party count lives in
// exactly one place.
const (
	PartyA = 0
	PartyB = 1

	// PartyCount is the number of cost-sharing parties.
	PartyCount = 2
)

// Pair holds one value per party, indexed by PartyA and PartyB.
type Pair [PartyCount]float64

// Sum returns the total across both parties.
func (p Pair) Sum() float64 {
	return p[PartyA] + p[PartyB]
}

// SplitType selects one of the three split strategies.
type SplitType string

const (
	// SalaryWeighted splits the effective amount in proportion to the
	// parties' salaries.
	SalaryWeighted SplitType = "SalaryWeighted"

	// CustomAbsolute assigns each party a fixed per-unit amount.
	CustomAbsolute SplitType = "CustomAbsolute"

	// CustomRelative splits the effective amount by an explicit ratio pair.
	CustomRelative SplitType = "CustomRelative"
)

// ParseSplitType resolves a raw splitType cell to one of the three strategy
// literals. The second return value reports whether the value was recognized.
func ParseSplitType(raw string) (SplitType, bool) {
	switch SplitType(raw) {
	case SalaryWeighted, CustomAbsolute, CustomRelative:
		return SplitType(raw), true
	}
	return "", false
}

// SplitConfig carries the strategy-specific payload of a record. Only the
// fields for the record's own SplitType are meaningful; the rest stay zero.
type SplitConfig struct {
	// Amounts holds the fixed per-unit amounts for CustomAbsolute.
	Amounts Pair

	// Ratios holds the ratio pair for CustomRelative; validation guarantees
	// the pair sums to 1.0 within tolerance.
	Ratios Pair
}

// Record is one validated expense row. Records are immutable once produced
// by the validator.
type Record struct {
	// Row is the zero-based index of the row in the input dataset.
	Row int

	InputDate  string
	ForMonth   time.Month
	ForYear    int
	Category   string
	Name       string
	BaseAmount float64
	Units      int
	SplitType  SplitType
	Salaries   Pair

	// Bonuses are informational only and never enter any split formula.
	Bonuses Pair

	Split SplitConfig
}

// EffectiveAmount is the quantity actually split among the parties.
func (r Record) EffectiveAmount() float64 {
	return r.BaseAmount * float64(r.Units)
}

// Personal reports whether the record is marked as one party's private
// spending.
func (r Record) Personal() bool {
	return r.Category == constants.PersonalCategory
}

// Period returns the (year, month) bucket the record belongs to.
func (r Record) Period() datetime.Period {
	return datetime.Period{Year: r.ForYear, Month: r.ForMonth}
}

// PersonShare is the result of splitting one record between the parties.
type PersonShare = Pair
