// Package fisher implements Fisher's exact test for 2x2 contingency tables.
package fisher

import (
	"errors"
	"fmt"
	"math"
)

// ErrNegativeCell is returned when a contingency table holds a negative count
var ErrNegativeCell = errors.New("contingency table cell is negative")

// relativeTolerance guards the two-sided sum against rounding: outcomes whose
// probability is within this factor of the observed one count as "as extreme"
const relativeTolerance = 1 + 1e-7

// Alternative selects the hypothesis tested
type Alternative int

const (
	// TwoSided tests for any association
	TwoSided Alternative = iota
	// Less tests whether the odds ratio is below 1
	Less
	// Greater tests whether the odds ratio is above 1
	Greater
)

// String returns the string representation of an alternative
func (a Alternative) String() string {
	switch a {
	case TwoSided:
		return "two-sided"
	case Less:
		return "less"
	case Greater:
		return "greater"
	default:
		return "unknown"
	}
}

// ParseAlternative converts a string to an Alternative
func ParseAlternative(s string) (Alternative, error) {
	switch s {
	case "", "two-sided", "two_sided":
		return TwoSided, nil
	case "less":
		return Less, nil
	case "greater":
		return Greater, nil
	default:
		return TwoSided, fmt.Errorf("unknown alternative %q", s)
	}
}

// Table is a 2x2 contingency table [[A, B], [C, D]]
type Table struct {
	A, B, C, D int
}

// Total returns the sum of all four cells
func (t Table) Total() int {
	return t.A + t.B + t.C + t.D
}

// Validate reports a negative cell
func (t Table) Validate() error {
	if t.A < 0 || t.B < 0 || t.C < 0 || t.D < 0 {
		return fmt.Errorf("%w: [[%d %d] [%d %d]]", ErrNegativeCell, t.A, t.B, t.C, t.D)
	}
	return nil
}

// degenerate reports a zero row or column margin
func (t Table) degenerate() bool {
	return t.A+t.B == 0 || t.C+t.D == 0 || t.A+t.C == 0 || t.B+t.D == 0
}

// Result holds the outcome of a test.
//
// OddsRatio is A*D / (B*C), +Inf when B*C is 0. When a row or column margin is
// zero the test carries no information: Undefined is set, OddsRatio is NaN and
// PValue is 1.
type Result struct {
	OddsRatio float64 `json:"odds_ratio"`
	PValue    float64 `json:"p_value"`
	Undefined bool    `json:"undefined,omitempty"`
}

// ExactTest runs Fisher's exact test on the table
func ExactTest(t Table, alternative Alternative) (Result, error) {
	if err := t.Validate(); err != nil {
		return Result{}, err
	}

	if t.degenerate() {
		return Result{OddsRatio: math.NaN(), PValue: 1.0, Undefined: true}, nil
	}

	result := Result{OddsRatio: oddsRatio(t)}

	h := newHypergeometric(t)
	switch alternative {
	case Less:
		result.PValue = h.cdf(t.A)
	case Greater:
		result.PValue = h.sf(t.A)
	case TwoSided:
		result.PValue = h.twoSided(t.A)
	default:
		return Result{}, fmt.Errorf("unknown alternative %d", alternative)
	}

	result.PValue = clamp(result.PValue)
	return result, nil
}

// TwoSidedTest runs the two-sided test
func TwoSidedTest(t Table) (Result, error) {
	return ExactTest(t, TwoSided)
}

func oddsRatio(t Table) float64 {
	denominator := float64(t.B) * float64(t.C)
	if denominator == 0 {
		return math.Inf(1)
	}
	return float64(t.A) * float64(t.D) / denominator
}

func clamp(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
