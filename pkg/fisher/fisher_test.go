package fisher

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

func TestExactTest_KnownValues(t *testing.T) {
	tests := []struct {
		name      string
		table     Table
		wantOdds  float64
		wantP     float64
		alternate Alternative
	}{
		{"tea tasting two-sided", Table{3, 1, 1, 3}, 9.0, 34.0 / 70.0, TwoSided},
		{"tea tasting greater", Table{3, 1, 1, 3}, 9.0, 17.0 / 70.0, Greater},
		{"tea tasting less", Table{3, 1, 1, 3}, 9.0, 69.0 / 70.0, Less},
		{"asymmetric two-sided", Table{8, 2, 1, 5}, 20.0, 400.0 / 11440.0, TwoSided},
		{"no association", Table{2, 2, 2, 2}, 1.0, 1.0, TwoSided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ExactTest(tt.table, tt.alternate)
			if err != nil {
				t.Fatalf("ExactTest failed: %v", err)
			}
			if math.Abs(result.OddsRatio-tt.wantOdds) > tolerance {
				t.Errorf("OddsRatio = %v, want %v", result.OddsRatio, tt.wantOdds)
			}
			if math.Abs(result.PValue-tt.wantP) > tolerance {
				t.Errorf("PValue = %v, want %v", result.PValue, tt.wantP)
			}
			if result.Undefined {
				t.Error("Result should be defined")
			}
		})
	}
}

// TestExactTest_ZeroOffDiagonal tests the infinite odds ratio convention
func TestExactTest_ZeroOffDiagonal(t *testing.T) {
	result, err := TwoSidedTest(Table{A: 2, B: 0, C: 0, D: 1})
	if err != nil {
		t.Fatalf("TwoSidedTest failed: %v", err)
	}

	if !math.IsInf(result.OddsRatio, 1) {
		t.Errorf("OddsRatio = %v, want +Inf", result.OddsRatio)
	}
	if math.Abs(result.PValue-1.0/3.0) > tolerance {
		t.Errorf("PValue = %v, want 1/3", result.PValue)
	}
}

func TestExactTest_ZeroOddsRatio(t *testing.T) {
	result, err := TwoSidedTest(Table{A: 1, B: 1, C: 1, D: 0})
	if err != nil {
		t.Fatalf("TwoSidedTest failed: %v", err)
	}

	if result.OddsRatio != 0.0 {
		t.Errorf("OddsRatio = %v, want 0", result.OddsRatio)
	}
	if math.Abs(result.PValue-1.0) > tolerance {
		t.Errorf("PValue = %v, want 1", result.PValue)
	}
}

// TestExactTest_DegenerateMargins tests tables with an empty row or column
func TestExactTest_DegenerateMargins(t *testing.T) {
	tables := []Table{
		{A: 0, B: 0, C: 3, D: 4},
		{A: 5, B: 0, C: 2, D: 0},
		{A: 0, B: 0, C: 0, D: 0},
	}

	for _, table := range tables {
		result, err := TwoSidedTest(table)
		if err != nil {
			t.Fatalf("TwoSidedTest(%+v) failed: %v", table, err)
		}
		if !result.Undefined {
			t.Errorf("TwoSidedTest(%+v) should be undefined", table)
		}
		if !math.IsNaN(result.OddsRatio) {
			t.Errorf("TwoSidedTest(%+v) OddsRatio = %v, want NaN", table, result.OddsRatio)
		}
		if result.PValue != 1.0 {
			t.Errorf("TwoSidedTest(%+v) PValue = %v, want 1", table, result.PValue)
		}
	}
}

func TestExactTest_NegativeCell(t *testing.T) {
	_, err := TwoSidedTest(Table{A: 1, B: -1, C: 2, D: 3})
	if !errors.Is(err, ErrNegativeCell) {
		t.Errorf("Expected ErrNegativeCell, got %v", err)
	}
}

func TestExactTest_UnknownAlternative(t *testing.T) {
	if _, err := ExactTest(Table{1, 2, 3, 4}, Alternative(9)); err == nil {
		t.Error("Expected error for unknown alternative")
	}
}

// TestExactTest_LargeTable tests numerical stability on corpus-sized margins
func TestExactTest_LargeTable(t *testing.T) {
	result, err := TwoSidedTest(Table{A: 5586, B: 8807, C: 8807, D: 11209})
	if err != nil {
		t.Fatalf("TwoSidedTest failed: %v", err)
	}
	if math.IsNaN(result.PValue) || result.PValue < 0 || result.PValue > 1 {
		t.Errorf("PValue = %v, want a probability", result.PValue)
	}
}

func TestTable_Total(t *testing.T) {
	if got := (Table{1, 2, 3, 4}).Total(); got != 10 {
		t.Errorf("Total() = %d, want 10", got)
	}
}

func TestParseAlternative(t *testing.T) {
	tests := []struct {
		input string
		want  Alternative
	}{
		{"", TwoSided},
		{"two-sided", TwoSided},
		{"two_sided", TwoSided},
		{"less", Less},
		{"greater", Greater},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAlternative(tt.input)
			if err != nil {
				t.Fatalf("ParseAlternative(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAlternative(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	if _, err := ParseAlternative("sideways"); err == nil {
		t.Error("Expected error for unknown alternative")
	}
}
