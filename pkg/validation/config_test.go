package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestConfigValidator_Required(t *testing.T) {
	if !NewConfigValidator("inputs").Required("citations", "").HasErrors() {
		t.Error("Expected error for empty required field")
	}
	if NewConfigValidator("inputs").Required("citations", "cites.txt").HasErrors() {
		t.Error("Expected no error for non-empty required field")
	}
}

func TestConfigValidator_RangeInt(t *testing.T) {
	tests := []struct {
		name      string
		value     int
		expectErr bool
	}{
		{"below", 0, true},
		{"at min", 1, false},
		{"at max", 64, false},
		{"above", 65, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv := NewConfigValidator("analysis").RangeInt("workers", tt.value, 1, 64)
			if cv.HasErrors() != tt.expectErr {
				t.Errorf("RangeInt(%d) errors = %v, want %v", tt.value, cv.Errors(), tt.expectErr)
			}
		})
	}
}

func TestConfigValidator_OpenRangeFloat(t *testing.T) {
	for _, v := range []float64{0, 1, -0.5} {
		if !NewConfigValidator("analysis").OpenRangeFloat("alpha", v, 0, 1).HasErrors() {
			t.Errorf("expected error for %v", v)
		}
	}
	if NewConfigValidator("analysis").OpenRangeFloat("alpha", 0.05, 0, 1).HasErrors() {
		t.Error("expected 0.05 to pass")
	}
}

func TestConfigValidator_OneOf(t *testing.T) {
	allowed := []string{"full", "summary"}
	cv := NewConfigValidator("output").OneOf("format", "xml", allowed)
	if !cv.HasErrors() {
		t.Fatal("Expected error for disallowed value")
	}
	if !strings.Contains(cv.Errors()[0].Error(), "output.format") {
		t.Errorf("error %q should name the field", cv.Errors()[0])
	}
	if NewConfigValidator("output").OneOf("format", "full", allowed).HasErrors() {
		t.Error("Expected no error for allowed value")
	}
}

func TestConfigValidator_CustomAndWhen(t *testing.T) {
	errBad := errors.New("bad alternative")

	cv := NewConfigValidator("analysis").
		Custom("alternative", func() error { return errBad }).
		When(false, func(cv *ConfigValidator) { cv.MinInt("workers", 0, 1) })

	if len(cv.Errors()) != 1 {
		t.Fatalf("Errors() = %v, want 1 error", cv.Errors())
	}
	if !errors.Is(cv.Validate(), errBad) {
		t.Errorf("Validate() should wrap the custom error, got %v", cv.Validate())
	}
}

func TestConfigValidator_ValidateJoinsErrors(t *testing.T) {
	err := NewConfigValidator("config").
		Required("citations", "").
		MinInt("workers", 0, 1).
		Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "2 errors") {
		t.Errorf("Validate() = %q", err)
	}
	if NewConfigValidator("config").Validate() != nil {
		t.Error("empty validator should pass")
	}
}

func TestConfigValidator_DistinctPath(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		other     string
		expectErr bool
	}{
		{"same file", "Results/out.txt", "Results/out.txt", true},
		{"same after clean", "Results/./out.txt", "Results/out.txt", true},
		{"different", "Results/metrics.prom", "Results/out.txt", false},
		{"unset", "", "Results/out.txt", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv := NewConfigValidator("output").DistinctPath("metrics_file", tt.path, "output.report", tt.other)
			if cv.HasErrors() != tt.expectErr {
				t.Errorf("DistinctPath(%q, %q) errors = %v, want %v", tt.path, tt.other, cv.Errors(), tt.expectErr)
			}
		})
	}
}

func TestDefaultOr(t *testing.T) {
	if got := DefaultOr("", "full"); got != "full" {
		t.Errorf("DefaultOr(\"\") = %q", got)
	}
	if got := DefaultOr("summary", "full"); got != "summary" {
		t.Errorf("DefaultOr(summary) = %q", got)
	}
	if got := DefaultOrInt(-1, 4); got != 4 {
		t.Errorf("DefaultOrInt(-1) = %d", got)
	}
	if got := DefaultOrInt(2, 4); got != 2 {
		t.Errorf("DefaultOrInt(2) = %d", got)
	}
}
