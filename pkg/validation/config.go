package validation

import (
	"errors"
	"fmt"
	"path/filepath"
)

// ConfigValidator chains checks over one config section and keeps every
// failure, so a user fixing a config file sees all problems at once.
type ConfigValidator struct {
	section string
	errs    []error
}

// NewConfigValidator starts a chain; section prefixes every field name
func NewConfigValidator(section string) *ConfigValidator {
	return &ConfigValidator{section: section}
}

func (cv *ConfigValidator) addf(field, format string, args ...any) *ConfigValidator {
	cv.errs = append(cv.errs, fmt.Errorf("%s.%s: %s", cv.section, field, fmt.Sprintf(format, args...)))
	return cv
}

// Required fails on an empty string
func (cv *ConfigValidator) Required(field, value string) *ConfigValidator {
	if value == "" {
		return cv.addf(field, "required field is empty")
	}
	return cv
}

// MinInt fails when value < lo
func (cv *ConfigValidator) MinInt(field string, value, lo int) *ConfigValidator {
	if value < lo {
		return cv.addf(field, "value %d is below minimum %d", value, lo)
	}
	return cv
}

// RangeInt fails unless lo <= value <= hi
func (cv *ConfigValidator) RangeInt(field string, value, lo, hi int) *ConfigValidator {
	if value < lo || value > hi {
		return cv.addf(field, "value %d is outside range [%d, %d]", value, lo, hi)
	}
	return cv
}

// OpenRangeFloat fails unless lo < value < hi. NaN always fails.
func (cv *ConfigValidator) OpenRangeFloat(field string, value, lo, hi float64) *ConfigValidator {
	if !(value > lo && value < hi) {
		return cv.addf(field, "value %g is outside range (%g, %g)", value, lo, hi)
	}
	return cv
}

// OneOf fails unless value is in allowed
func (cv *ConfigValidator) OneOf(field, value string, allowed []string) *ConfigValidator {
	for _, a := range allowed {
		if value == a {
			return cv
		}
	}
	return cv.addf(field, "value %q must be one of %v", value, allowed)
}

// DistinctPath fails when path names the same file as other once cleaned.
// Empty paths are not compared.
func (cv *ConfigValidator) DistinctPath(field, path, otherField, other string) *ConfigValidator {
	if path == "" || other == "" {
		return cv
	}
	if filepath.Clean(path) == filepath.Clean(other) {
		return cv.addf(field, "%q must differ from %s", path, otherField)
	}
	return cv
}

// Custom records the error returned by fn, wrapped so errors.Is still sees it
func (cv *ConfigValidator) Custom(field string, fn func() error) *ConfigValidator {
	if err := fn(); err != nil {
		cv.errs = append(cv.errs, fmt.Errorf("%s.%s: %w", cv.section, field, err))
	}
	return cv
}

// When runs checks only if condition holds
func (cv *ConfigValidator) When(condition bool, checks func(*ConfigValidator)) *ConfigValidator {
	if condition {
		checks(cv)
	}
	return cv
}

func (cv *ConfigValidator) HasErrors() bool { return len(cv.errs) > 0 }
func (cv *ConfigValidator) Errors() []error { return cv.errs }

// Validate returns nil, the lone failure, or every failure joined
func (cv *ConfigValidator) Validate() error {
	switch len(cv.errs) {
	case 0:
		return nil
	case 1:
		return cv.errs[0]
	}
	return fmt.Errorf("%s: %d errors: %w", cv.section, len(cv.errs), errors.Join(cv.errs...))
}

// DefaultOr returns def when value is the zero value
func DefaultOr[T comparable](value, def T) T {
	var zero T
	if value == zero {
		return def
	}
	return value
}

// DefaultOrInt returns def unless value is positive
func DefaultOrInt(value, def int) int {
	if value > 0 {
		return value
	}
	return def
}
