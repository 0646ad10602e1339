// Package validation checks configuration values, through struct tags and
// through the fluent ConfigValidator for rules that span fields.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(yamlName)
	// probability: a float strictly between 0 and 1, e.g. a significance level
	_ = v.RegisterValidation("probability", func(fl validator.FieldLevel) bool {
		p := fl.Field().Float()
		return p > 0 && p < 1
	})
	return v
}

// yamlName names fields by their yaml key; untagged fields keep the Go name
func yamlName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// Struct validates v against its `validate` tags. Every failure is reported,
// each as "path: reason" where path is the yaml key path below the root.
func Struct(v any) error {
	if v == nil {
		return errors.New("value cannot be nil")
	}
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, describe(fe))
	}
	return errors.Join(errs...)
}

func describe(fe validator.FieldError) error {
	path := fe.Namespace()
	if _, rest, ok := strings.Cut(path, "."); ok {
		path = rest
	}

	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s: field is required", path)
	case "min", "gte":
		return fmt.Errorf("%s: must be at least %s", path, fe.Param())
	case "max", "lte":
		return fmt.Errorf("%s: must not exceed %s", path, fe.Param())
	case "oneof":
		return fmt.Errorf("%s: must be one of [%s], got %v", path, fe.Param(), fe.Value())
	case "probability":
		return fmt.Errorf("%s: must be strictly between 0 and 1, got %v", path, fe.Value())
	default:
		return fmt.Errorf("%s: failed %q check", path, fe.Tag())
	}
}
