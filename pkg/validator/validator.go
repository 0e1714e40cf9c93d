// Package validator wraps go-playground/validator with field names taken
// from json tags.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"
)

var validate = newValidate()

func newValidate() *playground.Validate {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Violation is one failed rule on one field.
type Violation struct {
	Field string
	Tag   string
	Param string
}

// Message renders the violation for API clients.
func (v Violation) Message() string {
	switch v.Tag {
	case "required":
		return "required"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "gt":
		return "must be greater than " + v.Param
	case "gte":
		return "must be at least " + v.Param
	case "lte", "max":
		return "must be at most " + v.Param
	default:
		return fmt.Sprintf("failed %q rule", v.Tag)
	}
}

// Struct validates s against its `validate` tags. It returns the list of
// violations, which is empty when s is valid. A non-nil error means s could
// not be validated at all (for example, it is not a struct).
func Struct(s any) ([]Violation, error) {
	err := validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, fmt.Errorf("validate: %w", err)
	}

	out := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, Violation{Field: fe.Field(), Tag: fe.Tag(), Param: fe.Param()})
	}
	return out, nil
}
