// Copyright Watson Go Authors
// SPDX-License-Identifier: Apache-2.0

// Package validation checks request records against the limits the Watson
// services document, before a caller puts them on the wire. Decoding and
// encoding never call it.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// nameRE matches Watson resource names (intents, entities, values).
var nameRE = regexp.MustCompile(`^[\p{L}\p{N}_.-]+$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report wire keys rather than Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("singleline", singleline); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("watsonname", watsonName); err != nil {
		panic(err)
	}
	return v
}

func singleline(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), "\r\n\t")
}

func watsonName(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return nameRE.MatchString(s) && !strings.HasPrefix(s, "sys-")
}

// Violation is one failed rule.
type Violation struct {
	Path    string // wire path, e.g. "input.text"
	Rule    string
	Message string
}

// Error lists every violation found in a record.
type Error struct {
	Record     string
	Violations []Violation
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Path + ": " + v.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Record, strings.Join(msgs, "; "))
}

// Struct validates the record v using its validate tags.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validation: %w", err)
	}

	out := &Error{Record: recordName(v)}
	for _, fe := range fieldErrs {
		out.Violations = append(out.Violations, Violation{
			Path:    wirePath(fe.Namespace()),
			Rule:    fe.Tag(),
			Message: describe(fe),
		})
	}
	return out
}

func recordName(v any) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// wirePath drops the leading struct name from a validator namespace.
func wirePath(ns string) string {
	_, rest, ok := strings.Cut(ns, ".")
	if !ok {
		return ns
	}
	return rest
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at most %s items", fe.Param())
		}
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "excluded_with":
		return fmt.Sprintf("must not be set together with %s", strings.ToLower(fe.Param()))
	case "singleline":
		return "must not contain carriage return, newline or tab characters"
	case "watsonname":
		return "may contain only letters, digits, underscores, hyphens and dots, and must not start with sys-"
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
