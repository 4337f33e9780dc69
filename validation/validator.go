// Package validation wraps go-playground/validator with the custom rules and
// error formatting used for query definition documents.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// TagSQLIdentifier is the tag of the custom rule accepting plain or quoted,
// optionally dotted identifiers such as public.Products or [dbo].[Order Lines].
const TagSQLIdentifier = "sql_identifier"

var sqlIdentifierPattern = regexp.MustCompile(
	`^(?:[A-Za-z_][A-Za-z0-9_$]*|\[[^\[\]]+\]|"[^"]+")(?:\.(?:[A-Za-z_][A-Za-z0-9_$]*|\[[^\[\]]+\]|"[^"]+"))*$`,
)

// Validator wraps go-playground/validator with custom validation logic.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new Validator instance with custom validation rules registered.
// Field names in errors follow the koanf tag, so they match document keys.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	if err := v.RegisterValidation(TagSQLIdentifier, validateSQLIdentifier); err != nil {
		return nil
	}

	return &Validator{validate: v}
}

// GetValidator returns the underlying validator instance.
func (v *Validator) GetValidator() *validator.Validate {
	return v.validate
}

// Validate performs validation on the provided struct and returns any validation errors.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return NewValidationError(validationErrors)
		}
		return err
	}
	return nil
}

// IsSQLIdentifier reports whether s passes the sql_identifier rule.
func IsSQLIdentifier(s string) bool {
	return sqlIdentifierPattern.MatchString(s)
}

// ValidationError wraps validation errors with structured field errors.
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

// NewValidationError creates a ValidationError from go-playground/validator errors.
func NewValidationError(errs validator.ValidationErrors) *ValidationError {
	fieldErrors := make([]FieldError, 0, len(errs))

	for _, err := range errs {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fieldPath(err),
			Message: getErrorMessage(err),
			Value:   fmt.Sprintf("%v", err.Value()),
		})
	}

	return &ValidationError{Errors: fieldErrors}
}

func (ve *ValidationError) Error() string {
	if len(ve.Errors) == 0 {
		return "validation failed"
	}

	if len(ve.Errors) == 1 {
		return fmt.Sprintf("validation failed: %s", ve.Errors[0].Message)
	}

	messages := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		messages[i] = fe.Message
	}
	return fmt.Sprintf("validation failed: %d errors: %s", len(ve.Errors), strings.Join(messages, "; "))
}

// fieldPath drops the root struct name, e.g. "Config.query.from[0]" becomes "query.from[0]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func getErrorMessage(fe validator.FieldError) string {
	field := fieldPath(fe)
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "required_without", "required_without_all":
		return fmt.Sprintf("%s is required unless %s is set", field, fe.Param())
	case TagSQLIdentifier:
		return fmt.Sprintf("%s must be a valid SQL identifier", field)
	default:
		return fmt.Sprintf("%s failed validation", field)
	}
}

func validateSQLIdentifier(fl validator.FieldLevel) bool {
	return IsSQLIdentifier(fl.Field().String())
}
