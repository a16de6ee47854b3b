package foundation

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/docconf/internal/foundation/errors"
)

// Validator checks one aspect of a value.
type Validator[T any] func(T) ValidationResult

// ValidationResult collects the failures of one or more validators.
type ValidationResult struct {
	Valid  bool
	Errors []FieldError
}

// FieldError is a single validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

func (fe FieldError) Error() string {
	if fe.Field != "" {
		return fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return fe.Message
}

// Valid creates a successful validation result.
func Valid() ValidationResult {
	return ValidationResult{Valid: true}
}

// Invalid creates a failed validation result.
func Invalid(errs ...FieldError) ValidationResult {
	return ValidationResult{Valid: false, Errors: errs}
}

// Fail is shorthand for a single-field failure carrying the offending value.
func Fail(field, code, message string, value any) ValidationResult {
	return Invalid(FieldError{Field: field, Code: code, Message: message, Value: value})
}

// Combine merges two results.
func (vr ValidationResult) Combine(other ValidationResult) ValidationResult {
	if vr.Valid && other.Valid {
		return Valid()
	}
	all := make([]FieldError, 0, len(vr.Errors)+len(other.Errors))
	all = append(all, vr.Errors...)
	all = append(all, other.Errors...)
	return Invalid(all...)
}

// ToError converts an invalid result into a validation-category error. The
// first failure's field and value are attached as context.
func (vr ValidationResult) ToError() error {
	if vr.Valid {
		return nil
	}
	messages := make([]string, 0, len(vr.Errors))
	for _, fe := range vr.Errors {
		messages = append(messages, fe.Error())
	}
	b := errors.ValidationError(strings.Join(messages, "; "))
	if len(vr.Errors) > 0 {
		first := vr.Errors[0]
		b = b.WithContext("field", first.Field)
		if first.Value != nil {
			b = b.WithContext("value", first.Value)
		}
	}
	return b.Build()
}

// ValidatorChain runs every validator and collects all failures.
type ValidatorChain[T any] struct {
	validators []Validator[T]
}

// NewValidatorChain creates a chain.
func NewValidatorChain[T any](validators ...Validator[T]) *ValidatorChain[T] {
	return &ValidatorChain[T]{validators: validators}
}

// Add appends a validator to the chain.
func (vc *ValidatorChain[T]) Add(v Validator[T]) *ValidatorChain[T] {
	vc.validators = append(vc.validators, v)
	return vc
}

// Validate runs all validators in order.
func (vc *ValidatorChain[T]) Validate(value T) ValidationResult {
	result := Valid()
	for _, v := range vc.validators {
		result = result.Combine(v(value))
	}
	return result
}

// NoneOf fails when the string contains any of chars.
func NoneOf(field, chars, message string) Validator[string] {
	return func(s string) ValidationResult {
		if strings.ContainsAny(s, chars) {
			return Fail(field, "forbidden_chars", message, s)
		}
		return Valid()
	}
}
