package validation

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	registerOnce sync.Map
	shared       *validator.Validate
	sharedOnce   sync.Once
)

// RegisterValidators registers custom validators. Safe to call more than once
// for the same instance.
func RegisterValidators(v *validator.Validate) {
	if _, loaded := registerOnce.LoadOrStore(v, struct{}{}); loaded {
		return
	}
	mustRegister(v, "notblank", validateNotBlank)
	mustRegister(v, "weburl", validateWebURL)
}

// mustRegister panics when a custom rule cannot be registered
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("failed to register %q validator: %v", tag, err))
	}
}

// New returns the process-wide validator with custom rules registered
func New() *validator.Validate {
	sharedOnce.Do(func() {
		shared = validator.New()
		RegisterValidators(shared)
	})
	return shared
}

// validateNotBlank rejects empty and whitespace-only strings
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validateWebURL accepts empty strings and absolute http(s) URLs
func validateWebURL(fl validator.FieldLevel) bool {
	urlStr := fl.Field().String()
	if urlStr == "" {
		return true
	}
	u, err := url.ParseRequestURI(urlStr)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// FieldError describes one failed rule
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Value string `json:"value,omitempty"`
}

// FormatValidationError flattens validator errors into field/tag pairs
func FormatValidationError(err error) []FieldError {
	var fieldErrors []FieldError
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			fieldErrors = append(fieldErrors, FieldError{
				Field: e.Field(),
				Tag:   e.Tag(),
				Value: e.Param(),
			})
		}
	}
	return fieldErrors
}

// FailedFields returns the names of the fields that failed validation
func FailedFields(err error) []string {
	var fields []string
	for _, e := range FormatValidationError(err) {
		fields = append(fields, e.Field)
	}
	return fields
}
