package service

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for service layer
var (
	ErrValidation            = errors.New("validation error")
	ErrCaptcha               = errors.New("captcha verification failed")
	ErrPersistence           = errors.New("persistence error")
	ErrNotificationTransport = errors.New("notification transport error")
	ErrNotificationSend      = errors.New("notification send error")
)

// ValidationError lists the required fields that were missing or blank
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: missing %s", ErrValidation, strings.Join(e.Fields, ", "))
}

// Is makes errors.Is(err, ErrValidation) match
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// StepError tags an infrastructure failure with the pipeline step that produced it
type StepError struct {
	Kind error
	Err  error
}

func (e *StepError) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

func (e *StepError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func stepError(kind, err error) error {
	return &StepError{Kind: kind, Err: err}
}
