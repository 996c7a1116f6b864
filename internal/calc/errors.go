// Package calc defines the error taxonomy shared by the calculator
// packages.
//
// Calculators report two kinds of failure: a ValidationError for inputs
// that are malformed or outside plausibility bounds, and an
// InfeasibleError for inputs that are well-formed but semantically
// nonsensical (a birth date after the target date, zero total credit
// hours). Callers map both to user-facing messages; neither is retried
// and neither is fatal.
package calc

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed or out-of-range input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// InfeasibleError reports input that is well-formed but has no
// meaningful answer in the calculator's domain.
type InfeasibleError struct {
	Reason string
}

func (e *InfeasibleError) Error() string { return e.Reason }

// Invalidf builds a ValidationError from a format string.
func Invalidf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// Infeasiblef builds an InfeasibleError from a format string.
func Infeasiblef(format string, args ...any) error {
	return &InfeasibleError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsInfeasible reports whether err is (or wraps) an InfeasibleError.
func IsInfeasible(err error) bool {
	var ie *InfeasibleError
	return errors.As(err, &ie)
}

// IsDomainError reports whether err belongs to the calculator error
// taxonomy at all. Handlers use this to distinguish a 422 from a 500.
func IsDomainError(err error) bool {
	return IsValidation(err) || IsInfeasible(err)
}
