/*
errors.go - Centralized error types for the pay engine

PURPOSE:
  Pay computation itself never fails. These errors come from the optional
  validation layer (validate.go) and from configuration parsing (factory/).

ERROR CATEGORIES:
  1. Validation errors - Negative terms, currency mismatches
  2. Configuration errors - Unknown basis, malformed documents
  3. Lookup errors - Unknown scenario or basis name

USAGE:
  if errors.Is(err, pay.ErrNegativeTerm) {
      var termErr *pay.TermError
      errors.As(err, &termErr)
      ...
  }
*/
package pay

import (
	"fmt"

	"github.com/pkg/errors"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrNegativeTerm is returned by validation when a rate, quantity, count
	// or bonus is below zero.
	ErrNegativeTerm = errors.New("negative pay term")

	// ErrCurrencyMismatch is returned by validation when base pay and
	// commission are labelled with different currencies.
	ErrCurrencyMismatch = errors.New("base and commission currencies differ")

	// ErrUnknownBasis is returned when a configuration names a base pay kind
	// that is not registered.
	ErrUnknownBasis = errors.New("unknown base pay kind")

	// ErrInvalidConfig is returned when an employee configuration cannot be
	// decoded or fails structural checks.
	ErrInvalidConfig = errors.New("invalid employee configuration")

	// ErrScenarioNotFound is returned when a named example scenario does not exist.
	ErrScenarioNotFound = errors.New("scenario not found")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// TermError names the offending field of a negative term.
type TermError struct {
	Policy string // "hourly", "salary", "commission"
	Field  string
	Value  string
}

func (e *TermError) Error() string {
	return fmt.Sprintf("%s.%s must not be negative (got %s)", e.Policy, e.Field, e.Value)
}

func (e *TermError) Unwrap() error {
	return ErrNegativeTerm
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsValidationError returns true if the error is due to invalid input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNegativeTerm) ||
		errors.Is(err, ErrCurrencyMismatch) ||
		errors.Is(err, ErrUnknownBasis) ||
		errors.Is(err, ErrInvalidConfig)
}

// IsNotFound returns true if the error indicates a missing named resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrScenarioNotFound)
}
