/*
errors.go - Centralized error types for the lease engine

PURPOSE:
  All engine and store error types in one place. Callers match with
  errors.Is(); the HTTP layer maps them to status codes via the
  IsClientError/IsNotFound helpers.

ERROR TAXONOMY:
  InvalidInput - the lease fails the boundary validation gate (most
  importantly: no resolvable payment terms). Fatal to the calculation;
  no partial result is ever returned.

  Overlapping schedule periods are deliberately NOT an error: they
  resolve by first match in declaration order.
*/
package engine

import (
	"errors"
	"strings"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidInput is returned when a lease fails validation and a
	// calculation cannot proceed.
	ErrInvalidInput = errors.New("invalid lease input")

	// ErrLeaseNotFound is returned by stores when no lease exists for the
	// requested identifier.
	ErrLeaseNotFound = errors.New("lease not found")

	// ErrDuplicateLeaseID is returned when creating a lease whose
	// identifier is already taken.
	ErrDuplicateLeaseID = errors.New("lease id already exists")
)

const violationNoPaymentTerms = "either monthly payment or payment schedule must be provided"

// =============================================================================
// STRUCTURED ERRORS
// =============================================================================

// InvalidInputError enumerates every violated constraint found by the
// validation gate, so a caller gets the full list in one round trip.
type InvalidInputError struct {
	Violations []string
}

func (e *InvalidInputError) Error() string {
	return "invalid lease input: " + strings.Join(e.Violations, "; ")
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError reports whether the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrDuplicateLeaseID)
}

// IsNotFound reports whether the error indicates a missing lease record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrLeaseNotFound)
}
