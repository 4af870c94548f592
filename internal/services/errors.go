package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound covers both "row does not exist" and "row belongs to another
// user". The two are deliberately indistinguishable so the API never leaks
// whether a foreign id exists.
var ErrNotFound = errors.New("not found")

type ValidationError struct {
	Field  string
	Reason string
}

func (validationError *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", validationError.Field, validationError.Reason)
}

func newValidationError(field string, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// AffectedRental describes one ledger row a standard-rent change would
// silently overwrite, with its total before and after the proposal.
type AffectedRental struct {
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	NewAmount     decimal.Decimal `json:"newAmount"`
}

// StandardRentConflictError blocks a standard-rent update that would
// overwrite customized future months. Resubmitting with force applies it.
type StandardRentConflictError struct {
	Affected []AffectedRental
}

func (conflictError *StandardRentConflictError) Error() string {
	return fmt.Sprintf("standard rent change conflicts with %d customized rentals", len(conflictError.Affected))
}
