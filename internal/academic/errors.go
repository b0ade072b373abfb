package academic

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure kinds every core operation can report.
// Callers match with errors.Is; none of these are treated as unrecoverable.
var (
	// ErrNotFound means a referenced entity is absent from its collection.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey means a unique constraint (id, document, email,
	// course code) would be violated.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrInvalidGrade means a grade outside [0.0, 5.0] reached the core.
	ErrInvalidGrade = errors.New("grade out of range")

	// ErrInvalidCredits means a credit weight outside [1, 10] reached the core.
	ErrInvalidCredits = errors.New("credits out of range")

	// ErrHasDependents means a deletion is blocked by referential integrity.
	ErrHasDependents = errors.New("has dependents")

	// ErrConfirmationRequired means a cascading deletion needs explicit
	// confirmation before anything is removed.
	ErrConfirmationRequired = errors.New("confirmation required")
)

// RejectionError reports a refused enrollment, carrying the human-readable
// reason from the eligibility check. Matches ErrEnrollmentRejected.
type RejectionError struct {
	Reason string
}

// ErrEnrollmentRejected is the target for errors.Is on RejectionError.
var ErrEnrollmentRejected = errors.New("enrollment rejected")

func (e *RejectionError) Error() string {
	return fmt.Sprintf("enrollment rejected: %s", e.Reason)
}

// Is reports whether target is ErrEnrollmentRejected.
func (e *RejectionError) Is(target error) bool {
	return target == ErrEnrollmentRejected
}
