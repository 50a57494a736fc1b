package errs

import (
	"errors"
	"fmt"
)

// ErrIllegalTransition is the sentinel for every IllegalTransitionError.
var ErrIllegalTransition = errors.New("illegal transition")

// IllegalTransitionError reports a status change whose precondition is not met.
// Current always carries the status the entity had when the change was attempted,
// so callers can show it to the client.
type IllegalTransitionError struct {
	Entity  string
	Current fmt.Stringer
	Reason  string
}

// NewIllegalTransitionError creates an IllegalTransitionError for the entity in its current status.
func NewIllegalTransitionError(entity string, current fmt.Stringer, reason string) *IllegalTransitionError {
	return &IllegalTransitionError{
		Entity:  entity,
		Current: current,
		Reason:  reason,
	}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s %s (current: %s)", ErrIllegalTransition, e.Entity, e.Reason, e.Current)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}
