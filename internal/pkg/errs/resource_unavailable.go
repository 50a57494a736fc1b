package errs

import (
	"errors"
	"fmt"
)

// ErrResourceUnavailable is the sentinel for every ResourceUnavailableError.
var ErrResourceUnavailable = errors.New("resource unavailable")

// ResourceUnavailableError reports a resource that exists but cannot serve the request,
// for example a busy drone or a drone owned by another restaurant.
type ResourceUnavailableError struct {
	Resource string
	ID       any
	Reason   string
}

// NewResourceUnavailableError creates a ResourceUnavailableError for the identified resource.
func NewResourceUnavailableError(resource string, id any, reason string) *ResourceUnavailableError {
	return &ResourceUnavailableError{
		Resource: resource,
		ID:       id,
		Reason:   reason,
	}
}

func (e *ResourceUnavailableError) Error() string {
	return fmt.Sprintf("%s: %s %s %s", ErrResourceUnavailable, e.Resource, sanitize(e.ID), e.Reason)
}

func (e *ResourceUnavailableError) Unwrap() error {
	return ErrResourceUnavailable
}
