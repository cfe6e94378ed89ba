package remote

import (
	"errors"
	"fmt"
)

// ErrUnavailable marks transport-level failures: the remote store is
// unreachable or answered with a server error. The catalog store treats
// these as "fall back to the local cache", never as data errors.
var ErrUnavailable = errors.New("remote store unavailable")

// ErrInvalidCredentials is returned by Login on a 401.
var ErrInvalidCredentials = errors.New("invalid credentials")

// APIError is a non-transport failure reported by the remote API, such
// as a duplicate app name. These propagate to the caller unchanged.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("remote api: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("remote api: status %d", e.StatusCode)
}

// IsUnavailable reports whether the error indicates the remote tier is
// down, as opposed to a validation or auth failure.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
