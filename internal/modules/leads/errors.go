package leads

import (
	"errors"
	"fmt"
)

var ErrEmptyQuery = errors.New("search query is required")

// UpstreamError reports a failed call to the external lead service.
// Status is the HTTP status of the response, or 0 when the transport
// itself failed (connection refused, timeout).
type UpstreamError struct {
	Op     string
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("lead service %s: status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("lead service %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
