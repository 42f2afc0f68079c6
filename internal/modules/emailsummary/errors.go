package emailsummary

import (
	"errors"
	"fmt"
)

// ErrNotConfigured means provider credentials are missing; it is detected
// before any network call.
var ErrNotConfigured = errors.New("email service not configured")

// DeliveryError carries the provider's rejection. The body is logged on our
// side and never echoed to the caller.
type DeliveryError struct {
	Provider string
	Status   int
	Body     string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s rejected send: status %d: %s", e.Provider, e.Status, e.Body)
}
