package voice

import (
	"errors"
	"fmt"
)

// ErrNotConfigured means a required provider credential or line identifier is
// absent. Operator-facing; no call request was attempted.
var ErrNotConfigured = errors.New("voice provider not configured")

// DispatchError carries the provider's own status and message for a rejected
// call-creation request.
type DispatchError struct {
	StatusCode int
	Message    string
}

func (e DispatchError) Error() string {
	return fmt.Sprintf("voice provider rejected the call (status %d): %s", e.StatusCode, e.Message)
}
