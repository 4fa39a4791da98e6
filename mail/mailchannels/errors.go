package mailchannels

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrClosed is returned by Send after Close.
var ErrClosed = errors.New("sender is closed")

// DeliveryError is returned when the API answers with anything but 202 Accepted.
type DeliveryError struct {
	StatusCode int
	Body       string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("Failed to send email: %d %s", e.StatusCode, e.Body)
}
