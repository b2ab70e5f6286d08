package api

import (
	"errors"
	"fmt"
)

// ErrUnavailable is matched (via errors.Is) by transport failures, where no
// HTTP response was received.
var ErrUnavailable = errors.New("server unavailable")

// Error is returned for every failed call. Status is 0 when the request never
// produced a response. Message is what the user should see.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error {
	if e.Status == 0 {
		return ErrUnavailable
	}
	return nil
}

// Message extracts the user-facing text from err.
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return err.Error()
}
