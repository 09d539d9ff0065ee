package client

import (
	"errors"
	"fmt"
)

// Error taxonomy for itinerary service calls.
//
// ValidationError  – the request shape was rejected before or by the service.
// ServerError      – the service answered with a non-success status.
// MalformedResponseError – success status but the expected data envelope is missing.
// NetworkError     – transport failure, no response at all.

// ValidationError reports a rejected request field or shape.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ServerError reports a non-2xx answer from the itinerary service. Message is
// taken from the envelope's error field when present.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("itinerary service returned status %d", e.Status)
}

// MalformedResponseError reports a success response that lacks the expected
// data payload.
type MalformedResponseError struct {
	Op string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s: invalid response format from server", e.Op)
}

// NetworkError wraps a transport-level failure.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsServerError reports whether err is a ServerError.
func IsServerError(err error) bool {
	var se *ServerError
	return errors.As(err, &se)
}

// IsMalformedResponse reports whether err is a MalformedResponseError.
func IsMalformedResponse(err error) bool {
	var me *MalformedResponseError
	return errors.As(err, &me)
}

// IsNetworkError reports whether err is a NetworkError.
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}
