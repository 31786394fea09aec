package manufacturing

import (
	"errors"
	"net/http"
)

// defaultErrorMessage is used when the service fails without a response body.
const defaultErrorMessage = "Request failed"

// ServiceError is returned when the manufacturing service answers with a non-2xx status.
// Message carries the response body text as sent by the service.
type ServiceError struct {
	Operation  string
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// Temporary reports whether the failure is on the service side.
func (e *ServiceError) Temporary() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

// TransportError is returned when no usable response was received: the request
// could not be sent, or the body could not be read or decoded.
type TransportError struct {
	Operation string
	Err       error
}

func (e *TransportError) Error() string {
	return e.Operation + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsUpstreamFailure reports whether err should count against the circuit breaker.
// Client errors (4xx) are the caller's fault and do not.
func IsUpstreamFailure(err error) bool {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Temporary()
	}
	return true
}
