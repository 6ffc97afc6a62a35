package types

import (
	"errors"
	"fmt"
)

// TransportError represents a failure to reach the exchange at all:
// connection refused, DNS resolution, timeout. The upstream never produced
// a response.
type TransportError struct {
	Endpoint string // API path being called
	Err      error  // Underlying transport failure
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error calling %s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError represents a non-2xx response from the exchange. Code and Message
// carry the Binance error payload when the body contained one.
type APIError struct {
	Endpoint   string // API path being called
	StatusCode int    // HTTP status
	Code       int    // Binance error code, 0 when the body had none
	Message    string // Binance error message, may be empty
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error calling %s: status %d: %s (code %d)", e.Endpoint, e.StatusCode, e.Message, e.Code)
	}

	return fmt.Sprintf("api error calling %s: status %d", e.Endpoint, e.StatusCode)
}

// IsTransportError reports whether err wraps a TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsAPIError reports whether err wraps an APIError.
func IsAPIError(err error) bool {
	var ae *APIError
	return errors.As(err, &ae)
}
