package types

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestTransportError(t *testing.T) {
	underlying := errors.New("dial tcp: connection refused")
	err := &TransportError{Endpoint: "/api/v3/ping", Err: underlying}

	if !strings.Contains(err.Error(), "/api/v3/ping") {
		t.Errorf("expected endpoint in message, got %q", err.Error())
	}

	if !errors.Is(err, underlying) {
		t.Error("expected Unwrap to expose the underlying error")
	}

	wrapped := fmt.Errorf("sample: %w", err)
	if !IsTransportError(wrapped) {
		t.Error("expected IsTransportError to match through wrapping")
	}
	if IsAPIError(wrapped) {
		t.Error("expected IsAPIError to not match a transport error")
	}
}

func TestAPIError(t *testing.T) {
	err := &APIError{
		Endpoint:   "/api/v3/ticker/price",
		StatusCode: 400,
		Code:       -1121,
		Message:    "Invalid symbol.",
	}

	msg := err.Error()
	if !strings.Contains(msg, "Invalid symbol.") || !strings.Contains(msg, "-1121") {
		t.Errorf("expected code and message in %q", msg)
	}

	wrapped := fmt.Errorf("rank: %w", err)
	if !IsAPIError(wrapped) {
		t.Error("expected IsAPIError to match through wrapping")
	}
	if IsTransportError(wrapped) {
		t.Error("expected IsTransportError to not match an api error")
	}
}

func TestAPIError_NoBody(t *testing.T) {
	err := &APIError{Endpoint: "/api/v3/depth", StatusCode: 502}

	if !strings.Contains(err.Error(), "status 502") {
		t.Errorf("expected status in %q", err.Error())
	}
}
