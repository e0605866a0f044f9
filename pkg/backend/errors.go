package backend

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// Transport-class errors surfaced to callers. These are stable values so
// upper layers can map them to user-actionable messages instead of showing
// "try again" for everything.
var (
	ErrTimeout        = errors.New("backend request timed out")
	ErrNetwork        = errors.New("network failure reaching backend")
	ErrSessionExpired = errors.New("session expired")
	ErrNotFound       = errors.New("record not found")
)

// classifyTransport maps a request-phase error to a transport class.
func classifyTransport(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return ErrTimeout
		}
		return ErrNetwork
	}
	// Some transports only expose the condition in the message.
	msg := err.Error()
	if strings.Contains(msg, "connection refused") || strings.Contains(msg, "no such host") {
		return ErrNetwork
	}
	return fmt.Errorf("backend request failed: %w", err)
}

// classifyStatus maps a non-2xx response to a transport class.
func classifyStatus(status int, body string) error {
	switch status {
	case http.StatusUnauthorized:
		return ErrSessionExpired
	case http.StatusNotFound:
		return ErrNotFound
	}
	if strings.Contains(body, "JWT expired") {
		return ErrSessionExpired
	}
	return fmt.Errorf("backend error %d: %s", status, body)
}
