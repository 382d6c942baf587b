package hubtel

import (
	"errors"
	"fmt"
)

// maxErrorBody caps how much of a response body ends up in an error message.
const maxErrorBody = 120

// StatusError is returned when the gateway answers with a non-2xx status.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	kind := "Server"
	if e.StatusCode < 500 {
		kind = "Client"
	}

	msg := fmt.Sprintf("%s error: `%s %s` resulted in a `%s` response", kind, e.Method, e.URL, e.Status)
	if e.Body == "" {
		return msg
	}

	body := e.Body
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody] + " (truncated...)"
	}
	return msg + ":\n" + body
}

// TransportError is returned when no HTTP response was received:
// connection refused, DNS failure, timeout or cancellation.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("hubtel: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// statusCodeOf returns the HTTP status carried by err, or 0 if none.
func statusCodeOf(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
