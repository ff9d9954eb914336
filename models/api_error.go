package models

import "fmt"

// APIError is the normalized failure shape of a non-2xx API response. Detail
// and Message are taken verbatim from the response body so that callers (and
// the retry machinery) can inspect the server's own wording; StatusCode is
// filled in by the transport.
type APIError struct {
	StatusCode int    `json:"-"`
	Detail     string `json:"detail"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	msg := e.Detail
	if msg == "" {
		msg = e.Message
	}
	if msg == "" {
		msg = "request failed"
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, msg)
}
