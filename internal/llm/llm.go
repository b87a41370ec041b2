package llm

import (
	"errors"
	"fmt"
)

// Message is a single chat turn sent to the completion API.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ErrorKind classifies gateway failures so callers can decide between
// retrying, surfacing a 503, or treating the response as unusable.
type ErrorKind string

const (
	KindTimeout          ErrorKind = "timeout"
	KindRateLimit        ErrorKind = "rate_limit"
	KindInvalidResponse  ErrorKind = "invalid_response"
	KindHTTPError        ErrorKind = "http_error"
	KindRetriesExhausted ErrorKind = "retries_exhausted"
)

// Error is the typed failure every Client method returns on the error path.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("llm %s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("llm %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind ErrorKind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// IsInvalidResponse reports whether err is a gateway error caused by an
// unusable model reply rather than a transport or provider failure.
func IsInvalidResponse(err error) bool {
	var lerr *Error
	if errors.As(err, &lerr) {
		return lerr.Kind == KindInvalidResponse
	}
	return false
}
