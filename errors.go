package space

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrParsingConfig = errors.New("failed to parse space client configuration")
	ErrMissingAPIKey = errors.New("space api key is required")
	ErrMissingHost   = errors.New("space host is required")
	ErrInvalidConfig = errors.New("invalid space client configuration")

	ErrNilRequest  = errors.New("request must not be nil")
	ErrEmptyUserID = errors.New("user id must not be empty")

	// ErrUnexpectedResponse reports a response body that does not match any
	// shape the remote service documents, so callers can tell transport
	// corruption apart from a domain-level rejection.
	ErrUnexpectedResponse = errors.New("unexpected response shape from space api")
)

// APIError is a rejection reported by the remote service, carrying its
// original status code and messages verbatim. The client performs no
// automatic retry; whether the call is worth repeating with corrected input
// is the caller's decision.
type APIError struct {
	StatusCode int
	Messages   []string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("space api error (status %d): %s", e.StatusCode, strings.Join(e.Messages, "; "))
}

// apiErrorDoc covers both error shapes the service responds with: a single
// error string or a validation error list.
type apiErrorDoc struct {
	Error  string `json:"error"`
	Errors []struct {
		Msg string `json:"msg"`
	} `json:"errors"`
}

// decodeAPIError turns a non-2xx response body into an *APIError. Bodies
// that are not a recognizable error document fail with
// ErrUnexpectedResponse.
func decodeAPIError(statusCode int, body []byte) error {
	var doc apiErrorDoc
	if err := json.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("%w: status %d", ErrUnexpectedResponse, statusCode)
	}
	var messages []string
	if doc.Error != "" {
		messages = append(messages, doc.Error)
	}
	for _, e := range doc.Errors {
		if e.Msg != "" {
			messages = append(messages, e.Msg)
		}
	}
	if len(messages) == 0 {
		return fmt.Errorf("%w: status %d", ErrUnexpectedResponse, statusCode)
	}
	return &APIError{StatusCode: statusCode, Messages: messages}
}
