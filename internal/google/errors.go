package google

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RequestError reports a failure to reach the API or to decode its answer
// (network, DNS, timeout, malformed JSON).
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("could not query the Google API: %v", e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// APIError reports a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Body       string // raw response body
	Message    string // error.message from the JSON body, if any
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("Google API returned an error: %s", e.Message)
	}
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("Google API returned an error: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("Google API returned an error: %s", body)
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Body: string(body)}
	var envelope apiErrorBody
	if err := json.Unmarshal(body, &envelope); err == nil {
		apiErr.Message = envelope.Error.Message
	}
	return apiErr
}
