// Package remote implements the typed REST clients for the storefront's
// backing API: authentication and the order lifecycle. Both are thin
// pass-throughs; any non-success response becomes an APIError carrying the
// server-provided message.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/guonaihong/gout"
	"github.com/guonaihong/gout/dataflow"
)

// APIError is a non-success response from the remote API. Message is the
// server's human-readable explanation, surfaced to the caller as-is.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// bearer formats the Authorization header value.
func bearer(token string) gout.H {
	return gout.H{"Authorization": "Bearer " + token}
}

// exchange runs the prepared request, maps non-2xx responses to APIError
// and decodes the success body into out (skipped when out is nil).
func exchange(ctx context.Context, df *dataflow.DataFlow, out any) error {
	var body []byte
	code := 0

	if err := df.WithContext(ctx).BindBody(&body).Code(&code).Do(); err != nil {
		return fmt.Errorf("remote api: %w", err)
	}

	if code < http.StatusOK || code >= http.StatusMultipleChoices {
		return errorFromBody(code, body)
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("remote api: decode response: %w", err)
	}
	return nil
}

// errorFromBody extracts the server's message from an error payload,
// falling back to a generic description of the status.
func errorFromBody(code int, body []byte) error {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := ""
	if json.Unmarshal(body, &envelope) == nil {
		if envelope.Message != "" {
			msg = envelope.Message
		} else {
			msg = envelope.Error
		}
	}
	if strings.TrimSpace(msg) == "" {
		msg = fmt.Sprintf("request failed with status %d", code)
	}
	return &APIError{StatusCode: code, Message: msg}
}
