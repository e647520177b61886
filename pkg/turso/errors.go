package turso

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"syscall"
)

// ErrorKind is the closed taxonomy of API failure categories.
type ErrorKind string

const (
	ErrorKindUnauthorized        ErrorKind = "unauthorized"
	ErrorKindForbidden           ErrorKind = "forbidden"
	ErrorKindNotFound            ErrorKind = "not_found"
	ErrorKindConflict            ErrorKind = "conflict"
	ErrorKindRateLimited         ErrorKind = "rate_limited"
	ErrorKindInvalidRequest      ErrorKind = "invalid_request"
	ErrorKindUnprocessableEntity ErrorKind = "unprocessable_entity"
	ErrorKindServerError         ErrorKind = "server_error"
	ErrorKindNetworkError        ErrorKind = "network_error"
	ErrorKindTimeout             ErrorKind = "timeout"
	ErrorKindUnknown             ErrorKind = "unknown"
)

// Error represents a failure from the Turso platform API. It is the only
// error type surfaced for remote failures; local configuration problems are
// reported as plain sentinel errors instead (see the Err* variables below).
//
// Error values are built exclusively by ClassifyResponse and
// ClassifyTransport and are immutable after construction.
type Error struct {
	Kind    ErrorKind              `json:"kind"              yaml:"kind"`
	Message string                 `json:"message"           yaml:"message"`
	Status  int                    `json:"status,omitempty"  yaml:"status,omitempty"` // 0 when no HTTP status applies
	Details map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`

	// Request context, for diagnostics.
	Method string `json:"method,omitempty" yaml:"method,omitempty"`
	Path   string `json:"path,omitempty"   yaml:"path,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Method != "" && e.Path != "" {
		fmt.Fprintf(&b, "%s %s: ", e.Method, e.Path)
	}

	fmt.Fprintf(&b, "%s: %s", e.Kind, e.Message)

	if e.Status != 0 {
		fmt.Fprintf(&b, " (status: %d)", e.Status)
	}

	return b.String()
}

// IsRateLimited reports whether the error is a rate-limit rejection.
func (e *Error) IsRateLimited() bool {
	return e.Kind == ErrorKindRateLimited
}

// IsAuthError reports whether the error is an authentication or
// authorization failure.
func (e *Error) IsAuthError() bool {
	return e.Kind == ErrorKindUnauthorized || e.Kind == ErrorKindForbidden
}

// IsClientError reports whether the failure was caused by the request
// itself rather than the server or the transport.
func (e *Error) IsClientError() bool {
	if e.Status >= 400 && e.Status <= 499 {
		return true
	}

	switch e.Kind {
	case ErrorKindInvalidRequest, ErrorKindUnauthorized, ErrorKindForbidden,
		ErrorKindNotFound, ErrorKindConflict, ErrorKindUnprocessableEntity,
		ErrorKindRateLimited:
		return true
	default:
		return false
	}
}

// IsServerError reports whether the remote server failed.
func (e *Error) IsServerError() bool {
	return e.Status >= 500 || e.Kind == ErrorKindServerError
}

// IsRetryable reports whether retrying the request could plausibly succeed.
// The client never retries on its own; callers implement their own backoff
// informed by this predicate and RetryAfter.
func (e *Error) IsRetryable() bool {
	switch e.Kind {
	case ErrorKindRateLimited, ErrorKindTimeout, ErrorKindServerError, ErrorKindNetworkError:
		return true
	default:
		return e.Status >= 500
	}
}

// RetryAfter returns the server-suggested backoff in seconds for a
// rate-limited error. The second return is false when the error is not
// rate-limited or the payload carried no usable hint.
func (e *Error) RetryAfter() (int, bool) {
	if e.Kind != ErrorKindRateLimited || e.Details == nil {
		return 0, false
	}

	for _, key := range []string{"retry_after", "retry-after"} {
		if value, ok := e.Details[key]; ok {
			if seconds, ok := asInt(value); ok {
				return seconds, true
			}
		}
	}

	return 0, false
}

func asInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}

		return int(n), true
	default:
		return 0, false
	}
}

// Static errors for local configuration problems. These are detected before
// any network call and are intentionally not *Error values: no remote
// request happened, so there is nothing to classify.
var (
	ErrConfigRequired       = errors.New("config is required")
	ErrAPITokenRequired     = errors.New("API token is required")
	ErrOrganizationRequired = errors.New("organization is required (set Config.Organization or pass one per call)")
	ErrTokenNameRequired    = errors.New("token name is required")
)

// kindForStatus maps an HTTP status to a taxonomy member. It returns
// ErrorKind("") for statuses outside the table so the classifier can fall
// through to payload-based inference.
func kindForStatus(status int) ErrorKind {
	switch status {
	case 400:
		return ErrorKindInvalidRequest
	case 401:
		return ErrorKindUnauthorized
	case 403:
		return ErrorKindForbidden
	case 404:
		return ErrorKindNotFound
	case 409:
		return ErrorKindConflict
	case 422:
		return ErrorKindUnprocessableEntity
	case 429:
		return ErrorKindRateLimited
	}

	switch {
	case status >= 500:
		return ErrorKindServerError
	case status >= 400:
		return ErrorKindInvalidRequest
	default:
		return ""
	}
}

// kindFromPayload infers a taxonomy member from a "type" or "code" string
// field in the error payload. Matching is case-insensitive against the
// taxonomy names themselves.
func kindFromPayload(payload map[string]interface{}) ErrorKind {
	for _, key := range []string{"type", "code"} {
		hint, ok := payload[key].(string)
		if !ok {
			continue
		}

		switch ErrorKind(strings.ToLower(hint)) {
		case ErrorKindUnauthorized, ErrorKindForbidden, ErrorKindNotFound,
			ErrorKindConflict, ErrorKindRateLimited, ErrorKindInvalidRequest,
			ErrorKindUnprocessableEntity, ErrorKindServerError,
			ErrorKindNetworkError, ErrorKindTimeout:
			return ErrorKind(strings.ToLower(hint))
		}
	}

	return ErrorKindUnknown
}

// FormatErrorBody normalizes an arbitrary error response body into a
// structured payload. Priority: a nested error object is used as-is; a
// string "error" field or a top-level "message" field is wrapped as
// {message: ...}; anything else is preserved under "details" with a generic
// message.
func FormatErrorBody(body []byte) map[string]interface{} {
	var decoded interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return map[string]interface{}{
			"message": "Unknown error format",
			"details": string(body),
		}
	}

	switch value := decoded.(type) {
	case map[string]interface{}:
		if nested, ok := value["error"].(map[string]interface{}); ok {
			return nested
		}

		if msg, ok := value["error"].(string); ok {
			return map[string]interface{}{"message": msg}
		}

		if msg, ok := value["message"]; ok {
			return map[string]interface{}{"message": msg}
		}

		return map[string]interface{}{
			"message": "Unknown error",
			"details": value,
		}
	case string:
		return map[string]interface{}{"message": value}
	default:
		return map[string]interface{}{
			"message": "Unknown error format",
			"details": fmt.Sprintf("%v", value),
		}
	}
}

// extractMessage pulls a human-readable message out of a structured error
// payload. Priority: "message", then a string "error" field, then a joined
// "errors" list, then a fallback embedding the raw payload.
func extractMessage(payload map[string]interface{}) string {
	if msg, ok := payload["message"].(string); ok && msg != "" {
		return msg
	}

	if msg, ok := payload["error"].(string); ok && msg != "" {
		return msg
	}

	if list, ok := payload["errors"].([]interface{}); ok && len(list) > 0 {
		parts := make([]string, 0, len(list))

		for _, element := range list {
			switch item := element.(type) {
			case map[string]interface{}:
				parts = append(parts, extractMessage(item))
			case string:
				parts = append(parts, item)
			default:
				parts = append(parts, fmt.Sprintf("%v", item))
			}
		}

		return strings.Join(parts, ", ")
	}

	return fmt.Sprintf("unrecognized error payload: %v", payload)
}

// ClassifyResponse builds an *Error from a completed HTTP exchange that
// ended outside the 2xx range.
func ClassifyResponse(status int, body []byte, method, path string) *Error {
	payload := FormatErrorBody(body)

	kind := kindForStatus(status)
	if kind == "" {
		kind = kindFromPayload(payload)
	}

	apiErr := &Error{
		Kind:    kind,
		Message: extractMessage(payload),
		Status:  status,
		Method:  method,
		Path:    path,
	}

	// Everything beyond the extracted message stays available as opaque
	// details, including retry_after hints on 429s.
	details := make(map[string]interface{}, len(payload))

	for key, value := range payload {
		if key == "message" {
			continue
		}

		details[key] = value
	}

	if wrapped, ok := details["details"].(map[string]interface{}); ok && len(details) == 1 {
		details = wrapped
	}

	if len(details) > 0 {
		apiErr.Details = details
	}

	return apiErr
}

// ClassifyTransport builds an *Error from a failure that prevented the HTTP
// exchange from completing: timeouts, refused or reset connections, and
// anything else the transport reports.
func ClassifyTransport(err error, method, path string) *Error {
	apiErr := &Error{
		Message: err.Error(),
		Method:  method,
		Path:    path,
	}

	var netErr net.Error

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		apiErr.Kind = ErrorKindTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		apiErr.Kind = ErrorKindTimeout
	case errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.EPIPE):
		apiErr.Kind = ErrorKindNetworkError
	default:
		apiErr.Kind = ErrorKindUnknown
	}

	return apiErr
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasKind(err, ErrorKindNotFound)
}

// IsUnauthorized checks if the error is an authentication failure.
func IsUnauthorized(err error) bool {
	return hasKind(err, ErrorKindUnauthorized)
}

// IsForbidden checks if the error is an authorization failure.
func IsForbidden(err error) bool {
	return hasKind(err, ErrorKindForbidden)
}

// IsRateLimited checks if the error is a rate-limit rejection.
func IsRateLimited(err error) bool {
	return hasKind(err, ErrorKindRateLimited)
}

// IsRetryable checks if the error describes a transient failure.
func IsRetryable(err error) bool {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr.IsRetryable()
	}

	return false
}

func hasKind(err error, kind ErrorKind) bool {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}

	return false
}
