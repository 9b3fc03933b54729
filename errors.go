package playlytics

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for configuration validation and lifecycle.
var (
	ErrMissingServerKey     = errors.New("playlytics: server key is required")
	ErrInvalidFlushInterval = errors.New("playlytics: auto-flush interval must be positive")
	ErrInvalidBatchSize     = errors.New("playlytics: max batch size must be positive")
	ErrNilConfig            = errors.New("playlytics: config cannot be nil")
	ErrClientClosed         = errors.New("playlytics: client is shut down")
)

// StatusNoResponse is the pseudo status code used when a request produced no
// HTTP response at all (connection refused, DNS failure, timeout). It is
// always classified as retryable.
const StatusNoResponse = -1

// retryableStatuses is the set of response outcomes after which a failed
// batch is preserved for a future flush attempt. Everything else (typically
// 4xx client errors) drops the batch.
var retryableStatuses = map[int]bool{
	StatusNoResponse: true,
	408:              true, // request timeout
	429:              true, // too many requests
	500:              true,
	502:              true,
	503:              true,
	504:              true,
}

// retryableStatus reports whether a batch that failed with the given status
// code should be re-queued and tried again.
func retryableStatus(code int) bool {
	return retryableStatuses[code]
}

// FlushError describes a failed flush attempt. It is the only error type
// returned by Flush: a nil error means the batch (or an empty queue) was
// handled successfully.
//
// Retryable errors mean the drained batch has been returned to the queue
// and will be included in a future flush; non-retryable errors mean the
// batch has been dropped.
type FlushError struct {
	// Message is the rendered server error, the raw transport error text,
	// or "Unknown error" if neither is available.
	Message string

	// StatusCode is the HTTP status of the response, or StatusNoResponse
	// if the request never produced one.
	StatusCode int

	// Retryable reports whether the failed batch was re-queued.
	Retryable bool

	// Err is the underlying transport error, if any.
	Err error
}

// Error implements the error interface.
func (e *FlushError) Error() string {
	return fmt.Sprintf("playlytics: flush failed (status %d): %s", e.StatusCode, e.Message)
}

// Unwrap returns the underlying transport error for error chain support.
func (e *FlushError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether the failed batch was preserved for a future
// flush attempt.
func (e *FlushError) IsRetryable() bool {
	return e.Retryable
}

// AsFlushError extracts a FlushError from the error chain.
// It follows Go's errors.As() convention.
//
// Example:
//
//	if flushErr, ok := playlytics.AsFlushError(err); ok {
//	    log.Printf("flush failed with status %d", flushErr.StatusCode)
//	}
func AsFlushError(err error) (*FlushError, bool) {
	var flushErr *FlushError
	if errors.As(err, &flushErr) {
		return flushErr, true
	}
	return nil, false
}

// IsRetryable reports whether the error represents a retryable flush
// failure. It returns false for nil and for errors outside the SDK.
func IsRetryable(err error) bool {
	if flushErr, ok := AsFlushError(err); ok {
		return flushErr.IsRetryable()
	}
	return false
}

// errorResponse is the best-effort shape of an error body returned by the
// ingest endpoint.
type errorResponse struct {
	ErrorMessage string        `json:"error"`
	Details      []errorDetail `json:"details"`
	Message      string        `json:"message"`
}

type errorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// renderErrorBody decodes an error response body and renders it as
// "{error}: {field} - {message}, ..." with all details joined by ", ".
// It returns false if the body is empty or not a decodable error object.
func renderErrorBody(body []byte) (string, bool) {
	if len(body) == 0 {
		return "", false
	}

	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", false
	}
	if resp.ErrorMessage == "" && resp.Message == "" {
		return "", false
	}

	msg := resp.ErrorMessage
	if msg == "" {
		msg = resp.Message
	}

	if len(resp.Details) > 0 {
		parts := make([]string, len(resp.Details))
		for i, d := range resp.Details {
			parts[i] = fmt.Sprintf("%s - %s", d.Field, d.Message)
		}
		return msg + ": " + strings.Join(parts, ", "), true
	}
	return msg, true
}

// flushErrorMessage builds the message carried by a FlushError. A decodable
// error body wins; otherwise the raw transport error text; otherwise
// "Unknown error".
func flushErrorMessage(body []byte, transportErr error) string {
	if msg, ok := renderErrorBody(body); ok {
		return msg
	}
	if transportErr != nil {
		return transportErr.Error()
	}
	if len(body) > 0 {
		return strings.TrimSpace(string(body))
	}
	return "Unknown error"
}
