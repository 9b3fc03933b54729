package playlytics

import (
	"errors"
	"fmt"
	"testing"
)

func TestRetryableStatus(t *testing.T) {
	tests := []struct {
		status    int
		retryable bool
	}{
		{StatusNoResponse, true},
		{408, true},
		{429, true},
		{500, true},
		{502, true},
		{503, true},
		{504, true},
		{400, false},
		{401, false},
		{403, false},
		{404, false},
		{422, false},
		{501, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status_%d", tt.status), func(t *testing.T) {
			if got := retryableStatus(tt.status); got != tt.retryable {
				t.Errorf("retryableStatus(%d) = %v, want %v", tt.status, got, tt.retryable)
			}
		})
	}
}

func TestFlushErrorMessage(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		transportErr error
		want         string
	}{
		{
			name: "error with details",
			body: `{"error":"Validation failed","details":[{"field":"timestamp","message":"must be ISO-8601"},{"field":"event_type","message":"required"}]}`,
			want: "Validation failed: timestamp - must be ISO-8601, event_type - required",
		},
		{
			name: "error without details",
			body: `{"error":"Unknown server key"}`,
			want: "Unknown server key",
		},
		{
			name: "message only",
			body: `{"message":"rate limit exceeded"}`,
			want: "rate limit exceeded",
		},
		{
			name: "undecodable body falls back to raw text",
			body: "Bad Gateway",
			want: "Bad Gateway",
		},
		{
			name:         "undecodable body with transport error prefers error text",
			body:         "",
			transportErr: errors.New("connection refused"),
			want:         "connection refused",
		},
		{
			name: "nothing available",
			want: "Unknown error",
		},
		{
			name: "json without recognized fields",
			body: `{"status":"bad"}`,
			want: `{"status":"bad"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := flushErrorMessage([]byte(tt.body), tt.transportErr)
			if got != tt.want {
				t.Errorf("flushErrorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFlushErrorUnwrapAndHelpers(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	var err error = &FlushError{
		Message:    "connection refused",
		StatusCode: StatusNoResponse,
		Retryable:  true,
		Err:        cause,
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped transport error")
	}

	flushErr, ok := AsFlushError(fmt.Errorf("wrapped: %w", err))
	if !ok {
		t.Fatal("AsFlushError should find the FlushError in the chain")
	}
	if flushErr.StatusCode != StatusNoResponse {
		t.Errorf("StatusCode = %d, want %d", flushErr.StatusCode, StatusNoResponse)
	}

	if !IsRetryable(err) {
		t.Error("IsRetryable should be true for a retryable FlushError")
	}
	if IsRetryable(nil) {
		t.Error("IsRetryable(nil) should be false")
	}
	if IsRetryable(errors.New("plain")) {
		t.Error("IsRetryable should be false for non-SDK errors")
	}
	if IsRetryable(&FlushError{StatusCode: 400}) {
		t.Error("IsRetryable should be false for non-retryable FlushError")
	}
}

func TestFlushErrorString(t *testing.T) {
	err := &FlushError{Message: "boom", StatusCode: 503, Retryable: true}
	want := "playlytics: flush failed (status 503): boom"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
