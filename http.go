package playlytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const userAgent = "playlytics-go/1.0.0"

// httpClient handles HTTP requests to the Playlytics API. It is a thin
// wrapper: it builds requests and reads responses, but interpreting status
// codes (success, retryable, fatal) belongs to the caller.
type httpClient struct {
	client  *http.Client
	baseURL string
}

// newHTTPClient creates a new HTTP client.
func newHTTPClient(cfg *Config) *httpClient {
	return &httpClient{
		client:  cfg.HTTPClient,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
	}
}

// put sends body as JSON with a PUT request and returns the response status
// and raw body. A non-nil error means the request produced no HTTP response
// at all (marshalling or transport failure); non-2xx responses are returned
// to the caller for classification, not as errors.
func (h *httpClient) put(ctx context.Context, path string, body any) (int, []byte, error) {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return 0, nil, fmt.Errorf("playlytics: failed to marshal request body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, h.baseURL+path, bytes.NewReader(bodyBytes))
	if err != nil {
		return 0, nil, fmt.Errorf("playlytics: failed to create request: %w", err)
	}
	h.setHeaders(httpReq)

	resp, err := h.client.Do(httpReq)
	if err != nil {
		return 0, nil, fmt.Errorf("playlytics: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		// The status line arrived, so classify by status and ignore the
		// unreadable body.
		return resp.StatusCode, nil, nil
	}
	return resp.StatusCode, respBody, nil
}

// get performs a GET request and unmarshals a 2xx response into result.
// Any transport failure, non-2xx status, or undecodable body is an error.
func (h *httpClient) get(ctx context.Context, path string, query url.Values, result any) error {
	u := h.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("playlytics: failed to create request: %w", err)
	}
	h.setHeaders(httpReq)

	resp, err := h.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("playlytics: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("playlytics: failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("playlytics: unexpected status %d: %s", resp.StatusCode, flushErrorMessage(respBody, nil))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("playlytics: failed to unmarshal response: %w", err)
		}
	}
	return nil
}

func (h *httpClient) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
}
