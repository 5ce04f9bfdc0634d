package ai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Transport delivers a request payload to the AI service and returns the
// raw response body. A failure must surface as an error, never as a
// silently empty success. Implementations own the timeout policy; the
// game core never cancels a call mid-flight.
type Transport interface {
	RoundTrip(ctx context.Context, payload []byte) ([]byte, error)
}

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 1 << 20

// HTTPTransport posts JSON payloads to a chat-completions endpoint with
// bearer-token credentials.
type HTTPTransport struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewHTTPTransport creates a transport for the given endpoint. The
// timeout applies to the whole round trip; a stalled server fails the
// call instead of stalling the game forever.
func NewHTTPTransport(endpoint, apiKey string, timeout time.Duration) *HTTPTransport {
	return &HTTPTransport{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
}

// RoundTrip sends the payload and returns the response body. Non-2xx
// statuses are errors.
func (t *HTTPTransport) RoundTrip(ctx context.Context, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("ai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if t.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.apiKey)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ai: send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("ai: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("ai: unexpected status %d", resp.StatusCode)
	}
	return body, nil
}
