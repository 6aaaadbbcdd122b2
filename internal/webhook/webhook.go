// Package webhook delivers a digest to a chat webhook as a JSON message.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Timeout bounds a whole delivery attempt, including reading the response.
const Timeout = 3 * time.Second

// Payload is the JSON body accepted by Discord-style webhooks.
type Payload struct {
	Content  string `json:"content"`
	Username string `json:"username"`
}

// Result is the outcome of a delivery the endpoint answered.
type Result struct {
	StatusCode int
	Status     string // e.g. "204 No Content"
}

// OK reports whether the endpoint accepted the message.
func (r *Result) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Sink posts messages to a single webhook URL.
type Sink struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a sink for url. The URL is not validated here; a malformed
// URL surfaces as a delivery error.
func New(url string, logger *slog.Logger) *Sink {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sink{
		url: url,
		httpClient: &http.Client{
			Timeout: Timeout,
		},
		logger: logger.With("component", "webhook"),
	}
}

// Deliver posts content under username once. Any HTTP response is a
// completed delivery and is returned as a Result, whatever its status.
// Transport failures (timeout, refused connection, TLS) return an error
// wrapping ErrDelivery. Nothing is retried.
func (s *Sink) Deliver(ctx context.Context, content, username string) (*Result, error) {
	body, err := json.Marshal(Payload{Content: content, Username: username})
	if err != nil {
		return nil, fmt.Errorf("%w: marshal payload: %w", ErrDelivery, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", ErrDelivery, err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDelivery, err)
	}
	defer func() { _ = resp.Body.Close() }()

	result := &Result{StatusCode: resp.StatusCode, Status: resp.Status}
	if !result.OK() {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		s.logger.Warn("webhook rejected message",
			"status", resp.StatusCode,
			"body", string(respBody))
	}

	s.logger.Debug("webhook delivered",
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration_ms", time.Since(start).Milliseconds())

	return result, nil
}
