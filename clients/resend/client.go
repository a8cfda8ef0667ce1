// Package resend is a thin client for the Resend transactional email API.
package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.resend.com"

// Email is a single outbound message
type Email struct {
	From    string `json:"from"`
	To      string `json:"-"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text"`
	ReplyTo string `json:"reply_to,omitempty"`
}

// Client defines the interface for sending email
type Client interface {
	Send(ctx context.Context, email Email) (string, error)
}

type clientImpl struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures the client
type Option func(*clientImpl)

// WithBaseURL overrides the API endpoint (used in tests)
func WithBaseURL(baseURL string) Option {
	return func(c *clientImpl) { c.baseURL = baseURL }
}

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *clientImpl) { c.httpClient = httpClient }
}

// NewClient creates a Resend client. sendsPerSecond throttles outbound sends
// so a burst of leads cannot trip the provider's own rate limits. An empty
// apiKey puts the client in dry-run mode: sends are skipped and reported as
// successful, which keeps local development working without credentials.
func NewClient(apiKey string, sendsPerSecond float64, opts ...Option) Client {
	if sendsPerSecond <= 0 {
		sendsPerSecond = 2
	}
	c := &clientImpl{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(sendsPerSecond), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send dispatches one email and returns the provider's message ID
func (c *clientImpl) Send(ctx context.Context, email Email) (string, error) {
	if c.apiKey == "" {
		return "dry-run", nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("error waiting for send slot: %w", err)
	}

	payload := struct {
		From    string   `json:"from"`
		To      []string `json:"to"`
		Subject string   `json:"subject"`
		HTML    string   `json:"html"`
		Text    string   `json:"text"`
		ReplyTo string   `json:"reply_to,omitempty"`
	}{
		From:    email.From,
		To:      []string{email.To},
		Subject: email.Subject,
		HTML:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("error encoding email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error sending email: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("error from Resend API (%d): %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("error parsing response: %w", err)
	}

	return result.ID, nil
}
