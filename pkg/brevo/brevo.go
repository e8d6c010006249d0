// Package brevo provides a lightweight client for the Brevo (formerly
// Sendinblue) transactional email API. Uses raw HTTP calls, no SDK.
package brevo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the production Brevo API endpoint.
const DefaultBaseURL = "https://api.brevo.com"

const sendEmailPath = "/v3/smtp/email"

// Recipient identifies an email sender or receiver.
type Recipient struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// SendEmailParams is the payload for the transactional email endpoint.
type SendEmailParams struct {
	Sender      Recipient   `json:"sender"`
	To          []Recipient `json:"to"`
	Subject     string      `json:"subject"`
	HTMLContent string      `json:"htmlContent,omitempty"`
	TextContent string      `json:"textContent,omitempty"`
}

// Sender sends transactional emails. Implemented by Client; services should
// depend on this interface so tests can substitute a mock.
type Sender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// Client is an HTTP client for the Brevo v3 API.
type Client struct {
	APIKey     string
	BaseURL    string
	httpClient *http.Client
}

// NewClient creates a Brevo client using the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

var _ Sender = (*Client)(nil)

// SendEmail posts a transactional email. Brevo replies 201 on success.
func (c *Client) SendEmail(ctx context.Context, params SendEmailParams) error {
	if len(params.To) == 0 {
		return fmt.Errorf("brevo: no recipients")
	}

	body, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("brevo: failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+sendEmailPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("brevo: failed to build request: %w", err)
	}
	req.Header.Set("api-key", c.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("brevo: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("brevo: send email returned status %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
