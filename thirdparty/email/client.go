// Package email sends transactional mail through a Resend-compatible API.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/muhammadheryan/kidswear/cmd/config"
	"github.com/muhammadheryan/kidswear/utils/errors"
)

const ServiceName = "email"

type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
	// IdempotencyKey lets the provider drop retried sends of the same mail.
	IdempotencyKey string
}

type Client struct {
	baseURL string
	apiKey  string
	from    string
	client  *http.Client
}

func NewClient(cfg config.EmailConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		apiKey:  cfg.APIKey,
		from:    cfg.From,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// Enabled reports whether credentials are configured.
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != "" && c.from != ""
}

func (c *Client) Send(ctx context.Context, msg Message) error {
	payload := map[string]any{
		"from":    c.from,
		"to":      []string{msg.To},
		"subject": msg.Subject,
		"html":    msg.HTML,
	}
	if msg.Text != "" {
		payload["text"] = msg.Text
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if msg.IdempotencyKey != "" {
		req.Header.Set("Idempotency-Key", msg.IdempotencyKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.SetUpstreamError(ServiceName, 0)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	// 409: the idempotency key was already used, the mail went out before
	if resp.StatusCode == http.StatusConflict {
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.SetUpstreamError(ServiceName, resp.StatusCode)
	}
	return nil
}
