// Package whatsapp sends template messages through the WhatsApp Cloud API.
package whatsapp

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

const ServiceName = "whatsapp"

type TemplateMessage struct {
	To       string
	Template string
	Params   []string
}

type Client struct {
	baseURL       string
	token         string
	phoneNumberID string
	language      string
	client        *http.Client
}

func NewClient(cfg config.WhatsAppConfig) *Client {
	return &Client{
		baseURL:       strings.TrimRight(cfg.APIBaseURL, "/"),
		token:         cfg.AccessToken,
		phoneNumberID: cfg.PhoneNumberID,
		language:      cfg.Language,
		client:        &http.Client{Timeout: cfg.Timeout},
	}
}

// Enabled reports whether credentials are configured.
func (c *Client) Enabled() bool {
	return c != nil && c.token != "" && c.phoneNumberID != ""
}

type textParam struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type component struct {
	Type       string      `json:"type"`
	Parameters []textParam `json:"parameters"`
}

type templatePayload struct {
	MessagingProduct string `json:"messaging_product"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Template         struct {
		Name     string `json:"name"`
		Language struct {
			Code string `json:"code"`
		} `json:"language"`
		Components []component `json:"components,omitempty"`
	} `json:"template"`
}

func (c *Client) SendTemplate(ctx context.Context, msg TemplateMessage) error {
	var payload templatePayload
	payload.MessagingProduct = "whatsapp"
	payload.To = msg.To
	payload.Type = "template"
	payload.Template.Name = msg.Template
	payload.Template.Language.Code = c.language
	if len(msg.Params) > 0 {
		params := make([]textParam, 0, len(msg.Params))
		for _, p := range msg.Params {
			params = append(params, textParam{Type: "text", Text: p})
		}
		payload.Template.Components = []component{{Type: "body", Parameters: params}}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal whatsapp message: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build whatsapp request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.SetUpstreamError(ServiceName, 0)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.SetUpstreamError(ServiceName, resp.StatusCode)
	}
	return nil
}
