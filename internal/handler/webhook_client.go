package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/idtoken"

	"github.com/octobees/leads-outreach/api/internal/middleware"
	"github.com/octobees/leads-outreach/api/internal/service"
)

const (
	webhookTimeout  = 15 * time.Second
	maxErrorBodyLen = 512
)

// WebhookClient posts JSON payloads to the CRM intake webhook.
type WebhookClient struct {
	client *http.Client
	url    string
}

// NewWebhookClient builds a webhook client. When client is nil and an audience
// is given, requests carry a Google ID token for that audience.
func NewWebhookClient(client *http.Client, webhookURL, audience string) (*WebhookClient, error) {
	webhookURL = strings.TrimSpace(webhookURL)
	if webhookURL == "" {
		return nil, errors.New("webhook url must not be empty")
	}
	if client == nil {
		client = &http.Client{Timeout: webhookTimeout}
		if audience != "" {
			idc, err := idtoken.NewClient(context.Background(), audience)
			if err != nil {
				zap.L().Warn("id token client unavailable, posting without auth", zap.String("audience", audience), zap.Error(err))
			} else {
				idc.Timeout = webhookTimeout
				client = idc
			}
		}
	}
	return &WebhookClient{client: client, url: webhookURL}, nil
}

// PostJSON posts the payload to the webhook. Any 2xx response is success.
func (c *WebhookClient) PostJSON(ctx context.Context, payload any, requestID string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set(middleware.HeaderRequestID, requestID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned %d: %s", resp.StatusCode, extractWebhookError(resp.Body))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func extractWebhookError(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBodyLen))
	if err != nil || len(data) == 0 {
		return "webhook returned an error"
	}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return strings.TrimSpace(string(data))
}

var _ service.WebhookPoster = (*WebhookClient)(nil)
