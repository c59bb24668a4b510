package revalidate

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// SecretHeader carries the shared secret expected by the frontend's
// revalidation endpoint.
const SecretHeader = "X-Revalidate-Secret"

type webhookRequest struct {
	Path string `json:"path"`
}

// Webhook POSTs {"path": "..."} to a frontend revalidation endpoint.
type Webhook struct {
	client *resty.Client
	url    string
}

// NewWebhook builds a Webhook against url. An empty secret sends no header.
func NewWebhook(url, secret string, timeout time.Duration) *Webhook {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	if secret != "" {
		client.SetHeader(SecretHeader, secret)
	}
	return &Webhook{client: client, url: url}
}

// Invalidate fails on transport errors and on any non-2xx answer.
func (w *Webhook) Invalidate(ctx context.Context, path string) error {
	resp, err := w.client.R().
		SetContext(ctx).
		SetBody(webhookRequest{Path: path}).
		Post(w.url)
	if err != nil {
		return fmt.Errorf("revalidate %s: %w", path, err)
	}
	if resp.IsError() {
		return fmt.Errorf("revalidate %s: unexpected status %d", path, resp.StatusCode())
	}
	return nil
}
