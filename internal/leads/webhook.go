package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
)

// Forwarder delivers a lead to the downstream CRM.
type Forwarder interface {
	Forward(ctx context.Context, lead Lead) error
}

// WebhookForwarder posts leads as JSON to a webhook URL, retrying
// transient failures with exponential backoff. Any 2xx is success;
// everything else is retried up to the attempt budget.
type WebhookForwarder struct {
	url         string
	client      *http.Client
	maxAttempts int
	baseDelay   time.Duration
	now         func() time.Time
}

// NewWebhookForwarder builds a forwarder for the given webhook URL.
func NewWebhookForwarder(url string, timeout time.Duration, maxAttempts int, baseDelay time.Duration) (*WebhookForwarder, error) {
	if url == "" {
		return nil, fmt.Errorf("webhook url required")
	}
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if baseDelay <= 0 {
		baseDelay = 500 * time.Millisecond
	}
	return &WebhookForwarder{
		url:         url,
		client:      &http.Client{Timeout: timeout},
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
		now:         time.Now,
	}, nil
}

func (f *WebhookForwarder) Forward(ctx context.Context, lead Lead) error {
	body, err := json.Marshal(webhookPayload{Lead: lead, SubmittedAt: f.now().UTC()})
	if err != nil {
		return fmt.Errorf("encoding lead payload: %w", err)
	}

	backoff := retry.WithMaxRetries(uint64(f.maxAttempts-1), retry.NewExponential(f.baseDelay))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("building webhook request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := f.client.Do(req)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("posting lead webhook: %w", err))
		}
		defer func() {
			_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
			_ = resp.Body.Close()
		}()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return nil
		}
		err = fmt.Errorf("lead webhook returned status %d", resp.StatusCode)
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return retry.RetryableError(err)
		}
		return err
	})
}
