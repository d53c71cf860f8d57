package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	retrierconfig "delivery/pkg/retrier"
	"delivery/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 200 * time.Millisecond
	maxInterval     = 3 * time.Second
	maxElapsedTime  = 10 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// Gateway отправляет транзакционные письма через HTTP API почтового провайдера.
type Gateway struct {
	client  httpClient
	retrier retrier
	baseURL string
	apiKey  string
	from    string
}

func New(client httpClient, baseURL, apiKey, from string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		baseURL: baseURL,
		apiKey:  apiKey,
		from:    from,
	}
}

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

func (g *Gateway) Send(ctx context.Context, to, subject, html string) error {
	body, err := json.Marshal(sendRequest{
		From:    g.from,
		To:      to,
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return fmt.Errorf("gateway email, marshal request: %w", err)
	}

	err = g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/messages", bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+g.apiKey)

		resp, err := g.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return nil
		}
		return &statusError{code: resp.StatusCode}
	})
	if err != nil {
		return fmt.Errorf("gateway email, send to %s: %w", to, err)
	}
	return nil
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("email provider returned status %d", e.code)
}

func isRetryable(err error) bool {
	var se *statusError
	if !errors.As(err, &se) {
		return true
	}
	return se.code == http.StatusTooManyRequests || se.code >= 500
}
