package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"delivery/internal/entities"
)

const maxResponseBytes = 4 << 10

// Gateway шлет push-уведомления через HTTP API провайдера.
// Ретраев нет намеренно: неуспешная отправка это бизнес-исход диспетчера,
// а не транзиентная ошибка транспорта.
type Gateway struct {
	client  httpClient
	baseURL string
	apiKey  string
}

func New(client httpClient, baseURL, apiKey string) *Gateway {
	return &Gateway{
		client:  client,
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

type sendRequest struct {
	Token   string            `json:"token"`
	Title   string            `json:"title"`
	Message string            `json:"message"`
	Payload map[string]string `json:"payload,omitempty"`
}

type sendResponse struct {
	Error string `json:"error"`
}

func (g *Gateway) Send(ctx context.Context, token, title, message string, payload map[string]string) (*entities.PushResult, error) {
	body, err := json.Marshal(sendRequest{
		Token:   token,
		Title:   title,
		Message: message,
		Payload: payload,
	})
	if err != nil {
		return nil, fmt.Errorf("gateway push, marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/send", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gateway push, build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		PushSendDuration.WithLabelValues("transport_error").Observe(time.Since(start).Seconds())
		PushSendsTotal.WithLabelValues("transport_error").Inc()
		return nil, fmt.Errorf("gateway push, send: %w", err)
	}
	defer resp.Body.Close()

	result := toResult(resp)
	PushSendDuration.WithLabelValues(string(result.Status)).Observe(time.Since(start).Seconds())
	PushSendsTotal.WithLabelValues(string(result.Status)).Inc()

	return result, nil
}

// toResult сводит ответ провайдера к трем исходам. 404 и 410 означают
// навсегда мертвый токен устройства.
func toResult(resp *http.Response) *entities.PushResult {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return &entities.PushResult{Status: entities.PushOK}
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return &entities.PushResult{
			Status:  entities.PushInvalidToken,
			Message: readError(resp.Body),
		}
	default:
		message := readError(resp.Body)
		if message == "" {
			message = fmt.Sprintf("push provider returned status %d", resp.StatusCode)
		}
		return &entities.PushResult{
			Status:  entities.PushFailed,
			Message: message,
		}
	}
}

func readError(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxResponseBytes))
	if err != nil {
		return ""
	}

	var parsed sendResponse
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Error != "" {
		return parsed.Error
	}
	return ""
}
