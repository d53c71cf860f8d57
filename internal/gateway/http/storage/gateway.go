package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"delivery/internal/entities"
	retrierconfig "delivery/pkg/retrier"
	"delivery/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

const maxResponseBytes = 16 << 10

// Gateway загружает файлы заявок во внешнее файловое хранилище.
type Gateway struct {
	client  httpClient
	retrier retrier
	baseURL string
	apiKey  string
}

func New(client httpClient, baseURL, apiKey string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableStatus,
	}

	return &Gateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

type uploadResponse struct {
	URL       string `json:"url"`
	StorageID string `json:"storage_id"`
}

// Upload выполняется без ретраев, повтор мультипарт-запроса может
// оставить в хранилище осиротевшие дубликаты.
func (g *Gateway) Upload(ctx context.Context, file entities.FileUpload) (*entities.FileRef, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", file.Name)
	if err != nil {
		return nil, fmt.Errorf("gateway storage, build form: %w", err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, fmt.Errorf("gateway storage, build form: %w", err)
	}
	if err := writer.WriteField("content_type", file.ContentType); err != nil {
		return nil, fmt.Errorf("gateway storage, build form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("gateway storage, build form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/files", &body)
	if err != nil {
		return nil, fmt.Errorf("gateway storage, build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		StorageRequestDuration.WithLabelValues("Upload", "transport_error").Observe(time.Since(start).Seconds())
		return nil, fmt.Errorf("gateway storage, upload: %w", err)
	}
	defer resp.Body.Close()

	StorageRequestDuration.WithLabelValues("Upload", strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway storage, upload: %w", newStatusError(resp.StatusCode))
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("gateway storage, read response: %w", err)
	}

	var parsed uploadResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("gateway storage, decode response: %w", err)
	}
	if parsed.StorageID == "" {
		return nil, errors.New("gateway storage, empty storage id in response")
	}

	return &entities.FileRef{
		URL:       parsed.URL,
		StorageID: parsed.StorageID,
	}, nil
}

// Delete идемпотентен на стороне провайдера, поэтому ретраится.
func (g *Gateway) Delete(ctx context.Context, storageID string) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++

		req, err := http.NewRequestWithContext(ctx, http.MethodDelete, g.baseURL+"/files/"+storageID, nil)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+g.apiKey)

		resp, err := g.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		// 404 означает что файл уже удален
		if resp.StatusCode >= 200 && resp.StatusCode < 300 || resp.StatusCode == http.StatusNotFound {
			return nil
		}
		return newStatusError(resp.StatusCode)
	})

	StorageRequestDuration.WithLabelValues("Delete", statusLabel(err)).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		StorageRetriesTotal.WithLabelValues("Delete", statusLabel(err)).Inc()
	}

	if err != nil {
		return fmt.Errorf("gateway storage, delete: %s: %w", storageID, err)
	}
	return nil
}

type statusError struct {
	code int
}

func newStatusError(code int) *statusError {
	return &statusError{code: code}
}

func (e *statusError) Error() string {
	return fmt.Sprintf("storage provider returned status %d", e.code)
}

func isRetryableStatus(err error) bool {
	var se *statusError
	if !errors.As(err, &se) {
		// транспортные ошибки ретраим
		return true
	}

	switch se.code {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

func statusLabel(err error) string {
	if err == nil {
		return "ok"
	}
	var se *statusError
	if errors.As(err, &se) {
		return strconv.Itoa(se.code)
	}
	return "transport_error"
}
