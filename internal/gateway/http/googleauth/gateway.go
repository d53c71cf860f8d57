package googleauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"delivery/internal/entities"
)

const tokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

const maxResponseBytes = 16 << 10

var (
	ErrTokenRejected   = errors.New("google rejected the id token")
	ErrWrongAudience   = errors.New("id token issued for another application")
	ErrIncompleteToken = errors.New("id token is missing required claims")
)

// Gateway валидирует Google ID-токены через endpoint tokeninfo.
type Gateway struct {
	client   httpClient
	endpoint string
	clientID string
}

func New(client httpClient, clientID string) *Gateway {
	return &Gateway{
		client:   client,
		endpoint: tokenInfoURL,
		clientID: clientID,
	}
}

type tokenInfoResponse struct {
	Subject       string `json:"sub"`
	Audience      string `json:"aud"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
}

func (g *Gateway) Verify(ctx context.Context, idToken string) (*entities.GoogleProfile, error) {
	endpoint := g.endpoint + "?id_token=" + url.QueryEscape(idToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("gateway googleauth, build request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway googleauth, verify: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrTokenRejected
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("gateway googleauth, read response: %w", err)
	}

	var info tokenInfoResponse
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("gateway googleauth, decode response: %w", err)
	}

	if info.Audience != g.clientID {
		return nil, ErrWrongAudience
	}
	if info.Subject == "" || info.Email == "" {
		return nil, ErrIncompleteToken
	}

	return &entities.GoogleProfile{
		Subject:       info.Subject,
		Email:         info.Email,
		FullName:      info.Name,
		EmailVerified: info.EmailVerified == "true",
	}, nil
}
