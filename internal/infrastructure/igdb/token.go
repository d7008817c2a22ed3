package igdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"sweaty/internal/infrastructure/metrics"
	apperrors "sweaty/pkg/errors"
	"sweaty/pkg/logger"
)

// tokenSafetyMargin is subtracted from the token expiry to refresh early.
const tokenSafetyMargin = 300 * time.Second

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// tokenCache holds the one access token shared by every request through a
// Client. The lock is held across the exchange so concurrent callers that
// find the token stale trigger a single refresh.
type tokenCache struct {
	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func (t *tokenCache) reset() {
	t.mu.Lock()
	t.token = ""
	t.expiresAt = time.Time{}
	t.mu.Unlock()
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// Authenticate returns the cached token while it is valid beyond the safety
// margin and otherwise performs a client-credentials exchange. A failed
// exchange leaves nothing cached.
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return "", apperrors.Configuration("TWITCH_CLIENT_ID and TWITCH_CLIENT_SECRET must be set")
	}

	c.cache.mu.Lock()
	defer c.cache.mu.Unlock()

	if c.cache.token != "" && c.clock.Now().Before(c.cache.expiresAt.Add(-tokenSafetyMargin)) {
		return c.cache.token, nil
	}

	c.cache.token = ""
	resp, err := c.exchangeToken(ctx)
	if err != nil {
		metrics.TokenExchanges.WithLabelValues("failure").Inc()
		return "", err
	}
	metrics.TokenExchanges.WithLabelValues("success").Inc()

	c.cache.token = resp.AccessToken
	c.cache.expiresAt = c.clock.Now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	logger.Debug("igdb: access token refreshed, expires at %s", c.cache.expiresAt.Format(time.RFC3339))

	return c.cache.token, nil
}

func (c *Client) exchangeToken(ctx context.Context) (*tokenResponse, error) {
	form := url.Values{}
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, apperrors.Authentication("Failed to build token request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("igdb: token exchange failed: %v", err)
		return nil, apperrors.Authentication("Failed to authenticate with game catalog", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Authentication("Failed to read token response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Error("igdb: token exchange status=%d body=%s", resp.StatusCode, logger.Truncate(string(body), maxLoggedBody))
		return nil, apperrors.Authentication("Failed to authenticate with game catalog", fmt.Errorf("token HTTP %d", resp.StatusCode))
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, apperrors.Authentication("Malformed token response", err)
	}
	if token.AccessToken == "" {
		return nil, apperrors.Authentication("Malformed token response", fmt.Errorf("empty access_token"))
	}

	return &token, nil
}
