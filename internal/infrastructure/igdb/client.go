// Package igdb is the single point of contact with the IGDB game catalog. It
// owns the Twitch access token, builds Apicalypse queries and normalizes the
// catalog's nested response shapes into entity.Game records.
package igdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"sweaty/internal/infrastructure/metrics"
	apperrors "sweaty/pkg/errors"
	"sweaty/pkg/logger"
)

const (
	defaultBaseURL    = "https://api.igdb.com/v4"
	defaultTokenURL   = "https://id.twitch.tv/oauth2/token"
	defaultBatchSize  = 100
	defaultBatchDelay = 250 * time.Millisecond
	maxLoggedBody     = 512
	breakerName       = "igdb-api"
)

// errCallerGone marks failures caused by the caller's own context ending.
var errCallerGone = errors.New("igdb: caller context ended")

type Config struct {
	ClientID     string
	ClientSecret string

	BaseURL    string
	TokenURL   string
	HTTPClient *http.Client
	Clock      Clock

	// BatchSize is the catalog's per-call result ceiling.
	BatchSize  int
	BatchDelay time.Duration
}

type Client struct {
	clientID     string
	clientSecret string
	baseURL      string
	tokenURL     string
	httpClient   *http.Client
	clock        Clock
	batchSize    int
	batchDelay   time.Duration

	cache   *tokenCache
	breaker *gobreaker.CircuitBreaker[[]byte]
}

func NewClient(cfg Config) *Client {
	c := &Client{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		baseURL:      cfg.BaseURL,
		tokenURL:     cfg.TokenURL,
		httpClient:   cfg.HTTPClient,
		clock:        cfg.Clock,
		batchSize:    cfg.BatchSize,
		batchDelay:   cfg.BatchDelay,
		cache:        &tokenCache{},
	}

	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	if c.tokenURL == "" {
		c.tokenURL = defaultTokenURL
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if c.clock == nil {
		c.clock = systemClock{}
	}
	if c.batchSize <= 0 {
		c.batchSize = defaultBatchSize
	}
	if c.batchDelay <= 0 {
		c.batchDelay = defaultBatchDelay
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)
	c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		// Rejected queries and abandoned calls are not outages.
		IsSuccessful: func(err error) bool {
			return err == nil || apperrors.Is(err, apperrors.CodeCatalogQuery) || errors.Is(err, errCallerGone)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Event("igdb.breaker_state").Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})

	return c
}

// query authenticates, posts an Apicalypse body to endpoint and decodes the
// JSON reply into dst.
func (c *Client) query(ctx context.Context, endpoint, body string, dst interface{}) error {
	token, err := c.Authenticate(ctx)
	if err != nil {
		return err
	}

	raw, err := c.breaker.Execute(func() ([]byte, error) {
		payload, err := c.post(ctx, token, endpoint, body)
		if err != nil && ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", errCallerGone, err)
		}
		return payload, err
	})
	if err != nil {
		switch {
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			metrics.CatalogRequests.WithLabelValues(endpoint, "rejected").Inc()
			return apperrors.Catalog("Game catalog is temporarily unavailable", err)
		case errors.Is(err, errCallerGone):
			return apperrors.Catalog("Game catalog request was cancelled", ctx.Err())
		}
		return err
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		metrics.CatalogRequests.WithLabelValues(endpoint, "malformed").Inc()
		logger.Error("igdb: undecodable %s response: %v body=%s", endpoint, err, logger.Truncate(string(raw), maxLoggedBody))
		return apperrors.Parse("Failed to parse game catalog response", err)
	}

	return nil
}

func (c *Client) post(ctx context.Context, token, endpoint, body string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint, bytes.NewBufferString(body))
	if err != nil {
		return nil, apperrors.Catalog("Failed to build catalog request", err)
	}
	req.Header.Set("Client-ID", c.clientID)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.CatalogRequests.WithLabelValues(endpoint, "network_error").Inc()
		logger.Error("igdb: %s request failed: %v", endpoint, err)
		return nil, apperrors.Catalog("Failed to reach game catalog", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.CatalogRequests.WithLabelValues(endpoint, "network_error").Inc()
		return nil, apperrors.Catalog("Failed to read game catalog response", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		metrics.CatalogRequests.WithLabelValues(endpoint, "ok").Inc()
		return payload, nil
	case resp.StatusCode == http.StatusBadRequest:
		metrics.CatalogRequests.WithLabelValues(endpoint, "query_error").Inc()
		logger.Warn("igdb: %s rejected query status=%d body=%s", endpoint, resp.StatusCode, logger.Truncate(string(payload), maxLoggedBody))
		return nil, apperrors.CatalogQuery("Game catalog rejected the query", fmt.Errorf("igdb: HTTP %d", resp.StatusCode))
	case resp.StatusCode == http.StatusUnauthorized:
		// Token revoked upstream; the next call exchanges a fresh one.
		c.cache.reset()
		fallthrough
	default:
		metrics.CatalogRequests.WithLabelValues(endpoint, "http_error").Inc()
		logger.Error("igdb: %s failed status=%d body=%s", endpoint, resp.StatusCode, logger.Truncate(string(payload), maxLoggedBody))
		return nil, apperrors.Catalog("Game catalog request failed", fmt.Errorf("igdb: HTTP %d", resp.StatusCode))
	}
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
