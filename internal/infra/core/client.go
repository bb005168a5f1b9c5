// Package core provides the client for the Inmonea core API.
// Every request is decorated with the session's upstream access token
// and tenant scope, the way the SPA's HTTP layer did it.
package core

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
	"github.com/inmonea/inmonea-bff-go/internal/infra/observability"
	"github.com/inmonea/inmonea-bff-go/internal/infra/resilience"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("core")

// Client wraps HTTP calls to the core API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cb         *gobreaker.CircuitBreaker
	bulkhead   *resilience.Bulkhead
	cfg        resilience.Config
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewClient creates a core API client.
func NewClient(httpClient *http.Client, baseURL string, cb *gobreaker.CircuitBreaker, bulkhead *resilience.Bulkhead, cfg resilience.Config, metrics *observability.Metrics, logger *zap.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		cb:         cb,
		bulkhead:   bulkhead,
		cfg:        cfg,
		metrics:    metrics,
		logger:     logger,
	}
}

// Ping checks core API reachability for the health endpoint. It skips
// the breaker and retries: any response below 500 proves the service
// is up.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.ErrUpstream{Service: "core", Err: err}
	}
	resp.Body.Close()

	if resp.StatusCode >= 500 {
		return &domain.ErrUpstream{Service: "core", Status: resp.StatusCode}
	}
	return nil
}

// doRequest executes one request against the core API. A nil session is
// allowed for public endpoints (login, email verification).
func (c *Client) doRequest(ctx context.Context, method, path string, payload any, sess *domain.Session) ([]byte, error) {
	if err := c.bulkhead.Acquire(ctx); err != nil {
		return nil, err
	}
	defer c.bulkhead.Release()

	var reqBody io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	url := fmt.Sprintf("%s/api/v1/%s", c.baseURL, path)
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if sess != nil {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", sess.AccessToken))
		if sess.User.TenantID != "" {
			req.Header.Set("X-Tenant-ID", sess.User.TenantID)
		}
	}

	c.metrics.IncrUpstreamCall("core")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.IncrUpstreamError("core")
		c.logger.Error("core: request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, &domain.ErrUpstream{Service: "core", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.IncrUpstreamError("core")
		return nil, &domain.ErrUpstream{Service: "core", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.StatusCode >= 500 {
			c.metrics.IncrUpstreamError("core")
		}
		c.logger.Warn("core: non-2xx response",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)),
		)
		return nil, mapStatus(resp.StatusCode, body)
	}

	c.logger.Debug("core: request OK",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
	)

	return body, nil
}

// doRaw is doRequest plus the response Content-Type, for blob passthrough
// endpoints (CSV exports).
func (c *Client) doRaw(ctx context.Context, method, path string, sess *domain.Session) ([]byte, string, error) {
	if err := c.bulkhead.Acquire(ctx); err != nil {
		return nil, "", err
	}
	defer c.bulkhead.Release()

	url := fmt.Sprintf("%s/api/v1/%s", c.baseURL, path)
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, "", err
	}
	if sess != nil {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", sess.AccessToken))
		if sess.User.TenantID != "" {
			req.Header.Set("X-Tenant-ID", sess.User.TenantID)
		}
	}

	c.metrics.IncrUpstreamCall("core")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.IncrUpstreamError("core")
		return nil, "", &domain.ErrUpstream{Service: "core", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &domain.ErrUpstream{Service: "core", Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", mapStatus(resp.StatusCode, body)
	}

	return body, resp.Header.Get("Content-Type"), nil
}
