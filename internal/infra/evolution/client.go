// Package evolution provides a thin client for the WhatsApp gateway
// (Evolution API), used by the admin panel's gateway health watcher.
package evolution

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
	"github.com/inmonea/inmonea-bff-go/internal/infra/observability"
	"github.com/inmonea/inmonea-bff-go/internal/infra/resilience"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("evolution")

// Instance names follow the "tenant_{tenant_id}" convention.
const instancePrefix = "tenant_"

// Client wraps HTTP calls to the Evolution API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	cb         *gobreaker.CircuitBreaker
	cfg        resilience.Config
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewClient creates an Evolution API client.
func NewClient(httpClient *http.Client, baseURL, apiKey string, cb *gobreaker.CircuitBreaker, cfg resilience.Config, metrics *observability.Metrics, logger *zap.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		cb:         cb,
		cfg:        cfg,
		metrics:    metrics,
		logger:     logger,
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	c.metrics.IncrUpstreamCall("evolution")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.IncrUpstreamError("evolution")
		c.logger.Error("evolution: request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, &domain.ErrUpstream{Service: "evolution", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.IncrUpstreamError("evolution")
		return nil, &domain.ErrUpstream{Service: "evolution", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.metrics.IncrUpstreamError("evolution")
		c.logger.Warn("evolution: non-2xx response",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return nil, &domain.ErrUpstream{Service: "evolution", Status: resp.StatusCode, Detail: string(body)}
	}

	return body, nil
}

type evolutionInstance struct {
	Instance struct {
		InstanceName string `json:"instanceName"`
		State        string `json:"state"`
	} `json:"instance"`
}

// FetchInstances lists all gateway instances with their connection state.
func (c *Client) FetchInstances(ctx context.Context) ([]domain.GatewayInstance, error) {
	ctx, span := tracer.Start(ctx, "Evolution.FetchInstances")
	defer span.End()

	var instances []domain.GatewayInstance

	_, err := c.cb.Execute(func() (any, error) {
		return nil, resilience.RetryWithBackoff(ctx, c.cfg, func() error {
			body, err := c.doRequest(ctx, http.MethodGet, "/instance/fetchInstances")
			if err != nil {
				return err
			}

			var rows []evolutionInstance
			if err := json.Unmarshal(body, &rows); err != nil {
				return resilience.Permanent(fmt.Errorf("decode instances: %w", err))
			}

			now := time.Now().Format(time.RFC3339)
			instances = make([]domain.GatewayInstance, 0, len(rows))
			for _, row := range rows {
				state := domain.WhatsAppDisconnected
				if row.Instance.State == "open" {
					state = domain.WhatsAppConnected
				}
				instances = append(instances, domain.GatewayInstance{
					InstanceName: row.Instance.InstanceName,
					TenantID:     strings.TrimPrefix(row.Instance.InstanceName, instancePrefix),
					State:        state,
					CheckedAt:    now,
				})
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return instances, nil
}

// ConnectionState fetches the state of one instance. "open" means the
// phone is paired and connected.
func (c *Client) ConnectionState(ctx context.Context, instanceName string) (string, error) {
	ctx, span := tracer.Start(ctx, "Evolution.ConnectionState")
	defer span.End()

	body, err := c.doRequest(ctx, http.MethodGet, "/instance/connectionState/"+instanceName)
	if err != nil {
		return "", err
	}

	var resp struct {
		Instance struct {
			State string `json:"state"`
		} `json:"instance"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decode connection state: %w", err)
	}

	if resp.Instance.State == "open" {
		return domain.WhatsAppConnected, nil
	}
	return domain.WhatsAppDisconnected, nil
}

// LogoutInstance disconnects one instance at the gateway.
func (c *Client) LogoutInstance(ctx context.Context, instanceName string) error {
	ctx, span := tracer.Start(ctx, "Evolution.LogoutInstance")
	defer span.End()

	_, err := c.doRequest(ctx, http.MethodDelete, "/instance/logout/"+instanceName)
	return err
}
