package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
	"github.com/inmonea/inmonea-bff-go/internal/infra/resilience"

	"github.com/sony/gobreaker"
)

// ============================================================
// Status mapping, breaker/retry wrappers
// ============================================================

// upstreamDetail is the core API's error envelope ({"detail": "..."}).
type upstreamDetail struct {
	Detail string `json:"detail"`
}

// mapStatus converts a non-2xx core API response into a domain error.
// 401 becomes a session expiry so the handler layer can tell the SPA to
// drop its session and return to /login.
func mapStatus(status int, body []byte) error {
	var env upstreamDetail
	_ = json.Unmarshal(body, &env)
	detail := env.Detail
	if detail == "" {
		detail = strings.TrimSpace(string(body))
	}

	switch status {
	case http.StatusUnauthorized:
		return &domain.ErrSessionExpired{}
	case http.StatusForbidden:
		if strings.Contains(detail, "plan superior") {
			return &domain.ErrPlanRequired{}
		}
		return &domain.ErrForbidden{Message: detail}
	case http.StatusNotFound:
		return &domain.ErrNotFound{Resource: "recurso", ID: detail}
	case http.StatusConflict:
		return &domain.ErrConflict{Message: detail}
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return &domain.ErrValidation{Field: "body", Message: detail}
	default:
		return &domain.ErrUpstream{Service: "core", Status: status, Detail: detail}
	}
}

// isRetryable reports whether a request is worth repeating: network
// failures and 5xx responses, never 4xx rejections.
func isRetryable(err error) bool {
	var up *domain.ErrUpstream
	if errors.As(err, &up) {
		return up.Err != nil || up.Status >= 500
	}
	return false
}

// get runs a GET through the circuit breaker with retry and decodes the
// response into out (skipped when out is nil).
func (c *Client) get(ctx context.Context, path string, sess *domain.Session, out any) error {
	_, err := c.cb.Execute(func() (any, error) {
		return nil, resilience.RetryWithBackoff(ctx, c.cfg, func() error {
			body, err := c.doRequest(ctx, http.MethodGet, path, nil, sess)
			if err != nil {
				if isRetryable(err) {
					return err
				}
				return resilience.Permanent(err)
			}
			if out == nil || len(body) == 0 {
				return nil
			}
			if err := json.Unmarshal(body, out); err != nil {
				return resilience.Permanent(fmt.Errorf("decode %s: %w", path, err))
			}
			return nil
		})
	})
	return c.translate(err)
}

// send runs a mutating request through the circuit breaker. Mutations
// are never retried — the core API does not take idempotency keys.
func (c *Client) send(ctx context.Context, method, path string, payload any, sess *domain.Session, out any) error {
	_, err := c.cb.Execute(func() (any, error) {
		body, err := c.doRequest(ctx, method, path, payload, sess)
		if err != nil {
			return nil, err
		}
		if out != nil && len(body) > 0 {
			if err := json.Unmarshal(body, out); err != nil {
				return nil, fmt.Errorf("decode %s: %w", path, err)
			}
		}
		return nil, nil
	})
	return c.translate(err)
}

// translate normalizes breaker and context errors.
func (c *Client) translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return &domain.ErrCircuitOpen{Service: "core"}
	case errors.Is(err, context.DeadlineExceeded):
		return &domain.ErrTimeout{Operation: "core api"}
	default:
		return err
	}
}
