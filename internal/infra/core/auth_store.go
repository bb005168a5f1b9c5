package core

import (
	"context"
	"net/http"
	"net/url"

	"github.com/inmonea/inmonea-bff-go/internal/domain"

	"go.opentelemetry.io/otel/attribute"
)

// loginResponse is the core API's body for both login endpoints.
type loginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        domain.User `json:"user"`
}

// LoginTenant authenticates an agency by name + password.
func (c *Client) LoginTenant(ctx context.Context, req *domain.TenantLoginRequest) (string, *domain.User, error) {
	ctx, span := tracer.Start(ctx, "Core.LoginTenant")
	defer span.End()
	span.SetAttributes(attribute.String("tenant.name", req.NombreInmobiliaria))

	var resp loginResponse
	if err := c.send(ctx, http.MethodPost, "auth/login/tenant", req, nil, &resp); err != nil {
		return "", nil, err
	}
	return resp.AccessToken, &resp.User, nil
}

// LoginAdmin authenticates a platform admin by email + password.
func (c *Client) LoginAdmin(ctx context.Context, req *domain.AdminLoginRequest) (string, *domain.User, error) {
	ctx, span := tracer.Start(ctx, "Core.LoginAdmin")
	defer span.End()

	var resp loginResponse
	if err := c.send(ctx, http.MethodPost, "auth/login/admin", req, nil, &resp); err != nil {
		return "", nil, err
	}
	return resp.AccessToken, &resp.User, nil
}

// VerifyEmail redeems an email verification token. Not retried: the
// token is single-use upstream.
func (c *Client) VerifyEmail(ctx context.Context, token string) (*domain.VerifyEmailResponse, error) {
	ctx, span := tracer.Start(ctx, "Core.VerifyEmail")
	defer span.End()

	var resp domain.VerifyEmailResponse
	path := "auth/verify-email?token=" + url.QueryEscape(token)
	if err := c.send(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ChangePassword updates the current user's password.
func (c *Client) ChangePassword(ctx context.Context, sess *domain.Session, req *domain.ChangePasswordRequest) error {
	ctx, span := tracer.Start(ctx, "Core.ChangePassword")
	defer span.End()

	return c.send(ctx, http.MethodPut, "auth/password", req, sess, nil)
}

// UpdatePreferences merges UI preferences (theme) for the current user.
func (c *Client) UpdatePreferences(ctx context.Context, sess *domain.Session, prefs map[string]any) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "Core.UpdatePreferences")
	defer span.End()

	var user domain.User
	payload := map[string]any{"preferences": prefs}
	if err := c.send(ctx, http.MethodPatch, "auth/preferences", payload, sess, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
