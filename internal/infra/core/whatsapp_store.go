package core

import (
	"context"
	"net/http"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
)

// FetchStatus fetches the raw WhatsApp connection status for the
// session's tenant. Error-to-state mapping (403 → ERROR, anything
// else → NOT_CREATED) lives in the service layer.
func (c *Client) FetchStatus(ctx context.Context, sess *domain.Session) (*domain.WhatsAppStatus, error) {
	ctx, span := tracer.Start(ctx, "Core.WhatsAppFetchStatus")
	defer span.End()

	var st domain.WhatsAppStatus
	if err := c.get(ctx, "whatsapp/status", sess, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// Connect creates/links the tenant's instance and returns the pairing QR.
func (c *Client) Connect(ctx context.Context, sess *domain.Session) (*domain.WhatsAppStatus, error) {
	ctx, span := tracer.Start(ctx, "Core.WhatsAppConnect")
	defer span.End()

	var st domain.WhatsAppStatus
	if err := c.send(ctx, http.MethodPost, "whatsapp/connect", nil, sess, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// Logout disconnects the tenant's instance.
func (c *Client) Logout(ctx context.Context, sess *domain.Session) error {
	ctx, span := tracer.Start(ctx, "Core.WhatsAppLogout")
	defer span.End()

	return c.send(ctx, http.MethodPost, "whatsapp/logout", nil, sess, nil)
}

// ListSessions fetches the tenant's messaging session records.
func (c *Client) ListSessions(ctx context.Context, sess *domain.Session) ([]domain.WhatsAppSession, error) {
	ctx, span := tracer.Start(ctx, "Core.WhatsAppListSessions")
	defer span.End()

	sessions := []domain.WhatsAppSession{}
	if err := c.get(ctx, "whatsapp/sessions", sess, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// CreateSession registers a new messaging session record.
func (c *Client) CreateSession(ctx context.Context, sess *domain.Session) (*domain.WhatsAppSession, error) {
	ctx, span := tracer.Start(ctx, "Core.WhatsAppCreateSession")
	defer span.End()

	var ws domain.WhatsAppSession
	if err := c.send(ctx, http.MethodPost, "whatsapp/sessions/create", nil, sess, &ws); err != nil {
		return nil, err
	}
	return &ws, nil
}
