package core

import (
	"context"
	"fmt"
	"net/http"

	"github.com/inmonea/inmonea-bff-go/internal/domain"

	"go.opentelemetry.io/otel/attribute"
)

// ListTenants fetches every agency account. SUPERADMIN only upstream.
func (c *Client) ListTenants(ctx context.Context, sess *domain.Session) ([]domain.Tenant, error) {
	ctx, span := tracer.Start(ctx, "Core.ListTenants")
	defer span.End()

	tenants := []domain.Tenant{}
	if err := c.get(ctx, "admin/tenants", sess, &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}

// GetTenant fetches one agency account.
func (c *Client) GetTenant(ctx context.Context, sess *domain.Session, id string) (*domain.Tenant, error) {
	ctx, span := tracer.Start(ctx, "Core.GetTenant")
	defer span.End()
	span.SetAttributes(attribute.String("tenant.id", id))

	var t domain.Tenant
	if err := c.get(ctx, fmt.Sprintf("admin/tenants/%s", id), sess, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTenant provisions a new agency account.
func (c *Client) CreateTenant(ctx context.Context, sess *domain.Session, req *domain.CreateTenantRequest) (*domain.Tenant, error) {
	ctx, span := tracer.Start(ctx, "Core.CreateTenant")
	defer span.End()
	span.SetAttributes(attribute.String("tenant.name", req.Name))

	var t domain.Tenant
	if err := c.send(ctx, http.MethodPost, "admin/tenants", req, sess, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTenant applies a partial update (single toggles from the console).
func (c *Client) UpdateTenant(ctx context.Context, sess *domain.Session, id string, req *domain.UpdateTenantRequest) (*domain.Tenant, error) {
	ctx, span := tracer.Start(ctx, "Core.UpdateTenant")
	defer span.End()
	span.SetAttributes(attribute.String("tenant.id", id))

	var t domain.Tenant
	if err := c.send(ctx, http.MethodPatch, fmt.Sprintf("admin/tenants/%s", id), req, sess, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ForceDeleteTenant hard-deletes an agency and all its data. The name
// confirmation precondition is enforced before this is ever called.
func (c *Client) ForceDeleteTenant(ctx context.Context, sess *domain.Session, id string) error {
	ctx, span := tracer.Start(ctx, "Core.ForceDeleteTenant")
	defer span.End()
	span.SetAttributes(attribute.String("tenant.id", id))

	return c.send(ctx, http.MethodDelete, fmt.Sprintf("admin/tenants/%s/force", id), nil, sess, nil)
}

// ListBillingRecords fetches the platform billing history.
func (c *Client) ListBillingRecords(ctx context.Context, sess *domain.Session) ([]domain.BillingRecord, error) {
	ctx, span := tracer.Start(ctx, "Core.ListBillingRecords")
	defer span.End()

	records := []domain.BillingRecord{}
	if err := c.get(ctx, "admin/billing", sess, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ListAuditEntries fetches the admin audit log.
func (c *Client) ListAuditEntries(ctx context.Context, sess *domain.Session) ([]domain.AuditEntry, error) {
	ctx, span := tracer.Start(ctx, "Core.ListAuditEntries")
	defer span.End()

	entries := []domain.AuditEntry{}
	if err := c.get(ctx, "admin/audit", sess, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
