package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
	"github.com/inmonea/inmonea-bff-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var adminTracer = otel.Tracer("service/admin")

// AdminService backs the super-admin console: tenant management, the
// platform billing history, the audit log and the gateway health panel.
type AdminService struct {
	store   port.AdminStore
	gateway *GatewayMonitor
	logger  *zap.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(store port.AdminStore, gateway *GatewayMonitor, logger *zap.Logger) *AdminService {
	return &AdminService{
		store:   store,
		gateway: gateway,
		logger:  logger,
	}
}

// ListTenants fetches all agencies and filters by a case-insensitive
// substring on name or email, over the full snapshot.
func (s *AdminService) ListTenants(ctx context.Context, sess *domain.Session, query string) ([]domain.Tenant, error) {
	ctx, span := adminTracer.Start(ctx, "AdminService.ListTenants")
	defer span.End()

	tenants, err := s.store.ListTenants(ctx, sess)
	if err != nil {
		return nil, err
	}

	if query != "" {
		q := strings.ToLower(query)
		filtered := make([]domain.Tenant, 0, len(tenants))
		for _, t := range tenants {
			if strings.Contains(strings.ToLower(t.Name), q) ||
				strings.Contains(strings.ToLower(t.Email), q) {
				filtered = append(filtered, t)
			}
		}
		tenants = filtered
	}

	return tenants, nil
}

// CreateTenant validates and provisions an agency account.
func (s *AdminService) CreateTenant(ctx context.Context, sess *domain.Session, req *domain.CreateTenantRequest) (*domain.Tenant, error) {
	ctx, span := adminTracer.Start(ctx, "AdminService.CreateTenant")
	defer span.End()
	span.SetAttributes(attribute.String("tenant.name", req.Name))

	if strings.TrimSpace(req.Name) == "" {
		return nil, &domain.ErrValidation{Field: "name", Message: "El nombre es obligatorio"}
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, &domain.ErrValidation{Field: "email", Message: "El email es obligatorio"}
	}
	if req.Password == "" {
		return nil, &domain.ErrValidation{Field: "password", Message: "La contraseña es obligatoria"}
	}
	if req.Plan == "" {
		req.Plan = domain.PlanLite
	}
	if !validPlan(req.Plan) {
		return nil, &domain.ErrValidation{Field: "plan", Message: "Plan inválido"}
	}

	tenant, err := s.store.CreateTenant(ctx, sess, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("tenant created",
		zap.String("tenant_id", tenant.ID),
		zap.String("name", tenant.Name),
		zap.String("plan", tenant.Plan),
	)
	return tenant, nil
}

// UpdateTenant applies one or more independent field updates.
func (s *AdminService) UpdateTenant(ctx context.Context, sess *domain.Session, id string, req *domain.UpdateTenantRequest) (*domain.Tenant, error) {
	ctx, span := adminTracer.Start(ctx, "AdminService.UpdateTenant")
	defer span.End()
	span.SetAttributes(attribute.String("tenant.id", id))

	if req.IsActive == nil && req.Plan == nil && req.WhatsappEnabled == nil && req.Preferences == nil {
		return nil, &domain.ErrValidation{Field: "body", Message: "Ningún campo para actualizar"}
	}
	if req.Plan != nil && !validPlan(*req.Plan) {
		return nil, &domain.ErrValidation{Field: "plan", Message: "Plan inválido"}
	}

	return s.store.UpdateTenant(ctx, sess, id, req)
}

// ForceDelete hard-deletes a tenant. Preconditions are checked before
// any upstream call: the typed name must match exactly (case-sensitive)
// and the master tenant is untouchable.
func (s *AdminService) ForceDelete(ctx context.Context, sess *domain.Session, id string, req *domain.ForceDeleteRequest) error {
	ctx, span := adminTracer.Start(ctx, "AdminService.ForceDelete")
	defer span.End()
	span.SetAttributes(attribute.String("tenant.id", id))

	tenant, err := s.store.GetTenant(ctx, sess, id)
	if err != nil {
		return err
	}

	if tenant.Name == domain.MasterTenantName {
		return &domain.ErrProtectedTenant{}
	}
	if req.ConfirmName != tenant.Name {
		return &domain.ErrValidation{
			Field:   "confirm_name",
			Message: "El nombre ingresado no coincide con el nombre de la inmobiliaria",
		}
	}

	if err := s.store.ForceDeleteTenant(ctx, sess, id); err != nil {
		return err
	}

	// The tenant record is gone; shutting down its WhatsApp instance is
	// best-effort. A gateway failure here only logs.
	if err := s.gateway.DisconnectTenant(ctx, id); err != nil {
		s.logger.Warn("gateway instance logout failed after force delete",
			zap.String("tenant_id", id),
			zap.Error(err),
		)
	}

	s.logger.Warn("tenant force-deleted",
		zap.String("tenant_id", id),
		zap.String("tenant_name", tenant.Name),
		zap.String("actor", sess.User.Email),
	)
	return nil
}

// BillingHistory fetches the platform billing records.
func (s *AdminService) BillingHistory(ctx context.Context, sess *domain.Session) ([]domain.BillingRecord, error) {
	ctx, span := adminTracer.Start(ctx, "AdminService.BillingHistory")
	defer span.End()

	return s.store.ListBillingRecords(ctx, sess)
}

// AuditLog fetches the admin audit entries.
func (s *AdminService) AuditLog(ctx context.Context, sess *domain.Session) ([]domain.AuditEntry, error) {
	ctx, span := adminTracer.Start(ctx, "AdminService.AuditLog")
	defer span.End()

	return s.store.ListAuditEntries(ctx, sess)
}

// GatewayHealth returns the watcher's latest gateway snapshot.
func (s *AdminService) GatewayHealth() domain.GatewayHealth {
	return s.gateway.Snapshot()
}

// ProbeGatewayInstance fetches one instance's live connection state
// from the gateway, for on-demand checks from the admin panel.
func (s *AdminService) ProbeGatewayInstance(ctx context.Context, instanceName string) (domain.GatewayInstance, error) {
	ctx, span := adminTracer.Start(ctx, "AdminService.ProbeGatewayInstance")
	defer span.End()
	span.SetAttributes(attribute.String("gateway.instance", instanceName))

	return s.gateway.ProbeInstance(ctx, instanceName)
}

// ExportTenantsCSV builds the tenant backup file. The UTF-8 BOM keeps
// Excel from mangling accented names.
func (s *AdminService) ExportTenantsCSV(ctx context.Context, sess *domain.Session) ([]byte, error) {
	ctx, span := adminTracer.Start(ctx, "AdminService.ExportTenantsCSV")
	defer span.End()

	tenants, err := s.store.ListTenants(ctx, sess)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id", "name", "email", "plan", "is_active", "whatsapp_enabled", "status", "created_at"}); err != nil {
		return nil, err
	}
	for _, t := range tenants {
		record := []string{
			t.ID,
			t.Name,
			t.Email,
			t.Plan,
			fmt.Sprintf("%t", t.IsActive),
			fmt.Sprintf("%t", t.WhatsappEnabled),
			t.Status,
			t.CreatedAt,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func validPlan(plan string) bool {
	switch plan {
	case domain.PlanLite, domain.PlanBasic, domain.PlanPremium:
		return true
	}
	return false
}
