package service

import (
	"context"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
	"github.com/inmonea/inmonea-bff-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var paymentTracer = otel.Tracer("service/payments")

// PaymentService exposes the Mercado Pago checkout flows and the plan
// catalog. Preferences are created upstream; the BFF only hands the
// init_point back to the SPA.
type PaymentService struct {
	store  port.BillingStore
	logger *zap.Logger
}

// NewPaymentService creates a new payment service.
func NewPaymentService(store port.BillingStore, logger *zap.Logger) *PaymentService {
	return &PaymentService{store: store, logger: logger}
}

// ChargePreference creates a checkout preference for a tenant charge.
func (s *PaymentService) ChargePreference(ctx context.Context, sess *domain.Session, chargeID int64) (*domain.PaymentPreference, error) {
	ctx, span := paymentTracer.Start(ctx, "PaymentService.ChargePreference")
	defer span.End()
	span.SetAttributes(attribute.Int64("charge.id", chargeID))

	return s.store.ChargePaymentPreference(ctx, sess, chargeID)
}

// UpgradePlan creates a checkout preference for a plan upgrade. The
// lite plan is the floor, so it is never a valid upgrade target.
func (s *PaymentService) UpgradePlan(ctx context.Context, sess *domain.Session, req *domain.UpgradePlanRequest) (*domain.PaymentPreference, error) {
	ctx, span := paymentTracer.Start(ctx, "PaymentService.UpgradePlan")
	defer span.End()
	span.SetAttributes(attribute.String("plan.target", req.NewPlan))

	switch req.NewPlan {
	case domain.PlanBasic, domain.PlanPremium:
	default:
		return nil, &domain.ErrValidation{Field: "new_plan", Message: "Plan inválido"}
	}

	pref, err := s.store.UpgradePlanPreference(ctx, sess, req.NewPlan)
	if err != nil {
		return nil, err
	}

	s.logger.Info("plan upgrade preference created",
		zap.String("tenant_id", sess.User.TenantID),
		zap.String("new_plan", req.NewPlan),
	)
	return pref, nil
}

// Plans returns the static plan catalog.
func (s *PaymentService) Plans() []domain.Plan {
	return []domain.Plan{
		{Name: domain.PlanLite, Price: 0},
		{Name: domain.PlanBasic, Price: domain.PlanBasicPrice},
		{Name: domain.PlanPremium, Price: domain.PlanPremiumPrice},
	}
}
