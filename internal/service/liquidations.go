package service

import (
	"context"
	"regexp"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
	"github.com/inmonea/inmonea-bff-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var liquidationTracer = otel.Tracer("service/liquidations")

// periodPattern matches the wizard's MM/YYYY period input.
var periodPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{4}$`)

// LiquidationService drives the settlement wizard. The BFF holds no
// wizard state: step 1 validates and creates the draft, step 2 renders
// the computed items verbatim, step 3 confirms. Abandoned drafts just
// stay drafts upstream.
type LiquidationService struct {
	store  port.BillingStore
	logger *zap.Logger
}

// NewLiquidationService creates a new liquidation service.
func NewLiquidationService(store port.BillingStore, logger *zap.Logger) *LiquidationService {
	return &LiquidationService{store: store, logger: logger}
}

// CreateDraft validates step 1 and opens the draft. A missing contract
// selection is rejected here — no upstream request is made.
func (s *LiquidationService) CreateDraft(ctx context.Context, sess *domain.Session, req *domain.CreateLiquidationRequest) (*domain.Liquidation, error) {
	ctx, span := liquidationTracer.Start(ctx, "LiquidationService.CreateDraft")
	defer span.End()
	span.SetAttributes(attribute.Int64("contract.id", req.ContractID))

	if req.ContractID == 0 {
		return nil, &domain.ErrValidation{Field: "contract_id", Message: "Debe seleccionar un contrato"}
	}
	if !periodPattern.MatchString(req.Period) {
		return nil, &domain.ErrValidation{Field: "period", Message: "El período debe tener formato MM/YYYY"}
	}

	liq, err := s.store.CreateLiquidation(ctx, sess, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("liquidation draft created",
		zap.Int64("liquidation_id", liq.ID),
		zap.Int64("contract_id", req.ContractID),
		zap.String("period", req.Period),
	)
	return liq, nil
}

// Get fetches a liquidation with its computed items. Amounts come from
// the core API and are never recomputed here.
func (s *LiquidationService) Get(ctx context.Context, sess *domain.Session, id int64) (*domain.Liquidation, error) {
	ctx, span := liquidationTracer.Start(ctx, "LiquidationService.Get")
	defer span.End()

	return s.store.GetLiquidation(ctx, sess, id)
}

// Confirm promotes a draft to SENT.
func (s *LiquidationService) Confirm(ctx context.Context, sess *domain.Session, id int64) (*domain.Liquidation, error) {
	ctx, span := liquidationTracer.Start(ctx, "LiquidationService.Confirm")
	defer span.End()
	span.SetAttributes(attribute.Int64("liquidation.id", id))

	liq, err := s.store.ConfirmLiquidation(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("liquidation confirmed",
		zap.Int64("liquidation_id", id),
		zap.String("status", liq.Status),
	)
	return liq, nil
}
