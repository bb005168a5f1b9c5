package service

import (
	"context"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
	"github.com/inmonea/inmonea-bff-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var dashboardTracer = otel.Tracer("service/dashboard")

// DashboardService aggregates the landing-page metric cards. Contracts
// and charges are fetched concurrently; one failure fails the whole
// aggregate rather than rendering partial cards.
type DashboardService struct {
	contracts port.ContractStore
	logger    *zap.Logger
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(contracts port.ContractStore, logger *zap.Logger) *DashboardService {
	return &DashboardService{contracts: contracts, logger: logger}
}

// Metrics computes the active-contract count, projected monthly income
// and pending-charge count for the session's tenant.
func (s *DashboardService) Metrics(ctx context.Context, sess *domain.Session) (*domain.DashboardMetrics, error) {
	ctx, span := dashboardTracer.Start(ctx, "DashboardService.Metrics")
	defer span.End()

	var (
		contracts []domain.Contract
		charges   []domain.Charge
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		contracts, err = s.contracts.ListContracts(gctx, sess)
		return err
	})
	g.Go(func() error {
		var err error
		charges, err = s.contracts.ListCharges(gctx, sess)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	m := &domain.DashboardMetrics{}
	for _, ct := range contracts {
		if ct.Status != domain.ContractActive {
			continue
		}
		m.ActiveContracts++
		rent := ct.CurrentRent
		if rent == 0 {
			rent = ct.MonthlyRent
		}
		m.MonthlyIncome += rent
	}
	for _, ch := range charges {
		if ch.Status == domain.ChargePending {
			m.PendingCharges++
		}
	}

	return m, nil
}
