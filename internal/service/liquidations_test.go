package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
	"github.com/inmonea/inmonea-bff-go/internal/service"

	"go.uber.org/zap"
)

// --- Mocks ---

type mockBillingStore struct {
	liquidation *domain.Liquidation
	err         error

	createCalls  int
	confirmCalls int
}

func (m *mockBillingStore) CreateLiquidation(_ context.Context, _ *domain.Session, req *domain.CreateLiquidationRequest) (*domain.Liquidation, error) {
	m.createCalls++
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Liquidation{ID: 10, ContractID: req.ContractID, Period: req.Period, Status: domain.LiquidationDraft}, nil
}

func (m *mockBillingStore) GetLiquidation(_ context.Context, _ *domain.Session, _ int64) (*domain.Liquidation, error) {
	return m.liquidation, m.err
}

func (m *mockBillingStore) ConfirmLiquidation(_ context.Context, _ *domain.Session, id int64) (*domain.Liquidation, error) {
	m.confirmCalls++
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Liquidation{ID: id, Status: domain.LiquidationSent}, nil
}

func (m *mockBillingStore) ChargePaymentPreference(_ context.Context, _ *domain.Session, _ int64) (*domain.PaymentPreference, error) {
	return &domain.PaymentPreference{InitPoint: "https://mp.test/checkout"}, nil
}

func (m *mockBillingStore) UpgradePlanPreference(_ context.Context, _ *domain.Session, _ string) (*domain.PaymentPreference, error) {
	return &domain.PaymentPreference{InitPoint: "https://mp.test/upgrade"}, nil
}

// --- Tests ---

func TestCreateDraft_MissingContractRejectedLocally(t *testing.T) {
	store := &mockBillingStore{}
	svc := service.NewLiquidationService(store, zap.NewNop())

	_, err := svc.CreateDraft(context.Background(), testSession(), &domain.CreateLiquidationRequest{
		Period: "03/2026",
	})
	var validation *domain.ErrValidation
	if !errors.As(err, &validation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if validation.Field != "contract_id" {
		t.Errorf("expected field 'contract_id', got '%s'", validation.Field)
	}
	if store.createCalls != 0 {
		t.Error("no upstream call expected for a missing contract selection")
	}
}

func TestCreateDraft_BadPeriodFormat(t *testing.T) {
	store := &mockBillingStore{}
	svc := service.NewLiquidationService(store, zap.NewNop())

	for _, period := range []string{"2026-03", "13/2026", "3/2026", ""} {
		_, err := svc.CreateDraft(context.Background(), testSession(), &domain.CreateLiquidationRequest{
			ContractID: 7,
			Period:     period,
		})
		var validation *domain.ErrValidation
		if !errors.As(err, &validation) {
			t.Errorf("period %q: expected ErrValidation, got %v", period, err)
		}
	}
	if store.createCalls != 0 {
		t.Error("no upstream call expected for malformed periods")
	}
}

func TestCreateDraft_Valid(t *testing.T) {
	store := &mockBillingStore{}
	svc := service.NewLiquidationService(store, zap.NewNop())

	liq, err := svc.CreateDraft(context.Background(), testSession(), &domain.CreateLiquidationRequest{
		ContractID: 7,
		Period:     "12/2026",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if liq.Status != domain.LiquidationDraft {
		t.Errorf("expected status '%s', got '%s'", domain.LiquidationDraft, liq.Status)
	}
	if store.createCalls != 1 {
		t.Errorf("expected 1 upstream call, got %d", store.createCalls)
	}
}

func TestConfirm_PromotesToSent(t *testing.T) {
	store := &mockBillingStore{}
	svc := service.NewLiquidationService(store, zap.NewNop())

	liq, err := svc.Confirm(context.Background(), testSession(), 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if liq.Status != domain.LiquidationSent {
		t.Errorf("expected status '%s', got '%s'", domain.LiquidationSent, liq.Status)
	}
}
