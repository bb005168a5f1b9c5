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

type mockContractStore struct {
	contracts []domain.Contract
	charges   []domain.Charge
	err       error
	chargeErr error
}

func (m *mockContractStore) ListContracts(_ context.Context, _ *domain.Session) ([]domain.Contract, error) {
	return m.contracts, m.err
}

func (m *mockContractStore) GetContract(_ context.Context, _ *domain.Session, _ int64) (*domain.Contract, error) {
	return nil, m.err
}

func (m *mockContractStore) CreateContract(_ context.Context, _ *domain.Session, _ *domain.ContractInput) (*domain.Contract, error) {
	return nil, m.err
}

func (m *mockContractStore) UpdateContract(_ context.Context, _ *domain.Session, _ int64, _ *domain.ContractInput) (*domain.Contract, error) {
	return nil, m.err
}

func (m *mockContractStore) DeleteContract(_ context.Context, _ *domain.Session, _ int64) error {
	return m.err
}

func (m *mockContractStore) GenerateMonthlyCharges(_ context.Context, _ *domain.Session, _, _ int) (*domain.GenerateChargesResult, error) {
	return &domain.GenerateChargesResult{Created: 3}, m.err
}

func (m *mockContractStore) ListCharges(_ context.Context, _ *domain.Session) ([]domain.Charge, error) {
	if m.chargeErr != nil {
		return nil, m.chargeErr
	}
	return m.charges, nil
}

func (m *mockContractStore) PreviewAdjustment(_ context.Context, _ *domain.Session, _ int64) (*domain.AdjustmentPreview, error) {
	return nil, m.err
}

func (m *mockContractStore) ListAdjustmentsThisMonth(_ context.Context, _ *domain.Session) ([]domain.AdjustmentPreview, error) {
	return nil, m.err
}

// --- Tests ---

func TestDashboardMetrics_Aggregates(t *testing.T) {
	store := &mockContractStore{
		contracts: []domain.Contract{
			{ID: 1, Status: domain.ContractActive, CurrentRent: 120000},
			{ID: 2, Status: domain.ContractActive, MonthlyRent: 90000}, // no adjusted rent yet
			{ID: 3, Status: domain.ContractFinished, CurrentRent: 80000},
		},
		charges: []domain.Charge{
			{ID: 1, Status: domain.ChargePending},
			{ID: 2, Status: domain.ChargePaid},
			{ID: 3, Status: domain.ChargePending},
			{ID: 4, Status: domain.ChargeOverdue},
		},
	}
	svc := service.NewDashboardService(store, zap.NewNop())

	m, err := svc.Metrics(context.Background(), testSession())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if m.ActiveContracts != 2 {
		t.Errorf("expected 2 active contracts, got %d", m.ActiveContracts)
	}
	if m.MonthlyIncome != 210000 {
		t.Errorf("expected monthly income 210000, got %v", m.MonthlyIncome)
	}
	if m.PendingCharges != 2 {
		t.Errorf("expected 2 pending charges, got %d", m.PendingCharges)
	}
}

func TestDashboardMetrics_OneFailureFailsAll(t *testing.T) {
	store := &mockContractStore{
		contracts: []domain.Contract{{ID: 1, Status: domain.ContractActive}},
		chargeErr: errors.New("upstream down"),
	}
	svc := service.NewDashboardService(store, zap.NewNop())

	if _, err := svc.Metrics(context.Background(), testSession()); err == nil {
		t.Fatal("expected error when one fetch fails")
	}
}

func TestGenerateMonthlyCharges_InvalidMonth(t *testing.T) {
	svc := service.NewContractService(&mockContractStore{}, zap.NewNop())

	_, err := svc.GenerateMonthlyCharges(context.Background(), testSession(), 13, 2026)
	var validation *domain.ErrValidation
	if !errors.As(err, &validation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestContractCreate_DefaultsCurrency(t *testing.T) {
	store := &recordingContractStore{}
	svc := service.NewContractService(store, zap.NewNop())

	_, err := svc.Create(context.Background(), testSession(), &domain.ContractInput{
		PropertyID:  1,
		PersonID:    2,
		StartDate:   "2026-01-01",
		EndDate:     "2028-01-01",
		MonthlyRent: 100000,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if store.lastInput.Currency != "ARS" {
		t.Errorf("expected currency default 'ARS', got '%s'", store.lastInput.Currency)
	}
}

// recordingContractStore captures the input passed to CreateContract.
type recordingContractStore struct {
	mockContractStore
	lastInput domain.ContractInput
}

func (m *recordingContractStore) CreateContract(_ context.Context, _ *domain.Session, in *domain.ContractInput) (*domain.Contract, error) {
	m.lastInput = *in
	return &domain.Contract{ID: 1, Currency: in.Currency}, nil
}
