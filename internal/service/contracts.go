package service

import (
	"context"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
	"github.com/inmonea/inmonea-bff-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var contractTracer = otel.Tracer("service/contracts")

// ContractService handles the contract screens and charge generation.
type ContractService struct {
	store  port.ContractStore
	logger *zap.Logger
}

// NewContractService creates a new contract service.
func NewContractService(store port.ContractStore, logger *zap.Logger) *ContractService {
	return &ContractService{store: store, logger: logger}
}

// List fetches all contracts, optionally narrowed by status.
func (s *ContractService) List(ctx context.Context, sess *domain.Session, status string) ([]domain.Contract, error) {
	ctx, span := contractTracer.Start(ctx, "ContractService.List")
	defer span.End()

	contracts, err := s.store.ListContracts(ctx, sess)
	if err != nil {
		return nil, err
	}

	if status != "" {
		filtered := make([]domain.Contract, 0, len(contracts))
		for _, ct := range contracts {
			if ct.Status == status {
				filtered = append(filtered, ct)
			}
		}
		contracts = filtered
	}

	return contracts, nil
}

// Get fetches one contract.
func (s *ContractService) Get(ctx context.Context, sess *domain.Session, id int64) (*domain.Contract, error) {
	ctx, span := contractTracer.Start(ctx, "ContractService.Get")
	defer span.End()

	return s.store.GetContract(ctx, sess, id)
}

// Create validates and creates a contract.
func (s *ContractService) Create(ctx context.Context, sess *domain.Session, in *domain.ContractInput) (*domain.Contract, error) {
	ctx, span := contractTracer.Start(ctx, "ContractService.Create")
	defer span.End()

	if err := validateContract(in); err != nil {
		return nil, err
	}
	if in.Currency == "" {
		in.Currency = "ARS"
	}
	return s.store.CreateContract(ctx, sess, in)
}

// Update validates and replaces a contract.
func (s *ContractService) Update(ctx context.Context, sess *domain.Session, id int64, in *domain.ContractInput) (*domain.Contract, error) {
	ctx, span := contractTracer.Start(ctx, "ContractService.Update")
	defer span.End()

	if err := validateContract(in); err != nil {
		return nil, err
	}
	return s.store.UpdateContract(ctx, sess, id, in)
}

// Delete removes a contract.
func (s *ContractService) Delete(ctx context.Context, sess *domain.Session, id int64) error {
	ctx, span := contractTracer.Start(ctx, "ContractService.Delete")
	defer span.End()

	return s.store.DeleteContract(ctx, sess, id)
}

// GenerateMonthlyCharges emits the "Alquiler MM/YYYY" charges for the
// given period and reports how many were created.
func (s *ContractService) GenerateMonthlyCharges(ctx context.Context, sess *domain.Session, month, year int) (*domain.GenerateChargesResult, error) {
	ctx, span := contractTracer.Start(ctx, "ContractService.GenerateMonthlyCharges")
	defer span.End()
	span.SetAttributes(attribute.Int("charges.month", month), attribute.Int("charges.year", year))

	if month < 1 || month > 12 {
		return nil, &domain.ErrValidation{Field: "month", Message: "El mes debe estar entre 1 y 12"}
	}
	if year < 2000 {
		return nil, &domain.ErrValidation{Field: "year", Message: "Año inválido"}
	}

	result, err := s.store.GenerateMonthlyCharges(ctx, sess, month, year)
	if err != nil {
		return nil, err
	}

	s.logger.Info("monthly charges generated",
		zap.Int("month", month),
		zap.Int("year", year),
		zap.Int("created", result.Created),
	)
	return result, nil
}

// ListCharges fetches all charges, optionally narrowed by status.
func (s *ContractService) ListCharges(ctx context.Context, sess *domain.Session, status string) ([]domain.Charge, error) {
	ctx, span := contractTracer.Start(ctx, "ContractService.ListCharges")
	defer span.End()

	charges, err := s.store.ListCharges(ctx, sess)
	if err != nil {
		return nil, err
	}

	if status != "" {
		filtered := make([]domain.Charge, 0, len(charges))
		for _, ch := range charges {
			if ch.Status == status {
				filtered = append(filtered, ch)
			}
		}
		charges = filtered
	}

	return charges, nil
}

// PreviewAdjustment fetches the projected ICL/IPC rent for a contract.
func (s *ContractService) PreviewAdjustment(ctx context.Context, sess *domain.Session, contractID int64) (*domain.AdjustmentPreview, error) {
	ctx, span := contractTracer.Start(ctx, "ContractService.PreviewAdjustment")
	defer span.End()

	return s.store.PreviewAdjustment(ctx, sess, contractID)
}

// AdjustmentsThisMonth lists contracts due for an index adjustment.
func (s *ContractService) AdjustmentsThisMonth(ctx context.Context, sess *domain.Session) ([]domain.AdjustmentPreview, error) {
	ctx, span := contractTracer.Start(ctx, "ContractService.AdjustmentsThisMonth")
	defer span.End()

	return s.store.ListAdjustmentsThisMonth(ctx, sess)
}

func validateContract(in *domain.ContractInput) error {
	if in.PropertyID == 0 {
		return &domain.ErrValidation{Field: "property_id", Message: "La propiedad es obligatoria"}
	}
	if in.PersonID == 0 {
		return &domain.ErrValidation{Field: "person_id", Message: "El inquilino es obligatorio"}
	}
	if in.StartDate == "" || in.EndDate == "" {
		return &domain.ErrValidation{Field: "start_date", Message: "Las fechas de inicio y fin son obligatorias"}
	}
	if in.MonthlyRent <= 0 {
		return &domain.ErrValidation{Field: "monthly_rent", Message: "El alquiler mensual debe ser mayor a cero"}
	}
	switch in.AdjustmentType {
	case "", domain.AdjustmentICL, domain.AdjustmentIPC, domain.AdjustmentFijo:
	default:
		return &domain.ErrValidation{Field: "adjustment_type", Message: "Tipo de ajuste inválido"}
	}
	return nil
}
