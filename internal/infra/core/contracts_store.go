package core

import (
	"context"
	"fmt"
	"net/http"

	"github.com/inmonea/inmonea-bff-go/internal/domain"

	"go.opentelemetry.io/otel/attribute"
)

// ListContracts fetches the tenant's contracts.
func (c *Client) ListContracts(ctx context.Context, sess *domain.Session) ([]domain.Contract, error) {
	ctx, span := tracer.Start(ctx, "Core.ListContracts")
	defer span.End()

	contracts := []domain.Contract{}
	if err := c.get(ctx, "contracts/", sess, &contracts); err != nil {
		return nil, err
	}
	return contracts, nil
}

// GetContract fetches one contract by ID.
func (c *Client) GetContract(ctx context.Context, sess *domain.Session, id int64) (*domain.Contract, error) {
	ctx, span := tracer.Start(ctx, "Core.GetContract")
	defer span.End()
	span.SetAttributes(attribute.Int64("contract.id", id))

	var ct domain.Contract
	if err := c.get(ctx, fmt.Sprintf("contracts/%d", id), sess, &ct); err != nil {
		return nil, err
	}
	return &ct, nil
}

// CreateContract creates a contract.
func (c *Client) CreateContract(ctx context.Context, sess *domain.Session, in *domain.ContractInput) (*domain.Contract, error) {
	ctx, span := tracer.Start(ctx, "Core.CreateContract")
	defer span.End()

	var ct domain.Contract
	if err := c.send(ctx, http.MethodPost, "contracts/", in, sess, &ct); err != nil {
		return nil, err
	}
	return &ct, nil
}

// UpdateContract replaces a contract.
func (c *Client) UpdateContract(ctx context.Context, sess *domain.Session, id int64, in *domain.ContractInput) (*domain.Contract, error) {
	ctx, span := tracer.Start(ctx, "Core.UpdateContract")
	defer span.End()
	span.SetAttributes(attribute.Int64("contract.id", id))

	var ct domain.Contract
	if err := c.send(ctx, http.MethodPut, fmt.Sprintf("contracts/%d", id), in, sess, &ct); err != nil {
		return nil, err
	}
	return &ct, nil
}

// DeleteContract removes a contract.
func (c *Client) DeleteContract(ctx context.Context, sess *domain.Session, id int64) error {
	ctx, span := tracer.Start(ctx, "Core.DeleteContract")
	defer span.End()
	span.SetAttributes(attribute.Int64("contract.id", id))

	return c.send(ctx, http.MethodDelete, fmt.Sprintf("contracts/%d", id), nil, sess, nil)
}

// GenerateMonthlyCharges asks the core API to emit the "Alquiler MM/YYYY"
// charges for the period and reports how many were created.
func (c *Client) GenerateMonthlyCharges(ctx context.Context, sess *domain.Session, month, year int) (*domain.GenerateChargesResult, error) {
	ctx, span := tracer.Start(ctx, "Core.GenerateMonthlyCharges")
	defer span.End()
	span.SetAttributes(attribute.Int("charges.month", month), attribute.Int("charges.year", year))

	var result domain.GenerateChargesResult
	path := fmt.Sprintf("contracts/generate-monthly-charges?month=%d&year=%d", month, year)
	if err := c.send(ctx, http.MethodPost, path, nil, sess, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListCharges fetches all charges for the tenant.
func (c *Client) ListCharges(ctx context.Context, sess *domain.Session) ([]domain.Charge, error) {
	ctx, span := tracer.Start(ctx, "Core.ListCharges")
	defer span.End()

	charges := []domain.Charge{}
	if err := c.get(ctx, "contracts/charges", sess, &charges); err != nil {
		return nil, err
	}
	return charges, nil
}

// PreviewAdjustment fetches the projected ICL/IPC rent for a contract.
func (c *Client) PreviewAdjustment(ctx context.Context, sess *domain.Session, contractID int64) (*domain.AdjustmentPreview, error) {
	ctx, span := tracer.Start(ctx, "Core.PreviewAdjustment")
	defer span.End()
	span.SetAttributes(attribute.Int64("contract.id", contractID))

	var preview domain.AdjustmentPreview
	if err := c.get(ctx, fmt.Sprintf("contracts/%d/preview-adjustment", contractID), sess, &preview); err != nil {
		return nil, err
	}
	return &preview, nil
}

// ListAdjustmentsThisMonth fetches contracts due for adjustment this month.
func (c *Client) ListAdjustmentsThisMonth(ctx context.Context, sess *domain.Session) ([]domain.AdjustmentPreview, error) {
	ctx, span := tracer.Start(ctx, "Core.ListAdjustmentsThisMonth")
	defer span.End()

	previews := []domain.AdjustmentPreview{}
	if err := c.get(ctx, "contracts/adjustments-this-month", sess, &previews); err != nil {
		return nil, err
	}
	return previews, nil
}
