package core

import (
	"context"
	"fmt"
	"net/http"

	"github.com/inmonea/inmonea-bff-go/internal/domain"

	"go.opentelemetry.io/otel/attribute"
)

// CreateLiquidation opens a DRAFT settlement. The core API populates the
// items from the contract's concepts; the draft comes back fully priced.
func (c *Client) CreateLiquidation(ctx context.Context, sess *domain.Session, req *domain.CreateLiquidationRequest) (*domain.Liquidation, error) {
	ctx, span := tracer.Start(ctx, "Core.CreateLiquidation")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("contract.id", req.ContractID),
		attribute.String("liquidation.period", req.Period),
	)

	var liq domain.Liquidation
	if err := c.send(ctx, http.MethodPost, "liquidations/", req, sess, &liq); err != nil {
		return nil, err
	}
	return &liq, nil
}

// GetLiquidation fetches one liquidation with its items.
func (c *Client) GetLiquidation(ctx context.Context, sess *domain.Session, id int64) (*domain.Liquidation, error) {
	ctx, span := tracer.Start(ctx, "Core.GetLiquidation")
	defer span.End()
	span.SetAttributes(attribute.Int64("liquidation.id", id))

	var liq domain.Liquidation
	if err := c.get(ctx, fmt.Sprintf("liquidations/%d", id), sess, &liq); err != nil {
		return nil, err
	}
	return &liq, nil
}

// ConfirmLiquidation promotes a draft to SENT.
func (c *Client) ConfirmLiquidation(ctx context.Context, sess *domain.Session, id int64) (*domain.Liquidation, error) {
	ctx, span := tracer.Start(ctx, "Core.ConfirmLiquidation")
	defer span.End()
	span.SetAttributes(attribute.Int64("liquidation.id", id))

	var liq domain.Liquidation
	if err := c.send(ctx, http.MethodPost, fmt.Sprintf("liquidations/%d/confirm", id), nil, sess, &liq); err != nil {
		return nil, err
	}
	return &liq, nil
}

// ChargePaymentPreference fetches a MercadoPago init_point for a charge.
func (c *Client) ChargePaymentPreference(ctx context.Context, sess *domain.Session, chargeID int64) (*domain.PaymentPreference, error) {
	ctx, span := tracer.Start(ctx, "Core.ChargePaymentPreference")
	defer span.End()
	span.SetAttributes(attribute.Int64("charge.id", chargeID))

	var pref domain.PaymentPreference
	if err := c.get(ctx, fmt.Sprintf("payments/preference/charge/%d", chargeID), sess, &pref); err != nil {
		return nil, err
	}
	return &pref, nil
}

// UpgradePlanPreference fetches a MercadoPago init_point for a plan upgrade.
func (c *Client) UpgradePlanPreference(ctx context.Context, sess *domain.Session, newPlan string) (*domain.PaymentPreference, error) {
	ctx, span := tracer.Start(ctx, "Core.UpgradePlanPreference")
	defer span.End()
	span.SetAttributes(attribute.String("plan.new", newPlan))

	var pref domain.PaymentPreference
	payload := &domain.UpgradePlanRequest{NewPlan: newPlan}
	if err := c.send(ctx, http.MethodPost, "payments/upgrade-plan", payload, sess, &pref); err != nil {
		return nil, err
	}
	return &pref, nil
}
