package domain

// ============================================================
// Liquidations (owner settlements) and payments
// ============================================================

// Liquidation statuses. A liquidation is created as a draft with items
// auto-populated from the contract's concepts, then confirmed to SENT.
const (
	LiquidationDraft = "DRAFT"
	LiquidationSent  = "SENT"
)

// Liquidation is an owner settlement for one contract and period.
type Liquidation struct {
	ID         int64             `json:"id"`
	ContractID int64             `json:"contract_id"`
	Period     string            `json:"period"`
	DueDate    string            `json:"due_date,omitempty"`
	Status     string            `json:"status"`
	Total      float64           `json:"total"`
	SentAt     string            `json:"sent_at,omitempty"`
	Items      []LiquidationItem `json:"items,omitempty"`
}

// LiquidationItem is a single concept line within a liquidation.
type LiquidationItem struct {
	ID                   int64   `json:"id"`
	ConceptName          string  `json:"concept_name"`
	Description          string  `json:"description,omitempty"`
	PreviousValue        float64 `json:"previous_value"`
	CurrentValue         float64 `json:"current_value"`
	AdjustmentApplied    bool    `json:"adjustment_applied"`
	AdjustmentPercentage float64 `json:"adjustment_percentage,omitempty"`
}

// CreateLiquidationRequest is the body for POST /api/v1/liquidations.
type CreateLiquidationRequest struct {
	ContractID int64  `json:"contract_id"`
	Period     string `json:"period"`
	DueDate    string `json:"due_date,omitempty"`
}

// PaymentPreference is a MercadoPago checkout handle.
type PaymentPreference struct {
	InitPoint string `json:"init_point"`
}

// UpgradePlanRequest is the body for POST /api/v1/payments/upgrade-plan.
type UpgradePlanRequest struct {
	NewPlan string `json:"new_plan"`
}

// Plan describes a subscription tier.
type Plan struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Plan names and monthly prices (ARS). Lite is the free tier.
const (
	PlanLite    = "lite"
	PlanBasic   = "basic"
	PlanPremium = "premium"

	PlanBasicPrice   = 5000
	PlanPremiumPrice = 15000
)
