package domain

// Contract links a property with a tenant person and drives monthly
// billing and rent adjustments.
type Contract struct {
	ID                 int64   `json:"id"`
	PropertyID         int64   `json:"property_id"`
	PersonID           int64   `json:"person_id"`
	StartDate          string  `json:"start_date"`
	EndDate            string  `json:"end_date"`
	MonthlyRent        float64 `json:"monthly_rent"`
	Currency           string  `json:"currency"`
	CurrentRent        float64 `json:"current_rent"`
	BaseAmount         float64 `json:"base_amount,omitempty"`
	AdjustmentType     string  `json:"adjustment_type,omitempty"`
	AdjustmentPeriod   int     `json:"adjustment_period,omitempty"`
	LastAdjustmentDate string  `json:"last_adjustment_date,omitempty"`
	Status             string  `json:"status"`
	CreatedAt          string  `json:"created_at,omitempty"`
}

// Contract statuses and adjustment index types.
const (
	ContractActive   = "ACTIVE"
	ContractFinished = "FINISHED"

	AdjustmentICL  = "ICL"
	AdjustmentIPC  = "IPC"
	AdjustmentFijo = "FIJO"
)

// ContractInput is the body for create/update of a contract.
type ContractInput struct {
	PropertyID       int64   `json:"property_id"`
	PersonID         int64   `json:"person_id"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	MonthlyRent      float64 `json:"monthly_rent"`
	Currency         string  `json:"currency,omitempty"`
	AdjustmentType   string  `json:"adjustment_type,omitempty"`
	AdjustmentPeriod int     `json:"adjustment_period,omitempty"`
}

// Charge is a monthly receivable generated from a contract
// ("Alquiler {month}/{year}", due on the 10th).
type Charge struct {
	ID          int64   `json:"id"`
	ContractID  int64   `json:"contract_id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	DueDate     string  `json:"due_date"`
	Period      string  `json:"period,omitempty"`
	Status      string  `json:"status"`
}

// Charge statuses.
const (
	ChargePending = "PENDIENTE"
	ChargePaid    = "PAGADO"
	ChargeOverdue = "VENCIDO"
)

// AdjustmentPreview is the projected rent after applying the contract's
// index: new = base * (idx_current / idx_base).
type AdjustmentPreview struct {
	ContractID     int64   `json:"contract_id"`
	AdjustmentType string  `json:"adjustment_type"`
	CurrentRent    float64 `json:"current_rent"`
	ProjectedRent  float64 `json:"projected_rent"`
	IndexBase      float64 `json:"index_base,omitempty"`
	IndexCurrent   float64 `json:"index_current,omitempty"`
	EffectiveDate  string  `json:"effective_date,omitempty"`
}

// GenerateChargesResult reports how many charges were created for a period.
type GenerateChargesResult struct {
	Created int    `json:"created"`
	Period  string `json:"period"`
}
