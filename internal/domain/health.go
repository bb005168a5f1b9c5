package domain

// HealthStatus is the body for GET /healthz.
type HealthStatus struct {
	Status   string          `json:"status"`
	Services []ServiceHealth `json:"services"`
}

// ServiceHealth is the health of one dependency.
type ServiceHealth struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	LatencyMs   int64  `json:"latency_ms"`
	LastChecked string `json:"last_checked"`
}

// GatewayInstance is the live connection state of one WhatsApp instance
// as seen by the gateway health watcher.
type GatewayInstance struct {
	InstanceName string `json:"instance_name"`
	TenantID     string `json:"tenant_id,omitempty"`
	State        string `json:"state"`
	CheckedAt    string `json:"checked_at"`
}

/// GatewayHealth is the admin panel view of the WhatsApp gateway:
// the instance inventory plus BFF-side request counters.
type GatewayHealth struct {
	Status        string            `json:"status"`
	Instances     []GatewayInstance `json:"instances"`
	RequestsTotal int64             `json:"requests_total"`
	ErrorsTotal   int64             `json:"errors_total"`
	CheckedAt     string            `json:"checked_at"`
}

// DashboardMetrics aggregates the landing page counters.
type DashboardMetrics struct {
	ActiveContracts int     `json:"active_contracts"`
	MonthlyIncome   float64 `json:"monthly_income"`
	PendingCharges  int     `json:"pending_charges"`
}
