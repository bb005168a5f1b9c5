package domain

// Tenant is an agency account, as managed from the super-admin console.
type Tenant struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	Plan            string         `json:"plan"`
	IsActive        bool           `json:"is_active"`
	WhatsappEnabled bool           `json:"whatsapp_enabled"`
	Preferences     map[string]any `json:"preferences,omitempty"`
	Status          string         `json:"status,omitempty"`
	CreatedAt       string         `json:"created_at,omitempty"`
}

// MasterTenantName is the bootstrap tenant that can never be force-deleted.
const MasterTenantName = "master"

// CreateTenantRequest is the body for POST /api/v1/admin/tenants.
type CreateTenantRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	Plan            string `json:"plan,omitempty"`
	WhatsappEnabled bool   `json:"whatsapp_enabled,omitempty"`
}

// UpdateTenantRequest carries independent single-field updates for
// PATCH /api/v1/admin/tenants/{id}. Pointer fields distinguish "absent"
// from zero values.
type UpdateTenantRequest struct {
	IsActive        *bool          `json:"is_active,omitempty"`
	Plan            *string        `json:"plan,omitempty"`
	WhatsappEnabled *bool          `json:"whatsapp_enabled,omitempty"`
	Preferences     map[string]any `json:"preferences,omitempty"`
}

// ForceDeleteRequest is the body for DELETE /api/v1/admin/tenants/{id}/force.
// ConfirmName must match the tenant's name exactly, case-sensitive.
type ForceDeleteRequest struct {
	ConfirmName string `json:"confirm_name"`
}

// BillingRecord is one line of a tenant's billing history.
type BillingRecord struct {
	ID        int64   `json:"id"`
	TenantID  string  `json:"tenant_id"`
	Plan      string  `json:"plan"`
	Amount    float64 `json:"amount"`
	Period    string  `json:"period"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at,omitempty"`
}

// AuditEntry records a sensitive admin action (e.g. force delete).
type AuditEntry struct {
	ID        int64  `json:"id"`
	Actor     string `json:"actor"`
	Action    string `json:"action"`
	Target    string `json:"target"`
	Detail    string `json:"detail,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}
