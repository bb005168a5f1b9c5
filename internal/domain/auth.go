package domain

import "time"

// ============================================================
// Auth — session model and request/response types
// (field names match the SPA API contract)
// ============================================================

// User is the authenticated identity attached to a session.
type User struct {
	Email           string         `json:"email"`
	Role            string         `json:"role"`
	TenantID        string         `json:"tenant_id,omitempty"`
	Plan            string         `json:"plan,omitempty"`
	WhatsappEnabled bool           `json:"whatsapp_enabled"`
	Preferences     map[string]any `json:"preferences,omitempty"`
}

// Roles recognized by the route guards.
const (
	RoleSuperAdmin = "SUPERADMIN"
	RoleAdmin      = "ADMIN"
	RoleOperator   = "OPERADOR"
)

// Session is the server-side session created at login. It carries the
// upstream access token so every core API call can be decorated with
// Authorization and X-Tenant-ID headers.
type Session struct {
	ID          string
	AccessToken string
	User        User
	CreatedAt   time.Time
}

// TenantLoginRequest is the body for POST /api/v1/auth/login/tenant.
type TenantLoginRequest struct {
	NombreInmobiliaria string `json:"nombre_inmobiliaria"`
	Password           string `json:"password"`
}

// AdminLoginRequest is the body for POST /api/v1/auth/login/admin.
type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body for 200 from both login endpoints.
// Redirect tells the SPA where to land after login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
	Redirect    string `json:"redirect"`
}

// ChangePasswordRequest is the body for PUT /api/v1/auth/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// UpdatePreferencesRequest is the body for PATCH /api/v1/auth/preferences.
type UpdatePreferencesRequest struct {
	Theme string `json:"theme"`
}

// VerifyEmailResponse is the body for GET /api/v1/auth/verify-email.
type VerifyEmailResponse struct {
	Message string `json:"message"`
}
