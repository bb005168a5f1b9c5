// Package port defines the interfaces between services and infrastructure.
package port

import (
	"context"
	"time"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
)

// AuthStore talks to the core API auth endpoints.
type AuthStore interface {
	LoginTenant(ctx context.Context, req *domain.TenantLoginRequest) (accessToken string, user *domain.User, err error)
	LoginAdmin(ctx context.Context, req *domain.AdminLoginRequest) (accessToken string, user *domain.User, err error)
	VerifyEmail(ctx context.Context, token string) (*domain.VerifyEmailResponse, error)
	ChangePassword(ctx context.Context, sess *domain.Session, req *domain.ChangePasswordRequest) error
	UpdatePreferences(ctx context.Context, sess *domain.Session, prefs map[string]any) (*domain.User, error)
}

// PropertyStore provides property CRUD against the core API.
type PropertyStore interface {
	ListProperties(ctx context.Context, sess *domain.Session) ([]domain.Property, error)
	GetProperty(ctx context.Context, sess *domain.Session, id int64) (*domain.Property, error)
	CreateProperty(ctx context.Context, sess *domain.Session, in *domain.PropertyInput) (*domain.Property, error)
	UpdateProperty(ctx context.Context, sess *domain.Session, id int64, in *domain.PropertyInput) (*domain.Property, error)
	DeleteProperty(ctx context.Context, sess *domain.Session, id int64) error
}

// PersonStore provides person CRUD against the core API.
type PersonStore interface {
	ListPeople(ctx context.Context, sess *domain.Session) ([]domain.Person, error)
	GetPerson(ctx context.Context, sess *domain.Session, id int64) (*domain.Person, error)
	CreatePerson(ctx context.Context, sess *domain.Session, in *domain.PersonInput) (*domain.Person, error)
	UpdatePerson(ctx context.Context, sess *domain.Session, id int64, in *domain.PersonInput) (*domain.Person, error)
	DeletePerson(ctx context.Context, sess *domain.Session, id int64) error
}

// ContractStore provides contract and charge operations against the core API.
type ContractStore interface {
	ListContracts(ctx context.Context, sess *domain.Session) ([]domain.Contract, error)
	GetContract(ctx context.Context, sess *domain.Session, id int64) (*domain.Contract, error)
	CreateContract(ctx context.Context, sess *domain.Session, in *domain.ContractInput) (*domain.Contract, error)
	UpdateContract(ctx context.Context, sess *domain.Session, id int64, in *domain.ContractInput) (*domain.Contract, error)
	DeleteContract(ctx context.Context, sess *domain.Session, id int64) error
	GenerateMonthlyCharges(ctx context.Context, sess *domain.Session, month, year int) (*domain.GenerateChargesResult, error)
	ListCharges(ctx context.Context, sess *domain.Session) ([]domain.Charge, error)
	PreviewAdjustment(ctx context.Context, sess *domain.Session, contractID int64) (*domain.AdjustmentPreview, error)
	ListAdjustmentsThisMonth(ctx context.Context, sess *domain.Session) ([]domain.AdjustmentPreview, error)
}

// BillingStore provides liquidation and payment operations against the core API.
type BillingStore interface {
	CreateLiquidation(ctx context.Context, sess *domain.Session, req *domain.CreateLiquidationRequest) (*domain.Liquidation, error)
	GetLiquidation(ctx context.Context, sess *domain.Session, id int64) (*domain.Liquidation, error)
	ConfirmLiquidation(ctx context.Context, sess *domain.Session, id int64) (*domain.Liquidation, error)
	ChargePaymentPreference(ctx context.Context, sess *domain.Session, chargeID int64) (*domain.PaymentPreference, error)
	UpgradePlanPreference(ctx context.Context, sess *domain.Session, newPlan string) (*domain.PaymentPreference, error)
}

// WhatsAppStore provides WhatsApp panel operations against the core API.
type WhatsAppStore interface {
	FetchStatus(ctx context.Context, sess *domain.Session) (*domain.WhatsAppStatus, error)
	Connect(ctx context.Context, sess *domain.Session) (*domain.WhatsAppStatus, error)
	Logout(ctx context.Context, sess *domain.Session) error
	ListSessions(ctx context.Context, sess *domain.Session) ([]domain.WhatsAppSession, error)
	CreateSession(ctx context.Context, sess *domain.Session) (*domain.WhatsAppSession, error)
}

// AdminStore provides super-admin tenant operations against the core API.
type AdminStore interface {
	ListTenants(ctx context.Context, sess *domain.Session) ([]domain.Tenant, error)
	GetTenant(ctx context.Context, sess *domain.Session, id string) (*domain.Tenant, error)
	CreateTenant(ctx context.Context, sess *domain.Session, req *domain.CreateTenantRequest) (*domain.Tenant, error)
	UpdateTenant(ctx context.Context, sess *domain.Session, id string, req *domain.UpdateTenantRequest) (*domain.Tenant, error)
	ForceDeleteTenant(ctx context.Context, sess *domain.Session, id string) error
	ListBillingRecords(ctx context.Context, sess *domain.Session) ([]domain.BillingRecord, error)
	ListAuditEntries(ctx context.Context, sess *domain.Session) ([]domain.AuditEntry, error)
}

// ReportStore fetches export blobs from the core API.
type ReportStore interface {
	ExportMovements(ctx context.Context, sess *domain.Session) (data []byte, contentType string, err error)
}

// GatewayProber talks directly to the WhatsApp gateway (Evolution API)
// for the admin health panel.
type GatewayProber interface {
	FetchInstances(ctx context.Context) ([]domain.GatewayInstance, error)
	ConnectionState(ctx context.Context, instanceName string) (string, error)
	LogoutInstance(ctx context.Context, instanceName string) error
}

// CorePinger checks core API reachability for the health endpoint.
type CorePinger interface {
	Ping(ctx context.Context) error
}

// Cache is a generic TTL cache.
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	SetTTL(key string, value T, ttl time.Duration)
	Delete(key string)
	Len() int
}
