package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
	"github.com/inmonea/inmonea-bff-go/internal/infra/observability"
	"github.com/inmonea/inmonea-bff-go/internal/port"
	"github.com/inmonea/inmonea-bff-go/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("handler")

// Services bundles everything the router wires up.
type Services struct {
	Auth         *service.AuthService
	Sessions     *service.Sessions
	Properties   *service.PropertyService
	People       *service.PersonService
	Contracts    *service.ContractService
	Liquidations *service.LiquidationService
	WhatsApp     *service.WhatsAppService
	Payments     *service.PaymentService
	Reports      *service.ReportService
	Dashboard    *service.DashboardService
	Admin        *service.AdminService
	Gateway      *service.GatewayMonitor
	Core         port.CorePinger
}

// NewRouter creates the HTTP router with all routes and middleware.
// Routes mirror the API contract the Inmonea SPA was built against.
func NewRouter(svcs *Services, allowedOrigin string, metrics *observability.Metrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{allowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Tenant-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(observability.ZapLoggerMiddleware(logger, metrics))
	r.Use(observability.TracingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	// --- Operational endpoints ---
	r.Get("/healthz", healthzHandler(svcs.Gateway, svcs.Core))
	r.Get("/readyz", readyzHandler())
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	// --- API v1 ---
	r.Route("/api/v1", func(r chi.Router) {

		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login/tenant", loginTenantHandler(svcs.Auth, svcs.Sessions, logger))
			r.Post("/login/admin", loginAdminHandler(svcs.Auth, svcs.Sessions, logger))
			r.Get("/verify-email", verifyEmailHandler(svcs.Auth, svcs.Sessions, logger))

			// Protected auth routes
			r.Group(func(r chi.Router) {
				r.Use(SessionMiddleware(svcs.Sessions, logger))
				r.Post("/logout", logoutHandler(svcs.Auth, logger))
				r.Get("/me", meHandler(svcs.Auth))
				r.Put("/password", changePasswordHandler(svcs.Auth, svcs.Sessions, logger))
				r.Patch("/preferences", updatePreferencesHandler(svcs.Auth, svcs.Sessions, logger))
			})
		})

		// Public plan catalog (pricing page)
		r.Get("/plans", listPlansHandler(svcs.Payments))

		// Protected application routes
		r.Group(func(r chi.Router) {
			r.Use(SessionMiddleware(svcs.Sessions, logger))

			// Propiedades
			r.Get("/properties", listPropertiesHandler(svcs.Properties, svcs.Sessions, logger))
			r.Post("/properties", createPropertyHandler(svcs.Properties, svcs.Sessions, logger))
			r.Get("/properties/{id}", getPropertyHandler(svcs.Properties, svcs.Sessions, logger))
			r.Put("/properties/{id}", updatePropertyHandler(svcs.Properties, svcs.Sessions, logger))
			r.Delete("/properties/{id}", deletePropertyHandler(svcs.Properties, svcs.Sessions, logger))

			// Personas
			r.Get("/people", listPeopleHandler(svcs.People, svcs.Sessions, logger))
			r.Post("/people", createPersonHandler(svcs.People, svcs.Sessions, logger))
			r.Get("/people/{id}", getPersonHandler(svcs.People, svcs.Sessions, logger))
			r.Put("/people/{id}", updatePersonHandler(svcs.People, svcs.Sessions, logger))
			r.Delete("/people/{id}", deletePersonHandler(svcs.People, svcs.Sessions, logger))

			// Contratos — fixed paths before {id} so chi matches them first
			r.Get("/contracts", listContractsHandler(svcs.Contracts, svcs.Sessions, logger))
			r.Post("/contracts", createContractHandler(svcs.Contracts, svcs.Sessions, logger))
			r.Post("/contracts/generate-monthly-charges", generateChargesHandler(svcs.Contracts, svcs.Sessions, logger))
			r.Get("/contracts/charges", listChargesHandler(svcs.Contracts, svcs.Sessions, logger))
			r.Get("/contracts/adjustments-this-month", adjustmentsThisMonthHandler(svcs.Contracts, svcs.Sessions, logger))
			r.Get("/contracts/{id}", getContractHandler(svcs.Contracts, svcs.Sessions, logger))
			r.Put("/contracts/{id}", updateContractHandler(svcs.Contracts, svcs.Sessions, logger))
			r.Delete("/contracts/{id}", deleteContractHandler(svcs.Contracts, svcs.Sessions, logger))
			r.Get("/contracts/{id}/preview-adjustment", previewAdjustmentHandler(svcs.Contracts, svcs.Sessions, logger))

			// Liquidaciones
			r.Post("/liquidations", createLiquidationHandler(svcs.Liquidations, svcs.Sessions, logger))
			r.Get("/liquidations/{id}", getLiquidationHandler(svcs.Liquidations, svcs.Sessions, logger))
			r.Post("/liquidations/{id}/confirm", confirmLiquidationHandler(svcs.Liquidations, svcs.Sessions, logger))

			// WhatsApp
			r.Get("/whatsapp/status", whatsappStatusHandler(svcs.WhatsApp, svcs.Sessions, logger))
			r.Post("/whatsapp/connect", whatsappConnectHandler(svcs.WhatsApp, svcs.Sessions, logger))
			r.Post("/whatsapp/logout", whatsappLogoutHandler(svcs.WhatsApp, svcs.Sessions, logger))
			r.Get("/whatsapp/sessions", whatsappSessionsHandler(svcs.WhatsApp, svcs.Sessions, logger))
			r.Post("/whatsapp/sessions/create", whatsappCreateSessionHandler(svcs.WhatsApp, svcs.Sessions, logger))

			// Pagos
			r.Get("/payments/preference/charge/{id}", chargePreferenceHandler(svcs.Payments, svcs.Sessions, logger))
			r.Post("/payments/upgrade-plan", upgradePlanHandler(svcs.Payments, svcs.Sessions, logger))

			// Reportes
			r.Get("/reports/export-movements", exportMovementsHandler(svcs.Reports, svcs.Sessions, logger))

			// Dashboard
			r.Get("/dashboard/metrics", dashboardMetricsHandler(svcs.Dashboard, svcs.Sessions, logger))

			// Consola de administración
			r.Route("/admin", func(r chi.Router) {
				r.Use(RequireSuperAdmin(logger))
				r.Get("/tenants", listTenantsHandler(svcs.Admin, svcs.Sessions, logger))
				r.Post("/tenants", createTenantHandler(svcs.Admin, svcs.Sessions, logger))
				r.Get("/tenants/export", exportTenantsHandler(svcs.Admin, svcs.Sessions, logger))
				r.Patch("/tenants/{id}", updateTenantHandler(svcs.Admin, svcs.Sessions, logger))
				r.Delete("/tenants/{id}/force", forceDeleteTenantHandler(svcs.Admin, svcs.Sessions, logger))
				r.Get("/billing", adminBillingHandler(svcs.Admin, svcs.Sessions, logger))
				r.Get("/audit", adminAuditHandler(svcs.Admin, svcs.Sessions, logger))
				r.Get("/gateway/health", adminGatewayHealthHandler(svcs.Admin))
				r.Get("/gateway/instances/{name}", adminGatewayInstanceHandler(svcs.Admin, svcs.Sessions, logger))
			})
		})
	})

	return r
}

// ============================================================
// Operational handlers
// ============================================================

func healthzHandler(gateway *service.GatewayMonitor, core port.CorePinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().Format(time.RFC3339)

		services := []domain.ServiceHealth{
			{Name: "inmonea-bff", Status: "healthy", LatencyMs: 0, LastChecked: now},
		}

		if core != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			start := time.Now()
			err := core.Ping(ctx)
			cancel()

			coreStatus := "healthy"
			if err != nil {
				coreStatus = "degraded"
			}
			services = append(services, domain.ServiceHealth{
				Name:        "core-api",
				Status:      coreStatus,
				LatencyMs:   time.Since(start).Milliseconds(),
				LastChecked: now,
			})
		}

		if gateway != nil {
			snapshot := gateway.Snapshot()
			gwStatus := "healthy"
			switch snapshot.Status {
			case "unreachable":
				gwStatus = "degraded"
			case "unknown":
				gwStatus = "unknown"
			}
			services = append(services, domain.ServiceHealth{
				Name: "evolution-gateway", Status: gwStatus, LastChecked: snapshot.CheckedAt,
			})
		}

		overall := "healthy"
		for _, s := range services {
			if s.Status == "degraded" {
				overall = "degraded"
			}
		}

		writeJSON(w, http.StatusOK, domain.HealthStatus{
			Status:   overall,
			Services: services,
		})
	}
}

func readyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
