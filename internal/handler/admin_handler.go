package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
	"github.com/inmonea/inmonea-bff-go/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ============================================================
// Consola de administración — /api/v1/admin
// ============================================================

func listTenantsHandler(svc *service.AdminService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/v1/admin/tenants")
		defer span.End()

		tenants, err := svc.ListTenants(ctx, SessionFromContext(ctx), r.URL.Query().Get("q"))
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, tenants)
	}
}

func createTenantHandler(svc *service.AdminService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /api/v1/admin/tenants")
		defer span.End()

		var req domain.CreateTenantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Cuerpo de solicitud inválido")
			return
		}

		tenant, err := svc.CreateTenant(ctx, SessionFromContext(ctx), &req)
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusCreated, tenant)
	}
}

func updateTenantHandler(svc *service.AdminService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PATCH /api/v1/admin/tenants/{id}")
		defer span.End()

		id := chi.URLParam(r, "id")
		if id == "" {
			writeError(w, http.StatusBadRequest, "Identificador inválido")
			return
		}

		var req domain.UpdateTenantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Cuerpo de solicitud inválido")
			return
		}

		tenant, err := svc.UpdateTenant(ctx, SessionFromContext(ctx), id, &req)
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, tenant)
	}
}

func forceDeleteTenantHandler(svc *service.AdminService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "DELETE /api/v1/admin/tenants/{id}/force")
		defer span.End()

		id := chi.URLParam(r, "id")
		if id == "" {
			writeError(w, http.StatusBadRequest, "Identificador inválido")
			return
		}

		var req domain.ForceDeleteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Cuerpo de solicitud inválido")
			return
		}

		if err := svc.ForceDelete(ctx, SessionFromContext(ctx), id, &req); err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func adminBillingHandler(svc *service.AdminService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/v1/admin/billing")
		defer span.End()

		records, err := svc.BillingHistory(ctx, SessionFromContext(ctx))
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, records)
	}
}

func adminAuditHandler(svc *service.AdminService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/v1/admin/audit")
		defer span.End()

		entries, err := svc.AuditLog(ctx, SessionFromContext(ctx))
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

func adminGatewayHealthHandler(svc *service.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := tracer.Start(r.Context(), "GET /api/v1/admin/gateway/health")
		defer span.End()

		writeJSON(w, http.StatusOK, svc.GatewayHealth())
	}
}

func adminGatewayInstanceHandler(svc *service.AdminService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/v1/admin/gateway/instances/{name}")
		defer span.End()

		name := chi.URLParam(r, "name")
		if name == "" {
			writeError(w, http.StatusBadRequest, "Identificador inválido")
			return
		}

		inst, err := svc.ProbeGatewayInstance(ctx, name)
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, inst)
	}
}

func exportTenantsHandler(svc *service.AdminService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/v1/admin/tenants/export")
		defer span.End()

		data, err := svc.ExportTenantsCSV(ctx, SessionFromContext(ctx))
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}

		filename := fmt.Sprintf("inmobiliarias_%s.csv", time.Now().Format("2006-01-02"))
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}
