package handler

import (
	"encoding/json"
	"net/http"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
	"github.com/inmonea/inmonea-bff-go/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Pagos y planes — /api/v1/payments, /api/v1/plans
// ============================================================

func chargePreferenceHandler(svc *service.PaymentService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/v1/payments/preference/charge/{id}")
		defer span.End()

		id := parseIDParam(r, "id")
		if id == 0 {
			writeError(w, http.StatusBadRequest, "Identificador inválido")
			return
		}

		pref, err := svc.ChargePreference(ctx, SessionFromContext(ctx), id)
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, pref)
	}
}

func upgradePlanHandler(svc *service.PaymentService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /api/v1/payments/upgrade-plan")
		defer span.End()

		var req domain.UpgradePlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Cuerpo de solicitud inválido")
			return
		}

		pref, err := svc.UpgradePlan(ctx, SessionFromContext(ctx), &req)
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, pref)
	}
}

func listPlansHandler(svc *service.PaymentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := tracer.Start(r.Context(), "GET /api/v1/plans")
		defer span.End()

		writeJSON(w, http.StatusOK, svc.Plans())
	}
}
