package handler

import (
	"encoding/json"
	"net/http"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
	"github.com/inmonea/inmonea-bff-go/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Liquidaciones — /api/v1/liquidations
// ============================================================

func createLiquidationHandler(svc *service.LiquidationService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /api/v1/liquidations")
		defer span.End()

		var req domain.CreateLiquidationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Cuerpo de solicitud inválido")
			return
		}

		liq, err := svc.CreateDraft(ctx, SessionFromContext(ctx), &req)
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusCreated, liq)
	}
}

func getLiquidationHandler(svc *service.LiquidationService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/v1/liquidations/{id}")
		defer span.End()

		id := parseIDParam(r, "id")
		if id == 0 {
			writeError(w, http.StatusBadRequest, "Identificador inválido")
			return
		}

		liq, err := svc.Get(ctx, SessionFromContext(ctx), id)
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, liq)
	}
}

func confirmLiquidationHandler(svc *service.LiquidationService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /api/v1/liquidations/{id}/confirm")
		defer span.End()

		id := parseIDParam(r, "id")
		if id == 0 {
			writeError(w, http.StatusBadRequest, "Identificador inválido")
			return
		}

		liq, err := svc.Confirm(ctx, SessionFromContext(ctx), id)
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, liq)
	}
}
