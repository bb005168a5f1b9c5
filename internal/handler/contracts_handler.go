package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
	"github.com/inmonea/inmonea-bff-go/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Contratos — /api/v1/contracts
// ============================================================

func listContractsHandler(svc *service.ContractService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/v1/contracts")
		defer span.End()

		contracts, err := svc.List(ctx, SessionFromContext(ctx), r.URL.Query().Get("status"))
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, contracts)
	}
}

func getContractHandler(svc *service.ContractService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/v1/contracts/{id}")
		defer span.End()

		id := parseIDParam(r, "id")
		if id == 0 {
			writeError(w, http.StatusBadRequest, "Identificador inválido")
			return
		}

		contract, err := svc.Get(ctx, SessionFromContext(ctx), id)
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, contract)
	}
}

func createContractHandler(svc *service.ContractService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /api/v1/contracts")
		defer span.End()

		var in domain.ContractInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "Cuerpo de solicitud inválido")
			return
		}

		contract, err := svc.Create(ctx, SessionFromContext(ctx), &in)
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusCreated, contract)
	}
}

func updateContractHandler(svc *service.ContractService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /api/v1/contracts/{id}")
		defer span.End()

		id := parseIDParam(r, "id")
		if id == 0 {
			writeError(w, http.StatusBadRequest, "Identificador inválido")
			return
		}

		var in domain.ContractInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "Cuerpo de solicitud inválido")
			return
		}

		contract, err := svc.Update(ctx, SessionFromContext(ctx), id, &in)
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, contract)
	}
}

func deleteContractHandler(svc *service.ContractService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "DELETE /api/v1/contracts/{id}")
		defer span.End()

		id := parseIDParam(r, "id")
		if id == 0 {
			writeError(w, http.StatusBadRequest, "Identificador inválido")
			return
		}

		if err := svc.Delete(ctx, SessionFromContext(ctx), id); err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// generateChargesHandler defaults to the current month when no period
// is given, which is what the one-click button in the SPA sends.
func generateChargesHandler(svc *service.ContractService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /api/v1/contracts/generate-monthly-charges")
		defer span.End()

		now := time.Now()
		month := int(now.Month())
		year := now.Year()
		if v := r.URL.Query().Get("month"); v != "" {
			month, _ = strconv.Atoi(v)
		}
		if v := r.URL.Query().Get("year"); v != "" {
			year, _ = strconv.Atoi(v)
		}

		result, err := svc.GenerateMonthlyCharges(ctx, SessionFromContext(ctx), month, year)
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func listChargesHandler(svc *service.ContractService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/v1/contracts/charges")
		defer span.End()

		charges, err := svc.ListCharges(ctx, SessionFromContext(ctx), r.URL.Query().Get("status"))
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, charges)
	}
}

func previewAdjustmentHandler(svc *service.ContractService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/v1/contracts/{id}/preview-adjustment")
		defer span.End()

		id := parseIDParam(r, "id")
		if id == 0 {
			writeError(w, http.StatusBadRequest, "Identificador inválido")
			return
		}

		preview, err := svc.PreviewAdjustment(ctx, SessionFromContext(ctx), id)
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, preview)
	}
}

func adjustmentsThisMonthHandler(svc *service.ContractService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/v1/contracts/adjustments-this-month")
		defer span.End()

		adjustments, err := svc.AdjustmentsThisMonth(ctx, SessionFromContext(ctx))
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, adjustments)
	}
}
