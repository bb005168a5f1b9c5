package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
	"github.com/inmonea/inmonea-bff-go/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ============================================================
// Shared helper functions
// ============================================================

type errorResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect,omitempty"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parseIDParam reads a numeric URL parameter. Zero means absent or
// malformed; callers turn that into a 400.
func parseIDParam(r *http.Request, name string) int64 {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// handleServiceError maps domain errors to HTTP responses. An expired
// session gets its server-side entry revoked and the SPA is told where
// to go next.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error, sessions *service.Sessions, logger *zap.Logger) {
	var expired *domain.ErrSessionExpired
	var unauthorized *domain.ErrUnauthorized
	var forbidden *domain.ErrForbidden
	var planRequired *domain.ErrPlanRequired
	var protected *domain.ErrProtectedTenant
	var notFound *domain.ErrNotFound
	var validation *domain.ErrValidation
	var conflict *domain.ErrConflict
	var circuitOpen *domain.ErrCircuitOpen
	var timeout *domain.ErrTimeout
	var upstream *domain.ErrUpstream

	switch {
	case errors.As(err, &expired):
		if sess := SessionFromContext(r.Context()); sess != nil {
			sessions.Revoke(sess.ID)
		}
		logger.Info("session expired", zap.String("path", r.URL.Path))
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error(), Redirect: "/login"})
	case errors.As(err, &unauthorized):
		logger.Warn("unauthorized", zap.String("error", err.Error()))
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.As(err, &forbidden):
		logger.Warn("forbidden access", zap.String("error", err.Error()))
		writeError(w, http.StatusForbidden, err.Error())
	case errors.As(err, &planRequired):
		logger.Debug("plan required", zap.String("error", err.Error()))
		writeError(w, http.StatusForbidden, err.Error())
	case errors.As(err, &protected):
		logger.Warn("protected tenant", zap.String("error", err.Error()))
		writeError(w, http.StatusForbidden, err.Error())
	case errors.As(err, &notFound):
		logger.Debug("not found", zap.String("error", err.Error()))
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &validation):
		logger.Debug("validation error", zap.String("error", err.Error()))
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &conflict):
		logger.Debug("conflict", zap.String("error", err.Error()))
		writeError(w, http.StatusConflict, err.Error())
	case errors.As(err, &circuitOpen):
		logger.Error("circuit breaker open", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, err.Error())
	case errors.As(err, &timeout):
		logger.Error("request timeout", zap.Error(err))
		writeError(w, http.StatusGatewayTimeout, err.Error())
	case errors.As(err, &upstream):
		logger.Error("upstream failure", zap.Error(err))
		writeError(w, http.StatusBadGateway, "Error al comunicarse con el servicio")
	default:
		logger.Error("unhandled error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Error interno del servidor")
	}
}
