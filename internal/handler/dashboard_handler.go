package handler

import (
	"net/http"

	"github.com/inmonea/inmonea-bff-go/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Dashboard — /api/v1/dashboard
// ============================================================

func dashboardMetricsHandler(svc *service.DashboardService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/v1/dashboard/metrics")
		defer span.End()

		metrics, err := svc.Metrics(ctx, SessionFromContext(ctx))
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, metrics)
	}
}
