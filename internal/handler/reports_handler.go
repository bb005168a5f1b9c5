package handler

import (
	"net/http"

	"github.com/inmonea/inmonea-bff-go/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Reportes — /api/v1/reports
// ============================================================

func exportMovementsHandler(svc *service.ReportService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/v1/reports/export-movements")
		defer span.End()

		data, contentType, err := svc.ExportMovements(ctx, SessionFromContext(ctx))
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", `attachment; filename="movimientos.csv"`)
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}
