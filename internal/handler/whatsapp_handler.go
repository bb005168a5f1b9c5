package handler

import (
	"net/http"

	"github.com/inmonea/inmonea-bff-go/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// WhatsApp — /api/v1/whatsapp
// ============================================================

func whatsappStatusHandler(svc *service.WhatsAppService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/v1/whatsapp/status")
		defer span.End()

		status, err := svc.GetStatus(ctx, SessionFromContext(ctx))
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, status)
	}
}

func whatsappConnectHandler(svc *service.WhatsAppService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /api/v1/whatsapp/connect")
		defer span.End()

		status, err := svc.Connect(ctx, SessionFromContext(ctx))
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, status)
	}
}

func whatsappLogoutHandler(svc *service.WhatsAppService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /api/v1/whatsapp/logout")
		defer span.End()

		status, err := svc.Logout(ctx, SessionFromContext(ctx))
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, status)
	}
}

func whatsappSessionsHandler(svc *service.WhatsAppService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/v1/whatsapp/sessions")
		defer span.End()

		records, err := svc.ListSessions(ctx, SessionFromContext(ctx))
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, records)
	}
}

func whatsappCreateSessionHandler(svc *service.WhatsAppService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /api/v1/whatsapp/sessions/create")
		defer span.End()

		record, err := svc.CreateSession(ctx, SessionFromContext(ctx))
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusCreated, record)
	}
}
