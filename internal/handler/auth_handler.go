package handler

import (
	"encoding/json"
	"net/http"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
	"github.com/inmonea/inmonea-bff-go/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Autenticación — /api/v1/auth
// ============================================================

func loginTenantHandler(svc *service.AuthService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /api/v1/auth/login/tenant")
		defer span.End()

		var req domain.TenantLoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Cuerpo de solicitud inválido")
			return
		}

		resp, err := svc.LoginTenant(ctx, &req)
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func loginAdminHandler(svc *service.AuthService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /api/v1/auth/login/admin")
		defer span.End()

		var req domain.AdminLoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Cuerpo de solicitud inválido")
			return
		}

		resp, err := svc.LoginAdmin(ctx, &req)
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func verifyEmailHandler(svc *service.AuthService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/v1/auth/verify-email")
		defer span.End()

		resp, err := svc.VerifyEmail(ctx, r.URL.Query().Get("token"))
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func logoutHandler(svc *service.AuthService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /api/v1/auth/logout")
		defer span.End()

		svc.Logout(ctx, SessionFromContext(ctx))
		writeJSON(w, http.StatusOK, map[string]string{"message": "Sesión cerrada"})
	}
}

func meHandler(svc *service.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := tracer.Start(r.Context(), "GET /api/v1/auth/me")
		defer span.End()

		writeJSON(w, http.StatusOK, svc.Me(SessionFromContext(r.Context())))
	}
}

func changePasswordHandler(svc *service.AuthService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /api/v1/auth/password")
		defer span.End()

		var req domain.ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Cuerpo de solicitud inválido")
			return
		}

		if err := svc.ChangePassword(ctx, SessionFromContext(ctx), &req); err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Contraseña actualizada"})
	}
}

func updatePreferencesHandler(svc *service.AuthService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PATCH /api/v1/auth/preferences")
		defer span.End()

		var req domain.UpdatePreferencesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Cuerpo de solicitud inválido")
			return
		}

		user, err := svc.UpdateTheme(ctx, SessionFromContext(ctx), req.Theme)
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}
