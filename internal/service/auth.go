package service

import (
	"context"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
	"github.com/inmonea/inmonea-bff-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var authTracer = otel.Tracer("service/auth")

// AuthService orchestrates login against the core API and the local
// session lifecycle. Credential verification happens upstream; the BFF
// never sees a password hash.
type AuthService struct {
	store    port.AuthStore
	sessions *Sessions
	logger   *zap.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(store port.AuthStore, sessions *Sessions, logger *zap.Logger) *AuthService {
	return &AuthService{
		store:    store,
		sessions: sessions,
		logger:   logger,
	}
}

// LoginTenant handles POST /api/v1/auth/login/tenant.
func (s *AuthService) LoginTenant(ctx context.Context, req *domain.TenantLoginRequest) (*domain.LoginResponse, error) {
	ctx, span := authTracer.Start(ctx, "AuthService.LoginTenant")
	defer span.End()
	span.SetAttributes(attribute.String("tenant.name", req.NombreInmobiliaria))

	if req.NombreInmobiliaria == "" {
		return nil, &domain.ErrValidation{Field: "nombre_inmobiliaria", Message: "El nombre de la inmobiliaria es obligatorio"}
	}
	if req.Password == "" {
		return nil, &domain.ErrValidation{Field: "password", Message: "La contraseña es obligatoria"}
	}

	upstreamToken, user, err := s.store.LoginTenant(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.openSession(user, upstreamToken)
}

// LoginAdmin handles POST /api/v1/auth/login/admin.
func (s *AuthService) LoginAdmin(ctx context.Context, req *domain.AdminLoginRequest) (*domain.LoginResponse, error) {
	ctx, span := authTracer.Start(ctx, "AuthService.LoginAdmin")
	defer span.End()

	if req.Email == "" {
		return nil, &domain.ErrValidation{Field: "email", Message: "El email es obligatorio"}
	}
	if req.Password == "" {
		return nil, &domain.ErrValidation{Field: "password", Message: "La contraseña es obligatoria"}
	}

	upstreamToken, user, err := s.store.LoginAdmin(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.openSession(user, upstreamToken)
}

// openSession creates the BFF session and builds the login response.
// SUPERADMIN lands on the admin console, everyone else on the dashboard.
func (s *AuthService) openSession(user *domain.User, upstreamToken string) (*domain.LoginResponse, error) {
	signed, _, err := s.sessions.Create(user, upstreamToken)
	if err != nil {
		return nil, err
	}

	redirect := "/dashboard"
	if user.Role == domain.RoleSuperAdmin {
		redirect = "/admin"
	}

	s.logger.Info("user logged in",
		zap.String("role", user.Role),
		zap.String("tenant_id", user.TenantID),
		zap.String("redirect", redirect),
	)

	return &domain.LoginResponse{
		AccessToken: signed,
		TokenType:   "bearer",
		User:        *user,
		Redirect:    redirect,
	}, nil
}

// Logout revokes the session. The SPA drops its copy regardless.
func (s *AuthService) Logout(ctx context.Context, sess *domain.Session) {
	_, span := authTracer.Start(ctx, "AuthService.Logout")
	defer span.End()

	s.sessions.Revoke(sess.ID)
}

// VerifyEmail redeems a verification token. One attempt, no retry:
// either outcome (verified / invalid) is terminal for the link.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) (*domain.VerifyEmailResponse, error) {
	ctx, span := authTracer.Start(ctx, "AuthService.VerifyEmail")
	defer span.End()

	if token == "" {
		return nil, &domain.ErrValidation{Field: "token", Message: "Token de verificación faltante"}
	}
	return s.store.VerifyEmail(ctx, token)
}

// ChangePassword handles PUT /api/v1/auth/password.
func (s *AuthService) ChangePassword(ctx context.Context, sess *domain.Session, req *domain.ChangePasswordRequest) error {
	ctx, span := authTracer.Start(ctx, "AuthService.ChangePassword")
	defer span.End()

	if req.CurrentPassword == "" {
		return &domain.ErrValidation{Field: "current_password", Message: "La contraseña actual es obligatoria"}
	}
	if len(req.NewPassword) < 8 {
		return &domain.ErrValidation{Field: "new_password", Message: "La nueva contraseña debe tener al menos 8 caracteres"}
	}

	if err := s.store.ChangePassword(ctx, sess, req); err != nil {
		return err
	}

	s.logger.Info("password changed", zap.String("session_id", sess.ID))
	return nil
}

// UpdateTheme persists the theme preference upstream and into the
// session so subsequent reads see it immediately. Last write wins.
func (s *AuthService) UpdateTheme(ctx context.Context, sess *domain.Session, theme string) (*domain.User, error) {
	ctx, span := authTracer.Start(ctx, "AuthService.UpdateTheme")
	defer span.End()

	if theme != "light" && theme != "dark" {
		return nil, &domain.ErrValidation{Field: "theme", Message: "El tema debe ser 'light' o 'dark'"}
	}

	user, err := s.store.UpdatePreferences(ctx, sess, map[string]any{"theme": theme})
	if err != nil {
		return nil, err
	}

	sess.User = *user
	s.sessions.Refresh(sess)

	return user, nil
}

// Me returns the session's user profile.
func (s *AuthService) Me(sess *domain.Session) *domain.User {
	u := sess.User
	return &u
}
