// Package service — Sessions owns the BFF session lifecycle: it signs
// the JWT handed to the SPA and keeps the upstream access token
// server-side, keyed by session ID.
package service

import (
	"fmt"
	"time"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
	"github.com/inmonea/inmonea-bff-go/internal/infra/observability"
	"github.com/inmonea/inmonea-bff-go/internal/port"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sessions manages BFF sessions.
type Sessions struct {
	cache   port.Cache[domain.Session]
	secret  []byte
	ttl     time.Duration
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewSessions creates the session manager.
func NewSessions(cache port.Cache[domain.Session], secret string, ttl time.Duration, metrics *observability.Metrics, logger *zap.Logger) *Sessions {
	return &Sessions{
		cache:   cache,
		secret:  []byte(secret),
		ttl:     ttl,
		metrics: metrics,
		logger:  logger,
	}
}

// SessionClaims are the custom claims in session tokens.
type SessionClaims struct {
	Sid      string `json:"sid"`
	Role     string `json:"role"`
	TenantID string `json:"tenant_id,omitempty"`
	Type     string `json:"type"`
	jwt.RegisteredClaims
}

// Create stores a new session and returns the signed token for the SPA.
func (s *Sessions) Create(user *domain.User, upstreamToken string) (string, *domain.Session, error) {
	sess := domain.Session{
		ID:          uuid.New().String(),
		AccessToken: upstreamToken,
		User:        *user,
		CreatedAt:   time.Now(),
	}

	now := time.Now()
	claims := SessionClaims{
		Sid:      sess.ID,
		Role:     user.Role,
		TenantID: user.TenantID,
		Type:     "session",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			Issuer:    "inmonea-bff",
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign session token: %w", err)
	}

	s.cache.SetTTL(sess.ID, sess, s.ttl)
	s.metrics.SetActiveSessions(s.cache.Len())

	s.logger.Info("session created",
		zap.String("session_id", sess.ID),
		zap.String("role", user.Role),
		zap.String("tenant_id", user.TenantID),
	)

	return token, &sess, nil
}

// Validate parses a session token and loads the live session. A valid
// token whose session is gone (logged out, expired, restarted) counts
// as an expired session so the SPA returns to /login.
func (s *Sessions) Validate(tokenString string) (*domain.Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, &domain.ErrUnauthorized{Message: "Token inválido o expirado"}
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, &domain.ErrUnauthorized{Message: "Token inválido"}
	}
	if claims.Type != "session" {
		return nil, &domain.ErrUnauthorized{Message: "Tipo de token inválido"}
	}

	sess, found := s.cache.Get(claims.Sid)
	if !found {
		return nil, &domain.ErrSessionExpired{}
	}
	return &sess, nil
}

// Revoke drops a session (logout or upstream 401).
func (s *Sessions) Revoke(sessionID string) {
	s.cache.Delete(sessionID)
	s.metrics.SetActiveSessions(s.cache.Len())
	s.logger.Info("session revoked", zap.String("session_id", sessionID))
}

// Refresh re-stores the session after its user data changed (e.g. a
// theme preference update). Last write wins.
func (s *Sessions) Refresh(sess *domain.Session) {
	elapsed := time.Since(sess.CreatedAt)
	remaining := s.ttl - elapsed
	if remaining <= 0 {
		return
	}
	s.cache.SetTTL(sess.ID, *sess, remaining)
}
