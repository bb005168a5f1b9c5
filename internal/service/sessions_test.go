package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
	"github.com/inmonea/inmonea-bff-go/internal/infra/cache"
	"github.com/inmonea/inmonea-bff-go/internal/infra/observability"
	"github.com/inmonea/inmonea-bff-go/internal/service"

	"go.uber.org/zap"
)

func newSessions(t *testing.T) *service.Sessions {
	t.Helper()
	return service.NewSessions(
		cache.New[domain.Session](time.Hour),
		"test-secret",
		time.Hour,
		observability.NewMetrics(),
		zap.NewNop(),
	)
}

func TestSessions_CreateAndValidate(t *testing.T) {
	sessions := newSessions(t)

	user := &domain.User{Email: "admin@inmo.test", Role: domain.RoleAdmin, TenantID: "t-1"}
	token, sess, err := sessions.Create(user, "upstream-token-abc")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}
	if sess.AccessToken != "upstream-token-abc" {
		t.Errorf("expected upstream token stored, got '%s'", sess.AccessToken)
	}

	got, err := sessions.Validate(token)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.ID != sess.ID {
		t.Errorf("expected session id '%s', got '%s'", sess.ID, got.ID)
	}
	if got.User.Email != "admin@inmo.test" {
		t.Errorf("expected user email 'admin@inmo.test', got '%s'", got.User.Email)
	}
}

func TestSessions_ValidateGarbageToken(t *testing.T) {
	sessions := newSessions(t)

	_, err := sessions.Validate("not-a-jwt")
	var unauthorized *domain.ErrUnauthorized
	if !errors.As(err, &unauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestSessions_RevokedSessionIsExpired(t *testing.T) {
	sessions := newSessions(t)

	user := &domain.User{Email: "op@inmo.test", Role: domain.RoleOperator, TenantID: "t-2"}
	token, sess, err := sessions.Create(user, "upstream")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	sessions.Revoke(sess.ID)

	_, err = sessions.Validate(token)
	var expired *domain.ErrSessionExpired
	if !errors.As(err, &expired) {
		t.Fatalf("expected ErrSessionExpired after revoke, got %v", err)
	}
}

func TestSessions_TokenSignedWithOtherSecretRejected(t *testing.T) {
	sessions := newSessions(t)
	other := service.NewSessions(
		cache.New[domain.Session](time.Hour),
		"different-secret",
		time.Hour,
		observability.NewMetrics(),
		zap.NewNop(),
	)

	user := &domain.User{Email: "x@inmo.test", Role: domain.RoleAdmin}
	token, _, err := other.Create(user, "upstream")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	_, err = sessions.Validate(token)
	var unauthorized *domain.ErrUnauthorized
	if !errors.As(err, &unauthorized) {
		t.Fatalf("expected ErrUnauthorized for foreign signature, got %v", err)
	}
}
