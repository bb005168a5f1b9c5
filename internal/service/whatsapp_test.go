package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
	"github.com/inmonea/inmonea-bff-go/internal/infra/cache"
	"github.com/inmonea/inmonea-bff-go/internal/infra/observability"
	"github.com/inmonea/inmonea-bff-go/internal/service"

	"go.uber.org/zap"
)

// --- Mocks ---

type mockWhatsAppStore struct {
	status     *domain.WhatsAppStatus
	fetchErr   error
	connectErr error
	logoutErr  error

	fetchCalls int
}

func (m *mockWhatsAppStore) FetchStatus(_ context.Context, _ *domain.Session) (*domain.WhatsAppStatus, error) {
	m.fetchCalls++
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return m.status, nil
}

func (m *mockWhatsAppStore) Connect(_ context.Context, _ *domain.Session) (*domain.WhatsAppStatus, error) {
	if m.connectErr != nil {
		return nil, m.connectErr
	}
	return &domain.WhatsAppStatus{Status: domain.WhatsAppQRPending, QR: "data:image/png;base64,AAA"}, nil
}

func (m *mockWhatsAppStore) Logout(_ context.Context, _ *domain.Session) error {
	return m.logoutErr
}

func (m *mockWhatsAppStore) ListSessions(_ context.Context, _ *domain.Session) ([]domain.WhatsAppSession, error) {
	return []domain.WhatsAppSession{}, nil
}

func (m *mockWhatsAppStore) CreateSession(_ context.Context, _ *domain.Session) (*domain.WhatsAppSession, error) {
	return &domain.WhatsAppSession{ID: 1}, nil
}

func testSession() *domain.Session {
	return &domain.Session{
		ID:   "s-1",
		User: domain.User{Email: "a@b.c", Role: domain.RoleAdmin, TenantID: "t-1"},
	}
}

func newWhatsAppService(store *mockWhatsAppStore) *service.WhatsAppService {
	return service.NewWhatsAppService(store, cache.New[domain.WhatsAppStatus](15*time.Second), observability.NewMetrics(), zap.NewNop())
}

// counterValue reads one labeled counter back from the registry.
func counterValue(t *testing.T, metrics *observability.Metrics, name, label, value string) float64 {
	t.Helper()
	families, err := metrics.Registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == label && lp.GetValue() == value {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

// --- Tests ---

func TestWhatsAppGetStatus_ForbiddenMapsToError(t *testing.T) {
	store := &mockWhatsAppStore{fetchErr: &domain.ErrPlanRequired{}}
	svc := newWhatsAppService(store)

	status, err := svc.GetStatus(context.Background(), testSession())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if status.Status != domain.WhatsAppError {
		t.Errorf("expected status '%s', got '%s'", domain.WhatsAppError, status.Status)
	}
}

func TestWhatsAppGetStatus_GenericFailureMapsToNotCreated(t *testing.T) {
	store := &mockWhatsAppStore{fetchErr: errors.New("connection refused")}
	svc := newWhatsAppService(store)

	status, err := svc.GetStatus(context.Background(), testSession())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if status.Status != domain.WhatsAppNotCreated {
		t.Errorf("expected status '%s', got '%s'", domain.WhatsAppNotCreated, status.Status)
	}
}

func TestWhatsAppGetStatus_SessionExpiryPropagates(t *testing.T) {
	store := &mockWhatsAppStore{fetchErr: &domain.ErrSessionExpired{}}
	svc := newWhatsAppService(store)

	_, err := svc.GetStatus(context.Background(), testSession())
	var expired *domain.ErrSessionExpired
	if !errors.As(err, &expired) {
		t.Fatalf("expected ErrSessionExpired to propagate, got %v", err)
	}
}

func TestWhatsAppGetStatus_SecondCallServedFromCache(t *testing.T) {
	store := &mockWhatsAppStore{status: &domain.WhatsAppStatus{Status: domain.WhatsAppConnected}}
	svc := newWhatsAppService(store)
	sess := testSession()

	if _, err := svc.GetStatus(context.Background(), sess); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := svc.GetStatus(context.Background(), sess); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if store.fetchCalls != 1 {
		t.Errorf("expected 1 upstream fetch, got %d", store.fetchCalls)
	}
}

func TestWhatsAppGetStatus_CacheCountersMove(t *testing.T) {
	metrics := observability.NewMetrics()
	store := &mockWhatsAppStore{status: &domain.WhatsAppStatus{Status: domain.WhatsAppConnected}}
	svc := service.NewWhatsAppService(store, cache.New[domain.WhatsAppStatus](15*time.Second), metrics, zap.NewNop())
	sess := testSession()

	if _, err := svc.GetStatus(context.Background(), sess); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := svc.GetStatus(context.Background(), sess); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if got := counterValue(t, metrics, "bff_cache_misses_total", "cache", "status"); got != 1 {
		t.Errorf("expected 1 cache miss, got %v", got)
	}
	if got := counterValue(t, metrics, "bff_cache_hits_total", "cache", "status"); got != 1 {
		t.Errorf("expected 1 cache hit, got %v", got)
	}
}

func TestWhatsAppLogout_SnapshotFlipsImmediately(t *testing.T) {
	store := &mockWhatsAppStore{status: &domain.WhatsAppStatus{Status: domain.WhatsAppConnected}}
	svc := newWhatsAppService(store)
	sess := testSession()

	status, err := svc.Logout(context.Background(), sess)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if status.Status != domain.WhatsAppDisconnected {
		t.Errorf("expected status '%s', got '%s'", domain.WhatsAppDisconnected, status.Status)
	}

	// The next poll reads DISCONNECTED from the cache without fetching.
	cached, err := svc.GetStatus(context.Background(), sess)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cached.Status != domain.WhatsAppDisconnected {
		t.Errorf("expected cached status '%s', got '%s'", domain.WhatsAppDisconnected, cached.Status)
	}
	if store.fetchCalls != 0 {
		t.Errorf("expected no upstream fetch after logout, got %d", store.fetchCalls)
	}
}

func TestWhatsAppConnect_ReturnsQR(t *testing.T) {
	store := &mockWhatsAppStore{}
	svc := newWhatsAppService(store)

	status, err := svc.Connect(context.Background(), testSession())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if status.Status != domain.WhatsAppQRPending {
		t.Errorf("expected status '%s', got '%s'", domain.WhatsAppQRPending, status.Status)
	}
	if status.QR == "" {
		t.Error("expected a QR payload")
	}
}
