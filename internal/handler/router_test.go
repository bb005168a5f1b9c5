package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
	"github.com/inmonea/inmonea-bff-go/internal/handler"
	"github.com/inmonea/inmonea-bff-go/internal/infra/cache"
	"github.com/inmonea/inmonea-bff-go/internal/infra/observability"
	"github.com/inmonea/inmonea-bff-go/internal/service"

	"go.uber.org/zap"
)

// --- Mocks ---

type fakeAuthStore struct {
	user *domain.User
}

func (f *fakeAuthStore) LoginTenant(_ context.Context, _ *domain.TenantLoginRequest) (string, *domain.User, error) {
	return "upstream-token", f.user, nil
}

func (f *fakeAuthStore) LoginAdmin(_ context.Context, _ *domain.AdminLoginRequest) (string, *domain.User, error) {
	return "upstream-token", f.user, nil
}

func (f *fakeAuthStore) VerifyEmail(_ context.Context, _ string) (*domain.VerifyEmailResponse, error) {
	return &domain.VerifyEmailResponse{Message: "Email verificado"}, nil
}

func (f *fakeAuthStore) ChangePassword(_ context.Context, _ *domain.Session, _ *domain.ChangePasswordRequest) error {
	return nil
}

func (f *fakeAuthStore) UpdatePreferences(_ context.Context, sess *domain.Session, _ map[string]any) (*domain.User, error) {
	u := sess.User
	return &u, nil
}

type fakePropertyStore struct{}

func (f *fakePropertyStore) ListProperties(_ context.Context, _ *domain.Session) ([]domain.Property, error) {
	return []domain.Property{{ID: 1, Title: "Depto Centro", Status: domain.PropertyAvailable, Price: 100}}, nil
}

func (f *fakePropertyStore) GetProperty(_ context.Context, _ *domain.Session, id int64) (*domain.Property, error) {
	return &domain.Property{ID: id}, nil
}

func (f *fakePropertyStore) CreateProperty(_ context.Context, _ *domain.Session, in *domain.PropertyInput) (*domain.Property, error) {
	return &domain.Property{ID: 2, Title: in.Title}, nil
}

func (f *fakePropertyStore) UpdateProperty(_ context.Context, _ *domain.Session, id int64, in *domain.PropertyInput) (*domain.Property, error) {
	return &domain.Property{ID: id, Title: in.Title}, nil
}

func (f *fakePropertyStore) DeleteProperty(_ context.Context, _ *domain.Session, _ int64) error {
	return nil
}

type fakeProber struct{}

func (f *fakeProber) FetchInstances(_ context.Context) ([]domain.GatewayInstance, error) {
	return []domain.GatewayInstance{}, nil
}

func (f *fakeProber) ConnectionState(_ context.Context, _ string) (string, error) {
	return "open", nil
}

func (f *fakeProber) LogoutInstance(_ context.Context, _ string) error {
	return nil
}

func newTestRouter(user *domain.User) (http.Handler, *service.Sessions) {
	logger := zap.NewNop()
	metrics := observability.NewMetrics()
	sessions := service.NewSessions(
		cache.New[domain.Session](time.Hour),
		"router-test-secret",
		time.Hour,
		metrics,
		logger,
	)
	monitor := service.NewGatewayMonitor(&fakeProber{}, metrics, logger)

	svcs := &handler.Services{
		Auth:       service.NewAuthService(&fakeAuthStore{user: user}, sessions, logger),
		Sessions:   sessions,
		Properties: service.NewPropertyService(&fakePropertyStore{}, logger),
		Payments:   service.NewPaymentService(nil, logger),
		Gateway:    monitor,
	}

	return handler.NewRouter(svcs, "http://localhost:5173", metrics, logger), sessions
}

func loginFor(t *testing.T, router http.Handler) string {
	t.Helper()
	body, _ := json.Marshal(domain.TenantLoginRequest{NombreInmobiliaria: "Inmo Test", Password: "secret"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login/tenant", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	var resp domain.LoginResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	return resp.AccessToken
}

// --- Tests ---

func TestRouter_OperationalEndpoints(t *testing.T) {
	router, _ := newTestRouter(&domain.User{Role: domain.RoleAdmin})

	for _, path := range []string{"/healthz", "/readyz", "/metrics", "/ping"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestRouter_RequestDurationRecorded(t *testing.T) {
	router, _ := newTestRouter(&domain.User{Role: domain.RoleAdmin})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/plans", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// The histogram is labeled with the route pattern, not the raw path.
	want := `bff_request_duration_seconds_count{operation="GET /api/v1/plans"} 1`
	if !strings.Contains(rec.Body.String(), want) {
		t.Errorf("expected scrape to contain %q", want)
	}
}

func TestRouter_ProtectedRouteWithoutToken(t *testing.T) {
	router, _ := newTestRouter(&domain.User{Role: domain.RoleAdmin})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["redirect"] != "/login" {
		t.Errorf("expected redirect '/login', got '%s'", body["redirect"])
	}
}

func TestRouter_LoginThenAuthorizedRequest(t *testing.T) {
	router, _ := newTestRouter(&domain.User{Email: "a@b.c", Role: domain.RoleAdmin, TenantID: "t-1"})
	token := loginFor(t, router)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var properties []domain.Property
	if err := json.NewDecoder(rec.Body).Decode(&properties); err != nil {
		t.Fatalf("failed to decode properties: %v", err)
	}
	if len(properties) != 1 {
		t.Errorf("expected 1 property, got %d", len(properties))
	}
}

func TestRouter_RevokedSessionGetsLoginRedirect(t *testing.T) {
	router, sessions := newTestRouter(&domain.User{Email: "a@b.c", Role: domain.RoleAdmin, TenantID: "t-1"})
	token := loginFor(t, router)

	sess, err := sessions.Validate(token)
	if err != nil {
		t.Fatalf("expected valid session, got %v", err)
	}
	sessions.Revoke(sess.ID)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var body map[string]string
	json.NewDecoder(rec.Body).Decode(&body)
	if body["redirect"] != "/login" {
		t.Errorf("expected redirect '/login', got '%s'", body["redirect"])
	}
}

func TestRouter_AdminRoutesRequireSuperAdmin(t *testing.T) {
	router, _ := newTestRouter(&domain.User{Email: "a@b.c", Role: domain.RoleAdmin, TenantID: "t-1"})
	token := loginFor(t, router)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/tenants", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-superadmin, got %d", rec.Code)
	}
}

func TestRouter_PublicPlanCatalog(t *testing.T) {
	router, _ := newTestRouter(&domain.User{Role: domain.RoleAdmin})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/plans", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var plans []domain.Plan
	if err := json.NewDecoder(rec.Body).Decode(&plans); err != nil {
		t.Fatalf("failed to decode plans: %v", err)
	}
	if len(plans) != 3 {
		t.Fatalf("expected 3 plans, got %d", len(plans))
	}
	if plans[2].Name != domain.PlanPremium || plans[2].Price != domain.PlanPremiumPrice {
		t.Errorf("unexpected premium plan entry: %+v", plans[2])
	}
}

func TestRouter_LoginRedirectField(t *testing.T) {
	cases := []struct {
		role     string
		redirect string
	}{
		{domain.RoleAdmin, "/dashboard"},
		{domain.RoleOperator, "/dashboard"},
		{domain.RoleSuperAdmin, "/admin"},
	}

	for _, tc := range cases {
		router, _ := newTestRouter(&domain.User{Email: "x@y.z", Role: tc.role})

		body, _ := json.Marshal(domain.AdminLoginRequest{Email: "x@y.z", Password: "secret"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login/admin", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("role %s: login failed with %d", tc.role, rec.Code)
		}
		var resp domain.LoginResponse
		json.NewDecoder(rec.Body).Decode(&resp)
		if resp.Redirect != tc.redirect {
			t.Errorf("role %s: expected redirect '%s', got '%s'", tc.role, tc.redirect, resp.Redirect)
		}
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	router, _ := newTestRouter(&domain.User{Role: domain.RoleAdmin})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/properties", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "GET")
	req.Header.Set("Access-Control-Request-Headers", "Authorization, X-Tenant-ID")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("expected allowed origin echoed, got '%s'", got)
	}
}
