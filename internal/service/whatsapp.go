package service

import (
	"context"
	"errors"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
	"github.com/inmonea/inmonea-bff-go/internal/infra/observability"
	"github.com/inmonea/inmonea-bff-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var whatsappTracer = otel.Tracer("service/whatsapp")

// WhatsAppService backs the connection panel. Status reads are
// coalesced per tenant and cached for a short TTL, so the panel's
// polling never stacks upstream calls.
type WhatsAppService struct {
	store   port.WhatsAppStore
	cache   port.Cache[domain.WhatsAppStatus]
	sf      singleflight.Group
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewWhatsAppService creates a new WhatsApp service.
func NewWhatsAppService(store port.WhatsAppStore, cache port.Cache[domain.WhatsAppStatus], metrics *observability.Metrics, logger *zap.Logger) *WhatsAppService {
	return &WhatsAppService{
		store:   store,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
	}
}

// GetStatus returns the panel state for the session's tenant. Failures
// never surface as errors: a 403 means the gateway rejected the tenant
// (ERROR), anything else reads as "no instance yet" (NOT_CREATED).
// Session expiry is the one exception — it must reach the handler so
// the SPA returns to /login.
func (s *WhatsAppService) GetStatus(ctx context.Context, sess *domain.Session) (*domain.WhatsAppStatus, error) {
	ctx, span := whatsappTracer.Start(ctx, "WhatsAppService.GetStatus")
	defer span.End()
	span.SetAttributes(attribute.String("tenant.id", sess.User.TenantID))

	key := sess.User.TenantID
	if cached, ok := s.cache.Get(key); ok {
		s.metrics.IncrCacheHit("status")
		return &cached, nil
	}
	s.metrics.IncrCacheMiss("status")

	v, err, _ := s.sf.Do(key, func() (any, error) {
		st, err := s.store.FetchStatus(ctx, sess)
		if err != nil {
			var expired *domain.ErrSessionExpired
			if errors.As(err, &expired) {
				return nil, err
			}

			status := domain.WhatsAppNotCreated
			var forbidden *domain.ErrForbidden
			var planReq *domain.ErrPlanRequired
			if errors.As(err, &forbidden) || errors.As(err, &planReq) {
				status = domain.WhatsAppError
			}

			s.logger.Warn("whatsapp status fetch failed",
				zap.String("tenant_id", key),
				zap.String("mapped_status", status),
				zap.Error(err),
			)
			return &domain.WhatsAppStatus{Status: status}, nil
		}
		return st, nil
	})
	if err != nil {
		return nil, err
	}

	st := v.(*domain.WhatsAppStatus)
	s.cache.Set(key, *st)
	return st, nil
}

// Connect creates/links the tenant's instance and returns the pairing
// QR. Regeneration after expiry is the same call. The snapshot flips to
// QR_PENDING immediately.
func (s *WhatsAppService) Connect(ctx context.Context, sess *domain.Session) (*domain.WhatsAppStatus, error) {
	ctx, span := whatsappTracer.Start(ctx, "WhatsAppService.Connect")
	defer span.End()

	st, err := s.store.Connect(ctx, sess)
	if err != nil {
		return nil, err
	}
	if st.Status == "" {
		st.Status = domain.WhatsAppQRPending
	}

	s.cache.Set(sess.User.TenantID, *st)
	s.logger.Info("whatsapp connect requested",
		zap.String("tenant_id", sess.User.TenantID),
		zap.String("status", st.Status),
	)
	return st, nil
}

// Logout disconnects the instance. The snapshot flips to DISCONNECTED
// right away instead of waiting for the next poll.
func (s *WhatsAppService) Logout(ctx context.Context, sess *domain.Session) (*domain.WhatsAppStatus, error) {
	ctx, span := whatsappTracer.Start(ctx, "WhatsAppService.Logout")
	defer span.End()

	if err := s.store.Logout(ctx, sess); err != nil {
		return nil, err
	}

	st := domain.WhatsAppStatus{Status: domain.WhatsAppDisconnected}
	s.cache.Set(sess.User.TenantID, st)
	s.logger.Info("whatsapp logged out", zap.String("tenant_id", sess.User.TenantID))
	return &st, nil
}

// ListSessions fetches the tenant's messaging session records.
func (s *WhatsAppService) ListSessions(ctx context.Context, sess *domain.Session) ([]domain.WhatsAppSession, error) {
	ctx, span := whatsappTracer.Start(ctx, "WhatsAppService.ListSessions")
	defer span.End()

	return s.store.ListSessions(ctx, sess)
}

// CreateSession registers a new messaging session record.
func (s *WhatsAppService) CreateSession(ctx context.Context, sess *domain.Session) (*domain.WhatsAppSession, error) {
	ctx, span := whatsappTracer.Start(ctx, "WhatsAppService.CreateSession")
	defer span.End()

	return s.store.CreateSession(ctx, sess)
}
