package service

import (
	"context"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
	"github.com/inmonea/inmonea-bff-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var reportTracer = otel.Tracer("service/reports")

// ReportService streams core API report exports through unchanged.
type ReportService struct {
	store  port.ReportStore
	logger *zap.Logger
}

// NewReportService creates a new report service.
func NewReportService(store port.ReportStore, logger *zap.Logger) *ReportService {
	return &ReportService{store: store, logger: logger}
}

// ExportMovements fetches the movements export as produced upstream.
// The bytes and content type pass through untouched.
func (s *ReportService) ExportMovements(ctx context.Context, sess *domain.Session) ([]byte, string, error) {
	ctx, span := reportTracer.Start(ctx, "ReportService.ExportMovements")
	defer span.End()

	data, contentType, err := s.store.ExportMovements(ctx, sess)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("movements export served",
		zap.String("tenant_id", sess.User.TenantID),
		zap.Int("bytes", len(data)),
	)
	return data, contentType, nil
}
