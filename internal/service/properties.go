package service

import (
	"context"
	"sort"
	"strings"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
	"github.com/inmonea/inmonea-bff-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var propertyTracer = otel.Tracer("service/properties")

// PropertyService handles the property screens. Lists are always
// refetched from the core API; filtering and sorting happen here, on
// the full snapshot, the way the SPA filtered in memory.
type PropertyService struct {
	store  port.PropertyStore
	logger *zap.Logger
}

// NewPropertyService creates a new property service.
func NewPropertyService(store port.PropertyStore, logger *zap.Logger) *PropertyService {
	return &PropertyService{store: store, logger: logger}
}

// List fetches all properties and applies the filter. Query matches
// title OR address (case-insensitive substring); Status is an exact
// match; both conditions are conjunctive.
func (s *PropertyService) List(ctx context.Context, sess *domain.Session, filter domain.PropertyFilter) ([]domain.Property, error) {
	ctx, span := propertyTracer.Start(ctx, "PropertyService.List")
	defer span.End()
	span.SetAttributes(attribute.String("filter.query", filter.Query))

	properties, err := s.store.ListProperties(ctx, sess)
	if err != nil {
		return nil, err
	}

	if filter.Query != "" || filter.Status != "" {
		q := strings.ToLower(filter.Query)
		filtered := make([]domain.Property, 0, len(properties))
		for _, p := range properties {
			if q != "" &&
				!strings.Contains(strings.ToLower(p.Title), q) &&
				!strings.Contains(strings.ToLower(p.Address), q) {
				continue
			}
			if filter.Status != "" && p.Status != filter.Status {
				continue
			}
			filtered = append(filtered, p)
		}
		properties = filtered
	}

	switch filter.Sort {
	case "price_asc":
		sort.SliceStable(properties, func(i, j int) bool { return properties[i].Price < properties[j].Price })
	case "price_desc":
		sort.SliceStable(properties, func(i, j int) bool { return properties[i].Price > properties[j].Price })
	}

	return properties, nil
}

// Get fetches one property.
func (s *PropertyService) Get(ctx context.Context, sess *domain.Session, id int64) (*domain.Property, error) {
	ctx, span := propertyTracer.Start(ctx, "PropertyService.Get")
	defer span.End()

	return s.store.GetProperty(ctx, sess, id)
}

// Create validates and creates a property.
func (s *PropertyService) Create(ctx context.Context, sess *domain.Session, in *domain.PropertyInput) (*domain.Property, error) {
	ctx, span := propertyTracer.Start(ctx, "PropertyService.Create")
	defer span.End()

	if err := validateProperty(in); err != nil {
		return nil, err
	}
	return s.store.CreateProperty(ctx, sess, in)
}

// Update validates and replaces a property.
func (s *PropertyService) Update(ctx context.Context, sess *domain.Session, id int64, in *domain.PropertyInput) (*domain.Property, error) {
	ctx, span := propertyTracer.Start(ctx, "PropertyService.Update")
	defer span.End()

	if err := validateProperty(in); err != nil {
		return nil, err
	}
	return s.store.UpdateProperty(ctx, sess, id, in)
}

// Delete removes a property.
func (s *PropertyService) Delete(ctx context.Context, sess *domain.Session, id int64) error {
	ctx, span := propertyTracer.Start(ctx, "PropertyService.Delete")
	defer span.End()

	return s.store.DeleteProperty(ctx, sess, id)
}

func validateProperty(in *domain.PropertyInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return &domain.ErrValidation{Field: "title", Message: "El título es obligatorio"}
	}
	if strings.TrimSpace(in.Address) == "" {
		return &domain.ErrValidation{Field: "address", Message: "La dirección es obligatoria"}
	}
	if in.Price < 0 {
		return &domain.ErrValidation{Field: "price", Message: "El precio no puede ser negativo"}
	}
	return nil
}
