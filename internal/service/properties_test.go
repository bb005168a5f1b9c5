package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
	"github.com/inmonea/inmonea-bff-go/internal/service"

	"go.uber.org/zap"
)

// --- Mocks ---

type mockPropertyStore struct {
	properties []domain.Property
	err        error
}

func (m *mockPropertyStore) ListProperties(_ context.Context, _ *domain.Session) ([]domain.Property, error) {
	return m.properties, m.err
}

func (m *mockPropertyStore) GetProperty(_ context.Context, _ *domain.Session, id int64) (*domain.Property, error) {
	for i := range m.properties {
		if m.properties[i].ID == id {
			return &m.properties[i], nil
		}
	}
	return nil, &domain.ErrNotFound{Resource: "propiedad", ID: "?"}
}

func (m *mockPropertyStore) CreateProperty(_ context.Context, _ *domain.Session, in *domain.PropertyInput) (*domain.Property, error) {
	return &domain.Property{ID: 99, Title: in.Title, Address: in.Address, Price: in.Price}, m.err
}

func (m *mockPropertyStore) UpdateProperty(_ context.Context, _ *domain.Session, id int64, in *domain.PropertyInput) (*domain.Property, error) {
	return &domain.Property{ID: id, Title: in.Title}, m.err
}

func (m *mockPropertyStore) DeleteProperty(_ context.Context, _ *domain.Session, _ int64) error {
	return m.err
}

func sampleProperties() []domain.Property {
	return []domain.Property{
		{ID: 1, Title: "Departamento Centro", Address: "San Martín 120", Status: domain.PropertyAvailable, Price: 250000},
		{ID: 2, Title: "Casa Quinta", Address: "Ruta 8 km 42", Status: domain.PropertyRented, Price: 480000},
		{ID: 3, Title: "Monoambiente Centro", Address: "Belgrano 55", Status: domain.PropertyAvailable, Price: 180000},
		{ID: 4, Title: "Local comercial", Address: "Av. Centro 900", Status: domain.PropertyReserved, Price: 600000},
	}
}

// --- Tests ---

func TestPropertyList_QueryAndStatusAreConjunctive(t *testing.T) {
	svc := service.NewPropertyService(&mockPropertyStore{properties: sampleProperties()}, zap.NewNop())

	result, err := svc.List(context.Background(), testSession(), domain.PropertyFilter{
		Query:  "centro",
		Status: domain.PropertyAvailable,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// "centro" matches 1, 3 (title) and 4 (address), but only 1 and 3 are DISPONIBLE.
	if len(result) != 2 {
		t.Fatalf("expected 2 results, got %d", len(result))
	}
	for _, p := range result {
		if p.Status != domain.PropertyAvailable {
			t.Errorf("property %d: expected status DISPONIBLE, got %s", p.ID, p.Status)
		}
	}
}

func TestPropertyList_QueryMatchesAddress(t *testing.T) {
	svc := service.NewPropertyService(&mockPropertyStore{properties: sampleProperties()}, zap.NewNop())

	result, err := svc.List(context.Background(), testSession(), domain.PropertyFilter{Query: "belgrano"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result) != 1 || result[0].ID != 3 {
		t.Fatalf("expected property 3, got %+v", result)
	}
}

func TestPropertyList_SortByPrice(t *testing.T) {
	svc := service.NewPropertyService(&mockPropertyStore{properties: sampleProperties()}, zap.NewNop())

	asc, err := svc.List(context.Background(), testSession(), domain.PropertyFilter{Sort: "price_asc"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for i := 1; i < len(asc); i++ {
		if asc[i-1].Price > asc[i].Price {
			t.Fatalf("price_asc not sorted: %v > %v", asc[i-1].Price, asc[i].Price)
		}
	}

	desc, err := svc.List(context.Background(), testSession(), domain.PropertyFilter{Sort: "price_desc"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if desc[0].ID != 4 {
		t.Errorf("expected most expensive first, got property %d", desc[0].ID)
	}
}

func TestPropertyCreate_RequiresTitleAndAddress(t *testing.T) {
	svc := service.NewPropertyService(&mockPropertyStore{}, zap.NewNop())

	_, err := svc.Create(context.Background(), testSession(), &domain.PropertyInput{Address: "x"})
	var validation *domain.ErrValidation
	if !errors.As(err, &validation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	_, err = svc.Create(context.Background(), testSession(), &domain.PropertyInput{Title: "x"})
	if !errors.As(err, &validation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
