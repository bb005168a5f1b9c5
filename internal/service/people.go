package service

import (
	"context"
	"strings"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
	"github.com/inmonea/inmonea-bff-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var personTracer = otel.Tracer("service/people")

// PersonService handles the people screens (tenants, owners, guarantors).
type PersonService struct {
	store  port.PersonStore
	logger *zap.Logger
}

// NewPersonService creates a new person service.
func NewPersonService(store port.PersonStore, logger *zap.Logger) *PersonService {
	return &PersonService{store: store, logger: logger}
}

// List fetches all people, optionally narrowed by person type.
func (s *PersonService) List(ctx context.Context, sess *domain.Session, personType string) ([]domain.Person, error) {
	ctx, span := personTracer.Start(ctx, "PersonService.List")
	defer span.End()

	people, err := s.store.ListPeople(ctx, sess)
	if err != nil {
		return nil, err
	}

	if personType != "" {
		filtered := make([]domain.Person, 0, len(people))
		for _, p := range people {
			if p.PersonType == personType {
				filtered = append(filtered, p)
			}
		}
		people = filtered
	}

	return people, nil
}

// Get fetches one person.
func (s *PersonService) Get(ctx context.Context, sess *domain.Session, id int64) (*domain.Person, error) {
	ctx, span := personTracer.Start(ctx, "PersonService.Get")
	defer span.End()

	return s.store.GetPerson(ctx, sess, id)
}

// Create validates and creates a person.
func (s *PersonService) Create(ctx context.Context, sess *domain.Session, in *domain.PersonInput) (*domain.Person, error) {
	ctx, span := personTracer.Start(ctx, "PersonService.Create")
	defer span.End()

	if err := validatePerson(in); err != nil {
		return nil, err
	}
	return s.store.CreatePerson(ctx, sess, in)
}

// Update validates and replaces a person.
func (s *PersonService) Update(ctx context.Context, sess *domain.Session, id int64, in *domain.PersonInput) (*domain.Person, error) {
	ctx, span := personTracer.Start(ctx, "PersonService.Update")
	defer span.End()

	if err := validatePerson(in); err != nil {
		return nil, err
	}
	return s.store.UpdatePerson(ctx, sess, id, in)
}

// Delete removes a person.
func (s *PersonService) Delete(ctx context.Context, sess *domain.Session, id int64) error {
	ctx, span := personTracer.Start(ctx, "PersonService.Delete")
	defer span.End()

	return s.store.DeletePerson(ctx, sess, id)
}

func validatePerson(in *domain.PersonInput) error {
	if strings.TrimSpace(in.FullName) == "" {
		return &domain.ErrValidation{Field: "full_name", Message: "El nombre completo es obligatorio"}
	}
	switch in.PersonType {
	case domain.PersonInquilino, domain.PersonPropietario, domain.PersonGarante:
		return nil
	default:
		return &domain.ErrValidation{Field: "person_type", Message: "Tipo de persona inválido"}
	}
}
