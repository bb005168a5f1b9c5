package core

import (
	"context"
	"fmt"
	"net/http"

	"github.com/inmonea/inmonea-bff-go/internal/domain"

	"go.opentelemetry.io/otel/attribute"
)

// ListPeople fetches the tenant's contact book.
func (c *Client) ListPeople(ctx context.Context, sess *domain.Session) ([]domain.Person, error) {
	ctx, span := tracer.Start(ctx, "Core.ListPeople")
	defer span.End()

	people := []domain.Person{}
	if err := c.get(ctx, "people/", sess, &people); err != nil {
		return nil, err
	}
	return people, nil
}

// GetPerson fetches one person by ID.
func (c *Client) GetPerson(ctx context.Context, sess *domain.Session, id int64) (*domain.Person, error) {
	ctx, span := tracer.Start(ctx, "Core.GetPerson")
	defer span.End()
	span.SetAttributes(attribute.Int64("person.id", id))

	var p domain.Person
	if err := c.get(ctx, fmt.Sprintf("people/%d", id), sess, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePerson creates a person.
func (c *Client) CreatePerson(ctx context.Context, sess *domain.Session, in *domain.PersonInput) (*domain.Person, error) {
	ctx, span := tracer.Start(ctx, "Core.CreatePerson")
	defer span.End()

	var p domain.Person
	if err := c.send(ctx, http.MethodPost, "people/", in, sess, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePerson replaces a person.
func (c *Client) UpdatePerson(ctx context.Context, sess *domain.Session, id int64, in *domain.PersonInput) (*domain.Person, error) {
	ctx, span := tracer.Start(ctx, "Core.UpdatePerson")
	defer span.End()
	span.SetAttributes(attribute.Int64("person.id", id))

	var p domain.Person
	if err := c.send(ctx, http.MethodPut, fmt.Sprintf("people/%d", id), in, sess, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePerson removes a person.
func (c *Client) DeletePerson(ctx context.Context, sess *domain.Session, id int64) error {
	ctx, span := tracer.Start(ctx, "Core.DeletePerson")
	defer span.End()
	span.SetAttributes(attribute.Int64("person.id", id))

	return c.send(ctx, http.MethodDelete, fmt.Sprintf("people/%d", id), nil, sess, nil)
}
