package core

import (
	"context"
	"fmt"
	"net/http"

	"github.com/inmonea/inmonea-bff-go/internal/domain"

	"go.opentelemetry.io/otel/attribute"
)

// ListProperties fetches the tenant's full property list.
func (c *Client) ListProperties(ctx context.Context, sess *domain.Session) ([]domain.Property, error) {
	ctx, span := tracer.Start(ctx, "Core.ListProperties")
	defer span.End()

	properties := []domain.Property{}
	if err := c.get(ctx, "properties/", sess, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// GetProperty fetches one property by ID.
func (c *Client) GetProperty(ctx context.Context, sess *domain.Session, id int64) (*domain.Property, error) {
	ctx, span := tracer.Start(ctx, "Core.GetProperty")
	defer span.End()
	span.SetAttributes(attribute.Int64("property.id", id))

	var p domain.Property
	if err := c.get(ctx, fmt.Sprintf("properties/%d", id), sess, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProperty creates a property.
func (c *Client) CreateProperty(ctx context.Context, sess *domain.Session, in *domain.PropertyInput) (*domain.Property, error) {
	ctx, span := tracer.Start(ctx, "Core.CreateProperty")
	defer span.End()

	var p domain.Property
	if err := c.send(ctx, http.MethodPost, "properties/", in, sess, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProperty replaces a property.
func (c *Client) UpdateProperty(ctx context.Context, sess *domain.Session, id int64, in *domain.PropertyInput) (*domain.Property, error) {
	ctx, span := tracer.Start(ctx, "Core.UpdateProperty")
	defer span.End()
	span.SetAttributes(attribute.Int64("property.id", id))

	var p domain.Property
	if err := c.send(ctx, http.MethodPut, fmt.Sprintf("properties/%d", id), in, sess, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProperty removes a property.
func (c *Client) DeleteProperty(ctx context.Context, sess *domain.Session, id int64) error {
	ctx, span := tracer.Start(ctx, "Core.DeleteProperty")
	defer span.End()
	span.SetAttributes(attribute.Int64("property.id", id))

	return c.send(ctx, http.MethodDelete, fmt.Sprintf("properties/%d", id), nil, sess, nil)
}
