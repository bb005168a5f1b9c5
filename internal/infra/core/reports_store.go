package core

import (
	"context"
	"net/http"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
)

// ExportMovements fetches the movements CSV blob for download
// passthrough. Returned as-is with its upstream content type.
func (c *Client) ExportMovements(ctx context.Context, sess *domain.Session) ([]byte, string, error) {
	ctx, span := tracer.Start(ctx, "Core.ExportMovements")
	defer span.End()

	data, contentType, err := c.doRaw(ctx, http.MethodGet, "reports/export-movements", sess)
	if err != nil {
		return nil, "", c.translate(err)
	}
	if contentType == "" {
		contentType = "text/csv; charset=utf-8"
	}
	return data, contentType, nil
}
