package handler

import (
	"encoding/json"
	"net/http"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
	"github.com/inmonea/inmonea-bff-go/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Propiedades — /api/v1/properties
// ============================================================

func listPropertiesHandler(svc *service.PropertyService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/v1/properties")
		defer span.End()

		q := r.URL.Query()
		filter := domain.PropertyFilter{
			Query:  q.Get("q"),
			Status: q.Get("status"),
			Sort:   q.Get("sort"),
		}

		properties, err := svc.List(ctx, SessionFromContext(ctx), filter)
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, properties)
	}
}

func getPropertyHandler(svc *service.PropertyService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/v1/properties/{id}")
		defer span.End()

		id := parseIDParam(r, "id")
		if id == 0 {
			writeError(w, http.StatusBadRequest, "Identificador inválido")
			return
		}

		property, err := svc.Get(ctx, SessionFromContext(ctx), id)
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, property)
	}
}

func createPropertyHandler(svc *service.PropertyService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /api/v1/properties")
		defer span.End()

		var in domain.PropertyInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "Cuerpo de solicitud inválido")
			return
		}

		property, err := svc.Create(ctx, SessionFromContext(ctx), &in)
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusCreated, property)
	}
}

func updatePropertyHandler(svc *service.PropertyService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /api/v1/properties/{id}")
		defer span.End()

		id := parseIDParam(r, "id")
		if id == 0 {
			writeError(w, http.StatusBadRequest, "Identificador inválido")
			return
		}

		var in domain.PropertyInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "Cuerpo de solicitud inválido")
			return
		}

		property, err := svc.Update(ctx, SessionFromContext(ctx), id, &in)
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, property)
	}
}

func deletePropertyHandler(svc *service.PropertyService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "DELETE /api/v1/properties/{id}")
		defer span.End()

		id := parseIDParam(r, "id")
		if id == 0 {
			writeError(w, http.StatusBadRequest, "Identificador inválido")
			return
		}

		if err := svc.Delete(ctx, SessionFromContext(ctx), id); err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
