package handler

import (
	"encoding/json"
	"net/http"

	"github.com/inmonea/inmonea-bff-go/internal/domain"
	"github.com/inmonea/inmonea-bff-go/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Personas — /api/v1/people
// ============================================================

func listPeopleHandler(svc *service.PersonService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/v1/people")
		defer span.End()

		people, err := svc.List(ctx, SessionFromContext(ctx), r.URL.Query().Get("type"))
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, people)
	}
}

func getPersonHandler(svc *service.PersonService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/v1/people/{id}")
		defer span.End()

		id := parseIDParam(r, "id")
		if id == 0 {
			writeError(w, http.StatusBadRequest, "Identificador inválido")
			return
		}

		person, err := svc.Get(ctx, SessionFromContext(ctx), id)
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, person)
	}
}

func createPersonHandler(svc *service.PersonService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /api/v1/people")
		defer span.End()

		var in domain.PersonInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "Cuerpo de solicitud inválido")
			return
		}

		person, err := svc.Create(ctx, SessionFromContext(ctx), &in)
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusCreated, person)
	}
}

func updatePersonHandler(svc *service.PersonService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /api/v1/people/{id}")
		defer span.End()

		id := parseIDParam(r, "id")
		if id == 0 {
			writeError(w, http.StatusBadRequest, "Identificador inválido")
			return
		}

		var in domain.PersonInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "Cuerpo de solicitud inválido")
			return
		}

		person, err := svc.Update(ctx, SessionFromContext(ctx), id, &in)
		if err != nil {
			handleServiceError(w, r, err, sessions, logger)
			return
		}
		writeJSON(w, http.StatusOK, person)
	}
}

func deletePersonHandler(svc *service.PersonService, sessions *service.Sessions, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "DELETE /api/v1/people/{id}")
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
