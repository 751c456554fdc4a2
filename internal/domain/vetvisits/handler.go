package vetvisits

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"petpal/internal/middleware"
	"petpal/internal/platform/logger"
	"petpal/internal/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/vet_visits", func(vr chi.Router) {
		vr.Post("/", createVetVisitHandler(svc, log))
		vr.Get("/", listVetVisitsHandler(svc, log))
	})
}

// createVetVisitRequest es el body para registrar una visita.
type createVetVisitRequest struct {
	Date        time.Time `json:"date"` // RFC3339
	Description string    `json:"description"`
}

// vetVisitResponse representa una visita devuelta por la API.
type vetVisitResponse struct {
	ID          int64     `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

type errorResponse struct {
	Detail any `json:"detail"`
}

// createVetVisitHandler godoc
// @Summary Registrar visita al veterinario
// @Description Crea una visita. `date` (RFC3339) y `description` son obligatorios.
// @Tags vet_visits
// @Accept json
// @Produce json
// @Param payload body createVetVisitRequest true "Datos de la visita"
// @Success 201 {object} vetVisitResponse
// @Failure 422 {object} errorResponse "validation error"
// @Failure 500 {object} errorResponse "internal error"
// @Router /vet_visits/ [post]
func createVetVisitHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := validation.DecodeBody(r.Body)
		if err != nil {
			writeValidation(w, err)
			return
		}

		var errs validation.Errors
		date := body.Time("date", true, &errs)
		desc := body.String("description", true, &errs)
		if body.Has("description") && strings.TrimSpace(desc) == "" && len(errs) == 0 {
			errs.Add(validation.Blank("body", "description"))
		}
		if err := errs.Err(); err != nil {
			writeValidation(w, err)
			return
		}

		v, err := svc.Create(r.Context(), CreateInput{
			Date:        *date,
			Description: desc,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: err.Error()})
				return
			}
			writeInternal(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusCreated, toVetVisitResponse(v))
	}
}

// listVetVisitsHandler godoc
// @Summary Listar visitas al veterinario
// @Tags vet_visits
// @Produce json
// @Success 200 {array} vetVisitResponse
// @Failure 500 {object} errorResponse "internal error"
// @Router /vet_visits/ [get]
func listVetVisitsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeInternal(w, r, log, err)
			return
		}

		out := make([]vetVisitResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVetVisitResponse(v))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func toVetVisitResponse(v VetVisit) vetVisitResponse {
	return vetVisitResponse{
		ID:          v.ID,
		Date:        v.Date,
		Description: v.Description,
	}
}

func writeValidation(w http.ResponseWriter, err error) {
	if ve, ok := validation.AsErrors(err); ok {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: ve})
		return
	}
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: err.Error()})
}

func writeInternal(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	log.Error("vet_visits: request failed", map[string]any{
		"request_id": middleware.GetRequestID(r.Context()),
		"path":       r.URL.Path,
		"error":      err.Error(),
	})
	writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "internal error"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
