package tasks

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
	r.Route("/tasks", func(tr chi.Router) {
		tr.Post("/", createTaskHandler(svc, log))
		tr.Get("/", listTasksHandler(svc, log))

		tr.Put("/{taskID}", updateTaskHandler(svc, log))

		// Log de completions (tareas diarias)
		tr.Post("/{taskID}/complete", completeTaskHandler(svc, log))
		tr.Get("/{taskID}/completions", listCompletionsHandler(svc, log))
	})
}

// createTaskRequest documenta el body de POST /tasks/. La validación real
// se hace campo por campo con validation.Body.
type createTaskRequest struct {
	Description string     `json:"description"`
	Date        *time.Time `json:"date"` // RFC3339, opcional
	Completed   bool       `json:"completed"`
	IsDaily     bool       `json:"is_daily"`
}

type updateTaskRequest struct {
	Completed bool `json:"completed"`
}

// taskResponse representa una tarea devuelta por la API.
type taskResponse struct {
	ID          int64      `json:"id"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
	Completed   bool       `json:"completed"`
	IsDaily     bool       `json:"is_daily"`
}

// taskCompletionResponse representa una entrada del log de completions.
type taskCompletionResponse struct {
	ID     int64     `json:"id"`
	TaskID int64     `json:"task_id"`
	Date   time.Time `json:"date"`
}

type errorResponse struct {
	Detail any `json:"detail"`
}

// createTaskHandler godoc
// @Summary Crear tarea
// @Description Crea una tarea de cuidado. `description` es obligatorio; `date` es opcional (RFC3339); `completed` e `is_daily` son false por defecto.
// @Tags tasks
// @Accept json
// @Produce json
// @Param payload body createTaskRequest true "Datos de la tarea"
// @Success 201 {object} taskResponse
// @Failure 422 {object} errorResponse "validation error"
// @Failure 500 {object} errorResponse "internal error"
// @Router /tasks/ [post]
func createTaskHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := validation.DecodeBody(r.Body)
		if err != nil {
			writeValidation(w, err)
			return
		}

		var errs validation.Errors
		in := CreateInput{
			Description: body.String("description", true, &errs),
			Date:        body.Time("date", false, &errs),
			Completed:   body.Bool("completed", false, &errs),
			IsDaily:     body.Bool("is_daily", false, &errs),
		}
		if body.Has("description") && len(errs) == 0 && strings.TrimSpace(in.Description) == "" {
			errs.Add(validation.Blank("body", "description"))
		}
		if err := errs.Err(); err != nil {
			writeValidation(w, err)
			return
		}

		t, err := svc.Create(r.Context(), in)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusCreated, toTaskResponse(t))
	}
}

// listTasksHandler godoc
// @Summary Listar tareas
// @Description Devuelve todas las tareas, sin filtros ni paginación.
// @Tags tasks
// @Produce json
// @Success 200 {array} taskResponse
// @Failure 500 {object} errorResponse "internal error"
// @Router /tasks/ [get]
func listTasksHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		out := make([]taskResponse, 0, len(items))
		for _, t := range items {
			out = append(out, toTaskResponse(t))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// updateTaskHandler godoc
// @Summary Marcar tarea como completada / pendiente
// @Description Cambia solo el flag `completed`. Se lee del query param `completed`; si no viene, del body JSON `{"completed": bool}`.
// @Tags tasks
// @Accept json
// @Produce json
// @Param taskID path int true "ID de la tarea"
// @Param completed query bool false "Nuevo valor de completed"
// @Param payload body updateTaskRequest false "Alternativa al query param"
// @Success 200 {object} taskResponse
// @Failure 404 {object} errorResponse "Task not found"
// @Failure 422 {object} errorResponse "validation error"
// @Failure 500 {object} errorResponse "internal error"
// @Router /tasks/{taskID} [put]
func updateTaskHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validation.PathID("task_id", chi.URLParam(r, "taskID"))
		if err != nil {
			writeValidation(w, err)
			return
		}

		completed, err := parseCompleted(r)
		if err != nil {
			writeValidation(w, err)
			return
		}

		t, err := svc.SetCompleted(r.Context(), id, completed)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusOK, toTaskResponse(t))
	}
}

// completeTaskHandler godoc
// @Summary Registrar completion
// @Description Agrega una entrada al log de completions de la tarea con la hora actual (UTC). No modifica `completed`.
// @Tags tasks
// @Produce json
// @Param taskID path int true "ID de la tarea"
// @Success 201 {object} taskCompletionResponse
// @Failure 404 {object} errorResponse "Task not found"
// @Failure 422 {object} errorResponse "validation error"
// @Failure 500 {object} errorResponse "internal error"
// @Router /tasks/{taskID}/complete [post]
func completeTaskHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validation.PathID("task_id", chi.URLParam(r, "taskID"))
		if err != nil {
			writeValidation(w, err)
			return
		}

		c, err := svc.Complete(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusCreated, toCompletionResponse(c))
	}
}

// listCompletionsHandler godoc
// @Summary Listar completions de una tarea
// @Description Devuelve el log de completions. Si la tarea no existe devuelve una lista vacía.
// @Tags tasks
// @Produce json
// @Param taskID path int true "ID de la tarea"
// @Success 200 {array} taskCompletionResponse
// @Failure 422 {object} errorResponse "validation error"
// @Failure 500 {object} errorResponse "internal error"
// @Router /tasks/{taskID}/completions [get]
func listCompletionsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validation.PathID("task_id", chi.URLParam(r, "taskID"))
		if err != nil {
			writeValidation(w, err)
			return
		}

		items, err := svc.Completions(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		out := make([]taskCompletionResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toCompletionResponse(c))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// parseCompleted: query param primero, body como fallback.
func parseCompleted(r *http.Request) (bool, error) {
	if raw, ok := r.URL.Query()["completed"]; ok && len(raw) > 0 {
		v, err := validation.ParseBool(raw[0])
		if err != nil {
			return false, validation.Errors{validation.WrongType("bool", "query", "completed")}
		}
		return v, nil
	}

	if r.Body == nil || r.ContentLength == 0 {
		return false, validation.Errors{validation.Missing("query", "completed")}
	}

	body, err := validation.DecodeBody(r.Body)
	if err != nil {
		if ve, ok := validation.AsErrors(err); ok && len(ve) == 1 && ve[0].Type == "value_error.missing" {
			return false, validation.Errors{validation.Missing("query", "completed")}
		}
		return false, err
	}
	if !body.Has("completed") {
		return false, validation.Errors{validation.Missing("query", "completed")}
	}

	var errs validation.Errors
	v := body.Bool("completed", false, &errs)
	if err := errs.Err(); err != nil {
		return false, err
	}
	return v, nil
}

func toTaskResponse(t Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Description: t.Description,
		Date:        t.Date,
		Completed:   t.Completed,
		IsDaily:     t.IsDaily,
	}
}

func toCompletionResponse(c TaskCompletion) taskCompletionResponse {
	return taskCompletionResponse{
		ID:     c.ID,
		TaskID: c.TaskID,
		Date:   c.Date,
	}
}

func writeValidation(w http.ResponseWriter, err error) {
	if ve, ok := validation.AsErrors(err); ok {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: ve})
		return
	}
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: err.Error()})
}

func writeServiceError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Detail: "Task not found"})
	case errors.Is(err, ErrInvalidInput):
		writeValidation(w, err)
	default:
		log.Error("tasks: request failed", map[string]any{
			"request_id": middleware.GetRequestID(r.Context()),
			"path":       r.URL.Path,
			"error":      err.Error(),
		})
		writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
