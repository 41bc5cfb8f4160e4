// Package coursehandlers exposes the course service over HTTP.
package coursehandlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	courseservice "github.com/fairway-collective/scorecard/app/modules/course/application"
	coursetypes "github.com/fairway-collective/scorecard/app/modules/course/domain/types"
	coursedb "github.com/fairway-collective/scorecard/app/modules/course/infrastructure/repositories"
	"github.com/fairway-collective/scorecard/internal/attr"
)

// Handlers holds the HTTP handlers for the course module.
type Handlers struct {
	service courseservice.Service
	logger  *slog.Logger
}

// NewHandlers creates course HTTP handlers.
func NewHandlers(service courseservice.Service, logger *slog.Logger) *Handlers {
	return &Handlers{service: service, logger: logger}
}

// RegisterRoutes mounts the course endpoints on the given router.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Post("/courses", h.CreateCourse)
	r.Get("/courses", h.ListCourses)
	r.Get("/courses/{courseID}", h.GetCourse)
}

// CreateCourse stores a new course.
func (h *Handlers) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var course coursetypes.Course
	if err := json.NewDecoder(r.Body).Decode(&course); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}

	id, err := h.service.CreateCourse(r.Context(), course)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to create course: %v", err), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]string{"course_id": id.String()})
}

// GetCourse returns a course by ID.
func (h *Handlers) GetCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := uuid.Parse(chi.URLParam(r, "courseID"))
	if err != nil {
		http.Error(w, "Invalid course ID", http.StatusBadRequest)
		return
	}

	course, err := h.service.GetCourse(r.Context(), courseID)
	if err != nil {
		if errors.Is(err, coursedb.ErrCourseNotFound) {
			http.Error(w, "Course not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to fetch course: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, course)
}

// ListCourses returns every stored course.
func (h *Handlers) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.ListCourses(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list courses: %v", err), http.StatusInternalServerError)
		return
	}
	if courses == nil {
		courses = []coursetypes.Course{}
	}
	h.writeJSON(w, http.StatusOK, courses)
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("Failed to encode response", attr.Error(err))
	}
}
