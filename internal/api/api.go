// Package api exposes the task service over HTTP with a chi router.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"time-travel-tasks/internal/logging"
	"time-travel-tasks/internal/services"
	"time-travel-tasks/internal/validation"
)

// WelcomeMessage is served from the root path.
const WelcomeMessage = "Welcome to the Time Travel Tasks API"

// API holds the dependencies shared by the HTTP handlers.
type API struct {
	tasks     services.TaskService
	validator *validation.TaskValidator
	log       *slog.Logger
	now       func() time.Time
	startedAt time.Time
}

// New creates the HTTP API over the given task service.
func New(tasks services.TaskService, validator *validation.TaskValidator, log *slog.Logger) *API {
	if validator == nil {
		validator = validation.NewTaskValidator()
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &API{
		tasks:     tasks,
		validator: validator,
		log:       log,
		now:       time.Now,
		startedAt: time.Now(),
	}
}

// Routes builds the router. Every request runs with requestTimeout as its
// context deadline.
func (a *API) Routes(requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.Middleware(a.log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	if requestTimeout > 0 {
		r.Use(middleware.Timeout(requestTimeout))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, errorResponse{Detail: "Not Found"}, http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, errorResponse{Detail: "Method Not Allowed"}, http.StatusMethodNotAllowed)
	})

	r.Get("/", a.handleRoot)
	r.Get("/health", a.handleHealth)

	r.Route("/tasks", func(r chi.Router) {
		r.Post("/", a.handleCreateTask)
		r.Get("/", a.handleListTasks)
		r.Get("/{taskID}", a.handleGetTask)
		r.Put("/{taskID}", a.handleReplaceTask)
		r.Delete("/{taskID}", a.handleDeleteTask)
		r.Patch("/{taskID}/toggle", a.handleToggleTask)
	})

	return r
}
