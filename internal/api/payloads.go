package api

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"time"

	"time-travel-tasks/internal/domain"
	"time-travel-tasks/internal/validation"
)

// maxBodyBytes bounds create and replace request bodies.
const maxBodyBytes = 1 << 20

// TaskResponse is the wire form of a task.
type TaskResponse struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Priority  string `json:"priority"`
	Category  string `json:"category"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"created_at"`
}

// MessageResponse carries a single human readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports liveness and the current store size.
type HealthResponse struct {
	Status        string  `json:"status"`
	Timestamp     string  `json:"timestamp"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	TaskCount     int     `json:"task_count"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

type errorDetail struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

type validationErrorResponse struct {
	Detail []errorDetail `json:"detail"`
}

func toTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:        t.ID,
		Text:      t.Text,
		Priority:  t.Priority.String(),
		Category:  t.Category,
		Completed: t.Completed,
		CreatedAt: formatTime(t.CreatedAt),
	}
}

func toTaskResponses(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// decodeTaskFields reads a create or replace body. Absent fields are left
// nil; a field that is present must be a JSON string and null is rejected.
func decodeTaskFields(w http.ResponseWriter, r *http.Request) (validation.TaskFields, error) {
	var raw map[string]json.RawMessage

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&raw); err != nil {
		validationError := validation.NewValidationError()
		var typeErr *json.UnmarshalTypeError
		switch {
		case stderrors.As(err, &typeErr):
			validationError.AddInvalidTypeError(validation.LocationBody, "", nil, "object")
		case stderrors.Is(err, io.EOF):
			validationError.AddRequiredError(validation.LocationBody, "")
		default:
			validationError.AddInvalidFormatError(validation.LocationBody, "", nil, "JSON")
		}
		return validation.TaskFields{}, validationError
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		validationError := validation.NewValidationError()
		validationError.AddInvalidFormatError(validation.LocationBody, "", nil, "a single JSON object")
		return validation.TaskFields{}, validationError
	}
	if raw == nil {
		// The body was the literal null.
		validationError := validation.NewValidationError()
		validationError.AddRequiredError(validation.LocationBody, "")
		return validation.TaskFields{}, validationError
	}

	validationError := validation.NewValidationError()
	field := func(name string) *string {
		value, ok := raw[name]
		if !ok {
			return nil
		}
		var s string
		if string(value) == "null" {
			validationError.AddInvalidTypeError(validation.LocationBody, name, nil, "string")
			return nil
		}
		if err := json.Unmarshal(value, &s); err != nil {
			validationError.AddInvalidTypeError(validation.LocationBody, name, string(value), "string")
			return nil
		}
		return &s
	}

	fields := validation.TaskFields{
		Text:     field("text"),
		Priority: field("priority"),
		Category: field("category"),
	}
	return fields, validationError.ErrOrNil()
}

// listParams extracts the optional list filters from the query string.
func listParams(r *http.Request) validation.ListParams {
	q := r.URL.Query()
	param := func(name string) *string {
		if !q.Has(name) {
			return nil
		}
		v := q.Get(name)
		return &v
	}
	return validation.ListParams{
		Priority:  param("priority"),
		Category:  param("category"),
		Completed: param("completed"),
		Search:    param("search"),
	}
}
