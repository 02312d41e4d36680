package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (a *API) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, MessageResponse{Message: WelcomeMessage}, http.StatusOK)
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	count, err := a.tasks.Count(r.Context())
	if err != nil {
		a.writeErr(w, r, err)
		return
	}

	now := a.now()
	writeJSON(w, HealthResponse{
		Status:        "ok",
		Timestamp:     formatTime(now),
		UptimeSeconds: now.Sub(a.startedAt).Seconds(),
		TaskCount:     count,
	}, http.StatusOK)
}

func (a *API) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeTaskFields(w, r)
	if err != nil {
		a.writeErr(w, r, err)
		return
	}

	in, err := a.validator.ValidateTaskInput(fields)
	if err != nil {
		a.writeErr(w, r, err)
		return
	}

	task, err := a.tasks.Create(r.Context(), in)
	if err != nil {
		a.writeErr(w, r, err)
		return
	}
	writeJSON(w, toTaskResponse(task), http.StatusOK)
}

func (a *API) handleListTasks(w http.ResponseWriter, r *http.Request) {
	filter, err := a.validator.ValidateListParams(listParams(r))
	if err != nil {
		a.writeErr(w, r, err)
		return
	}

	tasks, err := a.tasks.List(r.Context(), filter)
	if err != nil {
		a.writeErr(w, r, err)
		return
	}
	writeJSON(w, toTaskResponses(tasks), http.StatusOK)
}

func (a *API) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id, err := a.validator.ValidateTaskID(chi.URLParam(r, "taskID"))
	if err != nil {
		a.writeErr(w, r, err)
		return
	}

	task, err := a.tasks.GetByID(r.Context(), id)
	if err != nil {
		a.writeErr(w, r, err)
		return
	}
	writeJSON(w, toTaskResponse(task), http.StatusOK)
}

func (a *API) handleReplaceTask(w http.ResponseWriter, r *http.Request) {
	id, err := a.validator.ValidateTaskID(chi.URLParam(r, "taskID"))
	if err != nil {
		a.writeErr(w, r, err)
		return
	}

	fields, err := decodeTaskFields(w, r)
	if err != nil {
		a.writeErr(w, r, err)
		return
	}

	in, err := a.validator.ValidateTaskInput(fields)
	if err != nil {
		a.writeErr(w, r, err)
		return
	}

	task, err := a.tasks.Replace(r.Context(), id, in)
	if err != nil {
		a.writeErr(w, r, err)
		return
	}
	writeJSON(w, toTaskResponse(task), http.StatusOK)
}

func (a *API) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := a.validator.ValidateTaskID(chi.URLParam(r, "taskID"))
	if err != nil {
		a.writeErr(w, r, err)
		return
	}

	message, err := a.tasks.Delete(r.Context(), id)
	if err != nil {
		a.writeErr(w, r, err)
		return
	}
	writeJSON(w, MessageResponse{Message: message}, http.StatusOK)
}

func (a *API) handleToggleTask(w http.ResponseWriter, r *http.Request) {
	id, err := a.validator.ValidateTaskID(chi.URLParam(r, "taskID"))
	if err != nil {
		a.writeErr(w, r, err)
		return
	}

	task, err := a.tasks.ToggleCompleted(r.Context(), id)
	if err != nil {
		a.writeErr(w, r, err)
		return
	}
	writeJSON(w, toTaskResponse(task), http.StatusOK)
}
