package service

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andhikaps/patungan/internal/middleware"
)

type addParticipantRequest struct {
	Name string `json:"name" validate:"required"`
}

// ListParticipants returns the session's participants in join order.
func (h *Handlers) ListParticipants(w http.ResponseWriter, r *http.Request) {
	ws := middleware.WorkspaceFrom(r.Context())
	respondJSON(w, http.StatusOK, map[string]any{
		"participants": ws.People.All(),
	})
}

// AddParticipant registers a new person in the split.
func (h *Handlers) AddParticipant(w http.ResponseWriter, r *http.Request) {
	ws := middleware.WorkspaceFrom(r.Context())

	var req addParticipantRequest
	if err := h.decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	p := ws.People.Add(req.Name)
	slog.Info("participant added", "session_id", ws.ID, "participant_id", p.ID, "name", p.Name)
	respondJSON(w, http.StatusCreated, p)
}

// RemoveParticipant deletes a participant and all of their assignment
// records in one step.
func (h *Handlers) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	ws := middleware.WorkspaceFrom(r.Context())

	id := chi.URLParam(r, "id")
	if !ws.RemoveParticipant(id) {
		respondError(w, http.StatusNotFound, "PARTICIPANT_NOT_FOUND", "no participant with that id")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
