package service

import (
	"log/slog"
	"net/http"
)

// CreateSession opens a fresh workspace and hands back its token.
func (h *Handlers) CreateSession(w http.ResponseWriter, r *http.Request) {
	ws, token, err := h.sessions.Create()
	if err != nil {
		slog.Error("session creation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "INTERNAL", "could not create session")
		return
	}

	slog.Info("session created", "session_id", ws.ID)
	respondJSON(w, http.StatusCreated, map[string]string{
		"session_id": ws.ID,
		"token":      token,
		"currency":   ws.Currency,
	})
}
