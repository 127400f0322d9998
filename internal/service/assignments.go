package service

import (
	"net/http"

	"github.com/andhikaps/patungan/internal/ledger"
	"github.com/andhikaps/patungan/internal/middleware"
	"github.com/andhikaps/patungan/internal/models"
)

type assignRequest struct {
	ParticipantID string `json:"participant_id" validate:"required"`
	ItemKey       string `json:"item_key" validate:"required"`
	Count         int    `json:"count"`
}

type unassignRequest struct {
	ParticipantID string `json:"participant_id" validate:"required"`
	ItemID        string `json:"item_id" validate:"required"`
}

type autoSplitRequest struct {
	Mode string `json:"mode" validate:"required,oneof=equal category"`
}

type assignmentView struct {
	ParticipantID string       `json:"participant_id"`
	Item          *models.Item `json:"item"`
	Count         int          `json:"count"`
}

// Assign records a claim for a participant. The item key may be an id,
// an exact name, or a fragment; an unresolved key is reported as
// assigned=false rather than an error.
func (h *Handlers) Assign(w http.ResponseWriter, r *http.Request) {
	ws := middleware.WorkspaceFrom(r.Context())

	var req assignRequest
	if err := h.decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}
	if _, ok := ws.People.Get(req.ParticipantID); !ok {
		respondError(w, http.StatusNotFound, "PARTICIPANT_NOT_FOUND", "no participant with that id")
		return
	}

	ok := ws.Ledger.Assign(req.ParticipantID, req.ItemKey, req.Count)
	respondJSON(w, http.StatusOK, map[string]bool{"assigned": ok})
}

// Unassign drops all records for a (participant, item) pair. Removing
// a pair that has no records is a no-op, so the call is idempotent.
func (h *Handlers) Unassign(w http.ResponseWriter, r *http.Request) {
	ws := middleware.WorkspaceFrom(r.Context())

	var req unassignRequest
	if err := h.decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	ws.Ledger.Unassign(req.ParticipantID, req.ItemID)
	w.WriteHeader(http.StatusNoContent)
}

// ListAssignments returns assignment records, optionally filtered to
// one participant via ?participant_id=.
func (h *Handlers) ListAssignments(w http.ResponseWriter, r *http.Request) {
	ws := middleware.WorkspaceFrom(r.Context())

	var records []*models.Assignment
	if pid := r.URL.Query().Get("participant_id"); pid != "" {
		records = ws.Ledger.AssignmentsFor(pid)
	} else {
		for _, p := range ws.People.All() {
			records = append(records, ws.Ledger.AssignmentsFor(p.ID)...)
		}
	}

	views := make([]assignmentView, 0, len(records))
	for _, a := range records {
		views = append(views, assignmentView{
			ParticipantID: a.ParticipantID,
			Item:          a.Item,
			Count:         a.Count,
		})
	}
	respondJSON(w, http.StatusOK, map[string]any{"assignments": views})
}

// AssignmentSummary reports each participant's running subtotal plus
// how many units of each item have been claimed so far, which the UI
// uses to flag unassigned and double-claimed rows.
func (h *Handlers) AssignmentSummary(w http.ResponseWriter, r *http.Request) {
	ws := middleware.WorkspaceFrom(r.Context())

	subtotals := make(map[string]string, ws.People.Len())
	for name, amount := range ws.Ledger.Summary() {
		subtotals[name] = amount.StringFixed(2)
	}

	type coverage struct {
		ItemID string `json:"item_id"`
		Name   string `json:"name"`
		Count  int    `json:"count"`
	}
	items := ws.Items.Items()
	claimed := make([]coverage, 0, len(items))
	for _, it := range items {
		claimed = append(claimed, coverage{
			ItemID: it.ID,
			Name:   it.Name,
			Count:  ws.Ledger.TotalAssignedCount(it.ID),
		})
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"subtotals": subtotals,
		"items":     claimed,
	})
}

// AutoSplit bulk-assigns the receipt across all participants.
func (h *Handlers) AutoSplit(w http.ResponseWriter, r *http.Request) {
	ws := middleware.WorkspaceFrom(r.Context())

	var req autoSplitRequest
	if err := h.decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}
	if ws.People.Len() == 0 {
		respondError(w, http.StatusConflict, "NO_PARTICIPANTS", "add at least one participant before auto-splitting")
		return
	}

	created := ws.Ledger.AutoSplit(ledger.AutoSplitMode(req.Mode))
	respondJSON(w, http.StatusOK, map[string]int{"assignments_created": created})
}
