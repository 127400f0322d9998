package service

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/andhikaps/patungan/internal/calculator"
	"github.com/andhikaps/patungan/internal/middleware"
	"github.com/andhikaps/patungan/internal/models"
	"github.com/andhikaps/patungan/internal/storage"
)

type historySummary struct {
	ID        string          `json:"id"`
	SavedAt   time.Time       `json:"saved_at"`
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Total     decimal.Decimal `json:"total"`
}

// SaveToHistory snapshots the active receipt into persistent history.
// Saving the same receipt twice overwrites the earlier snapshot.
func (h *Handlers) SaveToHistory(w http.ResponseWriter, r *http.Request) {
	ws := middleware.WorkspaceFrom(r.Context())

	if len(ws.Receipt.Items) == 0 {
		respondError(w, http.StatusConflict, "EMPTY_RECEIPT", "nothing to save: the receipt has no items")
		return
	}
	if err := h.store.SaveReceipt(r.Context(), ws.Receipt); err != nil {
		slog.Error("receipt save failed", "session_id", ws.ID, "receipt_id", ws.Receipt.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "STORAGE", err.Error())
		return
	}

	slog.Info("receipt saved", "session_id", ws.ID, "receipt_id", ws.Receipt.ID)
	respondJSON(w, http.StatusCreated, map[string]string{"id": ws.Receipt.ID})
}

// ListHistory returns saved receipt summaries, newest first.
func (h *Handlers) ListHistory(w http.ResponseWriter, r *http.Request) {
	receipts, err := h.store.ListReceipts(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORAGE", err.Error())
		return
	}

	summaries := make([]historySummary, 0, len(receipts))
	for _, rc := range receipts {
		summaries = append(summaries, historySummary{
			ID:        rc.ID,
			SavedAt:   rc.CreatedAt,
			ItemCount: len(rc.Items),
			Subtotal:  rc.Subtotal,
			Total:     rc.Total,
		})
	}
	respondJSON(w, http.StatusOK, map[string]any{"receipts": summaries})
}

// GetHistory returns one saved receipt in full.
func (h *Handlers) GetHistory(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.store.GetReceipt(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, http.StatusNotFound, "RECEIPT_NOT_FOUND", err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "STORAGE", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, receipt)
}

// RestoreHistory loads a saved receipt into the session as the active
// one. Assignments are rebuilt from scratch; participants survive.
func (h *Handlers) RestoreHistory(w http.ResponseWriter, r *http.Request) {
	ws := middleware.WorkspaceFrom(r.Context())

	receipt, err := h.store.GetReceipt(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, http.StatusNotFound, "RECEIPT_NOT_FOUND", err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "STORAGE", err.Error())
		return
	}

	ws.RestoreReceipt(receipt)
	slog.Info("receipt restored", "session_id", ws.ID, "receipt_id", receipt.ID)
	respondJSON(w, http.StatusOK, receipt)
}

// DeleteHistory removes a saved receipt.
func (h *Handlers) DeleteHistory(w http.ResponseWriter, r *http.Request) {
	err := h.store.DeleteReceipt(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, http.StatusNotFound, "RECEIPT_NOT_FOUND", err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "STORAGE", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HistoryAnalytics aggregates spend across every saved receipt:
// overall totals plus a combined category summary.
func (h *Handlers) HistoryAnalytics(w http.ResponseWriter, r *http.Request) {
	receipts, err := h.store.ListReceipts(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORAGE", err.Error())
		return
	}

	// Fold every saved item into one synthetic receipt so the
	// per-receipt analytics apply unchanged across history.
	combined := models.NewReceipt(uuid.NewString(), decimal.Zero)
	totalSpent := decimal.Zero
	for _, rc := range receipts {
		combined.Items = append(combined.Items, rc.Items...)
		totalSpent = totalSpent.Add(rc.Total)
	}
	combined.Recalculate()
	combined.Total = totalSpent

	respondJSON(w, http.StatusOK, map[string]any{
		"receipt_count": len(receipts),
		"total_spent":   totalSpent.Round(2),
		"item_subtotal": combined.Subtotal,
		"categories":    calculator.CategorySummary(combined),
	})
}
