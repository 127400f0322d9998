package service

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/andhikaps/patungan/internal/calculator"
	"github.com/andhikaps/patungan/internal/models"
	"github.com/andhikaps/patungan/internal/registry"
	"github.com/andhikaps/patungan/internal/storage"
)

type compareRequest struct {
	Old []registry.ItemRow `json:"old" validate:"required"`
	New []registry.ItemRow `json:"new" validate:"required"`
}

// CompareReceipts diffs two ad-hoc item lists posted by the caller,
// typically this month's receipt against last month's.
func (h *Handlers) CompareReceipts(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := h.decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	deltas := calculator.Compare(receiptFromRows(req.Old), receiptFromRows(req.New))
	respondJSON(w, http.StatusOK, map[string]any{"deltas": deltas})
}

// CompareSaved diffs two receipts from history, identified by
// ?old_id= and ?new_id=.
func (h *Handlers) CompareSaved(w http.ResponseWriter, r *http.Request) {
	oldID := r.URL.Query().Get("old_id")
	newID := r.URL.Query().Get("new_id")
	if oldID == "" || newID == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION", "query parameters old_id and new_id are required")
		return
	}

	old, err := h.store.GetReceipt(r.Context(), oldID)
	if err == nil {
		var cur *models.Receipt
		cur, err = h.store.GetReceipt(r.Context(), newID)
		if err == nil {
			respondJSON(w, http.StatusOK, map[string]any{"deltas": calculator.Compare(old, cur)})
			return
		}
	}
	if errors.Is(err, storage.ErrNotFound) {
		respondError(w, http.StatusNotFound, "RECEIPT_NOT_FOUND", err.Error())
		return
	}
	respondError(w, http.StatusInternalServerError, "STORAGE", err.Error())
}

// receiptFromRows builds a throwaway receipt from posted rows, reusing
// the registry's row parsing (bad rows skipped, categories auto-tagged).
func receiptFromRows(rows []registry.ItemRow) *models.Receipt {
	receipt := models.NewReceipt(uuid.NewString(), decimal.Zero)
	reg := registry.NewItemRegistry(receipt, nil, nil)
	reg.BulkReplace(rows)
	receipt.Total = receipt.Subtotal
	return receipt
}
