package service

import (
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/andhikaps/patungan/internal/extract"
	"github.com/andhikaps/patungan/internal/middleware"
	"github.com/andhikaps/patungan/internal/registry"
)

type extractRequest struct {
	// ImageBase64 is the receipt photo for the AI extractor.
	ImageBase64 string `json:"image_base64"`
	// OCRText feeds the offline fallback parser.
	OCRText string `json:"ocr_text"`
	// Total overrides the extracted grand total, for when the caller
	// already knows the printed amount.
	Total string `json:"total"`
}

type addItemRequest struct {
	Name     string `json:"name" validate:"required"`
	Price    string `json:"price" validate:"required"`
	Category string `json:"category"`
}

type bulkEditRequest struct {
	Rows []registry.ItemRow `json:"rows" validate:"required"`
}

// GetReceipt returns the session's active receipt.
func (h *Handlers) GetReceipt(w http.ResponseWriter, r *http.Request) {
	ws := middleware.WorkspaceFrom(r.Context())
	respondJSON(w, http.StatusOK, ws.Receipt)
}

// ExtractReceipt runs the extraction chain on the uploaded image (or
// OCR text) and replaces the session's receipt with the result. The
// previous ledger is discarded wholesale; participants survive.
func (h *Handlers) ExtractReceipt(w http.ResponseWriter, r *http.Request) {
	ws := middleware.WorkspaceFrom(r.Context())

	var req extractRequest
	if err := h.decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}
	if strings.TrimSpace(req.ImageBase64) == "" && strings.TrimSpace(req.OCRText) == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION", "either image_base64 or ocr_text is required")
		return
	}

	var image []byte
	if req.ImageBase64 != "" {
		var err error
		image, err = base64.StdEncoding.DecodeString(req.ImageBase64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "VALIDATION", "image_base64 is not valid base64")
			return
		}
	}

	result, err := h.extractor.Extract(r.Context(), extract.Input{ImagePNG: image, Text: req.OCRText})
	if err != nil {
		if errors.Is(err, extract.ErrConfiguration) {
			slog.Error("extraction misconfigured", "error", err)
			respondError(w, http.StatusInternalServerError, "CONFIGURATION", err.Error())
			return
		}
		slog.Warn("extraction failed", "session_id", ws.ID, "error", err)
		respondError(w, http.StatusUnprocessableEntity, "EXTRACTION_FAILED", err.Error())
		return
	}

	if req.Total != "" {
		total, err := decimal.NewFromString(strings.TrimSpace(req.Total))
		if err != nil || total.IsNegative() {
			respondError(w, http.StatusBadRequest, "INVALID_PRICE", "total must be a non-negative decimal")
			return
		}
		result.Total = total
	}

	receipt := ws.ReplaceReceipt(result)
	slog.Info("receipt extracted", "session_id", ws.ID, "items", len(receipt.Items), "total", receipt.Total)
	respondJSON(w, http.StatusOK, receipt)
}

// BulkEditItems replaces the whole item set with the posted rows.
// Malformed rows are skipped, never fatal; the response reports how
// many were dropped.
func (h *Handlers) BulkEditItems(w http.ResponseWriter, r *http.Request) {
	ws := middleware.WorkspaceFrom(r.Context())

	var req bulkEditRequest
	if err := h.decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	kept := ws.Items.BulkReplace(req.Rows)
	respondJSON(w, http.StatusOK, map[string]any{
		"receipt": ws.Receipt,
		"kept":    kept,
		"skipped": len(req.Rows) - kept,
	})
}

// AddItem appends one item to the receipt. Unlike bulk edit, a single
// explicit add with a bad price is an error, not a silent skip.
func (h *Handlers) AddItem(w http.ResponseWriter, r *http.Request) {
	ws := middleware.WorkspaceFrom(r.Context())

	var req addItemRequest
	if err := h.decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	price, err := decimal.NewFromString(strings.TrimSpace(req.Price))
	if err != nil || price.IsNegative() {
		respondError(w, http.StatusBadRequest, "INVALID_PRICE", "price must be a non-negative decimal")
		return
	}

	item := ws.Items.AddItem(req.Name, price, strings.TrimSpace(req.Category))
	respondJSON(w, http.StatusCreated, item)
}

type updateItemRequest struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Category string `json:"category"`
}

// UpdateItem applies a correction edit to one item. Empty fields keep
// their current value.
func (h *Handlers) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ws := middleware.WorkspaceFrom(r.Context())

	var req updateItemRequest
	if err := h.decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	var price *decimal.Decimal
	if strings.TrimSpace(req.Price) != "" {
		parsed, err := decimal.NewFromString(strings.TrimSpace(req.Price))
		if err != nil || parsed.IsNegative() {
			respondError(w, http.StatusBadRequest, "INVALID_PRICE", "price must be a non-negative decimal")
			return
		}
		price = &parsed
	}

	item, ok := ws.Items.Update(chi.URLParam(r, "id"), req.Name, price, strings.TrimSpace(req.Category))
	if !ok {
		respondError(w, http.StatusNotFound, "ITEM_NOT_FOUND", "no item with that id")
		return
	}
	respondJSON(w, http.StatusOK, item)
}
