package service

import (
	"net/http"

	"github.com/andhikaps/patungan/internal/calculator"
	"github.com/andhikaps/patungan/internal/middleware"
	"github.com/andhikaps/patungan/pkg/currency"
)

// GetReport settles the active receipt against the ledger.
func (h *Handlers) GetReport(w http.ResponseWriter, r *http.Request) {
	ws := middleware.WorkspaceFrom(r.Context())

	report := calculator.Settle(ws.Receipt, ws.Ledger)
	respondJSON(w, http.StatusOK, map[string]any{
		"report":              report,
		"grand_total":         report.GrandTotal(),
		"grand_total_display": currency.Format(report.GrandTotal(), ws.Currency),
		"currency":            ws.Currency,
	})
}

// CategorySummary reports total spend per category.
func (h *Handlers) CategorySummary(w http.ResponseWriter, r *http.Request) {
	ws := middleware.WorkspaceFrom(r.Context())
	respondJSON(w, http.StatusOK, map[string]any{
		"categories": calculator.CategorySummary(ws.Receipt),
	})
}

// PercentageBreakdown reports per-category spend with percentages.
func (h *Handlers) PercentageBreakdown(w http.ResponseWriter, r *http.Request) {
	ws := middleware.WorkspaceFrom(r.Context())
	respondJSON(w, http.StatusOK, map[string]any{
		"breakdown": calculator.PercentageBreakdown(ws.Receipt),
	})
}

// Insights answers a natural-language question about the receipt,
// passed via ?q=.
func (h *Handlers) Insights(w http.ResponseWriter, r *http.Request) {
	ws := middleware.WorkspaceFrom(r.Context())

	q := r.URL.Query().Get("q")
	if q == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION", "query parameter q is required")
		return
	}

	answer := calculator.Answer(ws.Receipt, q, currency.Formatter(ws.Currency))
	respondJSON(w, http.StatusOK, map[string]string{"question": q, "answer": answer})
}
