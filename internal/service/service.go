// Package service exposes the split engine over a JSON HTTP API. Every
// route except session creation and the operational endpoints runs
// inside a session workspace resolved by the session middleware.
package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/andhikaps/patungan/internal/extract"
	"github.com/andhikaps/patungan/internal/middleware"
	"github.com/andhikaps/patungan/internal/session"
	"github.com/andhikaps/patungan/internal/storage"
)

// Handlers bundles the dependencies behind the HTTP surface.
type Handlers struct {
	sessions  *session.Manager
	store     storage.Store
	extractor extract.Extractor
	validate  *validator.Validate
}

// New constructs the handler set.
func New(sessions *session.Manager, store storage.Store, extractor extract.Extractor) *Handlers {
	return &Handlers{
		sessions:  sessions,
		store:     store,
		extractor: extractor,
		validate:  validator.New(),
	}
}

// Router assembles the chi router with logging, metrics, and session
// auth wired in.
func (h *Handlers) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging)
	r.Use(middleware.Metrics)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/sessions", h.CreateSession)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession(h.sessions))

			r.Get("/receipt", h.GetReceipt)
			r.Post("/receipt/extract", h.ExtractReceipt)
			r.Put("/receipt/items", h.BulkEditItems)
			r.Post("/receipt/items", h.AddItem)
			r.Patch("/receipt/items/{id}", h.UpdateItem)

			r.Get("/participants", h.ListParticipants)
			r.Post("/participants", h.AddParticipant)
			r.Delete("/participants/{id}", h.RemoveParticipant)

			r.Get("/assignments", h.ListAssignments)
			r.Post("/assignments", h.Assign)
			r.Delete("/assignments", h.Unassign)
			r.Get("/assignments/summary", h.AssignmentSummary)
			r.Post("/assignments/auto", h.AutoSplit)

			r.Get("/report", h.GetReport)
			r.Get("/report/categories", h.CategorySummary)
			r.Get("/report/breakdown", h.PercentageBreakdown)
			r.Get("/insights", h.Insights)

			r.Post("/compare", h.CompareReceipts)
			r.Get("/compare", h.CompareSaved)

			r.Post("/history", h.SaveToHistory)
			r.Get("/history", h.ListHistory)
			r.Get("/history/analytics", h.HistoryAnalytics)
			r.Get("/history/{id}", h.GetHistory)
			r.Post("/history/{id}/restore", h.RestoreHistory)
			r.Delete("/history/{id}", h.DeleteHistory)
		})
	})

	return r
}
