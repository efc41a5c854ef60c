package handler

import (
	"net/http"

	"github.com/autoreport/backend/internal/domain"
	"github.com/autoreport/backend/internal/report"
	"github.com/go-chi/chi/v5"
)

// ReportsHandler handles report-flow endpoints.
type ReportsHandler struct {
	flows *report.Registry
}

// NewReportsHandler creates a new ReportsHandler.
func NewReportsHandler(flows *report.Registry) *ReportsHandler {
	return &ReportsHandler{flows: flows}
}

// Create handles POST /api/reports. A VIN that fails validation still gets a
// flow — parked in the Invalid state and evicted after the redirect delay —
// so the client reads the rejection from the snapshot like any other state.
func (h *ReportsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		VIN string `json:"vin"`
	}
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	f := h.flows.Start(req.VIN)
	JSON(w, http.StatusAccepted, f.Snapshot())
}

// Get handles GET /api/reports/{id}.
func (h *ReportsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	f, ok := h.flows.Get(id)
	if !ok {
		Error(w, domain.ErrNotFound("report not found"))
		return
	}
	JSON(w, http.StatusOK, f.Snapshot())
}
