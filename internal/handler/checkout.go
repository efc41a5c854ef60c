package handler

import (
	"log"
	"net/http"

	"github.com/autoreport/backend/internal/domain"
	"github.com/autoreport/backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// CheckoutHandler handles purchase and invoice endpoints.
type CheckoutHandler struct {
	checkout *service.CheckoutService
	invoices *service.InvoiceService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkout *service.CheckoutService, invoices *service.InvoiceService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, invoices: invoices}
}

// Create handles POST /api/checkout.
func (h *CheckoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CheckoutRequest
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	inv, err := h.checkout.Process(r.Context(), &req)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, inv)
}

// Export handles GET /api/invoices/{order}/pdf. The invoice is consumed: a
// second request for the same order 404s. A PDF rendering failure is logged
// and the HTML rendering is served instead — never an error state.
func (h *CheckoutHandler) Export(w http.ResponseWriter, r *http.Request) {
	order := chi.URLParam(r, "order")
	inv, ok := h.invoices.Consume(order)
	if !ok {
		Error(w, domain.ErrNotFound("invoice not found"))
		return
	}

	pdf, err := h.invoices.ExportPDF(inv)
	if err == nil {
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition",
			`attachment; filename="Vehicle_Report_Invoice_`+inv.InvoiceNumber+`.pdf"`)
		w.Write(pdf)
		return
	}
	log.Printf("invoice export degraded to HTML: %v", err)

	html, err := h.invoices.ExportHTML(inv)
	if err != nil {
		log.Printf("invoice html fallback failed: %v", err)
		Error(w, domain.ErrInternal("failed to render invoice", err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}
