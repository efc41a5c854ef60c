package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/autoreport/backend/internal/domain"
	"github.com/autoreport/backend/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportInvoice(t *testing.T) {
	invoices := service.NewInvoiceService()
	plan, _ := domain.GetPlan("basic")
	inv := invoices.Issue(&domain.CheckoutSession{
		Plan:      plan,
		Vehicle:   domain.FallbackReportView("1HGCM82633A004352"),
		VIN:       "1HGCM82633A004352",
		Email:     "buyer@example.com",
		Currency:  domain.DefaultCurrency(),
		Total:     plan.PriceUSD,
		CreatedAt: time.Now(),
	})

	h := NewCheckoutHandler(nil, invoices)
	r := chi.NewRouter()
	r.Get("/api/invoices/{order}/pdf", h.Export)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/"+inv.OrderNumber+"/pdf", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), inv.InvoiceNumber)
	assert.Equal(t, "%PDF", rec.Body.String()[:4])

	// Second export 404s: the invoice was consumed.
	rec2 := httptest.NewRecorder()
	r.ServeHTTP(rec2, httptest.NewRequest(http.MethodGet, "/api/invoices/"+inv.OrderNumber+"/pdf", nil))
	assert.Equal(t, http.StatusNotFound, rec2.Code)
}
