package handler

import (
	"fmt"
	"log"
	"net/http"

	"github.com/autoreport/backend/internal/domain"
	"github.com/autoreport/backend/pkg/geoip"
)

// PlansHandler handles plan-related endpoints.
type PlansHandler struct {
	geo geoip.Locator
}

// NewPlansHandler creates a new PlansHandler.
func NewPlansHandler(geo geoip.Locator) *PlansHandler {
	return &PlansHandler{geo: geo}
}

// localizedPlan is a plan with its price converted to the session currency.
type localizedPlan struct {
	domain.Plan
	Price float64 `json:"price"`
}

// List handles GET /api/plans. Prices are localized from a best-effort geo
// lookup of the client IP; any lookup failure falls back to USD.
func (h *PlansHandler) List(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country")
	if country == "" {
		code, err := h.geo.CountryCode(r.Context(), ClientIP(r))
		if err != nil {
			log.Printf("country detection degraded: %v", err)
		} else {
			country = code
		}
	}

	currency := domain.CurrencyForCountry(country)
	plans := domain.AvailablePlans()
	localized := make([]localizedPlan, 0, len(plans))
	for _, p := range plans {
		localized = append(localized, localizedPlan{Plan: p, Price: currency.Localize(p.PriceUSD)})
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"currency": currency,
		"plans":    localized,
		"notice":   fmt.Sprintf("Prices shown in %s based on your location", currency.Code),
	})
}
