package domain

// Plan represents a purchasable report tier.
type Plan struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	PriceUSD     float64  `json:"priceUsd"` // base price in USD
	Features     []string `json:"features"`
	Color        string   `json:"color"`
	Period       string   `json:"period"`       // billing label, e.g. "/report"
	ValidityDays int      `json:"validityDays"` // report access window
}

// AvailablePlans returns all purchasable plans.
func AvailablePlans() []Plan {
	return []Plan{
		{
			ID:       "basic",
			Name:     "Basic Report",
			PriceUSD: 1.95,
			Features: []string{
				"Basic vehicle specs",
				"Year, Make, Model info",
				"Engine details",
				"Transmission type",
			},
			Color:        "#4ECDC4",
			Period:       "/report",
			ValidityDays: 7,
		},
		{
			ID:       "standard",
			Name:     "Standard Report",
			PriceUSD: 4.95,
			Features: []string{
				"Everything in Basic",
				"Accident history",
				"Title records",
				"Odometer reading",
				"Recall information",
			},
			Color:        "#45B7D1",
			Period:       "/report",
			ValidityDays: 7,
		},
		{
			ID:       "premium",
			Name:     "Premium Report",
			PriceUSD: 9.95,
			Features: []string{
				"Everything in Standard",
				"Full vehicle history",
				"Sales records",
				"Market values",
				"Unlimited access for 30 days",
				"Export to PDF",
			},
			Color:        "#FF6B6B",
			Period:       "/30 days",
			ValidityDays: 30,
		},
	}
}

// GetPlan returns the plan for a given ID, or false if no such plan exists.
func GetPlan(id string) (Plan, bool) {
	for _, p := range AvailablePlans() {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}
