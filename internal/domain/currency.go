package domain

import "math"

// Currency is a display currency with its multiplicative rate against USD,
// the reference currency. Chosen once per session from a best-effort
// IP-based country lookup.
type Currency struct {
	Code   string  `json:"code"`
	Symbol string  `json:"symbol"`
	Rate   float64 `json:"rate"`
}

var currencies = map[string]Currency{
	"US": {Code: "USD", Symbol: "$", Rate: 1},
	"CA": {Code: "CAD", Symbol: "$", Rate: 1.35},
	"GB": {Code: "GBP", Symbol: "£", Rate: 0.79},
	"AU": {Code: "AUD", Symbol: "$", Rate: 1.52},
}

// DefaultCurrency is used when the country lookup fails or the country has
// no entry in the table.
func DefaultCurrency() Currency {
	return Currency{Code: "USD", Symbol: "$", Rate: 1}
}

// CurrencyForCountry maps an ISO country code to a display currency,
// falling back to the default.
func CurrencyForCountry(country string) Currency {
	if c, ok := currencies[country]; ok {
		return c
	}
	return DefaultCurrency()
}

// Localize converts a USD base price into this currency, rounded to cents.
func (c Currency) Localize(priceUSD float64) float64 {
	return math.Round(priceUSD*c.Rate*100) / 100
}
