package domain

import "time"

// Payment method tags accepted at checkout.
const (
	PaymentGooglePay  = "google-pay"
	PaymentPayPal     = "paypal"
	PaymentCreditCard = "credit-card"
)

// CheckoutRequest is the input for purchasing a report.
type CheckoutRequest struct {
	ReportID      string `json:"reportId" validate:"required"`
	PlanID        string `json:"planId" validate:"required"`
	Email         string `json:"email"`
	PaymentMethod string `json:"paymentMethod"`
	Country       string `json:"country"`
}

// CheckoutSession is the transient association of a chosen plan with the
// vehicle it covers and the buyer. Created when a plan is chosen, consumed
// by the invoice step, discarded after.
type CheckoutSession struct {
	ID        string
	Plan      Plan
	Vehicle   *VehicleReportView
	VIN       string
	Email     string
	Currency  Currency
	Total     float64
	CreatedAt time.Time
}

// Invoice is the display-only receipt derived from a completed checkout.
// Its numbers are presentation artifacts with no uniqueness or persistence
// guarantee.
type Invoice struct {
	InvoiceNumber string             `json:"invoiceNumber"`
	OrderNumber   string             `json:"orderNumber"`
	TransactionID string             `json:"transactionId"`
	Date          string             `json:"date"`
	Email         string             `json:"email"`
	Plan          Plan               `json:"plan"`
	Vehicle       *VehicleReportView `json:"vehicle"`
	VIN           string             `json:"vin"`
	Currency      Currency           `json:"currency"`
	Total         float64            `json:"total"`
	ValidityDays  int                `json:"validityDays"`
}
