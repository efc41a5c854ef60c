package service

import (
	"context"
	"regexp"
	"time"

	"github.com/autoreport/backend/internal/domain"
	"github.com/autoreport/backend/internal/report"
	"github.com/autoreport/backend/pkg/payment"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// emailPattern is the contract for buyer emails: local part, "@", domain,
// ".", tld, no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CheckoutService collects a plan selection and buyer email, simulates the
// payment round-trip, and issues the invoice.
type CheckoutService struct {
	flows    *report.Registry
	gateway  payment.Gateway
	invoices *InvoiceService
	validate *validator.Validate
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(flows *report.Registry, gateway payment.Gateway, invoices *InvoiceService) *CheckoutService {
	return &CheckoutService{
		flows:    flows,
		gateway:  gateway,
		invoices: invoices,
		validate: validator.New(),
	}
}

// Process validates the request, charges the (simulated) gateway and returns
// the invoice. Validation failures block submission with distinct messages;
// the gateway itself has no failure path in this product.
func (s *CheckoutService) Process(ctx context.Context, req *domain.CheckoutRequest) (*domain.Invoice, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrBadRequest("reportId and planId are required")
	}

	switch req.PaymentMethod {
	case "":
		return nil, domain.ErrValidation("please select a payment method")
	case domain.PaymentGooglePay, domain.PaymentPayPal, domain.PaymentCreditCard:
	default:
		return nil, domain.ErrValidation("unsupported payment method")
	}

	if req.Email == "" {
		return nil, domain.ErrValidation("please enter your email address to receive the report")
	}
	if !emailPattern.MatchString(req.Email) {
		return nil, domain.ErrValidation("please enter a valid email address")
	}

	plan, ok := domain.GetPlan(req.PlanID)
	if !ok {
		return nil, domain.ErrBadRequest("unknown plan")
	}

	flow, ok := s.flows.Get(req.ReportID)
	if !ok {
		return nil, domain.ErrNotFound("report not found")
	}
	snap := flow.Snapshot()
	if snap.State != report.StateResults {
		return nil, domain.ErrBadRequest("report is not ready for purchase")
	}

	currency := domain.CurrencyForCountry(req.Country)
	session := &domain.CheckoutSession{
		ID:        uuid.New().String(),
		Plan:      plan,
		Vehicle:   snap.Vehicle,
		VIN:       snap.VIN,
		Email:     req.Email,
		Currency:  currency,
		Total:     currency.Localize(plan.PriceUSD),
		CreatedAt: time.Now(),
	}

	result, err := s.gateway.Charge(ctx, payment.ChargeRequest{
		OrderRef: session.ID,
		Email:    session.Email,
		Method:   req.PaymentMethod,
		Amount:   session.Total,
		Currency: currency.Code,
	})
	if err != nil {
		return nil, domain.ErrInternal("payment processing interrupted", err)
	}
	if result.Status != payment.StatusSuccess {
		return nil, domain.ErrInternal("payment was not accepted", nil)
	}

	return s.invoices.Issue(session), nil
}
