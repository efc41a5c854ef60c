package service

import (
	"bytes"
	"fmt"
	"html/template"
	"math/rand"
	"sync"
	"time"

	"github.com/autoreport/backend/internal/domain"
	"github.com/go-pdf/fpdf"
)

const alnum = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// InvoiceService derives display-only receipts from completed checkouts and
// renders them for export. Invoice and order numbers are presentation
// artifacts: time-based and random, with no uniqueness guarantee.
type InvoiceService struct {
	mu     sync.Mutex
	issued map[string]*domain.Invoice
	now    func() time.Time
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService() *InvoiceService {
	return &InvoiceService{
		issued: make(map[string]*domain.Invoice),
		now:    time.Now,
	}
}

// Issue builds the invoice for a checkout session and parks it for a single
// later export. The session is considered consumed.
func (s *InvoiceService) Issue(session *domain.CheckoutSession) *domain.Invoice {
	now := s.now()

	millis := fmt.Sprintf("%d", now.UnixMilli())
	if len(millis) > 8 {
		millis = millis[len(millis)-8:]
	}

	inv := &domain.Invoice{
		InvoiceNumber: "INV-" + millis,
		OrderNumber:   "ORD-" + randomAlnum(8),
		TransactionID: "TXN" + randomAlnum(13),
		Date:          now.Format("January 2, 2006"),
		Email:         session.Email,
		Plan:          session.Plan,
		Vehicle:       session.Vehicle,
		VIN:           session.VIN,
		Currency:      session.Currency,
		Total:         session.Total,
		ValidityDays:  session.Plan.ValidityDays,
	}

	s.mu.Lock()
	s.issued[inv.OrderNumber] = inv
	s.mu.Unlock()

	return inv
}

// Consume returns the invoice for an order number exactly once.
func (s *InvoiceService) Consume(orderNumber string) (*domain.Invoice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv, ok := s.issued[orderNumber]
	if ok {
		delete(s.issued, orderNumber)
	}
	return inv, ok
}

// ExportPDF renders the invoice as a downloadable PDF document.
func (s *InvoiceService) ExportPDF(inv *domain.Invoice) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.Cell(0, 12, "AutoReport")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, "Vehicle Intelligence")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(50, 7, label)
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 7, tr(value))
		pdf.Ln(7)
	}

	row("Invoice #", inv.InvoiceNumber)
	row("Date", inv.Date)
	row("Order #", inv.OrderNumber)
	row("Status", "Paid")
	row("Bill To", inv.Email)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 9, "Vehicle Information")
	pdf.Ln(10)
	row("Year", inv.Vehicle.Year)
	row("Make", inv.Vehicle.Make)
	row("Model", inv.Vehicle.Model)
	row("VIN", inv.VIN)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 9, "Order Summary")
	pdf.Ln(10)
	row("Description", "Vehicle History Report")
	row("Plan", inv.Plan.Name)
	row("Validity", fmt.Sprintf("%d days", inv.ValidityDays))
	row("Total", fmt.Sprintf("%s%.2f %s", inv.Currency.Symbol, inv.Total, inv.Currency.Code))
	row("Transaction ID", inv.TransactionID)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, tr("Check your inbox (including spam) for the report. "+
		"This is a digital product; no physical items will be shipped. "+
		"Need help? support@autoreport.com"), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("invoice pdf render: %w", err)
	}
	return buf.Bytes(), nil
}

var invoiceTmpl = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Invoice {{.InvoiceNumber}}</title></head>
<body style="font-family: Arial, sans-serif; background: #0a0a1a; color: #eee; padding: 24px;">
  <h1>AutoReport &mdash; Invoice</h1>
  <p>Invoice # {{.InvoiceNumber}} &middot; Date {{.Date}} &middot; Order # {{.OrderNumber}}</p>
  <p>Bill To: {{.Email}} &middot; Status: Paid</p>
  <h2>Vehicle</h2>
  <p>{{.Vehicle.Year}} {{.Vehicle.Make}} {{.Vehicle.Model}} &middot; VIN {{.VIN}}</p>
  <h2>Order Summary</h2>
  <p>Vehicle History Report &middot; {{.Plan.Name}} &middot; {{.ValidityDays}} days</p>
  <p>Total: {{.Currency.Symbol}}{{printf "%.2f" .Total}} {{.Currency.Code}}</p>
  <p>Transaction ID: {{.TransactionID}}</p>
  <p style="color: #999; font-size: 12px;">This is a digital product. No physical items will be shipped.</p>
</body>
</html>
`))

// ExportHTML renders the invoice as a standalone HTML page. Used as the
// fallback when PDF rasterization fails.
func (s *InvoiceService) ExportHTML(inv *domain.Invoice) ([]byte, error) {
	var buf bytes.Buffer
	if err := invoiceTmpl.Execute(&buf, inv); err != nil {
		return nil, fmt.Errorf("invoice html render: %w", err)
	}
	return buf.Bytes(), nil
}

func randomAlnum(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alnum[rand.Intn(len(alnum))]
	}
	return string(b)
}
