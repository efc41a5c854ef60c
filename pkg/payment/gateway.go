package payment

import (
	"context"
	"time"
)

// Gateway defines the interface for payment providers.
type Gateway interface {
	// Charge processes a payment attempt for an order.
	Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error)
}

// ChargeRequest describes one payment attempt.
type ChargeRequest struct {
	OrderRef string
	Email    string
	Method   string
	Amount   float64
	Currency string
}

// ChargeResult is the gateway's verdict on a charge.
type ChargeResult struct {
	Status      string
	ProcessedAt time.Time
}

// Transaction status constants.
const (
	StatusPending = "pending"
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// SimulatedGateway fakes a payment round-trip: it waits a fixed delay and
// unconditionally reports success. No card data leaves the process.
type SimulatedGateway struct {
	delay time.Duration
}

// NewSimulatedGateway creates a gateway with the given processing delay.
// A zero delay uses the production default of 1.5s.
func NewSimulatedGateway(delay time.Duration) *SimulatedGateway {
	if delay == 0 {
		delay = 1500 * time.Millisecond
	}
	return &SimulatedGateway{delay: delay}
}

func (g *SimulatedGateway) Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error) {
	select {
	case <-time.After(g.delay):
	case <-ctx.Done():
		return ChargeResult{Status: StatusFailed}, ctx.Err()
	}
	return ChargeResult{Status: StatusSuccess, ProcessedAt: time.Now()}, nil
}
