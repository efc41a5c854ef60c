package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedGatewayAlwaysSucceeds(t *testing.T) {
	g := NewSimulatedGateway(time.Millisecond)

	res, err := g.Charge(context.Background(), ChargeRequest{
		OrderRef: "order-1",
		Email:    "buyer@example.com",
		Method:   "paypal",
		Amount:   13.43,
		Currency: "CAD",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, res.Status)
	assert.False(t, res.ProcessedAt.IsZero())
}

func TestSimulatedGatewayHonorsContext(t *testing.T) {
	g := NewSimulatedGateway(time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	res, err := g.Charge(ctx, ChargeRequest{OrderRef: "order-2"})
	require.Error(t, err)
	assert.Equal(t, StatusFailed, res.Status)
}
