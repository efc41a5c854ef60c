package report

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/autoreport/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastTimings() Timings {
	return Timings{
		ProgressTick:  time.Millisecond,
		CheckTick:     time.Millisecond,
		RevealDelay:   5 * time.Millisecond,
		RedirectDelay: 20 * time.Millisecond,
	}
}

// stubBuilder counts invocations and returns a canned view.
type stubBuilder struct {
	calls int32
	delay time.Duration
}

func (b *stubBuilder) BuildReportView(ctx context.Context, vin string) *domain.VehicleReportView {
	atomic.AddInt32(&b.calls, 1)
	if b.delay > 0 {
		time.Sleep(b.delay)
	}
	v := domain.FallbackReportView(vin)
	v.Year = "2018"
	v.Make = "LAND ROVER"
	v.Model = "Discovery Sport"
	return v
}

func waitDone(t *testing.T, f *Flow) {
	t.Helper()
	select {
	case <-f.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("flow did not reach a terminal state")
	}
}

func TestInvalidVINNeverCallsDecoder(t *testing.T) {
	builder := &stubBuilder{}
	f := New("ab", builder, fastTimings())
	f.Start(context.Background())
	waitDone(t, f)

	snap := f.Snapshot()
	assert.Equal(t, StateInvalid, snap.State)
	assert.NotEmpty(t, snap.Error)
	assert.Nil(t, snap.Vehicle)

	// Give any stray ticker time to fire, then confirm no lookup happened.
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, atomic.LoadInt32(&builder.calls))
}

func TestFlowReachesResults(t *testing.T) {
	builder := &stubBuilder{}
	f := New("  salcr2rx0jh123456 ", builder, fastTimings())
	f.Start(context.Background())
	waitDone(t, f)

	snap := f.Snapshot()
	assert.Equal(t, StateResults, snap.State)
	assert.Equal(t, "SALCR2RX0JH123456", snap.VIN)
	assert.Equal(t, float64(100), snap.Progress)
	assert.True(t, snap.ChecksComplete)
	require.NotNil(t, snap.Vehicle)
	assert.Equal(t, "2018", snap.Vehicle.Year)
	assert.Equal(t, "LAND ROVER", snap.Vehicle.Make)
	assert.Equal(t, "Discovery Sport", snap.Vehicle.Model)
	for _, p := range snap.Vehicle.PremiumFields() {
		assert.Equal(t, domain.SentinelLocked, p)
	}

	// The decode is issued exactly once per flow instance.
	assert.Equal(t, int32(1), atomic.LoadInt32(&builder.calls))
}

func TestProgressIsMonotonic(t *testing.T) {
	f := New("SALCR2RX0JH123456", &stubBuilder{}, fastTimings())
	sub := f.Subscribe()
	f.Start(context.Background())

	last := -1.0
	for snap := range sub {
		require.GreaterOrEqual(t, snap.Progress, last, "progress must never decrease")
		last = snap.Progress
		if snap.State == StateResults {
			break
		}
	}
	assert.Equal(t, 100.0, last)
}

func TestProgressStallsAtCeilingWhileDecodeIsSlow(t *testing.T) {
	builder := &stubBuilder{delay: 50 * time.Millisecond}
	f := New("SALCR2RX0JH123456", builder, fastTimings())
	f.Start(context.Background())

	// Wait until the ceiling is hit, then observe the stall.
	require.Eventually(t, func() bool {
		return f.Snapshot().Progress == progressCeiling
	}, time.Second, time.Millisecond)

	time.Sleep(10 * time.Millisecond)
	snap := f.Snapshot()
	assert.Equal(t, float64(progressCeiling), snap.Progress)
	assert.Equal(t, StateLoading, snap.State)

	waitDone(t, f)
	assert.Equal(t, 100.0, f.Snapshot().Progress)
}

func TestCloseDropsLateDecodeResponse(t *testing.T) {
	builder := &stubBuilder{delay: 30 * time.Millisecond}
	f := New("SALCR2RX0JH123456", builder, fastTimings())
	f.Start(context.Background())

	require.Eventually(t, func() bool {
		return f.Snapshot().Progress == progressCeiling
	}, time.Second, time.Millisecond)

	f.Close()
	time.Sleep(60 * time.Millisecond)

	snap := f.Snapshot()
	assert.Equal(t, StateLoading, snap.State, "no state mutation after close")
	assert.Nil(t, snap.Vehicle)
}

func TestRegistryEvictsInvalidFlows(t *testing.T) {
	r := NewRegistry(&stubBuilder{}, fastTimings())
	f := r.Start("ab")
	waitDone(t, f)
	assert.Equal(t, StateInvalid, f.State())

	require.Eventually(t, func() bool {
		_, ok := r.Get(f.ID)
		return !ok
	}, time.Second, 5*time.Millisecond, "invalid flow should expire after the redirect delay")
}

func TestRegistryKeepsCompletedFlows(t *testing.T) {
	r := NewRegistry(&stubBuilder{}, fastTimings())
	f := r.Start("SALCR2RX0JH123456")
	waitDone(t, f)

	got, ok := r.Get(f.ID)
	require.True(t, ok)
	assert.Equal(t, StateResults, got.State())
}

func TestSubscribeAfterClose(t *testing.T) {
	f := New("SALCR2RX0JH123456", &stubBuilder{}, fastTimings())
	f.Close()
	sub := f.Subscribe()
	_, open := <-sub
	assert.False(t, open)
}
