// Package report drives the VIN report flow: a per-submission state machine
// that animates loading progress, triggers the vehicle decode exactly once,
// and lands on a rendered report view.
package report

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/autoreport/backend/internal/domain"
	"github.com/google/uuid"
)

// State is a phase of the report flow.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateLoading    State = "loading"
	StateInvalid    State = "invalid"
	StateResults    State = "results"
)

// Timings holds the tick intervals and delays driving the flow. Injectable
// so tests run in milliseconds.
type Timings struct {
	ProgressTick  time.Duration // synthetic progress increment interval
	CheckTick     time.Duration // check-category cycle interval
	RevealDelay   time.Duration // pause between decode resolve and Results
	RedirectDelay time.Duration // how long an Invalid flow stays visible
}

// DefaultTimings matches the production pacing.
func DefaultTimings() Timings {
	return Timings{
		ProgressTick:  300 * time.Millisecond,
		CheckTick:     600 * time.Millisecond,
		RevealDelay:   800 * time.Millisecond,
		RedirectDelay: 3 * time.Second,
	}
}

// progressCeiling is where synthetic progress stalls until the decode
// resolves. If the call is slow the bar visibly parks here; that is the
// intended behavior, not a bug.
const progressCeiling = 99

// ViewBuilder produces the report view for a validated VIN. It never fails;
// a degraded lookup yields a sentineled view.
type ViewBuilder interface {
	BuildReportView(ctx context.Context, vin string) *domain.VehicleReportView
}

// Snapshot is the externally visible state of a flow.
type Snapshot struct {
	ID             string                    `json:"id"`
	State          State                     `json:"state"`
	VIN            string                    `json:"vin"`
	Progress       float64                   `json:"progress"`
	ActiveCheck    int                       `json:"activeCheck"`
	ChecksComplete bool                      `json:"checksComplete"`
	Checks         []domain.CheckCategory    `json:"checks"`
	Vehicle        *domain.VehicleReportView `json:"vehicle,omitempty"`
	Error          string                    `json:"error,omitempty"`
}

// Flow is a single report-flow instance. All mutation happens under mu;
// closed guards against late timer or decode callbacks mutating state after
// the flow is torn down.
type Flow struct {
	ID string

	mu             sync.Mutex
	state          State
	rawVIN         string
	vin            string
	errMsg         string
	progress       float64
	activeCheck    int
	checksComplete bool
	vehicle        *domain.VehicleReportView
	closed         bool
	subs           map[chan Snapshot]struct{}

	builder   ViewBuilder
	timings   Timings
	randFloat func() float64
	fetchOnce sync.Once
	checks    []domain.CheckCategory
	done      chan struct{}
}

// New creates a flow in the Idle state. Start runs it.
func New(rawVIN string, builder ViewBuilder, t Timings) *Flow {
	return &Flow{
		ID:        uuid.New().String(),
		state:     StateIdle,
		rawVIN:    rawVIN,
		subs:      make(map[chan Snapshot]struct{}),
		builder:   builder,
		timings:   t,
		randFloat: rand.Float64,
		checks:    domain.CheckCategories(),
		done:      make(chan struct{}),
	}
}

// Start validates the VIN and, if accepted, begins the loading phase.
// Invalid VINs park the flow in the terminal Invalid state without ever
// issuing a network call.
func (f *Flow) Start(ctx context.Context) {
	f.mu.Lock()
	f.state = StateValidating
	f.broadcastLocked()

	vin, err := domain.NormalizeVIN(f.rawVIN)
	if err != nil {
		f.state = StateInvalid
		f.errMsg = err.Error()
		f.broadcastLocked()
		f.mu.Unlock()
		close(f.done)
		return
	}

	f.vin = vin
	f.state = StateLoading
	f.broadcastLocked()
	f.mu.Unlock()

	go f.runProgress(ctx)
	go f.runChecks(ctx)
}

// runProgress advances synthetic progress on a fixed tick until it would
// pass the ceiling, then clamps and triggers the decode exactly once.
func (f *Flow) runProgress(ctx context.Context) {
	ticker := time.NewTicker(f.timings.ProgressTick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		f.mu.Lock()
		if f.closed || f.state != StateLoading {
			f.mu.Unlock()
			return
		}
		f.progress += f.randFloat() * 15
		if f.progress > progressCeiling {
			f.progress = progressCeiling
			f.broadcastLocked()
			f.mu.Unlock()
			f.fetchOnce.Do(func() { f.fetch(ctx) })
			return
		}
		f.broadcastLocked()
		f.mu.Unlock()
	}
}

// runChecks cycles the "currently checking" index. Cosmetic only: it is not
// synchronized with progress or the decode call.
func (f *Flow) runChecks(ctx context.Context) {
	ticker := time.NewTicker(f.timings.CheckTick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		f.mu.Lock()
		if f.closed || f.checksComplete || f.state != StateLoading {
			f.mu.Unlock()
			return
		}
		f.activeCheck = (f.activeCheck + 1) % len(f.checks)
		f.broadcastLocked()
		f.mu.Unlock()
	}
}

// fetch resolves the vehicle view, forces progress to completion and, after
// the reveal delay, transitions to Results.
func (f *Flow) fetch(ctx context.Context) {
	view := f.builder.BuildReportView(ctx, f.vin)

	f.mu.Lock()
	if f.closed {
		// Late response after teardown: drop it.
		f.mu.Unlock()
		return
	}
	f.vehicle = view
	f.progress = 100
	f.checksComplete = true
	f.broadcastLocked()
	f.mu.Unlock()

	select {
	case <-ctx.Done():
		return
	case <-time.After(f.timings.RevealDelay):
	}

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.state = StateResults
	f.broadcastLocked()
	f.mu.Unlock()
	close(f.done)
}

// Snapshot returns the current externally visible state.
func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *Flow) snapshotLocked() Snapshot {
	return Snapshot{
		ID:             f.ID,
		State:          f.state,
		VIN:            f.vin,
		Progress:       f.progress,
		ActiveCheck:    f.activeCheck,
		ChecksComplete: f.checksComplete,
		Checks:         f.checks,
		Vehicle:        f.vehicle,
		Error:          f.errMsg,
	}
}

// State returns the current state.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Done is closed once the flow reaches a terminal state.
func (f *Flow) Done() <-chan struct{} {
	return f.done
}

// Subscribe registers a snapshot stream. The current snapshot is delivered
// immediately; slow consumers miss intermediate frames rather than blocking
// the flow.
func (f *Flow) Subscribe() chan Snapshot {
	ch := make(chan Snapshot, 16)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		close(ch)
		return ch
	}
	f.subs[ch] = struct{}{}
	ch <- f.snapshotLocked()
	return ch
}

// Unsubscribe removes a snapshot stream.
func (f *Flow) Unsubscribe(ch chan Snapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.subs[ch]; ok {
		delete(f.subs, ch)
		close(ch)
	}
}

// Close tears the flow down. Tickers stop on their next tick and any
// in-flight decode response is dropped.
func (f *Flow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	for ch := range f.subs {
		delete(f.subs, ch)
		close(ch)
	}
}

func (f *Flow) broadcastLocked() {
	snap := f.snapshotLocked()
	for ch := range f.subs {
		select {
		case ch <- snap:
		default:
		}
	}
}
