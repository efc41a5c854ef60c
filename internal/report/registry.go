package report

import (
	"context"
	"sync"
	"time"
)

// completedTTL bounds how long a finished flow stays addressable.
const completedTTL = 30 * time.Minute

// Registry owns the live report flows. Flows are session-local: nothing
// survives a server restart.
type Registry struct {
	mu      sync.RWMutex
	flows   map[string]*Flow
	builder ViewBuilder
	timings Timings
}

// NewRegistry creates an empty flow registry.
func NewRegistry(builder ViewBuilder, timings Timings) *Registry {
	return &Registry{
		flows:   make(map[string]*Flow),
		builder: builder,
		timings: timings,
	}
}

// Start creates and runs a flow for a raw VIN submission. The flow runs on a
// background context: it outlives the HTTP request that created it.
func (r *Registry) Start(rawVIN string) *Flow {
	f := New(rawVIN, r.builder, r.timings)

	r.mu.Lock()
	r.flows[f.ID] = f
	r.mu.Unlock()

	f.Start(context.Background())

	// Invalid flows auto-expire after the redirect delay; completed flows
	// linger long enough for the invoice step, then get evicted.
	go func() {
		<-f.Done()
		ttl := completedTTL
		if f.State() == StateInvalid {
			ttl = r.timings.RedirectDelay
		}
		time.AfterFunc(ttl, func() { r.Remove(f.ID) })
	}()

	return f
}

// Get returns the flow with the given ID.
func (r *Registry) Get(id string) (*Flow, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.flows[id]
	return f, ok
}

// Remove closes and forgets a flow.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	f, ok := r.flows[id]
	delete(r.flows, id)
	r.mu.Unlock()
	if ok {
		f.Close()
	}
}
