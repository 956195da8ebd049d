package dataset

import (
	"context"
	"sort"
	"sync"

	"github.com/distritobeef/guide-app/services/dataset-service/internal/domain"
)

type ProviderStatus string

const (
	ProviderLoading  ProviderStatus = "loading"
	ProviderReady    ProviderStatus = "ready"
	ProviderFallback ProviderStatus = "fallback"
	ProviderError    ProviderStatus = "error"
)

// State is the published view of the last completed load: the sorted event
// list plus the staleness classification the UI renders from.
type State struct {
	Events    []domain.Event
	Dataset   *Dataset
	Status    ProviderStatus
	Message   string
	UpdatedAt int64
	ETag      string
}

// Provider bridges the Loader into shared state for the transport layer.
// Concurrent Reload calls are not serialized; whichever finishes last wins,
// matching the loader's last-write-wins cache semantics.
type Provider struct {
	loader *Loader

	mu     sync.RWMutex
	state  State
	closed bool
}

func NewProvider(loader *Loader) *Provider {
	return &Provider{
		loader: loader,
		state:  State{Events: []domain.Event{}, Status: ProviderLoading},
	}
}

// Reload runs one load cycle and publishes its result. Safe to call from
// multiple goroutines.
func (p *Provider) Reload(ctx context.Context, force bool) State {
	res := p.loader.Load(ctx, force)
	st := stateFromResult(res)
	p.publish(st)
	return st
}

// Snapshot returns the last published state. Callers must treat the event
// slice as read-only.
func (p *Provider) Snapshot() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// Close stops publication; results from loads still in flight are discarded.
func (p *Provider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
}

func (p *Provider) publish(st State) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.state = st
}

func stateFromResult(res LoadResult) State {
	events := make([]domain.Event, len(res.Events))
	copy(events, res.Events)
	sort.Slice(events, func(i, j int) bool {
		if events[i].Start.Equal(events[j].Start) {
			return events[i].ID < events[j].ID
		}
		return events[i].Start.Before(events[j].Start)
	})

	status := ProviderError
	switch res.Status {
	case StatusFresh, StatusCache:
		status = ProviderReady
	case StatusFallback:
		status = ProviderFallback
	}

	return State{
		Events:    events,
		Dataset:   res.Dataset,
		Status:    status,
		Message:   res.Message,
		UpdatedAt: res.UpdatedAt,
		ETag:      res.ETag,
	}
}
