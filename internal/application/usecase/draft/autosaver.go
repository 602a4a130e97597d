package draft

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/khanhngo/campus-hub/internal/domain/draft"
)

// Autosaver debounces draft writes. Each Touch replaces the pending value
// for its (owner, slot) and restarts that slot's timer; the store is only
// hit once the slot has been quiet for the configured delay. Close flushes
// nothing: an abandoned pending value is just a lost draft, which the store
// already tolerates.
type Autosaver struct {
	store draft.Store
	quiet time.Duration

	mu      sync.Mutex
	pending map[string]*pendingSave
	closed  bool
}

type pendingSave struct {
	timer *time.Timer
	value any
}

func NewAutosaver(store draft.Store, quiet time.Duration) *Autosaver {
	if quiet <= 0 {
		quiet = time.Second
	}
	return &Autosaver{
		store:   store,
		quiet:   quiet,
		pending: make(map[string]*pendingSave),
	}
}

// Touch records the latest value for a slot and resets its debounce timer.
func (a *Autosaver) Touch(ownerID uuid.UUID, slot string, value any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}

	key := ownerID.String() + ":" + slot
	if p, ok := a.pending[key]; ok {
		p.value = value
		p.timer.Reset(a.quiet)
		return
	}

	p := &pendingSave{value: value}
	p.timer = time.AfterFunc(a.quiet, func() {
		a.flush(key, ownerID, slot)
	})
	a.pending[key] = p
}

func (a *Autosaver) flush(key string, ownerID uuid.UUID, slot string) {
	a.mu.Lock()
	p, ok := a.pending[key]
	if ok {
		delete(a.pending, key)
	}
	a.mu.Unlock()
	if !ok {
		return
	}
	a.store.Save(context.Background(), ownerID, slot, p.value)
}

// Cancel drops a slot's pending save without writing it, used when the real
// submit succeeded and the draft would only resurrect stale data.
func (a *Autosaver) Cancel(ownerID uuid.UUID, slot string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	key := ownerID.String() + ":" + slot
	if p, ok := a.pending[key]; ok {
		p.timer.Stop()
		delete(a.pending, key)
	}
}

// Close stops every pending timer. Values not yet flushed are discarded.
func (a *Autosaver) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
	for key, p := range a.pending {
		p.timer.Stop()
		delete(a.pending, key)
	}
}
