package service

import (
	"sync"

	"cwtoken-orchestrator/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
)

// SessionTracker implements ports.Session as an explicit state machine over
// (connected, computeReady). The account is fixed for the tracker's
// lifetime; changing accounts means building a new tracker.
//
// Transition table:
//
//	!connected                -> Disconnected
//	connected && !computeReady -> ConnectedNotReady
//	connected && computeReady  -> Active
type SessionTracker struct {
	mu        sync.Mutex
	account   common.Address
	connected bool
	ready     bool
	state     domain.SessionState
	subs      []func(domain.SessionState)
	log       zerolog.Logger
}

// NewSessionTracker creates a tracker starting in Disconnected.
func NewSessionTracker(account common.Address, log zerolog.Logger) *SessionTracker {
	return &SessionTracker{
		account: account,
		state:   domain.Disconnected,
		log:     log,
	}
}

// SetConnected records whether a signing session exists.
func (t *SessionTracker) SetConnected(connected bool) {
	t.mu.Lock()
	t.connected = connected
	t.recomputeLocked()
	t.mu.Unlock()
}

// SetComputeReady records whether the confidential-compute layer is usable.
func (t *SessionTracker) SetComputeReady(ready bool) {
	t.mu.Lock()
	t.ready = ready
	t.recomputeLocked()
	t.mu.Unlock()
}

// recomputeLocked derives the state and notifies subscribers on change.
// Callbacks run synchronously while holding the lock; subscribers must not
// call back into the tracker.
func (t *SessionTracker) recomputeLocked() {
	next := domain.Disconnected
	switch {
	case t.connected && t.ready:
		next = domain.Active
	case t.connected:
		next = domain.ConnectedNotReady
	}
	if next == t.state {
		return
	}
	t.log.Info().
		Str("from", t.state.String()).
		Str("to", next.String()).
		Msg("session state changed")
	t.state = next
	for _, fn := range t.subs {
		fn(next)
	}
}

func (t *SessionTracker) State() domain.SessionState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *SessionTracker) Active() bool {
	return t.State() == domain.Active
}

func (t *SessionTracker) Account() common.Address {
	return t.account
}

// Subscribe registers fn for every subsequent state change.
func (t *SessionTracker) Subscribe(fn func(domain.SessionState)) {
	t.mu.Lock()
	t.subs = append(t.subs, fn)
	t.mu.Unlock()
}
