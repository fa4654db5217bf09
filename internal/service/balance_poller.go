package service

import (
	"context"
	"sync"
	"time"

	"cwtoken-orchestrator/internal/core/domain"
	"cwtoken-orchestrator/internal/core/ports"

	"github.com/rs/zerolog"
)

// BalancePoller periodically re-reads both balances while the session is
// active. There is at most one armed timer: Start while running replaces
// the existing timer instead of stacking a second one. Fetch failures are
// recorded in the snapshot and never stop the schedule; transient errors
// self-heal on the next tick.
type BalancePoller struct {
	balances ports.BalanceService
	session  ports.Session
	interval time.Duration
	log      zerolog.Logger

	mu       sync.Mutex
	stopCh   chan struct{}
	snapshot domain.BalanceSnapshot
}

// NewBalancePoller creates a stopped poller.
func NewBalancePoller(balances ports.BalanceService, session ports.Session, interval time.Duration, log zerolog.Logger) *BalancePoller {
	return &BalancePoller{
		balances: balances,
		session:  session,
		interval: interval,
		log:      log,
	}
}

// Bind subscribes the poller to session-state changes: it starts when the
// session becomes Active and stops on any other state.
func (p *BalancePoller) Bind(session ports.Session) {
	session.Subscribe(func(state domain.SessionState) {
		if state == domain.Active {
			p.Start()
		} else {
			p.Stop()
		}
	})
}

// Start fetches immediately, then arms the periodic timer. A running
// poller is stopped first so two Starts never leave two timers armed.
func (p *BalancePoller) Start() {
	p.mu.Lock()
	if p.stopCh != nil {
		close(p.stopCh)
	}
	stopCh := make(chan struct{})
	p.stopCh = stopCh
	p.mu.Unlock()

	p.log.Info().Dur("interval", p.interval).Msg("balance polling started")
	go p.run(stopCh)
}

// Stop disarms the timer. An in-flight fetch is not cancelled; its result
// still lands in the snapshot.
func (p *BalancePoller) Stop() {
	p.mu.Lock()
	if p.stopCh != nil {
		close(p.stopCh)
		p.stopCh = nil
		p.log.Info().Msg("balance polling stopped")
	}
	p.mu.Unlock()
}

// Running reports whether a timer is currently armed.
func (p *BalancePoller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stopCh != nil
}

// Snapshot returns the last observation.
func (p *BalancePoller) Snapshot() domain.BalanceSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot
}

func (p *BalancePoller) run(stopCh chan struct{}) {
	p.fetch()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			p.fetch()
		case <-stopCh:
			return
		}
	}
}

func (p *BalancePoller) fetch() {
	ctx, cancel := context.WithTimeout(context.Background(), p.interval)
	defer cancel()

	snap := domain.BalanceSnapshot{FetchedAt: time.Now().UTC()}
	balances, err := p.balances.ReadBoth(ctx, p.session.Account())
	if err != nil {
		snap.Err = err.Error()
		p.log.Warn().Err(err).Msg("balance fetch failed, keeping schedule")
	} else {
		snap.Public = balances.Public
		snap.Handle = balances.Handle.Hex()
	}

	p.mu.Lock()
	p.snapshot = snap
	p.mu.Unlock()
}
