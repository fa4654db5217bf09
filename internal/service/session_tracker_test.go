package service

import (
	"testing"

	"cwtoken-orchestrator/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

var trackerAccount = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

func TestSessionTracker_StartsDisconnected(t *testing.T) {
	tr := NewSessionTracker(trackerAccount, zerolog.Nop())

	assert.Equal(t, domain.Disconnected, tr.State())
	assert.False(t, tr.Active())
	assert.Equal(t, trackerAccount, tr.Account())
}

func TestSessionTracker_Transitions(t *testing.T) {
	tr := NewSessionTracker(trackerAccount, zerolog.Nop())

	tr.SetConnected(true)
	assert.Equal(t, domain.ConnectedNotReady, tr.State())
	assert.False(t, tr.Active())

	tr.SetComputeReady(true)
	assert.Equal(t, domain.Active, tr.State())
	assert.True(t, tr.Active())

	// Losing the connection overrides compute readiness.
	tr.SetConnected(false)
	assert.Equal(t, domain.Disconnected, tr.State())

	// Reconnecting with compute still ready goes straight to Active.
	tr.SetConnected(true)
	assert.Equal(t, domain.Active, tr.State())
}

func TestSessionTracker_ComputeReadyAloneIsNotEnough(t *testing.T) {
	tr := NewSessionTracker(trackerAccount, zerolog.Nop())

	tr.SetComputeReady(true)
	assert.Equal(t, domain.Disconnected, tr.State())
	assert.False(t, tr.Active())
}

func TestSessionTracker_SubscribersNotifiedOnChange(t *testing.T) {
	tr := NewSessionTracker(trackerAccount, zerolog.Nop())

	var seen []domain.SessionState
	tr.Subscribe(func(s domain.SessionState) { seen = append(seen, s) })

	tr.SetConnected(true)
	tr.SetComputeReady(true)
	tr.SetConnected(false)

	assert.Equal(t, []domain.SessionState{
		domain.ConnectedNotReady,
		domain.Active,
		domain.Disconnected,
	}, seen)
}

func TestSessionTracker_NoNotificationWithoutChange(t *testing.T) {
	tr := NewSessionTracker(trackerAccount, zerolog.Nop())

	calls := 0
	tr.Subscribe(func(domain.SessionState) { calls++ })

	// Repeating the same input keeps the derived state and stays silent.
	tr.SetConnected(true)
	tr.SetConnected(true)
	tr.SetComputeReady(false)

	assert.Equal(t, 1, calls)
}

func TestSessionTracker_MultipleSubscribers(t *testing.T) {
	tr := NewSessionTracker(trackerAccount, zerolog.Nop())

	first, second := 0, 0
	tr.Subscribe(func(domain.SessionState) { first++ })
	tr.Subscribe(func(domain.SessionState) { second++ })

	tr.SetConnected(true)

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}
