package domain

// SessionState is the connection lifecycle of the signing session combined
// with the readiness of the confidential-compute layer.
type SessionState int

const (
	// Disconnected: no signing session.
	Disconnected SessionState = iota
	// ConnectedNotReady: session exists but the compute layer is not ready.
	ConnectedNotReady
	// Active: session exists and the compute layer is ready.
	Active
)

func (s SessionState) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case ConnectedNotReady:
		return "connected_not_ready"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}
