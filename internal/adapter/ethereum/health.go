package ethereum

import (
	"context"
)

// HealthCheck implements ports.HealthChecker for the RPC node.
type HealthCheck struct {
	client *Client
}

// NewHealthCheck creates an RPC-node health checker.
func NewHealthCheck(client *Client) *HealthCheck {
	return &HealthCheck{client: client}
}

// Ping checks node connectivity by fetching the chain height.
func (h *HealthCheck) Ping(ctx context.Context) error {
	_, err := h.client.eth.BlockNumber(ctx)
	return err
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "ethereum"
}
