package relayer

import (
	"context"
	"fmt"
	"net/http"
)

// HealthCheck implements ports.HealthChecker for the relayer.
type HealthCheck struct {
	client *Client
}

// NewHealthCheck creates a relayer health checker.
func NewHealthCheck(client *Client) *HealthCheck {
	return &HealthCheck{client: client}
}

// Ping checks relayer reachability.
func (h *HealthCheck) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.client.baseURL+"/v1/health", nil)
	if err != nil {
		return err
	}
	resp, err := h.client.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("relayer health returned %d", resp.StatusCode)
	}
	return nil
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "relayer"
}
