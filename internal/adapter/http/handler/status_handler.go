package handler

import (
	"net/http"
	"time"

	"cwtoken-orchestrator/internal/adapter/http/dto"
	"cwtoken-orchestrator/internal/core/domain"
	"cwtoken-orchestrator/internal/core/ports"
	"cwtoken-orchestrator/pkg/response"

	"github.com/gin-gonic/gin"
)

// BalanceObserver is the poller surface the status endpoint reads.
type BalanceObserver interface {
	Running() bool
	Snapshot() domain.BalanceSnapshot
}

// StatusHandler reports the session state machine and the reconciliation
// poller's last observation.
type StatusHandler struct {
	session ports.Session
	poller  BalanceObserver
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(session ports.Session, poller BalanceObserver) *StatusHandler {
	return &StatusHandler{session: session, poller: poller}
}

// GetStatus handles GET /api/v1/status.
func (h *StatusHandler) GetStatus(c *gin.Context) {
	resp := dto.StatusResponse{
		Account:      h.session.Account().Hex(),
		SessionState: h.session.State().String(),
		Polling:      h.poller.Running(),
	}

	snap := h.poller.Snapshot()
	if !snap.FetchedAt.IsZero() {
		resp.PublicBalance = snap.Public
		resp.EncryptedHandle = snap.Handle
		resp.LastError = snap.Err
		resp.FetchedAt = snap.FetchedAt.Format(time.RFC3339)
	}

	response.OK(c, resp)
}

// HistoryHandler serves the event-log reconstruction.
type HistoryHandler struct {
	historySvc ports.HistoryService
	session    ports.Session
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(historySvc ports.HistoryService, session ports.Session) *HistoryHandler {
	return &HistoryHandler{historySvc: historySvc, session: session}
}

// GetHistory handles GET /api/v1/history.
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	records, err := h.historySvc.FetchHistory(c.Request.Context(), h.session.Account())
	if err != nil {
		response.Error(c, err)
		return
	}
	if records == nil {
		records = []domain.TransactionRecord{}
	}
	response.OK(c, records)
}

// HealthCheck handles GET /health, verifying every wired dependency.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
