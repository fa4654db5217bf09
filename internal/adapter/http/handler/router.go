package handler

import (
	"cwtoken-orchestrator/internal/adapter/http/middleware"
	"cwtoken-orchestrator/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	BalanceSvc     ports.BalanceService
	DecryptSvc     ports.DecryptService
	DepositSvc     ports.DepositService
	WithdrawSvc    ports.WithdrawService
	TransferSvc    ports.TransferService
	HistorySvc     ports.HistoryService
	Session        ports.Session
	Poller         BalanceObserver
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 16)) // 64 KB; the largest body is a transfer request

	// Health check (deep: verifies RPC node and relayer)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	balanceHandler := NewBalanceHandler(deps.BalanceSvc, deps.DecryptSvc, deps.Session)
	wrapperHandler := NewWrapperHandler(deps.DepositSvc, deps.WithdrawSvc, deps.TransferSvc)
	historyHandler := NewHistoryHandler(deps.HistorySvc, deps.Session)
	statusHandler := NewStatusHandler(deps.Session, deps.Poller)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/balances", balanceHandler.GetBalances)
		v1.POST("/balances/decrypt", balanceHandler.Decrypt)

		v1.POST("/deposit", wrapperHandler.Deposit)
		v1.POST("/withdraw", wrapperHandler.Withdraw)
		v1.POST("/transfer", wrapperHandler.Transfer)
		v1.GET("/withdrawals/:id", wrapperHandler.GetWithdrawalRequest)

		v1.GET("/history", historyHandler.GetHistory)
		v1.GET("/status", statusHandler.GetStatus)
	}

	return r
}
