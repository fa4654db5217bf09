package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cwtoken-orchestrator/config"
	ethAdapter "cwtoken-orchestrator/internal/adapter/ethereum"
	httpHandler "cwtoken-orchestrator/internal/adapter/http/handler"
	"cwtoken-orchestrator/internal/adapter/relayer"
	"cwtoken-orchestrator/internal/adapter/signer"
	"cwtoken-orchestrator/internal/core/ports"
	"cwtoken-orchestrator/internal/service"
	"cwtoken-orchestrator/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("network", cfg.Network.Name).
		Int64("chain_id", cfg.Network.ChainID).
		Int("port", cfg.Server.Port).
		Msg("Starting Confidential Token Orchestrator")

	// The wallet key serves both roles: raw transaction signing on the
	// ledger and typed-data signatures for the compute service.
	wallet, err := signer.NewLocal(cfg.Wallet.PrivateKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load wallet key")
	}
	log.Info().Str("account", wallet.Address().Hex()).Msg("Wallet loaded")

	// Connect to the RPC node
	eth, err := ethclient.Dial(cfg.Network.RPCURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to RPC node")
	}
	defer eth.Close()

	ledger := ethAdapter.NewClient(eth, cfg.Network.ChainID, wallet.Key(), log)

	tokenAddr := common.HexToAddress(cfg.Network.TokenAddress)
	wrapperAddr := common.HexToAddress(cfg.Network.WrapperAddress)

	token := ethAdapter.NewERC20(ledger, tokenAddr)
	wrapper := ethAdapter.NewWrapper(ledger, wrapperAddr)
	filterer := ethAdapter.NewFilterer(ledger, wrapperAddr, log)
	chain := ethAdapter.NewChain(ledger)

	compute := relayer.NewClient(cfg.Relayer.BaseURL, cfg.Relayer.Timeout, wrapperAddr, cfg.Network.ChainID, wallet, log)

	// Health checkers
	ethHealth := ethAdapter.NewHealthCheck(ledger)
	relayerHealth := relayer.NewHealthCheck(compute)

	tracker := service.NewSessionTracker(wallet.Address(), log)

	// Initialize core services
	balanceSvc := service.NewBalanceService(token, wrapper, tracker, log)
	decryptSvc := service.NewDecryptService(compute, tracker, log)
	depositSvc := service.NewDepositService(token, token, wrapper, tracker, wrapperAddr, log)
	withdrawSvc := service.NewWithdrawService(wrapper, wrapper, filterer, decryptSvc, tracker, log)
	transferSvc := service.NewTransferService(wrapper, wrapper, compute, tracker, log)
	historySvc := service.NewHistoryService(chain, filterer, tracker, cfg.History.WindowBlocks, log)

	// Balance reconciliation poller, armed and disarmed by session state.
	poller := service.NewBalancePoller(balanceSvc, tracker, cfg.Poll.Interval, log)
	poller.Bind(tracker)
	defer poller.Stop()

	// Probe both dependencies once at startup. The poller is already bound,
	// so a successful probe arms it through the session transition.
	probeCtx, cancelProbe := context.WithTimeout(context.Background(), 10*time.Second)
	if err := ethHealth.Ping(probeCtx); err != nil {
		log.Warn().Err(err).Msg("RPC node unreachable, operations disabled until reconnect")
	} else {
		tracker.SetConnected(true)
		log.Info().Msg("RPC node connected")
	}
	if err := relayerHealth.Ping(probeCtx); err != nil {
		log.Warn().Err(err).Msg("Relayer unreachable, confidential operations disabled")
	} else {
		tracker.SetComputeReady(true)
		log.Info().Msg("Relayer connected")
	}
	cancelProbe()

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		BalanceSvc:     balanceSvc,
		DecryptSvc:     decryptSvc,
		DepositSvc:     depositSvc,
		WithdrawSvc:    withdrawSvc,
		TransferSvc:    transferSvc,
		HistorySvc:     historySvc,
		Session:        tracker,
		Poller:         poller,
		HealthCheckers: []ports.HealthChecker{ethHealth, relayerHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
