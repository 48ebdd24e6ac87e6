package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wallet-backend/config"
	"wallet-backend/internal/adapter/coingecko"
	"wallet-backend/internal/adapter/horizon"
	httpHandler "wallet-backend/internal/adapter/http/handler"
	redisStorage "wallet-backend/internal/adapter/storage/redis"
	"wallet-backend/internal/core/ports"
	"wallet-backend/internal/service"
	"wallet-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default: ./config.yaml or ./config/config.yaml)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
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
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("network", cfg.Stellar.Network).
		Int("reputation_threshold", cfg.Reputation.Threshold).
		Msg("Starting wallet backend")

	ctx := context.Background()

	store, closeStore, err := openStorage(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("Failed to initialize storage")
	}
	defer closeStore()

	healthCheckers := []ports.HealthChecker{store.health}

	// Redis is optional: without it rate limiting and relay replay
	// protection are off.
	var (
		rateLimitStore *redisStorage.RateLimitStore
		replayGuard    ports.ReplayGuard
	)
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		replayGuard = redisStorage.NewReplayGuard(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	} else {
		log.Warn().Msg("Redis disabled, rate limiting and relay replay protection are off")
	}

	// External collaborators
	network := horizon.NewClient(cfg.Stellar, logger.Component(log, "horizon"))
	oracle := coingecko.NewClient(cfg.ExternalAPIs, logger.Component(log, "coingecko"))

	// Initialize business services
	vault := service.NewSignerVault(network, logger.Component(log, "signer_vault"))
	walletSvc := service.NewWalletService(
		store.wallets,
		store.transactions,
		network,
		vault,
		replayGuard,
		cfg.AA.SignerMemory,
		logger.Component(log, "wallet"),
	)
	reputationSvc := service.NewReputationService(store.wallets, store.transactions, network, logger.Component(log, "reputation"))
	transferSvc, err := service.NewTransferService(
		store.wallets,
		reputationSvc,
		store.transfers,
		cfg.Reputation.Threshold,
		logger.Component(log, "transfer_gate"),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize transfer gate")
	}
	convertSvc := service.NewConvertService(oracle, store.wallets, store.transactions, logger.Component(log, "convert"))
	adminSvc := service.NewAdminService(
		store.stats,
		vault,
		healthCheckers[0],
		cfg.Stellar,
		cfg.Reputation.Threshold,
		logger.Component(log, "admin"),
		healthCheckers[1:]...,
	)
	auditSvc := service.NewAuditService(store.audit, logger.Component(log, "audit"))

	var tokenSvc ports.TokenService
	if cfg.Admin.JWTSecret != "" {
		tokenSvc = service.NewJWTTokenService(cfg.Admin.JWTSecret, cfg.Admin.JWTExpiry, cfg.Admin.JWTIssuer)
	} else {
		log.Warn().Msg("admin.jwt_secret not set, /api/admin is unauthenticated")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		ReputationSvc:  reputationSvc,
		TransferSvc:    transferSvc,
		ConvertSvc:     convertSvc,
		AdminSvc:       adminSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		AuditSvc:       auditSvc,
		HealthCheckers: healthCheckers,
		AllowedOrigins: []string{cfg.Server.FrontendURL},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
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
