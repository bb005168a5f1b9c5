package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/inmonea/inmonea-bff-go/internal/config"
	"github.com/inmonea/inmonea-bff-go/internal/domain"
	"github.com/inmonea/inmonea-bff-go/internal/handler"
	"github.com/inmonea/inmonea-bff-go/internal/infra/cache"
	"github.com/inmonea/inmonea-bff-go/internal/infra/core"
	"github.com/inmonea/inmonea-bff-go/internal/infra/evolution"
	"github.com/inmonea/inmonea-bff-go/internal/infra/observability"
	"github.com/inmonea/inmonea-bff-go/internal/infra/resilience"
	"github.com/inmonea/inmonea-bff-go/internal/poll"
	"github.com/inmonea/inmonea-bff-go/internal/service"

	"go.uber.org/zap"
)

func main() {
	// --- Load .env file (for local development) ---
	_ = config.LoadDotEnv(".env")

	// --- Config ---
	cfg := config.Load()

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.String("core_api_url", cfg.CoreAPIURL),
		zap.String("evolution_api_url", cfg.EvolutionAPIURL),
		zap.Duration("http_timeout", cfg.HTTPTimeout),
		zap.Duration("status_cache_ttl", cfg.StatusCacheTTL),
		zap.Duration("gateway_poll_interval", cfg.GatewayPollInterval),
		zap.Duration("session_ttl", cfg.SessionTTL),
		zap.Int("max_retries", cfg.MaxRetries),
	)

	// --- Tracing ---
	shutdown, err := observability.InitTracer(cfg.OTLPEndpoint, "inmonea-bff")
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdown(context.Background())

	// --- Metrics ---
	metrics := observability.NewMetrics()

	// --- Caches ---
	sessionCache := cache.New[domain.Session](cfg.SessionTTL)
	statusCache := cache.New[domain.WhatsAppStatus](cfg.StatusCacheTTL)

	// --- Resilience ---
	resilienceCfg := resilience.Config{
		MaxRetries:     cfg.MaxRetries,
		InitialBackoff: cfg.InitialBackoff,
		MaxConcurrency: cfg.MaxConcurrency,
	}
	coreCB := resilience.NewCircuitBreaker("core-api")
	evolutionCB := resilience.NewCircuitBreaker("evolution-api")
	bulkhead := resilience.NewBulkhead(cfg.MaxConcurrency)

	// --- Clients ---
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	coreClient := core.NewClient(httpClient, cfg.CoreAPIURL, coreCB, bulkhead, resilienceCfg, metrics, logger)
	evolutionClient := evolution.NewClient(httpClient, cfg.EvolutionAPIURL, cfg.EvolutionAPIKey, evolutionCB, resilienceCfg, metrics, logger)

	// --- Services ---
	sessions := service.NewSessions(sessionCache, cfg.JWTSecret, cfg.SessionTTL, metrics, logger)
	gatewayMonitor := service.NewGatewayMonitor(evolutionClient, metrics, logger)

	svcs := &handler.Services{
		Auth:         service.NewAuthService(coreClient, sessions, logger),
		Sessions:     sessions,
		Properties:   service.NewPropertyService(coreClient, logger),
		People:       service.NewPersonService(coreClient, logger),
		Contracts:    service.NewContractService(coreClient, logger),
		Liquidations: service.NewLiquidationService(coreClient, logger),
		WhatsApp:     service.NewWhatsAppService(coreClient, statusCache, metrics, logger),
		Payments:     service.NewPaymentService(coreClient, logger),
		Reports:      service.NewReportService(coreClient, logger),
		Dashboard:    service.NewDashboardService(coreClient, logger),
		Admin:        service.NewAdminService(coreClient, gatewayMonitor, logger),
		Gateway:      gatewayMonitor,
		Core:         coreClient,
	}

	// --- Background gateway watcher ---
	runner := poll.NewRunner("gateway", cfg.GatewayPollInterval, gatewayMonitor.Refresh, logger)
	runner.Start(context.Background())

	// --- Router ---
	router := handler.NewRouter(svcs, cfg.AllowedOrigin, metrics, logger)

	// --- Server ---
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Graceful shutdown ---
	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down...")
	runner.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
