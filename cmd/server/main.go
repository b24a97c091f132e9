package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grachmannico95/fiscal-bridge/internal/bank"
	"github.com/grachmannico95/fiscal-bridge/internal/config"
	"github.com/grachmannico95/fiscal-bridge/internal/eventbus"
	"github.com/grachmannico95/fiscal-bridge/internal/fiscal"
	"github.com/grachmannico95/fiscal-bridge/internal/handler"
	"github.com/grachmannico95/fiscal-bridge/internal/metrics"
	"github.com/grachmannico95/fiscal-bridge/internal/server"
	"github.com/grachmannico95/fiscal-bridge/internal/service"
	"github.com/grachmannico95/fiscal-bridge/internal/storage"
	"github.com/grachmannico95/fiscal-bridge/pkg/logger"
	"github.com/grachmannico95/fiscal-bridge/pkg/ratelimit"
	"github.com/grachmannico95/fiscal-bridge/pkg/retry"
	"github.com/grachmannico95/fiscal-bridge/pkg/vault"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Logging.Level)
	defer log.Sync()

	ctx := context.Background()
	log.Info(ctx, "Starting application")

	m := metrics.New(prometheus.DefaultRegisterer)

	v, err := vault.NewFromString(cfg.Vault.EncryptionKey)
	if err != nil {
		log.Fatal(ctx, "Invalid ENCRYPTION_KEY",
			"error", err,
		)
	}

	location, err := time.LoadLocation(cfg.Bank.Timezone)
	if err != nil {
		log.Fatal(ctx, "Invalid BANK_TIMEZONE",
			"timezone", cfg.Bank.Timezone,
			"error", err,
		)
	}

	limiter := ratelimit.New()
	sweepCtx, stopSweeper := context.WithCancel(ctx)
	defer stopSweeper()
	go limiter.RunSweeper(sweepCtx, cfg.RateLimit.SweepInterval, func(removed int) {
		log.Debug(sweepCtx, "Rate limiter swept",
			"removed", removed,
			"active", limiter.Len(),
		)
	})

	retryCfg := retry.Config{
		MaxAttempts: cfg.Retry.MaxAttempts,
		BaseDelay:   cfg.Retry.BaseDelay,
		MaxDelay:    cfg.Retry.MaxDelay,
		Multiplier:  cfg.Retry.Multiplier,
	}

	bankClient := bank.New(bank.Config{
		BaseURL:     cfg.Bank.BaseURL,
		PageLimit:   cfg.Bank.PageLimit,
		MaxPages:    cfg.Bank.MaxPages,
		Location:    location,
		HTTPTimeout: cfg.Bank.HTTPTimeout,
		Retry:       retryCfg,
		RateLimit: ratelimit.Policy{
			Window:      cfg.Bank.RateLimit.Window,
			MaxRequests: cfg.Bank.RateLimit.MaxRequests,
		},
	}, log, m, bank.WithLimiter(limiter))

	fiscalClient := fiscal.New(fiscal.Config{
		BaseURL:          cfg.Fiscal.BaseURL,
		ReceiptBaseURL:   cfg.Fiscal.ReceiptBaseURL,
		HTTPTimeout:      cfg.Fiscal.HTTPTimeout,
		Retry:            retryCfg,
		BreakerThreshold: cfg.Breaker.Threshold,
		BreakerTimeout:   cfg.Breaker.Timeout,
	}, log, m)
	log.Info(ctx, "Remote clients initialized")

	repo := storage.NewMemoryStore()
	log.Info(ctx, "Repository initialized")

	eventBusCfg := &eventbus.Config{
		ChannelBuffer: cfg.EventBus.ChannelBufferSize,
		MaxRetries:    cfg.Worker.MaxRetries,
	}
	bus := eventbus.New(log, eventBusCfg)
	log.Info(ctx, "Event bus initialized")

	paymentConsumer := eventbus.NewPaymentConsumer(repo, log, m, cfg.Worker.PoolSize)
	log.Info(ctx, "Payment consumer initialized",
		"worker_count", cfg.Worker.PoolSize,
	)

	err = bus.Subscribe(eventbus.EventTypePaymentFetched, paymentConsumer)
	if err != nil {
		log.Fatal(ctx, "Failed to subscribe consumer",
			"error", err,
		)
	}

	err = bus.Start(ctx)
	if err != nil {
		log.Fatal(ctx, "Failed to start event bus",
			"error", err,
		)
	}

	companyService := service.NewCompanyService(repo, v, log)
	paymentService := service.NewPaymentService(repo, bankClient, bus, v, log)
	receiptService := service.NewReceiptService(repo, fiscalClient, v, log)
	log.Info(ctx, "Services initialized")

	handlers := server.Handlers{
		Company: handler.NewCompanyHandler(companyService, log),
		Payment: handler.NewPaymentHandler(paymentService, log),
		Receipt: handler.NewReceiptHandler(receiptService, log),
		Health:  handler.NewHealthHandler(fiscalClient.BreakerState),
	}
	log.Info(ctx, "Handlers initialized")

	srv := server.New(cfg, log, limiter, m, prometheus.DefaultGatherer, handlers)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal(ctx, "Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	log.Info(ctx, "Application started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	// Graceful shutdown in order:
	// 1. Stop accepting new HTTP requests
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "HTTP server shutdown error",
			"error", err,
		)
	}

	// 2. Stop event bus and wait for workers to finish
	if err := bus.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "Event bus shutdown error",
			"error", err,
		)
	}

	// 3. Stop the rate limiter sweeper
	stopSweeper()

	log.Info(ctx, "Application stopped gracefully")
}
