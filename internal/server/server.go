package server

import (
	"context"
	"fmt"

	"github.com/grachmannico95/fiscal-bridge/internal/config"
	"github.com/grachmannico95/fiscal-bridge/internal/handler"
	"github.com/grachmannico95/fiscal-bridge/internal/metrics"
	"github.com/grachmannico95/fiscal-bridge/internal/middleware"
	"github.com/grachmannico95/fiscal-bridge/pkg/logger"
	"github.com/grachmannico95/fiscal-bridge/pkg/ratelimit"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	limitClassAPI      = "api"
	limitClassExternal = "external"
	limitClassRead     = "read"
)

type Handlers struct {
	Company *handler.CompanyHandler
	Payment *handler.PaymentHandler
	Receipt *handler.ReceiptHandler
	Health  *handler.HealthHandler
}

type Server struct {
	echo     *echo.Echo
	cfg      *config.Config
	logger   *logger.Logger
	limiter  *ratelimit.Limiter
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	handlers Handlers
}

func New(
	cfg *config.Config,
	log *logger.Logger,
	limiter *ratelimit.Limiter,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	handlers Handlers,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	return &Server{
		echo:     e,
		cfg:      cfg,
		logger:   log,
		limiter:  limiter,
		metrics:  m,
		gatherer: gatherer,
		handlers: handlers,
	}
}

func (s *Server) Start() error {
	s.setupMiddleware()
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info(context.Background(), "Starting HTTP server",
		"address", addr,
	)

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupMiddleware() {
	s.echo.Use(echoMiddleware.Recover())
	s.echo.Use(echoMiddleware.CORS())
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.Logging(s.logger))
}

func (s *Server) limit(class string, lc config.LimitClass) echo.MiddlewareFunc {
	policy := ratelimit.Policy{Window: lc.Window, MaxRequests: lc.MaxRequests}
	return middleware.RateLimit(s.limiter, class, policy, s.logger, s.metrics)
}

func (s *Server) setupRoutes() {
	rl := s.cfg.RateLimit
	api := s.limit(limitClassAPI, rl.API)
	external := s.limit(limitClassExternal, rl.External)
	read := s.limit(limitClassRead, rl.Read)

	s.echo.GET("/health", s.handlers.Health.Check)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	s.echo.POST("/companies", s.handlers.Company.Create, api)
	s.echo.GET("/companies", s.handlers.Company.List, read)
	s.echo.GET("/companies/:id", s.handlers.Company.Get, read)

	s.echo.POST("/companies/:id/payments/sync", s.handlers.Payment.Sync, external)
	s.echo.GET("/companies/:id/payments", s.handlers.Payment.List, read)

	s.echo.POST("/payments/:id/receipt", s.handlers.Receipt.Issue, external)
	s.echo.GET("/payments/:id/receipt", s.handlers.Receipt.Get, read)
}

func (s *Server) Handler() *echo.Echo {
	s.setupMiddleware()
	s.setupRoutes()
	return s.echo
}
