package http

import (
	"context"
	"time"

	"github.com/epi-dashboard/internal/config"
	"github.com/epi-dashboard/internal/delivery/http/handler"
	"github.com/epi-dashboard/internal/delivery/http/middleware"
	apperrors "github.com/epi-dashboard/internal/pkg/errors"
	"github.com/epi-dashboard/internal/pkg/metrics"
	"github.com/epi-dashboard/internal/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app     *fiber.App
	config  *config.Config
	logger  *zap.Logger
	metrics *metrics.Metrics

	// Handlers
	dashboardHandler *handler.DashboardHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	m *metrics.Metrics,
	dashboardHandler *handler.DashboardHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "Epi Dashboard API",
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		IdleTimeout:           60 * time.Second,
		ErrorHandler:          customErrorHandler(logger),
		ProxyHeader:           cfg.Server.ProxyHeader,
		DisableStartupMessage: true,
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		metrics:          m,
		dashboardHandler: dashboardHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	if s.config.Metrics.Enabled {
		s.app.Use(middleware.Metrics(s.metrics))
	}
	s.app.Use(middleware.CORS(s.config.CORS.AllowOrigins))
	s.app.Use(middleware.Preflight())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/healthz", handler.Health)

	if s.config.Metrics.Enabled {
		s.app.Get("/metrics", adaptor.HTTPHandler(
			promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{}),
		))
	}

	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api")

	api.Get("/overview", s.dashboardHandler.Overview)
	api.Get("/timeseries", s.dashboardHandler.TimeSeries)

	// Lineages
	api.Get("/lineages/frequencies", s.dashboardHandler.LineageFrequencies)

	// Genome
	api.Get("/genome/genes", s.dashboardHandler.GenomeGenes)
	api.Get("/genome/mutations", s.dashboardHandler.GenomeMutations)

	// Geography
	api.Get("/geography/points", s.dashboardHandler.GeographyPoints)
}

// App - доступ к fiber.App для тестов
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := apperrors.ErrInternalServer.Message

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		fields := []zap.Field{
			zap.String("request_id", middleware.RequestIDFromCtx(c)),
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		}
		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error", fields...)
		} else {
			logger.Debug("HTTP Error", fields...)
		}

		appErr := apperrors.FromStatus(code, message)
		if code < fiber.StatusInternalServerError {
			appErr = appErr.WithDetails(map[string]interface{}{
				"method": c.Method(),
				"path":   c.Path(),
			})
		}
		return utils.SendError(c, appErr)
	}
}
