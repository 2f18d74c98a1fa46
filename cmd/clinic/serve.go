package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"clinicrecords/docs"
	"clinicrecords/internal/config"
	handlers "clinicrecords/internal/http/handler"
	"clinicrecords/internal/http/middleware"
	"clinicrecords/internal/logging"
	"clinicrecords/internal/otel"
	"clinicrecords/internal/service"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	cfg := config.Load()
	logger := logging.New(cfg.Log)

	rt, err := openClinic(cfg, logger, reg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open data files")
	}

	ctx := context.Background()
	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize tracing")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Error().Err(err).Msg("tracing shutdown failed")
		}
	}()

	backups, err := rt.backups(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize object storage")
	}
	if !rt.cfg.MinIO.Enabled() {
		logger.Warn().Msg("MINIO_ENDPOINT not set, backups disabled")
	}

	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to register http metrics")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logger))
	app.Use(middleware.Recovery(logger))
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == middleware.MetricsPath
	})))
	app.Use(promMiddleware.Handler())

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, handlers.Deps{
		DataDir:      rt.cfg.DataDir,
		Patients:     rt.stores.Patients,
		Doctors:      rt.stores.Doctors,
		Appointments: rt.stores.Appointments,
		Equipment:    rt.stores.Equipment,
		Inventory:    rt.stores.Inventory,
		Scheduling:   service.NewAppointmentService(rt.stores.Appointments, nil),
		Stock:        service.NewStockService(rt.stores.Equipment, rt.stores.Inventory),
		Reports:      rt.reports(),
		Backups:      backups,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + rt.cfg.Port
	go func() {
		logger.Info().Str("addr", addr).Str("data_dir", rt.cfg.DataDir).Msg("starting server")
		if err := app.Listen(addr); err != nil {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
