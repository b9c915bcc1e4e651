package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpapi "github.com/eventclima/eventclima/internal/api/http"
	"github.com/eventclima/eventclima/internal/climate"
	"github.com/eventclima/eventclima/internal/climate/providers"
	"github.com/eventclima/eventclima/internal/config"
	"github.com/eventclima/eventclima/internal/geo"
	"github.com/eventclima/eventclima/internal/scheduler"
	"github.com/eventclima/eventclima/internal/store"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for the single outbound archive call per query.
	httpClient := &http.Client{
		Timeout: cfg.UpstreamTimeout,
	}

	// In-memory session history; cleared on restart by design.
	historyLog := store.NewHistoryLog()

	provider := providers.NewOpenMeteoArchive(httpClient)

	// Reverse geocoding is optional; without a key unnamed locations fall
	// back to a placeholder.
	var resolver climate.NameResolver
	if cfg.GeocoderAPIKey != "" {
		resolver = geo.NewReverse(cfg.GeocoderAPIKey)
	}

	// Core service orchestrating archive fetch, aggregation and scoring.
	service := climate.NewService(provider, historyLog, resolver, cfg.YearsBack)

	// Periodic history-size reporter.
	reporter := scheduler.New(historyLog, cfg.ReportInterval)
	if err := reporter.Start(); err != nil {
		log.Fatalf("failed to start reporter: %v", err)
	}
	defer reporter.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "eventclima",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "eventclima",
		})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// API routes.
	httpapi.RegisterRoutes(app, service)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
