package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	httpapi "github.com/weatherly-app/weatherly/internal/api/http"
	"github.com/weatherly-app/weatherly/internal/cache"
	"github.com/weatherly-app/weatherly/internal/config"
	"github.com/weatherly-app/weatherly/internal/scheduler"
	"github.com/weatherly-app/weatherly/internal/store"
	"github.com/weatherly-app/weatherly/internal/weather"
	"github.com/weatherly-app/weatherly/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Upstream provider plus the optional geocoding search fallback.
	provider := providers.NewWeatherAPIProvider(httpClient, cfg.WeatherAPIKey)
	fallback := providers.NewGeocoderFallback(cfg.GeocoderAPIKey)

	// Search-result cache with its background sweep.
	searchCache := cache.NewSearchCache(cfg.SearchCacheTTL, nil)
	sched := scheduler.New(searchCache, cfg.SearchCacheSweep)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Durable user preferences.
	storage, err := store.OpenSQLite(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("failed to open prefs storage: %v", err)
	}
	defer storage.Close()
	prefs := store.NewPrefs(storage)

	// Core service.
	service := weather.NewService(provider, searchCache, fallback)

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weatherly",
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
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weatherly",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service, prefs, httpapi.Options{
		OfflineMode: cfg.OfflineMode,
	})

	if cfg.OfflineMode {
		log.Println("INFO: offline mode enabled; catalog cities are served from the mock generator")
	}

	// Start server with graceful shutdown
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
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
