package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"x-to-markdown/internal/adapters/cache"
	"x-to-markdown/internal/adapters/fxtwitter"
	"x-to-markdown/internal/adapters/preview"
	"x-to-markdown/internal/adapters/web"
	"x-to-markdown/internal/config"
	"x-to-markdown/internal/usecases"
	"x-to-markdown/pkg/log"
)

func main() {
	// Config file path comes from X2MD_CONFIG; env vars override its values.
	cfg, err := config.Load(config.ResolvePath(""))
	if err != nil {
		log.New(log.Info).Fatal("failed to load config", "error", err)
		os.Exit(1)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.Info
	}
	logger := log.New(level, log.WithFormat(log.ParseFormat(cfg.LogFormat)))
	log.SetDefault(logger)

	// Initialize adapters
	postClient := fxtwitter.NewClient(cfg.APIBaseURL, cfg.UserAgent, cfg.RequestTimeout).
		WithMaxConcurrent(cfg.MaxConcurrent)
	postCache := cache.NewMemoryCache(cfg.CacheTTL)
	defer postCache.Close()

	// Initialize use cases
	fetchUC := usecases.NewFetchPostUseCase(postClient)
	getPostUC := usecases.NewGetPostUseCase(postCache, fetchUC)
	convertUC := usecases.NewConvertPostUseCase(getPostUC)

	// Initialize web handlers
	handlers := web.NewHandlers(convertUC, preview.NewHTML(), cfg.RequestTimeout)
	rateLimiter := web.RateLimiter(cfg.RateLimit, cfg.RateWindow)

	app := fiber.New(fiber.Config{
		AppName:               "x-to-markdown",
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(web.RequestIDConfig()))
	app.Use(web.RequestIDToContextMiddleware())
	app.Use(web.RequestLoggerMiddleware())

	web.SetupRoutes(app, handlers, rateLimiter)

	logger.Info("starting server",
		"port", cfg.Port,
		"api", cfg.APIBaseURL,
		"cache_ttl", cfg.CacheTTL.String(),
		"rate_limit", cfg.RateLimit,
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", "error", err)
		os.Exit(1)
	}
}
