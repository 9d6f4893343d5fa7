package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpapi "github.com/laveehere/wanderbot/internal/api/http"
	"github.com/laveehere/wanderbot/internal/assist"
	"github.com/laveehere/wanderbot/internal/config"
	"github.com/laveehere/wanderbot/internal/fallback"
	"github.com/laveehere/wanderbot/internal/intent"
	"github.com/laveehere/wanderbot/internal/scheduler"
	"github.com/laveehere/wanderbot/internal/travel"
	"github.com/laveehere/wanderbot/internal/travel/providers"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	opts := travel.Options{
		Fallback:    fallback.New(),
		Cities:      cfg.Cities,
		DefaultCity: cfg.DefaultCity,
		WeatherTTL:  cfg.WeatherTTL,
		PlacesTTL:   cfg.PlacesTTL,
		NewsTTL:     cfg.NewsTTL,
		QueryDelay:  cfg.QueryDelay,
	}

	if cfg.WeatherEnabled {
		opts.Weather = providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherAPIKey)
	} else {
		log.Warn().Msg("no OpenWeather key configured; weather answers use demo data")
	}

	if cfg.PlacesEnabled {
		opts.Places = providers.NewNominatimProvider(httpClient)
	} else {
		log.Warn().Msg("live place search disabled; place answers use demo data")
	}

	if cfg.NewsEnabled {
		opts.News = append(opts.News, providers.NewNewsAPIProvider(httpClient, cfg.NewsAPIKey))
	}
	// Google News RSS needs no key; keep it as the secondary news source.
	opts.News = append(opts.News, providers.NewGoogleNewsProvider(httpClient))

	opts.Classifier = intent.NewKeywordClassifier()
	if cfg.AIEnabled {
		gemini, err := assist.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Warn().Err(err).Msg("gemini unavailable; using keyword classification and template query planning")
		} else {
			opts.Classifier = intent.NewHostedClassifier(gemini)
			opts.Suggester = gemini
		}
	}

	service := travel.NewService(opts)

	// Scheduler that keeps the weather cache warm for the preset cities.
	sched := scheduler.New(cfg.Cities, cfg.WarmInterval, service)
	if err := sched.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start scheduler")
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "wanderbot",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
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

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "wanderbot",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service)

	port := cfg.Port

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Error().Err(err).Msg("fiber server stopped")
		}
	}()
	log.Info().Str("port", port).Msg("wanderbot listening")

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
}
