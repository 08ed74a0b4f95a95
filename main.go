package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/assets"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/index"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/notify"
	"portfolio-backend/internal/providers/googledrive"
	"portfolio-backend/internal/proxy"
)

func main() {
	// Load .env file for local development (ignored in Docker)
	if os.Getenv("DOCKER_ENV") == "" {
		if err := godotenv.Load(".env"); err != nil {
			log.Info().Msg("No .env file found, using system environment variables")
		}
	}

	e := echo.New()
	initialize(e)

	log.Info().Msg("Starting portfolio backend on :8080")
	log.Fatal().Err(http.ListenAndServe(":8080", e)).Msg("Server stopped")
}

func initialize(e *echo.Echo) {
	cfg := config.Load()

	// Initialize the Drive provider shared by the index and the proxy
	driveService := googledrive.NewService()

	// Build the file index once, in the background; handlers serve the
	// loading state until the build settles.
	indexService := index.NewService(driveService, cfg.DriveFolderID, cfg.DriveAPIKey)
	go indexService.Build()

	assetsHandler := assets.NewHandler(indexService)
	assetsHandler.RegisterRoutes(e)

	proxyHandler := proxy.NewHandler(driveService)
	proxyHandler.RegisterRoutes(e)

	// Without an email credential the notifier still answers, it just
	// reports downloads as not tracked.
	var mailer notify.Mailer
	if cfg.SendGridAPIKey != "" {
		mailer = notify.NewSendGridMailer(cfg.SendGridAPIKey)
	}
	notifyService := notify.NewService(mailer, cfg.NotificationEmail, cfg.SenderEmail)
	notifyHandler := notify.NewHandler(notifyService)
	notifyHandler.RegisterRoutes(e)

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.CORSConfig())
}
