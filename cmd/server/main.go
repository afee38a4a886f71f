package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"

	"github.com/sreejapuram0307/sherising/internal/adapters/http/middleware"
	"github.com/sreejapuram0307/sherising/internal/adapters/http/routes"
	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/models"
	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/repositories"
	"github.com/sreejapuram0307/sherising/internal/config"
	"github.com/sreejapuram0307/sherising/internal/core/chatbot"
	"github.com/sreejapuram0307/sherising/internal/core/services"

	_ "github.com/sreejapuram0307/sherising/docs" // Swagger docs
)

// @title SheRise API
// @version 1.0
// @description Crowdfunding and networking platform for women entrepreneurs, investors and mentors

// @contact.name API Support
// @contact.email support@sherise.app

// @host localhost:5000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Initialize Sentry when a DSN is configured
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.AppMode,
		}); err != nil {
			log.Fatalf("❌ Failed to initialize Sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
		log.Println("✅ Sentry initialized")
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed demo data in development
	if cfg.IsDev() {
		if err := config.SeedDatabase(db); err != nil {
			log.Printf("⚠️ Warning: Failed to seed database: %v", err)
		}
	}

	// Load the chatbot Q&A table
	matcher, err := chatbot.LoadFile(cfg.Chatbot.DataPath)
	if err != nil {
		log.Fatalf("❌ Failed to load chatbot data: %v", err)
	}
	log.Printf("✅ Chatbot data loaded from %s", cfg.Chatbot.DataPath)

	// Start cron jobs (nightly refresh token cleanup)
	cronService := services.NewCronService(repositories.NewRefreshTokenRepository(db))
	if err := cronService.Start(); err != nil {
		log.Fatalf("❌ Failed to start cron jobs: %v", err)
	}
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "SheRise API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg, matcher)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
