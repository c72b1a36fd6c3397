package main

import (
	"log"
	"os"

	"maternal-care-backend/internal/api/routes"
	"maternal-care-backend/internal/config"
	"maternal-care-backend/internal/database"
	"maternal-care-backend/internal/ledger"
	"maternal-care-backend/internal/repository"
	"maternal-care-backend/internal/schedule"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "maternal-care-backend/docs" // This is needed for swag
)

//	@title			Maternal Care Backend API
//	@version		1.0
//	@description	This is the backend API for the maternal and child health tracker, providing endpoints for managing children, pregnancies, care schedule timelines and completion records.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8080
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Load the care schedule templates
	registry, err := schedule.LoadDir(cfg.TemplateDir)
	if err != nil {
		logrus.Fatal("Failed to load schedule templates:", err)
	}
	logrus.Infof("Loaded schedule templates for %d domains from %s", len(registry.Domains()), cfg.TemplateDir)

	// Warm the completion ledger from the durable mirror
	completionLedger := ledger.New()
	recordRepo := repository.NewCompletionRecordRepository(db)
	records, err := recordRepo.LoadLedgerRecords()
	if err != nil {
		logrus.Fatal("Failed to load completion records:", err)
	}
	completionLedger.Restore(records)
	logrus.Infof("Restored %d completion records into the ledger", completionLedger.Len())

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, registry, completionLedger)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
