package routes

import (
	"maternal-care-backend/internal/api/handlers"
	"maternal-care-backend/internal/api/middleware"
	"maternal-care-backend/internal/config"
	"maternal-care-backend/internal/ledger"
	"maternal-care-backend/internal/logger"
	"maternal-care-backend/internal/reconcile"
	"maternal-care-backend/internal/repository"
	"maternal-care-backend/internal/schedule"
	"maternal-care-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. The schedule
// registry and the completion ledger are built by the caller so a warmed
// ledger can be handed in at startup.
func SetupRoutes(db *gorm.DB, cfg *config.Config, registry *schedule.Registry, completionLedger *ledger.Ledger) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	log := logger.New()

	// Initialize repositories
	childRepo := repository.NewChildRepository(db)
	pregnancyRepo := repository.NewPregnancyRepository(db)
	recordRepo := repository.NewCompletionRecordRepository(db)

	// Reconciliation boundary: the registry client is the backend of record,
	// the coordinator moves pending ledger entries across it
	registryClient := reconcile.NewRegistryClient(cfg.RegistryBaseURL, cfg.RegistryToken)
	coordinator := reconcile.NewCoordinator(completionLedger, registryClient, log)

	// Initialize services
	childService := service.NewChildService(childRepo, validator)
	pregnancyService := service.NewPregnancyService(pregnancyRepo, validator)
	timelineService := service.NewTimelineService(childRepo, pregnancyRepo, registry, completionLedger, cfg.GracePolicy())
	completionService := service.NewCompletionService(completionLedger, registry, childRepo, pregnancyRepo, recordRepo, coordinator, validator, log)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	childHandler := handlers.NewChildHandler(childService)
	pregnancyHandler := handlers.NewPregnancyHandler(pregnancyService)
	timelineHandler := handlers.NewTimelineHandler(timelineService)
	completionHandler := handlers.NewCompletionHandler(completionService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Child registry routes
		children := v1.Group("/children")
		{
			children.GET("", childHandler.ListChildren)
			children.POST("", childHandler.CreateChild)
			children.GET("/:id", childHandler.GetChild)
			children.PUT("/:id", childHandler.UpdateChild)
			children.DELETE("/:id", childHandler.DeleteChild)
			children.GET("/mrn/:mrn", childHandler.GetChildByMedicalRecordNumber)
			children.GET("/:id/immunizations", timelineHandler.GetChildImmunizations)
		}

		// Pregnancy registry routes
		pregnancies := v1.Group("/pregnancies")
		{
			pregnancies.GET("", pregnancyHandler.ListPregnancies)
			pregnancies.POST("", pregnancyHandler.CreatePregnancy)
			pregnancies.GET("/active", pregnancyHandler.ListActivePregnancies)
			pregnancies.GET("/:id", pregnancyHandler.GetPregnancy)
			pregnancies.PUT("/:id", pregnancyHandler.UpdatePregnancy)
			pregnancies.DELETE("/:id", pregnancyHandler.DeletePregnancy)
			pregnancies.POST("/:id/close", pregnancyHandler.ClosePregnancy)
			pregnancies.GET("/:id/checkups", timelineHandler.GetPregnancyCheckups)
			pregnancies.GET("/:id/milestones", timelineHandler.GetPregnancyMilestones)
		}

		// Completion ledger routes
		completions := v1.Group("/completions")
		{
			completions.GET("/:subjectId", completionHandler.ListCompletions)
			completions.PUT("/:domain/:subjectId/:milestoneId", completionHandler.MarkCompletion)
			completions.DELETE("/:domain/:subjectId/:milestoneId", completionHandler.RevertCompletion)
			completions.POST("/:domain/:subjectId/:milestoneId/retry", completionHandler.RetryCompletion)
		}

		// Sync routes, only when a registry is configured
		if cfg.RegistryBaseURL != "" {
			sync := v1.Group("/sync")
			{
				sync.POST("/:subjectId", completionHandler.SyncSubject)
				sync.POST("/:subjectId/seed", completionHandler.SeedSubject)
			}
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
