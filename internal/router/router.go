// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/regzone/compliance-backend/internal/config"
	"github.com/regzone/compliance-backend/internal/handlers"
	"github.com/regzone/compliance-backend/internal/middleware"
	"github.com/regzone/compliance-backend/internal/services"
	"github.com/regzone/compliance-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Initialize services
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	authService := services.NewAuthService(db, cfg)
	licenseeService := services.NewLicenseeService(db)
	complianceService := services.NewComplianceService(db)
	adminService := services.NewAdminService(db)
	notificationService := services.NewNotificationService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	licenseeHandler := handlers.NewLicenseeHandler(licenseeService)
	complianceHandler := handlers.NewComplianceHandler(complianceService, storageService)
	adminHandler := handlers.NewAdminHandler(adminService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
		})
	})

	api := r.Group("/api")
	{
		// Authentication routes
		auth := api.Group("")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
		}
		api.GET("/profile", middleware.AuthRequired(), authHandler.GetProfile)

		// Licensee and compliance routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired())
		{
			protected.POST("/licensees", licenseeHandler.RegisterLicensee)
			protected.POST("/submit-compliance", middleware.SubmitRateLimit(), complianceHandler.SubmitCompliance)
			protected.GET("/my-submissions", complianceHandler.GetMySubmissions)
			protected.GET("/submission-status/:submissionId", complianceHandler.GetSubmissionStatus)

			protected.GET("/notifications", notificationHandler.GetNotifications)
			protected.PUT("/notifications/:id/read", notificationHandler.MarkAsRead)
		}

		// Admin routes
		admin := api.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.GET("/submissions", adminHandler.GetSubmissions)
			admin.GET("/user-stats", adminHandler.GetUserStats)
			admin.GET("/compliance-forms/:id", adminHandler.GetSubmissionDetail)
			admin.POST("/update-submission", adminHandler.UpdateSubmission)
			admin.POST("/approve-submission", adminHandler.ApproveSubmission)
			admin.DELETE("/compliance-forms/:id", adminHandler.DeleteSubmission)
		}
	}

	return r, nil
}
