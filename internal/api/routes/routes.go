package routes

import (
	"log"

	"github.com/sawwere/team-selection/internal/api/handlers"
	"github.com/sawwere/team-selection/internal/api/middleware"
	"github.com/sawwere/team-selection/internal/auth"
	"github.com/sawwere/team-selection/internal/config"
	"github.com/sawwere/team-selection/internal/logger"
	"github.com/sawwere/team-selection/internal/repository"
	"github.com/sawwere/team-selection/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	repos := repository.New(db)
	tx := repository.NewGormTxManager(db)

	// Initialize services
	userService := service.NewUserService(repos.Users, validate)
	trackService := service.NewTrackService(repos.Tracks, tx, validate)
	studentService := service.NewStudentService(repos, trackService, tx, validate, cfg.EmailDomain)
	teamService := service.NewTeamService(repos, trackService, tx, validate)
	reportService := service.NewReportService(repos.Tracks)

	// Initialize auth service. Without OAuth credentials the API runs open,
	// which is only acceptable in development.
	var authHandler *auth.AuthHandler
	var authMiddleware *auth.AuthMiddleware
	authConfig, err := auth.NewConfig(cfg)
	if err != nil {
		log.Printf("Warning: auth disabled: %v", err)
	} else {
		authService := auth.NewAuthService(authConfig, userService)
		authHandler = auth.NewAuthHandler(authService, userService)
		authMiddleware = auth.NewAuthMiddleware(authService)
	}

	// Initialize handlers
	appLogger := logger.New()
	healthHandler := handlers.NewHealthHandler(db)
	studentHandler := handlers.NewStudentHandler(studentService)
	teamHandler := handlers.NewTeamHandler(teamService)
	trackHandler := handlers.NewTrackHandler(trackService)
	adminHandler := handlers.NewAdminHandler(userService, reportService, appLogger)
	tagsHandler := handlers.NewTagsHandler()

	// Health check route
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	if authHandler != nil {
		authGroup := router.Group("/auth")
		{
			authGroup.GET("/login", authHandler.Login)
			authGroup.GET("/callback", authHandler.Callback)
			authGroup.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
		}
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
	}

	{
		// Tag vocabulary
		v1.GET("/tags", tagsHandler.GetTags)

		// Student routes
		students := v1.Group("/students")
		{
			students.GET("/all", studentHandler.GetAllStudents)
			students.GET("/like", studentHandler.LikeSearch)
			students.GET("/captains", studentHandler.GetCaptains)
			students.GET("/current", studentHandler.GetByCurrentTrack)
			students.GET("/status", studentHandler.FindByStatus)
			students.GET("/tag", studentHandler.FindByTag)
			students.GET("/id/:id", studentHandler.GetStudentByID)
			students.GET("/id/:id/subscriptions", studentHandler.GetSubscriptions)
			students.GET("/:email", studentHandler.GetStudentByEmail)
			students.POST("/register/:type", studentHandler.RegisterStudent)
			students.PUT("/id/:id", studentHandler.UpdateStudent)
			students.DELETE("/id/:id", studentHandler.DeleteStudent)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("/all", teamHandler.GetAllTeams)
			teams.GET("/like", teamHandler.LikeSearch)
			teams.GET("/tag", teamHandler.FindByTag)
			teams.GET("/full", teamHandler.FindByFullFlag)
			teams.GET("/:id", teamHandler.GetTeamByID)
			teams.GET("/:id/candidates", teamHandler.GetCandidates)
			teams.POST("/create/:type", teamHandler.CreateTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.PUT("/:id/subscribe/:studentId", teamHandler.Subscribe)
			teams.PUT("/:id/approve/:studentId", teamHandler.Approve)
			teams.PUT("/:id/decline/:studentId", teamHandler.Decline)
			teams.DELETE("/:id/students/:studentId", teamHandler.RemoveStudent)
		}

		// Track routes
		tracks := v1.Group("/tracks")
		{
			tracks.GET("/all", trackHandler.GetAllTracks)
			tracks.GET("/current", trackHandler.GetCurrentTrack)
			tracks.GET("/:id", trackHandler.GetTrackByID)
			tracks.POST("", trackHandler.CreateTrack)
			tracks.PUT("/:id", trackHandler.UpdateTrack)
			tracks.DELETE("/:id", trackHandler.DeleteTrack)
		}

		// Admin routes
		admin := v1.Group("/admin")
		if authMiddleware != nil {
			admin.Use(authMiddleware.RequireAdmin())
		}
		{
			admin.PUT("/role", adminHandler.GiveRole)
			admin.GET("/report/:trackId", adminHandler.ExportTrackReport)
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
