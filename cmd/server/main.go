package main

import (
	"github.com/Shubha258/Task-Manager/internal/config"
	"github.com/Shubha258/Task-Manager/internal/database"
	"github.com/Shubha258/Task-Manager/internal/handlers"
	"github.com/Shubha258/Task-Manager/internal/logger"
	"github.com/Shubha258/Task-Manager/internal/middleware"
	"github.com/Shubha258/Task-Manager/internal/repository"
	"github.com/Shubha258/Task-Manager/internal/services"
	"github.com/Shubha258/Task-Manager/internal/token"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.Init(cfg.LogLevel)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize dependencies
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	tokens := token.NewService(cfg.AccessTokenSecret)
	authService := services.NewAuthService(userRepo, tokens)
	taskService := services.NewTaskService(taskRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// Initialize Gin router
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Task Manager API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Public routes
		api.POST("/auth/login", authHandler.Login)
		api.POST("/users", userHandler.Signup)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.RequireAuth(tokens, userRepo))
		{
			protected.GET("/users/:userId", userHandler.GetProfile)

			protected.GET("/tasks", taskHandler.ListTasks)
			protected.POST("/tasks", taskHandler.CreateTask)
			protected.GET("/tasks/:taskId", taskHandler.GetTask)
			protected.PUT("/tasks/:taskId", taskHandler.UpdateTask)
			protected.DELETE("/tasks/:taskId", taskHandler.DeleteTask)
		}
	}

	// Start server
	log.Infof("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
