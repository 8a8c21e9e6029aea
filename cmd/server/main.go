package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	cookieStore "github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/mytodoapp/mytodo-api/internal/config"
	"github.com/mytodoapp/mytodo-api/internal/constants"
	"github.com/mytodoapp/mytodo-api/internal/database"
	"github.com/mytodoapp/mytodo-api/internal/handlers"
	"github.com/mytodoapp/mytodo-api/internal/middleware"
	"github.com/mytodoapp/mytodo-api/internal/repository"
	"github.com/mytodoapp/mytodo-api/internal/services"
)

func main() {
	// Load configuration; refuses to start without DATABASE_URL and
	// SESSION_SECRET.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

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

	// Initialize Gin router
	r := gin.Default()

	// Session store: server-side Redis store when configured, signed
	// cookie store otherwise.
	store, err := newSessionStore(cfg)
	if err != nil {
		log.Fatalf("Failed to create session store: %v", err)
	}
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(database.GetDB(), cfg.StoreTimeout)
	taskRepo := repository.NewTaskRepository(database.GetDB(), cfg.StoreTimeout)
	authService := services.NewAuthService(userRepo)
	taskService := services.NewTaskService(taskRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "MyTodo API is running",
		})
	})

	// Auth routes (public)
	r.POST("/signup", authHandler.Signup)
	r.POST("/user-login", authHandler.Login)

	// Task update/delete keep their legacy paths outside /api
	r.PATCH("/update-task/:id", middleware.RequireAuth(), taskHandler.UpdateTask)
	r.POST("/delete-task", middleware.RequireAuth(), taskHandler.DeleteTask)

	api := r.Group("/api")
	{
		// Logout is idempotent, so it stays outside RequireAuth
		api.POST("/logout", authHandler.Logout)
		api.GET("/session", authHandler.Session)

		api.GET("/profile", middleware.RequireAuth(), authHandler.Profile)
		api.POST("/add_task", middleware.RequireAuth(), taskHandler.AddTask)
		api.GET("/show_task", middleware.RequireAuth(), taskHandler.ShowTasks)
	}

	// Start server
	log.Printf("Server starting on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newSessionStore(cfg *config.Config) (sessions.Store, error) {
	sessionOptions := sessions.Options{
		Path:     "/",
		MaxAge:   constants.SessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.GinMode == "release",
		SameSite: 2, // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	}

	if cfg.RedisAddr != "" {
		store, err := redisStore.NewStore(
			10,            // Redis pool size
			"tcp",         // network type
			cfg.RedisAddr, // Redis address from config
			"",            // password (empty = no password)
			[]byte(cfg.SessionSecret), // authentication key
		)
		if err != nil {
			return nil, err
		}
		store.Options(sessionOptions)
		return store, nil
	}

	store := cookieStore.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessionOptions)
	return store, nil
}
