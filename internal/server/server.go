package server

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"evently/config"
	"evently/internal/database"
	"evently/internal/handlers"
	"evently/internal/middleware"
)

func Start() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := config.NewLogger()
	slog.SetDefault(logger)

	cache := database.New(database.Opener(cfg, logger))
	db, err := cache.Get()
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	r := gin.Default()

	setupRoutes(r, db)

	logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
	return r.Run(":" + cfg.Port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middleware.DatabaseMiddleware(db))

	v1 := r.Group("/v1")

	events := v1.Group("/events")
	{
		events.GET("", handlers.ListEvents)
		events.GET("/:slug", handlers.GetEvent)
		events.POST("", handlers.CreateEvent)
		events.PUT("/:slug", handlers.UpdateEvent)
		events.DELETE("/:slug", handlers.DeleteEvent)
		events.GET("/:slug/bookings", handlers.ListEventBookings)
	}

	v1.POST("/bookings", handlers.CreateBooking)
}
