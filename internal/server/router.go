package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/setforge/setforge-backend/internal/handlers"
	"github.com/setforge/setforge-backend/internal/platform/config"
)

// NewRouter wires the HTTP surface: health check plus the versioned
// API group.
func NewRouter(cfg config.ServerConfig, workout *handlers.WorkoutHandler, exercise *handlers.ExerciseHandler) *gin.Engine {
	if cfg.Mode == "prod" || cfg.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthcheck", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/workouts/generate", workout.Generate)
		api.GET("/workouts", workout.List)
		api.GET("/workouts/:id", workout.Get)
		api.GET("/exercises", exercise.List)
		api.POST("/exercises/seed", exercise.Seed)
	}

	return router
}
