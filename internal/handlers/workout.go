package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/setforge/setforge-backend/internal/domain"
	"github.com/setforge/setforge-backend/internal/platform/logger"
	"github.com/setforge/setforge-backend/internal/services"
)

// WorkoutHandler exposes the generation pipeline and persisted plans
// over HTTP.
type WorkoutHandler struct {
	service services.WorkoutGenerationService
	log     *logger.Logger
}

func NewWorkoutHandler(service services.WorkoutGenerationService, log *logger.Logger) *WorkoutHandler {
	return &WorkoutHandler{
		service: service,
		log:     log.With("handler", "workout"),
	}
}

// Generate runs the full pipeline for one request body.
func (h *WorkoutHandler) Generate(c *gin.Context) {
	var req services.GenerateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		h.log.Error("generate request rejected", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get returns one persisted workout with its ordered exercises.
func (h *WorkoutHandler) Get(c *gin.Context) {
	workout, err := h.service.GetWorkout(c.Request.Context(), c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "workout not found"})
		return
	}
	if err != nil {
		h.log.Error("failed to load workout", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load workout"})
		return
	}
	c.JSON(http.StatusOK, workout)
}

// List returns recent workouts, newest first.
func (h *WorkoutHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	workouts, err := h.service.ListWorkouts(c.Request.Context(), limit)
	if err != nil {
		h.log.Error("failed to list workouts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list workouts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"workouts": workouts})
}

// ExerciseHandler exposes the exercise catalog.
type ExerciseHandler struct {
	service services.WorkoutGenerationService
	log     *logger.Logger
}

func NewExerciseHandler(service services.WorkoutGenerationService, log *logger.Logger) *ExerciseHandler {
	return &ExerciseHandler{
		service: service,
		log:     log.With("handler", "exercise"),
	}
}

func (h *ExerciseHandler) List(c *gin.Context) {
	exercises, err := h.service.ListExercises(c.Request.Context())
	if err != nil {
		h.log.Error("failed to list exercises", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list exercises"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exercises": exercises})
}

// Seed upserts a batch of catalog rows.
func (h *ExerciseHandler) Seed(c *gin.Context) {
	var body struct {
		Exercises []domain.Exercise `json:"exercises"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	count, err := h.service.SeedCatalog(c.Request.Context(), body.Exercises)
	if err != nil {
		h.log.Error("failed to seed catalog", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to seed catalog"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"seeded": count})
}
