package repos

import (
	"gorm.io/gorm"

	"github.com/setforge/setforge-backend/internal/domain"
	"github.com/setforge/setforge-backend/internal/platform/logger"
)

// WorkoutRepo persists generated plans and their ordered lines.
type WorkoutRepo interface {
	Create(tx *gorm.DB, workout *domain.Workout) error
	GetByID(tx *gorm.DB, id string) (*domain.Workout, error)
	ListRecent(tx *gorm.DB, limit int) ([]domain.Workout, error)
}

type workoutRepo struct {
	log *logger.Logger
}

func NewWorkoutRepo(log *logger.Logger) WorkoutRepo {
	return &workoutRepo{log: log.With("repo", "workout")}
}

func (r *workoutRepo) Create(tx *gorm.DB, workout *domain.Workout) error {
	if err := tx.Create(workout).Error; err != nil {
		r.log.Error("failed to create workout", "name", workout.Name, "error", err)
		return err
	}
	return nil
}

func (r *workoutRepo) GetByID(tx *gorm.DB, id string) (*domain.Workout, error) {
	var workout domain.Workout
	err := tx.Preload("Exercises", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index asc")
	}).Where("id = ?", id).First(&workout).Error
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

func (r *workoutRepo) ListRecent(tx *gorm.DB, limit int) ([]domain.Workout, error) {
	if limit <= 0 {
		limit = 20
	}
	var workouts []domain.Workout
	err := tx.Order("created_at desc").Limit(limit).Find(&workouts).Error
	if err != nil {
		r.log.Error("failed to list workouts", "error", err)
		return nil, err
	}
	return workouts, nil
}
