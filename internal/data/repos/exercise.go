package repos

import (
	"gorm.io/gorm"

	"github.com/setforge/setforge-backend/internal/domain"
	"github.com/setforge/setforge-backend/internal/platform/logger"
)

// ExerciseRepo is the catalog's persistence surface. Every method takes
// the transaction it should run in.
type ExerciseRepo interface {
	Create(tx *gorm.DB, exercise *domain.Exercise) error
	GetByID(tx *gorm.DB, id string) (*domain.Exercise, error)
	GetByName(tx *gorm.DB, name string) (*domain.Exercise, error)
	ListAll(tx *gorm.DB) ([]domain.Exercise, error)
	UpsertByName(tx *gorm.DB, exercise *domain.Exercise) error
}

type exerciseRepo struct {
	log *logger.Logger
}

func NewExerciseRepo(log *logger.Logger) ExerciseRepo {
	return &exerciseRepo{log: log.With("repo", "exercise")}
}

func (r *exerciseRepo) Create(tx *gorm.DB, exercise *domain.Exercise) error {
	if err := tx.Create(exercise).Error; err != nil {
		r.log.Error("failed to create exercise", "name", exercise.Name, "error", err)
		return err
	}
	return nil
}

func (r *exerciseRepo) GetByID(tx *gorm.DB, id string) (*domain.Exercise, error) {
	var exercise domain.Exercise
	if err := tx.Where("id = ?", id).First(&exercise).Error; err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *exerciseRepo) GetByName(tx *gorm.DB, name string) (*domain.Exercise, error) {
	var exercise domain.Exercise
	if err := tx.Where("name = ?", name).First(&exercise).Error; err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *exerciseRepo) ListAll(tx *gorm.DB) ([]domain.Exercise, error) {
	var exercises []domain.Exercise
	if err := tx.Order("name asc").Find(&exercises).Error; err != nil {
		r.log.Error("failed to list exercises", "error", err)
		return nil, err
	}
	return exercises, nil
}

func (r *exerciseRepo) UpsertByName(tx *gorm.DB, exercise *domain.Exercise) error {
	var existing domain.Exercise
	err := tx.Where("name = ?", exercise.Name).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.Create(tx, exercise)
	}
	if err != nil {
		return err
	}
	exercise.ID = existing.ID
	return tx.Model(&existing).Updates(map[string]any{
		"movement_pattern": exercise.MovementPattern,
		"primary_muscle":   exercise.PrimaryMuscle,
		"modality":         exercise.Modality,
	}).Error
}
