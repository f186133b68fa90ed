package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Exercise is one row of the canonical exercise catalog.
type Exercise struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name            string         `gorm:"column:name;not null;uniqueIndex" json:"name"`
	MovementPattern string         `gorm:"column:movement_pattern;index" json:"movement_pattern,omitempty"`
	PrimaryMuscle   string         `gorm:"column:primary_muscle;index" json:"primary_muscle,omitempty"`
	Modality        string         `gorm:"column:modality" json:"modality,omitempty"`
	CreatedAt       time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Exercise) TableName() string { return "exercise" }

func (e *Exercise) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Workout is a persisted plan header. RawOutput keeps the generator's
// parsed reply verbatim for audit.
type Workout struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name             string         `gorm:"column:name;not null" json:"name"`
	Description      string         `gorm:"column:description;type:text" json:"description,omitempty"`
	TemplateKind     string         `gorm:"column:template_kind;not null;index" json:"template_kind"`
	TotalPlannedSets int            `gorm:"column:total_planned_sets;not null;default:0" json:"total_planned_sets"`
	RawOutput        datatypes.JSON `gorm:"column:raw_output;type:jsonb" json:"raw_output,omitempty"`
	TemplateConfig   datatypes.JSON `gorm:"column:template_config;type:jsonb" json:"template_config,omitempty"`

	Exercises []WorkoutExercise `gorm:"constraint:OnDelete:CASCADE;foreignKey:WorkoutID;references:ID" json:"exercises,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Workout) TableName() string { return "workout" }

func (w *Workout) BeforeCreate(*gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// WorkoutExercise is one ordered line of a persisted plan. ExerciseID
// is the catalog id, or the sentinel "unknown" when the generator named
// an exercise the catalog does not have.
type WorkoutExercise struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	WorkoutID    uuid.UUID `gorm:"type:uuid;not null;index" json:"workout_id"`
	ExerciseID   string    `gorm:"column:exercise_id;not null" json:"exercise_id"`
	ExerciseName string    `gorm:"column:exercise_name;not null" json:"exercise_name"`
	Sets         int       `gorm:"column:sets;not null;default:0" json:"sets"`
	Reps         string    `gorm:"column:reps" json:"reps,omitempty"`
	RestPeriod   string    `gorm:"column:rest_period" json:"rest_period,omitempty"`
	Notes        string    `gorm:"column:notes;type:text" json:"notes,omitempty"`
	OrderIndex   int       `gorm:"column:order_index;not null" json:"order_index"`
	GroupName    string    `gorm:"column:group_name;not null" json:"group_name"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (WorkoutExercise) TableName() string { return "workout_exercise" }

func (we *WorkoutExercise) BeforeCreate(*gorm.DB) error {
	if we.ID == uuid.Nil {
		we.ID = uuid.New()
	}
	return nil
}
