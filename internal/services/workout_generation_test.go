package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/setforge/setforge-backend/internal/data/repos"
	"github.com/setforge/setforge-backend/internal/domain"
	"github.com/setforge/setforge-backend/internal/platform/logger"
	"github.com/setforge/setforge-backend/internal/platform/openai"
)

type fakeAI struct {
	reply string
	err   error
	calls int
}

func (f *fakeAI) Chat(_ context.Context, _ []openai.ChatMessage) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newTestService(t *testing.T, ai openai.Client) (WorkoutGenerationService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// A pooled :memory: handle is a fresh database per connection.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	ddl := []string{
		`CREATE TABLE exercise (
			id TEXT PRIMARY KEY, name TEXT NOT NULL UNIQUE,
			movement_pattern TEXT, primary_muscle TEXT, modality TEXT,
			created_at DATETIME, updated_at DATETIME, deleted_at DATETIME
		)`,
		`CREATE TABLE workout (
			id TEXT PRIMARY KEY, name TEXT NOT NULL, description TEXT,
			template_kind TEXT NOT NULL, total_planned_sets INTEGER NOT NULL DEFAULT 0,
			raw_output TEXT, template_config TEXT,
			created_at DATETIME, updated_at DATETIME, deleted_at DATETIME
		)`,
		`CREATE TABLE workout_exercise (
			id TEXT PRIMARY KEY, workout_id TEXT NOT NULL,
			exercise_id TEXT NOT NULL, exercise_name TEXT NOT NULL,
			sets INTEGER NOT NULL DEFAULT 0, reps TEXT, rest_period TEXT, notes TEXT,
			order_index INTEGER NOT NULL, group_name TEXT NOT NULL,
			created_at DATETIME, updated_at DATETIME
		)`,
	}
	for _, stmt := range ddl {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}

	log := logger.NewNop()
	svc, err := NewWorkoutGenerationService(WorkoutGenerationDeps{
		DB:           db,
		ExerciseRepo: repos.NewExerciseRepo(log),
		WorkoutRepo:  repos.NewWorkoutRepo(log),
		AI:           ai,
		Log:          log,
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, db
}

func seedSquat(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	squat := domain.Exercise{Name: "Barbell Back Squat", PrimaryMuscle: "quads"}
	if err := db.Create(&squat).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	return squat.ID
}

func generateRequest() GenerateWorkoutRequest {
	return GenerateWorkoutRequest{
		Template: "standard",
		Clients: []domain.ClientProfile{{
			UserID:           "c1",
			Name:             "Ana",
			StrengthCapacity: "moderate",
			SkillCapacity:    "moderate",
			Intensity:        "moderate",
		}},
	}
}

func TestGeneratePersistsPlan(t *testing.T) {
	ai := &fakeAI{reply: `{"blocka": [{"exercise": "Barbell Back Squat", "sets": 4, "reps": "5"}]}`}
	svc, db := newTestService(t, ai)
	squatID := seedSquat(t, db)

	req := generateRequest()
	req.Persist = true
	resp, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !resp.Success || resp.WorkoutID == "" {
		t.Fatalf("resp = %+v", resp)
	}
	if !resp.Validation.Valid {
		t.Errorf("validation = %+v", resp.Validation)
	}
	if ai.calls != 1 {
		t.Errorf("ai calls = %d", ai.calls)
	}

	stored, err := svc.GetWorkout(context.Background(), resp.WorkoutID)
	if err != nil {
		t.Fatalf("get workout: %v", err)
	}
	if stored.TotalPlannedSets != 4 || len(stored.Exercises) != 1 {
		t.Errorf("stored = %+v", stored)
	}
	if stored.Exercises[0].ExerciseID != squatID.String() {
		t.Errorf("exercise id = %q, want %q", stored.Exercises[0].ExerciseID, squatID)
	}
}

func TestGenerateProviderErrorIsNotPersisted(t *testing.T) {
	ai := &fakeAI{err: errors.New("Rate limit exceeded")}
	svc, db := newTestService(t, ai)
	seedSquat(t, db)

	req := generateRequest()
	req.Persist = true
	resp, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp.Success || resp.Error != "Rate limit exceeded" {
		t.Fatalf("resp = %+v", resp)
	}

	var count int64
	db.Table("workout").Count(&count)
	if count != 0 {
		t.Errorf("workout rows = %d", count)
	}
}

func TestGenerateSkipsPersistWhenNotRequested(t *testing.T) {
	ai := &fakeAI{reply: `{"blocka": [{"exercise": "Barbell Back Squat", "sets": 3}]}`}
	svc, db := newTestService(t, ai)
	seedSquat(t, db)

	resp, err := svc.Generate(context.Background(), generateRequest())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !resp.Success || resp.WorkoutID != "" {
		t.Fatalf("resp = %+v", resp)
	}

	var count int64
	db.Table("workout").Count(&count)
	if count != 0 {
		t.Errorf("workout rows = %d", count)
	}
}

func TestGenerateRejectsUnknownTemplate(t *testing.T) {
	svc, _ := newTestService(t, &fakeAI{})
	req := generateRequest()
	req.Template = "pyramid"
	if _, err := svc.Generate(context.Background(), req); err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestSeedCatalogUpserts(t *testing.T) {
	svc, db := newTestService(t, &fakeAI{})

	count, err := svc.SeedCatalog(context.Background(), []domain.Exercise{
		{Name: "Push-Up"},
		{Name: "Goblet Squat", PrimaryMuscle: "quads"},
		{Name: ""},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d", count)
	}

	var rows int64
	db.Table("exercise").Count(&rows)
	if rows != 2 {
		t.Errorf("rows = %d", rows)
	}

	// Re-seeding the same names must not duplicate.
	if _, err := svc.SeedCatalog(context.Background(), []domain.Exercise{{Name: "Push-Up"}}); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	db.Table("exercise").Count(&rows)
	if rows != 2 {
		t.Errorf("rows after reseed = %d", rows)
	}
}
