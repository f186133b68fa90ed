package services

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/setforge/setforge-backend/internal/data/repos"
	"github.com/setforge/setforge-backend/internal/domain"
	"github.com/setforge/setforge-backend/internal/modules/generation"
	"github.com/setforge/setforge-backend/internal/platform/logger"
	"github.com/setforge/setforge-backend/internal/platform/openai"
)

// GenerateWorkoutRequest is one end-to-end generation call.
type GenerateWorkoutRequest struct {
	Template        string                             `json:"template"`
	Clients         []domain.ClientProfile             `json:"clients"`
	Equipment       *domain.EquipmentInventory         `json:"equipment,omitempty"`
	Blueprint       []domain.RoundBlueprint            `json:"blueprint,omitempty"`
	Assignments     []domain.DeterministicAssignment   `json:"assignments,omitempty"`
	Structure       *domain.WorkoutStructure           `json:"structure,omitempty"`
	Candidates      map[string][]domain.ScoredExercise `json:"candidates,omitempty"`
	PlanName        string                             `json:"plan_name,omitempty"`
	PlanDescription string                             `json:"plan_description,omitempty"`
	// Persist controls whether a successful plan is written to storage.
	Persist bool `json:"persist,omitempty"`
}

// GenerateWorkoutResponse mirrors the pipeline's terminal state plus
// the storage id when the plan was persisted.
type GenerateWorkoutResponse struct {
	Success    bool                         `json:"success"`
	Error      string                       `json:"error,omitempty"`
	WorkoutID  string                       `json:"workout_id,omitempty"`
	Plan       *generation.PersistablePlan  `json:"plan,omitempty"`
	Validation *generation.ValidationReport `json:"validation,omitempty"`
	Timing     generation.Timing            `json:"timing"`
}

// WorkoutGenerationService runs the generation pipeline against the
// live catalog and persists the results.
type WorkoutGenerationService interface {
	Generate(ctx context.Context, req GenerateWorkoutRequest) (*GenerateWorkoutResponse, error)
	ListExercises(ctx context.Context) ([]domain.Exercise, error)
	SeedCatalog(ctx context.Context, exercises []domain.Exercise) (int, error)
	GetWorkout(ctx context.Context, id string) (*domain.Workout, error)
	ListWorkouts(ctx context.Context, limit int) ([]domain.Workout, error)
}

// WorkoutGenerationDeps are the service's collaborators, injected at
// startup.
type WorkoutGenerationDeps struct {
	DB           *gorm.DB
	ExerciseRepo repos.ExerciseRepo
	WorkoutRepo  repos.WorkoutRepo
	AI           openai.Client
	Log          *logger.Logger
}

type workoutGenerationService struct {
	deps WorkoutGenerationDeps
	log  *logger.Logger
}

func NewWorkoutGenerationService(deps WorkoutGenerationDeps) (WorkoutGenerationService, error) {
	if deps.DB == nil || deps.ExerciseRepo == nil || deps.WorkoutRepo == nil {
		return nil, fmt.Errorf("workout generation service: storage deps required")
	}
	if deps.AI == nil {
		return nil, fmt.Errorf("workout generation service: ai client required")
	}
	if deps.Log == nil {
		return nil, fmt.Errorf("workout generation service: logger required")
	}
	return &workoutGenerationService{
		deps: deps,
		log:  deps.Log.With("service", "WorkoutGeneration"),
	}, nil
}

// chatProvider adapts the OpenAI client to the pipeline's provider
// boundary.
type chatProvider struct {
	ai openai.Client
}

func (p chatProvider) Invoke(ctx context.Context, messages []generation.Message) (string, error) {
	chat := make([]openai.ChatMessage, len(messages))
	for i, m := range messages {
		chat[i] = openai.ChatMessage{Role: m.Role, Content: m.Content}
	}
	return p.ai.Chat(ctx, chat)
}

func (s *workoutGenerationService) Generate(ctx context.Context, req GenerateWorkoutRequest) (*GenerateWorkoutResponse, error) {
	kind, err := generation.ParseTemplateKind(req.Template)
	if err != nil {
		return nil, err
	}
	if len(req.Clients) == 0 {
		return nil, fmt.Errorf("at least one client required")
	}

	catalog, err := s.loadCatalog()
	if err != nil {
		return nil, err
	}
	s.log.Info("starting workout generation",
		"template", kind.String(),
		"clients", len(req.Clients),
		"catalog_size", catalog.Len(),
	)

	out := generation.Run(ctx, generation.PipelineDeps{
		Provider: chatProvider{ai: s.deps.AI},
		Log:      s.deps.Log,
	}, generation.PipelineInput{
		Compile: generation.CompileInput{
			Kind:        kind,
			Clients:     req.Clients,
			Equipment:   req.Equipment,
			Blueprint:   req.Blueprint,
			Assignments: req.Assignments,
			Structure:   req.Structure,
			Candidates:  req.Candidates,
		},
		Catalog:         catalog,
		PlanName:        req.PlanName,
		PlanDescription: req.PlanDescription,
	})

	resp := &GenerateWorkoutResponse{
		Success:    out.Success,
		Error:      out.Error,
		Plan:       out.Plan,
		Validation: out.Validation,
		Timing:     out.Timing,
	}
	if !out.Success || !req.Persist {
		return resp, nil
	}

	workout, err := s.persistPlan(*out.Plan)
	if err != nil {
		return nil, err
	}
	resp.WorkoutID = workout.ID.String()
	return resp, nil
}

// loadCatalog snapshots the exercise table into an in-memory catalog
// for the resolver.
func (s *workoutGenerationService) loadCatalog() (*generation.StaticCatalog, error) {
	rows, err := s.deps.ExerciseRepo.ListAll(s.deps.DB)
	if err != nil {
		return nil, fmt.Errorf("load exercise catalog: %w", err)
	}
	refs := make([]generation.ExerciseRef, len(rows))
	for i, row := range rows {
		refs[i] = generation.ExerciseRef{ID: row.ID.String(), Name: row.Name}
	}
	return generation.NewStaticCatalog(refs), nil
}

func (s *workoutGenerationService) persistPlan(plan generation.PersistablePlan) (*domain.Workout, error) {
	rawOutput, err := json.Marshal(plan.RawOutput)
	if err != nil {
		return nil, fmt.Errorf("encode raw output: %w", err)
	}
	templateConfig, err := json.Marshal(plan.TemplateConfig)
	if err != nil {
		return nil, fmt.Errorf("encode template config: %w", err)
	}

	workout := &domain.Workout{
		Name:             plan.Name,
		Description:      plan.Description,
		TemplateKind:     plan.TemplateKind.String(),
		TotalPlannedSets: plan.TotalPlannedSets,
		RawOutput:        datatypes.JSON(rawOutput),
		TemplateConfig:   datatypes.JSON(templateConfig),
	}
	for _, ex := range plan.Exercises {
		workout.Exercises = append(workout.Exercises, domain.WorkoutExercise{
			ExerciseID:   ex.ExerciseID,
			ExerciseName: ex.ExerciseName,
			Sets:         ex.Sets,
			Reps:         ex.Reps,
			RestPeriod:   ex.RestPeriod,
			Notes:        ex.Notes,
			OrderIndex:   ex.OrderIndex,
			GroupName:    ex.GroupName,
		})
	}

	err = s.deps.DB.Transaction(func(tx *gorm.DB) error {
		return s.deps.WorkoutRepo.Create(tx, workout)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("workout persisted", "workout_id", workout.ID, "exercises", len(workout.Exercises))
	return workout, nil
}

func (s *workoutGenerationService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	return s.deps.ExerciseRepo.ListAll(s.deps.DB.WithContext(ctx))
}

// SeedCatalog upserts a batch of exercises concurrently and reports how
// many rows were written.
func (s *workoutGenerationService) SeedCatalog(ctx context.Context, exercises []domain.Exercise) (int, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i := range exercises {
		ex := &exercises[i]
		if ex.Name == "" {
			continue
		}
		g.Go(func() error {
			return s.deps.ExerciseRepo.UpsertByName(s.deps.DB.WithContext(ctx), ex)
		})
	}
	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("seed catalog: %w", err)
	}
	count := 0
	for _, ex := range exercises {
		if ex.Name != "" {
			count++
		}
	}
	s.log.Info("catalog seeded", "count", count)
	return count, nil
}

func (s *workoutGenerationService) GetWorkout(ctx context.Context, id string) (*domain.Workout, error) {
	return s.deps.WorkoutRepo.GetByID(s.deps.DB.WithContext(ctx), id)
}

func (s *workoutGenerationService) ListWorkouts(ctx context.Context, limit int) ([]domain.Workout, error) {
	return s.deps.WorkoutRepo.ListRecent(s.deps.DB.WithContext(ctx), limit)
}
