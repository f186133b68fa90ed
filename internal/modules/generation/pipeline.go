package generation

import (
	"context"
	"time"

	"github.com/setforge/setforge-backend/internal/platform/logger"
)

// PipelineDeps carries the pipeline's collaborators. The provider is an
// explicit dependency; there is no package-level default.
type PipelineDeps struct {
	Provider TextGenerationProvider
	Log      *logger.Logger
}

// PipelineInput is one generation request: the compile input plus the
// catalog used for resolution and the plan naming overrides.
type PipelineInput struct {
	Compile         CompileInput
	Catalog         ExerciseCatalog
	PlanName        string
	PlanDescription string
}

// Timing records how long each pipeline phase took.
type Timing struct {
	Formatting time.Duration `json:"formatting"`
	Generation time.Duration `json:"generation"`
	Parsing    time.Duration `json:"parsing"`
	Total      time.Duration `json:"total"`
}

// PipelineOutput is the terminal state of one run. Success reflects
// provider and parse health only; an imperfect validation report still
// counts as success, with Plan and Validation both populated.
type PipelineOutput struct {
	Success    bool              `json:"success"`
	Error      string            `json:"error,omitempty"`
	Prompt     PromptDocument    `json:"-"`
	Raw        string            `json:"-"`
	Parsed     map[string]any    `json:"parsed,omitempty"`
	Plan       *PersistablePlan  `json:"plan,omitempty"`
	Validation *ValidationReport `json:"validation,omitempty"`
	Timing     Timing            `json:"timing"`
}

// Run drives one request end to end: compile, invoke, extract,
// validate, transform. The first three stages can fail the run;
// validation and transform always complete once a JSON object exists.
func Run(ctx context.Context, deps PipelineDeps, in PipelineInput) PipelineOutput {
	log := deps.Log
	if log == nil {
		log = logger.NewNop()
	}
	log = log.With("pipeline", "workout_generation", "template", in.Compile.Kind.String())
	totalDone := phaseTimer(log, "total")

	var out PipelineOutput

	formatDone := phaseTimer(log, "formatting")
	doc, err := Compile(in.Compile)
	out.Timing.Formatting = formatDone()
	if err != nil {
		log.Error("prompt compilation failed", "error", err)
		out.Error = err.Error()
		out.Timing.Total = totalDone()
		return out
	}
	out.Prompt = doc

	raw, generation, err := Invoke(ctx, deps.Provider, log, doc)
	out.Timing.Generation = generation
	if err != nil {
		log.Error("provider call failed", "error", err)
		out.Error = err.Error()
		out.Timing.Total = totalDone()
		return out
	}
	out.Raw = raw

	parseDone := phaseTimer(log, "parsing")
	parsed := Extract(raw)
	out.Timing.Parsing = parseDone()
	if parsed == nil {
		log.Error("no JSON object found in provider reply", "reply_len", len(raw))
		out.Error = "Failed to parse LLM response as JSON"
		out.Timing.Total = totalDone()
		return out
	}
	if len(planSectionKeys(parsed)) == 0 {
		log.Error("provider reply has no workout sections")
		out.Error = "LLM response contained no workout sections"
		out.Parsed = parsed
		out.Timing.Total = totalDone()
		return out
	}
	out.Parsed = parsed

	catalog := in.Catalog
	if catalog == nil {
		catalog = NewStaticCatalog(nil)
	}
	validation := ValidateLookup(parsed, catalog)
	out.Validation = &validation
	if !validation.Valid {
		log.Warn("plan references unknown exercises", "missing", validation.MissingExercises)
	}

	plan := Transform(parsed, catalog, in.Compile.Kind, in.PlanName, in.PlanDescription)
	out.Plan = &plan
	out.Success = true
	out.Timing.Total = totalDone()

	log.Info("workout generation complete",
		"exercises", len(plan.Exercises),
		"total_sets", plan.TotalPlannedSets,
		"valid", validation.Valid,
		"duration_ms", out.Timing.Total.Milliseconds())
	return out
}
