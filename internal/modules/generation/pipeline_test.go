package generation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/setforge/setforge-backend/internal/platform/logger"
)

type fakeProvider struct {
	reply    string
	err      error
	messages []Message
}

func (p *fakeProvider) Invoke(_ context.Context, messages []Message) (string, error) {
	p.messages = messages
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

func pipelineInput() PipelineInput {
	structure := TemplateStandard.Structure()
	return PipelineInput{
		Compile: CompileInput{
			Kind:      TemplateStandard,
			Clients:   testClients()[:1],
			Structure: &structure,
		},
		Catalog: testCatalog(),
	}
}

func TestRunSuccess(t *testing.T) {
	provider := &fakeProvider{
		reply: "```json\n" + `{"blocka": [{"exercise": "Barbell Back Squat", "sets": 4, "reps": "5"}]}` + "\n```",
	}
	out := Run(context.Background(), PipelineDeps{Provider: provider, Log: logger.NewNop()}, pipelineInput())

	if !out.Success || out.Error != "" {
		t.Fatalf("success = %v, error = %q", out.Success, out.Error)
	}
	if out.Plan == nil || out.Validation == nil {
		t.Fatal("plan or validation missing")
	}
	if !out.Validation.Valid {
		t.Errorf("validation = %+v", out.Validation)
	}
	if len(out.Plan.Exercises) != 1 {
		t.Fatalf("exercises = %d", len(out.Plan.Exercises))
	}
	row := out.Plan.Exercises[0]
	if row.ExerciseID != "ex-1" || row.OrderIndex != 0 {
		t.Errorf("row = %+v", row)
	}
	if out.Plan.TotalPlannedSets != 4 {
		t.Errorf("total sets = %d", out.Plan.TotalPlannedSets)
	}

	if len(provider.messages) != 2 || provider.messages[0].Role != RoleSystem || provider.messages[1].Role != RoleUser {
		t.Errorf("messages = %+v", provider.messages)
	}
	if out.Timing.Total < out.Timing.Generation {
		t.Errorf("timing = %+v", out.Timing)
	}
}

func TestRunProviderError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("Rate limit exceeded")}
	out := Run(context.Background(), PipelineDeps{Provider: provider, Log: logger.NewNop()}, pipelineInput())

	if out.Success {
		t.Fatal("success despite provider error")
	}
	if out.Error != "Rate limit exceeded" {
		t.Errorf("error = %q", out.Error)
	}
	if out.Plan != nil || out.Validation != nil {
		t.Error("plan or validation set on failure")
	}
}

func TestRunUnparseableReply(t *testing.T) {
	provider := &fakeProvider{reply: "I cannot produce a plan right now."}
	out := Run(context.Background(), PipelineDeps{Provider: provider, Log: logger.NewNop()}, pipelineInput())

	if out.Success {
		t.Fatal("success despite unparseable reply")
	}
	if !strings.Contains(out.Error, "parse") {
		t.Errorf("error = %q", out.Error)
	}
}

func TestRunReplyWithoutSectionsFails(t *testing.T) {
	provider := &fakeProvider{reply: `{"reasoning": "no sections here"}`}
	out := Run(context.Background(), PipelineDeps{Provider: provider, Log: logger.NewNop()}, pipelineInput())

	if out.Success {
		t.Fatal("success despite sectionless reply")
	}
	if !strings.Contains(out.Error, "no workout sections") {
		t.Errorf("error = %q", out.Error)
	}
}

func TestRunUnknownExerciseStillSucceeds(t *testing.T) {
	provider := &fakeProvider{
		reply: `{"blocka": [{"exercise": "Nordic Curl", "sets": 3}]}`,
	}
	out := Run(context.Background(), PipelineDeps{Provider: provider, Log: logger.NewNop()}, pipelineInput())

	if !out.Success {
		t.Fatalf("success = false, error = %q", out.Error)
	}
	if out.Validation.Valid {
		t.Error("validation valid with unknown exercise")
	}
	if out.Plan.Exercises[0].ExerciseID != UnknownExerciseID {
		t.Errorf("exercise id = %q", out.Plan.Exercises[0].ExerciseID)
	}
}

func TestRunCompileError(t *testing.T) {
	out := Run(context.Background(), PipelineDeps{Provider: &fakeProvider{}, Log: logger.NewNop()}, PipelineInput{})
	if out.Success || out.Error == "" {
		t.Fatalf("out = %+v", out)
	}
}
