package generation

import (
	"strings"
	"testing"

	"github.com/setforge/setforge-backend/internal/domain"
)

func TestFormatExerciseOption(t *testing.T) {
	got := FormatExerciseOption(domain.ScoredExercise{Name: "Barbell Bench Press", Score: 9.0})
	if got != "Barbell Bench Press (9.0, barbell+bench)" {
		t.Errorf("got %q", got)
	}

	got = FormatExerciseOption(domain.ScoredExercise{
		Name:           "Kettlebell Swing",
		Score:          7.5,
		ScoreBreakdown: domain.ScoreBreakdown{IncludeExerciseBoost: 2},
	})
	if got != "Kettlebell Swing (7.5, KB) [CLIENT REQUEST]" {
		t.Errorf("got %q", got)
	}
}

func TestNarrateSlotsShowsNegativeRemaining(t *testing.T) {
	clients := []domain.ClientProfile{{UserID: "c1", Name: "Ana", StrengthCapacity: "low"}}
	ledger := SlotLedger{
		Remaining: map[string]int{"c1": -1},
		ByRound:   map[string]map[string]int{},
	}
	got := NarrateSlots(clients, ledger, []string{"Round3"})
	if !strings.Contains(got, "Ana: -1 left") {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(got, "1 in R3") {
		t.Errorf("got %q", got)
	}
}

func TestNarrateAssignmentsGroupsByRound(t *testing.T) {
	assignments := []domain.DeterministicAssignment{
		{Round: "Round2", ClientName: "Ana", Exercise: "Goblet Squat", Reason: domain.ReasonMuscleTarget},
		{Round: "Round1", ClientName: "Ben", Exercise: "Push-Up", Reason: domain.ReasonClientRequest},
	}
	got := NarrateAssignments(assignments, []string{"Round1", "Round2"})
	r1 := strings.Index(got, "Round1:")
	r2 := strings.Index(got, "Round2:")
	if r1 < 0 || r2 < 0 || r1 > r2 {
		t.Fatalf("round ordering wrong:\n%s", got)
	}
	if !strings.Contains(got, "Ben: Push-Up (CLIENT REQUEST - ALREADY ASSIGNED)") {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(got, "Ana: Goblet Squat (MUSCLE TARGET - ALREADY ASSIGNED)") {
		t.Errorf("got %q", got)
	}
}

func TestNarrateEquipmentCounts(t *testing.T) {
	got := NarrateEquipment(domain.DefaultEquipment())
	for _, want := range []string{
		"2 barbells",
		"2 benches",
		"1 cable machine",
		"3 bands",
		"2 medicine balls",
		"dumbbells (unlimited)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("narration missing %q:\n%s", want, got)
		}
	}
}

func TestNarrateSetTargetsDefault(t *testing.T) {
	clients := []domain.ClientProfile{
		{UserID: "c1", Name: "Ana"},
		{UserID: "c2", Name: "Ben", DefaultSets: 24},
	}
	got := NarrateSetTargets(clients)
	if !strings.Contains(got, "Ana: 20 total sets target") {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(got, "Ben: 24 total sets target") {
		t.Errorf("got %q", got)
	}
}
