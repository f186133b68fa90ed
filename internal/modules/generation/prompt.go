package generation

import (
	"fmt"
	"strings"

	"github.com/setforge/setforge-backend/internal/domain"
)

const topCandidateCount = 5

// CompileInput is everything the prompt compiler needs for one run.
// Blueprint drives the round-oriented family; Structure and Candidates
// drive the flat family. All inputs are read-only.
type CompileInput struct {
	Kind        TemplateKind
	Clients     []domain.ClientProfile
	Equipment   *domain.EquipmentInventory
	Blueprint   []domain.RoundBlueprint
	Assignments []domain.DeterministicAssignment
	Structure   *domain.WorkoutStructure
	// Candidates holds flat-family shortlists keyed by section key
	// (e.g. "blockA").
	Candidates map[string][]domain.ScoredExercise
	Volume     VolumeTarget
}

// Compile turns a planning blueprint into the two-block instruction
// document for the generator. Pure function of its input.
func Compile(in CompileInput) (PromptDocument, error) {
	if len(in.Clients) == 0 {
		return PromptDocument{}, fmt.Errorf("compile: at least one client required")
	}
	switch in.Kind {
	case TemplateCircuit:
		return compileRounds(in)
	default:
		return compileStandard(in)
	}
}

// assignedExercises indexes deterministic assignments: exercise names
// per client plus the union across all clients. Used to keep ALREADY
// ASSIGNED exercises out of every candidate shortlist.
type assignedExercises struct {
	perClient map[string]map[string]bool
	all       map[string]bool
}

func indexAssignments(assignments []domain.DeterministicAssignment) assignedExercises {
	idx := assignedExercises{
		perClient: make(map[string]map[string]bool),
		all:       make(map[string]bool),
	}
	for _, a := range assignments {
		name := strings.ToLower(a.Exercise)
		idx.all[name] = true
		if idx.perClient[a.ClientID] == nil {
			idx.perClient[a.ClientID] = make(map[string]bool)
		}
		idx.perClient[a.ClientID][name] = true
	}
	return idx
}

func (idx assignedExercises) assignedToClient(clientID, exercise string) bool {
	m := idx.perClient[clientID]
	return m != nil && m[strings.ToLower(exercise)]
}

func (idx assignedExercises) assignedToAny(exercise string) bool {
	return idx.all[strings.ToLower(exercise)]
}

// topN copies the first n candidates after dropping excluded ones. The
// pool is already sorted by desirability upstream.
func topN(pool []domain.ScoredExercise, n int, exclude func(domain.ScoredExercise) bool) []domain.ScoredExercise {
	out := make([]domain.ScoredExercise, 0, n)
	for _, ex := range pool {
		if exclude != nil && exclude(ex) {
			continue
		}
		out = append(out, ex)
		if len(out) == n {
			break
		}
	}
	return out
}

// clientVolumes resolves each client's volume target from the matrix.
func clientVolumes(clients []domain.ClientProfile) map[string]VolumeTarget {
	out := make(map[string]VolumeTarget, len(clients))
	for _, c := range clients {
		out[c.UserID] = DetermineVolume(c.StrengthCapacity, c.Intensity)
	}
	return out
}

func outputSchemaExample(keys []string) string {
	var b strings.Builder
	b.WriteString("Output JSON:\n```json\n{\n")
	for _, key := range keys {
		fmt.Fprintf(&b, "  %q: [{\"exercise\": \"exercise name\", \"sets\": 3, \"reps\": \"8-10\", \"rest\": \"90s\", \"notes\": \"optional\"}],\n", key)
	}
	b.WriteString("  \"reasoning\": \"why you selected each exercise and how sets were distributed\"\n")
	b.WriteString("}\n```")
	return b.String()
}
