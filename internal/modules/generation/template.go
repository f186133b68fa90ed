package generation

import (
	"fmt"
	"strings"

	"github.com/setforge/setforge-backend/internal/domain"
)

// TemplateKind is the closed set of supported workout templates. Each
// kind owns its prompt narration and plan metadata; adding a kind means
// extending this enum, not matching on free-form strings.
type TemplateKind int

const (
	// TemplateStandard is the flat Block A-D family.
	TemplateStandard TemplateKind = iota
	// TemplateFullBody is a flat family variant with the same block
	// shape but full-body section guidance.
	TemplateFullBody
	// TemplateCircuit is the round-oriented family: deterministic
	// rounds 1-2, generated rounds 3-4, shared equipment pool.
	TemplateCircuit
)

func (k TemplateKind) String() string {
	switch k {
	case TemplateFullBody:
		return "full_body"
	case TemplateCircuit:
		return "circuit"
	default:
		return "standard"
	}
}

// IsRoundOriented reports whether plan keys like "round3" should render
// as "Round 3" group labels.
func (k TemplateKind) IsRoundOriented() bool {
	return k == TemplateCircuit
}

func ParseTemplateKind(s string) (TemplateKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standard":
		return TemplateStandard, nil
	case "full_body":
		return TemplateFullBody, nil
	case "circuit":
		return TemplateCircuit, nil
	}
	return TemplateStandard, fmt.Errorf("unknown template kind: %s", s)
}

// Structure returns the built-in section layout for flat-family kinds.
// Round-oriented compilation works from a RoundBlueprint instead.
func (k TemplateKind) Structure() domain.WorkoutStructure {
	switch k {
	case TemplateCircuit:
		return domain.WorkoutStructure{
			Sections: []domain.SectionStructure{
				{Name: "Round 1", MinExercises: 2, MaxExercises: 2, SetGuidance: "time-based"},
				{Name: "Round 2", MinExercises: 2, MaxExercises: 2, SetGuidance: "time-based"},
				{Name: "Round 3", MinExercises: 2, MaxExercises: 2, SetGuidance: "time-based"},
			},
			TotalExerciseLimit: 6,
		}
	case TemplateFullBody:
		return domain.WorkoutStructure{
			Sections: []domain.SectionStructure{
				{Name: "Block A", MinExercises: 1, MaxExercises: 1, SetGuidance: "primary strength, 3-4 sets"},
				{Name: "Block B", MinExercises: 2, MaxExercises: 3, SetGuidance: "secondary compound work"},
				{Name: "Block C", MinExercises: 2, MaxExercises: 3, SetGuidance: "accessory work"},
				{Name: "Block D", MinExercises: 1, MaxExercises: 2, SetGuidance: "core/capacity finisher"},
			},
			TotalExerciseLimit: 8,
		}
	default:
		return domain.WorkoutStructure{
			Sections: []domain.SectionStructure{
				{Name: "Block A", MinExercises: 1, MaxExercises: 1, SetGuidance: "primary strength, 3-4 sets"},
				{Name: "Block B", MinExercises: 2, MaxExercises: 3, SetGuidance: "secondary compound work"},
				{Name: "Block C", MinExercises: 2, MaxExercises: 3, SetGuidance: "accessory work"},
				{Name: "Block D", MinExercises: 1, MaxExercises: 2, SetGuidance: "core/capacity finisher"},
			},
			TotalExerciseLimit: 8,
		}
	}
}

// SectionKey lowers a section or round name into the JSON key the
// generator is told to use: lower-cased with whitespace removed, so
// "Block A" becomes "blocka" and "Round 3" becomes "round3".
func SectionKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "")
}
