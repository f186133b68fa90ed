package generation

import (
	"fmt"
	"strings"

	"github.com/setforge/setforge-backend/internal/domain"
)

// fallbackSectionKeys are the reply keys used when no section structure
// is supplied at all.
var fallbackSectionKeys = []string{"blockA", "blockB", "blockC", "blockD"}

// compileStandard builds the flat-family document: section constraints
// derived from the workout structure, candidate shortlists per section,
// and a reply schema keyed by section name.
func compileStandard(in CompileInput) (PromptDocument, error) {
	volumes := clientVolumes(in.Clients)
	volume := in.Volume
	if volume.MinSets == 0 && volume.MaxSets == 0 {
		volume = volumes[in.Clients[0].UserID]
	}

	var constraints string
	var keys []string
	if in.Structure != nil {
		constraints = structureConstraints(*in.Structure)
		for _, s := range in.Structure.Sections {
			keys = append(keys, SectionKey(s.Name))
		}
	} else {
		constraints = fallbackConstraints()
		keys = fallbackSectionKeys
	}

	requested := false
	for _, c := range in.Clients {
		if len(c.IncludeExercises) > 0 {
			requested = true
			break
		}
	}

	var sys strings.Builder
	sys.WriteString("You are an expert strength coach building one training session from a scored exercise shortlist.\n\n")
	sys.WriteString("Rules:\n")
	sys.WriteString("1. Only pick exercises from the candidate lists below.\n")
	sys.WriteString("2. Prefer higher-scored candidates unless a constraint forces otherwise.\n")
	if requested {
		sys.WriteString("3. Options marked [CLIENT REQUEST] were explicitly asked for; include them unless a constraint makes that impossible.\n")
	}
	sys.WriteString("\n")
	sys.WriteString(constraints)
	sys.WriteString("\n")
	fmt.Fprintf(&sys, "Volume: distribute %d-%d total sets. %s\n\n", volume.MinSets, volume.MaxSets, volume.Reasoning)
	sys.WriteString(outputSchemaExample(keys))

	assigned := indexAssignments(in.Assignments)

	var usr strings.Builder
	usr.WriteString(NarrateClientRoster(in.Clients, volumes))
	usr.WriteString("\n\n## Candidates:\n")
	for i, key := range keys {
		label := key
		if in.Structure != nil {
			label = in.Structure.Sections[i].Name
		}
		fmt.Fprintf(&usr, "%s:\n", label)
		options := topN(in.Candidates[key], topCandidateCount, func(ex domain.ScoredExercise) bool {
			return assigned.assignedToAny(ex.Name)
		})
		if len(options) == 0 {
			usr.WriteString("(none)\n")
			continue
		}
		for _, ex := range options {
			fmt.Fprintf(&usr, "- %s\n", FormatExerciseOption(ex))
		}
	}
	usr.WriteString("\n")
	usr.WriteString(NarrateSetTargets(in.Clients))

	return PromptDocument{System: sys.String(), User: strings.TrimRight(usr.String(), "\n")}, nil
}

// structureConstraints renders one line per section, collapsing a
// min==max range to "exactly N".
func structureConstraints(structure domain.WorkoutStructure) string {
	var b strings.Builder
	b.WriteString("Structure constraints:\n")
	for _, s := range structure.Sections {
		count := fmt.Sprintf("%d-%d exercises", s.MinExercises, s.MaxExercises)
		if s.MinExercises == s.MaxExercises {
			count = fmt.Sprintf("exactly %d exercise", s.MinExercises)
			if s.MinExercises != 1 {
				count += "s"
			}
		}
		fmt.Fprintf(&b, "- %s: %s", s.Name, count)
		if s.SetGuidance != "" {
			fmt.Fprintf(&b, " (%s)", s.SetGuidance)
		}
		b.WriteString("\n")
	}
	if structure.TotalExerciseLimit > 0 {
		fmt.Fprintf(&b, "- Maximum %d unique exercises TOTAL across all sections\n", structure.TotalExerciseLimit)
	}
	return b.String()
}

func fallbackConstraints() string {
	var b strings.Builder
	b.WriteString("Structure constraints:\n")
	b.WriteString("- blockA: exactly 1 exercise (primary strength, 3-4 sets)\n")
	b.WriteString("- blockB, blockC, blockD: up to 7 exercises between them\n")
	b.WriteString("- Maximum 8 unique exercises TOTAL across all sections\n")
	return b.String()
}
