package generation

import (
	"fmt"
	"strings"

	"github.com/setforge/setforge-backend/internal/domain"
)

// compileRounds builds the round-oriented document: deterministic
// rounds are narrated as already decided, generated rounds get shared
// and individual shortlists plus the slot and coverage ledgers.
func compileRounds(in CompileInput) (PromptDocument, error) {
	if len(in.Blueprint) == 0 {
		return PromptDocument{}, fmt.Errorf("compile: round template requires a blueprint")
	}

	assigned := indexAssignments(in.Assignments)
	volumes := clientVolumes(in.Clients)
	slots := ComputeSlotLedger(in.Clients, in.Assignments)
	coverage := ComputeCoverageLedger(in.Clients, in.Assignments)

	generated := make([]string, 0, len(in.Blueprint))
	for _, round := range in.Blueprint {
		generated = append(generated, round.RoundID)
	}
	roundOrder := assignmentRoundOrder(in.Assignments, generated)

	equipment := domain.DefaultEquipment()
	if in.Equipment != nil {
		equipment = *in.Equipment
	}

	keys := make([]string, 0, len(generated))
	for _, round := range generated {
		keys = append(keys, SectionKey(round))
	}

	var sys strings.Builder
	sys.WriteString("You are an expert strength coach assigning the remaining exercises of a small-group circuit session.\n\n")
	sys.WriteString("Workout structure:\n")
	sys.WriteString("- Rounds 1 and 2 are already decided and listed below; never change them.\n")
	fmt.Fprintf(&sys, "- You fill the generated rounds (%s). Each client performs one exercise per round.\n", strings.Join(generated, ", "))
	sys.WriteString("- Equipment is drawn from a shared pool and resets between rounds.\n")
	for _, round := range generated {
		if goal := roundGoal(round); goal != "" {
			fmt.Fprintf(&sys, "- %s: %s\n", round, goal)
		}
	}
	sys.WriteString("\n")
	sys.WriteString("MANDATORY:\n")
	sys.WriteString("1. Every slot marked ❌ MUST ASSIGN gets an exercise this reply.\n")
	sys.WriteString("2. Never re-propose an exercise tagged ALREADY ASSIGNED for that client.\n")
	sys.WriteString("3. Respect each client's remaining slot count exactly.\n\n")
	sys.WriteString("PRIORITIES:\n")
	sys.WriteString("1. Prefer [CLIENT REQUEST] options, then higher-scored options.\n")
	sys.WriteString("2. Cover every listed muscle target at least once across the session.\n")
	sys.WriteString("3. Give each client at least one shared exercise with another client.\n\n")
	sys.WriteString("CONSTRAINTS:\n")
	sys.WriteString("1. Only pick from the option lists below.\n")
	sys.WriteString("2. A round must not demand more of any equipment item than the pool holds.\n")
	sys.WriteString("3. Stay inside every client's volume target when distributing sets.\n\n")
	sys.WriteString(outputSchemaExample(keys))

	var usr strings.Builder
	usr.WriteString(NarrateClientRoster(in.Clients, volumes))
	usr.WriteString("\n\n")
	usr.WriteString(NarrateAssignments(in.Assignments, roundOrder))
	usr.WriteString("\n\n")
	usr.WriteString(NarrateCoverage(in.Clients, coverage))
	usr.WriteString("\n\n")
	usr.WriteString(NarrateSetTargets(in.Clients))
	usr.WriteString("\n\n")
	usr.WriteString(NarrateSlots(in.Clients, slots, generated))
	usr.WriteString("\n\n")
	usr.WriteString(NarrateEquipment(equipment))

	for _, round := range in.Blueprint {
		usr.WriteString("\n\n")
		usr.WriteString(narrateRoundOptions(round, in.Clients, assigned))
	}

	return PromptDocument{System: sys.String(), User: usr.String()}, nil
}

// narrateRoundOptions renders one generated round: the shared shortlist
// with per-client feasibility, then each client's individual shortlist.
// Already-assigned exercises are filtered out before the top-5 cut.
func narrateRoundOptions(round domain.RoundBlueprint, clients []domain.ClientProfile, assigned assignedExercises) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s Options:\n", round.RoundID)

	b.WriteString("Shared (pick for 2+ clients):\n")
	shared := topN(round.SharedCandidates, topCandidateCount, func(ex domain.ScoredExercise) bool {
		return assigned.assignedToAny(ex.Name)
	})
	if len(shared) == 0 {
		b.WriteString("(none)\n")
	}
	for _, ex := range shared {
		fmt.Fprintf(&b, "- %s\n", FormatExerciseOption(ex))
		can, cant := splitFeasibility(ex, clients)
		if len(can) > 0 {
			fmt.Fprintf(&b, "  Can do: %s\n", strings.Join(can, ", "))
		}
		if len(cant) > 0 {
			fmt.Fprintf(&b, "  Can't do: %s\n", strings.Join(cant, ", "))
		}
		if scores := FormatClientScores(ex, clients); scores != "" {
			fmt.Fprintf(&b, "  Scores: %s\n", scores)
		}
	}

	for _, c := range clients {
		pool := round.IndividualCandidates[c.UserID]
		options := topN(pool, topCandidateCount, func(ex domain.ScoredExercise) bool {
			return assigned.assignedToClient(c.UserID, ex.Name)
		})
		fmt.Fprintf(&b, "%s individual:\n", c.Name)
		if len(options) == 0 {
			b.WriteString("(none)\n")
			continue
		}
		for _, ex := range options {
			fmt.Fprintf(&b, "- %s\n", FormatExerciseOption(ex))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// splitFeasibility sorts clients into can/can't lists for a shared
// option based on the candidate's sharing set. Candidates without
// sharing data get no feasibility lines rather than a guess.
func splitFeasibility(ex domain.ScoredExercise, clients []domain.ClientProfile) (can, cant []string) {
	if len(ex.ClientsSharing) == 0 {
		return nil, nil
	}
	sharing := make(map[string]bool, len(ex.ClientsSharing))
	for _, id := range ex.ClientsSharing {
		sharing[id] = true
	}
	for _, c := range clients {
		if sharing[c.UserID] {
			can = append(can, c.FirstName())
		} else {
			cant = append(cant, c.FirstName())
		}
	}
	return can, cant
}

// roundGoal is the training emphasis narrated for each generated round.
func roundGoal(round string) string {
	switch round {
	case "Round3":
		return "strength focus, heavier compound work"
	case "Round4", "FinalRound":
		return "core and capacity finisher"
	}
	return ""
}

// assignmentRoundOrder yields completed rounds in first-seen order
// followed by the generated rounds.
func assignmentRoundOrder(assignments []domain.DeterministicAssignment, generated []string) []string {
	generatedSet := make(map[string]bool, len(generated))
	for _, round := range generated {
		generatedSet[round] = true
	}
	var order []string
	seen := make(map[string]bool)
	for _, a := range assignments {
		if seen[a.Round] || generatedSet[a.Round] {
			continue
		}
		seen[a.Round] = true
		order = append(order, a.Round)
	}
	return append(order, generated...)
}
