package generation

import (
	"fmt"
	"strings"

	"github.com/setforge/setforge-backend/internal/domain"
)

// Pure prompt-narration helpers. Everything here renders already-derived
// structures into prose; no numeric derivation beyond ledger arithmetic.

// FormatExerciseOption renders one candidate line: name, rounded score,
// inferred equipment, and the explicit-request marker when the upstream
// score breakdown flags one.
func FormatExerciseOption(ex domain.ScoredExercise) string {
	equipment := InferEquipment(ex.Name)
	line := fmt.Sprintf("%s (%.1f, %s)", ex.Name, ex.Score, strings.Join(equipment, "+"))
	if ex.ScoreBreakdown.IncludeExerciseBoost > 0 {
		line += " [CLIENT REQUEST]"
	}
	return line
}

// FormatClientScores renders a shared candidate's per-client scores as
// "Ana 8.5, Ben 7.0". Clients absent from the roster are skipped;
// empty when the candidate carries no per-client scores.
func FormatClientScores(ex domain.ScoredExercise, clients []domain.ClientProfile) string {
	if len(ex.ClientScores) == 0 {
		return ""
	}
	names := make(map[string]string, len(clients))
	for _, c := range clients {
		names[c.UserID] = c.FirstName()
	}
	var parts []string
	for _, cs := range ex.ClientScores {
		name, ok := names[cs.ClientID]
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %.1f", name, cs.Score))
	}
	return strings.Join(parts, ", ")
}

// NarrateClientRoster renders one labeled block per client: capacity,
// volume target, goal, intensity and every preference list.
func NarrateClientRoster(clients []domain.ClientProfile, volumes map[string]VolumeTarget) string {
	var b strings.Builder
	b.WriteString("## Clients:\n")
	for _, c := range clients {
		fmt.Fprintf(&b, "- %s: %s strength/%s skill (max %d total exercises)\n",
			c.Name, c.StrengthCapacity, c.SkillCapacity, c.SlotCapacity())
		if v, ok := volumes[c.UserID]; ok {
			fmt.Fprintf(&b, "  Volume target: %d-%d sets. %s\n", v.MinSets, v.MaxSets, v.Reasoning)
		}
		if c.PrimaryGoal != "" {
			fmt.Fprintf(&b, "  Goal: %s\n", c.PrimaryGoal)
		}
		if c.Intensity != "" {
			fmt.Fprintf(&b, "  Intensity: %s\n", c.Intensity)
		}
		if len(c.MuscleTargets) > 0 {
			fmt.Fprintf(&b, "  Target muscles: %s\n", strings.Join(c.MuscleTargets, ", "))
		}
		if len(c.MuscleLessens) > 0 {
			fmt.Fprintf(&b, "  Lessen muscles: %s\n", strings.Join(c.MuscleLessens, ", "))
		}
		if len(c.AvoidJoints) > 0 {
			fmt.Fprintf(&b, "  Avoid joints: %s\n", strings.Join(c.AvoidJoints, ", "))
		}
		if len(c.IncludeExercises) > 0 {
			fmt.Fprintf(&b, "  Requested exercises: %s\n", strings.Join(c.IncludeExercises, ", "))
		}
		if len(c.AvoidExercises) > 0 {
			fmt.Fprintf(&b, "  Avoid exercises: %s\n", strings.Join(c.AvoidExercises, ", "))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// NarrateEquipment splits the inventory into scarce counted items and
// effectively unlimited ones.
func NarrateEquipment(inv domain.EquipmentInventory) string {
	var b strings.Builder
	b.WriteString("## Equipment (resets each round):\n")
	b.WriteString("Limited:\n")
	fmt.Fprintf(&b, "- %d barbells, %d benches, %d cable machine, %d landmine\n",
		inv.Barbells, inv.Benches, inv.CableMachine, inv.Landmine)
	fmt.Fprintf(&b, "- %d kettlebells, %d row machine, %d deadlift stations, %d swiss ball, %d bosu ball, %d ab wheel\n",
		inv.Kettlebells, inv.RowMachine, inv.DeadliftStations, inv.SwissBall, inv.BosuBall, inv.AbWheel)
	b.WriteString("Available:\n")
	fmt.Fprintf(&b, "- %d bands, %d medicine balls, dumbbells (unlimited)", inv.Bands, inv.MedicineBalls)
	return b.String()
}

// NarrateSlots renders per-client remaining-slot lines. Remaining is
// printed raw, negative values included, so upstream over-assignment is
// visible in the compiled prompt.
func NarrateSlots(clients []domain.ClientProfile, ledger SlotLedger, generatedRounds []string) string {
	var b strings.Builder
	b.WriteString("## Remaining Slots:\n")
	for _, c := range clients {
		remaining := ledger.Remaining[c.UserID]
		var perRound []string
		for _, round := range generatedRounds {
			assigned := 0
			if m := ledger.ByRound[round]; m != nil {
				assigned = m[c.UserID]
			}
			perRound = append(perRound, fmt.Sprintf("%d in %s", 1-assigned, roundShortName(round)))
		}
		if len(perRound) > 0 {
			fmt.Fprintf(&b, "- %s: %d left (%s)\n", c.Name, remaining, strings.Join(perRound, ", "))
		} else {
			fmt.Fprintf(&b, "- %s: %d left\n", c.Name, remaining)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// NarrateCoverage renders muscle-target coverage per client, flagging
// clients whose mandatory targets have no assignment anywhere yet.
func NarrateCoverage(clients []domain.ClientProfile, ledger CoverageLedger) string {
	var b strings.Builder
	b.WriteString("## Muscle Target Coverage:\n")
	for _, c := range clients {
		if len(c.MuscleTargets) == 0 {
			fmt.Fprintf(&b, "- %s: No specific targets\n", c.Name)
			continue
		}
		targets := strings.Join(c.MuscleTargets, ", ")
		covered := ledger.CoveredRounds[c.UserID]
		if len(covered) > 0 {
			fmt.Fprintf(&b, "- %s: Targets %s (covered in: %s)\n", c.Name, targets, strings.Join(covered, ", "))
		} else {
			fmt.Fprintf(&b, "- %s: Targets %s ❌ MUST ASSIGN\n", c.Name, targets)
		}
	}

	b.WriteString("\n## Shared Exercise Status:\n")
	b.WriteString("**REQUIREMENT: Each client must have at least 1 shared exercise across all rounds**\n")
	for _, c := range clients {
		if ledger.SharedMet[c.UserID] {
			fmt.Fprintf(&b, "- %s: satisfied by an assigned shared exercise\n", c.Name)
		} else {
			fmt.Fprintf(&b, "- %s: not yet satisfied ❌ MUST ASSIGN\n", c.Name)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// NarrateAssignments renders every deterministic assignment grouped by
// round, each tagged ALREADY ASSIGNED so the generator never re-proposes
// one.
func NarrateAssignments(assignments []domain.DeterministicAssignment, roundOrder []string) string {
	byRound := make(map[string][]domain.DeterministicAssignment)
	for _, a := range assignments {
		byRound[a.Round] = append(byRound[a.Round], a)
	}

	var b strings.Builder
	b.WriteString("## Pre-Assigned Exercises:\n")
	any := false
	for _, round := range roundOrder {
		rows := byRound[round]
		if len(rows) == 0 {
			continue
		}
		any = true
		fmt.Fprintf(&b, "%s:\n", round)
		for _, a := range rows {
			reason := "MUSCLE TARGET"
			if a.Reason == domain.ReasonClientRequest {
				reason = "CLIENT REQUEST"
			}
			fmt.Fprintf(&b, "- %s: %s (%s - ALREADY ASSIGNED)\n", a.ClientName, a.Exercise, reason)
		}
	}
	if !any {
		b.WriteString("(none)\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// NarrateSetTargets renders the per-client total-set target lines.
func NarrateSetTargets(clients []domain.ClientProfile) string {
	var b strings.Builder
	b.WriteString("## Client Set Targets:\n")
	for _, c := range clients {
		sets := c.DefaultSets
		if sets == 0 {
			sets = 20
		}
		fmt.Fprintf(&b, "- %s: %d total sets target\n", c.Name, sets)
	}
	return strings.TrimRight(b.String(), "\n")
}

func roundShortName(round string) string {
	switch round {
	case "Round1":
		return "R1"
	case "Round2":
		return "R2"
	case "Round3":
		return "R3"
	case "FinalRound", "Round4":
		return "R4"
	}
	return round
}
