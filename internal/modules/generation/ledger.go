package generation

import "github.com/setforge/setforge-backend/internal/domain"

// SlotLedger is the per-client exercise-slot bookkeeping for one
// compilation. Remaining is the raw capacity-minus-used arithmetic and
// may go negative when upstream over-assigns; the narrator surfaces the
// raw number rather than hiding the problem.
type SlotLedger struct {
	Capacity  map[string]int
	Used      map[string]int
	Remaining map[string]int
	// ByRound counts deterministic assignments per client per round.
	ByRound map[string]map[string]int
}

// ComputeSlotLedger derives slot usage from capacity plus every
// deterministic assignment already on the books (completed rounds
// included). Recomputed fresh per request, never persisted.
func ComputeSlotLedger(clients []domain.ClientProfile, assignments []domain.DeterministicAssignment) SlotLedger {
	ledger := SlotLedger{
		Capacity:  make(map[string]int, len(clients)),
		Used:      make(map[string]int, len(clients)),
		Remaining: make(map[string]int, len(clients)),
		ByRound:   make(map[string]map[string]int),
	}
	for _, c := range clients {
		ledger.Capacity[c.UserID] = c.SlotCapacity()
		ledger.Used[c.UserID] = 0
	}
	for _, a := range assignments {
		if _, ok := ledger.Capacity[a.ClientID]; !ok {
			continue
		}
		ledger.Used[a.ClientID]++
		if ledger.ByRound[a.Round] == nil {
			ledger.ByRound[a.Round] = make(map[string]int)
		}
		ledger.ByRound[a.Round][a.ClientID]++
	}
	for _, c := range clients {
		ledger.Remaining[c.UserID] = ledger.Capacity[c.UserID] - ledger.Used[c.UserID]
	}
	return ledger
}

// CoverageLedger records which mandatory muscle targets are already
// satisfied, and whether each client already holds a shared exercise.
// It only feeds narration; it never auto-fixes anything.
type CoverageLedger struct {
	// CoveredRounds lists, per client, the rounds where a
	// muscle-target assignment already exists.
	CoveredRounds map[string][]string
	// SharedMet is true when a deterministic assignment already pairs
	// the client with at least one other client on the same exercise.
	SharedMet map[string]bool
}

func ComputeCoverageLedger(clients []domain.ClientProfile, assignments []domain.DeterministicAssignment) CoverageLedger {
	ledger := CoverageLedger{
		CoveredRounds: make(map[string][]string, len(clients)),
		SharedMet:     make(map[string]bool, len(clients)),
	}

	type slot struct{ round, exercise string }
	byExercise := make(map[slot][]string)
	for _, a := range assignments {
		byExercise[slot{a.Round, a.Exercise}] = append(byExercise[slot{a.Round, a.Exercise}], a.ClientID)
	}

	for _, a := range assignments {
		if a.Reason == domain.ReasonMuscleTarget {
			ledger.CoveredRounds[a.ClientID] = append(ledger.CoveredRounds[a.ClientID], a.Round)
		}
		if len(byExercise[slot{a.Round, a.Exercise}]) > 1 {
			ledger.SharedMet[a.ClientID] = true
		}
	}
	return ledger
}
