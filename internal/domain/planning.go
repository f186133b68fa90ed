package domain

// Capacity and intensity levels use the same string scale everywhere:
// very_low < low < moderate < high (intensity has no very_low).
const (
	LevelVeryLow  = "very_low"
	LevelLow      = "low"
	LevelModerate = "moderate"
	LevelHigh     = "high"
)

// AssignmentReason explains why an exercise was locked in before the
// generator ran.
type AssignmentReason string

const (
	ReasonClientRequest AssignmentReason = "client_request"
	ReasonMuscleTarget  AssignmentReason = "muscle_target"
)

// ClientProfile is the immutable per-client input to one planning run.
type ClientProfile struct {
	UserID           string   `json:"user_id"`
	Name             string   `json:"name"`
	StrengthCapacity string   `json:"strength_capacity"`
	SkillCapacity    string   `json:"skill_capacity"`
	Intensity        string   `json:"intensity"`
	PrimaryGoal      string   `json:"primary_goal"`
	MuscleTargets    []string `json:"muscle_target,omitempty"`
	MuscleLessens    []string `json:"muscle_lessen,omitempty"`
	AvoidJoints      []string `json:"avoid_joints,omitempty"`
	IncludeExercises []string `json:"include_exercises,omitempty"`
	AvoidExercises   []string `json:"avoid_exercises,omitempty"`
	DefaultSets      int      `json:"default_sets,omitempty"`
}

// FirstName is the short label used in prompt narration.
func (c ClientProfile) FirstName() string {
	for i := 0; i < len(c.Name); i++ {
		if c.Name[i] == ' ' {
			return c.Name[:i]
		}
	}
	return c.Name
}

// SlotCapacity is the client's total exercise budget for a session:
// 5 when either capacity is low (or below), otherwise 6.
func (c ClientProfile) SlotCapacity() int {
	if c.StrengthCapacity == LevelLow || c.StrengthCapacity == LevelVeryLow ||
		c.SkillCapacity == LevelLow || c.SkillCapacity == LevelVeryLow {
		return 5
	}
	return 6
}

// ClientScore is one client's individual score for a shared candidate.
type ClientScore struct {
	ClientID    string  `json:"client_id"`
	Score       float64 `json:"score"`
	HasExercise bool    `json:"has_exercise"`
}

// ScoreBreakdown carries the upstream scoring flags the compiler
// surfaces; the score itself is opaque here.
type ScoreBreakdown struct {
	IncludeExerciseBoost float64 `json:"include_exercise_boost,omitempty"`
}

// ScoredExercise is a candidate produced by the upstream selection
// engine, pre-sorted by desirability.
type ScoredExercise struct {
	Name             string         `json:"name"`
	Score            float64        `json:"score"`
	MovementPattern  string         `json:"movement_pattern,omitempty"`
	PrimaryMuscle    string         `json:"primary_muscle,omitempty"`
	SecondaryMuscles []string       `json:"secondary_muscles,omitempty"`
	ClientsSharing   []string       `json:"clients_sharing,omitempty"`
	ClientScores     []ClientScore  `json:"client_scores,omitempty"`
	ScoreBreakdown   ScoreBreakdown `json:"score_breakdown,omitempty"`
}

// RoundBlueprint is the candidate pool for one planning unit.
type RoundBlueprint struct {
	RoundID              string                      `json:"round_id"`
	SharedCandidates     []ScoredExercise            `json:"shared_candidates,omitempty"`
	IndividualCandidates map[string][]ScoredExercise `json:"individual_candidates,omitempty"`
}

// DeterministicAssignment is a (client, exercise) binding decided before
// the generator runs; it must never be re-proposed by the generator.
type DeterministicAssignment struct {
	Round      string           `json:"round"`
	ClientID   string           `json:"client_id"`
	ClientName string           `json:"client_name"`
	Exercise   string           `json:"exercise"`
	Equipment  []string         `json:"equipment,omitempty"`
	Reason     AssignmentReason `json:"reason"`
}

// EquipmentInventory is the gym's per-round equipment pool. Counted
// items are scarce; dumbbells, medicine balls and bands are treated as
// effectively unlimited in narration.
type EquipmentInventory struct {
	Barbells         int `json:"barbells"`
	Benches          int `json:"benches"`
	CableMachine     int `json:"cable_machine"`
	RowMachine       int `json:"row_machine"`
	AbWheel          int `json:"ab_wheel"`
	Bands            int `json:"bands"`
	BosuBall         int `json:"bosu_ball"`
	Kettlebells      int `json:"kettlebells"`
	Landmine         int `json:"landmine"`
	SwissBall        int `json:"swiss_ball"`
	DeadliftStations int `json:"deadlift_stations"`
	MedicineBalls    int `json:"medicine_balls"`
}

// DefaultEquipment mirrors the standard studio loadout.
func DefaultEquipment() EquipmentInventory {
	return EquipmentInventory{
		Barbells:         2,
		Benches:          2,
		CableMachine:     1,
		RowMachine:       1,
		AbWheel:          1,
		Bands:            3,
		BosuBall:         1,
		Kettlebells:      2,
		Landmine:         1,
		SwissBall:        1,
		DeadliftStations: 2,
		MedicineBalls:    2,
	}
}

// SectionStructure declares the exercise-count contract of one named
// section of a flat workout.
type SectionStructure struct {
	Name         string `json:"name"`
	MinExercises int    `json:"min_exercises"`
	MaxExercises int    `json:"max_exercises"`
	SetGuidance  string `json:"set_guidance,omitempty"`
}

// WorkoutStructure is the flat-family template shape: named sections
// plus an optional total ceiling (0 means no ceiling).
type WorkoutStructure struct {
	Sections           []SectionStructure `json:"sections"`
	TotalExerciseLimit int                `json:"total_exercise_limit,omitempty"`
}
