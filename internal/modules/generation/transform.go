package generation

import (
	"fmt"
	"strings"
	"time"
)

// UnknownExerciseID marks a plan row whose name did not resolve; the
// row is kept so the coach still sees what the generator intended.
const UnknownExerciseID = "unknown"

// PlanExercise is one persistable row of a transformed plan.
type PlanExercise struct {
	ExerciseID   string `json:"exercise_id"`
	ExerciseName string `json:"exercise_name"`
	Sets         int    `json:"sets"`
	Reps         string `json:"reps"`
	RestPeriod   string `json:"rest_period,omitempty"`
	Notes        string `json:"notes,omitempty"`
	OrderIndex   int    `json:"order_index"`
	GroupName    string `json:"group_name"`
}

// PersistablePlan is the storage-ready form of one generated workout.
type PersistablePlan struct {
	Name             string         `json:"name"`
	Description      string         `json:"description,omitempty"`
	TemplateKind     TemplateKind   `json:"-"`
	TotalPlannedSets int            `json:"total_planned_sets"`
	Exercises        []PlanExercise `json:"exercises"`
	TemplateConfig   map[string]any `json:"template_config"`
	RawOutput        map[string]any `json:"raw_output,omitempty"`
}

// Transform flattens a parsed generator reply into a persistable plan.
// Section keys are walked in sorted order so order indexes are stable
// for identical input. Rows with blank names are dropped; rows whose
// name fails to resolve keep the unknown sentinel and still count
// toward totals.
func Transform(output map[string]any, catalog ExerciseCatalog, kind TemplateKind, name, description string) PersistablePlan {
	plan := PersistablePlan{
		Name:           name,
		Description:    description,
		TemplateKind:   kind,
		TemplateConfig: templateConfig(kind),
		RawOutput:      output,
	}
	if plan.Name == "" {
		plan.Name = defaultPlanName(kind, time.Now())
	}

	orderIndex := 0
	for _, key := range planSectionKeys(output) {
		items, _ := output[key].([]any)
		group := groupLabel(kind, key)
		for _, raw := range items {
			item, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			exerciseName, _ := item["exercise"].(string)
			if strings.TrimSpace(exerciseName) == "" {
				continue
			}

			exerciseID := UnknownExerciseID
			if ref, found := catalog.FindByName(exerciseName); found {
				exerciseID = ref.ID
			}

			sets := 0
			if n, ok := item["sets"].(float64); ok {
				sets = int(n)
			}

			plan.Exercises = append(plan.Exercises, PlanExercise{
				ExerciseID:   exerciseID,
				ExerciseName: exerciseName,
				Sets:         sets,
				Reps:         stringField(item, "reps"),
				RestPeriod:   stringField(item, "rest"),
				Notes:        stringField(item, "notes"),
				OrderIndex:   orderIndex,
				GroupName:    group,
			})
			plan.TotalPlannedSets += sets
			orderIndex++
		}
	}
	return plan
}

// stringField reads a reply field that generators sometimes emit as a
// bare number instead of a string.
func stringField(item map[string]any, key string) string {
	switch v := item[key].(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%g", v)
	}
	return ""
}

// groupLabel turns a section key back into a display label: round keys
// of round-oriented plans become "Round N", anything else gets its
// first letter capitalized.
func groupLabel(kind TemplateKind, key string) string {
	if kind.IsRoundOriented() && strings.HasPrefix(key, "round") && len(key) > len("round") {
		return "Round " + key[len("round"):]
	}
	if key == "" {
		return key
	}
	return strings.ToUpper(key[:1]) + key[1:]
}

func defaultPlanName(kind TemplateKind, now time.Time) string {
	if kind == TemplateCircuit {
		return "Circuit Training - " + now.Format("Jan 2")
	}
	return "Strength Training - " + now.Format("Jan 2")
}

// templateConfig is the presentation metadata stored alongside a plan.
func templateConfig(kind TemplateKind) map[string]any {
	if kind == TemplateCircuit {
		return map[string]any{
			"rounds":        3,
			"workRestRatio": "45s/15s",
			"format":        "time-based",
		}
	}
	return map[string]any{
		"blocks": []string{"Block A", "Block B", "Block C", "Block D"},
		"format": "rep-based",
	}
}
