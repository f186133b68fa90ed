package generation

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationReport summarizes reference resolution over one parsed
// plan. Valid means every non-blank exercise name resolved; warnings
// never flip Valid on their own.
type ValidationReport struct {
	Valid            bool     `json:"valid"`
	MissingExercises []string `json:"missing_exercises,omitempty"`
	Warnings         []string `json:"warnings,omitempty"`
}

// ValidateLookup walks every plan section, resolving each proposed
// exercise name against the catalog. Blank names draw a warning only;
// unknown names are recorded as missing. The report is advisory and
// never blocks the transform step.
func ValidateLookup(output map[string]any, catalog ExerciseCatalog) ValidationReport {
	report := ValidationReport{Valid: true}
	if output == nil {
		return report
	}

	seen := make(map[string]bool)
	for _, key := range planSectionKeys(output) {
		items, _ := output[key].([]any)
		for _, raw := range items {
			item, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			name, _ := item["exercise"].(string)
			if strings.TrimSpace(name) == "" {
				report.Warnings = append(report.Warnings,
					fmt.Sprintf("section %q contains an entry with no exercise name", key))
				continue
			}
			if _, found := catalog.FindByName(name); !found && !seen[name] {
				seen[name] = true
				report.MissingExercises = append(report.MissingExercises, name)
			}
		}
	}

	report.Valid = len(report.MissingExercises) == 0
	return report
}

// planSectionKeys returns the keys of output whose value is a section
// list, sorted for deterministic traversal. The reasoning key is prose,
// not a section.
func planSectionKeys(output map[string]any) []string {
	var keys []string
	for key, value := range output {
		if key == "reasoning" {
			continue
		}
		if _, ok := value.([]any); ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}
