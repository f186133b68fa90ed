package generation

import (
	"fmt"
	"strings"

	"github.com/setforge/setforge-backend/internal/domain"
)

// VolumeTarget is the total-set range handed to the prompt compiler,
// with human-readable reasoning the generator sees verbatim.
type VolumeTarget struct {
	MinSets   int    `json:"min_sets"`
	MaxSets   int    `json:"max_sets"`
	Reasoning string `json:"reasoning"`
}

type volumeCell struct {
	min, max int
}

// Rows are strength capacity, columns are intensity (low, moderate,
// high). Ranges widen monotonically along both axes.
var volumeMatrix = map[string]map[string]volumeCell{
	domain.LevelVeryLow: {
		domain.LevelLow:      {14, 16},
		domain.LevelModerate: {16, 18},
		domain.LevelHigh:     {18, 20},
	},
	domain.LevelLow: {
		domain.LevelLow:      {16, 18},
		domain.LevelModerate: {18, 20},
		domain.LevelHigh:     {20, 22},
	},
	domain.LevelModerate: {
		domain.LevelLow:      {17, 19},
		domain.LevelModerate: {19, 22},
		domain.LevelHigh:     {22, 25},
	},
	domain.LevelHigh: {
		domain.LevelLow:      {18, 20},
		domain.LevelModerate: {22, 25},
		domain.LevelHigh:     {25, 27},
	},
}

// DetermineVolume maps strength capacity and intensity onto the fixed
// set-range table. Matching is case-sensitive; an absent or
// unrecognized value on either axis selects the full moderate/moderate
// default, never a mixed cell.
func DetermineVolume(strength, intensity string) VolumeTarget {
	row, ok := volumeMatrix[strength]
	if !ok {
		strength = domain.LevelModerate
		intensity = domain.LevelModerate
		row = volumeMatrix[strength]
	}
	cell, ok := row[intensity]
	if !ok {
		strength = domain.LevelModerate
		intensity = domain.LevelModerate
		cell = volumeMatrix[strength][intensity]
	}

	var clauses []string
	switch strength {
	case domain.LevelVeryLow, domain.LevelLow:
		clauses = append(clauses, "Lower strength capacity requires conservative volume")
	case domain.LevelHigh:
		clauses = append(clauses, "Higher strength capacity allows for increased training volume")
	}
	switch intensity {
	case domain.LevelLow:
		clauses = append(clauses, "Lower intensity with controlled volume")
	case domain.LevelHigh:
		clauses = append(clauses, "Higher intensity increases total work capacity")
	}
	clauses = append(clauses, fmt.Sprintf("Total: %d-%d sets for optimal training stimulus", cell.min, cell.max))

	return VolumeTarget{
		MinSets:   cell.min,
		MaxSets:   cell.max,
		Reasoning: strings.Join(clauses, ". "),
	}
}
