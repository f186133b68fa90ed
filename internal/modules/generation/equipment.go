package generation

import "strings"

// InferEquipment guesses the equipment an exercise needs from its
// name. Best-effort substring heuristics; "none" means bodyweight or
// floor work.
func InferEquipment(exerciseName string) []string {
	name := strings.ToLower(exerciseName)
	var equipment []string

	if strings.Contains(name, "barbell") && !strings.Contains(name, "dumbbell") {
		equipment = append(equipment, "barbell")
	}
	if strings.Contains(name, "bench") || strings.Contains(name, "incline") {
		equipment = append(equipment, "bench")
	}
	if strings.Contains(name, "dumbbell") || strings.Contains(name, "db ") {
		equipment = append(equipment, "DB")
	}
	if strings.Contains(name, "kettlebell") || strings.Contains(name, "goblet") {
		equipment = append(equipment, "KB")
	}
	if strings.Contains(name, "cable") || strings.Contains(name, "lat pulldown") {
		equipment = append(equipment, "cable")
	}
	if strings.Contains(name, "band") {
		equipment = append(equipment, "band")
	}
	if strings.Contains(name, "landmine") {
		equipment = append(equipment, "landmine")
	}
	if strings.Contains(name, "medicine ball") || strings.Contains(name, "med ball") {
		equipment = append(equipment, "med ball")
	}
	if strings.Contains(name, "row machine") {
		equipment = append(equipment, "row machine")
	}
	if strings.Contains(name, "swiss ball") || strings.Contains(name, "stability ball") {
		equipment = append(equipment, "swiss ball")
	}
	if strings.Contains(name, "plank") || strings.Contains(name, "dead bug") ||
		strings.Contains(name, "bird dog") || strings.Contains(name, "bear crawl") ||
		strings.Contains(name, "push-up") {
		equipment = append(equipment, "none")
	}

	if len(equipment) == 0 {
		return []string{"none"}
	}
	return equipment
}
