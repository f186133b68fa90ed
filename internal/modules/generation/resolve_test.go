package generation

import "testing"

func testCatalog() *StaticCatalog {
	return NewStaticCatalog([]ExerciseRef{
		{ID: "ex-1", Name: "Barbell Back Squat"},
		{ID: "ex-2", Name: "Push-Up"},
		{ID: "ex-3", Name: "Kettlebell Swing"},
	})
}

func TestCatalogLookup(t *testing.T) {
	c := testCatalog()

	ref, ok := c.FindByName("Barbell Back Squat")
	if !ok || ref.ID != "ex-1" {
		t.Fatalf("exact lookup: %v %v", ref, ok)
	}
	ref, ok = c.FindByName("barbell back squat")
	if !ok || ref.ID != "ex-1" {
		t.Fatalf("case-insensitive lookup: %v %v", ref, ok)
	}
	if _, ok := c.FindByName("Bulgarian Split Squat"); ok {
		t.Fatal("unknown name resolved")
	}
}

func TestValidateLookupAllKnown(t *testing.T) {
	output := map[string]any{
		"blocka": []any{
			map[string]any{"exercise": "Barbell Back Squat", "sets": 3.0},
		},
		"blockb": []any{
			map[string]any{"exercise": "push-up", "sets": 3.0},
		},
		"reasoning": "prose",
	}
	report := ValidateLookup(output, testCatalog())
	if !report.Valid {
		t.Fatalf("valid = false, missing = %v", report.MissingExercises)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("warnings = %v", report.Warnings)
	}
}

func TestValidateLookupMissingAndBlank(t *testing.T) {
	output := map[string]any{
		"round3": []any{
			map[string]any{"exercise": "Nordic Curl", "sets": 3.0},
			map[string]any{"exercise": "  ", "sets": 2.0},
			map[string]any{"exercise": "Nordic Curl", "sets": 3.0},
		},
	}
	report := ValidateLookup(output, testCatalog())
	if report.Valid {
		t.Fatal("valid = true with unknown exercise")
	}
	if len(report.MissingExercises) != 1 || report.MissingExercises[0] != "Nordic Curl" {
		t.Errorf("missing = %v", report.MissingExercises)
	}
	if len(report.Warnings) != 1 {
		t.Errorf("warnings = %v", report.Warnings)
	}
}

func TestValidateLookupNilOutput(t *testing.T) {
	report := ValidateLookup(nil, testCatalog())
	if !report.Valid || len(report.MissingExercises) != 0 {
		t.Fatalf("nil output report = %+v", report)
	}
}
