package generation

import "testing"

func TestDetermineVolumeMatrix(t *testing.T) {
	cases := []struct {
		strength, intensity string
		min, max            int
	}{
		{"very_low", "low", 14, 16},
		{"very_low", "moderate", 16, 18},
		{"very_low", "high", 18, 20},
		{"low", "low", 16, 18},
		{"low", "moderate", 18, 20},
		{"low", "high", 20, 22},
		{"moderate", "low", 17, 19},
		{"moderate", "moderate", 19, 22},
		{"moderate", "high", 22, 25},
		{"high", "low", 18, 20},
		{"high", "moderate", 22, 25},
		{"high", "high", 25, 27},
	}
	for _, tc := range cases {
		got := DetermineVolume(tc.strength, tc.intensity)
		if got.MinSets != tc.min || got.MaxSets != tc.max {
			t.Errorf("%s/%s: got %d-%d, want %d-%d",
				tc.strength, tc.intensity, got.MinSets, got.MaxSets, tc.min, tc.max)
		}
	}
}

func TestDetermineVolumeMonotonicAlongStrength(t *testing.T) {
	order := []string{"very_low", "low", "moderate", "high"}
	for _, intensity := range []string{"low", "moderate", "high"} {
		prev := DetermineVolume(order[0], intensity)
		for _, strength := range order[1:] {
			cur := DetermineVolume(strength, intensity)
			if cur.MinSets < prev.MinSets || cur.MaxSets < prev.MaxSets {
				t.Errorf("range shrank from %s to %s at intensity %s", order[0], strength, intensity)
			}
			prev = cur
		}
	}
}

func TestDetermineVolumeFallsBackAsAPair(t *testing.T) {
	for _, tc := range []struct{ strength, intensity string }{
		{"", ""},
		{"", "high"},
		{"high", ""},
		{"extreme", "high"},
		{"high", "maximal"},
		{"HIGH", "high"},
	} {
		got := DetermineVolume(tc.strength, tc.intensity)
		if got.MinSets != 19 || got.MaxSets != 22 {
			t.Errorf("%q/%q: got %d-%d, want the 19-22 default",
				tc.strength, tc.intensity, got.MinSets, got.MaxSets)
		}
		if got.Reasoning != "Total: 19-22 sets for optimal training stimulus" {
			t.Errorf("%q/%q: unexpected reasoning %q", tc.strength, tc.intensity, got.Reasoning)
		}
	}
}

func TestDetermineVolumeReasoning(t *testing.T) {
	got := DetermineVolume("low", "high")
	want := "Lower strength capacity requires conservative volume. " +
		"Higher intensity increases total work capacity. " +
		"Total: 20-22 sets for optimal training stimulus"
	if got.Reasoning != want {
		t.Errorf("got %q, want %q", got.Reasoning, want)
	}

	got = DetermineVolume("high", "low")
	want = "Higher strength capacity allows for increased training volume. " +
		"Lower intensity with controlled volume. " +
		"Total: 18-20 sets for optimal training stimulus"
	if got.Reasoning != want {
		t.Errorf("got %q, want %q", got.Reasoning, want)
	}
}
