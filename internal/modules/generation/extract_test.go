package generation

import "testing"

func TestExtractWholeReply(t *testing.T) {
	out := Extract(`{"blocka": [], "reasoning": "ok"}`)
	if out == nil {
		t.Fatal("expected a parsed object")
	}
	if out["reasoning"] != "ok" {
		t.Errorf("reasoning = %v", out["reasoning"])
	}
}

func TestExtractFencedReply(t *testing.T) {
	raw := "Here is your plan:\n```json\n{\"round3\": [{\"exercise\": \"Goblet Squat\", \"sets\": 3}]}\n```\nLet me know if you want changes."
	out := Extract(raw)
	if out == nil {
		t.Fatal("expected a parsed object")
	}
	items, ok := out["round3"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("round3 = %v", out["round3"])
	}
}

func TestExtractNoObject(t *testing.T) {
	for _, raw := range []string{"", "   ", "no json here", "{broken", "[1,2,3]"} {
		if out := Extract(raw); out != nil {
			t.Errorf("Extract(%q) = %v, want nil", raw, out)
		}
	}
}

func TestExtractPicksOuterSpan(t *testing.T) {
	out := Extract(`prefix {"a": {"b": 1}} suffix`)
	if out == nil {
		t.Fatal("expected a parsed object")
	}
	if _, ok := out["a"].(map[string]any); !ok {
		t.Errorf("a = %v", out["a"])
	}
}
