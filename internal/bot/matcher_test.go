package bot

import (
	"testing"

	"github.com/rishabhsssrrr13/ppss/internal/domain"
)

func testIntents() []domain.Intent {
	return []domain.Intent{
		{ID: 1, Tag: "exam", Pattern: "Exam Dates", Response: "Mid-semester: Oct 15 | End-semester: Dec 10"},
		{ID: 2, Tag: "library", Pattern: "Library Info", Response: "Library is open 8 AM to 8 PM. Membership is mandatory."},
		{ID: 3, Tag: "class", Pattern: "Classes", Response: "Classes run from Monday to Saturday, 9 AM to 5 PM."},
	}
}

func TestMatchExactIsCaseInsensitive(t *testing.T) {
	m := NewMatcher()

	tests := []struct {
		message string
		want    string
	}{
		{"Exam Dates", "Mid-semester: Oct 15 | End-semester: Dec 10"},
		{"exam dates", "Mid-semester: Oct 15 | End-semester: Dec 10"},
		{"EXAM DATES", "Mid-semester: Oct 15 | End-semester: Dec 10"},
		{"classes", "Classes run from Monday to Saturday, 9 AM to 5 PM."},
	}

	for _, tt := range tests {
		if got := m.Match(tt.message, testIntents()); got != tt.want {
			t.Errorf("Match(%q) = %q, want %q", tt.message, got, tt.want)
		}
	}
}

func TestMatchExactBeatsHigherFuzzyScore(t *testing.T) {
	// The scorer claims a perfect fuzzy score for every pattern; an exact
	// hit must still win without the fuzzy pass running.
	m := &Matcher{score: func(a, b string) int { return 100 }}

	got := m.Match("library info", testIntents())
	if want := testIntents()[1].Response; got != want {
		t.Errorf("Match = %q, want exact-match response %q", got, want)
	}
}

func TestMatchFirstExactWinsAmongDuplicates(t *testing.T) {
	intents := []domain.Intent{
		{ID: 1, Pattern: "Holidays", Response: "first"},
		{ID: 2, Pattern: "Holidays", Response: "second"},
	}

	if got := NewMatcher().Match("holidays", intents); got != "first" {
		t.Errorf("Match = %q, want %q", got, "first")
	}
}

func TestMatchFuzzySubstring(t *testing.T) {
	// A message containing a full pattern scores 100 on partial ratio.
	m := NewMatcher()

	got := m.Match("exam dates please", testIntents())
	if want := testIntents()[0].Response; got != want {
		t.Errorf("Match = %q, want %q", got, want)
	}
}

func TestMatchThresholdBoundary(t *testing.T) {
	scores := map[string]int{"exam dates": 70, "library info": 0, "classes": 0}
	m := &Matcher{score: func(a, b string) int { return scores[b] }}

	// A best score of exactly 70 must fall through to the fallback.
	if got := m.Match("something", testIntents()); got != FallbackResponse {
		t.Errorf("Match at score 70 = %q, want fallback", got)
	}

	// 71 clears the threshold.
	scores["exam dates"] = 71
	if got := m.Match("something", testIntents()); got != testIntents()[0].Response {
		t.Errorf("Match at score 71 = %q, want %q", got, testIntents()[0].Response)
	}
}

func TestMatchFuzzyTieEarliestWins(t *testing.T) {
	m := &Matcher{score: func(a, b string) int { return 90 }}

	if got := m.Match("anything", testIntents()); got != testIntents()[0].Response {
		t.Errorf("Match = %q, want earliest maximum %q", got, testIntents()[0].Response)
	}
}

func TestMatchFallbackLiteral(t *testing.T) {
	m := NewMatcher()

	want := "Sorry, I didn't understand that. कृपया पुनः प्रयास करें।"
	if got := m.Match("zzz qqq xyzzy", testIntents()); got != want {
		t.Errorf("Match = %q, want fallback literal %q", got, want)
	}
}

func TestMatchEmptyStore(t *testing.T) {
	if got := NewMatcher().Match("hello", nil); got != FallbackResponse {
		t.Errorf("Match with empty store = %q, want fallback", got)
	}
}

func TestMatchIsDeterministic(t *testing.T) {
	m := NewMatcher()
	intents := testIntents()

	first := m.Match("when are the exam dates", intents)
	for i := 0; i < 5; i++ {
		if got := m.Match("when are the exam dates", intents); got != first {
			t.Fatalf("repeated Match diverged: %q vs %q", got, first)
		}
	}
}
