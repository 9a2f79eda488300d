// Package bot implements the intent-matching and response logic of the
// chatbot: an exact pass over stored patterns followed by a fuzzy fallback.
package bot

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/rishabhsssrrr13/ppss/internal/domain"
)

// FallbackResponse is returned when no intent clears the fuzzy threshold.
// The literal is load-bearing: existing clients key off this exact string.
const FallbackResponse = "Sorry, I didn't understand that. कृपया पुनः प्रयास करें।"

// fuzzyThreshold is the minimum partial-ratio score (exclusive) a pattern
// must reach for its response to be used.
const fuzzyThreshold = 70

// Matcher resolves a free-text message to a stored response.
type Matcher struct {
	// score computes a 0-100 similarity between two lowercased strings.
	// Defaults to fuzzywuzzy's substring-aware partial ratio.
	score func(a, b string) int
}

// NewMatcher creates a Matcher using the fuzzywuzzy partial-ratio scorer.
func NewMatcher() *Matcher {
	return &Matcher{score: fuzzy.PartialRatio}
}

// Match returns the response for message given the current intent snapshot.
//
// Two passes over the intents, both in store order:
//  1. exact: case-insensitive whole-string equality, first match wins;
//  2. fuzzy: partial-ratio score against every pattern, keeping the strictly
//     highest score seen (so the earliest maximum wins ties).
//
// The fuzzy candidate is used only if its score exceeds the threshold;
// otherwise the fixed fallback string is returned. Match is a pure function
// of (message, intents).
func (m *Matcher) Match(message string, intents []domain.Intent) string {
	msg := strings.ToLower(message)

	for _, intent := range intents {
		if strings.ToLower(intent.Pattern) == msg {
			return intent.Response
		}
	}

	var best string
	bestScore := 0
	for _, intent := range intents {
		score := m.score(msg, strings.ToLower(intent.Pattern))
		if score > bestScore {
			best, bestScore = intent.Response, score
		}
	}

	if bestScore > fuzzyThreshold {
		return best
	}
	return FallbackResponse
}
