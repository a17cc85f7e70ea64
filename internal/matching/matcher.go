// Package matching scores dictation answers against expected values using
// fuzzy string similarity, so near-misses and typos still count.
package matching

import (
	"fmt"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"vocaquiz/internal/models"
)

// DefaultThreshold is the similarity above which an answer counts as correct.
const DefaultThreshold = 0.75

// partialCredit is the similarity above which feedback reports how close the
// answer was instead of a flat "incorrect".
const partialCredit = 0.5

// Matcher compares user answers to expected answers
type Matcher struct {
	threshold   float64
	levenshtein *metrics.Levenshtein
	jaroWinkler *metrics.JaroWinkler
}

// NewMatcher creates a matcher with the given correctness threshold.
// A non-positive threshold falls back to DefaultThreshold.
func NewMatcher(threshold float64) *Matcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	lev.InsertCost = 1
	lev.DeleteCost = 1
	lev.ReplaceCost = 1

	return &Matcher{
		threshold:   threshold,
		levenshtein: lev,
		jaroWinkler: metrics.NewJaroWinkler(),
	}
}

// Match compares a user answer to the expected answer. Similarity is a
// weighted blend of normalized Levenshtein (0.4) and Jaro-Winkler (0.6);
// Jaro-Winkler weighs heavier because it tolerates typos better.
func (m *Matcher) Match(userAnswer, expected string) models.MatchResult {
	input := strings.ToLower(strings.TrimSpace(userAnswer))
	want := strings.ToLower(strings.TrimSpace(expected))

	if input == want {
		return models.MatchResult{
			IsCorrect:  true,
			Similarity: 1.0,
			Feedback:   "Perfect!",
		}
	}

	levSim := strutil.Similarity(input, want, m.levenshtein)
	jaroSim := strutil.Similarity(input, want, m.jaroWinkler)
	similarity := levSim*0.4 + jaroSim*0.6

	switch {
	case similarity >= m.threshold:
		return models.MatchResult{
			IsCorrect:  true,
			Similarity: similarity,
			Feedback:   fmt.Sprintf("Close enough! (%d%% match)", int(similarity*100)),
		}
	case similarity >= partialCredit:
		distance := m.levenshtein.Distance(input, want)
		return models.MatchResult{
			IsCorrect:  false,
			Similarity: similarity,
			Feedback:   fmt.Sprintf("Almost! %d characters off. Expected: '%s'", distance, expected),
		}
	default:
		return models.MatchResult{
			IsCorrect:  false,
			Similarity: similarity,
			Feedback:   fmt.Sprintf("Incorrect. Expected: '%s'", expected),
		}
	}
}
