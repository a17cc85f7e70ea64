package matching

import (
	"strings"
	"testing"
)

func TestMatchExact(t *testing.T) {
	m := NewMatcher(DefaultThreshold)

	tests := []struct {
		name     string
		answer   string
		expected string
	}{
		{"identical", "plentiful", "plentiful"},
		{"case insensitive", "Plentiful", "plentiful"},
		{"surrounding whitespace", "  plentiful  ", "plentiful"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := m.Match(tt.answer, tt.expected)
			if !result.IsCorrect {
				t.Error("exact match should be correct")
			}
			if result.Similarity != 1.0 {
				t.Errorf("Similarity = %v, want 1.0", result.Similarity)
			}
			if result.Feedback != "Perfect!" {
				t.Errorf("Feedback = %q", result.Feedback)
			}
		})
	}
}

func TestMatchCloseEnough(t *testing.T) {
	m := NewMatcher(DefaultThreshold)

	result := m.Match("definately", "definitely")
	if !result.IsCorrect {
		t.Errorf("near-miss should pass the default threshold, similarity %v", result.Similarity)
	}
	if !strings.HasPrefix(result.Feedback, "Close enough!") {
		t.Errorf("Feedback = %q", result.Feedback)
	}
}

func TestMatchAlmost(t *testing.T) {
	// a high threshold pushes the same near-miss into the partial-credit band
	m := NewMatcher(0.99)

	result := m.Match("definately", "definitely")
	if result.IsCorrect {
		t.Error("near-miss should fail a 0.99 threshold")
	}
	if !strings.HasPrefix(result.Feedback, "Almost!") {
		t.Errorf("Feedback = %q", result.Feedback)
	}
	if !strings.Contains(result.Feedback, "Expected: 'definitely'") {
		t.Errorf("Feedback = %q", result.Feedback)
	}
}

func TestMatchIncorrect(t *testing.T) {
	m := NewMatcher(DefaultThreshold)

	result := m.Match("zebra", "plentiful")
	if result.IsCorrect {
		t.Error("unrelated answer should be incorrect")
	}
	if !strings.HasPrefix(result.Feedback, "Incorrect.") {
		t.Errorf("Feedback = %q", result.Feedback)
	}
	if !strings.Contains(result.Feedback, "Expected: 'plentiful'") {
		t.Errorf("Feedback = %q", result.Feedback)
	}
}

func TestNewMatcherDefaultsThreshold(t *testing.T) {
	m := NewMatcher(0)
	if m.threshold != DefaultThreshold {
		t.Errorf("threshold = %v, want %v", m.threshold, DefaultThreshold)
	}
}
