package dialog

import "testing"

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession("s1")

	if s.ID != "s1" {
		t.Errorf("ID = %q", s.ID)
	}
	if s.Order != OrderRandom {
		t.Errorf("Order = %q, want random", s.Order)
	}
	if s.TimerSeconds != DefaultTimerSeconds {
		t.Errorf("TimerSeconds = %d, want %d", s.TimerSeconds, DefaultTimerSeconds)
	}
	if s.SetupStep != SetupIdle || s.AddWordStep != AddWordIdle ||
		s.DeleteCategoryStep != DeleteCategoryIdle || s.ReviewStep != ReviewIdle {
		t.Error("all wizards should start idle")
	}
	if s.Next != AgentSupervisor {
		t.Errorf("Next = %q, want supervisor", s.Next)
	}
}

func TestQuizComplete(t *testing.T) {
	tests := []struct {
		name     string
		queue    []int64
		index    int
		expected bool
	}{
		{"no queue", nil, 0, false},
		{"mid run", []int64{1, 2, 3}, 1, false},
		{"exhausted", []int64{1, 2, 3}, 3, true},
		{"past the end", []int64{1}, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Session{WordQueue: tt.queue, QueueIndex: tt.index}
			if got := s.QuizComplete(); got != tt.expected {
				t.Errorf("QuizComplete() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestQuestionExpected(t *testing.T) {
	mcq := Question{CorrectAnswer: "three"}
	if mcq.Expected() != "three" {
		t.Errorf("Expected() = %q, want three", mcq.Expected())
	}

	dictation := Question{ExpectedAnswer: "plentiful"}
	if dictation.Expected() != "plentiful" {
		t.Errorf("Expected() = %q, want plentiful", dictation.Expected())
	}
}
