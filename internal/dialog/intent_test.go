package dialog

import "testing"

func TestParseIntent(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected Intent
	}{
		{
			name:     "mcq with order and timer",
			message:  "Start MCQ A to Z 5 sec",
			expected: Intent{Mode: ModeMCQ, Order: OrderAToZ, OrderSet: true, TimerSeconds: 5, TimerSet: true},
		},
		{
			name:     "dictation reverse order",
			message:  "dictation z-a please",
			expected: Intent{Mode: ModeDictation, Order: OrderZToA, OrderSet: true, TimerSeconds: DefaultTimerSeconds},
		},
		{
			name:     "letter filter captured",
			message:  "quiz me on letter b words",
			expected: Intent{Mode: ModeMCQ, Order: OrderLetter, OrderSet: true, LetterFilter: "b", TimerSeconds: DefaultTimerSeconds},
		},
		{
			name:     "random shuffle",
			message:  "shuffle the dictation",
			expected: Intent{Mode: ModeDictation, Order: OrderRandom, OrderSet: true, TimerSeconds: DefaultTimerSeconds},
		},
		{
			name:     "review keywords",
			message:  "show me my mistakes",
			expected: Intent{Mode: ModeReview, Order: OrderRandom, TimerSeconds: DefaultTimerSeconds},
		},
		{
			name:     "stats keywords",
			message:  "how am i doing",
			expected: Intent{Mode: ModeStats, Order: OrderRandom, TimerSeconds: DefaultTimerSeconds},
		},
		{
			name:     "upload keywords",
			message:  "import my excel file",
			expected: Intent{Mode: ModeUpload, Order: OrderRandom, TimerSeconds: DefaultTimerSeconds},
		},
		{
			name:     "invalid timer ignored",
			message:  "mcq 7 seconds",
			expected: Intent{Mode: ModeMCQ, Order: OrderRandom, TimerSeconds: DefaultTimerSeconds},
		},
		{
			name:     "twenty second timer",
			message:  "dictation 20s",
			expected: Intent{Mode: ModeDictation, Order: OrderRandom, TimerSeconds: 20, TimerSet: true},
		},
		{
			name:     "nothing recognized",
			message:  "hello there",
			expected: Intent{Mode: ModeUnknown, Order: OrderRandom, TimerSeconds: DefaultTimerSeconds},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseIntent(tt.message)
			if result != tt.expected {
				t.Errorf("parseIntent(%q) = %+v, want %+v", tt.message, result, tt.expected)
			}
		})
	}
}

func TestMergeIntent(t *testing.T) {
	t.Run("fills unset fields only", func(t *testing.T) {
		in := Intent{Mode: ModeUnknown, Order: OrderRandom, TimerSeconds: DefaultTimerSeconds}
		resolved := &Intent{Mode: ModeMCQ, Order: OrderAToZ, OrderSet: true, LetterFilter: "c", TimerSeconds: 5, TimerSet: true}

		result := mergeIntent(in, resolved)
		if result.Mode != ModeMCQ {
			t.Errorf("Mode = %q, want mcq", result.Mode)
		}
		if result.Order != OrderAToZ || !result.OrderSet {
			t.Errorf("Order = %q (set=%v), want a_to_z", result.Order, result.OrderSet)
		}
		if result.LetterFilter != "c" {
			t.Errorf("LetterFilter = %q, want c", result.LetterFilter)
		}
		if result.TimerSeconds != 5 || !result.TimerSet {
			t.Errorf("TimerSeconds = %d (set=%v), want 5", result.TimerSeconds, result.TimerSet)
		}
	})

	t.Run("does not override recognized fields", func(t *testing.T) {
		in := Intent{Mode: ModeDictation, Order: OrderZToA, OrderSet: true, TimerSeconds: 20, TimerSet: true}
		resolved := &Intent{Mode: ModeMCQ, Order: OrderAToZ, OrderSet: true, TimerSeconds: 5, TimerSet: true}

		result := mergeIntent(in, resolved)
		if result.Mode != ModeDictation {
			t.Errorf("Mode = %q, want dictation kept", result.Mode)
		}
		if result.Order != OrderZToA {
			t.Errorf("Order = %q, want z_to_a kept", result.Order)
		}
		if result.TimerSeconds != 20 {
			t.Errorf("TimerSeconds = %d, want 20 kept", result.TimerSeconds)
		}
	})

	t.Run("invalid resolver timer rejected", func(t *testing.T) {
		in := Intent{Mode: ModeUnknown, Order: OrderRandom, TimerSeconds: DefaultTimerSeconds}
		resolved := &Intent{TimerSeconds: 99, TimerSet: true}

		result := mergeIntent(in, resolved)
		if result.TimerSet || result.TimerSeconds != DefaultTimerSeconds {
			t.Errorf("TimerSeconds = %d (set=%v), want default unset", result.TimerSeconds, result.TimerSet)
		}
	})

	t.Run("nil resolver result is a no-op", func(t *testing.T) {
		in := Intent{Mode: ModeMCQ, Order: OrderRandom, TimerSeconds: DefaultTimerSeconds}
		result := mergeIntent(in, nil)
		if result != in {
			t.Errorf("mergeIntent(in, nil) = %+v, want unchanged", result)
		}
	})
}
