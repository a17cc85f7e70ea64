package dialog

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	letterFilterRe = regexp.MustCompile(`letter\s+([a-z])`)
	timerRe        = regexp.MustCompile(`(\d+)\s*(?:sec|second|s\b)`)
)

var modeKeywords = []struct {
	mode  Mode
	words []string
}{
	{ModeMCQ, []string{"mcq", "quiz", "multiple", "choice", "test"}},
	{ModeDictation, []string{"dictation", "write", "spell", "type"}},
	{ModeReview, []string{"review", "failed", "wrong", "weak", "mistakes"}},
	{ModeStats, []string{"stats", "statistics", "progress", "score", "how am i"}},
	{ModeUpload, []string{"upload", "load", "import", "excel"}},
}

// parseIntent extracts mode, order, letter filter and timer from a free-form
// message using keyword rules. Fields the rules did not recognize keep their
// defaults with the matching Set flag false, so a fallback resolver knows
// which gaps it may fill.
func parseIntent(message string) Intent {
	msg := strings.ToLower(strings.TrimSpace(message))

	in := Intent{
		Mode:         ModeUnknown,
		Order:        OrderRandom,
		TimerSeconds: DefaultTimerSeconds,
	}

	for _, mk := range modeKeywords {
		for _, w := range mk.words {
			if strings.Contains(msg, w) {
				in.Mode = mk.mode
				break
			}
		}
		if in.Mode != ModeUnknown {
			break
		}
	}

	switch {
	case strings.Contains(msg, "a to z") || strings.Contains(msg, "a-z") || strings.Contains(msg, "alphabetical"):
		in.Order = OrderAToZ
		in.OrderSet = true
	case strings.Contains(msg, "z to a") || strings.Contains(msg, "z-a") || strings.Contains(msg, "reverse"):
		in.Order = OrderZToA
		in.OrderSet = true
	case strings.Contains(msg, "random") || strings.Contains(msg, "shuffle"):
		in.Order = OrderRandom
		in.OrderSet = true
	case strings.Contains(msg, "letter"):
		in.Order = OrderLetter
		in.OrderSet = true
		if m := letterFilterRe.FindStringSubmatch(msg); m != nil {
			in.LetterFilter = m[1]
		}
	}

	if m := timerRe.FindStringSubmatch(msg); m != nil {
		secs, err := strconv.Atoi(m[1])
		if err == nil && validTimer(secs) {
			in.TimerSeconds = secs
			in.TimerSet = true
		}
	}

	return in
}

func validTimer(secs int) bool {
	for _, t := range TimerOptions {
		if secs == t {
			return true
		}
	}
	return false
}

// mergeIntent fills only the fields the keyword parser left unset. A resolver
// result never overrides something the rules already recognized.
func mergeIntent(in Intent, resolved *Intent) Intent {
	if resolved == nil {
		return in
	}
	if in.Mode == ModeUnknown && resolved.Mode != "" && resolved.Mode != ModeUnknown {
		in.Mode = resolved.Mode
	}
	if !in.OrderSet && resolved.OrderSet {
		in.Order = resolved.Order
		in.OrderSet = true
	}
	if in.LetterFilter == "" && resolved.LetterFilter != "" {
		in.LetterFilter = resolved.LetterFilter
	}
	if !in.TimerSet && resolved.TimerSet && validTimer(resolved.TimerSeconds) {
		in.TimerSeconds = resolved.TimerSeconds
		in.TimerSet = true
	}
	if in.QuestionType == "" && resolved.QuestionType != "" {
		in.QuestionType = resolved.QuestionType
	}
	return in
}
