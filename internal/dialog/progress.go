package dialog

import (
	"fmt"
	"log"
	"strings"
)

const failedWordLimit = 10

// progress reports aggregate statistics and the most-missed words.
func (e *Engine) progress(s Session) Session {
	s.Next = AgentEnd

	stats, err := e.matching.Stats()
	if err != nil {
		log.Printf("session %s: loading stats failed: %v", s.ID, err)
		s.Response = "Could not load stats. Have you completed any quizzes yet?"
		return s
	}

	failed, err := e.matching.FailedWords(failedWordLimit)
	if err != nil {
		log.Printf("session %s: loading failed words failed: %v", s.ID, err)
		s.Response = "Could not load stats. Have you completed any quizzes yet?"
		return s
	}

	lines := []string{
		"## Your Progress",
		"",
		fmt.Sprintf("**Total Attempts:** %d", stats.TotalAttempts),
		fmt.Sprintf("**Correct:** %d", stats.CorrectCount),
		fmt.Sprintf("**Incorrect:** %d", stats.IncorrectCount),
		fmt.Sprintf("**Accuracy:** %.1f%%", stats.AccuracyPercent),
	}

	if len(failed) > 0 {
		lines = append(lines, "", "## Words to Review", "")
		for _, fw := range failed {
			lines = append(lines, fmt.Sprintf("- **%s** (%d mistakes)", fw.Word.Word, fw.FailCount))
		}
		if s.Mode == ModeReview {
			lines = append(lines, "",
				"**Tip:** Start a quiz with these words to practice!",
				"Type 'MCQ random' or 'Dictation random' to begin.")
		}
	} else {
		lines = append(lines, "", "**Great job!** No failed words yet. Keep it up!")
	}

	s.Response = strings.Join(lines, "\n")
	return s
}
