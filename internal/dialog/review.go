package dialog

import (
	"fmt"
	"log"
	"strings"

	"vocaquiz/internal/models"
)

// reviewFlow handles the prompts shown after a run ends with wrong answers:
// first review-or-exit, then whether to persist the misses for future study.
func (e *Engine) reviewFlow(s Session) Session {
	msg := strings.ToLower(strings.TrimSpace(s.Message))
	s.Next = AgentEnd

	switch s.ReviewStep {
	case ReviewEndPrompt:
		if matchesAny(msg, []string{"review", "review wrong answers", "r"}) {
			ids := make([]int64, 0, len(s.SessionWrong))
			for _, w := range s.SessionWrong {
				ids = append(ids, w.WordID)
			}

			s.WordQueue = ids
			s.QueueIndex = 0
			s.SessionCorrect = 0
			s.SessionTotal = 0
			s.SessionWrong = nil
			s.IsReviewMode = true
			s.ReviewStep = ReviewReviewing
			s.Response = fmt.Sprintf("**Reviewing %d wrong answer%s...**", len(ids), plural(len(ids)))
			s.Next = quizAgent(s.Mode)
			return s
		}

		if matchesAny(msg, []string{"exit", "e", "quit", "stop", "no"}) {
			s.ReviewStep = ReviewSavePrompt
			n := len(s.SessionWrong)
			s.Response = fmt.Sprintf("**Save %d wrong answer%s for future review?**\n\n[Yes - Save]  [No - Just Exit]", n, plural(n))
			return s
		}

		s.Response = "Please choose:\n\n[Review Wrong Answers]  [Exit]"
		return s

	case ReviewSavePrompt:
		if matchesAny(msg, []string{"yes", "save", "y"}) {
			saved := 0
			for _, w := range s.SessionWrong {
				err := e.matching.SaveAttempt(models.Attempt{
					WordID:         w.WordID,
					Mode:           string(w.Mode),
					QuestionType:   w.QuestionType,
					IsCorrect:      false,
					UserAnswer:     w.UserAnswer,
					ExpectedAnswer: w.ExpectedAnswer,
				})
				if err != nil {
					log.Printf("session %s: saving wrong attempt for word %d failed: %v", s.ID, w.WordID, err)
					continue
				}
				saved++
			}

			s.ReviewStep = ReviewIdle
			s.SessionWrong = nil
			s.IsReviewMode = false
			s.Response = fmt.Sprintf("Saved %d wrong answer%s for future review.\n\nType **start** for a new quiz or **review** to see failed words.",
				saved, plural(saved))
			return s
		}

		s.ReviewStep = ReviewIdle
		s.SessionWrong = nil
		s.IsReviewMode = false
		s.Response = "**Quiz complete!** Wrong answers not saved.\n\nType **start** for a new quiz."
		return s

	default:
		return s
	}
}

// quizAgent maps the session mode to its delivery agent, defaulting to MCQ.
func quizAgent(m Mode) Agent {
	if m == ModeDictation {
		return AgentDictation
	}
	return AgentMCQ
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
