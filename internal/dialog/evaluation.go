package dialog

import (
	"fmt"
	"log"
	"strings"

	"vocaquiz/internal/models"
)

var mcqAnswerIndex = map[string]int{"a": 0, "b": 1, "c": 2, "d": 3}

// evaluate scores the answer to the open question, updates run counters and
// either continues delivery, or ends the run with a summary. Correct answers
// are persisted immediately; wrong ones are buffered until the user decides
// whether to save them.
func (e *Engine) evaluate(s Session) Session {
	if s.CurrentQuestion == nil {
		s.Response = "No question to evaluate. Start a quiz first!"
		s.Next = AgentSupervisor
		return s
	}

	q := s.CurrentQuestion
	expected := q.Expected()

	var isCorrect bool
	var feedback string

	if s.Mode == ModeMCQ {
		idx, ok := mcqAnswerIndex[strings.ToLower(strings.TrimSpace(s.Message))]
		if !ok {
			// soft validation error: the question stays open, nothing counts
			s.Response = "Please answer with A, B, C, or D."
			s.Next = AgentEnd
			return s
		}
		isCorrect = idx == q.CorrectIndex
		if isCorrect {
			feedback = "**Correct!**"
		} else {
			feedback = fmt.Sprintf("**Incorrect.** The answer was: %s", expected)
		}
	} else {
		result := e.matching.Match(s.Message, expected)
		isCorrect = result.IsCorrect
		feedback = result.Feedback
	}

	if isCorrect {
		err := e.matching.SaveAttempt(models.Attempt{
			WordID:         q.WordID,
			Mode:           string(s.Mode),
			QuestionType:   q.QuestionType,
			IsCorrect:      true,
			UserAnswer:     s.Message,
			ExpectedAnswer: expected,
		})
		if err != nil {
			log.Printf("session %s: saving attempt for word %d failed: %v", s.ID, q.WordID, err)
		}
		s.SessionCorrect++
	} else {
		s.SessionWrong = append(s.SessionWrong, WrongAnswer{
			WordID:         q.WordID,
			QuestionType:   q.QuestionType,
			UserAnswer:     s.Message,
			ExpectedAnswer: expected,
			Mode:           s.Mode,
		})
	}

	s.SessionTotal++
	s.QueueIndex++
	s.CurrentQuestion = nil

	accuracy := 0.0
	if s.SessionTotal > 0 {
		accuracy = float64(s.SessionCorrect) / float64(s.SessionTotal) * 100
	}

	if s.QuizComplete() && len(s.SessionWrong) > 0 {
		n := len(s.SessionWrong)
		s.ReviewStep = ReviewEndPrompt
		s.Response = fmt.Sprintf("%s\n\n**Quiz Complete!** %d/%d (%.0f%%)\n\n**%d wrong answer%s**\n\n[Review Wrong Answers]  [Exit]",
			feedback, s.SessionCorrect, s.SessionTotal, accuracy, n, plural(n))
		s.Next = AgentEnd
		return s
	}

	if s.QuizComplete() {
		s.ReviewStep = ReviewIdle
		s.SessionWrong = nil
		s.IsReviewMode = false
		s.Response = fmt.Sprintf("%s\n\n**Perfect Score!** %d/%d (%.0f%%)\n\nAll answers correct! Great job!",
			feedback, s.SessionCorrect, s.SessionTotal, accuracy)
		s.Next = AgentEnd
		return s
	}

	s.Response = fmt.Sprintf("%s\n\nSession: %d/%d (%.0f%%)", feedback, s.SessionCorrect, s.SessionTotal, accuracy)
	s.Next = quizAgent(s.Mode)
	return s
}
