package dialog

import (
	"fmt"
	"log"
	"strings"
)

// mcqTypes are the 12 directional question types over the word fields.
var mcqTypes = []string{
	"word_to_meaning",
	"meaning_to_word",
	"word_to_synonym",
	"word_to_antonym",
	"synonym_to_word",
	"antonym_to_word",
	"synonym_to_meaning",
	"antonym_to_meaning",
	"meaning_to_synonym",
	"meaning_to_antonym",
	"synonym_to_antonym",
	"antonym_to_synonym",
}

var optionLabels = []string{"A", "B", "C", "D"}

// deliverMCQ presents the next multiple-choice question. Words whose question
// cannot be generated are skipped with a notice so the queue never sticks.
func (e *Engine) deliverMCQ(s Session) Session {
	s.Next = AgentEnd

	if len(s.WordQueue) == 0 {
		var err error
		s, err = e.buildQueue(s)
		if err != nil {
			log.Printf("session %s: building word queue failed: %v", s.ID, err)
		}
		if len(s.WordQueue) == 0 {
			s.Response = "No words found! Please upload a vocabulary file first."
			return s
		}
	}

	if s.QuizComplete() {
		s.Response = "**Quiz complete!** You've gone through all words. Type 'stats' to see your progress!"
		return s
	}

	// re-present rather than regenerate, so the correct option never moves
	// under a user retrying the same position
	if q := s.CurrentQuestion; q != nil && q.WordID == s.WordQueue[s.QueueIndex] {
		s.Response = formatMCQ(q, s.TimerSeconds)
		return s
	}

	var notices []string
	for !s.QuizComplete() {
		wordID := s.WordQueue[s.QueueIndex]

		qType := s.QuestionType
		if qType == "" {
			qType = mcqTypes[e.pick(len(mcqTypes))]
		}

		generated, err := e.vocab.GenerateMCQ(wordID, qType)
		if err != nil {
			log.Printf("session %s: generating %s question for word %d failed: %v", s.ID, qType, wordID, err)
			notices = append(notices, "Skipping a word that has no question available...")
			s.QueueIndex++
			continue
		}

		q := &Question{
			WordID:        generated.WordID,
			QuestionType:  generated.QuestionType,
			QuestionText:  generated.QuestionText,
			Options:       generated.Options,
			CorrectIndex:  generated.CorrectIndex,
			CorrectAnswer: generated.CorrectAnswer,
		}
		s.CurrentWordID = wordID
		s.CurrentQuestion = q

		response := formatMCQ(q, s.TimerSeconds)
		if len(notices) > 0 {
			response = strings.Join(notices, "\n") + "\n\n" + response
		}
		s.Response = response
		return s
	}

	response := "**Quiz complete!** You've gone through all words. Type 'stats' to see your progress!"
	if len(notices) > 0 {
		response = strings.Join(notices, "\n") + "\n\n" + response
	}
	s.Response = response
	return s
}

func formatMCQ(q *Question, timerSeconds int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n\n", q.QuestionText)
	for i, opt := range q.Options {
		if i >= len(optionLabels) {
			break
		}
		fmt.Fprintf(&b, "%s. %s\n", optionLabels[i], opt)
	}
	fmt.Fprintf(&b, "\nYou have **%d seconds**! Reply with A, B, C, or D.", timerSeconds)
	return b.String()
}
