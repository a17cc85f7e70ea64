package dialog

import (
	"fmt"
	"log"
	"strings"

	"vocaquiz/internal/models"
)

// dictationType pairs a given field with an answer field and the prompt
// template shown above the clue value.
type dictationType struct {
	given    string
	answer   string
	template string
}

// dictationTypes mirror the 12 MCQ directions.
var dictationTypes = []dictationType{
	{"word", "meaning", "Write the **meaning** of the word"},
	{"meaning", "word", "Write the **word** that means"},
	{"word", "synonym", "Write a **synonym** for"},
	{"word", "antonym", "Write an **antonym** for"},
	{"synonym", "word", "Write the **word** that has this synonym"},
	{"antonym", "word", "Write the **word** that has this antonym"},
	{"meaning", "synonym", "Write a **synonym** for the word meaning"},
	{"meaning", "antonym", "Write an **antonym** for the word meaning"},
	{"synonym", "meaning", "Write the **meaning** of the word with synonym"},
	{"antonym", "meaning", "Write the **meaning** of the word with antonym"},
	{"synonym", "antonym", "Write an **antonym** for the word with synonym"},
	{"antonym", "synonym", "Write a **synonym** for the word with antonym"},
}

// deliverDictation presents the next writing prompt. Words missing the given
// or expected field are skipped silently; lookup failures skip with a notice.
func (e *Engine) deliverDictation(s Session) Session {
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
		s.Response = "**Dictation complete!** Type 'stats' to see your progress!"
		return s
	}

	if q := s.CurrentQuestion; q != nil && q.WordID == s.WordQueue[s.QueueIndex] {
		s.Response = formatDictation(q, s.TimerSeconds)
		return s
	}

	var notices []string
	for !s.QuizComplete() {
		wordID := s.WordQueue[s.QueueIndex]

		word, err := e.vocab.WordByID(wordID)
		if err != nil {
			log.Printf("session %s: loading word %d failed: %v", s.ID, wordID, err)
			notices = append(notices, "Skipping a word that could not be loaded...")
			s.QueueIndex++
			continue
		}
		if word == nil {
			notices = append(notices, "Skipping a missing word...")
			s.QueueIndex++
			continue
		}

		dt := e.resolveDictationType(s.QuestionType)
		given := e.fieldValue(word, dt.given)
		expected := e.fieldValue(word, dt.answer)

		if given == "" || expected == "" {
			s.QueueIndex++
			continue
		}

		q := &Question{
			WordID:         wordID,
			QuestionType:   dt.given + "_to_" + dt.answer,
			QuestionText:   dt.template,
			GivenValue:     given,
			ExpectedAnswer: expected,
		}
		s.CurrentWordID = wordID
		s.CurrentQuestion = q

		response := formatDictation(q, s.TimerSeconds)
		if len(notices) > 0 {
			response = strings.Join(notices, "\n") + "\n\n" + response
		}
		s.Response = response
		return s
	}

	response := "**Dictation complete!** Type 'stats' to see your progress!"
	if len(notices) > 0 {
		response = strings.Join(notices, "\n") + "\n\n" + response
	}
	s.Response = response
	return s
}

// resolveDictationType maps a configured question type to its template, or
// picks a random direction when none is configured.
func (e *Engine) resolveDictationType(questionType string) dictationType {
	if questionType != "" {
		given, answer, ok := strings.Cut(questionType, "_to_")
		if ok {
			for _, dt := range dictationTypes {
				if dt.given == given && dt.answer == answer {
					return dt
				}
			}
			return dictationType{given, answer, fmt.Sprintf("Write the **%s**", answer)}
		}
	}
	return dictationTypes[e.pick(len(dictationTypes))]
}

// fieldValue extracts a word field; multi-valued fields yield one random item.
func (e *Engine) fieldValue(w *models.Word, field string) string {
	switch field {
	case "word":
		return w.Word
	case "meaning":
		return w.Meaning
	case "synonym":
		return e.pickCSV(w.Synonyms)
	case "antonym":
		return e.pickCSV(w.Antonyms)
	}
	return ""
}

func (e *Engine) pickCSV(csv string) string {
	var items []string
	for _, part := range strings.Split(csv, ",") {
		if v := strings.TrimSpace(part); v != "" {
			items = append(items, v)
		}
	}
	if len(items) == 0 {
		return ""
	}
	return items[e.pick(len(items))]
}

func formatDictation(q *Question, timerSeconds int) string {
	return fmt.Sprintf("%s:\n\n**%s**\n\nYou have **%d seconds**! Type your answer.",
		q.QuestionText, q.GivenValue, timerSeconds)
}
