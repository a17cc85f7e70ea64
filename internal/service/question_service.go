package service

import (
	"fmt"
	"strings"

	"vocaquiz/internal/models"
)

// minPoolSize is the smallest vocabulary that can yield four distinct options.
const minPoolSize = 4

const distractorCount = 3

// BuildMCQ assembles a four-option question for the target word, drawing
// distractors from the same field of the other words in the pool. The correct
// answer lands at a random index so its position carries no signal. intn must
// return a value in [0, n).
func BuildMCQ(target models.Word, pool []models.Word, questionType string, intn func(int) int) (*models.MCQQuestion, error) {
	if len(pool) < minPoolSize {
		return nil, fmt.Errorf("not enough words for MCQ generation (need at least %d)", minPoolSize)
	}

	questionText, correctAnswer, err := questionTextAndAnswer(target, questionType, intn)
	if err != nil {
		return nil, err
	}
	if correctAnswer == "" {
		return nil, fmt.Errorf("missing data for question type %s", questionType)
	}

	var distractors []string
	for _, w := range pool {
		if w.ID == target.ID {
			continue
		}
		v := distractorField(w, questionType, intn)
		if v == "" || v == correctAnswer {
			continue
		}
		distractors = append(distractors, v)
	}

	shuffle(distractors, intn)
	if len(distractors) < distractorCount {
		return nil, fmt.Errorf("not enough unique distractors for MCQ")
	}
	distractors = distractors[:distractorCount]

	correctIndex := intn(distractorCount + 1)
	options := make([]string, 0, distractorCount+1)
	options = append(options, distractors[:correctIndex]...)
	options = append(options, correctAnswer)
	options = append(options, distractors[correctIndex:]...)

	return &models.MCQQuestion{
		WordID:        target.ID,
		QuestionType:  questionType,
		QuestionText:  questionText,
		Options:       options,
		CorrectIndex:  correctIndex,
		CorrectAnswer: correctAnswer,
	}, nil
}

func questionTextAndAnswer(target models.Word, questionType string, intn func(int) int) (string, string, error) {
	switch questionType {
	case "word_to_meaning":
		return fmt.Sprintf("What is the meaning of '%s'?", target.Word), target.Meaning, nil
	case "meaning_to_word":
		return fmt.Sprintf("Which word means: '%s'?", truncate(target.Meaning, 100)), target.Word, nil
	case "word_to_synonym":
		return fmt.Sprintf("Which is a synonym of '%s'?", target.Word), pickItem(target.Synonyms, intn), nil
	case "word_to_antonym":
		return fmt.Sprintf("Which is an antonym of '%s'?", target.Word), pickItem(target.Antonyms, intn), nil
	case "synonym_to_word":
		return fmt.Sprintf("Which word has the synonym '%s'?", pickItem(target.Synonyms, intn)), target.Word, nil
	case "antonym_to_word":
		return fmt.Sprintf("Which word has the antonym '%s'?", pickItem(target.Antonyms, intn)), target.Word, nil
	case "synonym_to_meaning":
		return fmt.Sprintf("What is the meaning of the word with synonym '%s'?", pickItem(target.Synonyms, intn)), target.Meaning, nil
	case "antonym_to_meaning":
		return fmt.Sprintf("What is the meaning of the word with antonym '%s'?", pickItem(target.Antonyms, intn)), target.Meaning, nil
	case "meaning_to_synonym":
		return fmt.Sprintf("Which is a synonym of the word meaning: '%s'?", truncate(target.Meaning, 80)), pickItem(target.Synonyms, intn), nil
	case "meaning_to_antonym":
		return fmt.Sprintf("Which is an antonym of the word meaning: '%s'?", truncate(target.Meaning, 80)), pickItem(target.Antonyms, intn), nil
	case "synonym_to_antonym":
		return fmt.Sprintf("Which is an antonym of the word with synonym '%s'?", pickItem(target.Synonyms, intn)), pickItem(target.Antonyms, intn), nil
	case "antonym_to_synonym":
		return fmt.Sprintf("Which is a synonym of the word with antonym '%s'?", pickItem(target.Antonyms, intn)), pickItem(target.Synonyms, intn), nil
	default:
		return "", "", fmt.Errorf("unknown question type: %s", questionType)
	}
}

// distractorField picks the field matching the question's answer side.
func distractorField(w models.Word, questionType string, intn func(int) int) string {
	switch questionType {
	case "word_to_meaning", "synonym_to_meaning", "antonym_to_meaning":
		return w.Meaning
	case "meaning_to_word", "synonym_to_word", "antonym_to_word":
		return w.Word
	case "word_to_synonym", "meaning_to_synonym", "antonym_to_synonym":
		return pickItem(w.Synonyms, intn)
	case "word_to_antonym", "meaning_to_antonym", "synonym_to_antonym":
		return pickItem(w.Antonyms, intn)
	default:
		return w.Meaning
	}
}

// pickItem returns one random entry from a comma-separated list.
func pickItem(csv string, intn func(int) int) string {
	var items []string
	for _, part := range strings.Split(csv, ",") {
		if v := strings.TrimSpace(part); v != "" {
			items = append(items, v)
		}
	}
	if len(items) == 0 {
		return ""
	}
	return items[intn(len(items))]
}

func shuffle(items []string, intn func(int) int) {
	for i := len(items) - 1; i > 0; i-- {
		j := intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
