package dialog

import (
	"context"

	"vocaquiz/internal/models"
)

// VocabularyGateway is the word store and question generator the engine
// depends on. Implementations own their storage reference.
type VocabularyGateway interface {
	// ListCategories returns all categories with word counts.
	ListCategories() ([]models.Category, error)

	// WordIDsByOrder returns word IDs ordered per the given order, optionally
	// filtered by a starting letter and a category set.
	WordIDsByOrder(order, letter string, categories []string) ([]int64, error)

	// WordByID returns a word or (nil, nil) when it does not exist.
	WordByID(id int64) (*models.Word, error)

	// GenerateMCQ builds a four-option question of the given type.
	GenerateMCQ(wordID int64, questionType string) (*models.MCQQuestion, error)

	// AddWord stores a new word and returns its ID.
	AddWord(word, meaning, synonyms, antonyms string) (int64, error)

	// DeleteCategory removes a category and returns the removed word count.
	DeleteCategory(name string) (int64, error)
}

// MatchingGateway scores dictation answers and persists attempt history.
// SaveAttempt is best-effort: callers log failures and carry on.
type MatchingGateway interface {
	Match(userAnswer, expected string) models.MatchResult
	SaveAttempt(a models.Attempt) error
	Stats() (*models.AttemptStats, error)
	FailedWords(limit int) ([]models.FailedWord, error)
}

// Intent is the result of parsing a free-form message. The Set flags record
// which fields a parser actually recognized, so a fallback resolver only
// fills the gaps.
type Intent struct {
	Mode         Mode
	Order        Order
	OrderSet     bool
	LetterFilter string
	TimerSeconds int
	TimerSet     bool
	QuestionType string
}

// IntentResolver is the optional fallback used when keyword parsing cannot
// determine a mode. Implementations may call out to a language model; the
// engine ignores errors and malformed results entirely.
type IntentResolver interface {
	Resolve(ctx context.Context, message string) (*Intent, error)
}
