package service

import (
	"fmt"
	"math/rand/v2"

	"vocaquiz/internal/models"
	"vocaquiz/internal/repository"
	"vocaquiz/internal/validation"
)

// VocabService exposes the word store and question generation to the dialog
// engine.
type VocabService struct {
	vocab *repository.VocabRepository
	intn  func(int) int
}

// NewVocabService creates a vocabulary service over the repository.
func NewVocabService(vocab *repository.VocabRepository) *VocabService {
	return &VocabService{
		vocab: vocab,
		intn:  rand.IntN,
	}
}

// ListCategories returns all categories with word counts.
func (s *VocabService) ListCategories() ([]models.Category, error) {
	return s.vocab.ListCategories()
}

// WordIDsByOrder returns word IDs for a quiz run in the requested order.
func (s *VocabService) WordIDsByOrder(order, letter string, categories []string) ([]int64, error) {
	words, err := s.vocab.WordsByOrder(order, letter, categories)
	if err != nil {
		return nil, fmt.Errorf("loading words: %w", err)
	}

	ids := make([]int64, 0, len(words))
	for _, w := range words {
		ids = append(ids, w.ID)
	}
	return ids, nil
}

// WordByID returns a word or (nil, nil) when it does not exist.
func (s *VocabService) WordByID(id int64) (*models.Word, error) {
	return s.vocab.WordByID(id)
}

// GenerateMCQ builds a four-option question for the word, drawing distractors
// from the rest of the vocabulary.
func (s *VocabService) GenerateMCQ(wordID int64, questionType string) (*models.MCQQuestion, error) {
	target, err := s.vocab.WordByID(wordID)
	if err != nil {
		return nil, fmt.Errorf("loading word %d: %w", wordID, err)
	}
	if target == nil {
		return nil, fmt.Errorf("word %d not found", wordID)
	}

	pool, err := s.vocab.AllWords()
	if err != nil {
		return nil, fmt.Errorf("loading distractor pool: %w", err)
	}

	return BuildMCQ(*target, pool, questionType, s.intn)
}

// AddWord stores a new word in the default category and returns its ID.
func (s *VocabService) AddWord(word, meaning, synonyms, antonyms string) (int64, error) {
	if err := validation.ValidateWord(word, meaning, synonyms, antonyms); err != nil {
		return 0, err
	}
	return s.vocab.AddWord(word, meaning, synonyms, antonyms, "")
}

// DeleteCategory removes a category and returns the removed word count.
func (s *VocabService) DeleteCategory(name string) (int64, error) {
	return s.vocab.DeleteCategory(name)
}
