package service

import (
	"vocaquiz/internal/matching"
	"vocaquiz/internal/models"
	"vocaquiz/internal/repository"
)

// MatchService combines fuzzy answer scoring with attempt persistence.
type MatchService struct {
	matcher  *matching.Matcher
	attempts *repository.AttemptRepository
}

// NewMatchService creates a match service with the given similarity threshold.
func NewMatchService(threshold float64, attempts *repository.AttemptRepository) *MatchService {
	return &MatchService{
		matcher:  matching.NewMatcher(threshold),
		attempts: attempts,
	}
}

// Match scores a dictation answer against the expected value.
func (s *MatchService) Match(userAnswer, expected string) models.MatchResult {
	return s.matcher.Match(userAnswer, expected)
}

// SaveAttempt records one answered question.
func (s *MatchService) SaveAttempt(a models.Attempt) error {
	return s.attempts.SaveAttempt(a)
}

// Stats returns aggregate attempt statistics.
func (s *MatchService) Stats() (*models.AttemptStats, error) {
	return s.attempts.Stats()
}

// FailedWords returns the most-missed words, worst first.
func (s *MatchService) FailedWords(limit int) ([]models.FailedWord, error) {
	return s.attempts.FailedWords(limit)
}
