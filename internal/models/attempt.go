package models

import "time"

// Attempt records a single answered question.
type Attempt struct {
	ID             int64
	WordID         int64
	Mode           string
	QuestionType   string
	IsCorrect      bool
	UserAnswer     string
	ExpectedAnswer string
	TimeTakenMs    *int64
	AttemptedAt    time.Time
}

// AttemptStats aggregates attempt history.
type AttemptStats struct {
	TotalAttempts   int64
	CorrectCount    int64
	IncorrectCount  int64
	AccuracyPercent float64
}

// FailedWord pairs a word with how often it was answered incorrectly.
type FailedWord struct {
	Word      Word
	FailCount int64
}

// MatchResult is the outcome of fuzzy-matching a dictation answer.
type MatchResult struct {
	IsCorrect  bool
	Similarity float64
	Feedback   string
}
