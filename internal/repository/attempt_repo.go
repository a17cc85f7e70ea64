package repository

import (
	"vocaquiz/internal/database"
	"vocaquiz/internal/models"
)

// AttemptRepository handles attempt history database operations
type AttemptRepository struct {
	db *database.DB
}

// NewAttemptRepository creates a new attempt repository
func NewAttemptRepository(db *database.DB) *AttemptRepository {
	return &AttemptRepository{db: db}
}

// SaveAttempt records one answered question
func (r *AttemptRepository) SaveAttempt(a models.Attempt) error {
	query := `
		INSERT INTO attempts (word_id, mode, question_type, is_correct, user_answer, expected_answer, time_taken_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query, a.WordID, a.Mode, a.QuestionType, a.IsCorrect, a.UserAnswer, a.ExpectedAnswer, a.TimeTakenMs)
	return err
}

// Stats returns aggregate attempt statistics
func (r *AttemptRepository) Stats() (*models.AttemptStats, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN is_correct THEN 1 ELSE 0 END), 0)
		FROM attempts
	`

	stats := &models.AttemptStats{}
	if err := r.db.QueryRow(query).Scan(&stats.TotalAttempts, &stats.CorrectCount); err != nil {
		return nil, err
	}

	stats.IncorrectCount = stats.TotalAttempts - stats.CorrectCount
	if stats.TotalAttempts > 0 {
		stats.AccuracyPercent = float64(stats.CorrectCount) / float64(stats.TotalAttempts) * 100
	}

	return stats, nil
}

// FailedWords returns words answered incorrectly, most-failed first
func (r *AttemptRepository) FailedWords(limit int) ([]models.FailedWord, error) {
	query := `
		SELECT v.id, v.word, v.meaning, COALESCE(v.synonyms, ''), COALESCE(v.antonyms, ''),
		       COALESCE(v.category, 'Default'), COUNT(*) AS fail_count
		FROM vocabulary v
		JOIN attempts a ON v.id = a.word_id
		WHERE a.is_correct = ?
		GROUP BY v.id, v.word, v.meaning, v.synonyms, v.antonyms, v.category
		ORDER BY fail_count DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, false, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var failed []models.FailedWord
	for rows.Next() {
		var fw models.FailedWord
		err := rows.Scan(
			&fw.Word.ID,
			&fw.Word.Word,
			&fw.Word.Meaning,
			&fw.Word.Synonyms,
			&fw.Word.Antonyms,
			&fw.Word.Category,
			&fw.FailCount,
		)
		if err != nil {
			return nil, err
		}
		failed = append(failed, fw)
	}

	return failed, rows.Err()
}
