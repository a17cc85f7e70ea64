package service

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"vocaquiz/internal/database"
)

// BackupData is the complete database backup structure.
type BackupData struct {
	Version    string          `json:"version"`
	ExportedAt time.Time       `json:"exported_at"`
	Words      []WordBackup    `json:"words"`
	Attempts   []AttemptBackup `json:"attempts"`
}

// WordBackup is one vocabulary row for backup.
type WordBackup struct {
	ID        int64     `json:"id"`
	Word      string    `json:"word"`
	Meaning   string    `json:"meaning"`
	Synonyms  string    `json:"synonyms"`
	Antonyms  string    `json:"antonyms"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// AttemptBackup is one attempt-history row for backup.
type AttemptBackup struct {
	ID             int64     `json:"id"`
	WordID         int64     `json:"word_id"`
	Mode           string    `json:"mode"`
	QuestionType   string    `json:"question_type"`
	IsCorrect      bool      `json:"is_correct"`
	UserAnswer     string    `json:"user_answer"`
	ExpectedAnswer string    `json:"expected_answer"`
	TimeTakenMs    *int64    `json:"time_taken_ms"`
	AttemptedAt    time.Time `json:"attempted_at"`
}

// BackupService handles database backup and restore operations.
type BackupService struct {
	db *database.DB
}

// NewBackupService creates a new backup service.
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{db: db}
}

// Export writes a complete backup of the database to a file.
func (s *BackupService) Export(outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	return s.ExportToWriter(file)
}

// ExportToWriter exports the database as indented JSON.
func (s *BackupService) ExportToWriter(w io.Writer) error {
	backup := &BackupData{
		Version:    "1.0",
		ExportedAt: time.Now(),
	}

	if err := s.exportWords(backup); err != nil {
		return fmt.Errorf("failed to export words: %w", err)
	}
	if err := s.exportAttempts(backup); err != nil {
		return fmt.Errorf("failed to export attempts: %w", err)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	log.Printf("Exported: %d words, %d attempts", len(backup.Words), len(backup.Attempts))
	return nil
}

// Import restores a database from a backup file.
func (s *BackupService) Import(inputPath string) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return s.ImportFromReader(file)
}

// ImportFromReader restores a database from a backup stream.
func (s *BackupService) ImportFromReader(r io.Reader) error {
	var backup BackupData
	if err := json.NewDecoder(r).Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	log.Printf("Backup version: %s, exported at: %s", backup.Version, backup.ExportedAt)

	// Attempts reference words, so words go first
	if err := s.importWords(backup.Words); err != nil {
		return fmt.Errorf("failed to import words: %w", err)
	}
	if err := s.importAttempts(backup.Attempts); err != nil {
		return fmt.Errorf("failed to import attempts: %w", err)
	}

	log.Println("Database import completed successfully")
	return nil
}

func (s *BackupService) exportWords(backup *BackupData) error {
	query := "SELECT id, word, meaning, COALESCE(synonyms, ''), COALESCE(antonyms, ''), COALESCE(category, 'Default'), created_at FROM vocabulary ORDER BY id"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var w WordBackup
		if err := rows.Scan(&w.ID, &w.Word, &w.Meaning, &w.Synonyms, &w.Antonyms, &w.Category, &w.CreatedAt); err != nil {
			return err
		}
		backup.Words = append(backup.Words, w)
	}
	return rows.Err()
}

func (s *BackupService) exportAttempts(backup *BackupData) error {
	query := "SELECT id, word_id, mode, question_type, is_correct, COALESCE(user_answer, ''), COALESCE(expected_answer, ''), time_taken_ms, attempted_at FROM attempts ORDER BY id"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var a AttemptBackup
		var timeTaken sql.NullInt64
		if err := rows.Scan(&a.ID, &a.WordID, &a.Mode, &a.QuestionType, &a.IsCorrect, &a.UserAnswer, &a.ExpectedAnswer, &timeTaken, &a.AttemptedAt); err != nil {
			return err
		}
		if timeTaken.Valid {
			a.TimeTakenMs = &timeTaken.Int64
		}
		backup.Attempts = append(backup.Attempts, a)
	}
	return rows.Err()
}

func (s *BackupService) importWords(words []WordBackup) error {
	log.Printf("Importing %d words...", len(words))
	for _, w := range words {
		query := "INSERT INTO vocabulary (id, word, meaning, synonyms, antonyms, category, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)"
		_, err := s.db.Exec(query, w.ID, w.Word, w.Meaning, nullIfEmpty(w.Synonyms), nullIfEmpty(w.Antonyms), w.Category, w.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to import word %d: %w", w.ID, err)
		}
	}
	return nil
}

func (s *BackupService) importAttempts(attempts []AttemptBackup) error {
	log.Printf("Importing %d attempts...", len(attempts))
	for _, a := range attempts {
		var timeTaken interface{}
		if a.TimeTakenMs != nil {
			timeTaken = *a.TimeTakenMs
		}
		query := "INSERT INTO attempts (id, word_id, mode, question_type, is_correct, user_answer, expected_answer, time_taken_ms, attempted_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)"
		_, err := s.db.Exec(query, a.ID, a.WordID, a.Mode, a.QuestionType, a.IsCorrect, a.UserAnswer, a.ExpectedAnswer, timeTaken, a.AttemptedAt)
		if err != nil {
			return fmt.Errorf("failed to import attempt %d: %w", a.ID, err)
		}
	}
	return nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
