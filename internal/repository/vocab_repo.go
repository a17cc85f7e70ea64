package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"vocaquiz/internal/database"
	"vocaquiz/internal/models"
)

// VocabRepository handles vocabulary database operations
type VocabRepository struct {
	db *database.DB
}

// NewVocabRepository creates a new vocabulary repository
func NewVocabRepository(db *database.DB) *VocabRepository {
	return &VocabRepository{db: db}
}

const wordColumns = "id, word, meaning, COALESCE(synonyms, ''), COALESCE(antonyms, ''), COALESCE(category, 'Default')"

func scanWord(scanner interface{ Scan(...interface{}) error }) (models.Word, error) {
	var w models.Word
	err := scanner.Scan(&w.ID, &w.Word, &w.Meaning, &w.Synonyms, &w.Antonyms, &w.Category)
	return w, err
}

// ListCategories returns all categories with their word counts, ordered by name
func (r *VocabRepository) ListCategories() ([]models.Category, error) {
	query := `
		SELECT COALESCE(category, 'Default') AS cat, COUNT(*)
		FROM vocabulary
		GROUP BY cat
		ORDER BY cat
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.Name, &c.WordCount); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// WordsByOrder retrieves words in the requested order, optionally filtered by
// a starting letter and a set of categories. Order is one of a_to_z, z_to_a,
// random or letter (letter ordering sorts ascending within the filter).
func (r *VocabRepository) WordsByOrder(order, letter string, categories []string) ([]models.Word, error) {
	query := "SELECT " + wordColumns + " FROM vocabulary"

	var conditions []string
	var args []interface{}

	if len(categories) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(categories)), ", ")
		conditions = append(conditions, fmt.Sprintf("COALESCE(category, 'Default') IN (%s)", placeholders))
		for _, c := range categories {
			args = append(args, c)
		}
	}

	if letter != "" {
		conditions = append(conditions, "LOWER(word) LIKE ?")
		args = append(args, strings.ToLower(letter[:1])+"%")
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	switch strings.ToLower(order) {
	case "z_to_a":
		query += " ORDER BY word DESC"
	case "random":
		query += " ORDER BY " + r.db.Dialect.RandomFunc()
	default:
		// a_to_z, letter and anything unrecognized sort ascending
		query += " ORDER BY word ASC"
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []models.Word
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	return words, rows.Err()
}

// AllWords returns every word in random order (used for MCQ distractors)
func (r *VocabRepository) AllWords() ([]models.Word, error) {
	return r.WordsByOrder("random", "", nil)
}

// WordByID retrieves a single word, returning (nil, nil) when it does not exist
func (r *VocabRepository) WordByID(id int64) (*models.Word, error) {
	query := "SELECT " + wordColumns + " FROM vocabulary WHERE id = ?"

	w, err := scanWord(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// AddWord inserts a new vocabulary entry and returns its ID
func (r *VocabRepository) AddWord(word, meaning, synonyms, antonyms, category string) (int64, error) {
	if category == "" {
		category = "Default"
	}
	query := `
		INSERT INTO vocabulary (word, meaning, synonyms, antonyms, category)
		VALUES (?, ?, ?, ?, ?)
	`
	return r.db.ExecReturningID(query, word, meaning, synonyms, antonyms, category)
}

// DeleteCategory removes a category with all its words and their attempt
// history, returning the number of words removed
func (r *VocabRepository) DeleteCategory(name string) (int64, error) {
	// Attempts reference vocabulary rows, so they go first
	_, err := r.db.Exec(
		"DELETE FROM attempts WHERE word_id IN (SELECT id FROM vocabulary WHERE category = ?)",
		name,
	)
	if err != nil {
		return 0, err
	}

	result, err := r.db.Exec("DELETE FROM vocabulary WHERE category = ?", name)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

// DeleteAllWords clears the vocabulary and attempts tables (backup import)
func (r *VocabRepository) DeleteAllWords() error {
	if _, err := r.db.Exec("DELETE FROM attempts"); err != nil {
		return err
	}
	_, err := r.db.Exec("DELETE FROM vocabulary")
	return err
}
