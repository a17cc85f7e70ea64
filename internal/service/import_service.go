package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"vocaquiz/internal/models"
	"vocaquiz/internal/repository"
)

// columnMapping holds the detected column index per word field. Word is
// required; at least one of the other three must be present.
type columnMapping struct {
	word     int
	meaning  int
	synonyms int
	antonyms int
}

// ImportService loads vocabulary rows from CSV uploads.
type ImportService struct {
	vocab *repository.VocabRepository
}

// NewImportService creates an import service over the repository.
func NewImportService(vocab *repository.VocabRepository) *ImportService {
	return &ImportService{vocab: vocab}
}

// ImportCSV parses a CSV stream and stores every valid row under the given
// category, returning the number of words imported. Rows with an empty word
// or with no meaning/synonyms/antonyms are skipped.
func (s *ImportService) ImportCSV(r io.Reader, category string) (int, error) {
	words, err := ParseCSV(r)
	if err != nil {
		return 0, err
	}

	imported := 0
	for _, w := range words {
		if _, err := s.vocab.AddWord(w.Word, w.Meaning, w.Synonyms, w.Antonyms, category); err != nil {
			return imported, fmt.Errorf("storing word %q: %w", w.Word, err)
		}
		imported++
	}
	return imported, nil
}

// ParseCSV reads a header-mapped CSV vocabulary file into word records.
func ParseCSV(r io.Reader) ([]models.Word, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header row: %w", err)
	}

	mapping, err := detectColumns(header)
	if err != nil {
		return nil, err
	}

	var words []models.Word
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}

		w := models.Word{
			Word:     cell(row, mapping.word),
			Meaning:  cell(row, mapping.meaning),
			Synonyms: cell(row, mapping.synonyms),
			Antonyms: cell(row, mapping.antonyms),
		}
		if w.Word == "" {
			continue
		}
		if w.Meaning == "" && w.Synonyms == "" && w.Antonyms == "" {
			continue
		}
		words = append(words, w)
	}

	return words, nil
}

func detectColumns(header []string) (columnMapping, error) {
	mapping := columnMapping{word: -1, meaning: -1, synonyms: -1, antonyms: -1}

	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "word", "words", "vocabulary":
			mapping.word = i
		case "meaning", "meanings", "definition", "definitions":
			mapping.meaning = i
		case "synonym", "synonyms":
			mapping.synonyms = i
		case "antonym", "antonyms":
			mapping.antonyms = i
		}
	}

	if mapping.word == -1 {
		return mapping, fmt.Errorf("missing required 'Word' column in file header")
	}
	if mapping.meaning == -1 && mapping.synonyms == -1 && mapping.antonyms == -1 {
		return mapping, fmt.Errorf("at least one additional column required (Meaning, Synonyms, or Antonyms)")
	}

	return mapping, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
