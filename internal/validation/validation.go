// Package validation checks vocabulary input before it reaches the store.
package validation

import (
	"fmt"
	"strings"
)

const (
	maxWordLength     = 100
	maxFieldLength    = 500
	maxCategoryLength = 64
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateWord checks a vocabulary entry. The word itself is required; at
// least one of meaning, synonyms or antonyms must be present or there is
// nothing to quiz on.
func ValidateWord(word, meaning, synonyms, antonyms string) error {
	word = strings.TrimSpace(word)
	if word == "" {
		return ValidationError{Field: "word", Message: "word is required"}
	}
	if len(word) > maxWordLength {
		return ValidationError{Field: "word", Message: fmt.Sprintf("word must be at most %d characters", maxWordLength)}
	}
	if strings.TrimSpace(meaning) == "" && strings.TrimSpace(synonyms) == "" && strings.TrimSpace(antonyms) == "" {
		return ValidationError{Field: "meaning", Message: "at least one of meaning, synonyms or antonyms is required"}
	}
	for field, value := range map[string]string{"meaning": meaning, "synonyms": synonyms, "antonyms": antonyms} {
		if len(value) > maxFieldLength {
			return ValidationError{Field: field, Message: fmt.Sprintf("%s must be at most %d characters", field, maxFieldLength)}
		}
	}
	return nil
}

// ValidateCategory checks a category name.
func ValidateCategory(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: "category", Message: "category is required"}
	}
	if len(name) > maxCategoryLength {
		return ValidationError{Field: "category", Message: fmt.Sprintf("category must be at most %d characters", maxCategoryLength)}
	}
	return nil
}
