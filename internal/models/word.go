package models

import "time"

// Word represents a vocabulary entry. Synonyms and antonyms are stored as
// comma-separated lists, matching the upload format.
type Word struct {
	ID        int64
	Word      string
	Meaning   string
	Synonyms  string
	Antonyms  string
	Category  string
	CreatedAt time.Time
}

// Category groups vocabulary entries and carries its word count for listings.
type Category struct {
	Name      string
	WordCount int64
}
