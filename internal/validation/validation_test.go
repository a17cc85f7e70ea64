package validation

import (
	"strings"
	"testing"
)

func TestValidateWord(t *testing.T) {
	tests := []struct {
		name     string
		word     string
		meaning  string
		synonyms string
		antonyms string
		wantErr  bool
	}{
		{
			name:    "word with meaning",
			word:    "abundant",
			meaning: "existing in large quantities",
			wantErr: false,
		},
		{
			name:     "word with only synonyms",
			word:     "abundant",
			synonyms: "plentiful, ample",
			wantErr:  false,
		},
		{
			name:     "word with only antonyms",
			word:     "abundant",
			antonyms: "scarce",
			wantErr:  false,
		},
		{
			name:    "empty word",
			word:    "",
			meaning: "existing in large quantities",
			wantErr: true,
		},
		{
			name:    "whitespace word",
			word:    "   ",
			meaning: "existing in large quantities",
			wantErr: true,
		},
		{
			name:    "word without any content field",
			word:    "abundant",
			wantErr: true,
		},
		{
			name:    "word too long",
			word:    strings.Repeat("a", 101),
			meaning: "existing in large quantities",
			wantErr: true,
		},
		{
			name:    "meaning too long",
			word:    "abundant",
			meaning: strings.Repeat("m", 501),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWord(tt.word, tt.meaning, tt.synonyms, tt.antonyms)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateWord() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "valid category",
			input:   "Animals",
			wantErr: false,
		},
		{
			name:    "empty category",
			input:   "",
			wantErr: true,
		},
		{
			name:    "whitespace category",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "category too long",
			input:   strings.Repeat("c", 65),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCategory(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCategory(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := ValidationError{Field: "word", Message: "word is required"}
	if err.Error() != "word: word is required" {
		t.Errorf("Error() = %q", err.Error())
	}
}
