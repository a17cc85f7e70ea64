package models

// MCQQuestion is a generated multiple-choice question with four options.
type MCQQuestion struct {
	WordID        int64
	QuestionType  string
	QuestionText  string
	Options       []string
	CorrectIndex  int
	CorrectAnswer string
}
