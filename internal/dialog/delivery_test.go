package dialog

import (
	"fmt"
	"strings"
	"testing"
)

func TestDeliverMCQNoWords(t *testing.T) {
	e := newTestEngine(&fakeVocab{}, &fakeMatching{})

	s := NewSession("s1")
	s.Mode = ModeMCQ
	s = e.deliverMCQ(s)

	if s.Response != "No words found! Please upload a vocabulary file first." {
		t.Errorf("Response = %q", s.Response)
	}
}

func TestDeliverMCQRepresentsOpenQuestion(t *testing.T) {
	vocab := &fakeVocab{wordIDs: []int64{1, 2, 3, 4}, words: testWords()}
	e := newTestEngine(vocab, &fakeMatching{})

	s := NewSession("s1")
	s.Mode = ModeMCQ
	s.QuestionType = "word_to_meaning"

	s = e.deliverMCQ(s)
	if s.CurrentQuestion == nil {
		t.Fatal("expected a question")
	}
	first := s.CurrentQuestion

	s = e.deliverMCQ(s)
	if s.CurrentQuestion != first {
		t.Error("open question should be re-presented, not regenerated")
	}
	if s.QueueIndex != 0 {
		t.Errorf("QueueIndex = %d, want 0", s.QueueIndex)
	}
	if !strings.Contains(s.Response, first.QuestionText) {
		t.Errorf("Response should repeat the question: %q", s.Response)
	}
}

func TestDeliverMCQSkipsFailedGeneration(t *testing.T) {
	vocab := &fakeVocab{
		wordIDs: []int64{1, 2, 3, 4},
		words:   testWords(),
		mcqErr:  map[int64]error{1: fmt.Errorf("not enough distractors")},
	}
	e := newTestEngine(vocab, &fakeMatching{})

	s := NewSession("s1")
	s.Mode = ModeMCQ
	s.QuestionType = "word_to_meaning"
	s = e.deliverMCQ(s)

	if !strings.Contains(s.Response, "Skipping a word that has no question available...") {
		t.Errorf("Response missing skip notice: %q", s.Response)
	}
	if s.CurrentQuestion == nil || s.CurrentQuestion.WordID != 2 {
		t.Fatal("delivery should move on to the next word")
	}
	if s.QueueIndex != 1 {
		t.Errorf("QueueIndex = %d, want 1", s.QueueIndex)
	}
}

func TestDeliverMCQAllGenerationFails(t *testing.T) {
	vocab := &fakeVocab{
		wordIDs: []int64{1, 2},
		words:   testWords(),
		mcqErr: map[int64]error{
			1: fmt.Errorf("no data"),
			2: fmt.Errorf("no data"),
		},
	}
	e := newTestEngine(vocab, &fakeMatching{})

	s := NewSession("s1")
	s.Mode = ModeMCQ
	s.QuestionType = "word_to_meaning"
	s = e.deliverMCQ(s)

	if s.CurrentQuestion != nil {
		t.Error("no question should be open")
	}
	if !strings.Contains(s.Response, "**Quiz complete!**") {
		t.Errorf("Response = %q", s.Response)
	}
}

func TestDeliverMCQCompleteQueue(t *testing.T) {
	vocab := &fakeVocab{wordIDs: []int64{1, 2}, words: testWords()}
	e := newTestEngine(vocab, &fakeMatching{})

	s := NewSession("s1")
	s.Mode = ModeMCQ
	s.WordQueue = []int64{1, 2}
	s.QueueIndex = 2
	s = e.deliverMCQ(s)

	if !strings.Contains(s.Response, "**Quiz complete!**") {
		t.Errorf("Response = %q", s.Response)
	}
}

func TestDeliverDictationQuestion(t *testing.T) {
	vocab := &fakeVocab{wordIDs: []int64{1, 2, 3, 4}, words: testWords()}
	e := newTestEngine(vocab, &fakeMatching{})

	s := NewSession("s1")
	s.Mode = ModeDictation
	s.QuestionType = "word_to_meaning"
	s.TimerSeconds = 20
	s = e.deliverDictation(s)

	q := s.CurrentQuestion
	if q == nil {
		t.Fatal("expected a question")
	}
	if q.GivenValue != "abundant" {
		t.Errorf("GivenValue = %q, want abundant", q.GivenValue)
	}
	if q.ExpectedAnswer != "existing in large quantities" {
		t.Errorf("ExpectedAnswer = %q", q.ExpectedAnswer)
	}
	if !strings.Contains(s.Response, "Write the **meaning** of the word:") {
		t.Errorf("Response missing prompt: %q", s.Response)
	}
	if !strings.Contains(s.Response, "**abundant**") {
		t.Errorf("Response missing clue: %q", s.Response)
	}
	if !strings.Contains(s.Response, "You have **20 seconds**!") {
		t.Errorf("Response missing timer: %q", s.Response)
	}
}

func TestDeliverDictationSkipsEmptyFields(t *testing.T) {
	words := testWords()
	words[1].Antonyms = ""
	vocab := &fakeVocab{wordIDs: []int64{1, 2, 3, 4}, words: words}
	e := newTestEngine(vocab, &fakeMatching{})

	s := NewSession("s1")
	s.Mode = ModeDictation
	s.QuestionType = "word_to_antonym"
	s = e.deliverDictation(s)

	if s.CurrentQuestion == nil || s.CurrentQuestion.WordID != 2 {
		t.Fatal("word without the answer field should be skipped")
	}
	if strings.Contains(s.Response, "Skipping") {
		t.Errorf("missing fields skip silently, got %q", s.Response)
	}
	if s.QueueIndex != 1 {
		t.Errorf("QueueIndex = %d, want 1", s.QueueIndex)
	}
}

func TestDeliverDictationMissingWordNotice(t *testing.T) {
	words := testWords()
	delete(words, 1)
	vocab := &fakeVocab{wordIDs: []int64{1, 2, 3, 4}, words: words}
	e := newTestEngine(vocab, &fakeMatching{})

	s := NewSession("s1")
	s.Mode = ModeDictation
	s.QuestionType = "word_to_meaning"
	s = e.deliverDictation(s)

	if !strings.Contains(s.Response, "Skipping a missing word...") {
		t.Errorf("Response missing notice: %q", s.Response)
	}
	if s.CurrentQuestion == nil || s.CurrentQuestion.WordID != 2 {
		t.Error("delivery should continue with the next word")
	}
}

func TestResolveDictationType(t *testing.T) {
	e := newTestEngine(&fakeVocab{}, &fakeMatching{})

	t.Run("configured type", func(t *testing.T) {
		dt := e.resolveDictationType("meaning_to_word")
		if dt.given != "meaning" || dt.answer != "word" {
			t.Errorf("resolved %s_to_%s, want meaning_to_word", dt.given, dt.answer)
		}
		if dt.template != "Write the **word** that means" {
			t.Errorf("template = %q", dt.template)
		}
	})

	t.Run("unknown combination falls back to generic template", func(t *testing.T) {
		dt := e.resolveDictationType("word_to_word")
		if dt.given != "word" || dt.answer != "word" {
			t.Errorf("resolved %s_to_%s", dt.given, dt.answer)
		}
		if !strings.Contains(dt.template, "Write the **word**") {
			t.Errorf("template = %q", dt.template)
		}
	})

	t.Run("empty type picks a direction", func(t *testing.T) {
		dt := e.resolveDictationType("")
		if dt != dictationTypes[0] {
			t.Errorf("resolved %+v, want first direction with stubbed pick", dt)
		}
	})
}

func TestPickCSV(t *testing.T) {
	e := newTestEngine(&fakeVocab{}, &fakeMatching{})

	if got := e.pickCSV("plentiful, ample"); got != "plentiful" {
		t.Errorf("pickCSV = %q, want plentiful with stubbed pick", got)
	}
	if got := e.pickCSV("  , "); got != "" {
		t.Errorf("pickCSV of blanks = %q, want empty", got)
	}
}
