package dialog

import (
	"fmt"
	"log"
	"strings"
)

var addWordPrompts = map[AddWordStep]string{
	AddWordWord:     "**Enter the word:**\n\n[Cancel]",
	AddWordMeaning:  "**Enter meaning:**\n\n[Back] [Cancel]",
	AddWordSynonyms: "**Enter synonyms** (comma-separated, or type 'skip'):\n\n[Back] [Skip] [Cancel]",
	AddWordAntonyms: "**Enter antonyms** (comma-separated, or type 'skip'):\n\n[Back] [Skip] [Cancel]",
}

// prevAddWordStep never goes below word; partial progress survives "back".
var prevAddWordStep = map[AddWordStep]AddWordStep{
	AddWordMeaning:  AddWordWord,
	AddWordSynonyms: AddWordMeaning,
	AddWordAntonyms: AddWordSynonyms,
	AddWordConfirm:  AddWordAntonyms,
}

// addWordFlow drives the guided new-word wizard.
func (e *Engine) addWordFlow(s Session) Session {
	msg := strings.TrimSpace(s.Message)
	lower := strings.ToLower(msg)
	s.Next = AgentEnd

	if matchesAny(lower, []string{"cancel", "stop", "quit"}) {
		s.AddWordStep = AddWordIdle
		s.NewWord = NewWord{}
		s.Response = "Cancelled. Type **add word** to start again."
		return s
	}

	if lower == "back" {
		prev, ok := prevAddWordStep[s.AddWordStep]
		if !ok {
			prev = AddWordWord
		}
		s.AddWordStep = prev
		s.Response = addWordPrompts[prev]
		return s
	}

	switch s.AddWordStep {
	case AddWordWord:
		if msg == "" {
			s.Response = "Please enter a word:\n\n[Cancel]"
			return s
		}
		s.NewWord.Word = msg
		s.AddWordStep = AddWordMeaning
		s.Response = fmt.Sprintf("Word: **%s**\n\n%s", msg, addWordPrompts[AddWordMeaning])
		return s

	case AddWordMeaning:
		if msg == "" {
			s.Response = "Please enter a meaning:\n\n[Back] [Cancel]"
			return s
		}
		s.NewWord.Meaning = msg
		s.AddWordStep = AddWordSynonyms
		s.Response = fmt.Sprintf("Meaning saved!\n\n%s", addWordPrompts[AddWordSynonyms])
		return s

	case AddWordSynonyms:
		if lower == "skip" {
			s.NewWord.Synonyms = ""
		} else {
			s.NewWord.Synonyms = msg
		}
		s.AddWordStep = AddWordAntonyms
		s.Response = fmt.Sprintf("Synonyms: %s\n\n%s", orNone(s.NewWord.Synonyms), addWordPrompts[AddWordAntonyms])
		return s

	case AddWordAntonyms:
		if lower == "skip" {
			s.NewWord.Antonyms = ""
		} else {
			s.NewWord.Antonyms = msg
		}

		// the word alone is not enough to quiz on
		if s.NewWord.Meaning == "" && s.NewWord.Synonyms == "" && s.NewWord.Antonyms == "" {
			s.AddWordStep = AddWordMeaning
			s.Response = fmt.Sprintf("At least one of meaning/synonyms/antonyms is required!\n\n%s", addWordPrompts[AddWordMeaning])
			return s
		}

		s.AddWordStep = AddWordConfirm
		s.Response = fmt.Sprintf("**Confirm new word:**\n\n**Word:** %s\n**Meaning:** %s\n**Synonyms:** %s\n**Antonyms:** %s\n\n[Save] [Back] [Cancel]",
			s.NewWord.Word, orNone(s.NewWord.Meaning), orNone(s.NewWord.Synonyms), orNone(s.NewWord.Antonyms))
		return s

	case AddWordConfirm:
		if !matchesAny(lower, []string{"save", "yes", "confirm", "ok", "y"}) {
			s.Response = "Type **save** to confirm, or use [Back] [Cancel]"
			return s
		}

		id, err := e.vocab.AddWord(s.NewWord.Word, s.NewWord.Meaning, s.NewWord.Synonyms, s.NewWord.Antonyms)
		if err != nil {
			log.Printf("session %s: adding word %q failed: %v", s.ID, s.NewWord.Word, err)
			s.Response = "Could not save the word. Type **save** to try again, or [Back] [Cancel]"
			return s
		}

		word := s.NewWord.Word
		s.AddWordStep = AddWordIdle
		s.NewWord = NewWord{}
		s.Response = fmt.Sprintf("**Word '%s' added successfully!** (ID: %d)\n\nType **add word** to add another, or **start** for a quiz.", word, id)
		return s

	default:
		// idle: open the wizard
		s.AddWordStep = AddWordWord
		s.NewWord = NewWord{}
		s.Response = addWordPrompts[AddWordWord]
		return s
	}
}

func orNone(v string) string {
	if v == "" {
		return "(none)"
	}
	return v
}
