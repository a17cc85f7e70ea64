package dialog

import (
	"context"
	"fmt"
	"log"
	"strings"
)

var (
	addWordTriggers        = []string{"add word", "add", "new word", "add vocabulary"}
	deleteCategoryTriggers = []string{"delete category", "remove category", "delete"}
	showCategoryTriggers   = []string{"categories", "show categories", "list categories", "my categories"}
	startTriggers          = []string{"start", "begin", "quiz", "go", "new"}
	cancelWords            = []string{"stop", "exit", "cancel", "restart"}
	continueWords          = []string{"", "next", "continue", "n"}
)

func matchesAny(msg string, words []string) bool {
	for _, w := range words {
		if msg == w {
			return true
		}
	}
	return false
}

// supervise is the top-level router. The check order matters: active wizards
// and an open question take precedence over fresh intent parsing.
func (e *Engine) supervise(ctx context.Context, s Session) Session {
	msg := strings.ToLower(strings.TrimSpace(s.Message))

	if s.ReviewStep == ReviewEndPrompt || s.ReviewStep == ReviewSavePrompt {
		return e.reviewFlow(s)
	}

	if s.CurrentQuestion != nil && !matchesAny(msg, cancelWords) {
		s.Next = AgentEvaluation
		return s
	}

	if s.AddWordStep != AddWordIdle || matchesAny(msg, addWordTriggers) {
		return e.addWordFlow(s)
	}

	if s.DeleteCategoryStep != DeleteCategoryIdle || matchesAny(msg, deleteCategoryTriggers) {
		return e.deleteCategoryFlow(s)
	}

	if matchesAny(msg, showCategoryTriggers) {
		return e.showCategories(s)
	}

	if s.SetupStep != SetupIdle || matchesAny(msg, startTriggers) {
		return e.setupFlow(s)
	}

	// An empty or "next" message mid-run resumes delivery of the open queue.
	if matchesAny(msg, continueWords) && len(s.WordQueue) > 0 && !s.QuizComplete() &&
		(s.Mode == ModeMCQ || s.Mode == ModeDictation) {
		s.Next = Agent(s.Mode)
		return s
	}

	return e.freeFormIntent(ctx, s)
}

// freeFormIntent parses a fresh command with keyword rules, optionally
// letting the resolver fill fields the rules left unset, then routes.
func (e *Engine) freeFormIntent(ctx context.Context, s Session) Session {
	in := parseIntent(s.Message)

	if in.Mode == ModeUnknown && e.resolver != nil {
		resolved, err := e.resolver.Resolve(ctx, s.Message)
		if err != nil {
			log.Printf("session %s: intent resolver failed: %v", s.ID, err)
		} else {
			in = mergeIntent(in, resolved)
		}
	}

	switch in.Mode {
	case ModeMCQ, ModeDictation:
		s.Mode = in.Mode
		s.Order = in.Order
		s.LetterFilter = in.LetterFilter
		s.TimerSeconds = in.TimerSeconds
		s.QuestionType = in.QuestionType
		s.WordQueue = nil
		s.QueueIndex = 0
		s.Response = fmt.Sprintf("Starting %s mode with %s order, %ds timer...",
			strings.ToUpper(string(in.Mode)), strings.ReplaceAll(string(in.Order), "_", " "), in.TimerSeconds)
		s.Next = Agent(in.Mode)

	case ModeReview, ModeStats:
		s.Mode = in.Mode
		s.Next = AgentProgress

	case ModeUpload:
		s.Response = "Use the upload page to import a vocabulary file, then type **start** to quiz."
		s.Next = AgentEnd

	default:
		s.Response = "I didn't quite understand that. Try:\n\n" +
			"- Type **start** for guided quiz setup\n" +
			"- Type **add word** to add new vocabulary\n" +
			"- Or commands like: **Start MCQ A to Z 10 sec**\n" +
			"- **Review my failed words**\n" +
			"- **Show my stats**"
		s.Next = AgentEnd
	}

	return s
}

// showCategories lists every category with its word count.
func (e *Engine) showCategories(s Session) Session {
	s.Next = AgentEnd

	categories, err := e.vocab.ListCategories()
	if err != nil {
		log.Printf("session %s: listing categories failed: %v", s.ID, err)
		s.Response = "Could not load categories. Please try again."
		return s
	}
	if len(categories) == 0 {
		s.Response = "No categories found. Upload a vocabulary file first!"
		return s
	}

	var total int64
	var lines []string
	for _, c := range categories {
		total += c.WordCount
		lines = append(lines, fmt.Sprintf("  - **%s** - %d words", c.Name, c.WordCount))
	}

	s.Response = fmt.Sprintf("**Your Categories:**\n\n%s\n\n**Total:** %d words across %d categories\n\n"+
		"**Commands:**\n- `start` - Quiz with category selection\n- `delete category` - Remove a category",
		strings.Join(lines, "\n"), total, len(categories))
	return s
}
