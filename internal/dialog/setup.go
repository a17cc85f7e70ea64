package dialog

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"unicode"

	"vocaquiz/internal/models"
)

var (
	modeOptions   = []string{"MCQ", "Dictation"}
	orderOptions  = []string{"A-Z", "Z-A", "Random", "Letter"}
	targetOptions = []string{"Word", "Meaning", "Synonym", "Antonym"}
	timerLabels   = []string{"5s", "10s", "20s"}
)

var orderByLabel = map[string]Order{
	"A-Z":    OrderAToZ,
	"Z-A":    OrderZToA,
	"Random": OrderRandom,
	"Letter": OrderLetter,
}

var stepPrompts = map[SetupStep]string{
	SetupCategory: "**Select categories to quiz** (toggle on/off, type 'done' when ready)",
	SetupMode:     "**Which mode would you like?**",
	SetupOrder:    "**What order?**",
	SetupTarget:   "**Quiz target** (what should you find)?",
	SetupDisplay:  "**Show you** (the clue)?",
	SetupTimer:    "**Timer** (seconds per question)?",
}

// prevSetupStep maps each step to the one "back" returns to. The letter step
// is optional, so target's predecessor is order, not letter.
var prevSetupStep = map[SetupStep]SetupStep{
	SetupCategory: SetupIdle,
	SetupMode:     SetupCategory,
	SetupOrder:    SetupMode,
	SetupLetter:   SetupOrder,
	SetupTarget:   SetupOrder,
	SetupDisplay:  SetupTarget,
	SetupTimer:    SetupDisplay,
}

// formatSetupOptions renders an option list as button-looking choices.
func formatSetupOptions(options []string, showBack bool) string {
	var b strings.Builder
	for i, opt := range options {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "[%s]", opt)
	}
	if showBack {
		b.WriteString(" [Back]")
	}
	b.WriteString(" [Cancel]")
	return b.String()
}

// parseSetupOption matches input to an option case-insensitively, accepting
// "a to z" for "A-Z" style labels, then falls back to substring containment.
func parseSetupOption(input string, options []string) string {
	in := strings.ToLower(strings.TrimSpace(input))
	for _, opt := range options {
		lower := strings.ToLower(opt)
		if in == lower || in == strings.ReplaceAll(lower, "-", " to ") {
			return opt
		}
	}
	for _, opt := range options {
		if strings.Contains(strings.ToLower(opt), in) {
			return opt
		}
	}
	return ""
}

func displayOptionsFor(target string) []string {
	var opts []string
	for _, opt := range targetOptions {
		if strings.ToLower(opt) != target {
			opts = append(opts, opt)
		}
	}
	return opts
}

func stepPromptWithOptions(step SetupStep, s Session) string {
	var opts []string
	switch step {
	case SetupMode:
		opts = modeOptions
	case SetupOrder:
		opts = orderOptions
	case SetupLetter:
		return "**Which letter?** (A-Z)\n\n[Back] [Cancel]"
	case SetupTarget:
		opts = targetOptions
	case SetupDisplay:
		opts = displayOptionsFor(s.QuizTarget)
	case SetupTimer:
		opts = timerLabels
	}
	return fmt.Sprintf("%s\n\n%s", stepPrompts[step], formatSetupOptions(opts, step != SetupMode))
}

// setupFlow drives the guided quiz configuration wizard.
func (e *Engine) setupFlow(s Session) Session {
	msg := strings.ToLower(strings.TrimSpace(s.Message))
	s.Next = AgentEnd

	if matchesAny(msg, []string{"cancel", "restart", "stop"}) {
		s.SetupStep = SetupIdle
		s.Mode = ModeUnset
		s.Order = OrderRandom
		s.QuizTarget = ""
		s.QuizDisplay = ""
		s.TimerSeconds = DefaultTimerSeconds
		s.Response = "Setup cancelled. Type **start** to begin again."
		return s
	}

	if msg == "back" {
		return e.setupBack(s)
	}

	switch s.SetupStep {
	case SetupCategory:
		return e.setupCategoryStep(s, msg)

	case SetupMode:
		choice := parseSetupOption(s.Message, modeOptions)
		if choice == "" {
			s.Response = fmt.Sprintf("Please choose: %s", formatSetupOptions(modeOptions, false))
			return s
		}
		if choice == "MCQ" {
			s.Mode = ModeMCQ
		} else {
			s.Mode = ModeDictation
		}
		s.SetupStep = SetupOrder
		s.Response = fmt.Sprintf("**%s** selected!\n\n%s", choice, stepPromptWithOptions(SetupOrder, s))
		return s

	case SetupOrder:
		choice := parseSetupOption(s.Message, orderOptions)
		if choice == "" {
			s.Response = fmt.Sprintf("Please choose: %s", formatSetupOptions(orderOptions, true))
			return s
		}
		s.Order = orderByLabel[choice]
		if s.Order == OrderLetter {
			s.SetupStep = SetupLetter
			s.Response = stepPromptWithOptions(SetupLetter, s)
			return s
		}
		s.SetupStep = SetupTarget
		s.Response = fmt.Sprintf("**%s** order!\n\n%s", choice, stepPromptWithOptions(SetupTarget, s))
		return s

	case SetupLetter:
		letter := strings.TrimSpace(s.Message)
		if len(letter) == 1 && unicode.IsLetter(rune(letter[0])) {
			s.LetterFilter = strings.ToLower(letter)
			s.SetupStep = SetupTarget
			s.Response = fmt.Sprintf("Letter **%s**!\n\n%s", strings.ToUpper(letter), stepPromptWithOptions(SetupTarget, s))
			return s
		}
		s.Response = "Please enter a single letter (A-Z):\n\n[Back] [Cancel]"
		return s

	case SetupTarget:
		choice := parseSetupOption(s.Message, targetOptions)
		if choice == "" {
			s.Response = fmt.Sprintf("Please choose: %s", formatSetupOptions(targetOptions, true))
			return s
		}
		s.QuizTarget = strings.ToLower(choice)
		s.SetupStep = SetupDisplay
		s.Response = fmt.Sprintf("Find **%s**!\n\n%s", choice, stepPromptWithOptions(SetupDisplay, s))
		return s

	case SetupDisplay:
		opts := displayOptionsFor(s.QuizTarget)
		choice := parseSetupOption(s.Message, opts)
		if choice == "" {
			s.Response = fmt.Sprintf("Please choose: %s", formatSetupOptions(opts, true))
			return s
		}
		s.QuizDisplay = strings.ToLower(choice)
		s.SetupStep = SetupTimer
		s.Response = fmt.Sprintf("Show **%s** as clue!\n\n%s", choice, stepPromptWithOptions(SetupTimer, s))
		return s

	case SetupTimer:
		choice := parseSetupOption(s.Message, timerLabels)
		if choice == "" {
			s.Response = fmt.Sprintf("Please choose: %s", formatSetupOptions(timerLabels, true))
			return s
		}
		timer, err := strconv.Atoi(strings.TrimSuffix(choice, "s"))
		if err != nil || !validTimer(timer) {
			s.Response = fmt.Sprintf("Please choose: %s", formatSetupOptions(timerLabels, true))
			return s
		}
		s.TimerSeconds = timer
		s.QuestionType = s.QuizDisplay + "_to_" + s.QuizTarget
		s.SetupStep = SetupReady
		s.WordQueue = nil
		s.QueueIndex = 0

		mode := s.Mode
		if mode == ModeUnset {
			mode = ModeMCQ
		}
		s.Response = fmt.Sprintf("**Ready!**\n\n**Mode:** %s\n**Find:** %s\n**Clue:** %s\n**Timer:** %ds\n\n*Starting quiz...*",
			strings.ToUpper(string(mode)), titleCase(s.QuizTarget), titleCase(s.QuizDisplay), timer)
		s.Next = Agent(mode)
		return s

	default:
		// idle (or a stale ready cursor): start the flow with category selection
		return e.setupStart(s)
	}
}

// setupStart opens the wizard by listing categories with everything selected.
func (e *Engine) setupStart(s Session) Session {
	categories, err := e.vocab.ListCategories()
	if err != nil {
		log.Printf("session %s: listing categories failed: %v", s.ID, err)
		s.SetupStep = SetupMode
		s.SelectedCategories = nil
		s.Response = fmt.Sprintf("**Let's set up your quiz!**\n\n%s", stepPromptWithOptions(SetupMode, s))
		return s
	}
	if len(categories) == 0 {
		s.SetupStep = SetupIdle
		s.Response = "No vocabulary uploaded yet. Please upload a file or type **add word** first."
		return s
	}

	var lines []string
	var names []string
	for _, c := range categories {
		lines = append(lines, fmt.Sprintf("  - **%s** (%d words)", c.Name, c.WordCount))
		names = append(names, c.Name)
	}

	s.SetupStep = SetupCategory
	s.SelectedCategories = names
	s.Response = fmt.Sprintf("**Let's set up your quiz!**\n\n**Available categories:**\n%s\n\n"+
		"All categories selected. Type a category name to toggle, or:\n[Done - Continue]  [Cancel]",
		strings.Join(lines, "\n"))
	return s
}

func (e *Engine) setupCategoryStep(s Session, msg string) Session {
	if matchesAny(msg, []string{"done", "continue", "done - continue", "ok", "next"}) {
		if len(s.SelectedCategories) == 0 {
			s.Response = "Please select at least one category!\n\n[Done - Continue]  [Cancel]"
			return s
		}
		noun := "categories"
		if len(s.SelectedCategories) == 1 {
			noun = "category"
		}
		s.SetupStep = SetupMode
		s.Response = fmt.Sprintf("**%d %s** selected!\n\n%s", len(s.SelectedCategories), noun, stepPromptWithOptions(SetupMode, s))
		return s
	}

	categories, err := e.vocab.ListCategories()
	if err != nil {
		log.Printf("session %s: listing categories failed: %v", s.ID, err)
		s.SetupStep = SetupMode
		s.Response = fmt.Sprintf("Could not load categories, continuing to mode selection.\n\n%s", stepPromptWithOptions(SetupMode, s))
		return s
	}

	var matched string
	for _, c := range categories {
		if strings.EqualFold(msg, c.Name) {
			matched = c.Name
			break
		}
	}

	if matched == "" {
		s.Response = fmt.Sprintf("Type a category name to toggle, or 'done' to continue.\n\n%s\n\n[Done - Continue]  [Cancel]",
			categoryChecklist(categories, s.SelectedCategories))
		return s
	}

	action := "Added"
	if containsFold(s.SelectedCategories, matched) {
		s.SelectedCategories = removeFold(s.SelectedCategories, matched)
		action = "Removed"
	} else {
		s.SelectedCategories = append(s.SelectedCategories, matched)
	}

	s.Response = fmt.Sprintf("%s: **%s**\n\n%s\n\n[Done - Continue]  [Cancel]",
		action, matched, categoryChecklist(categories, s.SelectedCategories))
	return s
}

// setupBack returns to the previous step and re-emits its prompt. From the
// first real step the wizard does not exit; it re-shows the mode prompt.
func (e *Engine) setupBack(s Session) Session {
	prev, ok := prevSetupStep[s.SetupStep]
	if !ok {
		return e.setupStart(s)
	}

	switch prev {
	case SetupIdle:
		s.SetupStep = SetupMode
		s.Response = stepPromptWithOptions(SetupMode, s)
	case SetupCategory:
		// re-list categories keeping the current selection
		categories, err := e.vocab.ListCategories()
		if err != nil {
			log.Printf("session %s: listing categories failed: %v", s.ID, err)
			s.Response = stepPromptWithOptions(SetupMode, s)
			return s
		}
		s.SetupStep = SetupCategory
		s.Response = fmt.Sprintf("%s\n\n%s\n\n[Done - Continue]  [Cancel]",
			stepPrompts[SetupCategory], categoryChecklist(categories, s.SelectedCategories))
	default:
		s.SetupStep = prev
		s.Response = stepPromptWithOptions(prev, s)
	}
	return s
}

func categoryChecklist(categories []models.Category, selected []string) string {
	var lines []string
	for _, c := range categories {
		mark := "[ ]"
		if containsFold(selected, c.Name) {
			mark = "[x]"
		}
		lines = append(lines, fmt.Sprintf("  %s **%s** (%d)", mark, c.Name, c.WordCount))
	}
	return strings.Join(lines, "\n")
}

func containsFold(list []string, name string) bool {
	for _, v := range list {
		if strings.EqualFold(v, name) {
			return true
		}
	}
	return false
}

func removeFold(list []string, name string) []string {
	var out []string
	for _, v := range list {
		if !strings.EqualFold(v, name) {
			out = append(out, v)
		}
	}
	return out
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
