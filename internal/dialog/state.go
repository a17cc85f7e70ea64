// Package dialog implements the turn-based conversation engine for the
// vocabulary quiz assistant: a supervisor router, four guided wizards,
// quiz delivery and answer evaluation, all operating on one session record
// passed value-wise from handler to handler.
package dialog

// Mode is the quiz mode requested by the user.
type Mode string

const (
	ModeUnset     Mode = ""
	ModeMCQ       Mode = "mcq"
	ModeDictation Mode = "dictation"
	ModeReview    Mode = "review"
	ModeStats     Mode = "stats"
	ModeUpload    Mode = "upload"
	ModeUnknown   Mode = "unknown"
)

// Order controls word queue ordering.
type Order string

const (
	OrderAToZ   Order = "a_to_z"
	OrderZToA   Order = "z_to_a"
	OrderRandom Order = "random"
	OrderLetter Order = "letter"
)

// Agent names a turn handler. AgentEnd terminates the hop loop.
type Agent string

const (
	AgentSupervisor Agent = "supervisor"
	AgentMCQ        Agent = "mcq"
	AgentDictation  Agent = "dictation"
	AgentEvaluation Agent = "evaluation"
	AgentProgress   Agent = "progress"
	AgentEnd        Agent = "end"
)

// SetupStep is the quiz setup wizard cursor.
type SetupStep string

const (
	SetupIdle     SetupStep = "idle"
	SetupCategory SetupStep = "category"
	SetupMode     SetupStep = "mode"
	SetupOrder    SetupStep = "order"
	SetupLetter   SetupStep = "letter"
	SetupTarget   SetupStep = "target"
	SetupDisplay  SetupStep = "display"
	SetupTimer    SetupStep = "timer"
	SetupReady    SetupStep = "ready"
)

// AddWordStep is the add-word wizard cursor.
type AddWordStep string

const (
	AddWordIdle     AddWordStep = "idle"
	AddWordWord     AddWordStep = "word"
	AddWordMeaning  AddWordStep = "meaning"
	AddWordSynonyms AddWordStep = "synonyms"
	AddWordAntonyms AddWordStep = "antonyms"
	AddWordConfirm  AddWordStep = "confirm"
)

// DeleteCategoryStep is the delete-category wizard cursor.
type DeleteCategoryStep string

const (
	DeleteCategoryIdle    DeleteCategoryStep = "idle"
	DeleteCategorySelect  DeleteCategoryStep = "select"
	DeleteCategoryConfirm DeleteCategoryStep = "confirm"
)

// ReviewStep is the post-quiz review wizard cursor.
type ReviewStep string

const (
	ReviewIdle       ReviewStep = "idle"
	ReviewReviewing  ReviewStep = "reviewing"
	ReviewEndPrompt  ReviewStep = "end_prompt"
	ReviewSavePrompt ReviewStep = "save_prompt"
)

// DefaultTimerSeconds is the per-question timer used when none is chosen.
const DefaultTimerSeconds = 10

// TimerOptions are the only accepted per-question timer values.
var TimerOptions = []int{5, 10, 20}

// Question is the open question awaiting an answer. MCQ questions carry
// Options/CorrectIndex/CorrectAnswer; dictation questions carry
// GivenValue/ExpectedAnswer. At most one question is open per session.
type Question struct {
	WordID         int64
	QuestionType   string
	QuestionText   string
	Options        []string
	CorrectIndex   int
	CorrectAnswer  string
	GivenValue     string
	ExpectedAnswer string
}

// Expected returns the answer the user was supposed to give.
func (q *Question) Expected() string {
	if q.CorrectAnswer != "" {
		return q.CorrectAnswer
	}
	return q.ExpectedAnswer
}

// WrongAnswer buffers one incorrect answer until the user decides whether to
// persist it (deferred-write policy).
type WrongAnswer struct {
	WordID         int64
	QuestionType   string
	UserAnswer     string
	ExpectedAnswer string
	Mode           Mode
}

// NewWord accumulates the fields entered during the add-word wizard.
type NewWord struct {
	Word     string
	Meaning  string
	Synonyms string
	Antonyms string
}

// Session carries all conversation state between turns. It is created once
// per conversation, read and rewritten by exactly one handler per hop, and
// persisted by the caller between turns.
type Session struct {
	ID      string
	Message string

	// Quiz configuration
	Mode               Mode
	Order              Order
	LetterFilter       string
	TimerSeconds       int
	QuestionType       string
	SelectedCategories []string

	// Quiz run state
	WordQueue       []int64
	QueueIndex      int
	CurrentWordID   int64
	CurrentQuestion *Question

	// Scoring
	SessionCorrect int
	SessionTotal   int
	SessionWrong   []WrongAnswer
	IsReviewMode   bool

	// Flow cursors; at most one is non-idle at a time
	SetupStep          SetupStep
	AddWordStep        AddWordStep
	DeleteCategoryStep DeleteCategoryStep
	ReviewStep         ReviewStep

	// Wizard scratch fields
	QuizTarget       string
	QuizDisplay      string
	NewWord          NewWord
	CategoryToDelete string
	DeleteWordCount  int64

	// Turn output
	Response string
	Next     Agent
}

// NewSession creates a fresh session with all wizards idle and counters zero.
func NewSession(id string) Session {
	return Session{
		ID:                 id,
		Order:              OrderRandom,
		TimerSeconds:       DefaultTimerSeconds,
		SetupStep:          SetupIdle,
		AddWordStep:        AddWordIdle,
		DeleteCategoryStep: DeleteCategoryIdle,
		ReviewStep:         ReviewIdle,
		Next:               AgentSupervisor,
	}
}

// QuizComplete reports whether the current run has consumed its whole queue.
func (s Session) QuizComplete() bool {
	return len(s.WordQueue) > 0 && s.QueueIndex >= len(s.WordQueue)
}
