package dialog

import (
	"context"
	"log"
	"math/rand/v2"
	"strings"
)

// maxHops bounds internal re-routing within a single turn. Hitting it means a
// handler bug, not a normal path.
const maxHops = 8

// Engine runs one conversation turn at a time. It holds no per-session state;
// the Session record carries everything between turns.
type Engine struct {
	vocab    VocabularyGateway
	matching MatchingGateway
	resolver IntentResolver

	// pick returns a value in [0, n); overridable in tests
	pick func(n int) int
}

// NewEngine creates an engine. resolver may be nil, in which case keyword
// parsing is the only intent source.
func NewEngine(vocab VocabularyGateway, matching MatchingGateway, resolver IntentResolver) *Engine {
	return &Engine{
		vocab:    vocab,
		matching: matching,
		resolver: resolver,
		pick:     rand.IntN,
	}
}

// Advance processes one user message against a session and returns the
// updated session with Response set. Handlers run in a hop loop until one
// signals the turn is complete; each hop's response is accumulated so that
// feedback and a follow-up question can share a turn.
func (e *Engine) Advance(ctx context.Context, s Session, message string) Session {
	msg := strings.ToLower(strings.TrimSpace(message))
	if msg == "stop" || msg == "quit" || msg == "exit" {
		fresh := NewSession(s.ID)
		fresh.Next = AgentEnd
		fresh.Response = "Quiz stopped. Type a command to start again!"
		return fresh
	}

	s.Message = message
	s.Next = AgentSupervisor
	s.Response = ""

	var parts []string
	for hop := 0; hop < maxHops; hop++ {
		s = e.dispatch(ctx, s)
		if s.Response != "" {
			parts = append(parts, s.Response)
			s.Response = ""
		}
		if s.Next == AgentEnd {
			s.Response = strings.Join(parts, "\n\n")
			return s
		}
	}

	log.Printf("session %s: hop limit exceeded on message %q (next=%s)", s.ID, message, s.Next)
	s.Next = AgentEnd
	s.Response = "Something went wrong on our side. Please try again."
	return s
}

func (e *Engine) dispatch(ctx context.Context, s Session) Session {
	switch s.Next {
	case AgentSupervisor:
		return e.supervise(ctx, s)
	case AgentMCQ:
		return e.deliverMCQ(s)
	case AgentDictation:
		return e.deliverDictation(s)
	case AgentEvaluation:
		return e.evaluate(s)
	case AgentProgress:
		return e.progress(s)
	default:
		log.Printf("session %s: unknown agent %q, ending turn", s.ID, s.Next)
		s.Next = AgentEnd
		return s
	}
}

// buildQueue fetches word IDs for the session's configuration and resets the
// run counters. Called only when the queue is empty, which marks a run start.
func (e *Engine) buildQueue(s Session) (Session, error) {
	var categories []string
	if len(s.SelectedCategories) > 0 {
		categories = s.SelectedCategories
	}

	ids, err := e.vocab.WordIDsByOrder(string(s.Order), s.LetterFilter, categories)
	if err != nil {
		return s, err
	}

	s.WordQueue = ids
	s.QueueIndex = 0
	s.SessionCorrect = 0
	s.SessionTotal = 0
	// The setup wizard leaves its cursor on ready when it launches a quiz;
	// a fresh queue means the launch is done.
	s.SetupStep = SetupIdle
	return s, nil
}
