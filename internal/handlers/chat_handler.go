package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"vocaquiz/internal/dialog"
	"vocaquiz/internal/security"
	"vocaquiz/internal/service"
	"vocaquiz/internal/session"
)

// ChatHandler is the turn boundary: one message in, one reply plus a session
// token out. The token pins the caller to its own conversation.
type ChatHandler struct {
	store   *session.Store
	engine  *dialog.Engine
	tokens  *security.TokenManager
	matches *service.MatchService
	reports *service.ReportService
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(store *session.Store, engine *dialog.Engine, tokens *security.TokenManager,
	matches *service.MatchService, reports *service.ReportService) *ChatHandler {
	return &ChatHandler{
		store:   store,
		engine:  engine,
		tokens:  tokens,
		matches: matches,
		reports: reports,
	}
}

type chatRequest struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

type chatResponse struct {
	Token string `json:"token"`
	Reply string `json:"reply"`
}

// Chat handles POST /api/chat. A missing or expired token starts a fresh
// conversation; a token that fails verification is rejected.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "decoding chat request", err)
		return
	}

	sessionID := ""
	if req.Token != "" {
		id, err := h.tokens.ParseSessionToken(req.Token)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "Invalid session token", "verifying chat token", err)
			return
		}
		sessionID = id
	}

	var reply string
	turn := func(s dialog.Session) dialog.Session {
		before := s
		after := h.engine.Advance(r.Context(), s, req.Message)
		reply = after.Response
		h.maybeSendRunReport(before, after)
		return after
	}

	if sessionID == "" || !h.store.WithSession(sessionID, turn) {
		// expired or brand new conversation: start over
		sessionID = h.store.Create()
		h.store.WithSession(sessionID, turn)
	}

	token, err := h.tokens.NewSessionToken(sessionID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Something went wrong", "signing session token", err)
		return
	}

	respondJSON(w, http.StatusOK, chatResponse{Token: token, Reply: reply})
}

// maybeSendRunReport fires a best-effort summary email when this turn
// finished a quiz run. It never blocks or fails the turn.
func (h *ChatHandler) maybeSendRunReport(before, after dialog.Session) {
	if h.reports == nil || !h.reports.IsEnabled() {
		return
	}
	if before.QuizComplete() || !after.QuizComplete() || after.SessionTotal == 0 {
		return
	}

	mode := string(after.Mode)
	correct := after.SessionCorrect
	total := after.SessionTotal

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		stats, err := h.matches.Stats()
		if err != nil {
			log.Printf("loading stats for run report failed: %v", err)
		}
		if err := h.reports.SendRunReport(ctx, mode, correct, total, stats); err != nil {
			log.Printf("sending run report failed: %v", err)
		}
	}()
}
