// Package intent provides a language-model fallback for parsing free-form
// quiz commands that the keyword rules could not classify. It talks to a
// Groq-hosted model through the OpenAI-compatible chat API.
package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"vocaquiz/internal/dialog"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

const systemPrompt = `You are an intent parser for a vocabulary quiz assistant.
Given a user message, respond with ONLY a JSON object with these keys:
  "mode": one of "mcq", "dictation", "review", "stats", "upload", or null
  "order": one of "a_to_z", "z_to_a", "random", "letter", or null
  "letter_filter": a single lowercase letter, or null
  "timer_seconds": 5, 10, or 20, or null
Use null for anything the message does not state. No prose, JSON only.`

var jsonObjectRe = regexp.MustCompile(`\{[^{}]+\}`)

// Resolver implements dialog.IntentResolver over a chat completion model.
type Resolver struct {
	client *openai.Client
	model  string
}

// NewResolver creates a Groq-backed resolver. Returns nil when no API key is
// configured, which disables the fallback entirely.
func NewResolver(apiKey, model string) *Resolver {
	if apiKey == "" {
		return nil
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = groqBaseURL
	return &Resolver{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Resolve asks the model to classify the message. Malformed model output is
// an error; the caller treats any error as "no opinion".
func (r *Resolver) Resolve(ctx context.Context, message string) (*dialog.Intent, error) {
	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       r.model,
		Temperature: 0.3,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Parse this user request: %s", message)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("intent completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("intent completion returned no choices")
	}

	return ParseIntentJSON(resp.Choices[0].Message.Content)
}

// ParseIntentJSON extracts the first JSON object from model output and maps
// it onto a dialog.Intent, setting the flags for fields it recognized.
func ParseIntentJSON(content string) (*dialog.Intent, error) {
	match := jsonObjectRe.FindString(content)
	if match == "" {
		return nil, fmt.Errorf("no JSON object in model output")
	}

	var raw struct {
		Mode         *string `json:"mode"`
		Order        *string `json:"order"`
		LetterFilter *string `json:"letter_filter"`
		TimerSeconds *int    `json:"timer_seconds"`
	}
	if err := json.Unmarshal([]byte(match), &raw); err != nil {
		return nil, fmt.Errorf("parsing model output: %w", err)
	}

	in := &dialog.Intent{Mode: dialog.ModeUnknown}

	if raw.Mode != nil {
		switch strings.ToLower(*raw.Mode) {
		case "mcq":
			in.Mode = dialog.ModeMCQ
		case "dictation":
			in.Mode = dialog.ModeDictation
		case "review":
			in.Mode = dialog.ModeReview
		case "stats":
			in.Mode = dialog.ModeStats
		case "upload":
			in.Mode = dialog.ModeUpload
		}
	}

	if raw.Order != nil {
		switch strings.ToLower(*raw.Order) {
		case "a_to_z":
			in.Order, in.OrderSet = dialog.OrderAToZ, true
		case "z_to_a":
			in.Order, in.OrderSet = dialog.OrderZToA, true
		case "random":
			in.Order, in.OrderSet = dialog.OrderRandom, true
		case "letter":
			in.Order, in.OrderSet = dialog.OrderLetter, true
		}
	}

	if raw.LetterFilter != nil {
		letter := strings.ToLower(strings.TrimSpace(*raw.LetterFilter))
		if len(letter) == 1 && letter[0] >= 'a' && letter[0] <= 'z' {
			in.LetterFilter = letter
		}
	}

	if raw.TimerSeconds != nil {
		switch *raw.TimerSeconds {
		case 5, 10, 20:
			in.TimerSeconds, in.TimerSet = *raw.TimerSeconds, true
		}
	}

	return in, nil
}
