package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gw "github.com/bearisterai/bearister-api/api/services/assistant/gateway"
)

const (
	systemMessage = "You are BearisterAI, a helpful legal assistant. Provide accurate and helpful information."
	// historyWindow is how many of the most recent messages are replayed to
	// the prediction endpoint.
	historyWindow = 10
)

// Typed errors for the assistant app layer.
var (
	// ErrMissingQuestion indicates an empty question.
	ErrMissingQuestion = errors.New("missing question")
	// ErrPrediction indicates a failure from the prediction endpoint.
	ErrPrediction = errors.New("prediction error")
)

// ChatMessage is one turn of a conversation as the client stores it.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the inbound chat payload.
type ChatRequest struct {
	Question  string        `json:"question"`
	SessionID string        `json:"sessionId"`
	History   []ChatMessage `json:"history"`
}

// ChatResponse is the assistant's answer.
type ChatResponse struct {
	Text string `json:"text"`
}

// Service defines the assistant chat proxy operations.
type Service interface {
	Ask(ctx context.Context, req ChatRequest) (ChatResponse, error)
}

type serviceImpl struct{ gw gw.PredictionGateway }

// NewService returns a Service backed by the given prediction gateway.
func NewService(g gw.PredictionGateway) Service { return serviceImpl{gw: g} }

func (s serviceImpl) Ask(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return ChatResponse{}, fmt.Errorf("%w: question is required", ErrMissingQuestion)
	}

	resp, err := s.gw.Predict(ctx, gw.PredictionRequest{
		Question: question,
		OverrideConfig: gw.OverrideConfig{
			SystemMessage:           systemMessage,
			MaxIterations:           1,
			EnableDetailedStreaming: false,
			SessionID:               req.SessionID,
			History:                 renderHistory(req.History),
		},
	})
	if err != nil {
		return ChatResponse{}, fmt.Errorf("%w: %v", ErrPrediction, err)
	}
	return ChatResponse{Text: resp.Text}, nil
}

// renderHistory flattens the most recent turns into the conversation preamble
// format the prediction endpoint expects.
func renderHistory(history []ChatMessage) string {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	lines := make([]string, 0, len(history))
	for _, msg := range history {
		speaker := "Assistant"
		if msg.Role == "user" {
			speaker = "Human"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", speaker, msg.Content))
	}
	return strings.Join(lines, "\n")
}
