package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	gw "github.com/bearisterai/bearister-api/api/services/assistant/gateway"
)

type fakePredictionGateway struct {
	calls   int
	lastReq gw.PredictionRequest
	text    string
	err     error
}

func (f *fakePredictionGateway) Predict(ctx context.Context, req gw.PredictionRequest) (gw.PredictionResponse, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return gw.PredictionResponse{}, f.err
	}
	return gw.PredictionResponse{Text: f.text}, nil
}

func TestAsk_EmptyQuestion(t *testing.T) {
	fg := &fakePredictionGateway{}
	svc := NewService(fg)

	for _, q := range []string{"", "   ", "\n"} {
		_, err := svc.Ask(context.Background(), ChatRequest{Question: q})
		assert.ErrorIs(t, err, ErrMissingQuestion)
	}
	assert.Equal(t, 0, fg.calls)
}

func TestAsk_ForwardsQuestionAndConfig(t *testing.T) {
	fg := &fakePredictionGateway{text: "Objection sustained."}
	svc := NewService(fg)

	resp, err := svc.Ask(context.Background(), ChatRequest{
		Question:  "  Can I appeal?  ",
		SessionID: "chat-4",
		History: []ChatMessage{
			{Role: "user", Content: "hi"},
			{Role: "assistant", Content: "hello"},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, "Objection sustained.", resp.Text)

	assert.Equal(t, "Can I appeal?", fg.lastReq.Question)
	assert.Equal(t, "chat-4", fg.lastReq.OverrideConfig.SessionID)
	assert.Equal(t, 1, fg.lastReq.OverrideConfig.MaxIterations)
	assert.Equal(t, "Human: hi\nAssistant: hello", fg.lastReq.OverrideConfig.History)
}

func TestAsk_HistoryWindowCapped(t *testing.T) {
	fg := &fakePredictionGateway{}
	svc := NewService(fg)

	history := make([]ChatMessage, 0, 25)
	for i := 0; i < 25; i++ {
		history = append(history, ChatMessage{Role: "user", Content: fmt.Sprintf("msg-%d", i)})
	}

	_, err := svc.Ask(context.Background(), ChatRequest{Question: "q", History: history})
	assert.NoError(t, err)

	lines := strings.Split(fg.lastReq.OverrideConfig.History, "\n")
	assert.Len(t, lines, 10)
	assert.Equal(t, "Human: msg-15", lines[0])
	assert.Equal(t, "Human: msg-24", lines[9])
}

func TestAsk_PredictionFailure(t *testing.T) {
	fg := &fakePredictionGateway{err: errors.New("endpoint down")}
	svc := NewService(fg)

	_, err := svc.Ask(context.Background(), ChatRequest{Question: "q"})
	assert.ErrorIs(t, err, ErrPrediction)
}
