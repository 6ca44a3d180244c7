package gateway

import "context"

// PredictionRequest is the wire contract of the external prediction endpoint.
// The endpoint is an opaque collaborator; this shape is the whole agreement.
type PredictionRequest struct {
	Question       string         `json:"question"`
	OverrideConfig OverrideConfig `json:"overrideConfig"`
}

// OverrideConfig carries the per-call configuration the prediction endpoint
// accepts alongside the question.
type OverrideConfig struct {
	SystemMessage           string `json:"systemMessage"`
	MaxIterations           int    `json:"maxIterations"`
	EnableDetailedStreaming bool   `json:"enableDetailedStreaming"`
	SessionID               string `json:"sessionId"`
	History                 string `json:"history"`
}

// PredictionResponse is the endpoint's answer payload.
type PredictionResponse struct {
	Text string `json:"text"`
}

// PredictionGateway abstracts the external prediction endpoint.
type PredictionGateway interface {
	Predict(ctx context.Context, req PredictionRequest) (PredictionResponse, error)
}
