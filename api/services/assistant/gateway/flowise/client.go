package flowisegw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	gw "github.com/bearisterai/bearister-api/api/services/assistant/gateway"
)

// Predictions routinely take longer than typical API calls.
const defaultTimeout = 60 * time.Second

// Client posts prediction requests to a Flowise-style endpoint.
type Client struct {
	url        string
	httpClient *http.Client
}

// New returns a PredictionGateway for the endpoint at url.
func New(url string) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

func (c *Client) Predict(ctx context.Context, predReq gw.PredictionRequest) (gw.PredictionResponse, error) {
	body, err := json.Marshal(predReq)
	if err != nil {
		return gw.PredictionResponse{}, fmt.Errorf("marshal prediction request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return gw.PredictionResponse{}, fmt.Errorf("build prediction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return gw.PredictionResponse{}, fmt.Errorf("prediction request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return gw.PredictionResponse{}, fmt.Errorf("prediction endpoint responded %s", resp.Status)
	}

	var out gw.PredictionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return gw.PredictionResponse{}, fmt.Errorf("decode prediction response: %w", err)
	}
	return out, nil
}
