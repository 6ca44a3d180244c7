package profilegw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	gw "github.com/bearisterai/bearister-api/api/services/billing/gateway"
)

const defaultTimeout = 15 * time.Second

// Client talks to the external user-profile backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a ProfileGateway for the backend at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// UpdatePlan issues a partial update of the user's planType field. Merge
// semantics: only the planType key is sent, the backend keeps every other
// field of the record untouched.
func (c *Client) UpdatePlan(ctx context.Context, userID, tierCode string) (map[string]any, error) {
	body, err := json.Marshal(map[string]string{"planType": tierCode})
	if err != nil {
		return nil, fmt.Errorf("marshal plan update: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/users/%s", c.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build plan update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("plan update request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read plan update response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := "Failed to update user plan"
		var errBody map[string]any
		if json.Unmarshal(raw, &errBody) == nil {
			if m, ok := errBody["message"].(string); ok && m != "" {
				msg = m
			} else if m, ok := errBody["error"].(string); ok && m != "" {
				msg = m
			}
		} else {
			msg = fmt.Sprintf("%s: %s", msg, resp.Status)
		}
		return nil, &gw.UpstreamError{StatusCode: resp.StatusCode, Message: msg}
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		// A non-2xx status is what signals failure; a success response with an
		// unparseable body still counts as success.
		data = map[string]any{"success": true, "message": "Plan updated successfully"}
	}
	return data, nil
}
