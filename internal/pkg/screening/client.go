package screening

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client calls the external AI resume-screening API. The API itself is a
// black box: one POST with resume text and job description, one JSON result.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type ScreenRequest struct {
	ResumeText     string `json:"resume_text"`
	JobTitle       string `json:"job_title"`
	JobDescription string `json:"job_description"`
}

type ScreenResult struct {
	Score   float64 `json:"score"` // 0-100
	Summary string  `json:"summary"`
}

func (c *Client) Screen(ctx context.Context, req ScreenRequest) (ScreenResult, error) {
	var result ScreenResult

	payload, err := json.Marshal(req)
	if err != nil {
		return result, fmt.Errorf("failed to marshal screening request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/screen", bytes.NewReader(payload))
	if err != nil {
		return result, fmt.Errorf("failed to build screening request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return result, fmt.Errorf("screening request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return result, fmt.Errorf("screening API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return result, fmt.Errorf("failed to decode screening result: %w", err)
	}
	return result, nil
}
