package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Error kinds surfaced by the inference API
var (
	// ErrModelLoading indicates the model is still being loaded on the provider side
	ErrModelLoading = errors.New("model is loading")

	// ErrUnauthorized indicates a missing or rejected access credential
	ErrUnauthorized = errors.New("unauthorized")
)

// InferenceRequest represents a request to the inference API
type InferenceRequest struct {
	Inputs  string            `json:"inputs"`
	Options *InferenceOptions `json:"options,omitempty"`
}

// InferenceOptions controls provider-side inference behavior
type InferenceOptions struct {
	WaitForModel bool `json:"wait_for_model,omitempty"`
}

// LabelScore represents one class score returned by the model
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// apiError is the error body returned by the inference API
type apiError struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time,omitempty"`
}

// HFClient is an HTTP client for the HuggingFace Inference API
type HFClient struct {
	baseURL    string
	model      string
	token      string
	httpClient *http.Client
}

// NewHFClient creates a new inference API client for a fixed model
func NewHFClient(baseURL, model, token string, timeout time.Duration) *HFClient {
	return &HFClient{
		baseURL: baseURL,
		model:   model,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Model returns the model identifier this client is bound to
func (c *HFClient) Model() string {
	return c.model
}

// Classify sends a single text for sequence classification and returns
// the per-class scores for it
func (c *HFClient) Classify(ctx context.Context, text, requestID string) ([]LabelScore, error) {
	reqBody := InferenceRequest{
		Inputs: text,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/models/"+c.model, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(resp)
	}

	// The API nests scores one level deep for single inputs
	var rows [][]LabelScore
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("inference API returned no scores")
	}

	return rows[0], nil
}

func (c *HFClient) statusError(resp *http.Response) error {
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("inference API returned status %d", resp.StatusCode)
	}

	var apiErr apiError
	detail := string(respBody)
	if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error != "" {
		detail = apiErr.Error
	}

	switch resp.StatusCode {
	case http.StatusServiceUnavailable:
		if apiErr.EstimatedTime > 0 {
			return fmt.Errorf("%w: %s (estimated %.0fs)", ErrModelLoading, detail, apiErr.EstimatedTime)
		}
		return fmt.Errorf("%w: %s", ErrModelLoading, detail)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	default:
		return fmt.Errorf("inference API returned status %d: %s", resp.StatusCode, detail)
	}
}
