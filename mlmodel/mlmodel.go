package mlmodel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"optiroute/types"
)

// Client talks to the external shelter-prediction service. Single
// request/response round trips, no retries.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// PredictionResult is the service's scoring response for one allocation.
type PredictionResult struct {
	ShelterID   string  `json:"shelter_id"`
	ShelterName string  `json:"shelter_name"`
	Score       float64 `json:"score"`
}

// ModelStatus reports the deployed model's health and version.
type ModelStatus struct {
	Status       string `json:"status"`
	ModelVersion string `json:"model_version"`
	TrainedAt    string `json:"trained_at"`
}

// Score sends an allocation request for scoring.
func (c *Client) Score(ctx context.Context, req types.AllocationRequest) (*PredictionResult, error) {
	payloadBytes, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("prediction service returned status: " + resp.Status)
	}

	var result PredictionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Status fetches the deployed model's status.
func (c *Client) Status(ctx context.Context) (*ModelStatus, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/status", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("prediction service returned status: " + resp.Status)
	}

	var status ModelStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, err
	}

	return &status, nil
}

// TestPrediction runs the service's canned sample through Score so
// operators can verify the deployment end to end.
func (c *Client) TestPrediction(ctx context.Context) (*PredictionResult, error) {
	sample := types.AllocationRequest{
		FamilySize:   4,
		HasChildren:  true,
		MedicalNeeds: false,
		Latitude:     13.0827,
		Longitude:    80.2707,
	}
	return c.Score(ctx, sample)
}
