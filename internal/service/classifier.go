package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"rentrisk/internal/feature"
)

// Classifier is the external model's predict contract. Implementations must
// be safe for concurrent use; the gate calls it from every request.
type Classifier interface {
	Predict(ctx context.Context, v *feature.Vector) (int, error)
}

// HTTPClassifier talks to the model service over HTTP.
type HTTPClassifier struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClassifier(baseURL string) *HTTPClassifier {
	return &HTTPClassifier{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type predictRequest struct {
	Columns []string `json:"columns"`
	Values  []string `json:"values"`
}

type predictResponse struct {
	Prediction int `json:"prediction"`
}

func (c *HTTPClassifier) Predict(ctx context.Context, v *feature.Vector) (int, error) {
	body, err := json.Marshal(predictRequest{Columns: v.Names(), Values: v.Values()})
	if err != nil {
		return 0, fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/predict", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("unexpected status: %d, body: %s", resp.StatusCode, string(b))
	}

	var res predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}
	return res.Prediction, nil
}
