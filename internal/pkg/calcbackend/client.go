// Package calcbackend is the HTTP client for the external annual-leave
// calculation backend. The backend is treated as a black box: the gateway
// sends a normalized request and renders the response verbatim.
package calcbackend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lawding/leavecalc-api/internal/config"
	"github.com/lawding/leavecalc-api/internal/domain/calculation"
)

const calculatePath = "/annual-leaves/calculate"

// Client wraps the calculation backend's REST API.
type Client struct {
	baseURL      string
	serviceToken string
	httpClient   *http.Client
}

// NewClient creates a backend client. The http.Client timeout is the only
// failure bound: there are no retries and no backoff, a failed attempt is
// surfaced to the caller immediately.
func NewClient(cfg config.UpstreamConfig) *Client {
	return &Client{
		baseURL:      cfg.BaseURL,
		serviceToken: cfg.ServiceToken,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
	}
}

// Calculate implements calculation.Calculator.
func (c *Client) Calculate(ctx context.Context, req calculation.CalculationRequest) (calculation.CalculationResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return calculation.CalculationResult{}, fmt.Errorf("failed to encode calculation request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+calculatePath, bytes.NewReader(body))
	if err != nil {
		return calculation.CalculationResult{}, fmt.Errorf("failed to build calculation request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.serviceToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.serviceToken)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return calculation.CalculationResult{}, calculation.ErrUpstreamRequestFailed
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// fall through to decode
	case resp.StatusCode == http.StatusUnauthorized:
		return calculation.CalculationResult{}, calculation.ErrUpstreamUnauthorized
	default:
		return calculation.CalculationResult{}, calculation.ErrUpstreamRequestFailed
	}

	var result calculation.CalculationResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return calculation.CalculationResult{}, calculation.ErrUpstreamDecodeFailed
	}

	return result, nil
}
