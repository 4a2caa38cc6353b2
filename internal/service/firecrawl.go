package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dinushadev/real-estate-agent-sg/internal/config"
)

// FirecrawlClient handles calls to the Firecrawl extraction API. The remote
// service fetches and parses the target pages; this client only ships the
// URL list, the instruction and the expected record schema.
type FirecrawlClient struct {
	config     *config.FirecrawlConfig
	httpClient *http.Client
}

// NewFirecrawlClient creates a new Firecrawl API client
func NewFirecrawlClient(cfg *config.FirecrawlConfig) *FirecrawlClient {
	return &FirecrawlClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// IsEnabled returns whether the client is configured and ready
func (c *FirecrawlClient) IsEnabled() bool {
	return c.config.Enabled
}

// ExtractRequest represents an extraction request
type ExtractRequest struct {
	URLs   []string       `json:"urls"`
	Prompt string         `json:"prompt"`
	Schema map[string]any `json:"schema,omitempty"`
}

// ExtractResponse represents the extraction API response envelope. Only
// Success and Data are consumed; Status and ExpiresAt are informational.
type ExtractResponse struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Status    string          `json:"status,omitempty"`
	ExpiresAt string          `json:"expiresAt,omitempty"`
}

// Extract performs an extraction request
func (c *FirecrawlClient) Extract(ctx context.Context, req ExtractRequest) (*ExtractResponse, error) {
	if !c.config.Enabled {
		return nil, fmt.Errorf("Firecrawl API is not enabled (missing API key)")
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/extract", c.config.APIBase)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.config.APIKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result ExtractResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &result, nil
}
