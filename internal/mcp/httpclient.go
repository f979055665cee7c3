package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPClient implements CoachSource by calling the SkillMax REST API.
// Used for MCP mode where the binary runs locally (stdio) but the
// generation pipeline lives on the server.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies CoachSource.
var _ CoachSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL,
// authenticating with the given bearer token.
func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 90 * time.Second},
	}
}

func (c *HTTPClient) post(ctx context.Context, path string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("httpclient: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, respBody)
	}

	return respBody, nil
}

// GeneratePlan requests a normalized weekly plan for the given profile.
func (c *HTTPClient) GeneratePlan(ctx context.Context, profile json.RawMessage) (json.RawMessage, error) {
	return c.post(ctx, "/api/v1/plan/generate", map[string]any{"profile": profile})
}

// CoachChat sends one coaching message with optional context.
func (c *HTTPClient) CoachChat(ctx context.Context, message string, chatContext json.RawMessage) (json.RawMessage, error) {
	payload := map[string]any{"message": message}
	if len(chatContext) > 0 {
		payload["context"] = chatContext
	}
	return c.post(ctx, "/api/v1/coach/chat", payload)
}
