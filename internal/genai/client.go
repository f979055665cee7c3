// Package genai calls the Gemini generateContent API with an ordered
// model fallback cascade and recovers JSON from free-form model output.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultBaseURL is the public Gemini API host.
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// DefaultModels is the fallback cascade, most capable first.
var DefaultModels = []string{
	"gemini-2.5-flash",
	"gemini-2.0-flash",
	"gemini-1.5-flash",
}

// maxResponseSize limits the response body read to prevent memory exhaustion.
const maxResponseSize = 10 * 1024 * 1024 // 10MB

// Client issues generateContent requests against a fixed model priority
// list. Attempts are sequential; the first 2xx response wins.
type Client struct {
	apiKey     string
	baseURL    string
	models     []string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the Gemini API host (used by tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithModels overrides the model fallback cascade.
func WithModels(models []string) Option {
	return func(c *Client) {
		if len(models) > 0 {
			c.models = models
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient creates a Gemini client with the default cascade.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		models:     DefaultModels,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request describes one generation call. Immutable once built.
type Request struct {
	// Models overrides the client cascade when non-empty.
	Models []string
	// Prompt is the single user-role text prompt.
	Prompt string
	// Temperature controls sampling randomness.
	Temperature float64
}

// Attempt records one model call that did not return success.
type Attempt struct {
	Model  string
	Status int
	Body   string
}

// AttemptsError aggregates every failed model attempt. It is the only
// diagnostic surfaced when the whole cascade fails.
type AttemptsError struct {
	Attempts []Attempt
}

func (e *AttemptsError) Error() string {
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, fmt.Sprintf("model=%s status=%d body=%s", a.Model, a.Status, a.Body))
	}
	return "gemini request failed for all models: " + strings.Join(parts, "; ")
}

// Result holds a successful generation outcome.
type Result struct {
	// RequestID uniquely identifies this generation for audit correlation.
	RequestID string
	// Model is the cascade entry that produced the response.
	Model string
	// Attempts counts model calls made, including the successful one.
	Attempts int
	// Response is the raw decoded API payload.
	Response *GenerateContentResponse
}

// GenerateContentResponse mirrors the nested Gemini response structure.
type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate is one generation candidate.
type Candidate struct {
	Content Content `json:"content"`
}

// Content holds the candidate's message parts.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part is a single content part.
type Part struct {
	Text string `json:"text,omitempty"`
}

// Text returns the first candidate's first part text, or "" when the
// response carries no usable content.
func (r *GenerateContentResponse) Text() string {
	if r == nil || len(r.Candidates) == 0 {
		return ""
	}
	parts := r.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return ""
	}
	return parts[0].Text
}

// generateContentRequest is the wire request body.
type generateContentRequest struct {
	GenerationConfig generationConfig `json:"generationConfig"`
	Contents         []Content        `json:"contents"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature"`
	ResponseMimeType string  `json:"responseMimeType"`
}

// Generate walks the model cascade in priority order, one synchronous
// call per model, and returns the first successful response. Any
// non-2xx status is recorded and the next model is tried; there are no
// per-model retries. When every model fails the returned error is an
// *AttemptsError enumerating each attempt.
func (c *Client) Generate(ctx context.Context, req Request) (*Result, error) {
	models := req.Models
	if len(models) == 0 {
		models = c.models
	}

	body, err := json.Marshal(generateContentRequest{
		GenerationConfig: generationConfig{
			Temperature:      req.Temperature,
			ResponseMimeType: "application/json",
		},
		Contents: []Content{
			{Role: "user", Parts: []Part{{Text: req.Prompt}}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("genai: encode request: %w", err)
	}

	requestID := uuid.New().String()
	var attempts []Attempt

	for _, model := range models {
		status, respBody, err := c.callModel(ctx, model, body)
		if err != nil {
			// Transport errors count as a failed attempt with no status.
			attempts = append(attempts, Attempt{Model: model, Body: err.Error()})
			c.log.Warn("gemini model call failed", "request_id", requestID, "model", model, "error", err)
			if ctx.Err() != nil {
				break
			}
			continue
		}

		if status < 200 || status >= 300 {
			attempts = append(attempts, Attempt{Model: model, Status: status, Body: string(respBody)})
			c.log.Warn("gemini model call failed", "request_id", requestID, "model", model, "status", status)
			continue
		}

		var resp GenerateContentResponse
		if err := json.Unmarshal(respBody, &resp); err != nil {
			attempts = append(attempts, Attempt{Model: model, Status: status, Body: "undecodable response: " + err.Error()})
			c.log.Warn("gemini response decode failed", "request_id", requestID, "model", model, "error", err)
			continue
		}

		c.log.Info("gemini model call succeeded", "request_id", requestID, "model", model)
		return &Result{
			RequestID: requestID,
			Model:     model,
			Attempts:  len(attempts) + 1,
			Response:  &resp,
		}, nil
	}

	return nil, &AttemptsError{Attempts: attempts}
}

// callModel issues a single generateContent call for one model.
func (c *Client) callModel(ctx context.Context, model string, body []byte) (int, []byte, error) {
	u := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.baseURL, model, url.QueryEscape(c.apiKey))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, fmt.Errorf("http request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseSize))
	if err != nil {
		return 0, nil, fmt.Errorf("read body: %w", err)
	}
	return httpResp.StatusCode, respBody, nil
}
