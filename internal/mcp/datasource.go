package mcp

import (
	"context"
	"encoding/json"
)

// CoachSource abstracts the generation backend for MCP tools. The
// shipped implementation is HTTPClient, which calls the REST API; tests
// substitute a fake.
type CoachSource interface {
	GeneratePlan(ctx context.Context, profile json.RawMessage) (json.RawMessage, error)
	CoachChat(ctx context.Context, message string, chatContext json.RawMessage) (json.RawMessage, error)
}
