package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with the plan-generation and coach-chat
// tools registered.
func New(ds CoachSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("SkillMax", version,
		server.WithToolCapabilities(false),
		server.WithInstructions("SkillMax AI coach. Generate personalized weekly calisthenics plans and ask the coach to adapt training. Plans are normalized server-side: every response is complete and schema-valid."),
	)

	h := &handlers{ds: ds, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolGeneratePlan, Handler: h.generatePlan},
		server.ServerTool{Tool: toolCoachChat, Handler: h.coachChat},
	)

	return s
}

// handlers holds dependencies for MCP tool handlers.
type handlers struct {
	ds  CoachSource
	log *slog.Logger
}
