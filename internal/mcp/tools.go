package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolGeneratePlan = mcp.NewTool("generate_plan",
	mcp.WithDescription("Generate a personalized weekly calisthenics plan. Returns the full normalized plan including schedule days, workout days with exercises, skill ladders, and volume targets."),
	mcp.WithString("profile", mcp.Required(), mcp.Description(`User profile as a JSON object string, e.g. {"daysPerWeek":4,"workoutLength":"25-35","equipment":["rings"],"skills":["Handstand"],"goal":"strength"}`)),
)

var toolCoachChat = mcp.NewTool("coach_chat",
	mcp.WithDescription("Ask the AI coach a question about training. Optionally propose structured plan/workout edits based on the reply."),
	mcp.WithString("message", mcp.Required(), mcp.Description("The user's message to the coach")),
	mcp.WithString("context", mcp.Description("Optional training context as a JSON object string (current plan, recent sessions, profile)")),
)

// --- Tool handlers ---

func (h *handlers) generatePlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profileStr, err := req.RequireString("profile")
	if err != nil {
		return mcp.NewToolResultError("profile parameter is required"), nil
	}
	if !json.Valid([]byte(profileStr)) {
		return mcp.NewToolResultError("profile must be a valid JSON object string"), nil
	}

	result, err := h.ds.GeneratePlan(ctx, json.RawMessage(profileStr))
	if err != nil {
		h.log.Error("mcp generate_plan", "error", err)
		return mcp.NewToolResultError("plan generation failed: " + err.Error()), nil
	}
	return mcp.NewToolResultText(string(result)), nil
}

func (h *handlers) coachChat(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := req.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("message parameter is required"), nil
	}

	var chatContext json.RawMessage
	if ctxStr := req.GetString("context", ""); ctxStr != "" {
		if !json.Valid([]byte(ctxStr)) {
			return mcp.NewToolResultError("context must be a valid JSON object string"), nil
		}
		chatContext = json.RawMessage(ctxStr)
	}

	result, err := h.ds.CoachChat(ctx, message, chatContext)
	if err != nil {
		h.log.Error("mcp coach_chat", "error", err)
		return mcp.NewToolResultError("coach chat failed: " + err.Error()), nil
	}
	return mcp.NewToolResultText(string(result)), nil
}
