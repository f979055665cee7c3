package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/SkillMax00/SkillMax/internal/coach"
	"github.com/SkillMax00/SkillMax/internal/genai"
	"github.com/SkillMax00/SkillMax/internal/plan"
	"github.com/SkillMax00/SkillMax/internal/storage"
)

// generatePlanRequest is the plan endpoint's request body. The profile
// is kept raw so it can be appended verbatim to the prompt.
type generatePlanRequest struct {
	Profile json.RawMessage `json:"profile"`
}

// coachChatRequest is the chat endpoint's request body.
type coachChatRequest struct {
	Message string          `json:"message"`
	Context json.RawMessage `json:"context"`
}

func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	uid := userIDFromContext(r)

	var req generatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	var profile plan.Profile
	if len(req.Profile) == 0 || json.Unmarshal(req.Profile, &profile) != nil || profile == nil {
		s.log.Warn("generate plan missing profile payload", "user_id", uid)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing profile payload"})
		return
	}

	if declared := profile.UserID(); declared != "" && declared != uid {
		s.log.Warn("generate plan profile/user mismatch", "user_id", uid, "profile_user_id", declared)
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "Profile user does not match auth user"})
		return
	}

	s.log.Info("generate plan request accepted", "user_id", uid)
	started := time.Now()
	prompt := plan.BuildPrompt(uid, req.Profile)

	res, err := s.gen.Generate(r.Context(), genai.Request{
		Prompt:      prompt,
		Temperature: plan.Temperature,
	})
	if err != nil {
		s.log.Error("generate plan failed", "user_id", uid, "error", err)
		s.audit(r, uid, "plan", res, err, started)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to generate plan"})
		return
	}

	parsed, _ := genai.ExtractJSON(res.Response.Text())
	normalized, err := plan.Normalize(plan.Candidate(parsed), profile, uid, time.Now())
	if err != nil {
		s.log.Error("generate plan produced unusable output", "user_id", uid, "model", res.Model, "error", err)
		s.audit(r, uid, "plan", res, err, started)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to generate plan"})
		return
	}

	s.audit(r, uid, "plan", res, nil, started)
	s.log.Info("generate plan success", "user_id", uid, "plan_id", normalized.ID, "generator", normalized.Generator, "model", res.Model)
	writeJSON(w, http.StatusOK, map[string]any{"plan": normalized})
}

func (s *Server) handleCoachChat(w http.ResponseWriter, r *http.Request) {
	uid := userIDFromContext(r)

	var req coachChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing message"})
		return
	}

	// Context is optional and untrusted; anything that is not a JSON
	// object is treated as empty.
	chatContext := map[string]any{}
	if len(req.Context) > 0 {
		_ = json.Unmarshal(req.Context, &chatContext)
	}
	if declared := contextProfileUserID(chatContext); declared != "" && declared != uid {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "Profile user does not match auth user"})
		return
	}

	started := time.Now()
	contextJSON, err := json.Marshal(chatContext)
	if err != nil {
		contextJSON = []byte("{}")
	}
	prompt := coach.BuildPrompt(uid, message, contextJSON)

	res, err := s.gen.Generate(r.Context(), genai.Request{
		Prompt:      prompt,
		Temperature: coach.Temperature,
	})
	if err != nil {
		s.log.Error("coach chat failed", "user_id", uid, "error", err)
		s.audit(r, uid, "coach", res, err, started)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "Coach is unavailable right now. Try again in a moment.",
		})
		return
	}

	parsed, _ := genai.ExtractJSON(res.Response.Text())
	reply := coach.Normalize(parsed)

	s.audit(r, uid, "coach", res, nil, started)
	writeJSON(w, http.StatusOK, reply)
}

func (s *Server) handleRecentGenerations(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "audit log not configured"})
		return
	}
	logs, err := s.db.RecentGenerationLogs(r.Context(), userIDFromContext(r), 50)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

// audit records the generation outcome when a database is configured.
// Audit failures never affect the response.
func (s *Server) audit(r *http.Request, uid, kind string, res *genai.Result, genErr error, started time.Time) {
	if s.db == nil {
		return
	}

	log := storage.GenerationLog{
		UserID:     uid,
		Kind:       kind,
		Status:     "success",
		DurationMs: time.Since(started).Milliseconds(),
	}
	if res != nil {
		log.RequestID = res.RequestID
		log.Model = res.Model
		log.Attempts = res.Attempts
	}
	if genErr != nil {
		log.Status = "error"
		msg := genErr.Error()
		log.ErrorMessage = &msg
	}

	if err := s.db.InsertGenerationLog(r.Context(), log); err != nil {
		s.log.Warn("generation audit insert failed", "user_id", uid, "kind", kind, "error", err)
	}
}

// contextProfileUserID digs context.profile.userId out of the chat
// context, returning "" when any level is missing or mistyped.
func contextProfileUserID(chatContext map[string]any) string {
	profile, ok := chatContext["profile"].(map[string]any)
	if !ok {
		return ""
	}
	uid, _ := profile["userId"].(string)
	return uid
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
