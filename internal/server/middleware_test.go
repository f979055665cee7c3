package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestStaticTokens(t *testing.T) {
	tokens := StaticTokens{"tok-1": "user-1"}

	uid, err := tokens.Verify(context.Background(), "tok-1")
	if err != nil || uid != "user-1" {
		t.Errorf("Verify(tok-1) = (%q, %v), want (user-1, nil)", uid, err)
	}
	if _, err := tokens.Verify(context.Background(), "nope"); err == nil {
		t.Error("Verify(nope) should fail")
	}
}

func TestBearerAuth(t *testing.T) {
	var gotUID string
	handler := BearerAuth(StaticTokens{"tok-1": "user-1"})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUID = userIDFromContext(r)
		}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"no header", "", http.StatusUnauthorized, "Missing bearer token"},
		{"wrong scheme", "Basic tok-1", http.StatusUnauthorized, "Missing bearer token"},
		{"empty token", "Bearer ", http.StatusUnauthorized, "Missing bearer token"},
		{"unknown token", "Bearer nope", http.StatusUnauthorized, "Invalid bearer token"},
		{"valid", "Bearer tok-1", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUID = ""
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body = %s, want %q", rec.Body.String(), tt.wantBody)
			}
			if tt.wantStatus == http.StatusOK && gotUID != "user-1" {
				t.Errorf("uid in context = %q, want user-1", gotUID)
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not run for OPTIONS")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/plan/generate", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("allow-origin = %q, want *", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, "Authorization") {
		t.Errorf("allow-headers = %q", got)
	}
}

func TestCORSPassThrough(t *testing.T) {
	called := false
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !called {
		t.Error("next handler should run for GET")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("allow-origin = %q, want *", got)
	}
}

func TestContextProfileUserID(t *testing.T) {
	tests := []struct {
		name string
		ctx  map[string]any
		want string
	}{
		{"present", map[string]any{"profile": map[string]any{"userId": "u1"}}, "u1"},
		{"no profile", map[string]any{}, ""},
		{"profile not object", map[string]any{"profile": "x"}, ""},
		{"userId not string", map[string]any{"profile": map[string]any{"userId": float64(1)}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := contextProfileUserID(tt.ctx); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
