package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

type contextKey int

const userIDKey contextKey = iota

// TokenVerifier resolves a bearer token to a verified user identifier.
// The shipped implementation is a static token map; a real identity
// provider plugs in behind the same interface.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// StaticTokens verifies against a fixed token-to-user map from config.
type StaticTokens map[string]string

var errUnknownToken = errors.New("unknown token")

// Verify implements TokenVerifier.
func (t StaticTokens) Verify(_ context.Context, token string) (string, error) {
	uid, ok := t[token]
	if !ok {
		return "", errUnknownToken
	}
	return uid, nil
}

// BearerAuth returns middleware that extracts and verifies the
// Authorization bearer token, storing the verified user id in the
// request context.
func BearerAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				http.Error(w, `{"error":"Missing bearer token"}`, http.StatusUnauthorized)
				return
			}
			uid, err := verifier.Verify(r.Context(), token)
			if err != nil {
				http.Error(w, `{"error":"Invalid bearer token"}`, http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, uid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// userIDFromContext returns the verified user id set by BearerAuth.
func userIDFromContext(r *http.Request) string {
	if uid, ok := r.Context().Value(userIDKey).(string); ok {
		return uid
	}
	return ""
}

// RequestLogging returns middleware that logs each request.
func RequestLogging(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration", time.Since(start).String(),
			)
		})
	}
}

// CORS adds permissive CORS headers; the original deployment allowed
// any origin.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusWriter wraps ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
