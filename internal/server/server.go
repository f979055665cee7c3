package server

import (
	"log/slog"
	"net/http"

	"github.com/SkillMax00/SkillMax/internal/genai"
	"github.com/SkillMax00/SkillMax/internal/storage"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	gen      *genai.Client
	db       *storage.DB // nil when no database is configured
	verifier TokenVerifier
	log      *slog.Logger
	router   chi.Router
}

// New creates a new Server with all routes configured.
func New(gen *genai.Client, db *storage.DB, verifier TokenVerifier, log *slog.Logger) *Server {
	s := &Server{
		gen:      gen,
		db:       db,
		verifier: verifier,
		log:      log,
		router:   chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Get("/api/v1/healthz", s.handleHealthz)

	// Generation endpoints (bearer token required)
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Use(BearerAuth(s.verifier))
		r.Post("/plan/generate", s.handleGeneratePlan)
		r.Post("/coach/chat", s.handleCoachChat)
		r.Get("/generations", s.handleRecentGenerations)
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
