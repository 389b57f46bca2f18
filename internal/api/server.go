// Package api provides the local HTTP server for Ritual. It is the
// binding surface for an external presentation layer: one route per core
// operation, no gameplay logic of its own.
package api

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ritualforge/ritual/internal/app/game"
	"github.com/ritualforge/ritual/internal/app/plan"
	"github.com/ritualforge/ritual/internal/app/progress"
)

// session pairs a game session with the duration option it was started
// with, so finalize can default to it. The mutex serializes submits to
// the same session; game.Session itself is not safe for concurrent use.
type session struct {
	mu              sync.Mutex
	game            *game.Session
	durationMinutes int
	startedAt       time.Time
}

// Server is the Ritual HTTP API server.
type Server struct {
	ledger  *progress.Ledger
	planner *plan.Builder
	rng     *rand.Rand

	mu       sync.Mutex
	sessions map[string]*session
}

// NewServer creates a new API server. The random source seeds new game
// sessions.
func NewServer(ledger *progress.Ledger, planner *plan.Builder, rng *rand.Rand) *Server {
	return &Server{
		ledger:   ledger,
		planner:  planner,
		rng:      rng,
		sessions: make(map[string]*session),
	}
}

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/tracks", s.handleListTracks)
			r.Get("/drills", s.handleListDrills)
			r.Get("/drills/{drillID}", s.handleGetDrill)
			r.Get("/badges", s.handleListBadgeDefs)
			r.Get("/rules/{level}", s.handleRulesForLevel)
			r.Get("/tasks/{theme}", s.handleTaskPool)
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleStartSession)
			r.Get("/{sessionID}", s.handleGetSession)
			r.Post("/{sessionID}/taps", s.handleSubmitTaps)
			r.Post("/{sessionID}/order", s.handleSubmitOrder)
			r.Post("/{sessionID}/finalize", s.handleFinalize)
			r.Delete("/{sessionID}", s.handleAbandon)
		})

		r.Route("/plan", func(r chi.Router) {
			r.Get("/today", s.handleTodayPlan)
			r.Post("/complete", s.handlePlanComplete)
		})

		r.Route("/progress", func(r chi.Router) {
			r.Get("/", s.handleProgress)
			r.Delete("/", s.handleReset)
			r.Post("/completions", s.handleRecordCompletion)
			r.Get("/badges", s.handleBadges)
			r.Post("/track", s.handleSelectTrack)
			r.Post("/onboarding", s.handleCompleteOnboarding)
			r.Post("/tutorials", s.handleTutorialSeen)
		})
	})

	return r
}

// newSessionID issues a fresh session identifier.
func newSessionID() string {
	return uuid.NewString()
}

// getSession looks up an active session.
func (s *Server) getSession(id string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// putSession registers an active session.
func (s *Server) putSession(id string, sess *session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = sess
}

// dropSession removes a session; abandoning it discards round state
// without touching the ledger.
func (s *Server) dropSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
