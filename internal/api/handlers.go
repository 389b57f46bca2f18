package api

import (
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ritualforge/ritual/internal/app/game"
	"github.com/ritualforge/ritual/internal/domain"
	"github.com/ritualforge/ritual/internal/infra/catalog"
)

// ─── Catalog ────────────────────────────────────────────────────────────────

func (s *Server) handleListTracks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"tracks": catalog.Tracks})
}

func (s *Server) handleListDrills(w http.ResponseWriter, r *http.Request) {
	drills := catalog.Drills
	if track := r.URL.Query().Get("track"); track != "" {
		drills = catalog.DrillsForTrack(domain.TrackID(track))
	}
	if q := r.URL.Query().Get("duration"); q != "" {
		minutes, err := strconv.Atoi(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid duration")
			return
		}
		var filtered []domain.Drill
		for _, d := range drills {
			if d.SupportsDuration(minutes) {
				filtered = append(filtered, d)
			}
		}
		drills = filtered
	}
	// An empty result is a valid answer, not an error.
	writeJSON(w, http.StatusOK, map[string]any{"drills": drills})
}

func (s *Server) handleGetDrill(w http.ResponseWriter, r *http.Request) {
	drill, ok := catalog.DrillByID(chi.URLParam(r, "drillID"))
	if !ok {
		writeError(w, http.StatusNotFound, domain.ErrDrillNotFound.Error())
		return
	}
	writeJSON(w, http.StatusOK, drill)
}

func (s *Server) handleListBadgeDefs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"badges": catalog.Badges})
}

func (s *Server) handleRulesForLevel(w http.ResponseWriter, r *http.Request) {
	level, err := strconv.Atoi(chi.URLParam(r, "level"))
	if err != nil || level < 1 {
		writeError(w, http.StatusBadRequest, "invalid level")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"rules": catalog.RulesForLevel(level)})
}

func (s *Server) handleTaskPool(w http.ResponseWriter, r *http.Request) {
	theme := domain.TaskTheme(chi.URLParam(r, "theme"))
	if _, ok := catalog.TaskPools[theme]; !ok {
		writeError(w, http.StatusNotFound, domain.ErrNoTasks.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tasks": catalog.TaskPools[theme]})
}

// ─── Sessions ───────────────────────────────────────────────────────────────

type startSessionRequest struct {
	DrillID         string `json:"drill_id"`
	Difficulty      string `json:"difficulty"`
	DurationMinutes int    `json:"duration_minutes"`
}

type sessionResponse struct {
	SessionID   string            `json:"session_id"`
	DrillID     string            `json:"drill_id"`
	Difficulty  string            `json:"difficulty"`
	Level       int               `json:"level"`
	TotalScore  int               `json:"total_score"`
	State       game.State        `json:"state"`
	FocusRound  *game.FocusRound  `json:"focus_round,omitempty"`
	SprintRound *game.SprintRound `json:"sprint_round,omitempty"`
}

func sessionToResponse(id string, sess *session) sessionResponse {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	g := sess.game
	return sessionResponse{
		SessionID:   id,
		DrillID:     g.Drill().ID,
		Difficulty:  string(g.Difficulty()),
		Level:       g.Level(),
		TotalScore:  g.TotalScore(),
		State:       g.State(),
		FocusRound:  g.FocusRound(),
		SprintRound: g.SprintRound(),
	}
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	drill, ok := catalog.DrillByID(req.DrillID)
	if !ok {
		writeError(w, http.StatusNotFound, domain.ErrDrillNotFound.Error())
		return
	}
	if req.DurationMinutes != 0 && !drill.SupportsDuration(req.DurationMinutes) {
		writeError(w, http.StatusBadRequest, domain.ErrDurationMismatch.Error())
		return
	}
	difficulty, ok := domain.ParseDifficulty(req.Difficulty)
	if !ok {
		writeError(w, http.StatusBadRequest, domain.ErrDifficultyMismatch.Error())
		return
	}

	// Each session gets its own stream seeded from the server source so
	// concurrent sessions do not interleave draws.
	rng := rand.New(rand.NewSource(s.rng.Int63()))
	g, err := game.NewSession(drill, difficulty, rng)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id := newSessionID()
	sess := &session{game: g, durationMinutes: req.DurationMinutes, startedAt: time.Now()}
	s.putSession(id, sess)

	writeJSON(w, http.StatusCreated, sessionToResponse(id, sess))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	sess, ok := s.getSession(id)
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	writeJSON(w, http.StatusOK, sessionToResponse(id, sess))
}

type submitTapsRequest struct {
	Taps           []int `json:"taps"`
	ElapsedSeconds int   `json:"elapsed_seconds"`
}

func (s *Server) handleSubmitTaps(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	sess, ok := s.getSession(id)
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	var req submitTapsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess.mu.Lock()
	result, err := sess.game.SubmitFocusTaps(req.Taps, req.ElapsedSeconds)
	sess.mu.Unlock()
	if err != nil {
		writeError(w, submitStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type submitOrderRequest struct {
	OrderedTaskIDs []string `json:"ordered_task_ids"`
	ElapsedSeconds int      `json:"elapsed_seconds"`
}

func (s *Server) handleSubmitOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	sess, ok := s.getSession(id)
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	var req submitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess.mu.Lock()
	result, err := sess.game.SubmitSprintOrder(req.OrderedTaskIDs, req.ElapsedSeconds)
	sess.mu.Unlock()
	if err != nil {
		writeError(w, submitStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func submitStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrSessionOver), errors.Is(err, domain.ErrRoundNotActive):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

type finalizeRequest struct {
	DurationMinutes int `json:"duration_minutes"`
}

type finalizeResponse struct {
	Summary        game.Summary   `json:"summary"`
	XPBefore       int            `json:"xp_before"`
	XPAfter        int            `json:"xp_after"`
	UnlockedBadges []domain.Badge `json:"unlocked_badges"`
}

func (s *Server) handleFinalize(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	sess, ok := s.getSession(id)
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	var req finalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	duration := req.DurationMinutes
	if duration == 0 {
		duration = sess.durationMinutes
	}

	sess.mu.Lock()
	summary := sess.game.Summary()
	sess.mu.Unlock()
	before := s.ledger.Snapshot().RitualXP

	unlocked, err := s.ledger.RecordCompletion(
		summary.DrillID, summary.TotalScore, duration,
		summary.Difficulty, summary.LevelReached, summary.WasPerfect,
	)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.dropSession(id)
	s.planner.MarkCompleted(summary.DrillID)

	if unlocked == nil {
		unlocked = []domain.Badge{}
	}
	writeJSON(w, http.StatusOK, finalizeResponse{
		Summary:        summary,
		XPBefore:       before,
		XPAfter:        s.ledger.Snapshot().RitualXP,
		UnlockedBadges: unlocked,
	})
}

func (s *Server) handleAbandon(w http.ResponseWriter, r *http.Request) {
	s.dropSession(chi.URLParam(r, "sessionID"))
	w.WriteHeader(http.StatusNoContent)
}

// ─── Daily Plan ─────────────────────────────────────────────────────────────

func (s *Server) handleTodayPlan(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.planner.Today())
}

type planCompleteRequest struct {
	DrillID string `json:"drill_id"`
}

func (s *Server) handlePlanComplete(w http.ResponseWriter, r *http.Request) {
	var req planCompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.planner.MarkCompleted(req.DrillID)
	writeJSON(w, http.StatusOK, s.planner.Today())
}

// ─── Progress ───────────────────────────────────────────────────────────────

type progressResponse struct {
	Progress           domain.UserProgress `json:"progress"`
	WeeklyTotal        int                 `json:"weekly_total"`
	DaysActiveThisWeek int                 `json:"days_active_this_week"`
	XPToNextLevel      int                 `json:"xp_to_next_level"`
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	snapshot := s.ledger.Snapshot()
	writeJSON(w, http.StatusOK, progressResponse{
		Progress:           snapshot,
		WeeklyTotal:        s.ledger.WeeklyTotal(),
		DaysActiveThisWeek: s.ledger.DaysActiveThisWeek(),
		XPToNextLevel:      snapshot.XPToNextLevel(),
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := s.ledger.ResetProgress(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.planner.Regenerate()
	w.WriteHeader(http.StatusNoContent)
}

type recordCompletionRequest struct {
	DrillID         string `json:"drill_id"`
	Score           int    `json:"score"`
	DurationMinutes int    `json:"duration_minutes"`
	Difficulty      string `json:"difficulty"`
	LevelReached    int    `json:"level_reached"`
	WasPerfect      bool   `json:"was_perfect"`
}

func (s *Server) handleRecordCompletion(w http.ResponseWriter, r *http.Request) {
	var req recordCompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, ok := catalog.DrillByID(req.DrillID); !ok {
		writeError(w, http.StatusNotFound, domain.ErrDrillNotFound.Error())
		return
	}

	unlocked, err := s.ledger.RecordCompletion(
		req.DrillID, req.Score, req.DurationMinutes,
		req.Difficulty, req.LevelReached, req.WasPerfect,
	)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.planner.MarkCompleted(req.DrillID)

	if unlocked == nil {
		unlocked = []domain.Badge{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"unlocked_badges": unlocked})
}

func (s *Server) handleBadges(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"unlocked": s.ledger.UnlockedBadges(),
		"locked":   s.ledger.LockedBadges(),
	})
}

type selectTrackRequest struct {
	TrackID string `json:"track_id"`
}

func (s *Server) handleSelectTrack(w http.ResponseWriter, r *http.Request) {
	var req selectTrackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.ledger.SelectTrack(domain.TrackID(req.TrackID)); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	s.planner.Regenerate()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	if err := s.ledger.CompleteOnboarding(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type tutorialSeenRequest struct {
	TutorialID string `json:"tutorial_id"`
}

func (s *Server) handleTutorialSeen(w http.ResponseWriter, r *http.Request) {
	var req tutorialSeenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.ledger.MarkTutorialSeen(req.TutorialID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
