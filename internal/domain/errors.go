package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency.

var (
	// Catalog errors
	ErrTrackNotFound = errors.New("track not found")
	ErrDrillNotFound = errors.New("drill not found")
	ErrBadgeNotFound = errors.New("badge not found")
	ErrNoTasks       = errors.New("no tasks available for theme")

	// Session errors
	ErrSessionOver        = errors.New("session already reached a terminal state")
	ErrRoundNotActive     = errors.New("no round in progress")
	ErrTapOutOfRange      = errors.New("tap index outside the grid")
	ErrUnknownTask        = errors.New("ordering references a task outside the round")
	ErrDifficultyMismatch = errors.New("drill does not offer the requested difficulty")
	ErrDurationMismatch   = errors.New("drill does not offer the requested duration")

	// Store errors
	ErrStoreClosed = errors.New("progress store is closed")
)
