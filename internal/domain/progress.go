package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateKeyLayout formats heatmap keys: textual, sortable, unambiguous.
const DateKeyLayout = "2006-01-02"

// XPPerLevel is the flat XP cost of each ritual level.
const XPPerLevel = 100

// DateKey returns the heatmap key for the given time in its location.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// startOfDay truncates a time to local midnight.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// HistoryEntry is one completed drill in the append-only history log.
type HistoryEntry struct {
	ID          string    `json:"id"`
	DrillID     string    `json:"drill_id"`
	CompletedAt time.Time `json:"completed_at"`
	Score       int       `json:"score"`
	Duration    int       `json:"duration"` // minutes
	Difficulty  string    `json:"difficulty"`
	LevelReached int      `json:"level_reached"`
}

// NewHistoryEntry creates a history entry stamped at the given time.
func NewHistoryEntry(drillID string, at time.Time, score, duration int, difficulty string, levelReached int) HistoryEntry {
	return HistoryEntry{
		ID:           uuid.NewString(),
		DrillID:      drillID,
		CompletedAt:  at,
		Score:        score,
		Duration:     duration,
		Difficulty:   difficulty,
		LevelReached: levelReached,
	}
}

// UserProgress is the persistent aggregate root. It is mutated exclusively
// by the progress ledger and persisted after every mutation.
//
// Invariants:
//   - RitualLevel == RitualXP/XPPerLevel + 1
//   - DrillBestScores[d] is the maximum score ever recorded for d
//   - UnlockedBadgeIDs only grows
//   - BestStreak >= StreakDays after every update
type UserProgress struct {
	SelectedTrackID        TrackID           `json:"selected_track_id"`
	StreakDays             int               `json:"streak_days"`
	LastCompletedDate      *time.Time        `json:"last_completed_date,omitempty"`
	TotalMinutes           int               `json:"total_minutes"`
	TotalDrills            int               `json:"total_drills"`
	BestStreak             int               `json:"best_streak"`
	WeeklyHeatmap          map[string]int    `json:"weekly_heatmap"`
	DrillHistory           []HistoryEntry    `json:"drill_history"`
	DrillBestScores        map[string]int    `json:"drill_best_scores"`
	UnlockedBadgeIDs       []string          `json:"unlocked_badge_ids"`
	RitualLevel            int               `json:"ritual_level"`
	RitualXP               int               `json:"ritual_xp"`
	HasCompletedOnboarding bool              `json:"has_completed_onboarding"`
	TutorialsSeen          []string          `json:"tutorials_seen"`
}

// NewUserProgress returns the fresh-default progress state.
func NewUserProgress() UserProgress {
	return UserProgress{
		SelectedTrackID: TrackFocus,
		WeeklyHeatmap:   map[string]int{},
		DrillHistory:    []HistoryEntry{},
		DrillBestScores: map[string]int{},
		UnlockedBadgeIDs: []string{},
		RitualLevel:     1,
		RitualXP:        0,
		TutorialsSeen:   []string{},
	}
}

// AddXP adds earned XP and recomputes the ritual level.
func (p *UserProgress) AddXP(amount int) {
	p.RitualXP += amount
	if newLevel := p.RitualXP/XPPerLevel + 1; newLevel > p.RitualLevel {
		p.RitualLevel = newLevel
	}
}

// XPToNextLevel returns XP remaining until the next ritual level.
func (p UserProgress) XPToNextLevel() int {
	return XPPerLevel - p.RitualXP%XPPerLevel
}

// LevelProgress returns progress through the current level in [0, 1).
func (p UserProgress) LevelProgress() float64 {
	return float64(p.RitualXP%XPPerLevel) / float64(XPPerLevel)
}

// UpdateStreakAt applies the streak rules for a completion happening now:
// same calendar day leaves the streak unchanged, a 1-day gap extends it,
// anything longer resets it to 1.
func (p *UserProgress) UpdateStreakAt(now time.Time) {
	today := startOfDay(now)

	if p.LastCompletedDate != nil {
		// Compare calendar days, not elapsed hours: a DST-shortened day
		// is still one day.
		lastDay := startOfDay(*p.LastCompletedDate)
		switch {
		case today.Equal(lastDay):
			return
		case today.Equal(lastDay.AddDate(0, 0, 1)):
			p.StreakDays++
		default:
			p.StreakDays = 1
		}
	} else {
		p.StreakDays = 1
	}

	p.LastCompletedDate = &now
	if p.StreakDays > p.BestStreak {
		p.BestStreak = p.StreakDays
	}
}

// AddHeatmapMinutesAt adds minutes to the day bucket for now.
func (p *UserProgress) AddHeatmapMinutesAt(now time.Time, minutes int) {
	if p.WeeklyHeatmap == nil {
		p.WeeklyHeatmap = map[string]int{}
	}
	p.WeeklyHeatmap[DateKey(now)] += minutes
}

// HeatmapValue returns the minutes recorded for the given day.
func (p UserProgress) HeatmapValue(day time.Time) int {
	return p.WeeklyHeatmap[DateKey(day)]
}

// WeeklyTotalAt sums minutes over the trailing 7-day window, now inclusive.
func (p UserProgress) WeeklyTotalAt(now time.Time) int {
	today := startOfDay(now)
	total := 0
	for i := 0; i < 7; i++ {
		total += p.HeatmapValue(today.AddDate(0, 0, -i))
	}
	return total
}

// DaysActiveThisWeekAt counts distinct active days in the trailing 7-day
// window, now inclusive.
func (p UserProgress) DaysActiveThisWeekAt(now time.Time) int {
	today := startOfDay(now)
	count := 0
	for i := 0; i < 7; i++ {
		if p.HeatmapValue(today.AddDate(0, 0, -i)) > 0 {
			count++
		}
	}
	return count
}

// BestScore returns the best recorded score for a drill, if any.
func (p UserProgress) BestScore(drillID string) (int, bool) {
	score, ok := p.DrillBestScores[drillID]
	return score, ok
}

// HasBadge reports whether the badge id has been unlocked.
func (p UserProgress) HasBadge(badgeID string) bool {
	for _, id := range p.UnlockedBadgeIDs {
		if id == badgeID {
			return true
		}
	}
	return false
}

// HasSeenTutorial reports whether the tutorial id was marked seen.
func (p UserProgress) HasSeenTutorial(tutorialID string) bool {
	for _, id := range p.TutorialsSeen {
		if id == tutorialID {
			return true
		}
	}
	return false
}

// CompletedTodayAt reports whether the history holds a completion of the
// drill on the same calendar day as now.
func (p UserProgress) CompletedTodayAt(drillID string, now time.Time) bool {
	today := startOfDay(now)
	for _, e := range p.DrillHistory {
		if e.DrillID == drillID && startOfDay(e.CompletedAt).Equal(today) {
			return true
		}
	}
	return false
}
