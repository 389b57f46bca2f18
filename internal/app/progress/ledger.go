// Package progress implements the Ritual progress ledger: the single
// stateful core that turns finalized sessions into streaks, XP, heatmap
// entries, best scores, and badge unlocks. All mutations are serialized
// behind one mutex and persisted through the store gateway as a whole.
package progress

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/ritualforge/ritual/internal/domain"
	"github.com/ritualforge/ritual/internal/infra/catalog"
	"github.com/ritualforge/ritual/internal/infra/metrics"
	"github.com/ritualforge/ritual/internal/infra/store"
)

// Ledger owns the UserProgress aggregate and the badge states derived
// from it. Constructed once at the application root.
type Ledger struct {
	mu     sync.Mutex
	store  store.Gateway
	state  domain.UserProgress
	badges []domain.Badge
}

// NewLedger loads prior progress through the gateway, or starts from
// fresh defaults when none exists. Load failures beyond "not found" are
// also treated as a fresh start — a broken save must never take the
// process down.
func NewLedger(gw store.Gateway) (*Ledger, error) {
	l := &Ledger{store: gw}

	state, found, err := gw.Load()
	if err != nil || !found {
		state = domain.NewUserProgress()
	}
	normalizeState(&state)
	l.state = state
	l.rebuildBadges()
	l.syncGauges()
	return l, nil
}

// normalizeState backfills collections and derived fields that an older
// or hand-edited save may omit. A partial save degrades to partial
// state, never to a nil-map write.
func normalizeState(p *domain.UserProgress) {
	if p.WeeklyHeatmap == nil {
		p.WeeklyHeatmap = map[string]int{}
	}
	if p.DrillBestScores == nil {
		p.DrillBestScores = map[string]int{}
	}
	if p.DrillHistory == nil {
		p.DrillHistory = []domain.HistoryEntry{}
	}
	if p.UnlockedBadgeIDs == nil {
		p.UnlockedBadgeIDs = []string{}
	}
	if p.TutorialsSeen == nil {
		p.TutorialsSeen = []string{}
	}
	if p.SelectedTrackID == "" {
		p.SelectedTrackID = domain.TrackFocus
	}
	if lvl := p.RitualXP/domain.XPPerLevel + 1; p.RitualLevel < lvl {
		p.RitualLevel = lvl
	}
}

// rebuildBadges copies the catalog badge list and stamps entries the
// current state has unlocked. Persisted state carries ids only; the
// stamp time for pre-existing unlocks is load time, matching the
// original behavior of not persisting per-badge timestamps.
func (l *Ledger) rebuildBadges() {
	now := time.Now()
	l.badges = make([]domain.Badge, len(catalog.Badges))
	copy(l.badges, catalog.Badges)
	for i := range l.badges {
		if l.state.HasBadge(l.badges[i].ID) {
			t := now
			l.badges[i].UnlockedAt = &t
		}
	}
}

func (l *Ledger) syncGauges() {
	metrics.StreakDays.Set(float64(l.state.StreakDays))
	metrics.RitualLevel.Set(float64(l.state.RitualLevel))
}

// xpForCompletion computes earned XP: score and minutes weighted, scaled
// by difficulty, floored at 5.
func xpForCompletion(score, durationMinutes int, difficulty string) int {
	base := float64(score/10 + durationMinutes*2)

	factor := 1.0
	switch difficulty {
	case string(domain.DifficultyHard):
		factor = 1.5
	case string(domain.DifficultyMedium):
		factor = 1.2
	}

	xp := int(math.Round(base * factor))
	if xp < 5 {
		xp = 5
	}
	return xp
}

// RecordCompletion applies one finalized session to the ledger and
// returns any badges newly unlocked by it. The whole update — history,
// totals, best score, streak, heatmap, XP, badge evaluation, persistence
// — is one logical transaction.
func (l *Ledger) RecordCompletion(drillID string, score, durationMinutes int, difficulty string, levelReached int, wasPerfect bool) ([]domain.Badge, error) {
	return l.RecordCompletionAt(time.Now(), drillID, score, durationMinutes, difficulty, levelReached, wasPerfect)
}

// RecordCompletionAt is RecordCompletion with an injected clock for tests.
func (l *Ledger) RecordCompletionAt(now time.Time, drillID string, score, durationMinutes int, difficulty string, levelReached int, wasPerfect bool) ([]domain.Badge, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := domain.NewHistoryEntry(drillID, now, score, durationMinutes, difficulty, levelReached)
	l.state.DrillHistory = append(l.state.DrillHistory, entry)
	l.state.TotalDrills++
	l.state.TotalMinutes += durationMinutes

	// Best score must be current before badge evaluation so scoped
	// score badges see this completion.
	if best, ok := l.state.DrillBestScores[drillID]; !ok || score > best {
		l.state.DrillBestScores[drillID] = score
	}

	l.state.UpdateStreakAt(now)
	l.state.AddHeatmapMinutesAt(now, durationMinutes)

	xp := xpForCompletion(score, durationMinutes, difficulty)
	l.state.AddXP(xp)

	unlocked := l.evaluateBadgesAt(now, drillID, score, levelReached, wasPerfect)

	if gameType, ok := gameTypeOf(drillID); ok {
		metrics.DrillsCompleted.WithLabelValues(string(gameType)).Inc()
	}
	metrics.XPEarned.Add(float64(xp))
	metrics.MinutesTrained.Add(float64(durationMinutes))
	l.syncGauges()

	if err := l.store.Save(l.state); err != nil {
		return unlocked, fmt.Errorf("persist progress: %w", err)
	}
	return unlocked, nil
}

// evaluateBadgesAt checks every still-locked badge against the new state
// and unlocks those that qualify. Unlocks are permanent.
func (l *Ledger) evaluateBadgesAt(now time.Time, drillID string, score, levelReached int, wasPerfect bool) []domain.Badge {
	drill, drillKnown := catalog.DrillByID(drillID)

	var unlocked []domain.Badge
	for i := range l.badges {
		if l.badges[i].IsUnlocked() {
			continue
		}

		criteria := l.badges[i].Criteria
		earned := false

		switch criteria.Type {
		case domain.CriteriaCompleteDrills:
			earned = l.state.TotalDrills >= criteria.Value

		case domain.CriteriaStreakDays:
			earned = l.state.StreakDays >= criteria.Value

		case domain.CriteriaTotalMinutes:
			earned = l.state.TotalMinutes >= criteria.Value

		case domain.CriteriaScoreInDrill:
			if criteria.DrillID != "" {
				if drillID == criteria.DrillID && score >= criteria.Value {
					earned = true
				} else if best, ok := l.state.BestScore(criteria.DrillID); ok && best >= criteria.Value {
					earned = true
				}
			}

		case domain.CriteriaCompleteLevelInGame:
			earned = drillKnown && drill.GameType == criteria.GameType && levelReached >= criteria.Value

		case domain.CriteriaWeeklyDays:
			earned = l.state.DaysActiveThisWeekAt(now) >= criteria.Value

		case domain.CriteriaPerfectLevel:
			earned = wasPerfect

		case domain.CriteriaRitualLevel:
			earned = l.state.RitualLevel >= criteria.Value
		}

		if earned {
			t := now
			l.badges[i].UnlockedAt = &t
			l.state.UnlockedBadgeIDs = append(l.state.UnlockedBadgeIDs, l.badges[i].ID)
			metrics.BadgesUnlocked.WithLabelValues(string(l.badges[i].Rarity)).Inc()
			unlocked = append(unlocked, l.badges[i])
		}
	}
	return unlocked
}

// ResetProgress replaces the state with fresh defaults and re-locks all
// badges. Idempotent.
func (l *Ledger) ResetProgress() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.state = domain.NewUserProgress()
	l.badges = make([]domain.Badge, len(catalog.Badges))
	copy(l.badges, catalog.Badges)
	l.syncGauges()

	if err := l.store.Save(l.state); err != nil {
		return fmt.Errorf("persist reset: %w", err)
	}
	return nil
}

// SelectTrack changes the active track and persists.
func (l *Ledger) SelectTrack(id domain.TrackID) error {
	if _, ok := catalog.TrackByID(id); !ok {
		return domain.ErrTrackNotFound
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.state.SelectedTrackID = id
	if err := l.store.Save(l.state); err != nil {
		return fmt.Errorf("persist track: %w", err)
	}
	return nil
}

// CompleteOnboarding marks onboarding done and persists.
func (l *Ledger) CompleteOnboarding() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.state.HasCompletedOnboarding = true
	if err := l.store.Save(l.state); err != nil {
		return fmt.Errorf("persist onboarding: %w", err)
	}
	return nil
}

// MarkTutorialSeen records a tutorial id once and persists.
func (l *Ledger) MarkTutorialSeen(tutorialID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state.HasSeenTutorial(tutorialID) {
		return nil
	}
	l.state.TutorialsSeen = append(l.state.TutorialsSeen, tutorialID)
	if err := l.store.Save(l.state); err != nil {
		return fmt.Errorf("persist tutorial: %w", err)
	}
	return nil
}

// HasSeenTutorial reports whether the tutorial was marked seen.
func (l *Ledger) HasSeenTutorial(tutorialID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.HasSeenTutorial(tutorialID)
}

// Snapshot returns a deep copy of the current progress state.
func (l *Ledger) Snapshot() domain.UserProgress {
	l.mu.Lock()
	defer l.mu.Unlock()
	return copyProgress(l.state)
}

// BestScore returns the best recorded score for a drill.
func (l *Ledger) BestScore(drillID string) (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.BestScore(drillID)
}

// Badges returns the full badge list with unlock stamps.
func (l *Ledger) Badges() []domain.Badge {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.Badge, len(l.badges))
	copy(out, l.badges)
	return out
}

// UnlockedBadges returns earned badges only.
func (l *Ledger) UnlockedBadges() []domain.Badge {
	var out []domain.Badge
	for _, b := range l.Badges() {
		if b.IsUnlocked() {
			out = append(out, b)
		}
	}
	return out
}

// LockedBadges returns badges not yet earned.
func (l *Ledger) LockedBadges() []domain.Badge {
	var out []domain.Badge
	for _, b := range l.Badges() {
		if !b.IsUnlocked() {
			out = append(out, b)
		}
	}
	return out
}

// WeeklyTotal sums trained minutes over the trailing 7 days.
func (l *Ledger) WeeklyTotal() int {
	return l.WeeklyTotalAt(time.Now())
}

// WeeklyTotalAt is WeeklyTotal with an injected clock.
func (l *Ledger) WeeklyTotalAt(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.WeeklyTotalAt(now)
}

// DaysActiveThisWeek counts distinct active days in the trailing 7 days.
func (l *Ledger) DaysActiveThisWeek() int {
	return l.DaysActiveThisWeekAt(time.Now())
}

// DaysActiveThisWeekAt is DaysActiveThisWeek with an injected clock.
func (l *Ledger) DaysActiveThisWeekAt(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.DaysActiveThisWeekAt(now)
}

// CurrentTrack returns the selected track.
func (l *Ledger) CurrentTrack() (domain.Track, bool) {
	l.mu.Lock()
	id := l.state.SelectedTrackID
	l.mu.Unlock()
	return catalog.TrackByID(id)
}

// gameTypeOf resolves a drill id to its game type for metrics labels.
func gameTypeOf(drillID string) (domain.GameType, bool) {
	drill, ok := catalog.DrillByID(drillID)
	if !ok {
		return "", false
	}
	return drill.GameType, true
}

// copyProgress deep-copies the aggregate so callers can never alias the
// ledger's maps and slices.
func copyProgress(p domain.UserProgress) domain.UserProgress {
	out := p
	out.WeeklyHeatmap = make(map[string]int, len(p.WeeklyHeatmap))
	for k, v := range p.WeeklyHeatmap {
		out.WeeklyHeatmap[k] = v
	}
	out.DrillBestScores = make(map[string]int, len(p.DrillBestScores))
	for k, v := range p.DrillBestScores {
		out.DrillBestScores[k] = v
	}
	out.DrillHistory = append([]domain.HistoryEntry(nil), p.DrillHistory...)
	out.UnlockedBadgeIDs = append([]string(nil), p.UnlockedBadgeIDs...)
	out.TutorialsSeen = append([]string(nil), p.TutorialsSeen...)
	if p.LastCompletedDate != nil {
		t := *p.LastCompletedDate
		out.LastCompletedDate = &t
	}
	return out
}
