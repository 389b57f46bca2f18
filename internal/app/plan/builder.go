// Package plan derives the day's recommended drill set from the selected
// track and progress history.
package plan

import (
	"math/rand"
	"sync"
	"time"

	"github.com/ritualforge/ritual/internal/app/progress"
	"github.com/ritualforge/ritual/internal/domain"
	"github.com/ritualforge/ritual/internal/infra/catalog"
)

// streakSaverMinutes is the duration option a streak-saver drill must offer.
const streakSaverMinutes = 2

// Builder constructs and caches today's plan. The variety pick is the one
// random choice; its source is injected so tests can fix the seed.
type Builder struct {
	mu     sync.Mutex
	ledger *progress.Ledger
	rng    *rand.Rand
	plan   *domain.DailyPlan
}

// NewBuilder creates a plan builder over the ledger.
func NewBuilder(ledger *progress.Ledger, rng *rand.Rand) *Builder {
	return &Builder{ledger: ledger, rng: rng}
}

// Today returns the plan for the current day, generating it on first use
// and regenerating when the calendar day has rolled over.
func (b *Builder) Today() domain.DailyPlan {
	return b.TodayAt(time.Now())
}

// TodayAt is Today with an injected clock.
func (b *Builder) TodayAt(now time.Time) domain.DailyPlan {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.plan == nil || domain.DateKey(b.plan.Date) != domain.DateKey(now) {
		p := b.generateAt(now)
		b.plan = &p
	}
	return *b.plan
}

// Regenerate discards the cached plan and rebuilds it for now.
func (b *Builder) Regenerate() domain.DailyPlan {
	b.mu.Lock()
	b.plan = nil
	b.mu.Unlock()
	return b.Today()
}

// generateAt builds up to 3 entries, never duplicating a drill id:
// the selected track's first recommendation, one from a random other
// track for variety, and the first short drill as a streak saver.
func (b *Builder) generateAt(now time.Time) domain.DailyPlan {
	state := b.ledger.Snapshot()
	var drills []domain.PlannedDrill

	included := func(id string) bool {
		for _, d := range drills {
			if d.Drill.ID == id {
				return true
			}
		}
		return false
	}
	addDrill := func(drill domain.Drill, reason domain.PlanReason) {
		drills = append(drills, domain.NewPlannedDrill(
			drill, reason, state.CompletedTodayAt(drill.ID, now),
		))
	}

	// 1. Recommended drill from the selected track.
	if track, ok := catalog.TrackByID(state.SelectedTrackID); ok && len(track.RecommendedDrillIDs) > 0 {
		if drill, ok := catalog.DrillByID(track.RecommendedDrillIDs[0]); ok {
			addDrill(drill, domain.ReasonRecommended)
		}
	}

	// 2. Variety drill from a uniformly random other track.
	var otherTracks []domain.Track
	for _, t := range catalog.Tracks {
		if t.ID != state.SelectedTrackID {
			otherTracks = append(otherTracks, t)
		}
	}
	if len(otherTracks) > 0 {
		track := otherTracks[b.rng.Intn(len(otherTracks))]
		if len(track.RecommendedDrillIDs) > 0 {
			if drill, ok := catalog.DrillByID(track.RecommendedDrillIDs[0]); ok && !included(drill.ID) {
				addDrill(drill, domain.ReasonVariety)
			}
		}
	}

	// 3. Streak saver: first catalog drill with a 2-minute option.
	for _, drill := range catalog.Drills {
		if drill.SupportsDuration(streakSaverMinutes) && !included(drill.ID) {
			addDrill(drill, domain.ReasonStreakSaver)
			break
		}
	}

	return domain.DailyPlan{Date: now, Drills: drills}
}

// MarkCompleted flips the completed flag on the matching plan entry in
// place. Entries are never removed or reordered.
func (b *Builder) MarkCompleted(drillID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.plan == nil {
		return
	}
	for i := range b.plan.Drills {
		if b.plan.Drills[i].Drill.ID == drillID {
			b.plan.Drills[i].IsCompleted = true
		}
	}
}
