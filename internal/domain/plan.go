package domain

import (
	"time"

	"github.com/google/uuid"
)

// PlanReason explains why a drill landed in today's plan.
type PlanReason string

const (
	ReasonRecommended PlanReason = "Recommended for your track"
	ReasonVariety     PlanReason = "Build variety"
	ReasonStreakSaver PlanReason = "Quick streak saver"
)

// PlannedDrill is one entry in a daily plan.
type PlannedDrill struct {
	ID          string     `json:"id"`
	Drill       Drill      `json:"drill"`
	Reason      PlanReason `json:"reason"`
	IsCompleted bool       `json:"is_completed"`
}

// NewPlannedDrill creates a plan entry with a fresh id.
func NewPlannedDrill(drill Drill, reason PlanReason, completed bool) PlannedDrill {
	return PlannedDrill{
		ID:          uuid.NewString(),
		Drill:       drill,
		Reason:      reason,
		IsCompleted: completed,
	}
}

// DailyPlan is one day's recommended drill set, up to 3 entries with no
// duplicate drill ids.
type DailyPlan struct {
	Date   time.Time      `json:"date"`
	Drills []PlannedDrill `json:"drills"`
}

// CompletedCount returns how many plan entries are done.
func (p DailyPlan) CompletedCount() int {
	n := 0
	for _, d := range p.Drills {
		if d.IsCompleted {
			n++
		}
	}
	return n
}

// CompletionPct returns the fraction of entries completed, 0 when empty.
func (p DailyPlan) CompletionPct() float64 {
	if len(p.Drills) == 0 {
		return 0
	}
	return float64(p.CompletedCount()) / float64(len(p.Drills))
}
