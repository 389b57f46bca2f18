// Package metrics provides Prometheus metrics for Ritual: counters and
// gauges for completions, XP, badges, and streak state.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DrillsCompleted counts finalized sessions by game type.
var DrillsCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ritual",
	Name:      "drills_completed_total",
	Help:      "Total completed drills.",
}, []string{"game_type"})

// XPEarned counts ritual XP earned from completions.
var XPEarned = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "ritual",
	Name:      "xp_earned_total",
	Help:      "Total ritual XP earned.",
})

// BadgesUnlocked counts badge unlocks by rarity.
var BadgesUnlocked = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ritual",
	Name:      "badges_unlocked_total",
	Help:      "Total badges unlocked.",
}, []string{"rarity"})

// MinutesTrained counts training minutes recorded.
var MinutesTrained = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "ritual",
	Name:      "minutes_trained_total",
	Help:      "Total minutes of training recorded.",
})

// StreakDays tracks the current consecutive-day streak.
var StreakDays = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "ritual",
	Name:      "streak_days",
	Help:      "Current consecutive-day practice streak.",
})

// RitualLevel tracks the current ritual level.
var RitualLevel = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "ritual",
	Name:      "level",
	Help:      "Current ritual level.",
})
