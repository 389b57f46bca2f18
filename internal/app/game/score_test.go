package game_test

import (
	"testing"

	"github.com/ritualforge/ritual/internal/app/game"
)

func TestFocusGridScore(t *testing.T) {
	cases := []struct {
		name             string
		correct          int
		completed        bool
		secondsRemaining int
		mistakes         int
		level            int
		multiplier       float64
		want             int
	}{
		{"clean completion", 5, true, 10, 1, 3, 1.0, 175},
		{"hard tier scales", 5, true, 10, 1, 3, 2.0, 350},
		{"medium tier rounds", 5, true, 10, 1, 3, 1.5, 263},
		{"failed round keeps taps", 2, false, 0, 3, 1, 1.0, 10},
		{"floored at zero", 0, false, 0, 5, 1, 2.0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := game.FocusGridScore(c.correct, c.completed, c.secondsRemaining, c.mistakes, c.level, c.multiplier)
			if got != c.want {
				t.Errorf("expected %d, got %d", c.want, got)
			}
		})
	}
}

func TestPlanSprintScore(t *testing.T) {
	cases := []struct {
		name             string
		average          float64
		secondsRemaining int
		level            int
		multiplier       float64
		want             int
	}{
		{"perfect ordering", 1.0, 10, 2, 1.0, 150},
		{"half conformance", 0.5, 0, 1, 1.5, 98},
		{"zero conformance still earns level bonus", 0.0, 0, 4, 1.0, 60},
		{"hard tier", 0.8, 5, 3, 2.0, 270},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := game.PlanSprintScore(c.average, c.secondsRemaining, c.level, c.multiplier)
			if got != c.want {
				t.Errorf("expected %d, got %d", c.want, got)
			}
		})
	}
}
