package game

import "math"

// FocusGridScore computes the score for one Focus Grid round.
//
//	base            = correctTaps * 15
//	completionBonus = 50 when the full sequence was reproduced
//	timeBonus       = secondsRemaining * 3
//	mistakePenalty  = mistakes * 10
//	levelBonus      = level * 10
//
// The raw sum is floored at zero, then scaled by the difficulty
// multiplier and rounded. Failed rounds still score with whatever taps
// were reached.
func FocusGridScore(correctTaps int, completed bool, secondsRemaining, mistakes, level int, multiplier float64) int {
	raw := correctTaps*15 + secondsRemaining*3 - mistakes*10 + level*10
	if completed {
		raw += 50
	}
	if raw < 0 {
		raw = 0
	}
	return int(math.Round(float64(raw) * multiplier))
}

// PlanSprintScore computes the score for one Plan Sprint commit from the
// average rule conformance in [0, 1].
//
//	accuracyPoints = round(average * 100)
//	timeBonus      = secondsRemaining * 2
//	levelBonus     = level * 15
//
// The sum is scaled by the difficulty multiplier and rounded.
func PlanSprintScore(average float64, secondsRemaining, level int, multiplier float64) int {
	accuracyPoints := int(math.Round(average * 100))
	return int(math.Round(float64(accuracyPoints+secondsRemaining*2+level*15) * multiplier))
}

// Pass thresholds for Plan Sprint rounds.
const (
	PassThreshold    = 0.5
	PerfectThreshold = 0.95
)
