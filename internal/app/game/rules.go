// Package game implements the Ritual gameplay core: ordering-rule
// evaluation, round scoring, and the session state machine for both
// mini-games. Everything here is synchronous and deterministic apart from
// the injected random source.
package game

import "github.com/ritualforge/ritual/internal/domain"

// EvaluateRule scores a committed task ordering against one rule kind,
// returning a conformance fraction in [0, 1]. Unknown kinds score 1.0 so a
// stale rule set can never fail a round on its own.
func EvaluateRule(kind domain.RuleKind, tasks []domain.SprintTask) float64 {
	switch kind {
	case domain.RuleQuickFirst:
		return scoreQuickFirst(tasks)
	case domain.RulePrerequisites:
		return scorePrerequisites(tasks)
	case domain.RuleEnergyCurve:
		return scoreEnergyCurve(tasks)
	case domain.RuleGroupSimilar:
		return scoreGroupSimilar(tasks)
	default:
		return 1.0
	}
}

// EvaluateAll scores every rule and returns the per-rule results plus the
// arithmetic mean. An empty rule set averages to 1.0.
func EvaluateAll(rules []domain.SprintRule, tasks []domain.SprintTask) ([]domain.RuleScore, float64) {
	if len(rules) == 0 {
		return nil, 1.0
	}

	results := make([]domain.RuleScore, 0, len(rules))
	total := 0.0
	for _, rule := range rules {
		score := EvaluateRule(rule.Kind, tasks)
		results = append(results, domain.RuleScore{Rule: rule, Score: score})
		total += score
	}
	return results, total / float64(len(rules))
}

// scoreQuickFirst rewards quick-duration tasks in the first third of the
// ordering (always at least one element).
func scoreQuickFirst(tasks []domain.SprintTask) float64 {
	if len(tasks) < 2 {
		return 1.0
	}
	firstThird := tasks[:len(tasks)/3+1]
	quick := 0
	for _, t := range firstThird {
		if t.Duration == domain.DurationQuick {
			quick++
		}
	}
	return float64(quick) / float64(len(firstThird))
}

// scorePrerequisites counts prerequisite references that appear after the
// task depending on them.
func scorePrerequisites(tasks []domain.SprintTask) float64 {
	completed := make(map[string]bool, len(tasks))
	violations := 0
	totalRefs := 0
	for _, t := range tasks {
		totalRefs += len(t.Prerequisites)
		for _, prereq := range t.Prerequisites {
			if !completed[prereq] {
				violations++
			}
		}
		completed[t.ID] = true
	}
	if totalRefs == 0 {
		return 1.0
	}
	return clamp01(1.0 - float64(violations)/float64(totalRefs))
}

// scoreEnergyCurve rewards placing high-energy tasks in the middle third.
func scoreEnergyCurve(tasks []domain.SprintTask) float64 {
	n := len(tasks)
	if n < 4 {
		return 1.0
	}

	totalHigh := 0
	for _, t := range tasks {
		if t.EnergyLevel == domain.EnergyHigh {
			totalHigh++
		}
	}
	if totalHigh == 0 {
		return 1.0
	}

	highInMiddle := 0
	for _, t := range tasks[n/3 : n*2/3] {
		if t.EnergyLevel == domain.EnergyHigh {
			highInMiddle++
		}
	}
	return float64(highInMiddle) / float64(totalHigh)
}

// scoreGroupSimilar penalizes category switches between adjacent tasks
// beyond the minimum the distinct categories force.
func scoreGroupSimilar(tasks []domain.SprintTask) float64 {
	n := len(tasks)
	if n < 3 {
		return 1.0
	}

	switches := 0
	categories := map[domain.TaskCategory]bool{tasks[0].Category: true}
	for i := 1; i < n; i++ {
		categories[tasks[i].Category] = true
		if tasks[i].Category != tasks[i-1].Category {
			switches++
		}
	}

	minSwitches := len(categories) - 1
	maxSwitches := n - 1
	if maxSwitches == minSwitches {
		return 1.0
	}
	return clamp01(1.0 - float64(switches-minSwitches)/float64(maxSwitches-minSwitches))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
