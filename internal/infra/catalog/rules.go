package catalog

import "github.com/ritualforge/ritual/internal/domain"

// ruleDefs lists every ordering rule with the level it unlocks at. Order
// matters only for display; rule scores are averaged unordered.
var ruleDefs = []struct {
	minLevel int
	rule     domain.SprintRule
}{
	{1, domain.SprintRule{
		Kind:        domain.RuleQuickFirst,
		Title:       "Quick Wins First",
		Description: "Start with quick tasks to build momentum",
		Icon:        "bolt.fill",
	}},
	{3, domain.SprintRule{
		Kind:        domain.RulePrerequisites,
		Title:       "Follow Prerequisites",
		Description: "Complete required tasks before dependent ones",
		Icon:        "arrow.right.circle.fill",
	}},
	{5, domain.SprintRule{
		Kind:        domain.RuleEnergyCurve,
		Title:       "Energy Management",
		Description: "High energy tasks in the middle, low at ends",
		Icon:        "waveform.path.ecg",
	}},
	{7, domain.SprintRule{
		Kind:        domain.RuleGroupSimilar,
		Title:       "Group Similar",
		Description: "Keep same-category tasks together",
		Icon:        "square.stack.3d.up.fill",
	}},
}

// RulesForLevel returns the ordering rules active at a Plan Sprint level.
// The set only grows with level: quick wins always, prerequisites at 3,
// energy curve at 5, group similar at 7.
func RulesForLevel(level int) []domain.SprintRule {
	var rules []domain.SprintRule
	for _, def := range ruleDefs {
		if level >= def.minLevel {
			rules = append(rules, def.rule)
		}
	}
	return rules
}
