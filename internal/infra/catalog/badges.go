package catalog

import "github.com/ritualforge/ritual/internal/domain"

// Badges is the built-in badge catalog. UnlockedAt is nil for every entry
// here; the progress ledger stamps unlock times on its own copies.
var Badges = []domain.Badge{
	{
		ID:          "first_spark",
		Title:       "First Spark",
		Description: "Complete your first drill and begin your discipline journey",
		Icon:        "sparkle",
		Criteria:    domain.BadgeCriteria{Type: domain.CriteriaCompleteDrills, Value: 1},
		Rarity:      domain.RarityCommon,
	},
	{
		ID:          "two_day_temper",
		Title:       "Two-Day Temper",
		Description: "Maintain a 2-day practice streak",
		Icon:        "flame",
		Criteria:    domain.BadgeCriteria{Type: domain.CriteriaStreakDays, Value: 2},
		Rarity:      domain.RarityCommon,
	},
	{
		ID:          "seven_day_steel",
		Title:       "Seven-Day Steel",
		Description: "Maintain a 7-day practice streak",
		Icon:        "flame.fill",
		Criteria:    domain.BadgeCriteria{Type: domain.CriteriaStreakDays, Value: 7},
		Rarity:      domain.RarityRare,
	},
	{
		ID:          "fourteen_day_iron",
		Title:       "Fourteen-Day Iron",
		Description: "Maintain a 14-day practice streak",
		Icon:        "bolt.shield.fill",
		Criteria:    domain.BadgeCriteria{Type: domain.CriteriaStreakDays, Value: 14},
		Rarity:      domain.RarityEpic,
	},
	{
		ID:          "thirty_day_diamond",
		Title:       "Thirty-Day Diamond",
		Description: "Maintain a 30-day practice streak",
		Icon:        "crown.fill",
		Criteria:    domain.BadgeCriteria{Type: domain.CriteriaStreakDays, Value: 30},
		Rarity:      domain.RarityLegendary,
	},
	{
		ID:          "focused_hands",
		Title:       "Focused Hands",
		Description: "Score 80+ points in Focus Grid",
		Icon:        "hand.raised.fill",
		Criteria:    domain.BadgeCriteria{Type: domain.CriteriaScoreInDrill, Value: 80, DrillID: "focus_grid_basic"},
		Rarity:      domain.RarityUncommon,
	},
	{
		ID:          "eagle_eye",
		Title:       "Eagle Eye",
		Description: "Score 150+ points in Focus Grid Pro",
		Icon:        "eye.circle.fill",
		Criteria:    domain.BadgeCriteria{Type: domain.CriteriaScoreInDrill, Value: 150, DrillID: "focus_grid_advanced"},
		Rarity:      domain.RarityRare,
	},
	{
		ID:          "planners_pulse",
		Title:       "Planner's Pulse",
		Description: "Complete level 5 in Plan Sprint",
		Icon:        "heart.circle.fill",
		Criteria:    domain.BadgeCriteria{Type: domain.CriteriaCompleteLevelInGame, Value: 5, GameType: domain.GamePlanSprint},
		Rarity:      domain.RarityUncommon,
	},
	{
		ID:          "master_planner",
		Title:       "Master Planner",
		Description: "Complete level 10 in Plan Sprint",
		Icon:        "star.circle.fill",
		Criteria:    domain.BadgeCriteria{Type: domain.CriteriaCompleteLevelInGame, Value: 10, GameType: domain.GamePlanSprint},
		Rarity:      domain.RarityEpic,
	},
	{
		ID:          "consistency_core",
		Title:       "Consistency Core",
		Description: "Complete 20 drills total",
		Icon:        "arrow.triangle.2.circlepath",
		Criteria:    domain.BadgeCriteria{Type: domain.CriteriaCompleteDrills, Value: 20},
		Rarity:      domain.RarityUncommon,
	},
	{
		ID:          "drill_devotee",
		Title:       "Drill Devotee",
		Description: "Complete 50 drills total",
		Icon:        "arrow.triangle.2.circlepath.circle.fill",
		Criteria:    domain.BadgeCriteria{Type: domain.CriteriaCompleteDrills, Value: 50},
		Rarity:      domain.RarityRare,
	},
	{
		ID:          "heat_keeper",
		Title:       "Heat Keeper",
		Description: "Practice on 5 different days in a single week",
		Icon:        "thermometer.sun.fill",
		Criteria:    domain.BadgeCriteria{Type: domain.CriteriaWeeklyDays, Value: 5},
		Rarity:      domain.RarityUncommon,
	},
	{
		ID:          "perfect_week",
		Title:       "Perfect Week",
		Description: "Practice every day for a full week",
		Icon:        "checkmark.seal.fill",
		Criteria:    domain.BadgeCriteria{Type: domain.CriteriaWeeklyDays, Value: 7},
		Rarity:      domain.RarityRare,
	},
	{
		ID:          "calm_under_timer",
		Title:       "Calm Under Timer",
		Description: "Complete a timed level with zero mistakes",
		Icon:        "timer.circle.fill",
		Criteria:    domain.BadgeCriteria{Type: domain.CriteriaPerfectLevel, Value: 1},
		Rarity:      domain.RarityUncommon,
	},
	{
		ID:          "ritual_level_5",
		Title:       "Ritual Adept",
		Description: "Reach Ritual Level 5",
		Icon:        "5.circle.fill",
		Criteria:    domain.BadgeCriteria{Type: domain.CriteriaRitualLevel, Value: 5},
		Rarity:      domain.RarityUncommon,
	},
	{
		ID:          "ritual_level_10",
		Title:       "Ritual Master",
		Description: "Reach Ritual Level 10",
		Icon:        "10.circle.fill",
		Criteria:    domain.BadgeCriteria{Type: domain.CriteriaRitualLevel, Value: 10},
		Rarity:      domain.RarityRare,
	},
	{
		ID:          "hour_invested",
		Title:       "Hour Invested",
		Description: "Spend 60 minutes total in training",
		Icon:        "clock.fill",
		Criteria:    domain.BadgeCriteria{Type: domain.CriteriaTotalMinutes, Value: 60},
		Rarity:      domain.RarityUncommon,
	},
	{
		ID:          "time_master",
		Title:       "Time Master",
		Description: "Spend 300 minutes total in training",
		Icon:        "clock.badge.checkmark.fill",
		Criteria:    domain.BadgeCriteria{Type: domain.CriteriaTotalMinutes, Value: 300},
		Rarity:      domain.RarityEpic,
	},
}

// BadgeByID looks up a badge definition.
func BadgeByID(id string) (domain.Badge, bool) {
	for _, b := range Badges {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Badge{}, false
}
