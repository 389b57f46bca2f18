package domain

import "time"

// BadgeRarity orders badges from common to legendary.
type BadgeRarity string

const (
	RarityCommon    BadgeRarity = "common"
	RarityUncommon  BadgeRarity = "uncommon"
	RarityRare      BadgeRarity = "rare"
	RarityEpic      BadgeRarity = "epic"
	RarityLegendary BadgeRarity = "legendary"
)

// Rank returns the rarity's position in the common<...<legendary order.
func (r BadgeRarity) Rank() int {
	switch r {
	case RarityUncommon:
		return 1
	case RarityRare:
		return 2
	case RarityEpic:
		return 3
	case RarityLegendary:
		return 4
	default:
		return 0
	}
}

// BadgeCriteriaType selects which progress stat a badge checks.
type BadgeCriteriaType string

const (
	CriteriaCompleteDrills      BadgeCriteriaType = "completeDrills"
	CriteriaStreakDays          BadgeCriteriaType = "streakDays"
	CriteriaTotalMinutes        BadgeCriteriaType = "totalMinutes"
	CriteriaScoreInDrill        BadgeCriteriaType = "scoreInDrill"
	CriteriaCompleteLevelInGame BadgeCriteriaType = "completeLevelInGame"
	CriteriaWeeklyDays          BadgeCriteriaType = "weeklyDays"
	CriteriaPerfectLevel        BadgeCriteriaType = "perfectLevel"
	CriteriaRitualLevel         BadgeCriteriaType = "ritualLevel"
)

// BadgeCriteria is a badge's unlock condition: a type, an integer
// threshold, and optional scoping to a drill or game type.
type BadgeCriteria struct {
	Type     BadgeCriteriaType `json:"type"`
	Value    int               `json:"value"`
	DrillID  string            `json:"drill_id,omitempty"`
	GameType GameType          `json:"game_type,omitempty"`
}

// Badge is an achievement unlocked permanently once its criteria are met.
// UnlockedAt is nil until earned; once set it is never cleared.
type Badge struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	Criteria    BadgeCriteria `json:"criteria"`
	Rarity      BadgeRarity   `json:"rarity"`
	UnlockedAt  *time.Time    `json:"unlocked_at,omitempty"`
}

// IsUnlocked reports whether the badge has been earned.
func (b Badge) IsUnlocked() bool {
	return b.UnlockedAt != nil
}
