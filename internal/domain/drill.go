package domain

// GameType tags which mini-game a drill plays.
type GameType string

const (
	GameFocusGrid  GameType = "focusGrid"
	GamePlanSprint GameType = "planSprint"
)

// DifficultyLevel is one of the three fixed difficulty tiers.
// Each tier carries its own tuning constants. Harder tiers never allow
// more mistakes and never have a lower score multiplier.
type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "Easy"
	DifficultyMedium DifficultyLevel = "Medium"
	DifficultyHard   DifficultyLevel = "Hard"
)

// AllDifficulties lists tiers from easiest to hardest.
func AllDifficulties() []DifficultyLevel {
	return []DifficultyLevel{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty resolves a tier name case-insensitively. The second
// return is false for anything that is not a known tier.
func ParseDifficulty(s string) (DifficultyLevel, bool) {
	switch s {
	case "easy", "Easy":
		return DifficultyEasy, true
	case "medium", "Medium":
		return DifficultyMedium, true
	case "hard", "Hard":
		return DifficultyHard, true
	default:
		return "", false
	}
}

// BaseGridSize is the Focus Grid starting grid side length for this tier.
func (d DifficultyLevel) BaseGridSize() int {
	switch d {
	case DifficultyMedium:
		return 5
	case DifficultyHard:
		return 6
	default:
		return 4
	}
}

// SequenceRange returns the min and max base sequence length for this tier.
func (d DifficultyLevel) SequenceRange() (min, max int) {
	switch d {
	case DifficultyMedium:
		return 4, 5
	case DifficultyHard:
		return 5, 6
	default:
		return 3, 4
	}
}

// PreviewSeconds is how long each tile stays lit during the preview.
func (d DifficultyLevel) PreviewSeconds() float64 {
	switch d {
	case DifficultyMedium:
		return 0.45
	case DifficultyHard:
		return 0.3
	default:
		return 0.6
	}
}

// BaseTimeLimit is the Focus Grid base time budget in seconds.
func (d DifficultyLevel) BaseTimeLimit() int {
	switch d {
	case DifficultyMedium:
		return 15
	case DifficultyHard:
		return 12
	default:
		return 20
	}
}

// AllowedMistakes is how many wrong taps the tier tolerates.
func (d DifficultyLevel) AllowedMistakes() int {
	switch d {
	case DifficultyMedium:
		return 1
	case DifficultyHard:
		return 0
	default:
		return 2
	}
}

// ScoreMultiplier scales round scores for this tier.
func (d DifficultyLevel) ScoreMultiplier() float64 {
	switch d {
	case DifficultyMedium:
		return 1.5
	case DifficultyHard:
		return 2.0
	default:
		return 1.0
	}
}

// DrillLevel is one precomputed level of a drill. Generated once at
// catalog-build time, never mutated. Numbers are 1-based and contiguous.
type DrillLevel struct {
	Number               int     `json:"number"`
	Target               int     `json:"target"`
	TimeLimit            int     `json:"time_limit"`
	AllowedMistakes      int     `json:"allowed_mistakes"`
	DifficultyMultiplier float64 `json:"difficulty_multiplier"`
	SequenceLength       int     `json:"sequence_length"`
	GridSize             int     `json:"grid_size"`
}

// Drill is a playable mini-game configuration. Immutable, defined in the
// catalog.
type Drill struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	TrackID          TrackID           `json:"track_id"`
	GameType         GameType          `json:"game_type"`
	DurationOptions  []int             `json:"duration_options"` // minutes
	DifficultyLevels []DifficultyLevel `json:"difficulty_levels"`
	ShortDescription string            `json:"short_description"`
	LongDescription  string            `json:"long_description"`
	HowItHelps       []string          `json:"how_it_helps"`
	Levels           []DrillLevel      `json:"levels"`
	Icon             string            `json:"icon"`
}

// MaxLevel is the number of precomputed levels (fixed at 10 for all drills).
func (d Drill) MaxLevel() int {
	return len(d.Levels)
}

// SupportsDuration reports whether the drill offers the given minute option.
func (d Drill) SupportsDuration(minutes int) bool {
	for _, m := range d.DurationOptions {
		if m == minutes {
			return true
		}
	}
	return false
}

// SupportsDifficulty reports whether the drill offers the given tier.
func (d Drill) SupportsDifficulty(tier DifficultyLevel) bool {
	for _, t := range d.DifficultyLevels {
		if t == tier {
			return true
		}
	}
	return false
}
