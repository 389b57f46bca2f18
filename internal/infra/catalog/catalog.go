// Package catalog holds the built-in Ritual content: tracks, drills,
// badges, Plan Sprint task pools, and the ordering rule sets. Everything
// here is static, built once at startup, and validated fail-fast — the
// catalog is compiled-in, so a malformed entry is a programming error.
package catalog

import (
	"fmt"

	"github.com/ritualforge/ritual/internal/domain"
)

// Tracks is the built-in list of training tracks.
var Tracks = []domain.Track{
	{
		ID:                  domain.TrackFocus,
		Title:               "Focus",
		Subtitle:            "Attention & Impulse Control",
		Description:         "Train your ability to concentrate, resist distractions, and maintain deep focus for longer periods. Perfect for improving work sessions and reducing scattered thinking.",
		Icon:                "eye.fill",
		AccentColorName:     "AccentA",
		SecondaryAccentName: "AccentB",
		RecommendedDrillIDs: []string{"focus_grid_basic", "focus_grid_advanced"},
	},
	{
		ID:                  domain.TrackBody,
		Title:               "Body",
		Subtitle:            "Physical Discipline & Energy",
		Description:         "Build habits around movement, posture, and physical awareness. These drills help you stay energized and maintain body-mind connection throughout the day.",
		Icon:                "figure.run",
		AccentColorName:     "AccentB",
		SecondaryAccentName: "Success",
		RecommendedDrillIDs: []string{"plan_sprint_body", "focus_grid_basic"},
	},
	{
		ID:                  domain.TrackMind,
		Title:               "Mind",
		Subtitle:            "Mental Clarity & Planning",
		Description:         "Strengthen your planning abilities, decision-making, and mental organization. Learn to prioritize effectively and think clearly under pressure.",
		Icon:                "brain.head.profile.fill",
		AccentColorName:     "AccentC",
		SecondaryAccentName: "AccentA",
		RecommendedDrillIDs: []string{"plan_sprint_mind", "plan_sprint_advanced"},
	},
	{
		ID:                  domain.TrackOrder,
		Title:               "Order",
		Subtitle:            "Consistency & Systems",
		Description:         "Master the art of routine and systematic thinking. Build reliable habits and create order in your daily life through consistent practice.",
		Icon:                "square.stack.3d.up.fill",
		AccentColorName:     "Success",
		SecondaryAccentName: "AccentB",
		RecommendedDrillIDs: []string{"plan_sprint_order", "focus_grid_advanced"},
	},
}

// Drills is the built-in list of playable drills. Each drill carries its
// precomputed level list (see levels.go).
var Drills = []domain.Drill{
	{
		ID:               "focus_grid_basic",
		Title:            "Focus Grid",
		TrackID:          domain.TrackFocus,
		GameType:         domain.GameFocusGrid,
		DurationOptions:  []int{2, 3, 5},
		DifficultyLevels: []domain.DifficultyLevel{domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard},
		ShortDescription: "Remember and repeat visual sequences",
		LongDescription:  "Focus Grid challenges your visual memory and attention control. Watch tiles light up in sequence, then repeat the pattern. As you progress, sequences get longer and faster, training your brain to hold more information while resisting the urge to guess.",
		HowItHelps: []string{
			"Improves working memory capacity",
			"Builds impulse control by requiring patience",
			"Trains sustained attention over short bursts",
			"Reduces mental wandering during tasks",
		},
		Levels: FocusGridLevels(false),
		Icon:   "square.grid.3x3.fill",
	},
	{
		ID:               "focus_grid_advanced",
		Title:            "Focus Grid Pro",
		TrackID:          domain.TrackFocus,
		GameType:         domain.GameFocusGrid,
		DurationOptions:  []int{3, 5},
		DifficultyLevels: []domain.DifficultyLevel{domain.DifficultyMedium, domain.DifficultyHard},
		ShortDescription: "Advanced pattern recognition",
		LongDescription:  "A more challenging version of Focus Grid with larger grids, faster sequences, and stricter timing. Designed for those who have mastered the basics and want to push their focus limits.",
		HowItHelps: []string{
			"Expands visual processing speed",
			"Develops expert-level pattern recognition",
			"Builds confidence under time pressure",
			"Creates mental resilience",
		},
		Levels: FocusGridLevels(true),
		Icon:   "square.grid.4x3.fill",
	},
	{
		ID:               "plan_sprint_mind",
		Title:            "Plan Sprint",
		TrackID:          domain.TrackMind,
		GameType:         domain.GamePlanSprint,
		DurationOptions:  []int{2, 3, 5},
		DifficultyLevels: []domain.DifficultyLevel{domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard},
		ShortDescription: "Organize tasks by priority",
		LongDescription:  "Plan Sprint trains your ability to sequence activities effectively. Given a list of micro-tasks and ordering rules, arrange them in the optimal order before time runs out. Learn to think systematically about task dependencies and energy management.",
		HowItHelps: []string{
			"Develops systematic thinking",
			"Improves decision-making speed",
			"Builds intuition for task prioritization",
			"Reduces overwhelm when facing multiple tasks",
		},
		Levels: PlanSprintLevels(false),
		Icon:   "list.bullet.rectangle.fill",
	},
	{
		ID:               "plan_sprint_body",
		Title:            "Body Planner",
		TrackID:          domain.TrackBody,
		GameType:         domain.GamePlanSprint,
		DurationOptions:  []int{2, 3},
		DifficultyLevels: []domain.DifficultyLevel{domain.DifficultyEasy, domain.DifficultyMedium},
		ShortDescription: "Sequence physical activities",
		LongDescription:  "Apply planning skills to physical routines. Arrange warm-ups, exercises, and cool-downs in the right order. Learn how proper sequencing maximizes energy and prevents injury.",
		HowItHelps: []string{
			"Teaches proper workout sequencing",
			"Builds awareness of body preparation",
			"Connects mental planning to physical action",
			"Creates sustainable exercise habits",
		},
		Levels: PlanSprintLevels(false),
		Icon:   "figure.walk",
	},
	{
		ID:               "plan_sprint_order",
		Title:            "Order Builder",
		TrackID:          domain.TrackOrder,
		GameType:         domain.GamePlanSprint,
		DurationOptions:  []int{3, 5},
		DifficultyLevels: []domain.DifficultyLevel{domain.DifficultyMedium, domain.DifficultyHard},
		ShortDescription: "Create optimal daily routines",
		LongDescription:  "Master the art of daily routine design. Arrange morning, afternoon, and evening tasks considering energy levels, dependencies, and efficiency. Build the mental framework for consistent daily systems.",
		HowItHelps: []string{
			"Strengthens routine-building skills",
			"Develops time-blocking intuition",
			"Teaches energy management principles",
			"Creates foundation for lasting habits",
		},
		Levels: PlanSprintLevels(false),
		Icon:   "calendar.badge.clock",
	},
	{
		ID:               "plan_sprint_advanced",
		Title:            "Sprint Master",
		TrackID:          domain.TrackMind,
		GameType:         domain.GamePlanSprint,
		DurationOptions:  []int{5},
		DifficultyLevels: []domain.DifficultyLevel{domain.DifficultyHard},
		ShortDescription: "Complex multi-constraint planning",
		LongDescription:  "The ultimate planning challenge. Handle multiple simultaneous constraints, longer task lists, and tighter time limits. For those who want to develop elite-level planning abilities.",
		HowItHelps: []string{
			"Builds expert-level sequencing skills",
			"Develops multi-constraint reasoning",
			"Creates calm under planning pressure",
			"Prepares for complex real-world decisions",
		},
		Levels: PlanSprintLevels(true),
		Icon:   "bolt.fill",
	},
}

// TrackByID looks up a track. The second return is false when absent.
func TrackByID(id domain.TrackID) (domain.Track, bool) {
	for _, t := range Tracks {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Track{}, false
}

// DrillByID looks up a drill. The second return is false when absent.
func DrillByID(id string) (domain.Drill, bool) {
	for _, d := range Drills {
		if d.ID == id {
			return d, true
		}
	}
	return domain.Drill{}, false
}

// DrillsForTrack returns the drills owned by a track, in catalog order.
func DrillsForTrack(id domain.TrackID) []domain.Drill {
	var out []domain.Drill
	for _, d := range Drills {
		if d.TrackID == id {
			out = append(out, d)
		}
	}
	return out
}

// FirstDrillWithDuration returns the first catalog drill offering the
// given minute option. The second return is false when none matches.
func FirstDrillWithDuration(minutes int) (domain.Drill, bool) {
	for _, d := range Drills {
		if d.SupportsDuration(minutes) {
			return d, true
		}
	}
	return domain.Drill{}, false
}

// TaskThemeForTrack maps a track to its Plan Sprint task pool.
func TaskThemeForTrack(id domain.TrackID) domain.TaskTheme {
	switch id {
	case domain.TrackBody:
		return domain.ThemeBody
	case domain.TrackOrder:
		return domain.ThemeOrder
	default:
		return domain.ThemeGeneral
	}
}

// Validate checks referential integrity of the built-in content. Called
// once at startup; any error here is fatal.
func Validate() error {
	trackIDs := make(map[domain.TrackID]bool, len(Tracks))
	for _, t := range Tracks {
		if trackIDs[t.ID] {
			return fmt.Errorf("catalog: duplicate track %q", t.ID)
		}
		trackIDs[t.ID] = true
	}

	drillIDs := make(map[string]bool, len(Drills))
	for _, d := range Drills {
		if drillIDs[d.ID] {
			return fmt.Errorf("catalog: duplicate drill %q", d.ID)
		}
		drillIDs[d.ID] = true

		if !trackIDs[d.TrackID] {
			return fmt.Errorf("catalog: drill %q references unknown track %q", d.ID, d.TrackID)
		}
		if len(d.Levels) == 0 {
			return fmt.Errorf("catalog: drill %q has no levels", d.ID)
		}
		for i, lvl := range d.Levels {
			if lvl.Number != i+1 {
				return fmt.Errorf("catalog: drill %q level %d out of order", d.ID, lvl.Number)
			}
		}
	}

	for _, t := range Tracks {
		for _, id := range t.RecommendedDrillIDs {
			if !drillIDs[id] {
				return fmt.Errorf("catalog: track %q recommends unknown drill %q", t.ID, id)
			}
		}
	}

	badgeIDs := make(map[string]bool, len(Badges))
	for _, b := range Badges {
		if badgeIDs[b.ID] {
			return fmt.Errorf("catalog: duplicate badge %q", b.ID)
		}
		badgeIDs[b.ID] = true

		if b.Criteria.DrillID != "" && !drillIDs[b.Criteria.DrillID] {
			return fmt.Errorf("catalog: badge %q scoped to unknown drill %q", b.ID, b.Criteria.DrillID)
		}
	}

	for theme, pool := range TaskPools {
		ids := make(map[string]bool, len(pool))
		for _, task := range pool {
			if ids[task.ID] {
				return fmt.Errorf("catalog: duplicate task %q in pool %q", task.ID, theme)
			}
			ids[task.ID] = true
		}
		for _, task := range pool {
			for _, prereq := range task.Prerequisites {
				if !ids[prereq] {
					return fmt.Errorf("catalog: task %q in pool %q requires unknown task %q", task.ID, theme, prereq)
				}
			}
		}
	}

	return nil
}
