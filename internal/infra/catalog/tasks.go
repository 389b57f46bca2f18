package catalog

import "github.com/ritualforge/ritual/internal/domain"

// TaskPools holds the Plan Sprint task pools keyed by theme. Prerequisite
// ids always reference tasks within the same pool (checked by Validate).
var TaskPools = map[domain.TaskTheme][]domain.SprintTask{
	domain.ThemeGeneral: {
		{ID: "check_email", Title: "Check email", Category: domain.CatOrganizational, EnergyLevel: domain.EnergyLow, Duration: domain.DurationQuick},
		{ID: "write_notes", Title: "Write 3 key notes", Category: domain.CatMental, EnergyLevel: domain.EnergyMedium, Duration: domain.DurationQuick},
		{ID: "clear_desk", Title: "Clear desk", Category: domain.CatOrganizational, EnergyLevel: domain.EnergyLow, Duration: domain.DurationQuick},
		{ID: "deep_work", Title: "Deep work session", Category: domain.CatMental, EnergyLevel: domain.EnergyHigh, Duration: domain.DurationLong, Prerequisites: []string{"clear_desk"}},
		{ID: "quick_stretch", Title: "Quick stretch", Category: domain.CatPhysical, EnergyLevel: domain.EnergyLow, Duration: domain.DurationQuick},
		{ID: "review_goals", Title: "Review daily goals", Category: domain.CatMental, EnergyLevel: domain.EnergyMedium, Duration: domain.DurationQuick},
		{ID: "plan_tomorrow", Title: "Plan tomorrow", Category: domain.CatOrganizational, EnergyLevel: domain.EnergyLow, Duration: domain.DurationMedium},
		{ID: "creative_brainstorm", Title: "Creative brainstorm", Category: domain.CatCreative, EnergyLevel: domain.EnergyHigh, Duration: domain.DurationMedium, Prerequisites: []string{"review_goals"}},
		{ID: "file_documents", Title: "File documents", Category: domain.CatOrganizational, EnergyLevel: domain.EnergyLow, Duration: domain.DurationQuick},
		{ID: "focus_break", Title: "Focus break", Category: domain.CatPhysical, EnergyLevel: domain.EnergyLow, Duration: domain.DurationQuick, Prerequisites: []string{"deep_work"}},
		{ID: "reply_messages", Title: "Reply to messages", Category: domain.CatOrganizational, EnergyLevel: domain.EnergyMedium, Duration: domain.DurationMedium, Prerequisites: []string{"check_email"}},
		{ID: "learn_something", Title: "Learn something new", Category: domain.CatMental, EnergyLevel: domain.EnergyHigh, Duration: domain.DurationMedium},
		{ID: "water_plants", Title: "Water plants", Category: domain.CatOrganizational, EnergyLevel: domain.EnergyLow, Duration: domain.DurationQuick},
		{ID: "meditate", Title: "5-min meditation", Category: domain.CatMental, EnergyLevel: domain.EnergyLow, Duration: domain.DurationQuick},
	},
	domain.ThemeBody: {
		{ID: "warmup", Title: "Warm up joints", Category: domain.CatPhysical, EnergyLevel: domain.EnergyLow, Duration: domain.DurationQuick},
		{ID: "cardio", Title: "Cardio burst", Category: domain.CatPhysical, EnergyLevel: domain.EnergyHigh, Duration: domain.DurationMedium, Prerequisites: []string{"warmup"}},
		{ID: "strength", Title: "Strength set", Category: domain.CatPhysical, EnergyLevel: domain.EnergyHigh, Duration: domain.DurationMedium, Prerequisites: []string{"warmup"}},
		{ID: "cooldown", Title: "Cool down stretch", Category: domain.CatPhysical, EnergyLevel: domain.EnergyLow, Duration: domain.DurationQuick, Prerequisites: []string{"cardio", "strength"}},
		{ID: "hydrate", Title: "Hydrate well", Category: domain.CatPhysical, EnergyLevel: domain.EnergyLow, Duration: domain.DurationQuick},
		{ID: "posture_check", Title: "Posture check", Category: domain.CatPhysical, EnergyLevel: domain.EnergyLow, Duration: domain.DurationQuick},
		{ID: "walk", Title: "10-min walk", Category: domain.CatPhysical, EnergyLevel: domain.EnergyMedium, Duration: domain.DurationMedium},
		{ID: "balance", Title: "Balance exercise", Category: domain.CatPhysical, EnergyLevel: domain.EnergyMedium, Duration: domain.DurationQuick, Prerequisites: []string{"warmup"}},
		{ID: "breathing", Title: "Deep breathing", Category: domain.CatPhysical, EnergyLevel: domain.EnergyLow, Duration: domain.DurationQuick},
		{ID: "foam_roll", Title: "Foam rolling", Category: domain.CatPhysical, EnergyLevel: domain.EnergyLow, Duration: domain.DurationMedium, Prerequisites: []string{"cooldown"}},
	},
	domain.ThemeOrder: {
		{ID: "morning_routine", Title: "Morning routine", Category: domain.CatOrganizational, EnergyLevel: domain.EnergyMedium, Duration: domain.DurationMedium},
		{ID: "inbox_zero", Title: "Inbox zero", Category: domain.CatOrganizational, EnergyLevel: domain.EnergyMedium, Duration: domain.DurationMedium},
		{ID: "meal_prep", Title: "Meal prep", Category: domain.CatOrganizational, EnergyLevel: domain.EnergyMedium, Duration: domain.DurationLong},
		{ID: "weekly_review", Title: "Weekly review", Category: domain.CatOrganizational, EnergyLevel: domain.EnergyHigh, Duration: domain.DurationLong},
		{ID: "tidy_space", Title: "Tidy workspace", Category: domain.CatOrganizational, EnergyLevel: domain.EnergyLow, Duration: domain.DurationQuick},
		{ID: "backup_files", Title: "Backup files", Category: domain.CatOrganizational, EnergyLevel: domain.EnergyLow, Duration: domain.DurationQuick},
		{ID: "update_calendar", Title: "Update calendar", Category: domain.CatOrganizational, EnergyLevel: domain.EnergyLow, Duration: domain.DurationQuick},
		{ID: "declutter", Title: "Declutter drawer", Category: domain.CatOrganizational, EnergyLevel: domain.EnergyMedium, Duration: domain.DurationMedium},
		{ID: "set_reminders", Title: "Set reminders", Category: domain.CatOrganizational, EnergyLevel: domain.EnergyLow, Duration: domain.DurationQuick, Prerequisites: []string{"update_calendar"}},
		{ID: "evening_review", Title: "Evening review", Category: domain.CatOrganizational, EnergyLevel: domain.EnergyLow, Duration: domain.DurationQuick},
	},
}

// PoolForTheme returns the task pool for a theme, falling back to the
// general pool for unknown themes.
func PoolForTheme(theme domain.TaskTheme) []domain.SprintTask {
	if pool, ok := TaskPools[theme]; ok {
		return pool
	}
	return TaskPools[domain.ThemeGeneral]
}
