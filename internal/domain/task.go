package domain

// TaskCategory groups Plan Sprint tasks by the kind of effort involved.
type TaskCategory string

const (
	CatPhysical       TaskCategory = "physical"
	CatMental         TaskCategory = "mental"
	CatCreative       TaskCategory = "creative"
	CatOrganizational TaskCategory = "organizational"
)

// EnergyLevel orders tasks by how much energy they demand.
type EnergyLevel int

const (
	EnergyLow EnergyLevel = iota + 1
	EnergyMedium
	EnergyHigh
)

// TaskDuration orders tasks by how long they take.
type TaskDuration int

const (
	DurationQuick TaskDuration = iota + 1
	DurationMedium
	DurationLong
)

// TaskTheme keys the Plan Sprint task pools.
type TaskTheme string

const (
	ThemeGeneral TaskTheme = "general"
	ThemeBody    TaskTheme = "body"
	ThemeOrder   TaskTheme = "order"
)

// SprintTask is one micro-task in a Plan Sprint round. Prerequisites
// reference ids within the same task pool.
type SprintTask struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Category      TaskCategory `json:"category"`
	EnergyLevel   EnergyLevel  `json:"energy_level"`
	Duration      TaskDuration `json:"duration"`
	Prerequisites []string     `json:"prerequisites"`
}

// RuleKind tags the Plan Sprint ordering rules. Rules are plain data;
// evaluation lives in internal/app/game keyed by kind, so rule sets stay
// serializable and testable.
type RuleKind string

const (
	RuleQuickFirst    RuleKind = "quick_first"
	RulePrerequisites RuleKind = "prerequisites"
	RuleEnergyCurve   RuleKind = "energy_curve"
	RuleGroupSimilar  RuleKind = "group_similar"
)

// SprintRule is the display metadata for one ordering rule.
type SprintRule struct {
	Kind        RuleKind `json:"kind"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
}

// RuleScore pairs a rule with its conformance score for a committed
// ordering. Scores are always in [0, 1].
type RuleScore struct {
	Rule  SprintRule `json:"rule"`
	Score float64    `json:"score"`
}
