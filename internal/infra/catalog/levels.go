package catalog

import "github.com/ritualforge/ritual/internal/domain"

// drillLevelCount is the fixed number of precomputed levels per drill.
const drillLevelCount = 10

// FocusGridLevels generates the 10 precomputed Focus Grid levels. The
// advanced variant starts with a larger grid and longer sequences.
func FocusGridLevels(advanced bool) []domain.DrillLevel {
	baseGrid := 4
	baseSequence := 3
	if advanced {
		baseGrid = 5
		baseSequence = 4
	}

	levels := make([]domain.DrillLevel, 0, drillLevelCount)
	for i := 1; i <= drillLevelCount; i++ {
		levels = append(levels, domain.DrillLevel{
			Number:               i,
			Target:               100 + i*20,
			TimeLimit:            max(8, 15-i),
			AllowedMistakes:      max(0, 2-i/4),
			DifficultyMultiplier: 1.0 + float64(i-1)*0.15,
			SequenceLength:       min(8, baseSequence+(i-1)/2),
			GridSize:             min(6, baseGrid+(i-1)/4),
		})
	}
	return levels
}

// PlanSprintLevels generates the 10 precomputed Plan Sprint levels. Target
// here is the task-count target; the sequence length is unused by scoring
// but kept for symmetry with Focus Grid levels.
func PlanSprintLevels(advanced bool) []domain.DrillLevel {
	baseTaskCount := 6
	if advanced {
		baseTaskCount = 8
	}

	levels := make([]domain.DrillLevel, 0, drillLevelCount)
	for i := 1; i <= drillLevelCount; i++ {
		levels = append(levels, domain.DrillLevel{
			Number:               i,
			Target:               min(14, baseTaskCount+(i-1)/2),
			TimeLimit:            max(20, 45-i*2),
			AllowedMistakes:      0,
			DifficultyMultiplier: 1.0 + float64(i-1)*0.1,
			SequenceLength:       1 + i/4,
			GridSize:             0,
		})
	}
	return levels
}
