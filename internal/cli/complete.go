package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ritualforge/ritual/internal/domain"
	"github.com/ritualforge/ritual/internal/infra/catalog"
)

func init() {
	completeCmd.Flags().IntVar(&completeScore, "score", 0, "Session score")
	completeCmd.Flags().IntVar(&completeMinutes, "minutes", 0, "Minutes trained (drill default if 0)")
	completeCmd.Flags().StringVar(&completeTier, "difficulty", "easy", "Tier played")
	completeCmd.Flags().IntVar(&completeLevel, "level", 1, "Highest level reached")
	completeCmd.Flags().BoolVar(&completePerfect, "perfect", false, "At least one perfect round")
	rootCmd.AddCommand(completeCmd)
}

var (
	completeScore   int
	completeMinutes int
	completeTier    string
	completeLevel   int
	completePerfect bool
)

// completeCmd records a drill completion that happened outside the
// terminal, e.g. a timed session on another surface.
var completeCmd = &cobra.Command{
	Use:   "complete DRILL",
	Short: "Record a finished drill",
	Args:  cobra.ExactArgs(1),
	RunE:  runComplete,
}

func runComplete(cmd *cobra.Command, args []string) error {
	drill, ok := catalog.DrillByID(args[0])
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrDrillNotFound, args[0])
	}

	tier, ok := domain.ParseDifficulty(completeTier)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrDifficultyMismatch, completeTier)
	}

	minutes := completeMinutes
	if minutes == 0 && len(drill.DurationOptions) > 0 {
		minutes = drill.DurationOptions[0]
	}

	d, err := openDaemon()
	if err != nil {
		return err
	}
	defer d.Close()

	unlocked, err := d.Ledger.RecordCompletion(
		drill.ID, completeScore, minutes, string(tier), completeLevel, completePerfect,
	)
	if err != nil {
		return err
	}
	d.Planner.MarkCompleted(drill.ID)

	p := d.Ledger.Snapshot()
	fmt.Printf("Recorded %s: %d points, %d min. Streak %d, level %d.\n",
		drill.ID, completeScore, minutes, p.StreakDays, p.RitualLevel)
	for _, b := range unlocked {
		fmt.Printf("Badge unlocked: %s (%s)\n", b.Title, b.Description)
	}
	return nil
}
