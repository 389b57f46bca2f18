package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ritualforge/ritual/internal/domain"
)

func init() {
	rootCmd.AddCommand(progressCmd)
}

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show XP, streak, and weekly stats",
	RunE:  runProgress,
}

func runProgress(cmd *cobra.Command, args []string) error {
	d, err := openDaemon()
	if err != nil {
		return err
	}
	defer d.Close()

	p := d.Ledger.Snapshot()

	trackName := "(not selected)"
	if track, ok := d.Ledger.CurrentTrack(); ok {
		trackName = track.Title
	}

	fmt.Printf("Track:          %s\n", trackName)
	fmt.Printf("Ritual level:   %d  %s\n", p.RitualLevel, levelBar(p))
	fmt.Printf("XP:             %d (%d to next level)\n", p.RitualXP, p.XPToNextLevel())
	fmt.Printf("Streak:         %d day(s), best %d\n", p.StreakDays, p.BestStreak)
	fmt.Printf("Drills done:    %d\n", p.TotalDrills)
	fmt.Printf("Minutes total:  %d\n", p.TotalMinutes)
	fmt.Printf("This week:      %d min over %d day(s)\n",
		d.Ledger.WeeklyTotal(), d.Ledger.DaysActiveThisWeek())
	return nil
}

// levelBar renders XP progress toward the next level as a fixed-width bar.
func levelBar(p domain.UserProgress) string {
	const width = 20
	filled := int(p.LevelProgress() * width)
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat(".", width-filled) + "]"
}
