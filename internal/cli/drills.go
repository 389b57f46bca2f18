package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ritualforge/ritual/internal/domain"
	"github.com/ritualforge/ritual/internal/infra/catalog"
)

func init() {
	drillsCmd.Flags().StringVar(&drillsTrack, "track", "", "Only drills from this track")
	rootCmd.AddCommand(drillsCmd)
	rootCmd.AddCommand(showCmd)
}

var drillsTrack string

var drillsCmd = &cobra.Command{
	Use:     "drills",
	Aliases: []string{"ls"},
	Short:   "List available drills",
	RunE:    runDrills,
}

var showCmd = &cobra.Command{
	Use:   "show DRILL",
	Short: "Show drill details",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runDrills(cmd *cobra.Command, args []string) error {
	drills := catalog.Drills
	if drillsTrack != "" {
		drills = catalog.DrillsForTrack(domain.TrackID(drillsTrack))
		if len(drills) == 0 {
			return fmt.Errorf("%w: %s", domain.ErrTrackNotFound, drillsTrack)
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tTRACK\tGAME\tMINUTES")
	for _, d := range drills {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			d.ID, d.Title, d.TrackID, d.GameType, joinInts(d.DurationOptions))
	}
	return w.Flush()
}

func runShow(cmd *cobra.Command, args []string) error {
	drill, ok := catalog.DrillByID(args[0])
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrDrillNotFound, args[0])
	}

	fmt.Printf("%s (%s)\n", drill.Title, drill.ID)
	fmt.Printf("  Track:        %s\n", drill.TrackID)
	fmt.Printf("  Game:         %s\n", drill.GameType)
	fmt.Printf("  Minutes:      %s\n", joinInts(drill.DurationOptions))
	fmt.Printf("  Tiers:        %v\n", drill.DifficultyLevels)
	fmt.Printf("  Levels:       %d\n", drill.MaxLevel())
	fmt.Printf("\n%s\n", drill.LongDescription)
	if len(drill.HowItHelps) > 0 {
		fmt.Println("\nHow it helps:")
		for _, line := range drill.HowItHelps {
			fmt.Printf("  - %s\n", line)
		}
	}
	return nil
}
