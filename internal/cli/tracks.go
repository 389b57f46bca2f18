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
	tracksCmd.AddCommand(trackSelectCmd)
	rootCmd.AddCommand(tracksCmd)
}

var tracksCmd = &cobra.Command{
	Use:   "tracks",
	Short: "List training tracks",
	RunE:  runTracks,
}

var trackSelectCmd = &cobra.Command{
	Use:   "select TRACK",
	Short: "Choose your training track",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrackSelect,
}

func runTracks(cmd *cobra.Command, args []string) error {
	d, err := openDaemon()
	if err != nil {
		return err
	}
	defer d.Close()

	current, hasCurrent := d.Ledger.CurrentTrack()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, " \tID\tTITLE\tSUBTITLE")
	for _, t := range catalog.Tracks {
		marker := " "
		if hasCurrent && t.ID == current.ID {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", marker, t.ID, t.Title, t.Subtitle)
	}
	return w.Flush()
}

func runTrackSelect(cmd *cobra.Command, args []string) error {
	d, err := openDaemon()
	if err != nil {
		return err
	}
	defer d.Close()

	id := domain.TrackID(args[0])
	if err := d.Ledger.SelectTrack(id); err != nil {
		return err
	}
	d.Planner.Regenerate()

	track, _ := catalog.TrackByID(id)
	fmt.Printf("Now training: %s\n", track.Title)
	return nil
}
