package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(planCmd)
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show today's training plan",
	RunE:  runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
	d, err := openDaemon()
	if err != nil {
		return err
	}
	defer d.Close()

	plan := d.Planner.Today()

	fmt.Printf("Plan for %s (%d/%d done)\n\n",
		plan.Date.Format("Mon Jan 2"), plan.CompletedCount(), len(plan.Drills))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DONE\tDRILL\tTITLE\tWHY")
	for _, entry := range plan.Drills {
		fmt.Fprintf(w, "[%s]\t%s\t%s\t%s\n",
			yesNo(entry.IsCompleted), entry.Drill.ID, entry.Drill.Title, entry.Reason)
	}
	return w.Flush()
}
