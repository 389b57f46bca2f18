package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	badgesCmd.Flags().BoolVar(&badgesAll, "all", false, "Include locked badges")
	rootCmd.AddCommand(badgesCmd)
}

var badgesAll bool

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "List unlocked badges",
	RunE:  runBadges,
}

func runBadges(cmd *cobra.Command, args []string) error {
	d, err := openDaemon()
	if err != nil {
		return err
	}
	defer d.Close()

	unlocked := d.Ledger.UnlockedBadges()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BADGE\tRARITY\tUNLOCKED")
	for _, b := range unlocked {
		when := ""
		if b.UnlockedAt != nil {
			when = b.UnlockedAt.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", b.Title, b.Rarity, when)
	}
	if badgesAll {
		for _, b := range d.Ledger.LockedBadges() {
			fmt.Fprintf(w, "%s\t%s\t-\n", b.Title, b.Rarity)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(unlocked) == 0 && !badgesAll {
		fmt.Println("No badges yet. Run 'ritual badges --all' to see what's out there.")
	}
	return nil
}
