package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all progress and start over",
	RunE:  runReset,
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetYes {
		fmt.Print("This erases XP, streak, badges, and history. Type 'reset' to confirm: ")
		scanner := newLineScanner(os.Stdin)
		if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "reset" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	d, err := openDaemon()
	if err != nil {
		return err
	}
	defer d.Close()

	if err := d.Ledger.ResetProgress(); err != nil {
		return err
	}
	d.Planner.Regenerate()

	fmt.Println("Progress reset.")
	return nil
}
