package cli

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ritualforge/ritual/internal/app/game"
	"github.com/ritualforge/ritual/internal/domain"
	"github.com/ritualforge/ritual/internal/infra/catalog"
)

func init() {
	playCmd.Flags().StringVar(&playDifficulty, "difficulty", "easy", "Tier: easy, medium, or hard")
	playCmd.Flags().IntVar(&playDuration, "minutes", 0, "Session length in minutes (drill default if 0)")
	rootCmd.AddCommand(playCmd)
}

var (
	playDifficulty string
	playDuration   int
)

var playCmd = &cobra.Command{
	Use:   "play DRILL",
	Short: "Play a drill interactively",
	Long:  `Play a drill in the terminal. Results are recorded to your progress.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	drill, ok := catalog.DrillByID(args[0])
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrDrillNotFound, args[0])
	}

	duration := playDuration
	if duration == 0 && len(drill.DurationOptions) > 0 {
		duration = drill.DurationOptions[0]
	}
	if !drill.SupportsDuration(duration) {
		return fmt.Errorf("%w: %d minutes", domain.ErrDurationMismatch, duration)
	}

	d, err := openDaemon()
	if err != nil {
		return err
	}
	defer d.Close()

	difficulty, ok := domain.ParseDifficulty(playDifficulty)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrDifficultyMismatch, playDifficulty)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	sess, err := game.NewSession(drill, difficulty, rng)
	if err != nil {
		return err
	}

	fmt.Printf(">>> %s, %s tier (type /quit to abandon)\n\n", drill.Title, playDifficulty)

	scanner := newLineScanner(os.Stdin)
	for sess.State() == game.StatePlaying {
		var result game.RoundResult
		var submitErr error

		switch {
		case sess.FocusRound() != nil:
			result, submitErr = playFocusRound(sess, scanner)
		case sess.SprintRound() != nil:
			result, submitErr = playSprintRound(sess, scanner)
		default:
			return domain.ErrRoundNotActive
		}
		if submitErr != nil {
			if submitErr == errQuit {
				fmt.Println("Session abandoned; nothing recorded.")
				return nil
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", submitErr)
			continue
		}

		reportRound(result)
	}

	summary := sess.Summary()
	unlocked, err := d.Ledger.RecordCompletion(
		summary.DrillID, summary.TotalScore, duration,
		summary.Difficulty, summary.LevelReached, summary.WasPerfect,
	)
	if err != nil {
		return fmt.Errorf("record completion: %w", err)
	}
	d.Planner.MarkCompleted(summary.DrillID)

	fmt.Printf("\nFinal score: %d (reached level %d)\n", summary.TotalScore, summary.LevelReached)
	for _, b := range unlocked {
		fmt.Printf("Badge unlocked: %s (%s)\n", b.Title, b.Description)
	}
	return nil
}

var errQuit = errors.New("quit")

func playFocusRound(sess *game.Session, scanner *bufio.Scanner) (game.RoundResult, error) {
	round := sess.FocusRound()
	fmt.Printf("Level %d: %dx%d grid, %d tiles, %d mistake(s) allowed, %ds\n",
		round.Level, round.GridSize, round.GridSize,
		len(round.Sequence), round.AllowedMistakes, round.TimeBudget)
	fmt.Printf("Memorize: %v\n", round.Sequence)
	fmt.Print("Repeat the sequence (space-separated tile numbers): ")

	started := time.Now()
	if !scanner.Scan() {
		return game.RoundResult{}, errQuit
	}
	input := strings.TrimSpace(scanner.Text())
	if input == "/quit" || input == "/bye" {
		return game.RoundResult{}, errQuit
	}
	elapsed := int(time.Since(started).Seconds())

	taps, err := parseInts(input)
	if err != nil {
		return game.RoundResult{}, err
	}
	return sess.SubmitFocusTaps(taps, elapsed)
}

func playSprintRound(sess *game.Session, scanner *bufio.Scanner) (game.RoundResult, error) {
	round := sess.SprintRound()
	fmt.Printf("Level %d: order %d tasks in %ds\n", round.Level, len(round.Tasks), round.TimeBudget)
	fmt.Println("Rules:")
	for _, rule := range round.Rules {
		fmt.Printf("  - %s: %s\n", rule.Title, rule.Description)
	}
	fmt.Println("Tasks:")
	for i, task := range round.Tasks {
		fmt.Printf("  %d. %s (%s, duration %d, energy %d)\n",
			i+1, task.Title, task.Category, task.Duration, task.EnergyLevel)
	}
	fmt.Print("Your order (space-separated task numbers): ")

	started := time.Now()
	if !scanner.Scan() {
		return game.RoundResult{}, errQuit
	}
	input := strings.TrimSpace(scanner.Text())
	if input == "/quit" || input == "/bye" {
		return game.RoundResult{}, errQuit
	}
	elapsed := int(time.Since(started).Seconds())

	nums, err := parseInts(input)
	if err != nil {
		return game.RoundResult{}, err
	}
	ids := make([]string, 0, len(nums))
	for _, n := range nums {
		if n < 1 || n > len(round.Tasks) {
			return game.RoundResult{}, fmt.Errorf("%w: task %d", domain.ErrUnknownTask, n)
		}
		ids = append(ids, round.Tasks[n-1].ID)
	}
	return sess.SubmitSprintOrder(ids, elapsed)
}

func reportRound(result game.RoundResult) {
	switch {
	case result.Perfect:
		fmt.Printf("Perfect! +%d points (total %d)\n\n", result.Score, result.TotalScore)
	case result.Passed:
		fmt.Printf("Passed. +%d points (total %d)\n\n", result.Score, result.TotalScore)
	default:
		fmt.Printf("Failed. +%d points (total %d)\n\n", result.Score, result.TotalScore)
	}

	switch result.State {
	case game.StateCompleted:
		fmt.Println("All levels cleared!")
	case game.StateGameOver:
		fmt.Println("Game over.")
	}
}

func parseInts(input string) ([]int, error) {
	fields := strings.Fields(input)
	nums := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", f)
		}
		nums = append(nums, n)
	}
	return nums, nil
}
