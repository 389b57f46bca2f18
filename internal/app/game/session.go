package game

import (
	"math"
	"math/rand"

	"github.com/ritualforge/ritual/internal/domain"
	"github.com/ritualforge/ritual/internal/infra/catalog"
)

// State is the session lifecycle: playing until either every level is
// cleared or a round fails. Terminal states never transition back.
type State string

const (
	StatePlaying   State = "playing"
	StateCompleted State = "completed" // cleared all levels
	StateGameOver  State = "game_over"
)

// FocusRound holds the generated parameters for one Focus Grid round.
type FocusRound struct {
	Level           int     `json:"level"`
	GridSize        int     `json:"grid_size"`
	Sequence        []int   `json:"sequence"`
	TimeBudget      int     `json:"time_budget"`
	AllowedMistakes int     `json:"allowed_mistakes"`
	Multiplier      float64 `json:"multiplier"`
}

// SprintRound holds the generated parameters for one Plan Sprint round.
type SprintRound struct {
	Level      int                 `json:"level"`
	Tasks      []domain.SprintTask `json:"tasks"`
	Rules      []domain.SprintRule `json:"rules"`
	TimeBudget int                 `json:"time_budget"`
	Multiplier float64             `json:"multiplier"`
}

// RoundResult reports one submitted round: its score, outcome, and the
// session state after level progression was applied.
type RoundResult struct {
	Level            int                `json:"level"`
	Score            int                `json:"score"`
	Passed           bool               `json:"passed"`
	Perfect          bool               `json:"perfect"`
	CorrectTaps      int                `json:"correct_taps,omitempty"`
	Mistakes         int                `json:"mistakes,omitempty"`
	SecondsRemaining int                `json:"seconds_remaining"`
	RuleScores       []domain.RuleScore `json:"rule_scores,omitempty"`
	AverageScore     float64            `json:"average_score,omitempty"`
	State            State              `json:"state"`
	TotalScore       int                `json:"total_score"`
}

// Summary is what the presentation layer hands to the progress ledger when
// a session ends.
type Summary struct {
	DrillID      string `json:"drill_id"`
	TotalScore   int    `json:"total_score"`
	Difficulty   string `json:"difficulty"`
	LevelReached int    `json:"level_reached"`
	WasPerfect   bool   `json:"was_perfect"`
}

// Session is one play-through of a drill from level 1 until pass-through or
// failure. Not safe for concurrent use; the caller serializes events.
type Session struct {
	drill      domain.Drill
	difficulty domain.DifficultyLevel
	theme      domain.TaskTheme
	rng        *rand.Rand

	level         int
	totalScore    int
	perfectRounds int
	state         State

	focus  *FocusRound
	sprint *SprintRound
}

// extraTimePerTile is the per-tile time bonus for Focus Grid rounds.
func extraTimePerTile(d domain.DifficultyLevel) float64 {
	switch d {
	case domain.DifficultyMedium:
		return 2.5
	case domain.DifficultyHard:
		return 2.0
	default:
		return 3.0
	}
}

// sprintBaseTime is the Plan Sprint base time budget in seconds.
func sprintBaseTime(d domain.DifficultyLevel) int {
	switch d {
	case domain.DifficultyMedium:
		return 70
	case domain.DifficultyHard:
		return 50
	default:
		return 90
	}
}

// NewSession starts a session at level 1 and generates the first round.
// The random source drives sequence generation and task sampling; tests
// inject a fixed seed.
func NewSession(drill domain.Drill, difficulty domain.DifficultyLevel, rng *rand.Rand) (*Session, error) {
	if !drill.SupportsDifficulty(difficulty) {
		return nil, domain.ErrDifficultyMismatch
	}

	s := &Session{
		drill:      drill,
		difficulty: difficulty,
		theme:      catalog.TaskThemeForTrack(drill.TrackID),
		rng:        rng,
		level:      1,
		state:      StatePlaying,
	}
	if err := s.startRound(); err != nil {
		return nil, err
	}
	return s, nil
}

// Drill returns the drill being played.
func (s *Session) Drill() domain.Drill { return s.drill }

// Difficulty returns the active tier.
func (s *Session) Difficulty() domain.DifficultyLevel { return s.difficulty }

// Level returns the current 1-based level.
func (s *Session) Level() int { return s.level }

// TotalScore returns the accumulated session score.
func (s *Session) TotalScore() int { return s.totalScore }

// State returns the session lifecycle state.
func (s *Session) State() State { return s.state }

// FocusRound returns the active Focus Grid round, nil when not playing one.
func (s *Session) FocusRound() *FocusRound { return s.focus }

// SprintRound returns the active Plan Sprint round, nil when not playing one.
func (s *Session) SprintRound() *SprintRound { return s.sprint }

// startRound derives round parameters for the current level.
func (s *Session) startRound() error {
	switch s.drill.GameType {
	case domain.GamePlanSprint:
		return s.startSprintRound()
	default:
		return s.startFocusRound()
	}
}

func (s *Session) startFocusRound() error {
	gridSize := min(6, s.difficulty.BaseGridSize()+(s.level-1)/4)
	minSeq, _ := s.difficulty.SequenceRange()
	seqLen := min(7, minSeq+(s.level-1)/3)
	budget := s.difficulty.BaseTimeLimit() + int(math.Round(float64(seqLen)*extraTimePerTile(s.difficulty)))

	// Distinct tiles sampled without replacement.
	perm := s.rng.Perm(gridSize * gridSize)
	sequence := make([]int, seqLen)
	copy(sequence, perm[:seqLen])

	s.sprint = nil
	s.focus = &FocusRound{
		Level:           s.level,
		GridSize:        gridSize,
		Sequence:        sequence,
		TimeBudget:      budget,
		AllowedMistakes: s.difficulty.AllowedMistakes(),
		Multiplier:      s.difficulty.ScoreMultiplier(),
	}
	return nil
}

func (s *Session) startSprintRound() error {
	pool := catalog.PoolForTheme(s.theme)
	if len(pool) == 0 {
		return domain.ErrNoTasks
	}

	taskCount := min(len(pool), min(8, 4+s.level/2))
	perm := s.rng.Perm(len(pool))
	tasks := make([]domain.SprintTask, 0, taskCount)
	for _, idx := range perm[:taskCount] {
		tasks = append(tasks, pool[idx])
	}

	rules := catalog.RulesForLevel(s.level)
	budget := sprintBaseTime(s.difficulty) + len(tasks)*5 + len(rules)*8 - s.level*2
	if budget < 30 {
		budget = 30
	}

	s.focus = nil
	s.sprint = &SprintRound{
		Level:      s.level,
		Tasks:      tasks,
		Rules:      rules,
		TimeBudget: budget,
		Multiplier: s.difficulty.ScoreMultiplier(),
	}
	return nil
}

// SubmitFocusTaps scores an ordered tap sequence against the active Focus
// Grid round. Out-of-range tap indices are ignored rather than corrupting
// the walk. The round passes only when the full sequence was reproduced
// within the mistake budget and time budget.
func (s *Session) SubmitFocusTaps(taps []int, elapsedSeconds int) (RoundResult, error) {
	if s.state != StatePlaying {
		return RoundResult{}, domain.ErrSessionOver
	}
	if s.focus == nil {
		return RoundResult{}, domain.ErrRoundNotActive
	}

	round := s.focus
	tiles := round.GridSize * round.GridSize

	correct := 0
	mistakes := 0
	for _, tap := range taps {
		if tap < 0 || tap >= tiles {
			continue // defensively ignore out-of-range taps
		}
		if correct == len(round.Sequence) || mistakes > round.AllowedMistakes {
			break
		}
		if tap == round.Sequence[correct] {
			correct++
		} else {
			mistakes++
		}
	}

	remaining := round.TimeBudget - elapsedSeconds
	if remaining < 0 {
		remaining = 0
	}

	// Reproducing the sequence only counts while time remained.
	completed := correct == len(round.Sequence) &&
		mistakes <= round.AllowedMistakes &&
		elapsedSeconds < round.TimeBudget

	score := FocusGridScore(correct, completed, remaining, mistakes, round.Level, round.Multiplier)
	perfect := completed && mistakes == 0

	return s.finishRound(RoundResult{
		Level:            round.Level,
		Score:            score,
		Passed:           completed,
		Perfect:          perfect,
		CorrectTaps:      correct,
		Mistakes:         mistakes,
		SecondsRemaining: remaining,
	})
}

// SubmitSprintOrder scores a committed task ordering against the active
// Plan Sprint round. The ordering must be a permutation of the round's
// task ids; anything else is rejected before it can reach the ledger.
func (s *Session) SubmitSprintOrder(orderedIDs []string, elapsedSeconds int) (RoundResult, error) {
	if s.state != StatePlaying {
		return RoundResult{}, domain.ErrSessionOver
	}
	if s.sprint == nil {
		return RoundResult{}, domain.ErrRoundNotActive
	}

	round := s.sprint
	byID := make(map[string]domain.SprintTask, len(round.Tasks))
	for _, t := range round.Tasks {
		byID[t.ID] = t
	}

	if len(orderedIDs) != len(round.Tasks) {
		return RoundResult{}, domain.ErrUnknownTask
	}
	seen := make(map[string]bool, len(orderedIDs))
	ordered := make([]domain.SprintTask, 0, len(orderedIDs))
	for _, id := range orderedIDs {
		task, ok := byID[id]
		if !ok || seen[id] {
			return RoundResult{}, domain.ErrUnknownTask
		}
		seen[id] = true
		ordered = append(ordered, task)
	}

	results, average := EvaluateAll(round.Rules, ordered)

	remaining := round.TimeBudget - elapsedSeconds
	if remaining < 0 {
		remaining = 0
	}

	score := PlanSprintScore(average, remaining, round.Level, round.Multiplier)

	return s.finishRound(RoundResult{
		Level:            round.Level,
		Score:            score,
		Passed:           average >= PassThreshold,
		Perfect:          average >= PerfectThreshold,
		SecondsRemaining: remaining,
		RuleScores:       results,
		AverageScore:     average,
	})
}

// finishRound accumulates the score and applies level progression: pass on
// the last level completes the session, any fail ends it immediately.
func (s *Session) finishRound(result RoundResult) (RoundResult, error) {
	s.totalScore += result.Score
	if result.Perfect {
		s.perfectRounds++
	}

	switch {
	case !result.Passed:
		s.state = StateGameOver
		s.focus = nil
		s.sprint = nil
	case s.level >= s.drill.MaxLevel():
		s.state = StateCompleted
		s.focus = nil
		s.sprint = nil
	default:
		s.level++
		if err := s.startRound(); err != nil {
			return RoundResult{}, err
		}
	}

	result.State = s.state
	result.TotalScore = s.totalScore
	return result, nil
}

// Summary reports the session for ledger finalization. The perfect flag is
// set when at least one round was perfect.
func (s *Session) Summary() Summary {
	return Summary{
		DrillID:      s.drill.ID,
		TotalScore:   s.totalScore,
		Difficulty:   string(s.difficulty),
		LevelReached: s.level,
		WasPerfect:   s.perfectRounds > 0,
	}
}
