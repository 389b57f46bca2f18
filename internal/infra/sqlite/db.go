// Package sqlite provides a SQLite-backed progress gateway. It holds the
// same single UserProgress record as the JSON file store, but normalized
// into tables and rewritten in one transaction per save. Uses WAL mode
// for crash-safe writes.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)

	"github.com/ritualforge/ritual/internal/domain"
)

// DB wraps a SQLite connection with WAL mode and migrations.
type DB struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at dir/progress.db.
// Enables WAL mode, foreign keys, and a 5-second busy timeout.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dir, "progress.db")
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// SQLite is single-writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	d := &DB{db: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return d, nil
}

// Close cleanly shuts down the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// migrate runs idempotent schema migrations.
func (d *DB) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS progress (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS history (
			id            TEXT PRIMARY KEY,
			drill_id      TEXT NOT NULL,
			completed_at  TEXT NOT NULL,
			score         INTEGER NOT NULL,
			duration      INTEGER NOT NULL,
			difficulty    TEXT NOT NULL,
			level_reached INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_history_completed ON history(completed_at)`,
		`CREATE TABLE IF NOT EXISTS heatmap (
			day     TEXT PRIMARY KEY,
			minutes INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS best_scores (
			drill_id TEXT PRIMARY KEY,
			score    INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS badges (
			id TEXT PRIMARY KEY
		)`,
		`CREATE TABLE IF NOT EXISTS tutorials (
			id TEXT PRIMARY KEY
		)`,
	}
	for _, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("exec migration: %w", err)
		}
	}
	return nil
}

// Load rebuilds the UserProgress record from the tables. found is false
// when the database holds no snapshot yet.
func (d *DB) Load() (domain.UserProgress, bool, error) {
	progress := domain.NewUserProgress()

	kv, err := d.loadKV()
	if err != nil {
		return domain.UserProgress{}, false, err
	}
	if len(kv) == 0 {
		return domain.UserProgress{}, false, nil
	}

	if v, ok := kv["selected_track"]; ok {
		progress.SelectedTrackID = domain.TrackID(v)
	}
	progress.StreakDays = atoi(kv["streak_days"])
	progress.BestStreak = atoi(kv["best_streak"])
	progress.TotalMinutes = atoi(kv["total_minutes"])
	progress.TotalDrills = atoi(kv["total_drills"])
	progress.RitualXP = atoi(kv["ritual_xp"])
	if progress.RitualLevel = atoi(kv["ritual_level"]); progress.RitualLevel < 1 {
		progress.RitualLevel = 1
	}
	progress.HasCompletedOnboarding = kv["onboarding_done"] == "1"
	if v := kv["last_completed_date"]; v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			progress.LastCompletedDate = &t
		}
	}

	if progress.DrillHistory, err = d.loadHistory(); err != nil {
		return domain.UserProgress{}, false, err
	}
	if progress.WeeklyHeatmap, err = d.loadHeatmap(); err != nil {
		return domain.UserProgress{}, false, err
	}
	if progress.DrillBestScores, err = d.loadBestScores(); err != nil {
		return domain.UserProgress{}, false, err
	}
	if progress.UnlockedBadgeIDs, err = d.loadIDs("badges"); err != nil {
		return domain.UserProgress{}, false, err
	}
	if progress.TutorialsSeen, err = d.loadIDs("tutorials"); err != nil {
		return domain.UserProgress{}, false, err
	}

	return progress, true, nil
}

// Save rewrites the full snapshot in one transaction.
func (d *DB) Save(progress domain.UserProgress) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"progress", "history", "heatmap", "best_scores", "badges", "tutorials"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	lastDate := ""
	if progress.LastCompletedDate != nil {
		lastDate = progress.LastCompletedDate.Format(time.RFC3339)
	}
	kv := map[string]string{
		"selected_track":      string(progress.SelectedTrackID),
		"streak_days":         strconv.Itoa(progress.StreakDays),
		"best_streak":         strconv.Itoa(progress.BestStreak),
		"total_minutes":       strconv.Itoa(progress.TotalMinutes),
		"total_drills":        strconv.Itoa(progress.TotalDrills),
		"ritual_xp":           strconv.Itoa(progress.RitualXP),
		"ritual_level":        strconv.Itoa(progress.RitualLevel),
		"onboarding_done":     boolStr(progress.HasCompletedOnboarding),
		"last_completed_date": lastDate,
	}
	for k, v := range kv {
		if _, err := tx.Exec(`INSERT INTO progress (key, value) VALUES (?, ?)`, k, v); err != nil {
			return fmt.Errorf("save %s: %w", k, err)
		}
	}

	for _, e := range progress.DrillHistory {
		if _, err := tx.Exec(
			`INSERT INTO history (id, drill_id, completed_at, score, duration, difficulty, level_reached)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.DrillID, e.CompletedAt.Format(time.RFC3339), e.Score, e.Duration, e.Difficulty, e.LevelReached,
		); err != nil {
			return fmt.Errorf("save history entry: %w", err)
		}
	}
	for day, minutes := range progress.WeeklyHeatmap {
		if _, err := tx.Exec(`INSERT INTO heatmap (day, minutes) VALUES (?, ?)`, day, minutes); err != nil {
			return fmt.Errorf("save heatmap day: %w", err)
		}
	}
	for drillID, score := range progress.DrillBestScores {
		if _, err := tx.Exec(`INSERT INTO best_scores (drill_id, score) VALUES (?, ?)`, drillID, score); err != nil {
			return fmt.Errorf("save best score: %w", err)
		}
	}
	for _, id := range progress.UnlockedBadgeIDs {
		if _, err := tx.Exec(`INSERT INTO badges (id) VALUES (?)`, id); err != nil {
			return fmt.Errorf("save badge: %w", err)
		}
	}
	for _, id := range progress.TutorialsSeen {
		if _, err := tx.Exec(`INSERT INTO tutorials (id) VALUES (?)`, id); err != nil {
			return fmt.Errorf("save tutorial: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// Reset clears every table.
func (d *DB) Reset() error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"progress", "history", "heatmap", "best_scores", "badges", "tutorials"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return tx.Commit()
}

func (d *DB) loadKV() (map[string]string, error) {
	rows, err := d.db.Query(`SELECT key, value FROM progress`)
	if err != nil {
		return nil, fmt.Errorf("load progress kv: %w", err)
	}
	defer rows.Close()

	kv := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		kv[k] = v
	}
	return kv, rows.Err()
}

func (d *DB) loadHistory() ([]domain.HistoryEntry, error) {
	rows, err := d.db.Query(
		`SELECT id, drill_id, completed_at, score, duration, difficulty, level_reached
		 FROM history ORDER BY completed_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	defer rows.Close()

	entries := []domain.HistoryEntry{}
	for rows.Next() {
		var e domain.HistoryEntry
		var completedAt string
		if err := rows.Scan(&e.ID, &e.DrillID, &completedAt, &e.Score, &e.Duration, &e.Difficulty, &e.LevelReached); err != nil {
			return nil, err
		}
		if e.CompletedAt, err = time.Parse(time.RFC3339, completedAt); err != nil {
			return nil, fmt.Errorf("parse history date: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (d *DB) loadHeatmap() (map[string]int, error) {
	rows, err := d.db.Query(`SELECT day, minutes FROM heatmap`)
	if err != nil {
		return nil, fmt.Errorf("load heatmap: %w", err)
	}
	defer rows.Close()

	heatmap := map[string]int{}
	for rows.Next() {
		var day string
		var minutes int
		if err := rows.Scan(&day, &minutes); err != nil {
			return nil, err
		}
		heatmap[day] = minutes
	}
	return heatmap, rows.Err()
}

func (d *DB) loadBestScores() (map[string]int, error) {
	rows, err := d.db.Query(`SELECT drill_id, score FROM best_scores`)
	if err != nil {
		return nil, fmt.Errorf("load best scores: %w", err)
	}
	defer rows.Close()

	scores := map[string]int{}
	for rows.Next() {
		var drillID string
		var score int
		if err := rows.Scan(&drillID, &score); err != nil {
			return nil, err
		}
		scores[drillID] = score
	}
	return scores, rows.Err()
}

func (d *DB) loadIDs(table string) ([]string, error) {
	rows, err := d.db.Query(`SELECT id FROM ` + table + ` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", table, err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func boolStr(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
