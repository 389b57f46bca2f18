package sqlite_test

import (
	"testing"
	"time"

	"github.com/ritualforge/ritual/internal/domain"
	"github.com/ritualforge/ritual/internal/infra/sqlite"
)

// testDB creates a temporary SQLite database for testing.
func testDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func snapshot() domain.UserProgress {
	p := domain.NewUserProgress()
	p.SelectedTrackID = domain.TrackOrder
	p.StreakDays = 3
	p.BestStreak = 6
	p.TotalMinutes = 45
	p.TotalDrills = 9
	p.RitualXP = 150
	p.RitualLevel = 2
	p.HasCompletedOnboarding = true
	p.WeeklyHeatmap["2026-04-02"] = 12
	p.DrillBestScores["plan_sprint_order"] = 220
	p.UnlockedBadgeIDs = []string{"first_spark"}
	p.TutorialsSeen = []string{"plan_sprint"}
	completed := time.Date(2026, 4, 2, 9, 15, 0, 0, time.UTC)
	p.LastCompletedDate = &completed
	p.DrillHistory = append(p.DrillHistory,
		domain.NewHistoryEntry("plan_sprint_order", completed, 220, 5, "Hard", 5))
	return p
}

func TestDB_EmptyLoad(t *testing.T) {
	db := testDB(t)

	_, found, err := db.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if found {
		t.Error("expected found=false on empty database")
	}
}

func TestDB_RoundTrip(t *testing.T) {
	db := testDB(t)
	original := snapshot()

	if err := db.Save(original); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, found, err := db.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !found {
		t.Fatal("expected found=true")
	}

	if loaded.SelectedTrackID != domain.TrackOrder {
		t.Errorf("expected order track, got %s", loaded.SelectedTrackID)
	}
	if loaded.StreakDays != 3 || loaded.BestStreak != 6 {
		t.Errorf("streak: expected 3/6, got %d/%d", loaded.StreakDays, loaded.BestStreak)
	}
	if loaded.RitualXP != 150 || loaded.RitualLevel != 2 {
		t.Errorf("xp: expected 150/2, got %d/%d", loaded.RitualXP, loaded.RitualLevel)
	}
	if !loaded.HasCompletedOnboarding {
		t.Error("onboarding flag lost")
	}
	if loaded.WeeklyHeatmap["2026-04-02"] != 12 {
		t.Errorf("heatmap lost: %v", loaded.WeeklyHeatmap)
	}
	if loaded.DrillBestScores["plan_sprint_order"] != 220 {
		t.Errorf("best score lost: %v", loaded.DrillBestScores)
	}
	if len(loaded.UnlockedBadgeIDs) != 1 || loaded.UnlockedBadgeIDs[0] != "first_spark" {
		t.Errorf("badges lost: %v", loaded.UnlockedBadgeIDs)
	}
	if len(loaded.TutorialsSeen) != 1 {
		t.Errorf("tutorials lost: %v", loaded.TutorialsSeen)
	}
	if len(loaded.DrillHistory) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(loaded.DrillHistory))
	}
	if !loaded.DrillHistory[0].CompletedAt.Equal(*original.LastCompletedDate) {
		t.Error("history timestamp changed across round trip")
	}
	if loaded.LastCompletedDate == nil || !loaded.LastCompletedDate.Equal(*original.LastCompletedDate) {
		t.Error("last completed date changed across round trip")
	}
}

func TestDB_SaveRewritesSnapshot(t *testing.T) {
	db := testDB(t)

	first := snapshot()
	if err := db.Save(first); err != nil {
		t.Fatalf("first save: %v", err)
	}

	second := snapshot()
	second.RitualXP = 777
	second.UnlockedBadgeIDs = []string{"first_spark", "two_day_temper"}
	if err := db.Save(second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, _, err := db.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.RitualXP != 777 {
		t.Errorf("expected latest snapshot, got XP %d", loaded.RitualXP)
	}
	if len(loaded.UnlockedBadgeIDs) != 2 {
		t.Errorf("expected 2 badges, got %d", len(loaded.UnlockedBadgeIDs))
	}
}

func TestDB_Reset(t *testing.T) {
	db := testDB(t)

	if err := db.Save(snapshot()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := db.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}

	_, found, err := db.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if found {
		t.Error("expected no state after reset")
	}
}
