package catalog_test

import (
	"testing"

	"github.com/ritualforge/ritual/internal/domain"
	"github.com/ritualforge/ritual/internal/infra/catalog"
)

func TestValidate(t *testing.T) {
	if err := catalog.Validate(); err != nil {
		t.Fatalf("built-in catalog invalid: %v", err)
	}
}

func TestTrackByID(t *testing.T) {
	track, ok := catalog.TrackByID(domain.TrackFocus)
	if !ok {
		t.Fatal("expected focus track")
	}
	if track.Title != "Focus" {
		t.Errorf("expected title Focus, got %q", track.Title)
	}

	if _, ok := catalog.TrackByID("nonsense"); ok {
		t.Error("expected lookup miss for unknown track")
	}
}

func TestDrillsForTrack(t *testing.T) {
	drills := catalog.DrillsForTrack(domain.TrackMind)
	if len(drills) != 2 {
		t.Fatalf("expected 2 mind drills, got %d", len(drills))
	}
	for _, d := range drills {
		if d.GameType != domain.GamePlanSprint {
			t.Errorf("drill %s: expected plan sprint game type, got %s", d.ID, d.GameType)
		}
	}
}

func TestFirstDrillWithDuration(t *testing.T) {
	drill, ok := catalog.FirstDrillWithDuration(2)
	if !ok {
		t.Fatal("expected a 2-minute drill")
	}
	if !drill.SupportsDuration(2) {
		t.Errorf("drill %s does not actually offer 2 minutes", drill.ID)
	}

	if _, ok := catalog.FirstDrillWithDuration(99); ok {
		t.Error("expected no drill with a 99-minute option")
	}
}

func TestTaskThemeForTrack(t *testing.T) {
	cases := []struct {
		track domain.TrackID
		want  domain.TaskTheme
	}{
		{domain.TrackBody, domain.ThemeBody},
		{domain.TrackOrder, domain.ThemeOrder},
		{domain.TrackFocus, domain.ThemeGeneral},
		{domain.TrackMind, domain.ThemeGeneral},
	}
	for _, c := range cases {
		if got := catalog.TaskThemeForTrack(c.track); got != c.want {
			t.Errorf("track %s: expected theme %s, got %s", c.track, c.want, got)
		}
	}
}

func TestPoolForTheme_Fallback(t *testing.T) {
	pool := catalog.PoolForTheme("unknown_theme")
	if len(pool) == 0 {
		t.Fatal("expected general pool fallback, got empty")
	}
	if len(pool) != len(catalog.TaskPools[domain.ThemeGeneral]) {
		t.Error("fallback should be the general pool")
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Level Generation Tests
// ═══════════════════════════════════════════════════════════════════════════

func TestFocusGridLevels_Basic(t *testing.T) {
	levels := catalog.FocusGridLevels(false)
	if len(levels) != 10 {
		t.Fatalf("expected 10 levels, got %d", len(levels))
	}

	first := levels[0]
	if first.GridSize != 4 || first.SequenceLength != 3 {
		t.Errorf("level 1: expected 4x4 grid seq 3, got %dx%d seq %d",
			first.GridSize, first.GridSize, first.SequenceLength)
	}
	if first.TimeLimit != 14 || first.AllowedMistakes != 2 {
		t.Errorf("level 1: expected limit 14 mistakes 2, got %d / %d",
			first.TimeLimit, first.AllowedMistakes)
	}

	last := levels[9]
	if last.GridSize != 6 || last.SequenceLength != 7 {
		t.Errorf("level 10: expected 6x6 grid seq 7, got %dx%d seq %d",
			last.GridSize, last.GridSize, last.SequenceLength)
	}
	if last.TimeLimit != 8 || last.AllowedMistakes != 0 {
		t.Errorf("level 10: expected limit 8 mistakes 0, got %d / %d",
			last.TimeLimit, last.AllowedMistakes)
	}
}

func TestFocusGridLevels_Monotone(t *testing.T) {
	for _, advanced := range []bool{false, true} {
		levels := catalog.FocusGridLevels(advanced)
		for i := 1; i < len(levels); i++ {
			if levels[i].Target <= levels[i-1].Target {
				t.Errorf("advanced=%v level %d: target not increasing", advanced, i+1)
			}
			if levels[i].TimeLimit > levels[i-1].TimeLimit {
				t.Errorf("advanced=%v level %d: time limit increased", advanced, i+1)
			}
			if levels[i].DifficultyMultiplier <= levels[i-1].DifficultyMultiplier {
				t.Errorf("advanced=%v level %d: multiplier not increasing", advanced, i+1)
			}
		}
	}
}

func TestPlanSprintLevels_Advanced(t *testing.T) {
	levels := catalog.PlanSprintLevels(true)
	if len(levels) != 10 {
		t.Fatalf("expected 10 levels, got %d", len(levels))
	}
	if levels[0].Target != 8 {
		t.Errorf("level 1: expected task target 8, got %d", levels[0].Target)
	}
	if levels[9].Target != 12 {
		t.Errorf("level 10: expected task target 12, got %d", levels[9].Target)
	}
	if levels[9].TimeLimit != 25 {
		t.Errorf("level 10: expected time limit 25, got %d", levels[9].TimeLimit)
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Rule Set Tests
// ═══════════════════════════════════════════════════════════════════════════

func TestRulesForLevel_GrowsWithLevel(t *testing.T) {
	cases := []struct {
		level int
		count int
	}{
		{1, 1}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {6, 3}, {7, 4}, {10, 4},
	}
	for _, c := range cases {
		rules := catalog.RulesForLevel(c.level)
		if len(rules) != c.count {
			t.Errorf("level %d: expected %d rules, got %d", c.level, c.count, len(rules))
		}
	}

	rules := catalog.RulesForLevel(1)
	if rules[0].Kind != domain.RuleQuickFirst {
		t.Errorf("level 1: expected quick_first, got %s", rules[0].Kind)
	}
}

func TestBadges_Catalog(t *testing.T) {
	if len(catalog.Badges) != 18 {
		t.Fatalf("expected 18 badges, got %d", len(catalog.Badges))
	}
	for _, b := range catalog.Badges {
		if b.UnlockedAt != nil {
			t.Errorf("badge %s: catalog entries must start locked", b.ID)
		}
	}

	badge, ok := catalog.BadgeByID("thirty_day_diamond")
	if !ok {
		t.Fatal("expected thirty_day_diamond badge")
	}
	if badge.Rarity != domain.RarityLegendary {
		t.Errorf("expected legendary rarity, got %s", badge.Rarity)
	}
}
