package plan_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/ritualforge/ritual/internal/app/plan"
	"github.com/ritualforge/ritual/internal/app/progress"
	"github.com/ritualforge/ritual/internal/domain"
	"github.com/ritualforge/ritual/internal/infra/store"
)

func testBuilder(t *testing.T, seed int64) (*plan.Builder, *progress.Ledger) {
	t.Helper()
	gw, err := store.OpenFile(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	ledger, err := progress.NewLedger(gw)
	if err != nil {
		t.Fatalf("new ledger: %v", err)
	}
	return plan.NewBuilder(ledger, rand.New(rand.NewSource(seed))), ledger
}

func noon(d int) time.Time {
	return time.Date(2026, 5, d, 12, 0, 0, 0, time.UTC)
}

func TestToday_ThreeEntriesNoDuplicates(t *testing.T) {
	builder, _ := testBuilder(t, 1)

	p := builder.TodayAt(noon(1))
	if len(p.Drills) == 0 || len(p.Drills) > 3 {
		t.Fatalf("expected 1-3 entries, got %d", len(p.Drills))
	}

	seen := map[string]bool{}
	for _, entry := range p.Drills {
		if seen[entry.Drill.ID] {
			t.Errorf("drill %s planned twice", entry.Drill.ID)
		}
		seen[entry.Drill.ID] = true
	}

	// Default track is focus; its first recommendation leads.
	if p.Drills[0].Drill.ID != "focus_grid_basic" {
		t.Errorf("expected focus_grid_basic first, got %s", p.Drills[0].Drill.ID)
	}
	if p.Drills[0].Reason != domain.ReasonRecommended {
		t.Errorf("expected recommended reason, got %q", p.Drills[0].Reason)
	}
}

func TestToday_StableWithinDay(t *testing.T) {
	builder, _ := testBuilder(t, 1)

	morning := builder.TodayAt(noon(1))
	evening := builder.TodayAt(noon(1).Add(8 * time.Hour))

	if len(morning.Drills) != len(evening.Drills) {
		t.Fatal("plan changed within the same day")
	}
	for i := range morning.Drills {
		if morning.Drills[i].ID != evening.Drills[i].ID {
			t.Errorf("entry %d regenerated within the same day", i)
		}
	}
}

func TestToday_RegeneratesOnNewDay(t *testing.T) {
	builder, _ := testBuilder(t, 1)

	first := builder.TodayAt(noon(1))
	next := builder.TodayAt(noon(2))

	if domain.DateKey(next.Date) == domain.DateKey(first.Date) {
		t.Error("expected a plan dated for the new day")
	}
	for i := range first.Drills {
		for j := range next.Drills {
			if first.Drills[i].ID == next.Drills[j].ID {
				t.Error("entry ids must be fresh per day")
			}
		}
	}
}

func TestToday_ReflectsCompletionHistory(t *testing.T) {
	builder, ledger := testBuilder(t, 1)

	if _, err := ledger.RecordCompletionAt(noon(1), "focus_grid_basic", 100, 3, "Easy", 2, false); err != nil {
		t.Fatalf("record: %v", err)
	}

	p := builder.TodayAt(noon(1))
	for _, entry := range p.Drills {
		if entry.Drill.ID == "focus_grid_basic" && !entry.IsCompleted {
			t.Error("expected completed flag from same-day history")
		}
	}
}

func TestMarkCompleted_FlipsFlagInPlace(t *testing.T) {
	builder, _ := testBuilder(t, 1)

	p := builder.TodayAt(noon(1))
	target := p.Drills[0].Drill.ID

	builder.MarkCompleted(target)

	updated := builder.TodayAt(noon(1))
	if len(updated.Drills) != len(p.Drills) {
		t.Fatal("mark completed must not add or remove entries")
	}
	for i, entry := range updated.Drills {
		if entry.Drill.ID == target && !entry.IsCompleted {
			t.Error("expected entry marked completed")
		}
		if entry.ID != p.Drills[i].ID {
			t.Error("entries reordered by mark completed")
		}
	}
}

func TestRegenerate_RespectsSelectedTrack(t *testing.T) {
	builder, ledger := testBuilder(t, 2)

	if err := ledger.SelectTrack(domain.TrackOrder); err != nil {
		t.Fatalf("select: %v", err)
	}
	p := builder.Regenerate()

	if p.Drills[0].Drill.ID != "plan_sprint_order" {
		t.Errorf("expected order track recommendation first, got %s", p.Drills[0].Drill.ID)
	}
}

func TestVariety_DrawsFromOtherTracks(t *testing.T) {
	builder, ledger := testBuilder(t, 3)
	if err := ledger.SelectTrack(domain.TrackMind); err != nil {
		t.Fatalf("select: %v", err)
	}

	p := builder.Regenerate()
	for _, entry := range p.Drills {
		if entry.Reason == domain.ReasonVariety && entry.Drill.TrackID == domain.TrackMind {
			t.Errorf("variety pick %s came from the selected track", entry.Drill.ID)
		}
	}
}
