package api_test

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/ritualforge/ritual/internal/api"
	"github.com/ritualforge/ritual/internal/app/plan"
	"github.com/ritualforge/ritual/internal/app/progress"
	"github.com/ritualforge/ritual/internal/infra/store"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	gw, err := store.OpenFile(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	ledger, err := progress.NewLedger(gw)
	if err != nil {
		t.Fatalf("new ledger: %v", err)
	}
	rng := rand.New(rand.NewSource(11))
	srv := api.NewServer(ledger, plan.NewBuilder(ledger, rng), rng)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, ts *httptest.Server, path string, wantStatus int) map[string]any {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s: expected %d, got %d", path, wantStatus, resp.StatusCode)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("GET %s: decode: %v", path, err)
	}
	return body
}

func postJSON(t *testing.T, ts *httptest.Server, path string, payload any, wantStatus int) map[string]any {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(ts.URL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("POST %s: expected %d, got %d", path, wantStatus, resp.StatusCode)
	}

	var body map[string]any
	if resp.ContentLength != 0 {
		json.NewDecoder(resp.Body).Decode(&body)
	}
	return body
}

func TestHealth(t *testing.T) {
	ts := testServer(t)
	body := getJSON(t, ts, "/health", http.StatusOK)
	if body["status"] != "ok" {
		t.Errorf("expected ok status, got %v", body["status"])
	}
}

func TestCatalogRoutes(t *testing.T) {
	ts := testServer(t)

	body := getJSON(t, ts, "/api/catalog/tracks", http.StatusOK)
	if tracks, ok := body["tracks"].([]any); !ok || len(tracks) != 4 {
		t.Errorf("expected 4 tracks, got %v", body["tracks"])
	}

	body = getJSON(t, ts, "/api/catalog/drills", http.StatusOK)
	if drills, ok := body["drills"].([]any); !ok || len(drills) != 6 {
		t.Errorf("expected 6 drills, got %v", body["drills"])
	}

	getJSON(t, ts, "/api/catalog/drills/focus_grid_basic", http.StatusOK)
	getJSON(t, ts, "/api/catalog/drills/unknown", http.StatusNotFound)

	body = getJSON(t, ts, "/api/catalog/rules/7", http.StatusOK)
	if rules, ok := body["rules"].([]any); !ok || len(rules) != 4 {
		t.Errorf("expected 4 rules at level 7, got %v", body["rules"])
	}

	getJSON(t, ts, "/api/catalog/tasks/general", http.StatusOK)
	getJSON(t, ts, "/api/catalog/tasks/bogus", http.StatusNotFound)
}

func TestSessionLifecycle(t *testing.T) {
	ts := testServer(t)

	started := postJSON(t, ts, "/api/sessions", map[string]any{
		"drill_id":         "focus_grid_basic",
		"difficulty":       "easy",
		"duration_minutes": 3,
	}, http.StatusCreated)

	id, _ := started["session_id"].(string)
	if id == "" {
		t.Fatal("expected a session id")
	}
	round, ok := started["focus_round"].(map[string]any)
	if !ok {
		t.Fatal("expected a focus round in the response")
	}

	seqRaw := round["sequence"].([]any)
	taps := make([]int, len(seqRaw))
	for i, v := range seqRaw {
		taps[i] = int(v.(float64))
	}

	result := postJSON(t, ts, "/api/sessions/"+id+"/taps", map[string]any{
		"taps":            taps,
		"elapsed_seconds": 3,
	}, http.StatusOK)
	if passed, _ := result["passed"].(bool); !passed {
		t.Error("expected first round to pass with the exact sequence")
	}

	final := postJSON(t, ts, "/api/sessions/"+id+"/finalize", map[string]any{}, http.StatusOK)
	if _, ok := final["summary"]; !ok {
		t.Error("expected a summary in the finalize response")
	}

	// Finalize drops the session.
	getJSON(t, ts, "/api/sessions/"+id, http.StatusNotFound)

	// The completion reached the ledger.
	prog := getJSON(t, ts, "/api/progress/", http.StatusOK)
	progress, _ := prog["progress"].(map[string]any)
	if progress["total_drills"].(float64) != 1 {
		t.Errorf("expected 1 recorded drill, got %v", progress["total_drills"])
	}
}

func TestSessionSubmit_ConcurrentSameSession(t *testing.T) {
	ts := testServer(t)

	started := postJSON(t, ts, "/api/sessions", map[string]any{
		"drill_id":   "focus_grid_basic",
		"difficulty": "easy",
	}, http.StatusCreated)
	id, _ := started["session_id"].(string)
	if id == "" {
		t.Fatal("expected a session id")
	}

	// Empty taps fail the round; exactly one submit may win the race to
	// end the session, every other must see it already over.
	const workers = 8
	payload, _ := json.Marshal(map[string]any{"taps": []int{}, "elapsed_seconds": 0})

	statuses := make(chan int, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := http.Post(ts.URL+"/api/sessions/"+id+"/taps", "application/json", bytes.NewReader(payload))
			if err != nil {
				statuses <- 0
				return
			}
			resp.Body.Close()
			statuses <- resp.StatusCode
		}()
	}
	wg.Wait()
	close(statuses)

	var ok, conflict int
	for code := range statuses {
		switch code {
		case http.StatusOK:
			ok++
		case http.StatusConflict:
			conflict++
		default:
			t.Errorf("unexpected status %d", code)
		}
	}
	if ok != 1 {
		t.Errorf("expected exactly 1 accepted submit, got %d", ok)
	}
	if conflict != workers-1 {
		t.Errorf("expected %d conflicts, got %d", workers-1, conflict)
	}
}

func TestStartSession_Validation(t *testing.T) {
	ts := testServer(t)

	postJSON(t, ts, "/api/sessions", map[string]any{
		"drill_id": "unknown", "difficulty": "easy",
	}, http.StatusNotFound)

	postJSON(t, ts, "/api/sessions", map[string]any{
		"drill_id": "focus_grid_advanced", "difficulty": "easy",
	}, http.StatusBadRequest)

	postJSON(t, ts, "/api/sessions", map[string]any{
		"drill_id": "focus_grid_basic", "difficulty": "easy", "duration_minutes": 42,
	}, http.StatusBadRequest)
}

func TestPlanRoutes(t *testing.T) {
	ts := testServer(t)

	body := getJSON(t, ts, "/api/plan/today", http.StatusOK)
	drills, ok := body["drills"].([]any)
	if !ok || len(drills) == 0 {
		t.Fatalf("expected plan entries, got %v", body["drills"])
	}

	first := drills[0].(map[string]any)
	drill := first["drill"].(map[string]any)

	updated := postJSON(t, ts, "/api/plan/complete", map[string]any{
		"drill_id": drill["id"],
	}, http.StatusOK)
	entries := updated["drills"].([]any)
	if done, _ := entries[0].(map[string]any)["is_completed"].(bool); !done {
		t.Error("expected first plan entry marked completed")
	}
}

func TestProgressRoutes(t *testing.T) {
	ts := testServer(t)

	postJSON(t, ts, "/api/progress/completions", map[string]any{
		"drill_id": "plan_sprint_mind", "score": 90, "duration_minutes": 5,
		"difficulty": "easy", "level_reached": 2,
	}, http.StatusOK)

	postJSON(t, ts, "/api/progress/completions", map[string]any{
		"drill_id": "unknown", "score": 90,
	}, http.StatusNotFound)

	body := getJSON(t, ts, "/api/progress/badges", http.StatusOK)
	if unlocked, ok := body["unlocked"].([]any); !ok || len(unlocked) == 0 {
		t.Error("expected at least one badge after a completion")
	}

	postJSON(t, ts, "/api/progress/track", map[string]any{"track_id": "mind"}, http.StatusNoContent)
	postJSON(t, ts, "/api/progress/track", map[string]any{"track_id": "nope"}, http.StatusNotFound)

	postJSON(t, ts, "/api/progress/onboarding", map[string]any{}, http.StatusNoContent)
	postJSON(t, ts, "/api/progress/tutorials", map[string]any{"tutorial_id": "focus_grid"}, http.StatusNoContent)

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/progress/", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE progress: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204 on reset, got %d", resp.StatusCode)
	}

	prog := getJSON(t, ts, "/api/progress/", http.StatusOK)
	state := prog["progress"].(map[string]any)
	if state["total_drills"].(float64) != 0 {
		t.Errorf("expected fresh state after reset, got %v drills", state["total_drills"])
	}
}
