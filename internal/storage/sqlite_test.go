package storage

import (
	"testing"
	"time"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSessionsAreIndependent(t *testing.T) {
	first := openStore(t)
	if err := first.Record("endless", 0, 500); err != nil {
		t.Fatal(err)
	}
	first.Close()

	second := openStore(t)
	best, err := second.Best()
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("new session best = %d, expected 0", best)
	}
}

func TestStoreMemoryIsEmpty(t *testing.T) {
	store := openStore(t)

	best, err := store.Best()
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best 0 on an empty board, got %d", best)
	}

	rounds, err := store.TopScores("", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(rounds) != 0 {
		t.Errorf("Expected no rounds, got %d", len(rounds))
	}
}

func TestStoreRecordAndRetrieve(t *testing.T) {
	store := openStore(t)

	rounds := []struct {
		mode         string
		level, score int
	}{
		{"endless", 0, 100},
		{"endless", 0, 50},
		{"level", 3, 200},
		{"endless", 0, 150},
	}
	for _, r := range rounds {
		if err := store.Record(r.mode, r.level, r.score); err != nil {
			t.Fatalf("Record() failed: %v", err)
		}
	}

	best, err := store.Best()
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 200 {
		t.Errorf("Expected best 200, got %d", best)
	}

	endless, err := store.TopScores("endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	want := []int{150, 100, 50}
	if len(endless) != len(want) {
		t.Fatalf("Expected %d endless rounds, got %d", len(want), len(endless))
	}
	for i, score := range want {
		if endless[i].Score != score {
			t.Errorf("endless[%d].Score = %d, expected %d", i, endless[i].Score, score)
		}
		if endless[i].CreatedAt.IsZero() {
			t.Errorf("endless[%d] has no timestamp", i)
		}
	}

	all, err := store.TopScores("", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 2 || all[0].Mode != "level" || all[0].Level != 3 {
		t.Errorf("Unexpected overall top: %+v", all)
	}
}

func TestStoreStats(t *testing.T) {
	store := openStore(t)
	for _, s := range []int{10, 20, 30} {
		if err := store.Record("endless", 0, s); err != nil {
			t.Fatal(err)
		}
	}
	if err := store.Record("level", 2, 5); err != nil {
		t.Fatal(err)
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected 2 modes, got %d", len(stats))
	}

	e := stats[0]
	if e.Mode != "endless" || e.Rounds != 3 || e.HighScore != 30 || e.AvgScore != 20 {
		t.Errorf("Unexpected endless stats: %+v", e)
	}
	if stats[1].MaxLevel != 2 {
		t.Errorf("Expected max level 2, got %d", stats[1].MaxLevel)
	}
}

func TestStoreRejectsEmptyMode(t *testing.T) {
	store := openStore(t)
	if err := store.Record("", 0, 1); err == nil {
		t.Error("Expected error for a round without mode")
	}
}

func TestStoreClear(t *testing.T) {
	store := openStore(t)
	if err := store.Record("endless", 0, 42); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if best, _ := store.Best(); best != 0 {
		t.Errorf("Expected empty board after Clear, best = %d", best)
	}
}

func TestParseTime(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{"time", ts, ts},
		{"string", "2024-05-01 12:30:00", ts},
		{"garbage", "yesterday", time.Time{}},
		{"nil", nil, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseTime(tt.in); !got.Equal(tt.want) {
				t.Errorf("parseTime(%v) = %v, expected %v", tt.in, got, tt.want)
			}
		})
	}
}
