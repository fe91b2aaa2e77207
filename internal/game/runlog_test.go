package game

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRunLogDirXDGEnvOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	dir, err := runLogDir()
	if err != nil {
		t.Fatalf("runLogDir returned error: %v", err)
	}
	want := filepath.Join(tmp, "delve")
	if dir != want {
		t.Errorf("dir = %q; want %q", dir, want)
	}
}

func TestRunLogDirDefaultFallback(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")

	dir, err := runLogDir()
	if err != nil {
		t.Skip("skipping: no user home directory available in test environment")
	}
	suffix := filepath.Join(".local", "share", "delve")
	if !strings.HasSuffix(dir, suffix) {
		t.Errorf("dir %q does not end with %q", dir, suffix)
	}
}

func TestSaveRunLog(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	log := RunLog{
		RunID:         "run-1",
		Seed:          42,
		TurnsPlayed:   17,
		EnemiesKilled: map[string]int{"orc": 2},
		CauseOfDeath:  "troll",
		Outcome:       "died",
	}
	if err := saveRunLog(log); err != nil {
		t.Fatalf("saveRunLog: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(tmp, "delve", "runs.jsonl"))
	if err != nil {
		t.Fatalf("runs.jsonl not created: %v", err)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Errorf("log entry should end with newline; got: %q", data)
	}
	var got RunLog
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("entry is not JSON: %v", err)
	}
	if got.Seed != 42 || got.EnemiesKilled["orc"] != 2 || got.Outcome != "died" {
		t.Errorf("decoded = %+v", got)
	}
}

func TestSaveRunLogAppendsMultiple(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	for i := range 3 {
		if err := saveRunLog(RunLog{RunID: newRunID(), TurnsPlayed: i, Outcome: "quit"}); err != nil {
			t.Fatal(err)
		}
	}

	data, err := os.ReadFile(filepath.Join(tmp, "delve", "runs.jsonl"))
	if err != nil {
		t.Fatalf("runs.jsonl not found: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("expected 3 log lines, got %d", len(lines))
	}
}

func TestSaveRunLogUnwritableDir(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_DATA_HOME", blocker)
	if err := saveRunLog(RunLog{RunID: "x"}); err == nil {
		t.Error("expected an error when the data dir is a file")
	}
}

func TestBuildRunLog(t *testing.T) {
	e := newTestEngine(t, orcAt(3, 2))
	e.World().Get(1).Fighter.HP = 1
	e.Step(context.Background(), ActionMoveRight)
	e.Step(context.Background(), ActionQuit)

	started := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	log := buildRunLog("id", 7, started, e)
	if log.Outcome != "quit" || log.TurnsPlayed != 1 || log.EnemiesKilled["orc"] != 1 {
		t.Errorf("log = %+v", log)
	}
	if log.DamageDealt != 5 {
		t.Errorf("damage dealt = %d; want 5", log.DamageDealt)
	}
	if !log.StartedAt.Equal(started) {
		t.Errorf("started = %v", log.StartedAt)
	}

	e.Player().Alive = false
	if got := buildRunLog("id", 7, started, e).Outcome; got != "died" {
		t.Errorf("outcome = %q; want died", got)
	}
}

func TestNewRunIDUnique(t *testing.T) {
	if newRunID() == newRunID() {
		t.Error("run ids should differ")
	}
}
