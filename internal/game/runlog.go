package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"delve/internal/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RunLog records statistics gathered during one run.
type RunLog struct {
	RunID         string         `json:"run_id"`
	Seed          int64          `json:"seed"`
	StartedAt     time.Time      `json:"started_at"`
	TurnsPlayed   int            `json:"turns_played"`
	EnemiesKilled map[string]int `json:"enemies_killed"` // species → kill count
	DamageDealt   int            `json:"damage_dealt"`
	DamageTaken   int            `json:"damage_taken"`
	CauseOfDeath  string         `json:"cause_of_death,omitempty"` // last thing that hurt the player
	Outcome       string         `json:"outcome"`                  // "died" or "quit"
}

// newRunID returns a fresh identifier for a run.
func newRunID() string {
	return uuid.NewString()
}

// buildRunLog snapshots e's statistics.
func buildRunLog(runID string, seed int64, started time.Time, e *Engine) RunLog {
	stats := e.Stats()
	outcome := "quit"
	if !e.Player().Alive {
		outcome = "died"
	}
	return RunLog{
		RunID:         runID,
		Seed:          seed,
		StartedAt:     started.UTC(),
		TurnsPlayed:   stats.Turns,
		EnemiesKilled: stats.Kills,
		DamageDealt:   stats.DamageDealt,
		DamageTaken:   stats.DamageTaken,
		CauseOfDeath:  stats.CauseOfDeath,
		Outcome:       outcome,
	}
}

// saveRunLog appends the completed run as a single JSON line to runs.jsonl.
// Failures are logged and returned; callers treat them as non-fatal.
func saveRunLog(log RunLog) error {
	if err := appendRunLog(log); err != nil {
		logger.Log.WithError(err).WithField("run_id", log.RunID).Warn("run log not saved")
		return err
	}
	logger.Log.WithFields(logrus.Fields{
		"run_id":  log.RunID,
		"turns":   log.TurnsPlayed,
		"outcome": log.Outcome,
	}).Info("run saved")
	return nil
}

func appendRunLog(log RunLog) error {
	dir, err := runLogDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create run log dir: %w", err)
	}
	data, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("encode run log: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write run log: %w", err)
	}
	return nil
}

// runLogDir returns the directory where run logs are stored.
// Follows XDG Base Directory spec: $XDG_DATA_HOME/delve,
// defaulting to ~/.local/share/delve.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "delve"), nil
}
