package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitWritesJSONToFile(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	path := filepath.Join(t.TempDir(), "nested", "delve.log")
	if err := Init(Options{Level: "debug", Format: "json", File: path}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if Log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v; want debug", Log.GetLevel())
	}
	Log.WithField("turn", 3).Debug("step")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"turn":3`) {
		t.Errorf("log line missing field: %s", data)
	}
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	if err := Init(Options{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if Log != prev {
		t.Error("failed Init must leave Log untouched")
	}
}

func TestDefaultFileHonoursXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	if got := DefaultFile(); got != "/tmp/xdg/delve/delve.log" {
		t.Errorf("DefaultFile = %q", got)
	}
}
