package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitLevelFallback(t *testing.T) {
	var buf bytes.Buffer
	Init("nonsense", "text", &buf)
	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("Expected info level, got %s", Log.GetLevel())
	}

	Init("debug", "text", &buf)
	if Log.GetLevel() != logrus.DebugLevel {
		t.Errorf("Expected debug level, got %s", Log.GetLevel())
	}
}

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	Init("info", "JSON", &buf)
	Log.WithField("phase", "StartScreen").Info("entered")

	out := buf.String()
	if !strings.HasPrefix(out, "{") || !strings.Contains(out, `"phase":"StartScreen"`) {
		t.Errorf("Expected JSON log line, got %q", out)
	}
}
