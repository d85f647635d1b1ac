package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		debug bool
		info  bool
	}{
		{"info", LogInfo, false, true},
		{"debug", LogDebug, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)

			logger.Debug("detected provider")
			if got := buf.Len() > 0; got != tt.debug {
				t.Errorf("debug written = %v, want %v", got, tt.debug)
			}

			buf.Reset()
			logger.Info("planned")
			if got := buf.Len() > 0; got != tt.info {
				t.Errorf("info written = %v, want %v", got, tt.info)
			}
		})
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug logged at info level: %q", buf.String())
	}

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug not logged after SetLogLevel: %q", buf.String())
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, LogInfo)).done("Planned elixir build")

	out := buf.String()
	if !strings.Contains(out, "Planned elixir build (") || !strings.Contains(out, "s)") {
		t.Errorf("done() = %q, want message with elapsed time", out)
	}
}

func TestLoggerFromContext(t *testing.T) {
	custom := newLogger(&bytes.Buffer{}, LogInfo)

	if got := loggerFromContext(withLogger(context.Background(), custom)); got != custom {
		t.Error("loggerFromContext did not return the attached logger")
	}
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("loggerFromContext without a logger should return log.Default()")
	}
}
