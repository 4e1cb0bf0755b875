package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewWithWriterFollowsGlobalLevel(t *testing.T) {
	prev := log.GetLevel()
	defer log.SetLevel(prev)

	log.SetLevel(log.WarnLevel)
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "server")
	l.Info("hidden")
	l.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "server") {
		t.Errorf("missing warn line or prefix: %q", out)
	}
}

func TestNewWithConfigIgnoresGlobalLevel(t *testing.T) {
	prev := log.GetLevel()
	defer log.SetLevel(prev)

	log.SetLevel(log.ErrorLevel)
	l := NewWithConfig("banner", log.InfoLevel, false, false, log.TextFormatter)
	if got := l.GetLevel(); got != log.InfoLevel {
		t.Errorf("level = %v, want info", got)
	}
	if l.GetPrefix() != "banner" {
		t.Errorf("prefix = %q", l.GetPrefix())
	}
}
