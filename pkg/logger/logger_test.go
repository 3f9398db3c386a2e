package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/NastyaGoryachaya/crypto-market/internal/config"
)

func TestNew_JSONLevelAndSource(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	log := New(&config.LoggerConfig{Level: "warn", Format: "json"}, &buf)

	log.Info("dropped")
	log.Warn("kept", slog.String("symbol", "BTC"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if rec["level"] != "WARN" {
		t.Fatalf("level = %v, want WARN", rec["level"])
	}
	if src, _ := rec["source"].(string); !strings.HasPrefix(src, "logger_test.go:") {
		t.Fatalf("source = %v, want short file:line", rec["source"])
	}
	if rec["symbol"] != "BTC" {
		t.Fatalf("symbol attr = %v", rec["symbol"])
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		got, err := parseLevel(in)
		if err != nil {
			t.Fatalf("parseLevel(%q): %v", in, err)
		}
		if got.Level() != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := parseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNew_TextByDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	log := New(&config.LoggerConfig{Level: "loud"}, &buf)

	log.Debug("hidden")
	log.Info("market published", slog.Int("count", 3))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("unknown level must fall back to info: %q", out)
	}
	if !strings.Contains(out, "level=INFO") || !strings.Contains(out, "count=3") {
		t.Fatalf("unexpected text output: %q", out)
	}
}
