package logger

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/crypto-market/internal/config"
)

var levels = map[string]slog.Level{
	"":        slog.LevelInfo,
	"info":    slog.LevelInfo,
	"debug":   slog.LevelDebug,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// New - slog-логгер по секции logger; пишет в w и становится логгером по умолчанию.
// Неизвестный уровень понижается до info, неизвестный формат до text.
func New(cfg *config.LoggerConfig, w io.Writer) *slog.Logger {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{
		Level:       level,
		AddSource:   true,
		ReplaceAttr: replaceAttrs,
	}

	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if strings.EqualFold(strings.TrimSpace(cfg.Format), "json") {
		handler = slog.NewJSONHandler(w, opts)
	}

	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}

func parseLevel(s string) (slog.Level, error) {
	if l, ok := levels[strings.ToLower(strings.TrimSpace(s))]; ok {
		return l, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// replaceAttrs - время в UTC, уровень заглавными, источник как file.go:строка
func replaceAttrs(_ []string, a slog.Attr) slog.Attr {
	switch v := a.Value.Any().(type) {
	case time.Time:
		if a.Key == slog.TimeKey {
			a.Value = slog.StringValue(v.UTC().Format(time.RFC3339))
		}
	case slog.Level:
		if a.Key == slog.LevelKey {
			a.Value = slog.StringValue(v.String())
		}
	case *slog.Source:
		if a.Key == slog.SourceKey && v != nil {
			a.Value = slog.StringValue(fmt.Sprintf("%s:%d", filepath.Base(v.File), v.Line))
		}
	}
	return a
}
