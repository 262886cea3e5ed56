package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
)

func isolate(t *testing.T) string {
	t.Helper()
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("DATEPICK_CONFIG_PATH", "")
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_TIME", "")
	t.Setenv("LANG", "")
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Locale != "en-US" {
		t.Fatalf("expected en-US, got %q", cfg.Locale)
	}
	if cfg.RangeModeLabel != "Range Mode" || cfg.IncludeTimeLabel != "Include Time" {
		t.Fatalf("unexpected labels %+v", cfg)
	}
	if cfg.LogPath() != "" {
		t.Fatalf("expected logging off, got %q", cfg.LogPath())
	}
}

func TestLoadFromFileAndEnv(t *testing.T) {
	dir := isolate(t)
	conf := filepath.Join(dir, "conf")
	if err := os.MkdirAll(conf, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	yaml := strings.Join([]string{
		"locale: de_DE",
		"week_start: sunday",
		"include_time: true",
		"range_mode_label: Zeitraum",
		"log_file: ~/picker.log",
		"log_level: debug",
	}, "\n")
	if err := os.WriteFile(filepath.Join(conf, ".datepick.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("DATEPICK_CONFIG_PATH", conf)
	t.Setenv("DATEPICK_INCLUDE_TIME_LABEL", "Uhrzeit")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.IncludeTime || cfg.RangeModeLabel != "Zeitraum" || cfg.IncludeTimeLabel != "Uhrzeit" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if got := cfg.ResolveLocale().FirstWeekday(); got != time.Sunday {
		t.Fatalf("expected week_start override, got %v", got)
	}
	if got, want := cfg.LogPath(), filepath.Join(dir, "picker.log"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", cfg.Level())
	}
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := Default()
	cfg.WeekStart = "someday"
	cfg.LogLevel = "chatty"
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "week_start") || !strings.Contains(msg, "log_level") {
		t.Fatalf("expected both problems reported, got %q", msg)
	}
}

func TestResolveLocaleWithoutOverride(t *testing.T) {
	cfg := Default()
	cfg.Locale = "en_GB.UTF-8"
	if got := cfg.ResolveLocale().FirstWeekday(); got != time.Monday {
		t.Fatalf("expected Monday, got %v", got)
	}
	if _, ok := cfg.FirstWeekday(); ok {
		t.Fatalf("expected no override")
	}
}
