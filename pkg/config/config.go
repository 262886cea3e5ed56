// Package config loads the date picker settings from .datepick.yaml and
// DATEPICK_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"cloudeng.io/errors"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/datepick/pkg/locale"
	"tableflip.dev/datepick/pkg/picker"
)

// Config is the resolved configuration.
type Config struct {
	Locale           string `mapstructure:"locale"`
	WeekStart        string `mapstructure:"week_start"`
	IncludeTime      bool   `mapstructure:"include_time"`
	RangeModeLabel   string `mapstructure:"range_mode_label"`
	IncludeTimeLabel string `mapstructure:"include_time_label"`
	LogFile          string `mapstructure:"log_file"`
	LogLevel         string `mapstructure:"log_level"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Locale:           systemLocale(),
		RangeModeLabel:   picker.DefaultRangeModeLabel,
		IncludeTimeLabel: picker.DefaultIncludesTimeLabel,
		LogLevel:         "info",
	}
}

func systemLocale() string {
	for _, env := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}
	return locale.Default.String()
}

// Load reads .datepick.yaml from $DATEPICK_CONFIG_PATH, the working
// directory and the home directory, in that order. A missing file is not an
// error.
func Load() (*Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault("locale", def.Locale)
	v.SetDefault("week_start", def.WeekStart)
	v.SetDefault("include_time", def.IncludeTime)
	v.SetDefault("range_mode_label", def.RangeModeLabel)
	v.SetDefault("include_time_label", def.IncludeTimeLabel)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("log_level", def.LogLevel)

	v.SetConfigName(".datepick") // .yaml is implicit
	v.SetEnvPrefix("DATEPICK")
	v.AutomaticEnv()

	if override := os.Getenv("DATEPICK_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	errs := &errors.M{}
	if strings.TrimSpace(c.WeekStart) != "" {
		if _, err := locale.ParseWeekday(c.WeekStart); err != nil {
			errs.Append(fmt.Errorf("week_start: %w", err))
		}
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs.Append(fmt.Errorf("log_level: %w", err))
	}
	if c.LogFile != "" {
		if _, err := homedir.Expand(c.LogFile); err != nil {
			errs.Append(fmt.Errorf("log_file: %w", err))
		}
	}
	return errs.Err()
}

// ResolveLocale returns the configured locale with the week_start override
// applied.
func (c *Config) ResolveLocale() locale.Locale {
	l := locale.Parse(c.Locale)
	if w, ok := c.FirstWeekday(); ok {
		l = l.WithFirstWeekday(w)
	}
	return l
}

// FirstWeekday returns the week_start override, if any.
func (c *Config) FirstWeekday() (time.Weekday, bool) {
	if strings.TrimSpace(c.WeekStart) == "" {
		return time.Sunday, false
	}
	w, err := locale.ParseWeekday(c.WeekStart)
	if err != nil {
		return time.Sunday, false
	}
	return w, true
}

// LogPath returns the expanded log file path, or "" when logging is off.
func (c *Config) LogPath() string {
	if c.LogFile == "" {
		return ""
	}
	p, err := homedir.Expand(c.LogFile)
	if err != nil {
		return c.LogFile
	}
	return p
}

// Level returns the slog level for LogLevel.
func (c *Config) Level() slog.Level {
	l, _ := parseLevel(c.LogLevel)
	return l
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, err
	}
	return l, nil
}
