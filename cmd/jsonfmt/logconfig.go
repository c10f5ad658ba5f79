package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
)

// logFlags holds the CLI flag names for log configuration, the same shape
// MacroPower-x/log's Flags/Config split uses so the flag names themselves
// can be overridden without touching the handler construction logic.
type logFlags struct {
	Level  string
	Format string
}

// logConfig holds CLI flag values for log configuration, feeding a
// log/slog handler. Unlike MacroPower-x/log (which wraps charm.land/log/v2
// behind its own Handler type), jsonfmt's handler is built directly from
// log/slog's stdlib handlers -- see SPEC_FULL.md §3 for why this module
// doesn't take a dependency on that crate's unreleased pinned commit.
type logConfig struct {
	Level  string
	Format string
	Flags  logFlags
}

func newLogConfig() *logConfig {
	return &logConfig{Flags: logFlags{Level: "log-level", Format: "log-format"}}
}

// RegisterFlags adds logging flags to flags.
func (c *logConfig) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, c.Flags.Level, "info",
		"log level: debug, info, warn, error")
	flags.StringVar(&c.Format, c.Flags.Format, "text",
		"log format: text, json")
}

// NewLogger builds a *slog.Logger writing to w per the configured level and
// format.
func (c *logConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	switch strings.ToLower(c.Format) {
	case "", "text":
		h = slog.NewTextHandler(w, opts)
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("jsonfmt: unknown log format %q", c.Format)
	}
	return slog.New(h), nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("jsonfmt: unknown log level %q", s)
	}
}
