package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Level     slog.Level
	Format    string
	Output    io.Writer
	AddSource bool
}

// DefaultConfig keeps stdout free for the result line.
func DefaultConfig() Config {
	return Config{
		Level:     slog.LevelWarn,
		Format:    "text",
		Output:    os.Stderr,
		AddSource: false,
	}
}

func Init(cfg Config) {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     cfg.Level,
		AddSource: cfg.AddSource,
	}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(cfg.Output, opts)
	} else {
		handler = slog.NewTextHandler(cfg.Output, opts)
	}

	slog.SetDefault(slog.New(handler))
}

func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// ForComponent resolves the default logger at call time, so loggers created
// before Init still pick up the configured handler.
func ForComponent(component string) *Component {
	return &Component{name: component}
}

type Component struct {
	name string
}

func (c *Component) logger() *slog.Logger {
	return slog.Default().With("component", c.name)
}

func (c *Component) Debug(msg string, args ...any) { c.logger().Debug(msg, args...) }
func (c *Component) Info(msg string, args ...any)  { c.logger().Info(msg, args...) }
func (c *Component) Warn(msg string, args ...any)  { c.logger().Warn(msg, args...) }
func (c *Component) Error(msg string, args ...any) { c.logger().Error(msg, args...) }
