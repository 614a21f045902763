package initializer

import (
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/supportchain/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var levelColors = map[log.Level]lipgloss.AdaptiveColor{
	log.DebugLevel: {Light: "#7E57C2", Dark: "#7E57C2"},
	log.InfoLevel:  {Light: "#04B575", Dark: "#04B575"},
	log.WarnLevel:  {Light: "#EE6FF8", Dark: "#EE6FF8"},
	log.ErrorLevel: {Light: "#FF6B6B", Dark: "#FF6B6B"},
}

// NewLogger builds a slog.Logger backed by a styled charmbracelet logger
// writing to w.
func NewLogger(w io.Writer, cfg *config.Log) *slog.Logger {
	if cfg == nil {
		cfg = &config.Log{Format: "text", TimeFormat: "2006-01-02 15:04:05"}
	}

	styles := log.DefaultStyles()
	for level, c := range levelColors {
		styles.Levels[level] = lipgloss.NewStyle().
			SetString(levelLabel(level)).
			Bold(true).
			Padding(0, 1).
			Foreground(c)
	}
	// Keys the support chain logs on every line.
	for key, level := range map[string]log.Level{
		"handler":    log.InfoLevel,
		"tier":       log.InfoLevel,
		"handledBy":  log.InfoLevel,
		"error":      log.ErrorLevel,
		"dispatchID": log.DebugLevel,
	} {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(levelColors[level])
		styles.Values[key] = lipgloss.NewStyle().Bold(true)
	}

	formatter := log.TextFormatter
	if cfg.Format == "json" {
		formatter = log.JSONFormatter
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(styles)

	return slog.New(logger)
}

func levelLabel(level log.Level) string {
	switch level {
	case log.DebugLevel:
		return "DEBU"
	case log.InfoLevel:
		return "INFO"
	case log.WarnLevel:
		return "WARN"
	default:
		return "ERRO"
	}
}

// setupLogger builds the process logger on stderr and installs it as the slog default.
func setupLogger(cfg *config.Log) *slog.Logger {
	slogger := NewLogger(os.Stderr, cfg)
	slog.SetDefault(slogger)
	return slogger
}
