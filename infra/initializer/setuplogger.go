package initializer

import (
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/fxconv/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// SetupLogger builds the process logger writing to w (stdout when nil) and
// installs it as the slog default.
func SetupLogger(cfg *config.Log, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	if cfg == nil {
		cfg = &config.Log{Format: "text"}
	}
	styles := log.DefaultStyles()
	infoTxtColor := lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warnTxtColor := lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	errorTxtColor := lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}
	debugTxtColor := lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}

	levels := []struct {
		level log.Level
		icon  string
		color lipgloss.AdaptiveColor
	}{
		{log.ErrorLevel, "❌", errorTxtColor},
		{log.WarnLevel, "⚠️", warnTxtColor},
		{log.InfoLevel, "ℹ️", infoTxtColor},
		{log.DebugLevel, "🐛", debugTxtColor},
	}
	for _, l := range levels {
		styles.Levels[l.level] = lipgloss.NewStyle().
			SetString(l.icon).
			Bold(true).
			Padding(0, 1).
			Foreground(l.color)
	}

	styles.Keys["error"] = lipgloss.NewStyle().Foreground(errorTxtColor)
	styles.Values["error"] = lipgloss.NewStyle().Bold(true)
	for _, k := range []string{"provider", "source", "store"} {
		styles.Keys[k] = lipgloss.NewStyle().Foreground(infoTxtColor)
		styles.Values[k] = lipgloss.NewStyle().Bold(true)
	}
	for _, k := range []string{"from", "to", "date", "rate", "result"} {
		styles.Keys[k] = lipgloss.NewStyle().Foreground(debugTxtColor)
	}

	formattersMap := map[string]log.Formatter{
		"json": log.JSONFormatter,
		"text": log.TextFormatter,
	}
	formatter := log.TextFormatter
	if f, ok := formattersMap[cfg.Format]; ok {
		formatter = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    cfg.Level < 0,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})

	logger.SetStyles(styles)

	slogger := slog.New(logger)
	slog.SetDefault(slogger)

	return slogger
}
