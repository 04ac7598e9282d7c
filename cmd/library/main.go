package main

import (
	"io"
	"log/slog"
	"os"
	"path"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload"

	"library/internal/catalog"
	"library/internal/config"
	"library/internal/filter"
	"library/internal/logger"
	"library/internal/tui"
)

func main() {
	_, thisFile, _, _ := runtime.Caller(0)

	cfg, err := config.Load()
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}

	// The terminal belongs to the screen, so logs only go to LOG_FILE when it is set.
	var w io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			slog.Error("Failed to open LOG_FILE: " + err.Error())
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	l, err := logger.New(w, cfg.LogLevel, cfg.LogFormat, path.Dir(path.Dir(path.Dir(thisFile))), nil)
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}

	m := tui.NewModel(catalog.Sample(), filter.NewEngine(cfg.Locale), l)

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		l.Error("Screen failed: " + err.Error())
		slog.Error(err.Error())
		os.Exit(1)
	}
}
