package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/km-arc/go-signup/config"
	"github.com/km-arc/go-signup/http/validation"
	"github.com/km-arc/go-signup/logger"
	"github.com/km-arc/go-signup/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the form; logs only go to TUI_LOG_FILE.
	log := logger.Discard()
	if path := config.Get("TUI_LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Printf("Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log = logger.New(
			logger.WithOutput(f),
			logger.WithFormat(logger.FormatText),
			logger.WithLevelName(cfg.LogLevel()),
		)
	}

	v := validation.New(validation.WithLogger(log))
	p := tea.NewProgram(tui.New(v, tui.WithLogger(log)), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running form: %v\n", err)
		os.Exit(1)
	}
}
