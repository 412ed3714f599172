// OneHot TUI: grouped toggle buttons in the terminal.
//
// Build:
//   go build -o onehot-tui ./cmd/onehot-tui

package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/piwi3910/OneHot/internal/group"
	"github.com/piwi3910/OneHot/internal/logger"
	"github.com/piwi3910/OneHot/internal/project"
	"github.com/piwi3910/OneHot/internal/tui"
)

func main() {
	configPath := flag.String("config", project.DefaultConfigPath(), "path to config.json")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := project.LoadAppConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "onehot-tui: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to bubbletea; console logging would corrupt it.
	log := logger.Nop()
	if cfg.Log.Output == "file" {
		if log, err = logger.New(cfg.Log); err != nil {
			fmt.Fprintf(os.Stderr, "onehot-tui: %v\n", err)
			os.Exit(1)
		}
	}
	defer func() { _ = log.Sync() }()

	m, err := tui.New(cfg, group.NewRegistry(group.WithLogger(log.Named("group"))))
	if err != nil {
		fmt.Fprintf(os.Stderr, "onehot-tui: invalid config %s: %v\n", *configPath, err)
		os.Exit(1)
	}

	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Error("program failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "onehot-tui: %v\n", err)
		os.Exit(1)
	}
}
