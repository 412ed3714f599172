// OneHot: grouped toggle buttons.
//
// A cross-platform desktop demo of radio-style toggle buttons: checking a
// button unchecks every other button sharing its group.
//
// Build:
//   go build -o onehot ./cmd/onehot
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o onehot.exe ./cmd/onehot
//   GOOS=darwin  GOARCH=amd64 go build -o onehot-darwin ./cmd/onehot
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/piwi3910/OneHot/internal/logger"
	"github.com/piwi3910/OneHot/internal/project"
	"github.com/piwi3910/OneHot/internal/ui"
)

func main() {
	configPath := flag.String("config", project.DefaultConfigPath(), "path to config.json")
	flag.Parse()

	// Optional; ONEHOT_* variables may also come from the real environment.
	_ = godotenv.Load()

	cfg, err := project.LoadAppConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "onehot: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "onehot: invalid config %s: %v\n", *configPath, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "onehot: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	application := app.NewWithID("com.piwi3910.onehot")
	window := application.NewWindow("OneHot")

	appUI, err := ui.NewApp(application, window, cfg, log)
	if err != nil {
		log.Fatal("failed to create UI", zap.Error(err))
	}
	appUI.SetConfigPath(*configPath)
	appUI.ApplyTheme()
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	appUI.AttachPlatformHooks()
	window.SetOnClosed(appUI.Close)

	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	if cfg.Window.Center {
		window.CenterOnScreen()
	}

	log.Info("starting",
		zap.String("config", *configPath),
		zap.String("theme", cfg.Theme),
		zap.Int("groups", len(cfg.Groups)),
	)
	window.ShowAndRun()
}
