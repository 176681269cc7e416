package main

import (
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"

	"github.com/jorbush/rusty-pomo/internal/config"
	"github.com/jorbush/rusty-pomo/internal/core"
	"github.com/jorbush/rusty-pomo/internal/notify"
	"github.com/jorbush/rusty-pomo/internal/ui"
)

func main() {
	if err := newRootCmd(runTimer).Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runTimer(cfg *config.Config, logPath string) error {
	closeLog, err := setupLogging(logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	engine := core.New(cfg.Timer())
	notifier := notify.New(cfg.Notify())
	log.Printf("starting: focus=%dm short=%dm long=%dm long-every=%d theme=%s notifications=%t",
		cfg.FocusMinutes, cfg.ShortMinutes, cfg.LongMinutes, cfg.LongEvery, cfg.Theme, cfg.Notifications)

	m, err := ui.NewModel(engine, notifier, cfg.Theme)
	if err != nil {
		return err
	}
	return ui.Run(m)
}

// setupLogging sends the standard logger to logPath. Without a path logs are
// dropped because the terminal belongs to the UI.
func setupLogging(logPath string) (func(), error) {
	if logPath == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(logPath, "rusty-pomo")
	if err != nil {
		return nil, err
	}
	return func() { _ = f.Close() }, nil
}
