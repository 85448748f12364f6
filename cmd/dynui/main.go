package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"

	"dynui/internal/action"
	"dynui/internal/loader"
	"dynui/internal/progress"
	"dynui/internal/session"
	"dynui/internal/telemetry"
	"dynui/internal/ui"
)

// config holds the parsed CLI configuration.
type config struct {
	configPath string
	logPath    string
	verbose    bool
	source     string
}

func parseFlags() config {
	var cfg config

	flag.StringVar(&cfg.configPath, "config", "", "path to a YAML config file")
	flag.StringVar(&cfg.logPath, "log", "", "write logs to this file (default: discard)")
	flag.BoolVar(&cfg.verbose, "verbose", false, "enable debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dynui [flags] [source]\n\n")
		fmt.Fprintf(os.Stderr, "Renders a server-driven screen in the terminal. source is a local\n")
		fmt.Fprintf(os.Stderr, "resource name (default %q) or an http(s) URL.\n\n", loader.DefaultScreenName)
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	cfg.source = flag.Arg(0)
	return cfg
}

// newLogger writes to logPath, or discards; the alt screen owns the terminal.
func newLogger(cfg config) (*slog.Logger, func(), error) {
	if cfg.logPath == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(cfg.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log %q: %w", cfg.logPath, err)
	}
	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }, nil
}

func run(cfg config) error {
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	// xdg-open and friends print to the terminal otherwise.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			logger.Warn("telemetry shutdown", "err", err)
		}
	}()

	lcfg, err := loader.LoadConfig(cfg.configPath)
	if err != nil {
		return err
	}

	events := make(chan progress.Event, 64)
	sess := session.New(session.Options{
		Loader:  loader.New(lcfg, loader.Options{Logger: logger}),
		Opener:  action.BrowserOpener{},
		Emitter: &progress.ChanEmitter{Ch: events},
		Logger:  logger,
	})

	model := ui.NewAppModel(ctx, sess, cfg.source, events).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func main() {
	cfg := parseFlags()
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
