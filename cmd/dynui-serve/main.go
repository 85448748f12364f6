package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dynui/internal/loader"
	"dynui/internal/serve"
)

func main() {
	var (
		dir     string
		port    int
		verbose bool
	)
	flag.StringVar(&dir, "dir", "", "directory of <name>.json screens (default $"+loader.ResourcesDirEnv+" or ./"+loader.DefaultResourcesDir+")")
	flag.IntVar(&port, "port", 0, fmt.Sprintf("listen port (default $%s or %d)", serve.PortEnv, serve.DefaultPort))
	flag.BoolVar(&verbose, "verbose", false, "log every request")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dynui-serve [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Serves screen descriptions at /screens/<name>.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if dir == "" {
		cfg, err := loader.LoadConfig("")
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		dir = cfg.ResourcesDir
	}

	srv := serve.NewServer(loader.NewResources(dir), port, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Stop(shutdownCtx)
	}()

	logger.Info("serving screens", "dir", dir, "url", srv.URL("<name>"))
	if err := srv.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
