// Package main is the entry point for the peek terminal viewer.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/peek/internal/app"
	"github.com/dshills/peek/internal/config"
	"github.com/dshills/peek/internal/renderer/backend"
)

// version is shown in the welcome banner (set via ldflags during build).
var version = "dev"

var errUsage = errors.New("usage: peek [file]")

func main() {
	os.Exit(run())
}

func run() int {
	// Every argument is a path, including ones that start with a dash.
	path, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		printUsage(os.Stderr)
		return 1
	}

	ctx := context.Background()

	cfg := config.New()
	if err := cfg.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: load config: %v\n", err)
		return 1
	}
	editorCfg := cfg.Editor()
	logCfg := cfg.Logging()
	filesCfg := cfg.Files()

	logOut, err := app.OpenLogFile(logCfg.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logOut.Close()

	logger := newLogger(logOut, logCfg.Level)
	if f := cfg.LoadedFile(); f != "" {
		logger.Info("config loaded from %s", f)
	}
	for setting, cfgErr := range cfg.ConfigErrors() {
		logger.Warn("config %s: %v", setting, cfgErr)
	}

	application, err := app.New(app.Options{
		Path:     path,
		Version:  version,
		TabWidth: editorCfg.TabSize,
		Follow:   filesCfg.Follow,
		Logger:   logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", app.NewOperationError(app.OpInitTerminal, "", err))
		return 1
	}
	if err := application.SetBackend(term); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Signals end the loop through the quit path so the terminal is restored.
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); !app.IsQuit(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// parseArgs accepts zero or one positional file path.
func parseArgs(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", nil
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("%w: got %d arguments", errUsage, len(args))
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "peek - minimal terminal text viewer\n\n")
	fmt.Fprintf(w, "Usage: peek [file]\n\n")
	fmt.Fprintf(w, "Keys: w/a/s/d or arrows to move, Home/End, PgUp/PgDn, Ctrl-Q to quit.\n")
	fmt.Fprintf(w, "Settings are read from %s/config.toml and PEEK_* variables.\n", config.DefaultConfigDir())
}

func newLogger(w io.Writer, level string) *app.Logger {
	return app.NewSessionLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(level),
		Output: w,
		Prefix: "peek",
	})
}
