// Package main provides the entry point for the interactive bounded-string
// tester. It handles command-line arguments, profile loading, and the
// prompt loop that validates untrusted input against configured kinds.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/isseis/go-bounded-str/internal/color"
	"github.com/isseis/go-bounded-str/internal/logging"
	"github.com/isseis/go-bounded-str/internal/profile"
	"github.com/isseis/go-bounded-str/internal/redact"
	"github.com/isseis/go-bounded-str/internal/terminal"
	"github.com/isseis/go-bounded-str/internal/tester"
)

var (
	configPath = flag.String("config", "", "path to profile config file (TOML); built-in defaults when empty")
	logLevel   = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	runID      = flag.String("run-id", "", "unique identifier for this session (auto-generates ULID if not provided)")
	noColor    = flag.Bool("no-color", false, "disable colored output")
	quiet      = flag.Bool("quiet", false, "suppress the banner and usage text")
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "boundedstr-tester: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()

	id := *runID
	if id == "" {
		id = logging.GenerateRunID()
	}

	// Set up context with cancellation
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	capabilities := terminal.NewCapabilities(terminal.Options{NoColor: *noColor})
	logger, err := logging.Setup(logging.Options{
		Level:        *logLevel,
		Writer:       os.Stderr,
		Capabilities: capabilities,
		RunID:        id,
	})
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}

	profiles, err := profile.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load profiles: %w", err)
	}
	logger.Debug("profiles loaded", "count", len(profiles.Profiles), "config", *configPath)

	session, err := tester.New(tester.Options{
		Profiles: profiles,
		Input:    os.Stdin,
		Output:   os.Stdout,
		Palette:  color.NewPalette(capabilities.SupportsColor()),
		Redactor: redact.DefaultConfig(),
		Logger:   logger,
		Quiet:    *quiet,
	})
	if err != nil {
		return err
	}

	if err := session.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("session interrupted")
			return err
		}
		return err
	}
	logger.Log(ctx, slog.LevelDebug, "session finished")
	return nil
}
