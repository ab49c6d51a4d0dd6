// Package main is the entry point for the librarymirror application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/term" //nolint:depguard // Required for TTY detection

	"github.com/kliatsko/librarymirror/internal/config"
	"github.com/kliatsko/librarymirror/internal/logging"
	"github.com/kliatsko/librarymirror/internal/mirror"
	"github.com/kliatsko/librarymirror/internal/report"
	"github.com/kliatsko/librarymirror/internal/robocopy"
	"github.com/kliatsko/librarymirror/internal/tui"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	os.Exit(run(cfg))
}

func run(cfg *config.Config) int {
	useTUI := !cfg.NoTUI && !cfg.ScanOnly && term.IsTerminal(int(os.Stdout.Fd()))

	logger, closeLog, err := logging.New(logging.Options{
		LogFile: cfg.LogFile,
		Verbose: cfg.Verbose,
		// The live display owns the terminal while it runs
		Quiet: useTUI,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	session, err := buildSession(cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("session setup failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var result mirror.SessionResult
	if useTUI {
		result, err = tui.Run(ctx, session)
		if err != nil {
			logger.Error().Err(err).Msg("display error")
		}
	} else {
		result = session.Run(ctx)
	}

	if cfg.ScanOnly {
		report.PrintScanTable(os.Stdout, result.Folders)
	} else {
		report.PrintSessionTable(os.Stdout, result)
	}

	if result.Failed() {
		return 1
	}

	return 0
}

func buildSession(cfg *config.Config, logger zerolog.Logger) (*mirror.Session, error) {
	if cfg.ScanOnly {
		// No tool needed; the session only scans
		runner := mirror.NewRunner(nil, cfg, logger)
		return mirror.NewSession(runner, cfg), nil
	}

	toolPath, err := robocopy.FindTool(cfg.ToolPath)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("tool", toolPath).Int("folders", len(cfg.Targets)).Msg("session starting")

	runner := mirror.NewRunner(robocopy.NewExecTool(toolPath), cfg, logger)
	return mirror.NewSession(runner, cfg), nil
}
