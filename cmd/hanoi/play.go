package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hanoi/internal/core"
	"github.com/vovakirdan/tui-hanoi/internal/platform/tui"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

var (
	flagPoles  int
	flagDisks  int
	flagPlayer string
)

func init() {
	rootCmd.Flags().IntVar(&flagPoles, "poles", 0, "Initial pole count (0 = config default)")
	rootCmd.Flags().IntVar(&flagDisks, "disks", 0, "Initial disk count (0 = config default)")
	rootCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Name recorded with results")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	logger, closeLog, err := openLogger(flagLogPath, flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	settings := cfg.Settings.Defaults()
	if flagPoles != 0 {
		settings.Poles = flagPoles
	}
	if flagDisks != 0 {
		settings.Disks = flagDisks
	}

	opts := tui.Options{
		Config:   cfg,
		Runtime:  core.RuntimeConfig{ScreenW: width, ScreenH: height},
		Logger:   logger,
		Settings: settings.Clamp(cfg.Settings),
		Player:   flagPlayer,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		logger.Warn("playing without result history", "error", err)
		// Continue without storage - game still works
	} else {
		opts.Store = store
	}

	runErr := tui.Run(opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}

// openLogger returns a logger writing to path, or a discarding one when
// path is empty. The TUI owns stdout, so nothing is logged there.
func openLogger(path string, debug bool) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "hanoi",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { f.Close() }, nil
}
