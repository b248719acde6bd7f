/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/jfmyers9/spindle/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// Global flags
var (
	logLevel  string
	logFile   string
	cacheMode string
	noColor   bool
)

// Shared state set up before any subcommand runs
var (
	cfg    *config.Config
	logger zerolog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "spindle",
	Short: "Browse the Spotify catalog from the terminal",
	Long: `spindle is a command line client for the Spotify Web API.

It looks up artists, albums, tracks and playlists, searches the catalog,
manages your saved library and generates recommendations. Responses for
artists, albums and audio analyses are cached locally, so repeated
lookups do not hit the API.

Rate limited requests are retried automatically after the delay the
API asks for.`,
	Version:           fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Interrupts cancel in-flight requests and rate-limit waits
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	closeCache()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "log file path (default: stderr)")
	rootCmd.PersistentFlags().StringVar(&cacheMode, "cache", "", "response cache (sqlite, memory, off)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// setup loads configuration and the logger for every subcommand
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags override the config file
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if cacheMode != "" {
		cfg.CacheMode = cacheMode
	}
	if noColor {
		color.NoColor = true
	}

	logger = setupLogger(logFile, cfg.LogLevel)
	return nil
}
