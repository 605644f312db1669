// package main is the entry point for the release-notes tool
package main

import (
	"log/slog"
	"os"

	apichangescmd "github.com/alan/release-notes/cmd/apichanges"
	configcmd "github.com/alan/release-notes/cmd/config"
	fetchcmd "github.com/alan/release-notes/cmd/fetch"
	"github.com/alan/release-notes/cmd/generate"
	"github.com/alan/release-notes/cmd/prepare"
	templatecmd "github.com/alan/release-notes/cmd/template"
	"github.com/alan/release-notes/cmd/versions"
	"github.com/alan/release-notes/internal/config"
	"github.com/spf13/cobra"
)

func main() {
	var stateFile string
	var logLevel string
	var logFormat string

	rootCmd := &cobra.Command{
		Use:   "release-notes",
		Short: "A CLI tool for generating release notes from labelled GitHub pull requests",
		Long: `release-notes collects the pull requests labelled with a release version,
classifies them by their release_note:* label and product area, and renders
Markdown or AsciiDoc release notes from Mustache templates. The organization,
the active template and any template changes are kept in a YAML state file.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogger(logLevel, logFormat)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVarP(&stateFile, "config", "c", "release-notes.yaml", "State file path")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&logFormat, "log-format", "f", "text", "Log format (text, json)")

	// Create commands with access to the global state file
	rootCmd.AddCommand(configcmd.NewConfigCmd(&stateFile, config.LoadOrDefaultState, config.SaveState))
	rootCmd.AddCommand(templatecmd.NewTemplateCmd(&stateFile, config.LoadOrDefaultState, config.SaveState))
	rootCmd.AddCommand(versions.NewVersionsCmd(&stateFile, config.LoadOrDefaultState))
	rootCmd.AddCommand(fetchcmd.NewFetchCmd(&stateFile, config.LoadOrDefaultState))
	rootCmd.AddCommand(prepare.NewPrepareCmd(&stateFile, config.LoadOrDefaultState))
	rootCmd.AddCommand(generate.NewGenerateCmd(&stateFile, config.LoadOrDefaultState))
	rootCmd.AddCommand(apichangescmd.NewAPIChangesCmd(&stateFile, config.LoadOrDefaultState))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogger(level, format string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	// Logs go to stderr so generated notes on stdout stay clean
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	}

	slog.SetDefault(slog.New(handler))
}
