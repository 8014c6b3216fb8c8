// Package cmd provides CLI commands for cite.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var rootCmd = &cobra.Command{
	Use:   "cite",
	Short: "Generate academic citations from publication metadata",
	Long: `Cite formats journal-article metadata into citation strings.

Supported styles: APA, MLA, AMA, NLM, Chicago, IEEE, and BibTeX, each in
plain-text or HTML output.

Examples:
  cite cite --author "Jane Smith" --year 2024 --title "A Study" \
    --journal "Journal of Studies" --format apa
  cite cite --author "Jane Smith" --author "John Doe" --year 2024 \
    --title "A Study" --journal "Journal of Studies" -f ieee -m html
  cite styles`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	setupLogger()
	rootCmd.AddCommand(citeCmd)
	rootCmd.AddCommand(stylesCmd)
}
