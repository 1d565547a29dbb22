package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	configFile string
	dbURL      string
	logLevel   string
	logFormat  string

	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "converge",
	Short: "Converge marketing ops console for Liberty Puerto Rico",
	Long: `Converge evaluates audience rule trees into reach, guardrail and impact
metrics and ranks market opportunities against a campaign context.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&dbURL, "db-url", "", "database connection URL (sqlite://path or postgres://...)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "json", "log format (json, text)")
}

func setupLogging() error {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}

	var out io.Writer = os.Stderr
	if logFormat == "text" {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	logger = zerolog.New(out).Level(level).With().Timestamp().Logger()
	return nil
}

func Execute() error {
	return rootCmd.Execute()
}
