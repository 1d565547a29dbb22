package cmd

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/libertypr/converge/internal/catalog"
	"github.com/libertypr/converge/internal/core/api"
	"github.com/libertypr/converge/internal/core/auth"
	"github.com/libertypr/converge/internal/core/config"
	"github.com/libertypr/converge/internal/core/db"
	"github.com/libertypr/converge/internal/core/server"
	"github.com/libertypr/converge/internal/core/store"
	"github.com/libertypr/converge/internal/radar"
	"github.com/libertypr/converge/internal/segment"
)

const Version = "0.1.0"

var consoleAPICmd = &cobra.Command{
	Use:   "console-api",
	Short: "Start the console HTTP API",
	RunE:  runConsoleAPI,
}

func init() {
	rootCmd.AddCommand(consoleAPICmd)
	consoleAPICmd.Flags().String("host", "0.0.0.0", "HTTP server host")
	consoleAPICmd.Flags().Int("port", 8080, "HTTP server port")
}

func runConsoleAPI(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConsoleAPIConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("host") {
		host, _ := cmd.Flags().GetString("host")
		cfg.Host = host
	}
	if cmd.Flags().Changed("port") {
		port, _ := cmd.Flags().GetInt("port")
		cfg.Port = port
	}

	if dbURL == "" {
		return fmt.Errorf("--db-url required")
	}
	database, err := db.Open(dbURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	var migrationID string
	checkQuery := `SELECT migration_id FROM migrations WHERE migration_id = '001_initial_schema.sql'`
	if err := database.Get(&migrationID, database.Rebind(checkQuery)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("migration 001_initial_schema not applied - run 'converge migrate' first")
		}
		return fmt.Errorf("failed to check migrations: %w", err)
	}

	queries, err := db.LoadQueries(database)
	if err != nil {
		return fmt.Errorf("failed to load queries: %w", err)
	}

	tokens, err := config.APITokens()
	if err != nil {
		return fmt.Errorf("failed to load API tokens: %w", err)
	}
	if len(tokens) == 0 {
		logger.Warn().Msg("no API tokens configured (CONVERGE_API_TOKEN); mutating routes are open")
	}
	authenticator := auth.NewAuthenticator(tokens)

	cat := catalog.Default()
	segmentEngine := segment.New(cat)
	radarEngine := radar.New(cat)
	segmentStore := store.New(queries, segmentEngine, logger)

	service := api.NewService(segmentEngine, radarEngine, segmentStore, authenticator, logger, cfg.MaxBodyBytes)

	httpServer := server.New(
		fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		service.Router(),
		cfg.RequestTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	logger.Info().
		Str("version", Version).
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Msg("starting converge console api")

	errChan := make(chan error, 1)
	go func() {
		errChan <- httpServer.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case <-sigChan:
		logger.Info().Msg("shutting down gracefully")
		return httpServer.Shutdown()
	}
}
