package main

import (
	"context"
	"fmt"

	"mockprep/interview/internal/config"
	"mockprep/interview/internal/repositories"
	"mockprep/interview/internal/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const app = "interviewctl"

// env bundles what every subcommand needs
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	repo   *repositories.InterviewRepository
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          app,
		Short:        "interviewctl inspects and maintains the mock-interview store",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	rootCmd.AddCommand(newClearCmd(), newHistoryCmd(), newSearchCmd())
	return rootCmd
}

// loadEnv resolves config from the environment, applies the logging flags and
// optionally opens the store.
func loadEnv(cmd *cobra.Command, withStore bool) (*env, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.LogDebug = true
	}
	if jsonLogs, _ := cmd.Flags().GetBool("json"); jsonLogs {
		cfg.LogJSON = true
	}

	logger, err := utils.NewLogger(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		return nil, fmt.Errorf("creating a logger: %w", err)
	}

	e := &env{cfg: cfg, logger: logger}
	if !withStore {
		return e, nil
	}

	db, err := repositories.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, err
	}
	e.repo = repositories.NewInterviewRepository(db)
	if err := e.repo.InitSchema(context.Background()); err != nil {
		return nil, err
	}

	logger.Debug("store opened", zap.String("driver", cfg.Database.Driver))
	return e, nil
}

func (e *env) close() {
	if e.repo != nil {
		if sqlDB, err := e.repo.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
	e.logger.Sync()
}
