package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"mockprep/interview/internal/models"
)

const purgeTimeout = 2 * time.Minute

type HistoryStore interface {
	ListHistory(ctx context.Context) ([]models.InterviewHistory, error)
	ClearAll(ctx context.Context) error
}

// PurgeConfig contains configuration for the purge job
type PurgeConfig struct {
	Schedule  string // cron expression; empty disables the job
	ExportDir string // snapshot directory; empty skips the export
}

// HistoryPurgeJob periodically snapshots the interview history to disk and
// then clears it.
type HistoryPurgeJob struct {
	store  HistoryStore
	config *PurgeConfig
	cron   *cron.Cron
	logger *zap.Logger
}

func NewHistoryPurgeJob(store HistoryStore, config *PurgeConfig, logger *zap.Logger) *HistoryPurgeJob {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HistoryPurgeJob{
		store:  store,
		config: config,
		cron:   cron.New(),
		logger: logger,
	}
}

// Start schedules the purge. It is a no-op when no schedule is configured.
func (j *HistoryPurgeJob) Start() error {
	if j.config.Schedule == "" {
		j.logger.Info("History purge disabled, skipping scheduler")
		return nil
	}

	_, err := j.cron.AddFunc(j.config.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
		defer cancel()
		if err := j.RunPurge(ctx); err != nil {
			j.logger.Error("History purge failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule history purge: %w", err)
	}

	j.cron.Start()
	j.logger.Info("History purge scheduled", zap.String("schedule", j.config.Schedule))
	return nil
}

// Stop waits for a running purge to finish.
func (j *HistoryPurgeJob) Stop() {
	if j.cron != nil {
		<-j.cron.Stop().Done()
		j.logger.Info("History purge stopped")
	}
}

// RunPurge exports the current history when an export dir is set, then clears
// every table. A failed export leaves the data untouched.
func (j *HistoryPurgeJob) RunPurge(ctx context.Context) error {
	if j.config.ExportDir != "" {
		path, count, err := j.export(ctx)
		if err != nil {
			return err
		}
		if path != "" {
			j.logger.Info("History exported", zap.String("path", path), zap.Int("interviews", count))
		}
	}

	if err := j.store.ClearAll(ctx); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	j.logger.Info("History purged")
	return nil
}

func (j *HistoryPurgeJob) export(ctx context.Context) (string, int, error) {
	history, err := j.store.ListHistory(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("failed to load history for export: %w", err)
	}
	if len(history) == 0 {
		return "", 0, nil
	}

	data, err := json.MarshalIndent(models.InterviewHistoryResponse{Interviews: history}, "", "  ")
	if err != nil {
		return "", 0, fmt.Errorf("failed to encode history: %w", err)
	}

	if err := os.MkdirAll(j.config.ExportDir, 0755); err != nil {
		return "", 0, fmt.Errorf("failed to create export directory: %w", err)
	}

	filename := fmt.Sprintf("interview_history_%s.json", time.Now().Format("20060102_150405"))
	path := filepath.Join(j.config.ExportDir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", 0, fmt.Errorf("failed to write export file: %w", err)
	}

	return path, len(history), nil
}
