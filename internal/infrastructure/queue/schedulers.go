package queue

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"douren-backend/internal/config"
	"douren-backend/internal/shared"
	"douren-backend/pkg/logger"
)

// NewScheduler builds the cron scheduler with every periodic job
// registered. Run blocks, so the worker starts it on its own goroutine.
func NewScheduler(redisOpt asynq.RedisClientOpt, cfg config.JobConfig) (*asynq.Scheduler, error) {
	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{})

	tagSyncPayload, err := json.Marshal(shared.TagSyncPayload{})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tag sync payload: %w", err)
	}

	if _, err := scheduler.Register(
		cfg.TagCountSyncSpec,
		asynq.NewTask(shared.TypeSyncTagCounts, tagSyncPayload),
		asynq.Queue(shared.QueueMaintenance),
	); err != nil {
		return nil, fmt.Errorf("failed to register tag sync job: %w", err)
	}

	if _, err := scheduler.Register(
		cfg.OrphanCleanupSpec,
		asynq.NewTask(shared.TypeCleanupOrphans, nil),
		asynq.Queue(shared.QueueMaintenance),
	); err != nil {
		return nil, fmt.Errorf("failed to register orphan cleanup job: %w", err)
	}

	logger.Info("scheduler configured", map[string]interface{}{
		"tag_sync":       cfg.TagCountSyncSpec,
		"orphan_cleanup": cfg.OrphanCleanupSpec,
	})

	return scheduler, nil
}
