package job

import (
	"context"

	"github.com/hibiken/asynq"

	"douren-backend/internal/domains/tag"
	"douren-backend/pkg/logger"
)

// SyncCountsHandler processes the periodic tag count recompute task.
type SyncCountsHandler struct {
	service tag.Service
}

func NewSyncCountsHandler(service tag.Service) *SyncCountsHandler {
	return &SyncCountsHandler{service: service}
}

func (h *SyncCountsHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	updated, err := h.service.SyncCounts(ctx)
	if err != nil {
		logger.Error("tag count sync failed", err)
		return err
	}

	logger.Info("tag count sync completed", map[string]interface{}{"updated": updated})

	return nil
}
