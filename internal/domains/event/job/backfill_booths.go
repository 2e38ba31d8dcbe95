package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"douren-backend/internal/domains/event"
	"douren-backend/internal/shared"
	"douren-backend/pkg/logger"
)

// BackfillHandler processes booth backfill tasks enqueued by the admin
// endpoint or the scheduler.
type BackfillHandler struct {
	service event.Service
}

func NewBackfillHandler(service event.Service) *BackfillHandler {
	return &BackfillHandler{service: service}
}

func (h *BackfillHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload shared.BackfillBoothsPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal backfill payload: %w", err)
	}

	result, err := h.service.BackfillBooths(ctx, payload.EventID)
	if err != nil {
		logger.Error("booth backfill task failed", err)
		return err
	}

	logger.Info("booth backfill task completed", map[string]interface{}{
		"event_id": payload.EventID,
		"created":  result.BoothsCreated,
		"merged":   result.BoothsMerged,
		"relinked": result.RowsRelinked,
	})

	return nil
}
