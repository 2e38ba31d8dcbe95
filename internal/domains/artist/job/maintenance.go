package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"

	"douren-backend/internal/infrastructure/storage"
	"douren-backend/internal/shared"
	"douren-backend/pkg/logger"
)

// DeleteFilesHandler removes a deleted artist's stored images.
type DeleteFilesHandler struct {
	storage *storage.MinIOStorage
}

func NewDeleteFilesHandler(storage *storage.MinIOStorage) *DeleteFilesHandler {
	return &DeleteFilesHandler{storage: storage}
}

func (h *DeleteFilesHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload shared.DeleteArtistFilesPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal delete-files payload: %w", err)
	}

	if err := h.storage.DeleteByPrefix(ctx, payload.Prefix); err != nil {
		logger.Error("artist file cleanup failed", err)
		return err
	}

	logger.Info("artist files deleted", map[string]interface{}{"artist_id": payload.ArtistID, "prefix": payload.Prefix})

	return nil
}

// CleanupOrphansHandler sweeps link rows whose parent went away. The
// transactional deletes make these rare; imports and old data still
// produce strays occasionally.
type CleanupOrphansHandler struct {
	pool *pgxpool.Pool
}

func NewCleanupOrphansHandler(pool *pgxpool.Pool) *CleanupOrphansHandler {
	return &CleanupOrphansHandler{pool: pool}
}

func (h *CleanupOrphansHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	statements := []struct {
		name string
		sql  string
	}{
		{"author_tag", `DELETE FROM author_tag WHERE NOT EXISTS (SELECT 1 FROM author_main WHERE author_main.id = author_tag.author_id)`},
		{"author_product", `DELETE FROM author_product WHERE NOT EXISTS (SELECT 1 FROM author_main WHERE author_main.id = author_product.artist_id)`},
		{"event_artist", `DELETE FROM event_artist WHERE NOT EXISTS (SELECT 1 FROM author_main WHERE author_main.id = event_artist.artist_id)
			OR NOT EXISTS (SELECT 1 FROM event WHERE event.id = event_artist.event_id)`},
		{"booth", `DELETE FROM booth WHERE NOT EXISTS (SELECT 1 FROM event WHERE event.id = booth.event_id)`},
	}

	var total int64
	for _, stmt := range statements {
		cmdTag, err := h.pool.Exec(ctx, stmt.sql)
		if err != nil {
			return fmt.Errorf("orphan cleanup of %s failed: %w", stmt.name, err)
		}
		total += cmdTag.RowsAffected()
	}

	logger.Info("orphan cleanup completed", map[string]interface{}{"removed": total})

	return nil
}
