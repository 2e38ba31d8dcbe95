package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hibiken/asynq"

	"douren-backend/internal/domains/event"
	"douren-backend/internal/infrastructure/storage"
	"douren-backend/internal/shared"
	"douren-backend/internal/shared/pagination"
	"douren-backend/pkg/logger"
)

type eventService struct {
	repo    event.Repository
	storage *storage.MinIOStorage
	queue   *asynq.Client
}

func NewEventService(repo event.Repository, storage *storage.MinIOStorage, queue *asynq.Client) event.Service {
	return &eventService{
		repo:    repo,
		storage: storage,
		queue:   queue,
	}
}

func (s *eventService) ListEvents(ctx context.Context) ([]event.Event, error) {
	events, err := s.repo.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []event.Event{}
	}
	return events, nil
}

func (s *eventService) GetEvent(ctx context.Context, id int64) (*event.Event, error) {
	return s.repo.GetEventByID(ctx, id)
}

func (s *eventService) CreateEvent(ctx context.Context, req *event.CreateEventRequest) (*event.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateEvent(ctx, &event.Event{
		Name:      strings.TrimSpace(req.Name),
		IsDefault: false,
	})
	if err != nil {
		return nil, err
	}

	// The default flag only ever flips through SetDefault
	if req.IsDefault {
		if err := s.repo.SetDefault(ctx, created.ID); err != nil {
			return nil, err
		}
		created.IsDefault = true
	}

	logger.Info("event created", map[string]interface{}{"event_id": created.ID, "name": created.Name})

	return created, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id int64, req *event.UpdateEventRequest) (*event.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		existing.Name = strings.TrimSpace(*req.Name)
	}

	return s.repo.UpdateEvent(ctx, existing)
}

func (s *eventService) DeleteEvent(ctx context.Context, id int64) error {
	return s.repo.DeleteEvent(ctx, id)
}

func (s *eventService) SetDefault(ctx context.Context, id int64) error {
	if err := s.repo.SetDefault(ctx, id); err != nil {
		return err
	}

	logger.Info("default event changed", map[string]interface{}{"event_id": id})

	return nil
}

func (s *eventService) ListArtists(ctx context.Context, eventName string, params pagination.ListParams) (pagination.Envelope, error) {
	// Unknown event names are a 404, not an empty page
	if _, err := s.repo.GetEventByName(ctx, eventName); err != nil {
		return pagination.Envelope{}, err
	}

	params.EventName = eventName

	rows, total, err := s.repo.ListArtists(ctx, params)
	if err != nil {
		return pagination.Envelope{}, err
	}

	if rows == nil {
		rows = []event.ArtistRow{}
	}

	return pagination.NewEnvelope(rows, params.Page, params.PageSize, total), nil
}

func (s *eventService) CreateAppearance(ctx context.Context, eventID int64, req *event.UpsertAppearanceRequest) (*event.EventArtist, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.CreateAppearance(ctx, &event.EventArtist{
		ArtistID:      req.ArtistID,
		EventID:       eventID,
		BoothName:     req.BoothName,
		LocationDay01: req.LocationDay01,
		LocationDay02: req.LocationDay02,
		LocationDay03: req.LocationDay03,
		DM:            req.DM,
	})
}

func (s *eventService) UpdateAppearance(ctx context.Context, eventID, artistID int64, req *event.UpsertAppearanceRequest) (*event.EventArtist, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetAppearance(ctx, eventID, artistID)
	if err != nil {
		return nil, err
	}

	if req.BoothName != nil {
		existing.BoothName = req.BoothName
	}
	if req.LocationDay01 != nil {
		existing.LocationDay01 = req.LocationDay01
	}
	if req.LocationDay02 != nil {
		existing.LocationDay02 = req.LocationDay02
	}
	if req.LocationDay03 != nil {
		existing.LocationDay03 = req.LocationDay03
	}
	if req.DM != nil {
		existing.DM = req.DM
	}

	return s.repo.UpdateAppearance(ctx, existing)
}

func (s *eventService) DeleteAppearance(ctx context.Context, eventID, artistID int64) error {
	return s.repo.DeleteAppearance(ctx, eventID, artistID)
}

func (s *eventService) UploadDM(ctx context.Context, eventID, artistID int64, data []byte, contentType string) (string, error) {
	if _, err := s.repo.GetAppearance(ctx, eventID, artistID); err != nil {
		return "", err
	}

	key := fmt.Sprintf("events/%d/dm/%d%s", eventID, artistID, extensionFor(contentType))
	url, err := s.storage.Upload(ctx, key, data, contentType)
	if err != nil {
		return "", err
	}

	if err := s.repo.UpdateAppearanceDM(ctx, eventID, artistID, url); err != nil {
		return "", err
	}

	return url, nil
}

func (s *eventService) BackfillBooths(ctx context.Context, eventID int64) (*event.BackfillResult, error) {
	result, err := s.repo.BackfillBooths(ctx, eventID)
	if err != nil {
		return nil, err
	}

	logger.Info("booth backfill completed", map[string]interface{}{
		"event_id": eventID,
		"created":  result.BoothsCreated,
		"merged":   result.BoothsMerged,
		"relinked": result.RowsRelinked,
	})

	return result, nil
}

func (s *eventService) EnqueueBackfill(ctx context.Context, eventID int64) error {
	if _, err := s.repo.GetEventByID(ctx, eventID); err != nil {
		return err
	}

	payload, err := json.Marshal(shared.BackfillBoothsPayload{EventID: eventID})
	if err != nil {
		return fmt.Errorf("failed to marshal backfill payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeBackfillBooths, payload)
	if _, err := s.queue.Enqueue(task, asynq.Queue(shared.QueueMaintenance)); err != nil {
		return fmt.Errorf("failed to enqueue backfill: %w", err)
	}

	return nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}
