package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"douren-backend/internal/domains/artist"
	"douren-backend/internal/infrastructure/storage"
	"douren-backend/internal/shared"
	"douren-backend/internal/shared/pagination"
	"douren-backend/pkg/logger"
)

// artistService implements artist.Service.
type artistService struct {
	repo    artist.Repository
	storage *storage.MinIOStorage
	queue   *asynq.Client
}

func NewArtistService(repo artist.Repository, storage *storage.MinIOStorage, queue *asynq.Client) artist.Service {
	return &artistService{
		repo:    repo,
		storage: storage,
		queue:   queue,
	}
}

func (s *artistService) List(ctx context.Context, params pagination.ListParams) (pagination.Envelope, error) {
	// The plain artist listing has no booth join, so event-side sort or
	// search columns would reference tables missing from the query.
	if !strings.HasPrefix(params.SortColumn, "author_main.") {
		params.SortColumn = pagination.DefaultColumn
	}
	if !strings.HasPrefix(params.SearchColumn, "author_main.") {
		params.SearchColumn = pagination.DefaultColumn
	}

	rows, total, err := s.repo.List(ctx, params)
	if err != nil {
		return pagination.Envelope{}, err
	}

	// Empty pages serialize as [] rather than null
	if rows == nil {
		rows = []artist.ListRow{}
	}

	return pagination.NewEnvelope(rows, params.Page, params.PageSize, total), nil
}

func (s *artistService) GetByID(ctx context.Context, id int64) (*artist.Artist, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *artistService) Create(ctx context.Context, req *artist.CreateArtistRequest, ownerID *uuid.UUID) (*artist.Artist, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entity := req.ToEntity()
	entity.OwnerID = ownerID

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return nil, err
	}

	logger.Info("artist created", map[string]interface{}{"artist_id": created.ID, "name": created.Name})

	return created, nil
}

func (s *artistService) Update(ctx context.Context, id int64, req *artist.UpdateArtistRequest, callerID uuid.UUID, isAdmin bool) (*artist.Artist, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.authorize(ctx, id, callerID, isAdmin)
	if err != nil {
		return nil, err
	}

	req.ApplyToEntity(existing)

	return s.repo.Update(ctx, existing)
}

func (s *artistService) Delete(ctx context.Context, id int64, callerID uuid.UUID, isAdmin bool) error {
	if _, err := s.authorize(ctx, id, callerID, isAdmin); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// Stored images are cleaned up out of band
	s.enqueueFileCleanup(id)

	logger.Info("artist deleted", map[string]interface{}{"artist_id": id})

	return nil
}

func (s *artistService) SetTags(ctx context.Context, id int64, tags []string, callerID uuid.UUID, isAdmin bool) error {
	if _, err := s.authorize(ctx, id, callerID, isAdmin); err != nil {
		return err
	}

	cleaned := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		cleaned = append(cleaned, tag)
	}

	return s.repo.SetTags(ctx, id, cleaned)
}

func (s *artistService) ListProducts(ctx context.Context, artistID int64) ([]artist.Product, error) {
	if _, err := s.repo.GetByID(ctx, artistID); err != nil {
		return nil, err
	}
	return s.repo.ListProducts(ctx, artistID)
}

func (s *artistService) CreateProduct(ctx context.Context, artistID int64, req *artist.CreateProductRequest, callerID uuid.UUID, isAdmin bool) (*artist.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.authorize(ctx, artistID, callerID, isAdmin); err != nil {
		return nil, err
	}

	return s.repo.CreateProduct(ctx, &artist.Product{
		ArtistID:  artistID,
		Title:     req.Title,
		Thumbnail: req.Thumbnail,
		Preview:   req.Preview,
	})
}

func (s *artistService) DeleteProduct(ctx context.Context, artistID, productID int64, callerID uuid.UUID, isAdmin bool) error {
	if _, err := s.authorize(ctx, artistID, callerID, isAdmin); err != nil {
		return err
	}
	return s.repo.DeleteProduct(ctx, artistID, productID)
}

func (s *artistService) UploadPhoto(ctx context.Context, id int64, data []byte, contentType string, callerID uuid.UUID, isAdmin bool) (string, error) {
	if _, err := s.authorize(ctx, id, callerID, isAdmin); err != nil {
		return "", err
	}

	key := fmt.Sprintf("artists/%d/photo%s", id, extensionFor(contentType))
	url, err := s.storage.Upload(ctx, key, data, contentType)
	if err != nil {
		return "", err
	}

	if err := s.repo.UpdatePhoto(ctx, id, url); err != nil {
		return "", err
	}

	return url, nil
}

// authorize loads the artist and checks write access. Admins can touch
// everything; other callers only profiles they own. Unclaimed profiles
// stay admin-only.
func (s *artistService) authorize(ctx context.Context, id int64, callerID uuid.UUID, isAdmin bool) (*artist.Artist, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if isAdmin {
		return existing, nil
	}
	if existing.OwnerID == nil || *existing.OwnerID != callerID {
		return nil, artist.ErrNotOwner
	}

	return existing, nil
}

func (s *artistService) enqueueFileCleanup(artistID int64) {
	if s.queue == nil {
		return
	}

	payload, err := json.Marshal(shared.DeleteArtistFilesPayload{
		ArtistID: artistID,
		Prefix:   fmt.Sprintf("artists/%d/", artistID),
	})
	if err != nil {
		logger.Error("failed to marshal file cleanup payload", err)
		return
	}

	task := asynq.NewTask(shared.TypeDeleteArtistFiles, payload)
	if _, err := s.queue.Enqueue(task, asynq.Queue(shared.QueueMaintenance)); err != nil {
		logger.Error("failed to enqueue file cleanup", err)
	}
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
