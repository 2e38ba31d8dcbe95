package event

import (
	"context"

	"douren-backend/internal/shared/pagination"
)

// Service defines business logic for the event domain.
type Service interface {
	ListEvents(ctx context.Context) ([]Event, error)
	GetEvent(ctx context.Context, id int64) (*Event, error)
	CreateEvent(ctx context.Context, req *CreateEventRequest) (*Event, error)
	UpdateEvent(ctx context.Context, id int64, req *UpdateEventRequest) (*Event, error)
	DeleteEvent(ctx context.Context, id int64) error
	SetDefault(ctx context.Context, id int64) error

	// ListArtists returns the event-scoped artist listing for the named
	// event. Unknown event names are a not-found, not an empty page.
	ListArtists(ctx context.Context, eventName string, params pagination.ListParams) (pagination.Envelope, error)

	CreateAppearance(ctx context.Context, eventID int64, req *UpsertAppearanceRequest) (*EventArtist, error)
	UpdateAppearance(ctx context.Context, eventID, artistID int64, req *UpsertAppearanceRequest) (*EventArtist, error)
	DeleteAppearance(ctx context.Context, eventID, artistID int64) error

	// UploadDM stores a doujin menu image for an appearance and points
	// the row at it.
	UploadDM(ctx context.Context, eventID, artistID int64, data []byte, contentType string) (string, error)

	// BackfillBooths runs the booth dedup/relink pass, synchronously for
	// the admin endpoint. The worker calls the same path from its task
	// handler.
	BackfillBooths(ctx context.Context, eventID int64) (*BackfillResult, error)

	// EnqueueBackfill schedules the backfill as a background task.
	EnqueueBackfill(ctx context.Context, eventID int64) error
}
