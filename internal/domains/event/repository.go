package event

import (
	"context"

	"douren-backend/internal/shared/pagination"
)

// Repository defines data access for the event domain.
type Repository interface {
	ListEvents(ctx context.Context) ([]Event, error)
	GetEventByID(ctx context.Context, id int64) (*Event, error)
	GetEventByName(ctx context.Context, name string) (*Event, error)
	CreateEvent(ctx context.Context, e *Event) (*Event, error)
	UpdateEvent(ctx context.Context, e *Event) (*Event, error)

	// DeleteEvent refuses when appearances still reference it.
	DeleteEvent(ctx context.Context, id int64) error

	// SetDefault marks one event default and clears every other
	// default flag in the same transaction.
	SetDefault(ctx context.Context, id int64) error

	// ListArtists runs the event-scoped listing: artist profiles joined
	// with booth placement, filtered to one event by name.
	ListArtists(ctx context.Context, params pagination.ListParams) ([]ArtistRow, int64, error)

	GetAppearance(ctx context.Context, eventID, artistID int64) (*EventArtist, error)
	CreateAppearance(ctx context.Context, ea *EventArtist) (*EventArtist, error)
	UpdateAppearance(ctx context.Context, ea *EventArtist) (*EventArtist, error)
	DeleteAppearance(ctx context.Context, eventID, artistID int64) error
	UpdateAppearanceDM(ctx context.Context, eventID, artistID int64, dmURL string) error

	// BackfillBooths dedupes booth rows for one event by trimmed,
	// lowercased name, inserts booths missing from appearance rows, and
	// relinks appearances to the surviving booth ids.
	BackfillBooths(ctx context.Context, eventID int64) (*BackfillResult, error)
}
