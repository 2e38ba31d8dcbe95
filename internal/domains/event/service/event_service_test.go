package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"douren-backend/internal/domains/event"
	"douren-backend/internal/shared/pagination"
)

type stubRepository struct {
	event.Repository

	eventByName *event.Event
	byNameErr   error
	listParams  pagination.ListParams
	listRows    []event.ArtistRow
	listTotal   int64
}

func (s *stubRepository) GetEventByName(ctx context.Context, name string) (*event.Event, error) {
	if s.byNameErr != nil {
		return nil, s.byNameErr
	}
	return s.eventByName, nil
}

func (s *stubRepository) ListArtists(ctx context.Context, params pagination.ListParams) ([]event.ArtistRow, int64, error) {
	s.listParams = params
	return s.listRows, s.listTotal, nil
}

func TestListArtistsUnknownEventIsNotFound(t *testing.T) {
	repo := &stubRepository{byNameErr: event.ErrEventNotFound}
	svc := NewEventService(repo, nil, nil)

	_, err := svc.ListArtists(context.Background(), "FF99", pagination.ListParams{Page: 1, PageSize: 30})

	assert.ErrorIs(t, err, event.ErrEventNotFound)
}

func TestListArtistsScopesQueryToEvent(t *testing.T) {
	repo := &stubRepository{
		eventByName: &event.Event{ID: 3, Name: "FF42"},
		listRows: []event.ArtistRow{
			{ArtistID: 1, Name: "Koma"},
		},
		listTotal: 1,
	}
	svc := NewEventService(repo, nil, nil)

	envelope, err := svc.ListArtists(context.Background(), "FF42", pagination.ListParams{Page: 1, PageSize: 30})
	require.NoError(t, err)

	assert.Equal(t, "FF42", repo.listParams.EventName)
	assert.Equal(t, int64(1), envelope.TotalCount)
	assert.Equal(t, 1, envelope.TotalPage)
}

func TestListArtistsEmptyPageIsEmptySlice(t *testing.T) {
	repo := &stubRepository{
		eventByName: &event.Event{ID: 3, Name: "FF42"},
	}
	svc := NewEventService(repo, nil, nil)

	envelope, err := svc.ListArtists(context.Background(), "FF42", pagination.ListParams{Page: 1, PageSize: 30})
	require.NoError(t, err)

	rows, ok := envelope.Data.([]event.ArtistRow)
	require.True(t, ok)
	assert.Empty(t, rows)
}

func TestEventErrorsToHTTPStatus(t *testing.T) {
	assert.Equal(t, 404, event.ToHTTPStatus(event.ErrEventNotFound))
	assert.Equal(t, 404, event.ToHTTPStatus(event.ErrAppearanceNotFound))
	assert.Equal(t, 409, event.ToHTTPStatus(event.ErrEventAlreadyExists))
	assert.Equal(t, 409, event.ToHTTPStatus(event.ErrEventInUse))
	assert.Equal(t, 409, event.ToHTTPStatus(event.ErrAppearanceExists))
}
