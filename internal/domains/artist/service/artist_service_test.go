package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"douren-backend/internal/domains/artist"
	"douren-backend/internal/shared/pagination"
)

type stubRepository struct {
	artist.Repository

	artist     *artist.Artist
	getErr     error
	listParams pagination.ListParams
	listRows   []artist.ListRow
	listTotal  int64
	deleted    []int64
	setTags    []string
}

func (s *stubRepository) GetByID(ctx context.Context, id int64) (*artist.Artist, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.artist, nil
}

func (s *stubRepository) List(ctx context.Context, params pagination.ListParams) ([]artist.ListRow, int64, error) {
	s.listParams = params
	return s.listRows, s.listTotal, nil
}

func (s *stubRepository) Delete(ctx context.Context, id int64) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubRepository) SetTags(ctx context.Context, id int64, tags []string) error {
	s.setTags = tags
	return nil
}

func TestListFallsBackToArtistColumnsForEventTokens(t *testing.T) {
	repo := &stubRepository{listTotal: 0}
	svc := NewArtistService(repo, nil, nil)

	params := pagination.ListParams{
		Page:          1,
		PageSize:      30,
		SortColumn:    "event_artist.booth_name",
		SortDirection: "asc",
		SearchColumn:  "event_artist.location_day01",
	}

	_, err := svc.List(context.Background(), params)
	require.NoError(t, err)

	// The plain listing has no booth join, so event columns cannot be
	// referenced there
	assert.Equal(t, pagination.DefaultColumn, repo.listParams.SortColumn)
	assert.Equal(t, pagination.DefaultColumn, repo.listParams.SearchColumn)
}

func TestListWrapsEmptyPageAsEmptySlice(t *testing.T) {
	repo := &stubRepository{listRows: nil, listTotal: 0}
	svc := NewArtistService(repo, nil, nil)

	envelope, err := svc.List(context.Background(), pagination.ListParams{
		Page: 1, PageSize: 30,
		SortColumn: pagination.DefaultColumn, SearchColumn: pagination.DefaultColumn,
	})
	require.NoError(t, err)

	rows, ok := envelope.Data.([]artist.ListRow)
	require.True(t, ok)
	assert.Empty(t, rows)
	assert.Equal(t, int64(0), envelope.TotalCount)
	assert.Equal(t, 0, envelope.TotalPage)
}

func TestDeleteRequiresOwnership(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	repo := &stubRepository{artist: &artist.Artist{ID: 7, Name: "Koma", OwnerID: &owner}}
	svc := NewArtistService(repo, nil, nil)

	err := svc.Delete(context.Background(), 7, stranger, false)
	assert.ErrorIs(t, err, artist.ErrNotOwner)
	assert.Empty(t, repo.deleted)

	err = svc.Delete(context.Background(), 7, owner, false)
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, repo.deleted)
}

func TestAdminBypassesOwnership(t *testing.T) {
	owner := uuid.New()
	admin := uuid.New()

	repo := &stubRepository{artist: &artist.Artist{ID: 7, Name: "Koma", OwnerID: &owner}}
	svc := NewArtistService(repo, nil, nil)

	err := svc.Delete(context.Background(), 7, admin, true)
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, repo.deleted)
}

func TestUnclaimedProfileIsAdminOnly(t *testing.T) {
	repo := &stubRepository{artist: &artist.Artist{ID: 7, Name: "Koma", OwnerID: nil}}
	svc := NewArtistService(repo, nil, nil)

	err := svc.Delete(context.Background(), 7, uuid.New(), false)
	assert.ErrorIs(t, err, artist.ErrNotOwner)

	err = svc.Delete(context.Background(), 7, uuid.New(), true)
	assert.NoError(t, err)
}

func TestSetTagsNormalizesInput(t *testing.T) {
	owner := uuid.New()
	repo := &stubRepository{artist: &artist.Artist{ID: 7, Name: "Koma", OwnerID: &owner}}
	svc := NewArtistService(repo, nil, nil)

	err := svc.SetTags(context.Background(), 7, []string{" 原創 ", "東方Project", "", "原創"}, owner, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"原創", "東方Project"}, repo.setTags)
}
