package artist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateArtistRequestValidation(t *testing.T) {
	valid := CreateArtistRequest{
		Name:    "烏丸",
		Twitter: strPtr("https://twitter.com/karasuma"),
		Pixiv:   strPtr("https://pixiv.net/users/123"),
	}
	assert.NoError(t, valid.Validate())

	missing := CreateArtistRequest{}
	assert.Error(t, missing.Validate())

	badURL := CreateArtistRequest{Name: "x", Twitter: strPtr("not a url")}
	assert.Error(t, badURL.Validate())
}

func TestCreateArtistRequestToEntity(t *testing.T) {
	req := CreateArtistRequest{
		Name:  "Koma",
		Pixiv: strPtr("https://pixiv.net/users/9"),
	}

	entity := req.ToEntity()

	assert.Equal(t, "Koma", entity.Name)
	require.NotNil(t, entity.Pixiv)
	assert.Equal(t, "https://pixiv.net/users/9", *entity.Pixiv)
	assert.Nil(t, entity.Twitter)
}

func TestUpdateArtistRequestAppliesOnlyNonNilFields(t *testing.T) {
	existing := &Artist{
		Name:    "Old Name",
		Twitter: strPtr("https://twitter.com/old"),
		Pixiv:   strPtr("https://pixiv.net/users/1"),
	}

	req := UpdateArtistRequest{
		Name:    strPtr("New Name"),
		Twitter: strPtr("https://twitter.com/new"),
	}
	req.ApplyToEntity(existing)

	assert.Equal(t, "New Name", existing.Name)
	assert.Equal(t, "https://twitter.com/new", *existing.Twitter)
	// Untouched fields stay as they were
	assert.Equal(t, "https://pixiv.net/users/1", *existing.Pixiv)
}

func TestUpdateArtistRequestRejectsEmptyName(t *testing.T) {
	req := UpdateArtistRequest{Name: strPtr("")}
	assert.Error(t, req.Validate())
}

func TestCreateProductRequestValidation(t *testing.T) {
	valid := CreateProductRequest{Title: "Summer set"}
	assert.NoError(t, valid.Validate())

	missing := CreateProductRequest{}
	assert.Error(t, missing.Validate())
}

func TestArtistErrorsToHTTPStatus(t *testing.T) {
	assert.Equal(t, 404, ToHTTPStatus(ErrArtistNotFound))
	assert.Equal(t, 404, ToHTTPStatus(ErrProductNotFound))
	assert.Equal(t, 403, ToHTTPStatus(ErrNotOwner))
	assert.Equal(t, 400, ToHTTPStatus(ErrInvalidName))
	assert.Equal(t, 500, ToHTTPStatus(assert.AnError))
}
