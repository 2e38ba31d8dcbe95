package artist

import (
	"context"

	"github.com/google/uuid"

	"douren-backend/internal/shared/pagination"
)

// Service defines business logic for the artist domain.
type Service interface {
	// List returns one page of the public listing wrapped in the
	// pagination envelope. Rows with an empty name are excluded; tag
	// filters AND together; search is a case-insensitive substring
	// match on the resolved column.
	List(ctx context.Context, params pagination.ListParams) (pagination.Envelope, error)

	GetByID(ctx context.Context, id int64) (*Artist, error)

	// Create makes a new profile. When ownerID is non-nil the profile
	// is claimed by that CMS user.
	Create(ctx context.Context, req *CreateArtistRequest, ownerID *uuid.UUID) (*Artist, error)

	// Update applies a partial update. Non-admin callers must own the
	// profile (ErrNotOwner otherwise).
	Update(ctx context.Context, id int64, req *UpdateArtistRequest, callerID uuid.UUID, isAdmin bool) (*Artist, error)

	// Delete removes the profile and its dependents.
	Delete(ctx context.Context, id int64, callerID uuid.UUID, isAdmin bool) error

	SetTags(ctx context.Context, id int64, tags []string, callerID uuid.UUID, isAdmin bool) error

	ListProducts(ctx context.Context, artistID int64) ([]Product, error)
	CreateProduct(ctx context.Context, artistID int64, req *CreateProductRequest, callerID uuid.UUID, isAdmin bool) (*Product, error)
	DeleteProduct(ctx context.Context, artistID, productID int64, callerID uuid.UUID, isAdmin bool) error

	// UploadPhoto stores the image and points the profile at it.
	UploadPhoto(ctx context.Context, id int64, data []byte, contentType string, callerID uuid.UUID, isAdmin bool) (string, error)
}
