package artist

import (
	"context"

	"douren-backend/internal/shared/pagination"
)

// Repository defines data access for the artist domain.
type Repository interface {
	// List runs the composed listing query: page of rows + total count.
	// Filtering/sorting/search come pre-resolved in params.
	List(ctx context.Context, params pagination.ListParams) ([]ListRow, int64, error)

	// GetByID retrieves one artist (cache-aside).
	// Returns ErrArtistNotFound if absent.
	GetByID(ctx context.Context, id int64) (*Artist, error)

	Create(ctx context.Context, a *Artist) (*Artist, error)
	Update(ctx context.Context, a *Artist) (*Artist, error)

	// Delete removes the artist and its dependent rows (products, tag
	// links, event appearances) in one transaction. The schema has no
	// cascade, so cleanup is explicit here.
	Delete(ctx context.Context, id int64) error

	// SetTags replaces the author_tag associations for an artist.
	SetTags(ctx context.Context, id int64, tags []string) error

	ListProducts(ctx context.Context, artistID int64) ([]Product, error)
	CreateProduct(ctx context.Context, p *Product) (*Product, error)
	DeleteProduct(ctx context.Context, artistID, productID int64) error

	// UpdatePhoto sets only the photo column (upload endpoint).
	UpdatePhoto(ctx context.Context, id int64, photoURL string) error
}
