package tag

import "context"

// Repository defines data access for the tag domain.
type Repository interface {
	ListAll(ctx context.Context) ([]Tag, error)
	GetByName(ctx context.Context, name string) (*Tag, error)
	Create(ctx context.Context, t *Tag) (*Tag, error)

	// Rename changes a tag's name and rewrites every author_tag link in
	// one transaction, so a crash can never leave links pointing at a
	// name that no longer exists.
	Rename(ctx context.Context, oldName, newName string, index *int) (*Tag, error)

	// Delete removes an unused tag. A tag still linked to artists
	// returns ErrTagInUse.
	Delete(ctx context.Context, name string) error

	// SyncCounts recomputes every tag's count from author_tag.
	SyncCounts(ctx context.Context) (int64, error)
}
