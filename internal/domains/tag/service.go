package tag

import "context"

// Service defines business logic for the tag domain.
type Service interface {
	// List returns all tags ordered by index then name. Reads go through
	// the cache; the whole catalog is small.
	List(ctx context.Context) ([]Tag, error)

	Create(ctx context.Context, req *CreateTagRequest) (*Tag, error)
	Rename(ctx context.Context, name string, req *RenameTagRequest) (*Tag, error)
	Delete(ctx context.Context, name string) error

	// SyncCounts recomputes usage counters. Exposed for the admin
	// endpoint; the scheduler triggers the same path periodically.
	SyncCounts(ctx context.Context) (int64, error)
}
