package artist

import (
	"time"

	"github.com/google/uuid"
)

// Artist is the domain entity backing the author_main table.
// The link columns are kept flat to match the public sites, which render
// each service icon from its own field.
type Artist struct {
	ID           int64   `db:"id" json:"id"`
	Name         string  `db:"name" json:"name"`
	Introduction *string `db:"introduction" json:"introduction"`
	Photo        *string `db:"photo" json:"photo"`

	// Social / store links
	Twitch    *string `db:"twitch" json:"twitch"`
	Youtube   *string `db:"youtube" json:"youtube"`
	Twitter   *string `db:"twitter" json:"twitter"`
	Plurk     *string `db:"plurk" json:"plurk"`
	Baha      *string `db:"baha" json:"baha"`
	Facebook  *string `db:"facebook" json:"facebook"`
	Instagram *string `db:"instagram" json:"instagram"`
	Pixiv     *string `db:"pixiv" json:"pixiv"`
	Store     *string `db:"store" json:"store"`
	Myacg     *string `db:"myacg" json:"myacg"`
	Official  *string `db:"official" json:"official"`

	// Legacy denormalized tag string; author_tag rows are authoritative
	Tags *string `db:"tags" json:"tags"`

	// CMS user owning this profile, nil for unclaimed profiles
	OwnerID *uuid.UUID `db:"owner_id" json:"owner_id,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ListRow is one row of the public artist listing: the artist plus the
// comma-joined tag names aggregated from author_tag.
type ListRow struct {
	Artist
	TagNames string `db:"tag_names" json:"tagNames"`
}

// Product is one portfolio piece (author_product).
// Preview stores newline-joined URLs, kept as-is from the legacy schema.
type Product struct {
	ID        int64     `db:"id" json:"id"`
	ArtistID  int64     `db:"artist_id" json:"artistId"`
	Title     string    `db:"title" json:"title"`
	Thumbnail *string   `db:"thumbnail" json:"thumbnail"`
	Preview   *string   `db:"preview" json:"preview"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
