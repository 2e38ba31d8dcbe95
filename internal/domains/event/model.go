package event

import "time"

// Event is a convention edition (e.g. "FF42"). At most one event is the
// default at any time; SetDefault enforces that transactionally.
type Event struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	IsDefault bool      `json:"isDefault" db:"is_default"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Booth is a deduplicated physical stand at an event.
// (event_id, name) is unique; the backfill job maintains that.
type Booth struct {
	ID            int64   `json:"id" db:"id"`
	EventID       int64   `json:"eventId" db:"event_id"`
	Name          string  `json:"name" db:"name"`
	LocationDay01 *string `json:"locationDay01,omitempty" db:"location_day01"`
	LocationDay02 *string `json:"locationDay02,omitempty" db:"location_day02"`
	LocationDay03 *string `json:"locationDay03,omitempty" db:"location_day03"`
}

// EventArtist records one artist's appearance at one event. BoothID is
// nullable because historical rows predate the booth table; the backfill
// job links them up.
type EventArtist struct {
	ID            int64     `json:"id" db:"id"`
	ArtistID      int64     `json:"artistId" db:"artist_id"`
	EventID       int64     `json:"eventId" db:"event_id"`
	BoothName     *string   `json:"boothName,omitempty" db:"booth_name"`
	LocationDay01 *string   `json:"locationDay01,omitempty" db:"location_day01"`
	LocationDay02 *string   `json:"locationDay02,omitempty" db:"location_day02"`
	LocationDay03 *string   `json:"locationDay03,omitempty" db:"location_day03"`
	DM            *string   `json:"dm,omitempty" db:"dm"`
	BoothID       *int64    `json:"boothId,omitempty" db:"booth_id"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// ArtistRow is one row of the event-scoped artist listing: the artist's
// public profile joined with their booth placement for that event.
type ArtistRow struct {
	ArtistID      int64   `json:"artistId"`
	Name          string  `json:"name"`
	Introduction  *string `json:"introduction,omitempty"`
	Photo         *string `json:"photo,omitempty"`
	Twitch        *string `json:"twitch,omitempty"`
	Youtube       *string `json:"youtube,omitempty"`
	Twitter       *string `json:"twitter,omitempty"`
	Plurk         *string `json:"plurk,omitempty"`
	Baha          *string `json:"baha,omitempty"`
	Facebook      *string `json:"facebook,omitempty"`
	Instagram     *string `json:"instagram,omitempty"`
	Pixiv         *string `json:"pixiv,omitempty"`
	Store         *string `json:"store,omitempty"`
	Myacg         *string `json:"myacg,omitempty"`
	Official      *string `json:"official,omitempty"`
	TagNames      string  `json:"tagNames"`
	BoothName     *string `json:"boothName,omitempty"`
	LocationDay01 *string `json:"locationDay01,omitempty"`
	LocationDay02 *string `json:"locationDay02,omitempty"`
	LocationDay03 *string `json:"locationDay03,omitempty"`
	DM            *string `json:"dm,omitempty"`
}

// BackfillResult summarizes one booth backfill run for an event.
type BackfillResult struct {
	BoothsCreated int64 `json:"boothsCreated"`
	BoothsMerged  int64 `json:"boothsMerged"`
	RowsRelinked  int64 `json:"rowsRelinked"`
}
