package shared

// Task types handled by the asynq worker.
const (
	TypeSyncTagCounts     = "tag:sync_counts"
	TypeBackfillBooths    = "event:backfill_booths"
	TypeCleanupOrphans    = "artist:cleanup_orphans"
	TypeDeleteArtistFiles = "artist:delete_files"
)

// Queue names.
const (
	QueueDefault     = "default"
	QueueMaintenance = "maintenance"
)

// TagSyncPayload is empty for now; the job always recounts every tag.
type TagSyncPayload struct{}

// BackfillBoothsPayload scopes the booth dedup/backfill to one event,
// or all events when EventID is zero.
type BackfillBoothsPayload struct {
	EventID int64 `json:"eventId"`
}

// DeleteArtistFilesPayload carries the storage prefix of a deleted artist.
type DeleteArtistFilesPayload struct {
	ArtistID int64  `json:"artistId"`
	Prefix   string `json:"prefix"`
}
