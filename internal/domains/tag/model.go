package tag

import "time"

// Tag is a curated label artists can be filtered by. Count is a
// denormalized usage counter maintained by the sync job; Index drives
// display ordering in the frontend tag cloud.
type Tag struct {
	Name      string    `json:"name" db:"name"`
	Count     int64     `json:"count" db:"count"`
	Index     int       `json:"index" db:"index"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
