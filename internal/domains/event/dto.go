package event

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateEventRequest - POST /v1/events
type CreateEventRequest struct {
	Name      string `json:"name"`
	IsDefault bool   `json:"isDefault"`
}

func (r CreateEventRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100),
		),
	)
}

// UpdateEventRequest - PUT /v1/events/:id
type UpdateEventRequest struct {
	Name *string `json:"name,omitempty"`
}

func (r UpdateEventRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
	)
}

// UpsertAppearanceRequest - POST /v1/events/:id/artists and
// PUT /v1/events/:id/artists/:artistId
type UpsertAppearanceRequest struct {
	ArtistID      int64   `json:"artistId"`
	BoothName     *string `json:"boothName,omitempty"`
	LocationDay01 *string `json:"locationDay01,omitempty"`
	LocationDay02 *string `json:"locationDay02,omitempty"`
	LocationDay03 *string `json:"locationDay03,omitempty"`
	DM            *string `json:"dm,omitempty"`
}

func (r UpsertAppearanceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArtistID, validation.Required, validation.Min(1)),
		validation.Field(&r.BoothName, validation.Length(0, 100)),
		validation.Field(&r.LocationDay01, validation.Length(0, 100)),
		validation.Field(&r.LocationDay02, validation.Length(0, 100)),
		validation.Field(&r.LocationDay03, validation.Length(0, 100)),
	)
}
