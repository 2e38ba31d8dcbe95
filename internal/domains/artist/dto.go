package artist

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateArtistRequest - POST /v1/artists
type CreateArtistRequest struct {
	Name         string  `json:"name"`
	Introduction *string `json:"introduction,omitempty"`
	Photo        *string `json:"photo,omitempty"`
	Twitch       *string `json:"twitch,omitempty"`
	Youtube      *string `json:"youtube,omitempty"`
	Twitter      *string `json:"twitter,omitempty"`
	Plurk        *string `json:"plurk,omitempty"`
	Baha         *string `json:"baha,omitempty"`
	Facebook     *string `json:"facebook,omitempty"`
	Instagram    *string `json:"instagram,omitempty"`
	Pixiv        *string `json:"pixiv,omitempty"`
	Store        *string `json:"store,omitempty"`
	Myacg        *string `json:"myacg,omitempty"`
	Official     *string `json:"official,omitempty"`
	Tags         *string `json:"tags,omitempty"`
}

func (r CreateArtistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Introduction, validation.Length(0, 5000)),
		validation.Field(&r.Photo, is.URL),
		validation.Field(&r.Twitch, is.URL),
		validation.Field(&r.Youtube, is.URL),
		validation.Field(&r.Twitter, is.URL),
		validation.Field(&r.Plurk, is.URL),
		validation.Field(&r.Baha, is.URL),
		validation.Field(&r.Facebook, is.URL),
		validation.Field(&r.Instagram, is.URL),
		validation.Field(&r.Pixiv, is.URL),
		validation.Field(&r.Store, is.URL),
		validation.Field(&r.Myacg, is.URL),
		validation.Field(&r.Official, is.URL),
	)
}

// ToEntity converts the request to an Artist entity.
func (r *CreateArtistRequest) ToEntity() *Artist {
	return &Artist{
		Name:         r.Name,
		Introduction: r.Introduction,
		Photo:        r.Photo,
		Twitch:       r.Twitch,
		Youtube:      r.Youtube,
		Twitter:      r.Twitter,
		Plurk:        r.Plurk,
		Baha:         r.Baha,
		Facebook:     r.Facebook,
		Instagram:    r.Instagram,
		Pixiv:        r.Pixiv,
		Store:        r.Store,
		Myacg:        r.Myacg,
		Official:     r.Official,
		Tags:         r.Tags,
	}
}

// UpdateArtistRequest - PUT /v1/artists/:id
// All fields optional: only non-nil fields are applied.
type UpdateArtistRequest struct {
	Name         *string `json:"name,omitempty"`
	Introduction *string `json:"introduction,omitempty"`
	Photo        *string `json:"photo,omitempty"`
	Twitch       *string `json:"twitch,omitempty"`
	Youtube      *string `json:"youtube,omitempty"`
	Twitter      *string `json:"twitter,omitempty"`
	Plurk        *string `json:"plurk,omitempty"`
	Baha         *string `json:"baha,omitempty"`
	Facebook     *string `json:"facebook,omitempty"`
	Instagram    *string `json:"instagram,omitempty"`
	Pixiv        *string `json:"pixiv,omitempty"`
	Store        *string `json:"store,omitempty"`
	Myacg        *string `json:"myacg,omitempty"`
	Official     *string `json:"official,omitempty"`
	Tags         *string `json:"tags,omitempty"`
}

func (r UpdateArtistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&r.Introduction, validation.Length(0, 5000)),
		validation.Field(&r.Photo, is.URL),
	)
}

// ApplyToEntity applies non-nil fields onto an existing artist.
func (r *UpdateArtistRequest) ApplyToEntity(a *Artist) {
	if r.Name != nil {
		a.Name = *r.Name
	}
	if r.Introduction != nil {
		a.Introduction = r.Introduction
	}
	if r.Photo != nil {
		a.Photo = r.Photo
	}
	if r.Twitch != nil {
		a.Twitch = r.Twitch
	}
	if r.Youtube != nil {
		a.Youtube = r.Youtube
	}
	if r.Twitter != nil {
		a.Twitter = r.Twitter
	}
	if r.Plurk != nil {
		a.Plurk = r.Plurk
	}
	if r.Baha != nil {
		a.Baha = r.Baha
	}
	if r.Facebook != nil {
		a.Facebook = r.Facebook
	}
	if r.Instagram != nil {
		a.Instagram = r.Instagram
	}
	if r.Pixiv != nil {
		a.Pixiv = r.Pixiv
	}
	if r.Store != nil {
		a.Store = r.Store
	}
	if r.Myacg != nil {
		a.Myacg = r.Myacg
	}
	if r.Official != nil {
		a.Official = r.Official
	}
	if r.Tags != nil {
		a.Tags = r.Tags
	}
}

// CreateProductRequest - POST /v1/artists/:id/products
type CreateProductRequest struct {
	Title     string  `json:"title"`
	Thumbnail *string `json:"thumbnail,omitempty"`
	Preview   *string `json:"preview,omitempty"`
}

func (r CreateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Thumbnail, is.URL),
	)
}

// SetTagsRequest - PUT /v1/artists/:id/tags
// Replaces the artist's tag associations with the given names.
type SetTagsRequest struct {
	Tags []string `json:"tags"`
}

func (r SetTagsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Tags, validation.Each(validation.Length(1, 100))),
	)
}
