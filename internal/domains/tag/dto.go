package tag

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateTagRequest - POST /v1/tags
type CreateTagRequest struct {
	Name  string `json:"name"`
	Index int    `json:"index"`
}

func (r CreateTagRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Index, validation.Min(0)),
	)
}

// RenameTagRequest - PUT /v1/tags/:name
type RenameTagRequest struct {
	NewName string `json:"newName"`
	Index   *int   `json:"index,omitempty"`
}

func (r RenameTagRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.NewName,
			validation.Required.Error("newName is required"),
			validation.Length(1, 100),
		),
	)
}
