package invite

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidateCodeRequest - POST /v1/invites/validate
type ValidateCodeRequest struct {
	Code string `json:"code"`
}

func (r ValidateCodeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Code, validation.Required.Error("code is required")),
	)
}

// UpdateSettingsRequest - PUT /v1/admin/invites/:userId (admin)
type UpdateSettingsRequest struct {
	MaxInvites *int  `json:"maxInvites,omitempty"`
	IsActive   *bool `json:"isActive,omitempty"`
}

func (r UpdateSettingsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.MaxInvites, validation.Min(0)),
	)
}
