package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequestValidation(t *testing.T) {
	valid := RegisterRequest{
		Email:       "artist@example.com",
		Password:    "hunter2hunter2",
		DisplayName: "烏丸",
		InviteCode:  "ABC123",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing email", RegisterRequest{Password: "hunter2hunter2", DisplayName: "x", InviteCode: "c"}},
		{"bad email", RegisterRequest{Email: "nope", Password: "hunter2hunter2", DisplayName: "x", InviteCode: "c"}},
		{"short password", RegisterRequest{Email: "a@b.com", Password: "short", DisplayName: "x", InviteCode: "c"}},
		{"missing invite code", RegisterRequest{Email: "a@b.com", Password: "hunter2hunter2", DisplayName: "x"}},
		{"missing display name", RegisterRequest{Email: "a@b.com", Password: "hunter2hunter2", InviteCode: "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.req.Validate())
		})
	}
}

func TestSetRoleRequestValidation(t *testing.T) {
	assert.NoError(t, SetRoleRequest{Role: RoleAdmin}.Validate())
	assert.NoError(t, SetRoleRequest{Role: RoleArtist}.Validate())
	assert.NoError(t, SetRoleRequest{Role: RoleUser}.Validate())
	assert.Error(t, SetRoleRequest{Role: "superuser"}.Validate())
	assert.Error(t, SetRoleRequest{}.Validate())
}

func TestChangePasswordRequestValidation(t *testing.T) {
	assert.NoError(t, ChangePasswordRequest{CurrentPassword: "old-password", NewPassword: "new-password-1"}.Validate())
	assert.Error(t, ChangePasswordRequest{CurrentPassword: "old-password", NewPassword: "short"}.Validate())
	assert.Error(t, ChangePasswordRequest{NewPassword: "new-password-1"}.Validate())
}

func TestUserErrorsToHTTPStatus(t *testing.T) {
	assert.Equal(t, 404, ToHTTPStatus(ErrUserNotFound))
	assert.Equal(t, 409, ToHTTPStatus(ErrEmailAlreadyExists))
	assert.Equal(t, 401, ToHTTPStatus(ErrInvalidCredentials))
	assert.Equal(t, 401, ToHTTPStatus(ErrInvalidToken))
	assert.Equal(t, 403, ToHTTPStatus(ErrAccountDisabled))
	assert.Equal(t, 400, ToHTTPStatus(ErrInvalidInviteCode))
	assert.Equal(t, 500, ToHTTPStatus(assert.AnError))
}
