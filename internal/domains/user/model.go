package user

import (
	"time"

	"github.com/google/uuid"
)

// Roles
const (
	RoleAdmin  = "admin"
	RoleArtist = "artist"
	RoleUser   = "user"
)

// User is a CMS account. Registration is invite-gated.
type User struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Email         string    `json:"email" db:"email"`
	PasswordHash  string    `json:"-" db:"password_hash"`
	DisplayName   string    `json:"displayName" db:"display_name"`
	Role          string    `json:"role" db:"role"`
	IsActive      bool      `json:"isActive" db:"is_active"`
	EmailVerified bool      `json:"emailVerified" db:"email_verified"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// TokenPair is what auth endpoints hand back.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthResult bundles the user with fresh tokens.
type AuthResult struct {
	User   *User     `json:"user"`
	Tokens TokenPair `json:"tokens"`
}
