package invite

import (
	"time"

	"github.com/google/uuid"
)

// Settings is one user's invite quota: their shareable code, how many
// registrations it may gate, and whether it is currently usable.
type Settings struct {
	UserID     uuid.UUID `json:"userId" db:"user_id"`
	Code       string    `json:"code" db:"code"`
	MaxInvites int       `json:"maxInvites" db:"max_invites"`
	IsActive   bool      `json:"isActive" db:"is_active"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

// History records one successful use of an invite code.
type History struct {
	ID            int64     `json:"id" db:"id"`
	InviterID     uuid.UUID `json:"inviterId" db:"inviter_id"`
	InvitedUserID uuid.UUID `json:"invitedUserId" db:"invited_user_id"`
	UsedCode      string    `json:"usedCode" db:"used_code"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// ValidateOptions controls whether a successful master-code validation
// also burns the code. Registration consumes; pre-checks peek.
type ValidateOptions struct {
	ConsumeMasterCode bool
	UsedBy            string
}

// Result is the outcome of validating an invite code.
type Result struct {
	IsValid      bool       `json:"isValid"`
	InviterID    *uuid.UUID `json:"inviterId,omitempty"`
	IsMasterCode bool       `json:"isMasterCode"`
}

// SettingsView is Settings plus the derived remaining-use count.
type SettingsView struct {
	Settings
	UsedInvites      int64 `json:"usedInvites"`
	RemainingInvites int64 `json:"remainingInvites"`
}
