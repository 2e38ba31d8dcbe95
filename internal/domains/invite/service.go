package invite

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic for the invite domain.
type Service interface {
	// Validate checks an invite code. Master code: outside production
	// always valid with no storage access; in production valid exactly
	// once per environment (the ledger row). Per-user codes: active
	// settings with remaining quota.
	Validate(ctx context.Context, code string, opts ValidateOptions) (*Result, error)

	// MySettings returns the caller's invite settings, creating them
	// with defaults on first access.
	MySettings(ctx context.Context, userID uuid.UUID) (*SettingsView, error)

	// RegenerateCode replaces the caller's code with a fresh one.
	RegenerateCode(ctx context.Context, userID uuid.UUID) (*Settings, error)

	MyHistory(ctx context.Context, userID uuid.UUID) ([]History, error)

	// RecordUse is called by user registration after a code validated.
	RecordUse(ctx context.Context, inviterID, invitedUserID uuid.UUID, usedCode string) error

	// AdminUpdateSettings adjusts quota or active flag for any user.
	AdminUpdateSettings(ctx context.Context, userID uuid.UUID, req *UpdateSettingsRequest) (*Settings, error)
}
