package invite

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for the invite domain.
type Repository interface {
	GetSettingsByCode(ctx context.Context, code string) (*Settings, error)
	GetSettingsByUser(ctx context.Context, userID uuid.UUID) (*Settings, error)

	// EnsureSettings creates the row with defaults if the user has none
	// yet, and returns it either way.
	EnsureSettings(ctx context.Context, userID uuid.UUID, code string, maxInvites int) (*Settings, error)

	UpdateCode(ctx context.Context, userID uuid.UUID, code string) (*Settings, error)
	UpdateSettings(ctx context.Context, userID uuid.UUID, maxInvites *int, isActive *bool) (*Settings, error)

	// CountUses returns how many registrations an inviter's codes have
	// already gated.
	CountUses(ctx context.Context, inviterID uuid.UUID) (int64, error)

	ListHistory(ctx context.Context, inviterID uuid.UUID) ([]History, error)
	RecordUse(ctx context.Context, inviterID, invitedUserID uuid.UUID, usedCode string) error

	// TryConsumeMaster burns the one-shot master code for an
	// environment. INSERT ON CONFLICT DO NOTHING: false means the row
	// already existed and the code is spent.
	TryConsumeMaster(ctx context.Context, environment, usedBy string) (bool, error)

	// MasterUsed reports whether the master code was already burned.
	MasterUsed(ctx context.Context, environment string) (bool, error)
}
