package user

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic for accounts and authentication.
type Service interface {
	// Register validates the invite code (consuming the master code in
	// production), creates the account and returns tokens. A per-user
	// code also writes an invite history row.
	Register(ctx context.Context, req *RegisterRequest) (*AuthResult, error)

	Login(ctx context.Context, req *LoginRequest) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)

	Me(ctx context.Context, id uuid.UUID) (*User, error)
	ChangePassword(ctx context.Context, id uuid.UUID, req *ChangePasswordRequest) error

	AdminList(ctx context.Context, page, pageSize int) ([]User, int64, error)
	AdminSetRole(ctx context.Context, id uuid.UUID, role string) (*User, error)
	AdminSetStatus(ctx context.Context, id uuid.UUID, isActive bool) (*User, error)
}
