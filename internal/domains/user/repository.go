package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for the user domain.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u *User) (*User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateRole(ctx context.Context, id uuid.UUID, role string) (*User, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) (*User, error)
	List(ctx context.Context, limit, offset int) ([]User, int64, error)
}
