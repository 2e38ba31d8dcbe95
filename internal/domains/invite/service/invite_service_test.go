package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"douren-backend/internal/config"
	"douren-backend/internal/domains/invite"
)

// stubRepository records every call so tests can prove which storage
// paths a validation took.
type stubRepository struct {
	invite.Repository

	settings      *invite.Settings
	settingsErr   error
	useCount      int64
	masterUsed    bool
	consumeResult bool
	consumeErr    error
	calls         []string
}

func (s *stubRepository) GetSettingsByCode(ctx context.Context, code string) (*invite.Settings, error) {
	s.calls = append(s.calls, "GetSettingsByCode")
	if s.settingsErr != nil {
		return nil, s.settingsErr
	}
	return s.settings, nil
}

func (s *stubRepository) CountUses(ctx context.Context, inviterID uuid.UUID) (int64, error) {
	s.calls = append(s.calls, "CountUses")
	return s.useCount, nil
}

func (s *stubRepository) TryConsumeMaster(ctx context.Context, environment, usedBy string) (bool, error) {
	s.calls = append(s.calls, "TryConsumeMaster")
	return s.consumeResult, s.consumeErr
}

func (s *stubRepository) MasterUsed(ctx context.Context, environment string) (bool, error) {
	s.calls = append(s.calls, "MasterUsed")
	return s.masterUsed, nil
}

func newService(repo invite.Repository, env string) invite.Service {
	return NewInviteService(repo, config.InviteConfig{
		MasterCode:        "MASTER-2024",
		DefaultMaxInvites: 5,
	}, env)
}

func TestValidateMasterCodeDevelopmentSkipsStorage(t *testing.T) {
	repo := &stubRepository{}
	svc := newService(repo, "development")

	result, err := svc.Validate(context.Background(), "MASTER-2024", invite.ValidateOptions{ConsumeMasterCode: true})

	require.NoError(t, err)
	assert.True(t, result.IsValid)
	assert.True(t, result.IsMasterCode)
	assert.Nil(t, result.InviterID)
	assert.Empty(t, repo.calls, "master code outside production must not touch storage")
}

func TestValidateMasterCodeProductionConsumesOnce(t *testing.T) {
	repo := &stubRepository{consumeResult: true}
	svc := newService(repo, "production")

	result, err := svc.Validate(context.Background(), "MASTER-2024", invite.ValidateOptions{
		ConsumeMasterCode: true,
		UsedBy:            "first@example.com",
	})

	require.NoError(t, err)
	assert.True(t, result.IsValid)
	assert.True(t, result.IsMasterCode)
	assert.Equal(t, []string{"TryConsumeMaster"}, repo.calls)
}

func TestValidateMasterCodeProductionAlreadyBurned(t *testing.T) {
	repo := &stubRepository{consumeResult: false}
	svc := newService(repo, "production")

	result, err := svc.Validate(context.Background(), "MASTER-2024", invite.ValidateOptions{
		ConsumeMasterCode: true,
		UsedBy:            "second@example.com",
	})

	require.NoError(t, err)
	assert.False(t, result.IsValid)
	assert.True(t, result.IsMasterCode)
}

func TestValidateMasterCodeProductionPeekDoesNotConsume(t *testing.T) {
	repo := &stubRepository{masterUsed: false}
	svc := newService(repo, "production")

	result, err := svc.Validate(context.Background(), "MASTER-2024", invite.ValidateOptions{})

	require.NoError(t, err)
	assert.True(t, result.IsValid)
	assert.Equal(t, []string{"MasterUsed"}, repo.calls)

	repo2 := &stubRepository{masterUsed: true}
	svc2 := newService(repo2, "production")

	result2, err := svc2.Validate(context.Background(), "MASTER-2024", invite.ValidateOptions{})

	require.NoError(t, err)
	assert.False(t, result2.IsValid)
}

func TestValidateUnknownCode(t *testing.T) {
	repo := &stubRepository{settingsErr: invite.ErrSettingsNotFound}
	svc := newService(repo, "production")

	result, err := svc.Validate(context.Background(), "NOPE", invite.ValidateOptions{})

	require.NoError(t, err)
	assert.False(t, result.IsValid)
	assert.False(t, result.IsMasterCode)
}

func TestValidateInactiveCode(t *testing.T) {
	repo := &stubRepository{settings: &invite.Settings{
		UserID:     uuid.New(),
		Code:       "ABC123",
		MaxInvites: 5,
		IsActive:   false,
	}}
	svc := newService(repo, "production")

	result, err := svc.Validate(context.Background(), "ABC123", invite.ValidateOptions{})

	require.NoError(t, err)
	assert.False(t, result.IsValid)
	assert.NotContains(t, repo.calls, "CountUses", "inactive settings short-circuit before counting")
}

func TestValidatePerUserQuota(t *testing.T) {
	inviterID := uuid.New()

	tests := []struct {
		name       string
		maxInvites int
		used       int64
		wantValid  bool
	}{
		{"no uses yet", 5, 0, true},
		{"one slot left", 5, 4, true},
		{"quota exactly reached", 5, 5, false},
		{"over quota", 5, 7, false},
		{"zero quota never valid", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepository{
				settings: &invite.Settings{
					UserID:     inviterID,
					Code:       "ABC123",
					MaxInvites: tt.maxInvites,
					IsActive:   true,
				},
				useCount: tt.used,
			}
			svc := newService(repo, "production")

			result, err := svc.Validate(context.Background(), "ABC123", invite.ValidateOptions{})

			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, result.IsValid)
			if tt.wantValid {
				require.NotNil(t, result.InviterID)
				assert.Equal(t, inviterID, *result.InviterID)
			}
		})
	}
}

func TestValidateEmptyMasterCodeConfigNeverMatches(t *testing.T) {
	repo := &stubRepository{settingsErr: invite.ErrSettingsNotFound}
	svc := NewInviteService(repo, config.InviteConfig{MasterCode: "", DefaultMaxInvites: 5}, "development")

	result, err := svc.Validate(context.Background(), "", invite.ValidateOptions{})

	require.NoError(t, err)
	assert.False(t, result.IsValid)
	assert.False(t, result.IsMasterCode)
}

func TestGenerateCodeShapeAndUniqueness(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code := generateCode()
		assert.Len(t, code, 12)
		assert.False(t, seen[code], "codes should not repeat")
		seen[code] = true
	}
}
