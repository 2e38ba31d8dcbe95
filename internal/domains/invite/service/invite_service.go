package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/google/uuid"

	"douren-backend/internal/config"
	"douren-backend/internal/domains/invite"
	"douren-backend/pkg/logger"
)

type inviteService struct {
	repo invite.Repository
	cfg  config.InviteConfig
	env  string
}

func NewInviteService(repo invite.Repository, cfg config.InviteConfig, env string) invite.Service {
	return &inviteService{
		repo: repo,
		cfg:  cfg,
		env:  env,
	}
}

// Validate implements the two-track invite check. The master-code track
// never touches storage outside production; the per-user track is
// settings lookup plus a quota count. Storage errors propagate as-is.
func (s *inviteService) Validate(ctx context.Context, code string, opts invite.ValidateOptions) (*invite.Result, error) {
	if s.cfg.MasterCode != "" && code == s.cfg.MasterCode {
		return s.validateMaster(ctx, opts)
	}

	settings, err := s.repo.GetSettingsByCode(ctx, code)
	if err != nil {
		if errors.Is(err, invite.ErrSettingsNotFound) {
			return &invite.Result{IsValid: false}, nil
		}
		return nil, err
	}

	if !settings.IsActive {
		return &invite.Result{IsValid: false}, nil
	}

	used, err := s.repo.CountUses(ctx, settings.UserID)
	if err != nil {
		return nil, err
	}
	if used >= int64(settings.MaxInvites) {
		return &invite.Result{IsValid: false}, nil
	}

	inviterID := settings.UserID
	return &invite.Result{IsValid: true, InviterID: &inviterID}, nil
}

func (s *inviteService) validateMaster(ctx context.Context, opts invite.ValidateOptions) (*invite.Result, error) {
	// Outside production the master code is a free developer pass
	if s.env != "production" {
		return &invite.Result{IsValid: true, IsMasterCode: true}, nil
	}

	if opts.ConsumeMasterCode {
		consumed, err := s.repo.TryConsumeMaster(ctx, s.env, opts.UsedBy)
		if err != nil {
			return nil, err
		}
		if consumed {
			logger.Warn("master invite code consumed", map[string]interface{}{"used_by": opts.UsedBy})
		}
		return &invite.Result{IsValid: consumed, IsMasterCode: true}, nil
	}

	used, err := s.repo.MasterUsed(ctx, s.env)
	if err != nil {
		return nil, err
	}
	return &invite.Result{IsValid: !used, IsMasterCode: true}, nil
}

func (s *inviteService) MySettings(ctx context.Context, userID uuid.UUID) (*invite.SettingsView, error) {
	settings, err := s.repo.EnsureSettings(ctx, userID, generateCode(), s.cfg.DefaultMaxInvites)
	if err != nil {
		return nil, err
	}

	used, err := s.repo.CountUses(ctx, userID)
	if err != nil {
		return nil, err
	}

	remaining := int64(settings.MaxInvites) - used
	if remaining < 0 {
		remaining = 0
	}

	return &invite.SettingsView{
		Settings:         *settings,
		UsedInvites:      used,
		RemainingInvites: remaining,
	}, nil
}

func (s *inviteService) RegenerateCode(ctx context.Context, userID uuid.UUID) (*invite.Settings, error) {
	if _, err := s.repo.EnsureSettings(ctx, userID, generateCode(), s.cfg.DefaultMaxInvites); err != nil {
		return nil, err
	}
	return s.repo.UpdateCode(ctx, userID, generateCode())
}

func (s *inviteService) MyHistory(ctx context.Context, userID uuid.UUID) ([]invite.History, error) {
	history, err := s.repo.ListHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = []invite.History{}
	}
	return history, nil
}

func (s *inviteService) RecordUse(ctx context.Context, inviterID, invitedUserID uuid.UUID, usedCode string) error {
	return s.repo.RecordUse(ctx, inviterID, invitedUserID, usedCode)
}

func (s *inviteService) AdminUpdateSettings(ctx context.Context, userID uuid.UUID, req *invite.UpdateSettingsRequest) (*invite.Settings, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.EnsureSettings(ctx, userID, generateCode(), s.cfg.DefaultMaxInvites); err != nil {
		return nil, err
	}

	return s.repo.UpdateSettings(ctx, userID, req.MaxInvites, req.IsActive)
}

// generateCode produces a 12-hex-char uppercase invite code.
func generateCode() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; fall back to
		// a uuid fragment just in case
		return strings.ToUpper(uuid.NewString()[:12])
	}
	return strings.ToUpper(hex.EncodeToString(buf))
}
