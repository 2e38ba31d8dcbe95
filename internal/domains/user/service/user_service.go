package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"douren-backend/internal/domains/invite"
	"douren-backend/internal/domains/user"
	"douren-backend/pkg/jwt"
	"douren-backend/pkg/logger"
)

type userService struct {
	repo    user.Repository
	invites invite.Service
	jwt     *jwt.Manager
}

func NewUserService(repo user.Repository, invites invite.Service, jwtManager *jwt.Manager) user.Service {
	return &userService{
		repo:    repo,
		invites: invites,
		jwt:     jwtManager,
	}
}

func (s *userService) Register(ctx context.Context, req *user.RegisterRequest) (*user.AuthResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	result, err := s.invites.Validate(ctx, req.InviteCode, invite.ValidateOptions{
		ConsumeMasterCode: true,
		UsedBy:            req.Email,
	})
	if err != nil {
		return nil, err
	}
	if !result.IsValid {
		return nil, user.ErrInvalidInviteCode
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &user.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		DisplayName:  req.DisplayName,
		Role:         user.RoleArtist,
	})
	if err != nil {
		return nil, err
	}

	// Master-code registrations have no inviter to attribute
	if result.InviterID != nil {
		if err := s.invites.RecordUse(ctx, *result.InviterID, created.ID, req.InviteCode); err != nil {
			logger.Error("failed to record invite use", err)
		}
	}

	tokens, err := s.issueTokens(created)
	if err != nil {
		return nil, err
	}

	logger.Info("user registered", map[string]interface{}{"user_id": created.ID.String(), "email": created.Email})

	return &user.AuthResult{User: created, Tokens: *tokens}, nil
}

func (s *userService) Login(ctx context.Context, req *user.LoginRequest) (*user.AuthResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		// Same answer for unknown email and wrong password
		return nil, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	if !u.IsActive {
		return nil, user.ErrAccountDisabled
	}

	tokens, err := s.issueTokens(u)
	if err != nil {
		return nil, err
	}

	return &user.AuthResult{User: u, Tokens: *tokens}, nil
}

func (s *userService) Refresh(ctx context.Context, refreshToken string) (*user.TokenPair, error) {
	claims, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	// Role/status may have changed since the refresh token was minted
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !u.IsActive {
		return nil, user.ErrAccountDisabled
	}

	return s.issueTokens(u)
}

func (s *userService) Me(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) ChangePassword(ctx context.Context, id uuid.UUID, req *user.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return user.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, id, string(hash))
}

func (s *userService) AdminList(ctx context.Context, page, pageSize int) ([]user.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 30
	}

	users, total, err := s.repo.List(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	if users == nil {
		users = []user.User{}
	}

	return users, total, nil
}

func (s *userService) AdminSetRole(ctx context.Context, id uuid.UUID, role string) (*user.User, error) {
	req := user.SetRoleRequest{Role: role}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateRole(ctx, id, role)
	if err != nil {
		return nil, err
	}

	logger.Info("user role changed", map[string]interface{}{"user_id": id.String(), "role": role})

	return updated, nil
}

func (s *userService) AdminSetStatus(ctx context.Context, id uuid.UUID, isActive bool) (*user.User, error) {
	return s.repo.UpdateStatus(ctx, id, isActive)
}

func (s *userService) issueTokens(u *user.User) (*user.TokenPair, error) {
	access, err := s.jwt.GenerateAccessToken(u.ID.String(), u.Email, u.Role)
	if err != nil {
		return nil, err
	}

	refresh, err := s.jwt.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return nil, err
	}

	return &user.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
