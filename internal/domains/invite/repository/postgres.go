package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"douren-backend/internal/domains/invite"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) invite.Repository {
	return &postgresRepository{pool: pool}
}

const settingsColumns = `user_id, code, max_invites, is_active, created_at, updated_at`

func scanSettings(row pgx.Row, s *invite.Settings) error {
	return row.Scan(&s.UserID, &s.Code, &s.MaxInvites, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
}

func (r *postgresRepository) GetSettingsByCode(ctx context.Context, code string) (*invite.Settings, error) {
	var s invite.Settings
	err := scanSettings(r.pool.QueryRow(ctx,
		`SELECT `+settingsColumns+` FROM invite_settings WHERE code = $1`, code,
	), &s)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invite.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get invite settings by code: %w", err)
	}
	return &s, nil
}

func (r *postgresRepository) GetSettingsByUser(ctx context.Context, userID uuid.UUID) (*invite.Settings, error) {
	var s invite.Settings
	err := scanSettings(r.pool.QueryRow(ctx,
		`SELECT `+settingsColumns+` FROM invite_settings WHERE user_id = $1`, userID,
	), &s)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invite.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get invite settings: %w", err)
	}
	return &s, nil
}

func (r *postgresRepository) EnsureSettings(ctx context.Context, userID uuid.UUID, code string, maxInvites int) (*invite.Settings, error) {
	var s invite.Settings
	err := scanSettings(r.pool.QueryRow(ctx, `
		INSERT INTO invite_settings (user_id, code, max_invites, is_active)
		VALUES ($1, $2, $3, TRUE)
		ON CONFLICT (user_id) DO UPDATE SET user_id = invite_settings.user_id
		RETURNING `+settingsColumns,
		userID, code, maxInvites,
	), &s)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure invite settings: %w", err)
	}
	return &s, nil
}

func (r *postgresRepository) UpdateCode(ctx context.Context, userID uuid.UUID, code string) (*invite.Settings, error) {
	var s invite.Settings
	err := scanSettings(r.pool.QueryRow(ctx, `
		UPDATE invite_settings SET code = $1, updated_at = NOW()
		WHERE user_id = $2
		RETURNING `+settingsColumns,
		code, userID,
	), &s)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invite.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to update invite code: %w", err)
	}
	return &s, nil
}

func (r *postgresRepository) UpdateSettings(ctx context.Context, userID uuid.UUID, maxInvites *int, isActive *bool) (*invite.Settings, error) {
	var s invite.Settings
	err := scanSettings(r.pool.QueryRow(ctx, `
		UPDATE invite_settings SET
			max_invites = COALESCE($1, max_invites),
			is_active = COALESCE($2, is_active),
			updated_at = NOW()
		WHERE user_id = $3
		RETURNING `+settingsColumns,
		maxInvites, isActive, userID,
	), &s)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invite.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to update invite settings: %w", err)
	}
	return &s, nil
}

func (r *postgresRepository) CountUses(ctx context.Context, inviterID uuid.UUID) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM invite_history WHERE inviter_id = $1`, inviterID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count invite uses: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) ListHistory(ctx context.Context, inviterID uuid.UUID) ([]invite.History, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, inviter_id, invited_user_id, used_code, created_at
		FROM invite_history
		WHERE inviter_id = $1
		ORDER BY created_at DESC`,
		inviterID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query invite history: %w", err)
	}
	defer rows.Close()

	var history []invite.History
	for rows.Next() {
		var h invite.History
		if err := rows.Scan(&h.ID, &h.InviterID, &h.InvitedUserID, &h.UsedCode, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan invite history: %w", err)
		}
		history = append(history, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invite history: %w", err)
	}

	return history, nil
}

func (r *postgresRepository) RecordUse(ctx context.Context, inviterID, invitedUserID uuid.UUID, usedCode string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO invite_history (inviter_id, invited_user_id, used_code)
		VALUES ($1, $2, $3)`,
		inviterID, invitedUserID, usedCode,
	)
	if err != nil {
		return fmt.Errorf("failed to record invite use: %w", err)
	}
	return nil
}

// TryConsumeMaster leans on the unique environment column: the second
// insert hits ON CONFLICT DO NOTHING and affects zero rows.
func (r *postgresRepository) TryConsumeMaster(ctx context.Context, environment, usedBy string) (bool, error) {
	cmdTag, err := r.pool.Exec(ctx, `
		INSERT INTO master_use_ledger (environment, used_by)
		VALUES ($1, $2)
		ON CONFLICT (environment) DO NOTHING`,
		environment, usedBy,
	)
	if err != nil {
		return false, fmt.Errorf("failed to consume master code: %w", err)
	}
	return cmdTag.RowsAffected() == 1, nil
}

func (r *postgresRepository) MasterUsed(ctx context.Context, environment string) (bool, error) {
	var used bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM master_use_ledger WHERE environment = $1)`, environment,
	).Scan(&used)
	if err != nil {
		return false, fmt.Errorf("failed to check master ledger: %w", err)
	}
	return used, nil
}
