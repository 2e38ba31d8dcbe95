package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"douren-backend/internal/domains/tag"
	"douren-backend/pkg/cache"
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) tag.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	tagListCacheKey = "tags:all"
	cacheTTL        = 30 * time.Minute
)

func (r *postgresRepository) ListAll(ctx context.Context) ([]tag.Tag, error) {
	var cached []tag.Tag
	if found, err := r.cache.Get(ctx, tagListCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT name, count, index, created_at, updated_at
		FROM tag
		ORDER BY index, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	var tags []tag.Tag
	for rows.Next() {
		var t tag.Tag
		if err := rows.Scan(&t.Name, &t.Count, &t.Index, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tags: %w", err)
	}

	_ = r.cache.Set(ctx, tagListCacheKey, tags, cacheTTL)

	return tags, nil
}

func (r *postgresRepository) GetByName(ctx context.Context, name string) (*tag.Tag, error) {
	var t tag.Tag
	err := r.pool.QueryRow(ctx, `
		SELECT name, count, index, created_at, updated_at
		FROM tag WHERE name = $1`, name,
	).Scan(&t.Name, &t.Count, &t.Index, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tag.ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	return &t, nil
}

func (r *postgresRepository) Create(ctx context.Context, t *tag.Tag) (*tag.Tag, error) {
	var created tag.Tag
	err := r.pool.QueryRow(ctx, `
		INSERT INTO tag (name, count, index)
		VALUES ($1, 0, $2)
		RETURNING name, count, index, created_at, updated_at`,
		t.Name, t.Index,
	).Scan(&created.Name, &created.Count, &created.Index, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, tag.ErrTagAlreadyExists
		}
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	r.invalidate(ctx)

	return &created, nil
}

// Rename updates the tag row and the author_tag links together. Both
// statements commit or neither does.
func (r *postgresRepository) Rename(ctx context.Context, oldName, newName string, index *int) (*tag.Tag, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var renamed tag.Tag
	query := `
		UPDATE tag SET name = $1, updated_at = NOW()
		WHERE name = $2
		RETURNING name, count, index, created_at, updated_at`
	args := []any{newName, oldName}
	if index != nil {
		query = `
			UPDATE tag SET name = $1, index = $2, updated_at = NOW()
			WHERE name = $3
			RETURNING name, count, index, created_at, updated_at`
		args = []any{newName, *index, oldName}
	}

	err = tx.QueryRow(ctx, query, args...).
		Scan(&renamed.Name, &renamed.Count, &renamed.Index, &renamed.CreatedAt, &renamed.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tag.ErrTagNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, tag.ErrTagAlreadyExists
		}
		return nil, fmt.Errorf("failed to rename tag: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE author_tag SET tag_name = $1 WHERE tag_name = $2`,
		newName, oldName,
	); err != nil {
		return nil, fmt.Errorf("failed to relink tag references: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.invalidate(ctx)

	return &renamed, nil
}

func (r *postgresRepository) Delete(ctx context.Context, name string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM tag WHERE name = $1`, name)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return tag.ErrTagInUse
		}
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return tag.ErrTagNotFound
	}

	r.invalidate(ctx)

	return nil
}

// SyncCounts rewrites every count from the link table in one statement.
func (r *postgresRepository) SyncCounts(ctx context.Context) (int64, error) {
	cmdTag, err := r.pool.Exec(ctx, `
		UPDATE tag SET
			count = sub.n,
			updated_at = NOW()
		FROM (
			SELECT tag.name, COUNT(author_tag.author_id) AS n
			FROM tag
			LEFT JOIN author_tag ON author_tag.tag_name = tag.name
			GROUP BY tag.name
		) AS sub
		WHERE tag.name = sub.name AND tag.count <> sub.n`)
	if err != nil {
		return 0, fmt.Errorf("failed to sync tag counts: %w", err)
	}

	r.invalidate(ctx)

	return cmdTag.RowsAffected(), nil
}

func (r *postgresRepository) invalidate(ctx context.Context) {
	_ = r.cache.Delete(ctx, tagListCacheKey)
}
