package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"douren-backend/internal/domains/event"
	"douren-backend/internal/shared/pagination"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) event.Repository {
	return &postgresRepository{pool: pool}
}

// The event-scoped listing joins appearance rows with the artist profile
// and the event row, so every resolvable sort and search column (artist
// name, booth name, day locations) is in scope.
const listArtistsSelect = `SELECT author_main.id, author_main.name, author_main.introduction, author_main.photo,
		author_main.twitch, author_main.youtube, author_main.twitter, author_main.plurk,
		author_main.baha, author_main.facebook, author_main.instagram, author_main.pixiv,
		author_main.store, author_main.myacg, author_main.official,
		COALESCE((SELECT string_agg(author_tag.tag_name, ',' ORDER BY author_tag.tag_name)
			FROM author_tag WHERE author_tag.author_id = author_main.id), '') AS tag_names,
		event_artist.booth_name, event_artist.location_day01, event_artist.location_day02,
		event_artist.location_day03, event_artist.dm
	FROM event_artist
	JOIN author_main ON author_main.id = event_artist.artist_id
	JOIN event ON event.id = event_artist.event_id`

const listArtistsCount = `SELECT COUNT(*)
	FROM event_artist
	JOIN author_main ON author_main.id = event_artist.artist_id
	JOIN event ON event.id = event_artist.event_id`

func (r *postgresRepository) ListEvents(ctx context.Context) ([]event.Event, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, is_default, created_at, updated_at
		FROM event
		ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []event.Event
	for rows.Next() {
		var e event.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.IsDefault, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

func (r *postgresRepository) GetEventByID(ctx context.Context, id int64) (*event.Event, error) {
	var e event.Event
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, is_default, created_at, updated_at
		FROM event WHERE id = $1`, id,
	).Scan(&e.ID, &e.Name, &e.IsDefault, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, event.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &e, nil
}

func (r *postgresRepository) GetEventByName(ctx context.Context, name string) (*event.Event, error) {
	var e event.Event
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, is_default, created_at, updated_at
		FROM event WHERE name = $1`, name,
	).Scan(&e.ID, &e.Name, &e.IsDefault, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, event.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event by name: %w", err)
	}
	return &e, nil
}

func (r *postgresRepository) CreateEvent(ctx context.Context, e *event.Event) (*event.Event, error) {
	var created event.Event
	err := r.pool.QueryRow(ctx, `
		INSERT INTO event (name, is_default)
		VALUES ($1, $2)
		RETURNING id, name, is_default, created_at, updated_at`,
		e.Name, e.IsDefault,
	).Scan(&created.ID, &created.Name, &created.IsDefault, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, event.ErrEventAlreadyExists
		}
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return &created, nil
}

func (r *postgresRepository) UpdateEvent(ctx context.Context, e *event.Event) (*event.Event, error) {
	var updated event.Event
	err := r.pool.QueryRow(ctx, `
		UPDATE event SET name = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, name, is_default, created_at, updated_at`,
		e.Name, e.ID,
	).Scan(&updated.ID, &updated.Name, &updated.IsDefault, &updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, event.ErrEventNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, event.ErrEventAlreadyExists
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return &updated, nil
}

func (r *postgresRepository) DeleteEvent(ctx context.Context, id int64) error {
	var inUse bool
	if err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM event_artist WHERE event_id = $1)`, id,
	).Scan(&inUse); err != nil {
		return fmt.Errorf("failed to check event usage: %w", err)
	}
	if inUse {
		return event.ErrEventInUse
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM booth WHERE event_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete event booths: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM event WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return event.ErrEventNotFound
	}

	return tx.Commit(ctx)
}

// SetDefault flips the flag on one event and clears it everywhere else
// inside a single transaction, so two defaults can never coexist.
func (r *postgresRepository) SetDefault(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`UPDATE event SET is_default = FALSE, updated_at = NOW() WHERE is_default = TRUE AND id <> $1`, id,
	); err != nil {
		return fmt.Errorf("failed to clear default flags: %w", err)
	}

	cmdTag, err := tx.Exec(ctx,
		`UPDATE event SET is_default = TRUE, updated_at = NOW() WHERE id = $1`, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set default event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return event.ErrEventNotFound
	}

	return tx.Commit(ctx)
}

func (r *postgresRepository) ListArtists(ctx context.Context, params pagination.ListParams) ([]event.ArtistRow, int64, error) {
	builder := pagination.NewBuilder(listArtistsSelect, listArtistsCount).
		WithFilterEventName(params.EventName).
		WithTableIsNot("author_main.name", "").
		WithAndFilter(pagination.TagConditions(params.TagCSV)).
		WithIlikeSearch(params.Search, params.SearchColumn).
		WithOrderBy(params.SortDirection, params.SortColumn).
		WithPagination(params.Page, params.PageSize)

	selectQuery, countQuery := builder.Build()

	rows, err := r.pool.Query(ctx, selectQuery.SQL, selectQuery.Args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query event artists: %w", err)
	}
	defer rows.Close()

	var result []event.ArtistRow
	for rows.Next() {
		var ar event.ArtistRow
		if err := rows.Scan(
			&ar.ArtistID, &ar.Name, &ar.Introduction, &ar.Photo,
			&ar.Twitch, &ar.Youtube, &ar.Twitter, &ar.Plurk,
			&ar.Baha, &ar.Facebook, &ar.Instagram, &ar.Pixiv,
			&ar.Store, &ar.Myacg, &ar.Official,
			&ar.TagNames,
			&ar.BoothName, &ar.LocationDay01, &ar.LocationDay02,
			&ar.LocationDay03, &ar.DM,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan event artist row: %w", err)
		}
		result = append(result, ar)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating event artists: %w", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery.SQL, countQuery.Args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count event artists: %w", err)
	}

	return result, total, nil
}

func scanAppearance(row pgx.Row, ea *event.EventArtist) error {
	return row.Scan(
		&ea.ID, &ea.ArtistID, &ea.EventID, &ea.BoothName,
		&ea.LocationDay01, &ea.LocationDay02, &ea.LocationDay03,
		&ea.DM, &ea.BoothID, &ea.CreatedAt, &ea.UpdatedAt,
	)
}

const appearanceColumns = `id, artist_id, event_id, booth_name,
		location_day01, location_day02, location_day03, dm, booth_id,
		created_at, updated_at`

func (r *postgresRepository) GetAppearance(ctx context.Context, eventID, artistID int64) (*event.EventArtist, error) {
	var ea event.EventArtist
	err := scanAppearance(r.pool.QueryRow(ctx, `
		SELECT `+appearanceColumns+`
		FROM event_artist
		WHERE event_id = $1 AND artist_id = $2`,
		eventID, artistID,
	), &ea)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, event.ErrAppearanceNotFound
		}
		return nil, fmt.Errorf("failed to get appearance: %w", err)
	}
	return &ea, nil
}

func (r *postgresRepository) CreateAppearance(ctx context.Context, ea *event.EventArtist) (*event.EventArtist, error) {
	var created event.EventArtist
	err := scanAppearance(r.pool.QueryRow(ctx, `
		INSERT INTO event_artist (artist_id, event_id, booth_name, location_day01, location_day02, location_day03, dm)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+appearanceColumns,
		ea.ArtistID, ea.EventID, ea.BoothName,
		ea.LocationDay01, ea.LocationDay02, ea.LocationDay03, ea.DM,
	), &created)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, event.ErrAppearanceExists
			case "23503":
				return nil, event.ErrEventNotFound
			}
		}
		return nil, fmt.Errorf("failed to create appearance: %w", err)
	}
	return &created, nil
}

func (r *postgresRepository) UpdateAppearance(ctx context.Context, ea *event.EventArtist) (*event.EventArtist, error) {
	var updated event.EventArtist
	err := scanAppearance(r.pool.QueryRow(ctx, `
		UPDATE event_artist SET
			booth_name = $1, location_day01 = $2, location_day02 = $3,
			location_day03 = $4, dm = $5, updated_at = NOW()
		WHERE event_id = $6 AND artist_id = $7
		RETURNING `+appearanceColumns,
		ea.BoothName, ea.LocationDay01, ea.LocationDay02,
		ea.LocationDay03, ea.DM, ea.EventID, ea.ArtistID,
	), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, event.ErrAppearanceNotFound
		}
		return nil, fmt.Errorf("failed to update appearance: %w", err)
	}
	return &updated, nil
}

func (r *postgresRepository) DeleteAppearance(ctx context.Context, eventID, artistID int64) error {
	cmdTag, err := r.pool.Exec(ctx,
		`DELETE FROM event_artist WHERE event_id = $1 AND artist_id = $2`,
		eventID, artistID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete appearance: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return event.ErrAppearanceNotFound
	}
	return nil
}

func (r *postgresRepository) UpdateAppearanceDM(ctx context.Context, eventID, artistID int64, dmURL string) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE event_artist SET dm = $1, updated_at = NOW() WHERE event_id = $2 AND artist_id = $3`,
		dmURL, eventID, artistID,
	)
	if err != nil {
		return fmt.Errorf("failed to update dm image: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return event.ErrAppearanceNotFound
	}
	return nil
}

// BackfillBooths runs the whole dedup pass in one transaction:
//  1. relink appearances pointing at duplicate booths to the survivor
//     (lowest id per (event, trimmed lowercased name))
//  2. drop the duplicate booth rows
//  3. insert booths that exist only as appearance booth_name text
//  4. relink appearances to booth ids by normalized name
func (r *postgresRepository) BackfillBooths(ctx context.Context, eventID int64) (*event.BackfillResult, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM event WHERE id = $1)`, eventID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check event existence: %w", err)
	}
	if !exists {
		return nil, event.ErrEventNotFound
	}

	result := &event.BackfillResult{}

	if _, err := tx.Exec(ctx, `
		UPDATE event_artist SET booth_id = survivors.min_id
		FROM booth dup,
			(SELECT lower(trim(name)) AS norm, MIN(id) AS min_id
				FROM booth WHERE event_id = $1 GROUP BY lower(trim(name))) AS survivors
		WHERE event_artist.event_id = $1
			AND event_artist.booth_id = dup.id
			AND dup.event_id = $1
			AND lower(trim(dup.name)) = survivors.norm
			AND dup.id <> survivors.min_id`,
		eventID,
	); err != nil {
		return nil, fmt.Errorf("failed to relink duplicate booths: %w", err)
	}

	merged, err := tx.Exec(ctx, `
		DELETE FROM booth dup
		USING booth keeper
		WHERE dup.event_id = $1
			AND keeper.event_id = $1
			AND lower(trim(dup.name)) = lower(trim(keeper.name))
			AND dup.id > keeper.id`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to delete duplicate booths: %w", err)
	}
	result.BoothsMerged = merged.RowsAffected()

	created, err := tx.Exec(ctx, `
		INSERT INTO booth (event_id, name, location_day01, location_day02, location_day03)
		SELECT DISTINCT ON (lower(trim(event_artist.booth_name)))
			event_artist.event_id, trim(event_artist.booth_name),
			event_artist.location_day01, event_artist.location_day02, event_artist.location_day03
		FROM event_artist
		WHERE event_artist.event_id = $1
			AND event_artist.booth_name IS NOT NULL
			AND trim(event_artist.booth_name) <> ''
			AND NOT EXISTS (
				SELECT 1 FROM booth
				WHERE booth.event_id = event_artist.event_id
					AND lower(trim(booth.name)) = lower(trim(event_artist.booth_name)))
		ORDER BY lower(trim(event_artist.booth_name)), event_artist.id`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert missing booths: %w", err)
	}
	result.BoothsCreated = created.RowsAffected()

	relinked, err := tx.Exec(ctx, `
		UPDATE event_artist SET booth_id = booth.id
		FROM booth
		WHERE event_artist.event_id = $1
			AND booth.event_id = $1
			AND event_artist.booth_name IS NOT NULL
			AND lower(trim(event_artist.booth_name)) = lower(trim(booth.name))
			AND (event_artist.booth_id IS NULL OR event_artist.booth_id <> booth.id)`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to relink appearances: %w", err)
	}
	result.RowsRelinked = relinked.RowsAffected()

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return result, nil
}
