package repository

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"douren-backend/internal/domains/artist"
	"douren-backend/internal/shared/pagination"
	"douren-backend/pkg/cache"
)

// postgresRepository implements artist.Repository.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) artist.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	artistCacheKeyPrefix = "artist:"
	artistListKeyPrefix  = "artists:list:"
	cacheTTL             = 15 * time.Minute
)

const artistColumns = `author_main.id, author_main.name, author_main.introduction, author_main.photo,
		author_main.twitch, author_main.youtube, author_main.twitter, author_main.plurk,
		author_main.baha, author_main.facebook, author_main.instagram, author_main.pixiv,
		author_main.store, author_main.myacg, author_main.official, author_main.tags,
		author_main.owner_id, author_main.created_at, author_main.updated_at`

// listSelect aggregates tag names per artist in a correlated subquery so
// the outer query stays GROUP BY-free and the composed WHERE conditions
// apply cleanly.
const listSelect = `SELECT ` + artistColumns + `,
		COALESCE((SELECT string_agg(author_tag.tag_name, ',' ORDER BY author_tag.tag_name)
			FROM author_tag WHERE author_tag.author_id = author_main.id), '') AS tag_names
	FROM author_main`

const listCount = `SELECT COUNT(*) FROM author_main`

func scanArtist(row pgx.Row, a *artist.Artist) error {
	return row.Scan(
		&a.ID, &a.Name, &a.Introduction, &a.Photo,
		&a.Twitch, &a.Youtube, &a.Twitter, &a.Plurk,
		&a.Baha, &a.Facebook, &a.Instagram, &a.Pixiv,
		&a.Store, &a.Myacg, &a.Official, &a.Tags,
		&a.OwnerID, &a.CreatedAt, &a.UpdatedAt,
	)
}

// cachedList is the cache shape for one listing page.
type cachedList struct {
	Rows  []artist.ListRow `json:"rows"`
	Total int64            `json:"total"`
}

// List composes and runs the listing query plus its count, with
// cache-aside keyed by the composed SQL and arguments.
func (r *postgresRepository) List(ctx context.Context, params pagination.ListParams) ([]artist.ListRow, int64, error) {
	builder := pagination.NewBuilder(listSelect, listCount).
		WithTableIsNot("author_main.name", "").
		WithAndFilter(pagination.TagConditions(params.TagCSV)).
		WithIlikeSearch(params.Search, params.SearchColumn).
		WithOrderBy(params.SortDirection, params.SortColumn).
		WithPagination(params.Page, params.PageSize)

	selectQuery, countQuery := builder.Build()

	cacheKey := listCacheKey(selectQuery)
	var cached cachedList
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return cached.Rows, cached.Total, nil
	}

	rows, err := r.pool.Query(ctx, selectQuery.SQL, selectQuery.Args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query artists: %w", err)
	}
	defer rows.Close()

	var result []artist.ListRow
	for rows.Next() {
		var lr artist.ListRow
		if err := rows.Scan(
			&lr.ID, &lr.Name, &lr.Introduction, &lr.Photo,
			&lr.Twitch, &lr.Youtube, &lr.Twitter, &lr.Plurk,
			&lr.Baha, &lr.Facebook, &lr.Instagram, &lr.Pixiv,
			&lr.Store, &lr.Myacg, &lr.Official, &lr.Tags,
			&lr.OwnerID, &lr.CreatedAt, &lr.UpdatedAt,
			&lr.TagNames,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan artist row: %w", err)
		}
		result = append(result, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating artists: %w", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery.SQL, countQuery.Args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count artists: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, cachedList{Rows: result, Total: total}, cacheTTL)

	return result, total, nil
}

// listCacheKey hashes the composed query so every distinct combination
// of page, sort, search and filters gets its own cache slot.
func listCacheKey(q pagination.Query) string {
	h := fnv.New64a()
	h.Write([]byte(q.SQL))
	for _, arg := range q.Args {
		fmt.Fprintf(h, "|%v", arg)
	}
	return fmt.Sprintf("%s%x", artistListKeyPrefix, h.Sum64())
}

// GetByID retrieves one artist with cache-aside.
func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*artist.Artist, error) {
	cacheKey := fmt.Sprintf("%s%d", artistCacheKeyPrefix, id)

	var a artist.Artist
	if found, err := r.cache.Get(ctx, cacheKey, &a); err == nil && found {
		return &a, nil
	}

	query := `SELECT ` + artistColumns + ` FROM author_main WHERE author_main.id = $1`
	if err := scanArtist(r.pool.QueryRow(ctx, query, id), &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, artist.ErrArtistNotFound
		}
		return nil, fmt.Errorf("failed to get artist by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, &a, cacheTTL)

	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *artist.Artist) (*artist.Artist, error) {
	query := `
		INSERT INTO author_main (
			name, introduction, photo,
			twitch, youtube, twitter, plurk, baha, facebook,
			instagram, pixiv, store, myacg, official, tags, owner_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING ` + artistColumns

	var created artist.Artist
	err := scanArtist(r.pool.QueryRow(ctx, query,
		a.Name, a.Introduction, a.Photo,
		a.Twitch, a.Youtube, a.Twitter, a.Plurk, a.Baha, a.Facebook,
		a.Instagram, a.Pixiv, a.Store, a.Myacg, a.Official, a.Tags, a.OwnerID,
	), &created)
	if err != nil {
		return nil, fmt.Errorf("failed to create artist: %w", err)
	}

	r.invalidateListCache(ctx)

	return &created, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *artist.Artist) (*artist.Artist, error) {
	query := `
		UPDATE author_main SET
			name = $1, introduction = $2, photo = $3,
			twitch = $4, youtube = $5, twitter = $6, plurk = $7, baha = $8,
			facebook = $9, instagram = $10, pixiv = $11, store = $12,
			myacg = $13, official = $14, tags = $15,
			updated_at = NOW()
		WHERE id = $16
		RETURNING ` + artistColumns

	var updated artist.Artist
	err := scanArtist(r.pool.QueryRow(ctx, query,
		a.Name, a.Introduction, a.Photo,
		a.Twitch, a.Youtube, a.Twitter, a.Plurk, a.Baha,
		a.Facebook, a.Instagram, a.Pixiv, a.Store,
		a.Myacg, a.Official, a.Tags,
		a.ID,
	), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, artist.ErrArtistNotFound
		}
		return nil, fmt.Errorf("failed to update artist: %w", err)
	}

	r.invalidateArtistCache(ctx, a.ID)
	r.invalidateListCache(ctx)

	return &updated, nil
}

// Delete removes the artist and every dependent row in one transaction.
// There is no ON DELETE CASCADE in the schema.
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM author_product WHERE artist_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete artist products: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM author_tag WHERE author_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete artist tag links: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM event_artist WHERE artist_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete artist event appearances: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM author_main WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete artist: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return artist.ErrArtistNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.invalidateArtistCache(ctx, id)
	r.invalidateListCache(ctx)

	return nil
}

// SetTags replaces the author_tag rows for an artist. Unknown tag names
// are created with count 0; the batch sync job fixes counts up later.
func (r *postgresRepository) SetTags(ctx context.Context, id int64, tags []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM author_main WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check artist existence: %w", err)
	}
	if !exists {
		return artist.ErrArtistNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM author_tag WHERE author_id = $1`, id); err != nil {
		return fmt.Errorf("failed to clear tag links: %w", err)
	}

	for _, tag := range tags {
		if _, err := tx.Exec(ctx,
			`INSERT INTO tag (name, count, index) VALUES ($1, 0, 0) ON CONFLICT (name) DO NOTHING`,
			tag,
		); err != nil {
			return fmt.Errorf("failed to ensure tag %q: %w", tag, err)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO author_tag (author_id, tag_name) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			id, tag,
		); err != nil {
			return fmt.Errorf("failed to link tag %q: %w", tag, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.invalidateArtistCache(ctx, id)
	r.invalidateListCache(ctx)

	return nil
}

func (r *postgresRepository) ListProducts(ctx context.Context, artistID int64) ([]artist.Product, error) {
	query := `
		SELECT id, artist_id, title, thumbnail, preview, created_at
		FROM author_product
		WHERE artist_id = $1
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query, artistID)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []artist.Product
	for rows.Next() {
		var p artist.Product
		if err := rows.Scan(&p.ID, &p.ArtistID, &p.Title, &p.Thumbnail, &p.Preview, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

func (r *postgresRepository) CreateProduct(ctx context.Context, p *artist.Product) (*artist.Product, error) {
	query := `
		INSERT INTO author_product (artist_id, title, thumbnail, preview)
		VALUES ($1, $2, $3, $4)
		RETURNING id, artist_id, title, thumbnail, preview, created_at`

	var created artist.Product
	err := r.pool.QueryRow(ctx, query, p.ArtistID, p.Title, p.Thumbnail, p.Preview).
		Scan(&created.ID, &created.ArtistID, &created.Title, &created.Thumbnail, &created.Preview, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) DeleteProduct(ctx context.Context, artistID, productID int64) error {
	cmdTag, err := r.pool.Exec(ctx,
		`DELETE FROM author_product WHERE id = $1 AND artist_id = $2`,
		productID, artistID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return artist.ErrProductNotFound
	}

	return nil
}

func (r *postgresRepository) UpdatePhoto(ctx context.Context, id int64, photoURL string) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE author_main SET photo = $1, updated_at = NOW() WHERE id = $2`,
		photoURL, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update photo: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return artist.ErrArtistNotFound
	}

	r.invalidateArtistCache(ctx, id)

	return nil
}

// Cache helpers

func (r *postgresRepository) invalidateArtistCache(ctx context.Context, id int64) {
	_ = r.cache.Delete(ctx, fmt.Sprintf("%s%d", artistCacheKeyPrefix, id))
}

func (r *postgresRepository) invalidateListCache(ctx context.Context) {
	_ = r.cache.DeletePattern(ctx, artistListKeyPrefix+"*")
}
