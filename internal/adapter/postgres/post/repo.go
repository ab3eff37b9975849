// Package post implements the post store repository using PostgreSQL.
// It owns posts, their ordered tag sets, and the view counter.
package post

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/projecthub/community-backend/internal/adapter/postgres"
	"github.com/projecthub/community-backend/internal/domain"
)

// Repo provides post persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new post repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// tagsSubquery aggregates a post's ordered tags into a text array.
const tagsSubquery = `
    COALESCE((SELECT array_agg(t.tag ORDER BY t.position) FROM post_tags t WHERE t.post_id = p.id), '{}')`

const postColumns = `
    p.id, p.space_id, p.user_id, p.title, p.content, p.content_format,` + tagsSubquery + `,
    p.is_announcement, p.is_pinned, p.view_count, p.created_at, p.updated_at`

const getByIDSQL = `
SELECT` + postColumns + `
FROM community_posts p
WHERE p.id = $1`

const getWithAuthorSQL = `
SELECT` + postColumns + `,
    u.username, u.avatar_url
FROM community_posts p
JOIN users u ON p.user_id = u.id
WHERE p.id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a post by primary key with its tags.
// Returns domain.ErrNotFound if the post does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPost(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "post", id)
	}

	return p, nil
}

// GetWithAuthor returns a post joined with its author's display info.
// Returns domain.ErrNotFound if the post does not exist.
func (r *Repo) GetWithAuthor(ctx context.Context, id uuid.UUID) (*domain.PostDetail, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var d domain.PostDetail
	err := q.QueryRow(ctx, getWithAuthorSQL, id).Scan(
		&d.ID, &d.SpaceID, &d.UserID, &d.Title, &d.Content, &d.ContentFormat, &d.Tags,
		&d.IsAnnouncement, &d.IsPinned, &d.ViewCount, &d.CreatedAt, &d.UpdatedAt,
		&d.AuthorName, &d.AuthorAvatarURL,
	)
	if err != nil {
		return nil, postgres.MapError(err, "post", id)
	}

	return &d, nil
}

// List returns one page of posts in a space plus the total matching count.
// Sort and filter values map to fixed clauses; see Filter.
func (r *Repo) List(ctx context.Context, spaceID uuid.UUID, f Filter) ([]domain.PostSummary, int, error) {
	f.normalize()
	q := postgres.QuerierFromCtx(ctx, r.pool)

	conds := sq.And{sq.Eq{"p.space_id": spaceID}}
	switch f.Filter {
	case domain.FilterAnnouncements:
		conds = append(conds, sq.Eq{"p.is_announcement": true})
	case domain.FilterPinned:
		conds = append(conds, sq.Eq{"p.is_pinned": true})
	}

	listQuery := builder.
		Select("p.id", "p.space_id", "p.user_id", "p.title", "p.content", "p.content_format",
			tagsSubquery,
			"p.is_announcement", "p.is_pinned", "p.view_count", "p.created_at", "p.updated_at",
			"u.username", "u.avatar_url",
			"(SELECT COUNT(*) FROM post_reactions pr WHERE pr.post_id = p.id) AS reaction_count").
		From("community_posts p").
		Join("users u ON p.user_id = u.id").
		Where(conds).
		OrderBy(f.orderClause()).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.offset()))

	sql, args, err := listQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list posts query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	items := []domain.PostSummary{}
	for rows.Next() {
		var s domain.PostSummary
		if err := rows.Scan(
			&s.ID, &s.SpaceID, &s.UserID, &s.Title, &s.Content, &s.ContentFormat, &s.Tags,
			&s.IsAnnouncement, &s.IsPinned, &s.ViewCount, &s.CreatedAt, &s.UpdatedAt,
			&s.AuthorName, &s.AuthorAvatarURL, &s.ReactionCount,
		); err != nil {
			return nil, 0, fmt.Errorf("list posts: %w", err)
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}

	countQuery := builder.
		Select("COUNT(*)").
		From("community_posts p").
		Where(conds)

	sql, args, err = countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count posts query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	return items, total, nil
}

// ListRecent returns the most recent posts in a space for the space detail view.
func (r *Repo) ListRecent(ctx context.Context, spaceID uuid.UUID, limit int) ([]domain.PostSummary, error) {
	items, _, err := r.List(ctx, spaceID, Filter{
		Sort:  domain.SortNewest,
		Limit: limit,
	})
	return items, err
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const insertPostSQL = `
INSERT INTO community_posts (space_id, user_id, title, content, content_format, is_announcement)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, space_id, user_id, title, content, content_format, '{}'::text[],
    is_announcement, is_pinned, view_count, created_at, updated_at`

// Create inserts a new post. Tags are written separately via ReplaceTags.
func (r *Repo) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanPost(q.QueryRow(ctx, insertPostSQL,
		p.SpaceID, p.UserID, p.Title, p.Content, p.ContentFormat, p.IsAnnouncement,
	))
	if err != nil {
		return nil, postgres.MapError(err, "post", uuid.Nil)
	}

	created.Tags = p.Tags
	return created, nil
}

// ReplaceTags removes the post's tag set and writes the given ordered tags.
func (r *Repo) ReplaceTags(ctx context.Context, postID uuid.UUID, tags []string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, `DELETE FROM post_tags WHERE post_id = $1`, postID); err != nil {
		return postgres.MapError(err, "post tags", postID)
	}

	if len(tags) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i, tag := range tags {
		batch.Queue(`INSERT INTO post_tags (post_id, position, tag) VALUES ($1, $2, $3)`,
			postID, i, tag)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range tags {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "post tags", postID)
		}
	}

	return nil
}

// IncrementViewCount bumps the view counter. Every fetch counts; there is no
// per-user dedup.
func (r *Repo) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`UPDATE community_posts SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "post", id)
	}

	return nil
}

// Update applies a partial update (tags excluded; see ReplaceTags) and
// returns the updated post. Returns domain.ErrNotFound if the post is gone.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.PostUpdateParams) (*domain.Post, error) {
	update := builder.Update("community_posts").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(`RETURNING id, space_id, user_id, title, content, content_format,
            COALESCE((SELECT array_agg(t.tag ORDER BY t.position) FROM post_tags t WHERE t.post_id = community_posts.id), '{}'),
            is_announcement, is_pinned, view_count, created_at, updated_at`)

	if params.Title != nil {
		update = update.Set("title", *params.Title)
	}
	if params.Content != nil {
		update = update.Set("content", *params.Content)
	}
	if params.ContentFormat != nil {
		update = update.Set("content_format", *params.ContentFormat)
	}
	if params.IsPinned != nil {
		update = update.Set("is_pinned", *params.IsPinned)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update post query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	p, err := scanPost(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "post", id)
	}

	return p, nil
}

// Delete removes a post. Reactions, bookmarks, tags, the poll, and its votes
// cascade at the FK level.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM community_posts WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "post", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanPost(row pgx.Row) (*domain.Post, error) {
	var p domain.Post
	err := row.Scan(
		&p.ID, &p.SpaceID, &p.UserID, &p.Title, &p.Content, &p.ContentFormat, &p.Tags,
		&p.IsAnnouncement, &p.IsPinned, &p.ViewCount, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
