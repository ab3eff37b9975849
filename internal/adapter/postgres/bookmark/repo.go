// Package bookmark implements the bookmark ledger using PostgreSQL.
// Bookmarks follow the reaction toggle contract with one twist: a repeat
// call that supplies notes updates them in place instead of toggling off.
package bookmark

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/projecthub/community-backend/internal/adapter/postgres"
	"github.com/projecthub/community-backend/internal/domain"
)

// Outcome reports what a Set call did.
type Outcome string

const (
	OutcomeAdded   Outcome = "added"
	OutcomeUpdated Outcome = "updated"
	OutcomeRemoved Outcome = "removed"
)

// Repo provides bookmark persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new bookmark repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Set applies the dual-mode bookmark contract:
//   - no bookmark yet: insert one (with notes, if any) → added
//   - bookmark exists and notes are supplied: update notes → updated
//   - bookmark exists and notes are absent: delete → removed
//
// The insert is guarded by the (post_id, user_id) primary key so concurrent
// identical requests cannot duplicate a bookmark.
func (r *Repo) Set(ctx context.Context, postID, userID uuid.UUID, notes *string) (Outcome, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`INSERT INTO user_bookmarks (post_id, user_id, notes) VALUES ($1, $2, $3)
         ON CONFLICT (post_id, user_id) DO NOTHING`,
		postID, userID, notes)
	if err != nil {
		return "", postgres.MapError(err, "bookmark", postID)
	}

	if tag.RowsAffected() == 1 {
		return OutcomeAdded, nil
	}

	if notes != nil {
		_, err := q.Exec(ctx,
			`UPDATE user_bookmarks SET notes = $3 WHERE post_id = $1 AND user_id = $2`,
			postID, userID, *notes)
		if err != nil {
			return "", postgres.MapError(err, "bookmark", postID)
		}
		return OutcomeUpdated, nil
	}

	_, err = q.Exec(ctx,
		`DELETE FROM user_bookmarks WHERE post_id = $1 AND user_id = $2`,
		postID, userID)
	if err != nil {
		return "", postgres.MapError(err, "bookmark", postID)
	}

	return OutcomeRemoved, nil
}

// Exists reports whether the user has bookmarked the post.
func (r *Repo) Exists(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM user_bookmarks WHERE post_id = $1 AND user_id = $2)`,
		postID, userID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check bookmark: %w", err)
	}

	return exists, nil
}

// ListForUser returns all of a user's bookmarks, newest first.
func (r *Repo) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Bookmark, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT post_id, user_id, notes, created_at FROM user_bookmarks
         WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	defer rows.Close()

	bookmarks := []domain.Bookmark{}
	for rows.Next() {
		var b domain.Bookmark
		if err := rows.Scan(&b.PostID, &b.UserID, &b.Notes, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("list bookmarks: %w", err)
		}
		bookmarks = append(bookmarks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}

	return bookmarks, nil
}
