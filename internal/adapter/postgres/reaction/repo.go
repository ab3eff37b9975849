// Package reaction implements the reaction ledger using PostgreSQL.
// Row presence is the only state: a (post, user, type) row means "this user
// has this reaction on this post". The toggle is race-free — the insert is
// guarded by the primary key, so two concurrent identical requests resolve
// to exactly one add and one remove.
package reaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/projecthub/community-backend/internal/adapter/postgres"
	"github.com/projecthub/community-backend/internal/domain"
)

// Repo provides reaction persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reaction repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Toggle flips a user's reaction on a post. Returns true when the reaction
// was added, false when an existing reaction was removed.
func (r *Repo) Toggle(ctx context.Context, postID, userID uuid.UUID, reactionType string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`INSERT INTO post_reactions (post_id, user_id, reaction_type) VALUES ($1, $2, $3)
         ON CONFLICT (post_id, user_id, reaction_type) DO NOTHING`,
		postID, userID, reactionType)
	if err != nil {
		return false, postgres.MapError(err, "reaction", postID)
	}

	if tag.RowsAffected() == 1 {
		return true, nil
	}

	_, err = q.Exec(ctx,
		`DELETE FROM post_reactions WHERE post_id = $1 AND user_id = $2 AND reaction_type = $3`,
		postID, userID, reactionType)
	if err != nil {
		return false, postgres.MapError(err, "reaction", postID)
	}

	return false, nil
}

// CountsForPost returns reaction tallies grouped by type, with a flag for
// whether the given user holds each reaction.
func (r *Repo) CountsForPost(ctx context.Context, postID, userID uuid.UUID) ([]domain.ReactionCount, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT reaction_type, COUNT(*),
                bool_or(user_id = $2)
         FROM post_reactions
         WHERE post_id = $1
         GROUP BY reaction_type
         ORDER BY reaction_type`,
		postID, userID)
	if err != nil {
		return nil, fmt.Errorf("reaction counts: %w", err)
	}
	defer rows.Close()

	counts := []domain.ReactionCount{}
	for rows.Next() {
		var c domain.ReactionCount
		if err := rows.Scan(&c.Type, &c.Count, &c.UserReacted); err != nil {
			return nil, fmt.Errorf("reaction counts: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reaction counts: %w", err)
	}

	return counts, nil
}
