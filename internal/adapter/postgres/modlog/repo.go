// Package modlog implements the append-only moderation log using PostgreSQL.
// Entries are write-once: there is no update or delete surface, and no
// internal read path — the log exists for external audit reporting.
package modlog

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/projecthub/community-backend/internal/adapter/postgres"
	"github.com/projecthub/community-backend/internal/domain"
)

// Repo provides moderation log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new moderation log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Record appends a moderation log entry.
func (r *Repo) Record(ctx context.Context, e domain.ModerationLogEntry) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO moderation_logs (moderator_id, action_type, target_type, target_id, action_reason)
         VALUES ($1, $2, $3, $4, $5)`,
		e.ModeratorID, e.ActionType, e.TargetType, e.TargetID, e.Reason)
	if err != nil {
		return postgres.MapError(err, "moderation log", e.TargetID)
	}

	return nil
}
