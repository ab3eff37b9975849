// Package activity implements the best-effort activity log using PostgreSQL.
// Callers invoke Record after their primary transaction commits; a failure
// here is logged and swallowed, never surfaced to the request.
package activity

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/projecthub/community-backend/internal/adapter/postgres"
	"github.com/projecthub/community-backend/internal/domain"
)

// Repo provides activity log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new activity log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Record appends an activity event.
func (r *Repo) Record(ctx context.Context, rec domain.ActivityRecord) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO activity_logs (user_id, action_type, target_type, target_id)
         VALUES ($1, $2, $3, $4)`,
		rec.UserID, rec.ActionType, rec.TargetType, rec.TargetID)
	if err != nil {
		return postgres.MapError(err, "activity log", rec.TargetID)
	}

	return nil
}
