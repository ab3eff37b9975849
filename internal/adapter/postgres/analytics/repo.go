// Package analytics implements the per-space daily counter roll-up using
// PostgreSQL. Rows are upserted: insert-if-absent for (space, day), else
// increment the named counters in place.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/projecthub/community-backend/internal/adapter/postgres"
	"github.com/projecthub/community-backend/internal/domain"
)

// Repo provides analytics persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new analytics repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const upsertDailySQL = `
INSERT INTO space_analytics (space_id, date, new_posts, new_comments, views, active_users, new_members)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (space_id, date) DO UPDATE SET
    new_posts    = space_analytics.new_posts    + EXCLUDED.new_posts,
    new_comments = space_analytics.new_comments + EXCLUDED.new_comments,
    views        = space_analytics.views        + EXCLUDED.views,
    active_users = space_analytics.active_users + EXCLUDED.active_users,
    new_members  = space_analytics.new_members  + EXCLUDED.new_members`

// UpsertDaily applies counter deltas to the (space, date) row, creating it
// when absent. The single guarded statement makes concurrent upserts safe.
func (r *Repo) UpsertDaily(ctx context.Context, spaceID uuid.UUID, date time.Time, deltas domain.AnalyticsDeltas) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, upsertDailySQL,
		spaceID, date.Format("2006-01-02"),
		deltas.NewPosts, deltas.NewComments, deltas.Views, deltas.ActiveUsers, deltas.NewMembers)
	if err != nil {
		return postgres.MapError(err, "space analytics", spaceID)
	}

	return nil
}

// GetRange returns the day series for a space from the given boundary
// (inclusive; nil = all time) plus column-wise totals. Totals are computed
// from the same scan, so they always equal the sums of the returned rows.
func (r *Repo) GetRange(ctx context.Context, spaceID uuid.UUID, from *time.Time) (*domain.AnalyticsRange, error) {
	query := `
        SELECT space_id, date, new_posts, new_comments, views, active_users, new_members
        FROM space_analytics
        WHERE space_id = $1`
	args := []any{spaceID}

	if from != nil {
		query += ` AND date >= $2`
		args = append(args, from.Format("2006-01-02"))
	}
	query += ` ORDER BY date ASC`

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("analytics range: %w", err)
	}
	defer rows.Close()

	result := &domain.AnalyticsRange{Days: []domain.AnalyticsDaily{}}
	for rows.Next() {
		var d domain.AnalyticsDaily
		if err := rows.Scan(&d.SpaceID, &d.Date, &d.NewPosts, &d.NewComments,
			&d.Views, &d.ActiveUsers, &d.NewMembers); err != nil {
			return nil, fmt.Errorf("analytics range: %w", err)
		}
		result.Days = append(result.Days, d)

		result.Totals.NewPosts += d.NewPosts
		result.Totals.NewComments += d.NewComments
		result.Totals.Views += d.Views
		result.Totals.ActiveUsers += d.ActiveUsers
		result.Totals.NewMembers += d.NewMembers
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("analytics range: %w", err)
	}

	return result, nil
}
