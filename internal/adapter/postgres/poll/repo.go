// Package poll implements the poll engine repository using PostgreSQL.
// It owns poll definitions and per-user vote rows. Vote mutation primitives
// are written so the service layer can compose race-free toggles: AddVote is
// an insert guarded by the (poll_id, user_id, option_index) uniqueness
// constraint, and ClearVotes reports exactly which options it removed.
package poll

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/projecthub/community-backend/internal/adapter/postgres"
	"github.com/projecthub/community-backend/internal/domain"
)

// Repo provides poll persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new poll repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const pollColumns = `
    id, post_id, question, options, closes_at, is_multiple_choice, is_anonymous, created_at`

const insertPollSQL = `
INSERT INTO post_polls (post_id, question, options, closes_at, is_multiple_choice, is_anonymous)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING` + pollColumns

// Create inserts a poll for a post. At most one poll per post is allowed;
// a second insert returns domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p *domain.Poll) (*domain.Poll, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	options, err := json.Marshal(p.Options)
	if err != nil {
		return nil, fmt.Errorf("encode poll options: %w", err)
	}

	created, err := scanPoll(q.QueryRow(ctx, insertPollSQL,
		p.PostID, p.Question, options, p.ClosesAt, p.IsMultipleChoice, p.IsAnonymous,
	))
	if err != nil {
		return nil, postgres.MapError(err, "poll", p.PostID)
	}

	return created, nil
}

// GetByPostID returns the poll attached to a post.
// Returns domain.ErrNotFound if the post has no poll.
func (r *Repo) GetByPostID(ctx context.Context, postID uuid.UUID) (*domain.Poll, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPoll(q.QueryRow(ctx,
		`SELECT`+pollColumns+` FROM post_polls WHERE post_id = $1`, postID))
	if err != nil {
		return nil, postgres.MapError(err, "poll", postID)
	}

	return p, nil
}

// ---------------------------------------------------------------------------
// Votes
// ---------------------------------------------------------------------------

// ClearVotes deletes all of a user's votes on a poll and returns the option
// indices that were removed. Empty slice means the user had no votes.
func (r *Repo) ClearVotes(ctx context.Context, pollID, userID uuid.UUID) ([]int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`DELETE FROM poll_votes WHERE poll_id = $1 AND user_id = $2 RETURNING option_index`,
		pollID, userID)
	if err != nil {
		return nil, fmt.Errorf("clear poll votes: %w", err)
	}
	defer rows.Close()

	cleared := []int{}
	for rows.Next() {
		var idx int
		if err := rows.Scan(&idx); err != nil {
			return nil, fmt.Errorf("clear poll votes: %w", err)
		}
		cleared = append(cleared, idx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("clear poll votes: %w", err)
	}

	return cleared, nil
}

// AddVote inserts a vote row if absent. Returns true when a row was inserted,
// false when the (poll, user, option) vote already existed. The uniqueness
// constraint is the arbiter, so concurrent identical requests cannot
// duplicate-insert.
func (r *Repo) AddVote(ctx context.Context, pollID, userID uuid.UUID, optionIndex int) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`INSERT INTO poll_votes (poll_id, user_id, option_index) VALUES ($1, $2, $3)
         ON CONFLICT (poll_id, user_id, option_index) DO NOTHING`,
		pollID, userID, optionIndex)
	if err != nil {
		return false, postgres.MapError(err, "poll vote", pollID)
	}

	return tag.RowsAffected() == 1, nil
}

// RemoveVote deletes a single vote row. Missing rows are not an error: under
// a concurrent toggle the other request may have removed it first.
func (r *Repo) RemoveVote(ctx context.Context, pollID, userID uuid.UUID, optionIndex int) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`DELETE FROM poll_votes WHERE poll_id = $1 AND user_id = $2 AND option_index = $3`,
		pollID, userID, optionIndex)
	if err != nil {
		return postgres.MapError(err, "poll vote", pollID)
	}

	return nil
}

// VoteCounts returns vote tallies grouped by option index, ascending.
func (r *Repo) VoteCounts(ctx context.Context, pollID uuid.UUID) ([]domain.PollVoteCount, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT option_index, COUNT(*) FROM poll_votes WHERE poll_id = $1
         GROUP BY option_index ORDER BY option_index`, pollID)
	if err != nil {
		return nil, fmt.Errorf("poll vote counts: %w", err)
	}
	defer rows.Close()

	counts := []domain.PollVoteCount{}
	for rows.Next() {
		var c domain.PollVoteCount
		if err := rows.Scan(&c.OptionIndex, &c.Count); err != nil {
			return nil, fmt.Errorf("poll vote counts: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("poll vote counts: %w", err)
	}

	return counts, nil
}

// UserVotes returns the option indices a user has voted for, ascending.
func (r *Repo) UserVotes(ctx context.Context, pollID, userID uuid.UUID) ([]int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT option_index FROM poll_votes WHERE poll_id = $1 AND user_id = $2
         ORDER BY option_index`, pollID, userID)
	if err != nil {
		return nil, fmt.Errorf("user poll votes: %w", err)
	}
	defer rows.Close()

	votes := []int{}
	for rows.Next() {
		var idx int
		if err := rows.Scan(&idx); err != nil {
			return nil, fmt.Errorf("user poll votes: %w", err)
		}
		votes = append(votes, idx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("user poll votes: %w", err)
	}

	return votes, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanPoll(row pgx.Row) (*domain.Poll, error) {
	var (
		p       domain.Poll
		options []byte
	)

	err := row.Scan(
		&p.ID, &p.PostID, &p.Question, &options, &p.ClosesAt,
		&p.IsMultipleChoice, &p.IsAnonymous, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(options, &p.Options); err != nil {
		return nil, fmt.Errorf("decode poll options: %w", err)
	}

	return &p, nil
}
