// Package poll implements poll voting and results on top of the embedded
// post polls.
package poll

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/projecthub/community-backend/internal/domain"
)

type pollRepo interface {
	GetByPostID(ctx context.Context, postID uuid.UUID) (*domain.Poll, error)
	ClearVotes(ctx context.Context, pollID, userID uuid.UUID) ([]int, error)
	AddVote(ctx context.Context, pollID, userID uuid.UUID, optionIndex int) (bool, error)
	RemoveVote(ctx context.Context, pollID, userID uuid.UUID, optionIndex int) error
	VoteCounts(ctx context.Context, pollID uuid.UUID) ([]domain.PollVoteCount, error)
	UserVotes(ctx context.Context, pollID, userID uuid.UUID) ([]int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides poll operations.
type Service struct {
	polls pollRepo
	tx    txManager
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates a new Poll service.
func NewService(log *slog.Logger, polls pollRepo, tx txManager) *Service {
	return &Service{
		polls: polls,
		tx:    tx,
		log:   log.With("service", "poll"),
		now:   time.Now,
	}
}
