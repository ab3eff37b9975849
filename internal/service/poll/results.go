package poll

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/projecthub/community-backend/internal/domain"
	"github.com/projecthub/community-backend/pkg/ctxutil"
)

// Results returns the poll on a post with per-option tallies and the
// requester's own vote set.
func (s *Service) Results(ctx context.Context, postID uuid.UUID) (*domain.PollDetail, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if postID == uuid.Nil {
		return nil, domain.NewValidationError("post_id", "required")
	}

	p, err := s.polls.GetByPostID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("get poll: %w", err)
	}

	detail := &domain.PollDetail{Poll: *p}

	detail.VoteCounts, err = s.polls.VoteCounts(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("vote counts: %w", err)
	}

	detail.UserVotes, err = s.polls.UserVotes(ctx, p.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("user votes: %w", err)
	}

	return detail, nil
}
