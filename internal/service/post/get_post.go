package post

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/projecthub/community-backend/internal/domain"
	"github.com/projecthub/community-backend/pkg/ctxutil"
)

// GetPost returns the full single-post view: the post with author info,
// reaction counts with the requester's flags, the requester's bookmark
// state, and the poll (tallies plus the requester's own votes) if present.
// Every fetch increments the view counter; there is no per-user dedup.
func (s *Service) GetPost(ctx context.Context, postID uuid.UUID) (*domain.PostDetail, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if postID == uuid.Nil {
		return nil, domain.NewValidationError("post_id", "required")
	}

	if err := s.posts.IncrementViewCount(ctx, postID); err != nil {
		return nil, fmt.Errorf("increment view count: %w", err)
	}

	detail, err := s.posts.GetWithAuthor(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}

	detail.Reactions, err = s.reactions.CountsForPost(ctx, postID, userID)
	if err != nil {
		return nil, fmt.Errorf("reaction counts: %w", err)
	}

	detail.IsBookmarked, err = s.bookmarks.Exists(ctx, postID, userID)
	if err != nil {
		return nil, fmt.Errorf("check bookmark: %w", err)
	}

	poll, err := s.polls.GetByPostID(ctx, postID)
	switch {
	case err == nil:
		pd := &domain.PollDetail{Poll: *poll}
		pd.VoteCounts, err = s.polls.VoteCounts(ctx, poll.ID)
		if err != nil {
			return nil, fmt.Errorf("poll vote counts: %w", err)
		}
		pd.UserVotes, err = s.polls.UserVotes(ctx, poll.ID, userID)
		if err != nil {
			return nil, fmt.Errorf("user poll votes: %w", err)
		}
		detail.Poll = pd
	case isNotFound(err):
		// no poll on this post
	default:
		return nil, fmt.Errorf("get poll: %w", err)
	}

	// Daily view roll-up is best-effort; the read must not fail on it.
	if err := s.analytics.UpsertDaily(ctx, detail.SpaceID, s.now(), domain.AnalyticsDeltas{Views: 1}); err != nil {
		s.log.WarnContext(ctx, "analytics view roll-up failed",
			slog.String("post_id", postID.String()),
			slog.String("error", err.Error()),
		)
	}

	return detail, nil
}
