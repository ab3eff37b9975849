package post

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/projecthub/community-backend/internal/domain"
	"github.com/projecthub/community-backend/pkg/ctxutil"
)

// React toggles the user's reaction of the given type on a post and reports
// whether it was added or removed. The toggle is a single guarded insert or
// delete, so concurrent toggles of the same reaction never double-count.
func (s *Service) React(ctx context.Context, input ReactInput) (string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return "", err
	}

	// Resolve the post first so a missing post yields 404, not a silent
	// foreign-key failure.
	if _, err := s.posts.GetByID(ctx, input.PostID); err != nil {
		return "", fmt.Errorf("get post: %w", err)
	}

	added, err := s.reactions.Toggle(ctx, input.PostID, userID, input.ReactionType)
	if err != nil {
		return "", fmt.Errorf("toggle reaction: %w", err)
	}

	action := "removed"
	if added {
		action = "added"
	}

	s.log.InfoContext(ctx, "reaction toggled",
		slog.String("post_id", input.PostID.String()),
		slog.String("user_id", userID.String()),
		slog.String("reaction_type", input.ReactionType),
		slog.String("action", action),
	)

	return action, nil
}
