package post

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/projecthub/community-backend/internal/domain"
	"github.com/projecthub/community-backend/pkg/ctxutil"
)

// Bookmark toggles or annotates the user's bookmark on a post. Calling it
// with notes on an existing bookmark updates the notes instead of removing
// the bookmark; without notes it behaves as a plain toggle. Returns
// "added", "updated", or "removed".
func (s *Service) Bookmark(ctx context.Context, input BookmarkInput) (string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	if input.PostID == uuid.Nil {
		return "", domain.NewValidationError("post_id", "required")
	}

	if _, err := s.posts.GetByID(ctx, input.PostID); err != nil {
		return "", fmt.Errorf("get post: %w", err)
	}

	outcome, err := s.bookmarks.Set(ctx, input.PostID, userID, input.Notes)
	if err != nil {
		return "", fmt.Errorf("set bookmark: %w", err)
	}

	s.log.InfoContext(ctx, "bookmark changed",
		slog.String("post_id", input.PostID.String()),
		slog.String("user_id", userID.String()),
		slog.String("action", string(outcome)),
	)

	return string(outcome), nil
}
