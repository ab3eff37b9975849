package post

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/projecthub/community-backend/internal/domain"
	"github.com/projecthub/community-backend/pkg/ctxutil"
)

const defaultModerationReason = "No reason provided"

// DeletePost removes a post. The author may delete their own post; space
// admins and moderators may delete any post. A moderator deleting someone
// else's post leaves a moderation-log entry in the same transaction, so a
// delete is never recorded without its audit row.
func (s *Service) DeletePost(ctx context.Context, postID uuid.UUID, reason string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if postID == uuid.Nil {
		return domain.NewValidationError("post_id", "required")
	}

	existing, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("get post: %w", err)
	}

	moderator, err := s.canModerate(ctx, existing.SpaceID, userID)
	if err != nil {
		return fmt.Errorf("check moderation rights: %w", err)
	}
	if existing.UserID != userID && !moderator {
		return fmt.Errorf("not authorized to delete this post: %w", domain.ErrForbidden)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if existing.UserID != userID {
			r := strings.TrimSpace(reason)
			if r == "" {
				r = defaultModerationReason
			}
			entry := domain.ModerationLogEntry{
				ModeratorID: userID,
				ActionType:  domain.ModActionPostRemove,
				TargetType:  "post",
				TargetID:    postID,
				Reason:      r,
			}
			if err := s.modlog.Record(txCtx, entry); err != nil {
				return fmt.Errorf("record moderation log: %w", err)
			}
		}

		if err := s.posts.Delete(txCtx, postID); err != nil {
			return fmt.Errorf("delete post: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "post deleted",
		slog.String("post_id", postID.String()),
		slog.String("user_id", userID.String()),
		slog.Bool("moderated", existing.UserID != userID),
	)

	return nil
}
