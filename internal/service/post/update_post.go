package post

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/projecthub/community-backend/internal/domain"
	"github.com/projecthub/community-backend/pkg/ctxutil"
)

// UpdatePost applies a partial update to a post. The author may edit their
// own post; space admins and moderators may edit any post. Pinning and
// unpinning is a moderator-only change regardless of authorship.
func (s *Service) UpdatePost(ctx context.Context, input UpdatePostInput) (*domain.Post, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.posts.GetByID(ctx, input.PostID)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}

	moderator, err := s.canModerate(ctx, existing.SpaceID, userID)
	if err != nil {
		return nil, fmt.Errorf("check moderation rights: %w", err)
	}

	if existing.UserID != userID && !moderator {
		return nil, fmt.Errorf("not authorized to edit this post: %w", domain.ErrForbidden)
	}
	if input.IsPinned != nil && !moderator {
		return nil, fmt.Errorf("only space admins or moderators can pin posts: %w", domain.ErrForbidden)
	}

	var updated *domain.Post
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if input.IsPinned != nil && *input.IsPinned != existing.IsPinned {
			action := domain.ModActionPostPin
			if !*input.IsPinned {
				action = domain.ModActionPostUnpin
			}
			entry := domain.ModerationLogEntry{
				ModeratorID: userID,
				ActionType:  action,
				TargetType:  "post",
				TargetID:    input.PostID,
				Reason:      defaultModerationReason,
			}
			if err := s.modlog.Record(txCtx, entry); err != nil {
				return fmt.Errorf("record moderation log: %w", err)
			}
		}

		if input.TagsSet {
			if err := s.posts.ReplaceTags(txCtx, input.PostID, input.Tags); err != nil {
				return fmt.Errorf("replace tags: %w", err)
			}
		}

		updated, err = s.posts.Update(txCtx, input.PostID, domain.PostUpdateParams{
			Title:         input.Title,
			Content:       input.Content,
			ContentFormat: input.ContentFormat,
			IsPinned:      input.IsPinned,
		})
		if err != nil {
			return fmt.Errorf("update post: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "post updated",
		slog.String("post_id", input.PostID.String()),
		slog.String("user_id", userID.String()),
	)

	return updated, nil
}
