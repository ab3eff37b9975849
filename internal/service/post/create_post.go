package post

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/projecthub/community-backend/internal/domain"
	"github.com/projecthub/community-backend/pkg/ctxutil"
)

// CreatePost creates a post in a space, with its tags and optional embedded
// poll, and rolls today's analytics, all in one transaction. Only members
// may post; announcements additionally require admin or moderator role.
// The activity-log write happens after commit and is best-effort: its
// failure never fails the request.
func (s *Service) CreatePost(ctx context.Context, input CreatePostInput) (*domain.Post, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	format := input.ContentFormat
	if format == "" {
		format = domain.FormatMarkdown
	}

	var created *domain.Post
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		member, err := s.spaces.GetMember(txCtx, input.SpaceID, userID)
		if err != nil {
			if isNotFound(err) {
				return fmt.Errorf("only space members can create posts: %w", domain.ErrForbidden)
			}
			return fmt.Errorf("get membership: %w", err)
		}

		if input.IsAnnouncement && !member.Role.CanModerate() {
			return fmt.Errorf("only space admins or moderators can create announcements: %w", domain.ErrForbidden)
		}

		created, err = s.posts.Create(txCtx, &domain.Post{
			SpaceID:        input.SpaceID,
			UserID:         userID,
			Title:          strings.TrimSpace(input.Title),
			Content:        input.Content,
			ContentFormat:  format,
			Tags:           input.Tags,
			IsAnnouncement: input.IsAnnouncement,
		})
		if err != nil {
			return fmt.Errorf("create post: %w", err)
		}

		if len(input.Tags) > 0 {
			if err := s.posts.ReplaceTags(txCtx, created.ID, input.Tags); err != nil {
				return fmt.Errorf("write tags: %w", err)
			}
		}

		if input.Poll != nil {
			_, err := s.polls.Create(txCtx, &domain.Poll{
				PostID:           created.ID,
				Question:         strings.TrimSpace(input.Poll.Question),
				Options:          input.Poll.Options,
				ClosesAt:         input.Poll.ClosesAt,
				IsMultipleChoice: input.Poll.IsMultipleChoice,
				IsAnonymous:      input.Poll.IsAnonymous,
			})
			if err != nil {
				return fmt.Errorf("create poll: %w", err)
			}
		}

		if err := s.analytics.UpsertDaily(txCtx, input.SpaceID, s.now(), domain.AnalyticsDeltas{NewPosts: 1}); err != nil {
			return fmt.Errorf("analytics upsert: %w", err)
		}

		if err := s.spaces.IncrementPostCount(txCtx, input.SpaceID); err != nil {
			return fmt.Errorf("increment post count: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.activity.Record(ctx, domain.ActivityRecord{
		UserID:     userID,
		ActionType: domain.ActivityCreatePost,
		TargetType: "post",
		TargetID:   created.ID,
	}); err != nil {
		s.log.WarnContext(ctx, "activity log write failed",
			slog.String("post_id", created.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "post created",
		slog.String("post_id", created.ID.String()),
		slog.String("space_id", input.SpaceID.String()),
		slog.String("user_id", userID.String()),
	)

	return created, nil
}
