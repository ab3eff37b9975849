// Package post implements the post store: post lifecycle, tags, view
// counting, and the reaction/bookmark toggles on posts.
package post

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/projecthub/community-backend/internal/adapter/postgres/bookmark"
	postrepo "github.com/projecthub/community-backend/internal/adapter/postgres/post"
	"github.com/projecthub/community-backend/internal/domain"
)

type postRepo interface {
	Create(ctx context.Context, p *domain.Post) (*domain.Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	GetWithAuthor(ctx context.Context, id uuid.UUID) (*domain.PostDetail, error)
	List(ctx context.Context, spaceID uuid.UUID, f postrepo.Filter) ([]domain.PostSummary, int, error)
	ReplaceTags(ctx context.Context, postID uuid.UUID, tags []string) error
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
	Update(ctx context.Context, id uuid.UUID, params domain.PostUpdateParams) (*domain.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type membershipReader interface {
	GetMember(ctx context.Context, spaceID, userID uuid.UUID) (*domain.SpaceMember, error)
	IncrementPostCount(ctx context.Context, id uuid.UUID) error
}

type pollRepo interface {
	Create(ctx context.Context, p *domain.Poll) (*domain.Poll, error)
	GetByPostID(ctx context.Context, postID uuid.UUID) (*domain.Poll, error)
	VoteCounts(ctx context.Context, pollID uuid.UUID) ([]domain.PollVoteCount, error)
	UserVotes(ctx context.Context, pollID, userID uuid.UUID) ([]int, error)
}

type reactionRepo interface {
	Toggle(ctx context.Context, postID, userID uuid.UUID, reactionType string) (bool, error)
	CountsForPost(ctx context.Context, postID, userID uuid.UUID) ([]domain.ReactionCount, error)
}

type bookmarkRepo interface {
	Set(ctx context.Context, postID, userID uuid.UUID, notes *string) (bookmark.Outcome, error)
	Exists(ctx context.Context, postID, userID uuid.UUID) (bool, error)
}

type modLog interface {
	Record(ctx context.Context, e domain.ModerationLogEntry) error
}

type analyticsRepo interface {
	UpsertDaily(ctx context.Context, spaceID uuid.UUID, date time.Time, deltas domain.AnalyticsDeltas) error
}

type activityLog interface {
	Record(ctx context.Context, rec domain.ActivityRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides post store operations.
type Service struct {
	posts     postRepo
	spaces    membershipReader
	polls     pollRepo
	reactions reactionRepo
	bookmarks bookmarkRepo
	modlog    modLog
	analytics analyticsRepo
	activity  activityLog
	tx        txManager
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new Post service.
func NewService(
	log *slog.Logger,
	posts postRepo,
	spaces membershipReader,
	polls pollRepo,
	reactions reactionRepo,
	bookmarks bookmarkRepo,
	modlog modLog,
	analytics analyticsRepo,
	activity activityLog,
	tx txManager,
) *Service {
	return &Service{
		posts:     posts,
		spaces:    spaces,
		polls:     polls,
		reactions: reactions,
		bookmarks: bookmarks,
		modlog:    modlog,
		analytics: analytics,
		activity:  activity,
		tx:        tx,
		log:       log.With("service", "post"),
		now:       time.Now,
	}
}

// canModerate reports whether the user holds admin or moderator role in the
// space. A missing membership is simply "no".
func (s *Service) canModerate(ctx context.Context, spaceID, userID uuid.UUID) (bool, error) {
	member, err := s.spaces.GetMember(ctx, spaceID, userID)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return member.Role.CanModerate(), nil
}
