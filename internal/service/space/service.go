// Package space implements the space registry: the space hierarchy,
// membership and roles, and the per-space analytics read path.
package space

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/projecthub/community-backend/internal/domain"
)

type spaceRepo interface {
	Create(ctx context.Context, s *domain.Space) (*domain.Space, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Space, error)
	List(ctx context.Context, companyID uuid.UUID, parentID *uuid.UUID, rootsOnly bool, search string) ([]*domain.Space, error)
	ListChildren(ctx context.Context, id uuid.UUID) ([]domain.SpaceChild, error)
	HasChildren(ctx context.Context, id uuid.UUID) (bool, error)
	IsDescendant(ctx context.Context, candidate, spaceID uuid.UUID) (bool, error)
	Update(ctx context.Context, id uuid.UUID, params domain.SpaceUpdateParams) (*domain.Space, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AdjustMemberCount(ctx context.Context, id uuid.UUID, delta int) error

	GetMember(ctx context.Context, spaceID, userID uuid.UUID) (*domain.SpaceMember, error)
	AddMember(ctx context.Context, spaceID, userID uuid.UUID, role domain.SpaceRole) error
	RemoveMember(ctx context.Context, spaceID, userID uuid.UUID) error
	CountAdmins(ctx context.Context, spaceID uuid.UUID) (int, error)
	CountMembers(ctx context.Context, spaceID uuid.UUID) (int, error)
}

type postLister interface {
	ListRecent(ctx context.Context, spaceID uuid.UUID, limit int) ([]domain.PostSummary, error)
}

type analyticsRepo interface {
	UpsertDaily(ctx context.Context, spaceID uuid.UUID, date time.Time, deltas domain.AnalyticsDeltas) error
	GetRange(ctx context.Context, spaceID uuid.UUID, from *time.Time) (*domain.AnalyticsRange, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// recentPostLimit is how many posts the space detail view attaches.
const recentPostLimit = 5

// Service provides space registry operations.
type Service struct {
	spaces    spaceRepo
	posts     postLister
	analytics analyticsRepo
	tx        txManager
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new Space service.
func NewService(
	log *slog.Logger,
	spaces spaceRepo,
	posts postLister,
	analytics analyticsRepo,
	tx txManager,
) *Service {
	return &Service{
		spaces:    spaces,
		posts:     posts,
		analytics: analytics,
		tx:        tx,
		log:       log.With("service", "space"),
		now:       time.Now,
	}
}
