package space

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/projecthub/community-backend/internal/domain"
	"github.com/projecthub/community-backend/pkg/ctxutil"
)

// GetSpace returns a space with its children, a live member count, and the
// most recent posts attached.
func (s *Service) GetSpace(ctx context.Context, spaceID uuid.UUID) (*domain.SpaceDetail, error) {
	if _, ok := ctxutil.IdentityFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if spaceID == uuid.Nil {
		return nil, domain.NewValidationError("space_id", "required")
	}

	space, err := s.spaces.GetByID(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("get space: %w", err)
	}

	children, err := s.spaces.ListChildren(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}

	// The denormalized counter is a display hint; detail views report the
	// live cardinality.
	memberCount, err := s.spaces.CountMembers(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("count members: %w", err)
	}

	recent, err := s.posts.ListRecent(ctx, spaceID, recentPostLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent posts: %w", err)
	}

	detail := &domain.SpaceDetail{
		Space:       *space,
		Children:    children,
		RecentPosts: recent,
	}
	detail.MemberCount = memberCount

	return detail, nil
}

// ListSpaces returns the spaces of the caller's company, optionally
// restricted to one parent (or to roots) and filtered by a name/description
// search term.
func (s *Service) ListSpaces(ctx context.Context, input ListSpacesInput) ([]*domain.Space, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	spaces, err := s.spaces.List(ctx, identity.CompanyID, input.ParentSpaceID, input.RootsOnly,
		strings.TrimSpace(input.Search))
	if err != nil {
		return nil, fmt.Errorf("list spaces: %w", err)
	}

	return spaces, nil
}
