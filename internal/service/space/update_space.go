package space

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/projecthub/community-backend/internal/domain"
	"github.com/projecthub/community-backend/pkg/ctxutil"
)

// UpdateSpace applies a partial update to a space. Only space admins may
// update. A parent change that would place the space under one of its own
// descendants (or under itself) is rejected: the hierarchy must stay a forest.
func (s *Service) UpdateSpace(ctx context.Context, input UpdateSpaceInput) (*domain.Space, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	member, err := s.spaces.GetMember(ctx, input.SpaceID, userID)
	if err != nil {
		return nil, fmt.Errorf("only space admins can update space details: %w", domain.ErrForbidden)
	}
	if member.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("only space admins can update space details: %w", domain.ErrForbidden)
	}

	if input.ParentSpaceID != nil && !input.ClearParent {
		if *input.ParentSpaceID == input.SpaceID {
			return nil, domain.NewValidationError("parent_space_id", "space cannot be its own parent")
		}
		cyclic, err := s.spaces.IsDescendant(ctx, *input.ParentSpaceID, input.SpaceID)
		if err != nil {
			return nil, fmt.Errorf("check ancestry: %w", err)
		}
		if cyclic {
			return nil, fmt.Errorf("parent change would create a cycle: %w", domain.ErrConflict)
		}
	}

	updated, err := s.spaces.Update(ctx, input.SpaceID, domain.SpaceUpdateParams{
		Name:          input.Name,
		Description:   input.Description,
		ParentSpaceID: input.ParentSpaceID,
		ClearParent:   input.ClearParent,
		IconURL:       input.IconURL,
		IsPublic:      input.IsPublic,
		AccessRules:   input.AccessRules,
	})
	if err != nil {
		return nil, fmt.Errorf("update space: %w", err)
	}

	s.log.InfoContext(ctx, "space updated",
		slog.String("space_id", input.SpaceID.String()),
		slog.String("user_id", userID.String()),
	)

	return updated, nil
}
