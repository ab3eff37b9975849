package space

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/projecthub/community-backend/internal/domain"
	"github.com/projecthub/community-backend/pkg/ctxutil"
)

// CreateSpace creates a space and makes the creator its first admin member,
// in one transaction. The space is scoped to the caller's company.
func (s *Service) CreateSpace(ctx context.Context, input CreateSpaceInput) (*domain.Space, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.ParentSpaceID != nil {
		parent, err := s.spaces.GetByID(ctx, *input.ParentSpaceID)
		if err != nil {
			return nil, fmt.Errorf("get parent space: %w", err)
		}
		if parent.CompanyID != identity.CompanyID {
			return nil, fmt.Errorf("parent space: %w", domain.ErrForbidden)
		}
	}

	var space *domain.Space
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		space, createErr = s.spaces.Create(txCtx, &domain.Space{
			CompanyID:     identity.CompanyID,
			Name:          strings.TrimSpace(input.Name),
			Description:   trimOrNil(input.Description),
			ParentSpaceID: input.ParentSpaceID,
			IconURL:       input.IconURL,
			IsPublic:      input.IsPublic,
			AccessRules:   input.AccessRules,
			CreatedBy:     identity.UserID,
		})
		if createErr != nil {
			return fmt.Errorf("create space: %w", createErr)
		}

		if err := s.spaces.AddMember(txCtx, space.ID, identity.UserID, domain.RoleAdmin); err != nil {
			return fmt.Errorf("add creator membership: %w", err)
		}

		if err := s.spaces.AdjustMemberCount(txCtx, space.ID, 1); err != nil {
			return fmt.Errorf("adjust member count: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	space.MemberCount = 1

	s.log.InfoContext(ctx, "space created",
		slog.String("space_id", space.ID.String()),
		slog.String("user_id", identity.UserID.String()),
		slog.String("name", space.Name),
	)

	return space, nil
}
