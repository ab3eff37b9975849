package space

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/projecthub/community-backend/internal/domain"
	"github.com/projecthub/community-backend/pkg/ctxutil"
)

// DeleteSpace removes a space and everything under it (posts, memberships,
// analytics cascade at the FK level). Only space admins may delete, and a
// space with child spaces cannot be deleted until they are moved or removed.
func (s *Service) DeleteSpace(ctx context.Context, spaceID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if spaceID == uuid.Nil {
		return domain.NewValidationError("space_id", "required")
	}

	member, err := s.spaces.GetMember(ctx, spaceID, userID)
	if err != nil {
		return fmt.Errorf("only space admins can delete spaces: %w", domain.ErrForbidden)
	}
	if member.Role != domain.RoleAdmin {
		return fmt.Errorf("only space admins can delete spaces: %w", domain.ErrForbidden)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		hasChildren, err := s.spaces.HasChildren(txCtx, spaceID)
		if err != nil {
			return fmt.Errorf("check children: %w", err)
		}
		if hasChildren {
			return fmt.Errorf("cannot delete space with child spaces: %w", domain.ErrConflict)
		}

		if err := s.spaces.Delete(txCtx, spaceID); err != nil {
			return fmt.Errorf("delete space: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "space deleted",
		slog.String("space_id", spaceID.String()),
		slog.String("user_id", userID.String()),
	)

	return nil
}
