package space

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/projecthub/community-backend/internal/domain"
	"github.com/projecthub/community-backend/pkg/ctxutil"
)

// JoinSpace adds the caller to a space with role member and bumps the
// member counter. Joining twice returns domain.ErrAlreadyExists.
func (s *Service) JoinSpace(ctx context.Context, spaceID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if spaceID == uuid.Nil {
		return domain.NewValidationError("space_id", "required")
	}

	if _, err := s.spaces.GetByID(ctx, spaceID); err != nil {
		return fmt.Errorf("get space: %w", err)
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// The (space_id, user_id) primary key turns a duplicate join into
		// ErrAlreadyExists without a racy pre-check.
		if err := s.spaces.AddMember(txCtx, spaceID, userID, domain.RoleMember); err != nil {
			return fmt.Errorf("add member: %w", err)
		}

		if err := s.spaces.AdjustMemberCount(txCtx, spaceID, 1); err != nil {
			return fmt.Errorf("adjust member count: %w", err)
		}

		if err := s.analytics.UpsertDaily(txCtx, spaceID, s.now(), domain.AnalyticsDeltas{NewMembers: 1}); err != nil {
			return fmt.Errorf("analytics upsert: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "space joined",
		slog.String("space_id", spaceID.String()),
		slog.String("user_id", userID.String()),
	)

	return nil
}

// LeaveSpace removes the caller's membership and decrements the member
// counter. The sole admin of a space cannot leave: admin role must be
// handed over (or the space deleted) first.
func (s *Service) LeaveSpace(ctx context.Context, spaceID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if spaceID == uuid.Nil {
		return domain.NewValidationError("space_id", "required")
	}

	member, err := s.spaces.GetMember(ctx, spaceID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("not a member of this space: %w", domain.ErrConflict)
		}
		return fmt.Errorf("get membership: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if member.Role == domain.RoleAdmin {
			admins, err := s.spaces.CountAdmins(txCtx, spaceID)
			if err != nil {
				return fmt.Errorf("count admins: %w", err)
			}
			if admins <= 1 {
				return fmt.Errorf("cannot leave as the last admin: %w", domain.ErrConflict)
			}
		}

		if err := s.spaces.RemoveMember(txCtx, spaceID, userID); err != nil {
			return fmt.Errorf("remove member: %w", err)
		}

		if err := s.spaces.AdjustMemberCount(txCtx, spaceID, -1); err != nil {
			return fmt.Errorf("adjust member count: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "space left",
		slog.String("space_id", spaceID.String()),
		slog.String("user_id", userID.String()),
	)

	return nil
}
