package poll

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/projecthub/community-backend/internal/domain"
	"github.com/projecthub/community-backend/pkg/ctxutil"
)

// Vote casts or toggles the user's vote on the poll embedded in a post.
//
// Single-choice polls keep at most one vote row per user: inside one
// transaction all of the user's votes are cleared first, and the vote is
// only re-inserted when the cleared set did not already contain the chosen
// option. Voting the same option again is therefore a toggle-off. Multiple
// choice polls toggle each option independently with a guarded insert.
// Votes on a closed poll are rejected with ErrConflict.
func (s *Service) Vote(ctx context.Context, input VoteInput) (domain.VoteOutcome, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return "", err
	}

	p, err := s.polls.GetByPostID(ctx, input.PostID)
	if err != nil {
		return "", fmt.Errorf("get poll: %w", err)
	}

	if input.OptionIndex >= len(p.Options) {
		return "", domain.NewValidationError("option_index", "no such option")
	}
	if p.Closed(s.now()) {
		return "", fmt.Errorf("poll is closed: %w", domain.ErrConflict)
	}

	var outcome domain.VoteOutcome

	if p.IsMultipleChoice {
		inserted, err := s.polls.AddVote(ctx, p.ID, userID, input.OptionIndex)
		if err != nil {
			return "", fmt.Errorf("add vote: %w", err)
		}
		if inserted {
			outcome = domain.VoteRecorded
		} else {
			if err := s.polls.RemoveVote(ctx, p.ID, userID, input.OptionIndex); err != nil {
				return "", fmt.Errorf("remove vote: %w", err)
			}
			outcome = domain.VoteRemoved
		}
	} else {
		err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			cleared, err := s.polls.ClearVotes(txCtx, p.ID, userID)
			if err != nil {
				return fmt.Errorf("clear votes: %w", err)
			}
			if slices.Contains(cleared, input.OptionIndex) {
				outcome = domain.VoteRemoved
				return nil
			}
			if _, err := s.polls.AddVote(txCtx, p.ID, userID, input.OptionIndex); err != nil {
				return fmt.Errorf("add vote: %w", err)
			}
			outcome = domain.VoteRecorded
			return nil
		})
		if err != nil {
			return "", err
		}
	}

	s.log.InfoContext(ctx, "poll vote",
		slog.String("poll_id", p.ID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("option_index", input.OptionIndex),
		slog.String("outcome", string(outcome)),
	)

	return outcome, nil
}
