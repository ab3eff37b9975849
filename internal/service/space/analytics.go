package space

import (
	"context"
	"fmt"
	"time"

	"github.com/projecthub/community-backend/internal/domain"
	"github.com/projecthub/community-backend/pkg/ctxutil"
)

// GetAnalytics returns the daily counter series for a space over a period
// plus column-wise totals. Only members may view analytics. Period
// shortcuts resolve to a from-boundary here; the aggregator itself only
// understands date ranges.
func (s *Service) GetAnalytics(ctx context.Context, input AnalyticsInput) (*domain.AnalyticsRange, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.spaces.GetMember(ctx, input.SpaceID, userID); err != nil {
		return nil, fmt.Errorf("only members can view space analytics: %w", domain.ErrForbidden)
	}

	var from *time.Time
	switch input.Period {
	case domain.Period30Days:
		t := s.now().AddDate(0, 0, -30)
		from = &t
	case domain.PeriodAll:
		from = nil
	default: // 7days and empty both mean the last week
		t := s.now().AddDate(0, 0, -7)
		from = &t
	}

	rng, err := s.analytics.GetRange(ctx, input.SpaceID, from)
	if err != nil {
		return nil, fmt.Errorf("analytics range: %w", err)
	}

	return rng, nil
}
