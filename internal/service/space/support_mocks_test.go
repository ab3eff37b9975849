package space

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/projecthub/community-backend/internal/domain"
)

var (
	_ postLister    = &postListerMock{}
	_ analyticsRepo = &analyticsRepoMock{}
	_ txManager     = &txManagerMock{}
)

type postListerMock struct {
	ListRecentFunc func(ctx context.Context, spaceID uuid.UUID, limit int) ([]domain.PostSummary, error)
}

func (mock *postListerMock) ListRecent(ctx context.Context, spaceID uuid.UUID, limit int) ([]domain.PostSummary, error) {
	if mock.ListRecentFunc == nil {
		panic("postListerMock.ListRecentFunc: method is nil but postLister.ListRecent was just called")
	}
	return mock.ListRecentFunc(ctx, spaceID, limit)
}

type analyticsRepoMock struct {
	UpsertDailyFunc func(ctx context.Context, spaceID uuid.UUID, date time.Time, deltas domain.AnalyticsDeltas) error
	GetRangeFunc    func(ctx context.Context, spaceID uuid.UUID, from *time.Time) (*domain.AnalyticsRange, error)

	calls struct {
		UpsertDaily []struct {
			SpaceID uuid.UUID
			Date    time.Time
			Deltas  domain.AnalyticsDeltas
		}
		GetRange []struct {
			SpaceID uuid.UUID
			From    *time.Time
		}
	}
	mu sync.RWMutex
}

func (mock *analyticsRepoMock) UpsertDaily(ctx context.Context, spaceID uuid.UUID, date time.Time, deltas domain.AnalyticsDeltas) error {
	if mock.UpsertDailyFunc == nil {
		panic("analyticsRepoMock.UpsertDailyFunc: method is nil but analyticsRepo.UpsertDaily was just called")
	}
	mock.mu.Lock()
	mock.calls.UpsertDaily = append(mock.calls.UpsertDaily, struct {
		SpaceID uuid.UUID
		Date    time.Time
		Deltas  domain.AnalyticsDeltas
	}{spaceID, date, deltas})
	mock.mu.Unlock()
	return mock.UpsertDailyFunc(ctx, spaceID, date, deltas)
}

func (mock *analyticsRepoMock) UpsertDailyCalls() []struct {
	SpaceID uuid.UUID
	Date    time.Time
	Deltas  domain.AnalyticsDeltas
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.UpsertDaily
}

func (mock *analyticsRepoMock) GetRange(ctx context.Context, spaceID uuid.UUID, from *time.Time) (*domain.AnalyticsRange, error) {
	if mock.GetRangeFunc == nil {
		panic("analyticsRepoMock.GetRangeFunc: method is nil but analyticsRepo.GetRange was just called")
	}
	mock.mu.Lock()
	mock.calls.GetRange = append(mock.calls.GetRange, struct {
		SpaceID uuid.UUID
		From    *time.Time
	}{spaceID, from})
	mock.mu.Unlock()
	return mock.GetRangeFunc(ctx, spaceID, from)
}

func (mock *analyticsRepoMock) GetRangeCalls() []struct {
	SpaceID uuid.UUID
	From    *time.Time
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.GetRange
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}
