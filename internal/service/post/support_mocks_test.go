package post

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/projecthub/community-backend/internal/adapter/postgres/bookmark"
	"github.com/projecthub/community-backend/internal/domain"
)

var (
	_ membershipReader = &membershipReaderMock{}
	_ pollRepo         = &pollRepoMock{}
	_ reactionRepo     = &reactionRepoMock{}
	_ bookmarkRepo     = &bookmarkRepoMock{}
	_ modLog           = &modLogMock{}
	_ analyticsRepo    = &analyticsRepoMock{}
	_ activityLog      = &activityLogMock{}
	_ txManager        = &txManagerMock{}
)

type membershipReaderMock struct {
	GetMemberFunc          func(ctx context.Context, spaceID, userID uuid.UUID) (*domain.SpaceMember, error)
	IncrementPostCountFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		IncrementPostCount []struct{ ID uuid.UUID }
	}
	mu sync.RWMutex
}

func (mock *membershipReaderMock) GetMember(ctx context.Context, spaceID, userID uuid.UUID) (*domain.SpaceMember, error) {
	if mock.GetMemberFunc == nil {
		panic("membershipReaderMock.GetMemberFunc: method is nil but membershipReader.GetMember was just called")
	}
	return mock.GetMemberFunc(ctx, spaceID, userID)
}

func (mock *membershipReaderMock) IncrementPostCount(ctx context.Context, id uuid.UUID) error {
	if mock.IncrementPostCountFunc == nil {
		panic("membershipReaderMock.IncrementPostCountFunc: method is nil but membershipReader.IncrementPostCount was just called")
	}
	mock.mu.Lock()
	mock.calls.IncrementPostCount = append(mock.calls.IncrementPostCount, struct{ ID uuid.UUID }{id})
	mock.mu.Unlock()
	return mock.IncrementPostCountFunc(ctx, id)
}

func (mock *membershipReaderMock) IncrementPostCountCalls() []struct{ ID uuid.UUID } {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.IncrementPostCount
}

type pollRepoMock struct {
	CreateFunc      func(ctx context.Context, p *domain.Poll) (*domain.Poll, error)
	GetByPostIDFunc func(ctx context.Context, postID uuid.UUID) (*domain.Poll, error)
	VoteCountsFunc  func(ctx context.Context, pollID uuid.UUID) ([]domain.PollVoteCount, error)
	UserVotesFunc   func(ctx context.Context, pollID, userID uuid.UUID) ([]int, error)

	calls struct {
		Create []struct{ Poll *domain.Poll }
	}
	mu sync.RWMutex
}

func (mock *pollRepoMock) Create(ctx context.Context, p *domain.Poll) (*domain.Poll, error) {
	if mock.CreateFunc == nil {
		panic("pollRepoMock.CreateFunc: method is nil but pollRepo.Create was just called")
	}
	mock.mu.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Poll *domain.Poll }{p})
	mock.mu.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *pollRepoMock) CreateCalls() []struct{ Poll *domain.Poll } {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Create
}

func (mock *pollRepoMock) GetByPostID(ctx context.Context, postID uuid.UUID) (*domain.Poll, error) {
	if mock.GetByPostIDFunc == nil {
		panic("pollRepoMock.GetByPostIDFunc: method is nil but pollRepo.GetByPostID was just called")
	}
	return mock.GetByPostIDFunc(ctx, postID)
}

func (mock *pollRepoMock) VoteCounts(ctx context.Context, pollID uuid.UUID) ([]domain.PollVoteCount, error) {
	if mock.VoteCountsFunc == nil {
		panic("pollRepoMock.VoteCountsFunc: method is nil but pollRepo.VoteCounts was just called")
	}
	return mock.VoteCountsFunc(ctx, pollID)
}

func (mock *pollRepoMock) UserVotes(ctx context.Context, pollID, userID uuid.UUID) ([]int, error) {
	if mock.UserVotesFunc == nil {
		panic("pollRepoMock.UserVotesFunc: method is nil but pollRepo.UserVotes was just called")
	}
	return mock.UserVotesFunc(ctx, pollID, userID)
}

type reactionRepoMock struct {
	ToggleFunc        func(ctx context.Context, postID, userID uuid.UUID, reactionType string) (bool, error)
	CountsForPostFunc func(ctx context.Context, postID, userID uuid.UUID) ([]domain.ReactionCount, error)
}

func (mock *reactionRepoMock) Toggle(ctx context.Context, postID, userID uuid.UUID, reactionType string) (bool, error) {
	if mock.ToggleFunc == nil {
		panic("reactionRepoMock.ToggleFunc: method is nil but reactionRepo.Toggle was just called")
	}
	return mock.ToggleFunc(ctx, postID, userID, reactionType)
}

func (mock *reactionRepoMock) CountsForPost(ctx context.Context, postID, userID uuid.UUID) ([]domain.ReactionCount, error) {
	if mock.CountsForPostFunc == nil {
		panic("reactionRepoMock.CountsForPostFunc: method is nil but reactionRepo.CountsForPost was just called")
	}
	return mock.CountsForPostFunc(ctx, postID, userID)
}

type bookmarkRepoMock struct {
	SetFunc    func(ctx context.Context, postID, userID uuid.UUID, notes *string) (bookmark.Outcome, error)
	ExistsFunc func(ctx context.Context, postID, userID uuid.UUID) (bool, error)
}

func (mock *bookmarkRepoMock) Set(ctx context.Context, postID, userID uuid.UUID, notes *string) (bookmark.Outcome, error) {
	if mock.SetFunc == nil {
		panic("bookmarkRepoMock.SetFunc: method is nil but bookmarkRepo.Set was just called")
	}
	return mock.SetFunc(ctx, postID, userID, notes)
}

func (mock *bookmarkRepoMock) Exists(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("bookmarkRepoMock.ExistsFunc: method is nil but bookmarkRepo.Exists was just called")
	}
	return mock.ExistsFunc(ctx, postID, userID)
}

type modLogMock struct {
	RecordFunc func(ctx context.Context, e domain.ModerationLogEntry) error

	calls struct {
		Record []struct{ Entry domain.ModerationLogEntry }
	}
	mu sync.RWMutex
}

func (mock *modLogMock) Record(ctx context.Context, e domain.ModerationLogEntry) error {
	if mock.RecordFunc == nil {
		panic("modLogMock.RecordFunc: method is nil but modLog.Record was just called")
	}
	mock.mu.Lock()
	mock.calls.Record = append(mock.calls.Record, struct{ Entry domain.ModerationLogEntry }{e})
	mock.mu.Unlock()
	return mock.RecordFunc(ctx, e)
}

func (mock *modLogMock) RecordCalls() []struct{ Entry domain.ModerationLogEntry } {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Record
}

type analyticsRepoMock struct {
	UpsertDailyFunc func(ctx context.Context, spaceID uuid.UUID, date time.Time, deltas domain.AnalyticsDeltas) error

	calls struct {
		UpsertDaily []struct {
			SpaceID uuid.UUID
			Deltas  domain.AnalyticsDeltas
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
		Deltas  domain.AnalyticsDeltas
	}{spaceID, deltas})
	mock.mu.Unlock()
	return mock.UpsertDailyFunc(ctx, spaceID, date, deltas)
}

func (mock *analyticsRepoMock) UpsertDailyCalls() []struct {
	SpaceID uuid.UUID
	Deltas  domain.AnalyticsDeltas
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.UpsertDaily
}

type activityLogMock struct {
	RecordFunc func(ctx context.Context, rec domain.ActivityRecord) error

	calls struct {
		Record []struct{ Rec domain.ActivityRecord }
	}
	mu sync.RWMutex
}

func (mock *activityLogMock) Record(ctx context.Context, rec domain.ActivityRecord) error {
	if mock.RecordFunc == nil {
		panic("activityLogMock.RecordFunc: method is nil but activityLog.Record was just called")
	}
	mock.mu.Lock()
	mock.calls.Record = append(mock.calls.Record, struct{ Rec domain.ActivityRecord }{rec})
	mock.mu.Unlock()
	return mock.RecordFunc(ctx, rec)
}

func (mock *activityLogMock) RecordCalls() []struct{ Rec domain.ActivityRecord } {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Record
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
