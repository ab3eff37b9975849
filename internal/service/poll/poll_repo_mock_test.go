package poll

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/projecthub/community-backend/internal/domain"
)

var _ pollRepo = &pollRepoMock{}

type pollRepoMock struct {
	GetByPostIDFunc func(ctx context.Context, postID uuid.UUID) (*domain.Poll, error)
	ClearVotesFunc  func(ctx context.Context, pollID, userID uuid.UUID) ([]int, error)
	AddVoteFunc     func(ctx context.Context, pollID, userID uuid.UUID, optionIndex int) (bool, error)
	RemoveVoteFunc  func(ctx context.Context, pollID, userID uuid.UUID, optionIndex int) error
	VoteCountsFunc  func(ctx context.Context, pollID uuid.UUID) ([]domain.PollVoteCount, error)
	UserVotesFunc   func(ctx context.Context, pollID, userID uuid.UUID) ([]int, error)

	calls struct {
		GetByPostID []struct{ PostID uuid.UUID }
		ClearVotes  []struct{ PollID, UserID uuid.UUID }
		AddVote     []struct {
			PollID, UserID uuid.UUID
			OptionIndex    int
		}
		RemoveVote []struct {
			PollID, UserID uuid.UUID
			OptionIndex    int
		}
		VoteCounts []struct{ PollID uuid.UUID }
		UserVotes  []struct{ PollID, UserID uuid.UUID }
	}
	mu sync.RWMutex
}

func (mock *pollRepoMock) GetByPostID(ctx context.Context, postID uuid.UUID) (*domain.Poll, error) {
	if mock.GetByPostIDFunc == nil {
		panic("pollRepoMock.GetByPostIDFunc: method is nil but pollRepo.GetByPostID was just called")
	}
	mock.mu.Lock()
	mock.calls.GetByPostID = append(mock.calls.GetByPostID, struct{ PostID uuid.UUID }{postID})
	mock.mu.Unlock()
	return mock.GetByPostIDFunc(ctx, postID)
}

func (mock *pollRepoMock) ClearVotes(ctx context.Context, pollID, userID uuid.UUID) ([]int, error) {
	if mock.ClearVotesFunc == nil {
		panic("pollRepoMock.ClearVotesFunc: method is nil but pollRepo.ClearVotes was just called")
	}
	mock.mu.Lock()
	mock.calls.ClearVotes = append(mock.calls.ClearVotes, struct{ PollID, UserID uuid.UUID }{pollID, userID})
	mock.mu.Unlock()
	return mock.ClearVotesFunc(ctx, pollID, userID)
}

func (mock *pollRepoMock) ClearVotesCalls() []struct{ PollID, UserID uuid.UUID } {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.ClearVotes
}

func (mock *pollRepoMock) AddVote(ctx context.Context, pollID, userID uuid.UUID, optionIndex int) (bool, error) {
	if mock.AddVoteFunc == nil {
		panic("pollRepoMock.AddVoteFunc: method is nil but pollRepo.AddVote was just called")
	}
	mock.mu.Lock()
	mock.calls.AddVote = append(mock.calls.AddVote, struct {
		PollID, UserID uuid.UUID
		OptionIndex    int
	}{pollID, userID, optionIndex})
	mock.mu.Unlock()
	return mock.AddVoteFunc(ctx, pollID, userID, optionIndex)
}

func (mock *pollRepoMock) AddVoteCalls() []struct {
	PollID, UserID uuid.UUID
	OptionIndex    int
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.AddVote
}

func (mock *pollRepoMock) RemoveVote(ctx context.Context, pollID, userID uuid.UUID, optionIndex int) error {
	if mock.RemoveVoteFunc == nil {
		panic("pollRepoMock.RemoveVoteFunc: method is nil but pollRepo.RemoveVote was just called")
	}
	mock.mu.Lock()
	mock.calls.RemoveVote = append(mock.calls.RemoveVote, struct {
		PollID, UserID uuid.UUID
		OptionIndex    int
	}{pollID, userID, optionIndex})
	mock.mu.Unlock()
	return mock.RemoveVoteFunc(ctx, pollID, userID, optionIndex)
}

func (mock *pollRepoMock) RemoveVoteCalls() []struct {
	PollID, UserID uuid.UUID
	OptionIndex    int
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.RemoveVote
}

func (mock *pollRepoMock) VoteCounts(ctx context.Context, pollID uuid.UUID) ([]domain.PollVoteCount, error) {
	if mock.VoteCountsFunc == nil {
		panic("pollRepoMock.VoteCountsFunc: method is nil but pollRepo.VoteCounts was just called")
	}
	mock.mu.Lock()
	mock.calls.VoteCounts = append(mock.calls.VoteCounts, struct{ PollID uuid.UUID }{pollID})
	mock.mu.Unlock()
	return mock.VoteCountsFunc(ctx, pollID)
}

func (mock *pollRepoMock) UserVotes(ctx context.Context, pollID, userID uuid.UUID) ([]int, error) {
	if mock.UserVotesFunc == nil {
		panic("pollRepoMock.UserVotesFunc: method is nil but pollRepo.UserVotes was just called")
	}
	mock.mu.Lock()
	mock.calls.UserVotes = append(mock.calls.UserVotes, struct{ PollID, UserID uuid.UUID }{pollID, userID})
	mock.mu.Unlock()
	return mock.UserVotesFunc(ctx, pollID, userID)
}
