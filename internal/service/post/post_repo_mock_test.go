package post

import (
	"context"
	"sync"

	"github.com/google/uuid"

	postrepo "github.com/projecthub/community-backend/internal/adapter/postgres/post"
	"github.com/projecthub/community-backend/internal/domain"
)

var _ postRepo = &postRepoMock{}

type postRepoMock struct {
	CreateFunc             func(ctx context.Context, p *domain.Post) (*domain.Post, error)
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	GetWithAuthorFunc      func(ctx context.Context, id uuid.UUID) (*domain.PostDetail, error)
	ListFunc               func(ctx context.Context, spaceID uuid.UUID, f postrepo.Filter) ([]domain.PostSummary, int, error)
	ReplaceTagsFunc        func(ctx context.Context, postID uuid.UUID, tags []string) error
	IncrementViewCountFunc func(ctx context.Context, id uuid.UUID) error
	UpdateFunc             func(ctx context.Context, id uuid.UUID, params domain.PostUpdateParams) (*domain.Post, error)
	DeleteFunc             func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create      []struct{ Post *domain.Post }
		ReplaceTags []struct {
			PostID uuid.UUID
			Tags   []string
		}
		IncrementViewCount []struct{ ID uuid.UUID }
		Update             []struct {
			ID     uuid.UUID
			Params domain.PostUpdateParams
		}
		Delete []struct{ ID uuid.UUID }
	}
	mu sync.RWMutex
}

func (mock *postRepoMock) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	if mock.CreateFunc == nil {
		panic("postRepoMock.CreateFunc: method is nil but postRepo.Create was just called")
	}
	mock.mu.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Post *domain.Post }{p})
	mock.mu.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *postRepoMock) CreateCalls() []struct{ Post *domain.Post } {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Create
}

func (mock *postRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	if mock.GetByIDFunc == nil {
		panic("postRepoMock.GetByIDFunc: method is nil but postRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *postRepoMock) GetWithAuthor(ctx context.Context, id uuid.UUID) (*domain.PostDetail, error) {
	if mock.GetWithAuthorFunc == nil {
		panic("postRepoMock.GetWithAuthorFunc: method is nil but postRepo.GetWithAuthor was just called")
	}
	return mock.GetWithAuthorFunc(ctx, id)
}

func (mock *postRepoMock) List(ctx context.Context, spaceID uuid.UUID, f postrepo.Filter) ([]domain.PostSummary, int, error) {
	if mock.ListFunc == nil {
		panic("postRepoMock.ListFunc: method is nil but postRepo.List was just called")
	}
	return mock.ListFunc(ctx, spaceID, f)
}

func (mock *postRepoMock) ReplaceTags(ctx context.Context, postID uuid.UUID, tags []string) error {
	if mock.ReplaceTagsFunc == nil {
		panic("postRepoMock.ReplaceTagsFunc: method is nil but postRepo.ReplaceTags was just called")
	}
	mock.mu.Lock()
	mock.calls.ReplaceTags = append(mock.calls.ReplaceTags, struct {
		PostID uuid.UUID
		Tags   []string
	}{postID, tags})
	mock.mu.Unlock()
	return mock.ReplaceTagsFunc(ctx, postID, tags)
}

func (mock *postRepoMock) ReplaceTagsCalls() []struct {
	PostID uuid.UUID
	Tags   []string
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.ReplaceTags
}

func (mock *postRepoMock) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	if mock.IncrementViewCountFunc == nil {
		panic("postRepoMock.IncrementViewCountFunc: method is nil but postRepo.IncrementViewCount was just called")
	}
	mock.mu.Lock()
	mock.calls.IncrementViewCount = append(mock.calls.IncrementViewCount, struct{ ID uuid.UUID }{id})
	mock.mu.Unlock()
	return mock.IncrementViewCountFunc(ctx, id)
}

func (mock *postRepoMock) IncrementViewCountCalls() []struct{ ID uuid.UUID } {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.IncrementViewCount
}

func (mock *postRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.PostUpdateParams) (*domain.Post, error) {
	if mock.UpdateFunc == nil {
		panic("postRepoMock.UpdateFunc: method is nil but postRepo.Update was just called")
	}
	mock.mu.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		ID     uuid.UUID
		Params domain.PostUpdateParams
	}{id, params})
	mock.mu.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *postRepoMock) UpdateCalls() []struct {
	ID     uuid.UUID
	Params domain.PostUpdateParams
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Update
}

func (mock *postRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("postRepoMock.DeleteFunc: method is nil but postRepo.Delete was just called")
	}
	mock.mu.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{id})
	mock.mu.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *postRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Delete
}
