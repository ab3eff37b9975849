package space

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/projecthub/community-backend/internal/domain"
)

var _ spaceRepo = &spaceRepoMock{}

type spaceRepoMock struct {
	CreateFunc            func(ctx context.Context, s *domain.Space) (*domain.Space, error)
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Space, error)
	ListFunc              func(ctx context.Context, companyID uuid.UUID, parentID *uuid.UUID, rootsOnly bool, search string) ([]*domain.Space, error)
	ListChildrenFunc      func(ctx context.Context, id uuid.UUID) ([]domain.SpaceChild, error)
	HasChildrenFunc       func(ctx context.Context, id uuid.UUID) (bool, error)
	IsDescendantFunc      func(ctx context.Context, candidate, spaceID uuid.UUID) (bool, error)
	UpdateFunc            func(ctx context.Context, id uuid.UUID, params domain.SpaceUpdateParams) (*domain.Space, error)
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error
	AdjustMemberCountFunc func(ctx context.Context, id uuid.UUID, delta int) error
	GetMemberFunc         func(ctx context.Context, spaceID, userID uuid.UUID) (*domain.SpaceMember, error)
	AddMemberFunc         func(ctx context.Context, spaceID, userID uuid.UUID, role domain.SpaceRole) error
	RemoveMemberFunc      func(ctx context.Context, spaceID, userID uuid.UUID) error
	CountAdminsFunc       func(ctx context.Context, spaceID uuid.UUID) (int, error)
	CountMembersFunc      func(ctx context.Context, spaceID uuid.UUID) (int, error)

	calls struct {
		Create            []struct{ Space *domain.Space }
		Delete            []struct{ ID uuid.UUID }
		AdjustMemberCount []struct {
			ID    uuid.UUID
			Delta int
		}
		AddMember []struct {
			SpaceID, UserID uuid.UUID
			Role            domain.SpaceRole
		}
		RemoveMember []struct{ SpaceID, UserID uuid.UUID }
	}
	mu sync.RWMutex
}

func (mock *spaceRepoMock) Create(ctx context.Context, s *domain.Space) (*domain.Space, error) {
	if mock.CreateFunc == nil {
		panic("spaceRepoMock.CreateFunc: method is nil but spaceRepo.Create was just called")
	}
	mock.mu.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Space *domain.Space }{s})
	mock.mu.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *spaceRepoMock) CreateCalls() []struct{ Space *domain.Space } {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Create
}

func (mock *spaceRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Space, error) {
	if mock.GetByIDFunc == nil {
		panic("spaceRepoMock.GetByIDFunc: method is nil but spaceRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *spaceRepoMock) List(ctx context.Context, companyID uuid.UUID, parentID *uuid.UUID, rootsOnly bool, search string) ([]*domain.Space, error) {
	if mock.ListFunc == nil {
		panic("spaceRepoMock.ListFunc: method is nil but spaceRepo.List was just called")
	}
	return mock.ListFunc(ctx, companyID, parentID, rootsOnly, search)
}

func (mock *spaceRepoMock) ListChildren(ctx context.Context, id uuid.UUID) ([]domain.SpaceChild, error) {
	if mock.ListChildrenFunc == nil {
		panic("spaceRepoMock.ListChildrenFunc: method is nil but spaceRepo.ListChildren was just called")
	}
	return mock.ListChildrenFunc(ctx, id)
}

func (mock *spaceRepoMock) HasChildren(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.HasChildrenFunc == nil {
		panic("spaceRepoMock.HasChildrenFunc: method is nil but spaceRepo.HasChildren was just called")
	}
	return mock.HasChildrenFunc(ctx, id)
}

func (mock *spaceRepoMock) IsDescendant(ctx context.Context, candidate, spaceID uuid.UUID) (bool, error) {
	if mock.IsDescendantFunc == nil {
		panic("spaceRepoMock.IsDescendantFunc: method is nil but spaceRepo.IsDescendant was just called")
	}
	return mock.IsDescendantFunc(ctx, candidate, spaceID)
}

func (mock *spaceRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.SpaceUpdateParams) (*domain.Space, error) {
	if mock.UpdateFunc == nil {
		panic("spaceRepoMock.UpdateFunc: method is nil but spaceRepo.Update was just called")
	}
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *spaceRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("spaceRepoMock.DeleteFunc: method is nil but spaceRepo.Delete was just called")
	}
	mock.mu.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{id})
	mock.mu.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *spaceRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Delete
}

func (mock *spaceRepoMock) AdjustMemberCount(ctx context.Context, id uuid.UUID, delta int) error {
	if mock.AdjustMemberCountFunc == nil {
		panic("spaceRepoMock.AdjustMemberCountFunc: method is nil but spaceRepo.AdjustMemberCount was just called")
	}
	mock.mu.Lock()
	mock.calls.AdjustMemberCount = append(mock.calls.AdjustMemberCount, struct {
		ID    uuid.UUID
		Delta int
	}{id, delta})
	mock.mu.Unlock()
	return mock.AdjustMemberCountFunc(ctx, id, delta)
}

func (mock *spaceRepoMock) AdjustMemberCountCalls() []struct {
	ID    uuid.UUID
	Delta int
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.AdjustMemberCount
}

func (mock *spaceRepoMock) GetMember(ctx context.Context, spaceID, userID uuid.UUID) (*domain.SpaceMember, error) {
	if mock.GetMemberFunc == nil {
		panic("spaceRepoMock.GetMemberFunc: method is nil but spaceRepo.GetMember was just called")
	}
	return mock.GetMemberFunc(ctx, spaceID, userID)
}

func (mock *spaceRepoMock) AddMember(ctx context.Context, spaceID, userID uuid.UUID, role domain.SpaceRole) error {
	if mock.AddMemberFunc == nil {
		panic("spaceRepoMock.AddMemberFunc: method is nil but spaceRepo.AddMember was just called")
	}
	mock.mu.Lock()
	mock.calls.AddMember = append(mock.calls.AddMember, struct {
		SpaceID, UserID uuid.UUID
		Role            domain.SpaceRole
	}{spaceID, userID, role})
	mock.mu.Unlock()
	return mock.AddMemberFunc(ctx, spaceID, userID, role)
}

func (mock *spaceRepoMock) AddMemberCalls() []struct {
	SpaceID, UserID uuid.UUID
	Role            domain.SpaceRole
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.AddMember
}

func (mock *spaceRepoMock) RemoveMember(ctx context.Context, spaceID, userID uuid.UUID) error {
	if mock.RemoveMemberFunc == nil {
		panic("spaceRepoMock.RemoveMemberFunc: method is nil but spaceRepo.RemoveMember was just called")
	}
	mock.mu.Lock()
	mock.calls.RemoveMember = append(mock.calls.RemoveMember, struct{ SpaceID, UserID uuid.UUID }{spaceID, userID})
	mock.mu.Unlock()
	return mock.RemoveMemberFunc(ctx, spaceID, userID)
}

func (mock *spaceRepoMock) RemoveMemberCalls() []struct{ SpaceID, UserID uuid.UUID } {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.RemoveMember
}

func (mock *spaceRepoMock) CountAdmins(ctx context.Context, spaceID uuid.UUID) (int, error) {
	if mock.CountAdminsFunc == nil {
		panic("spaceRepoMock.CountAdminsFunc: method is nil but spaceRepo.CountAdmins was just called")
	}
	return mock.CountAdminsFunc(ctx, spaceID)
}

func (mock *spaceRepoMock) CountMembers(ctx context.Context, spaceID uuid.UUID) (int, error) {
	if mock.CountMembersFunc == nil {
		panic("spaceRepoMock.CountMembersFunc: method is nil but spaceRepo.CountMembers was just called")
	}
	return mock.CountMembersFunc(ctx, spaceID)
}
