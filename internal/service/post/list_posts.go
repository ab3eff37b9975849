package post

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	postrepo "github.com/projecthub/community-backend/internal/adapter/postgres/post"
	"github.com/projecthub/community-backend/internal/domain"
	"github.com/projecthub/community-backend/pkg/ctxutil"
)

// ListPosts returns one page of posts in a space with pagination metadata.
// Unknown sort or filter values fall back to defaults rather than erroring,
// matching the lenient query-parameter contract of the API.
func (s *Service) ListPosts(ctx context.Context, input ListPostsInput) (*domain.PostPage, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if input.SpaceID == uuid.Nil {
		return nil, domain.NewValidationError("space_id", "required")
	}

	f := postrepo.Filter{
		Sort:   input.Sort,
		Filter: input.Filter,
		Page:   input.Page,
		Limit:  input.Limit,
	}

	items, total, err := s.posts.List(ctx, input.SpaceID, f)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	totalPages := (total + limit - 1) / limit

	return &domain.PostPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}
