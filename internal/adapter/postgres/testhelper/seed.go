package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/projecthub/community-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user in the given company. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool, companyID uuid.UUID) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		CompanyID: companyID,
		Username:  "testuser-" + suffix,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, company_id, username, created_at)
		 VALUES ($1, $2, $3, $4)`,
		user.ID, user.CompanyID, user.Username, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedSpace creates a space owned by the given user, with the user enrolled
// as admin and member_count set to 1. Returns a filled domain.Space.
func SeedSpace(t *testing.T, pool *pgxpool.Pool, owner domain.User) domain.Space {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	space := domain.Space{
		ID:          uuid.New(),
		CompanyID:   owner.CompanyID,
		Name:        "Test Space " + suffix,
		IsPublic:    true,
		MemberCount: 1,
		CreatedBy:   owner.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO community_spaces (id, company_id, name, is_public, member_count, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		space.ID, space.CompanyID, space.Name, space.IsPublic, space.MemberCount, space.CreatedBy, space.CreatedAt, space.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSpace insert space: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO space_members (space_id, user_id, role, joined_at)
		 VALUES ($1, $2, $3, $4)`,
		space.ID, owner.ID, string(domain.RoleAdmin), now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSpace insert membership: %v", err)
	}

	return space
}

// SeedMember enrolls a user in a space with the given role.
func SeedMember(t *testing.T, pool *pgxpool.Pool, spaceID, userID uuid.UUID, role domain.SpaceRole) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO space_members (space_id, user_id, role) VALUES ($1, $2, $3)`,
		spaceID, userID, string(role),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMember insert: %v", err)
	}
}

// SeedPost creates a post authored by the given user. Returns a filled domain.Post.
func SeedPost(t *testing.T, pool *pgxpool.Pool, spaceID uuid.UUID, author domain.User) domain.Post {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	post := domain.Post{
		ID:            uuid.New(),
		SpaceID:       spaceID,
		UserID:        author.ID,
		Title:         "Test Post " + suffix,
		Content:       "Test content " + suffix,
		ContentFormat: domain.FormatMarkdown,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO community_posts (id, space_id, user_id, title, content, content_format, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		post.ID, post.SpaceID, post.UserID, post.Title, post.Content, string(post.ContentFormat), post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPost insert: %v", err)
	}

	return post
}

// SeedPoll creates a poll on the given post. Returns a filled domain.Poll.
func SeedPoll(t *testing.T, pool *pgxpool.Pool, postID uuid.UUID, options []string, multiple bool) domain.Poll {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	poll := domain.Poll{
		ID:               uuid.New(),
		PostID:           postID,
		Question:         "Test question?",
		Options:          options,
		IsMultipleChoice: multiple,
		CreatedAt:        now,
	}

	encoded, err := json.Marshal(poll.Options)
	if err != nil {
		t.Fatalf("testhelper: SeedPoll encode options: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO post_polls (id, post_id, question, options, is_multiple_choice, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		poll.ID, poll.PostID, poll.Question, encoded, poll.IsMultipleChoice, poll.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPoll insert: %v", err)
	}

	return poll
}
