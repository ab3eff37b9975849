// Package space implements the space registry repository using PostgreSQL.
// It owns the space hierarchy, membership rows, and the denormalized
// member/post counters.
package space

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/projecthub/community-backend/internal/adapter/postgres"
	"github.com/projecthub/community-backend/internal/domain"
)

// Repo provides space and membership persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new space repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const spaceColumns = `
    id, company_id, name, description, parent_space_id, icon_url, is_public,
    access_rules, member_count, post_count, created_by, created_at, updated_at`

const getByIDSQL = `
SELECT` + spaceColumns + `
FROM community_spaces
WHERE id = $1`

const listChildrenSQL = `
SELECT id, name, icon_url, member_count
FROM community_spaces
WHERE parent_space_id = $1
ORDER BY name`

const isDescendantSQL = `
WITH RECURSIVE ancestors AS (
    SELECT id, parent_space_id FROM community_spaces WHERE id = $1
    UNION ALL
    SELECT s.id, s.parent_space_id
    FROM community_spaces s
    JOIN ancestors a ON s.id = a.parent_space_id
)
SELECT EXISTS (SELECT 1 FROM ancestors WHERE id = $2)`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a space by primary key.
// Returns domain.ErrNotFound if the space does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Space, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSpace(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "space", id)
	}

	return s, nil
}

// List returns spaces scoped to a company, with optional parent and search
// filters. rootsOnly restricts to spaces without a parent; parentID (when
// non-nil) restricts to direct children of that space. The two are mutually
// exclusive at the service layer.
func (r *Repo) List(ctx context.Context, companyID uuid.UUID, parentID *uuid.UUID, rootsOnly bool, search string) ([]*domain.Space, error) {
	query := builder.
		Select("id", "company_id", "name", "description", "parent_space_id", "icon_url",
			"is_public", "access_rules", "member_count", "post_count", "created_by",
			"created_at", "updated_at").
		From("community_spaces").
		Where(sq.Eq{"company_id": companyID}).
		OrderBy("name ASC")

	switch {
	case parentID != nil:
		query = query.Where(sq.Eq{"parent_space_id": *parentID})
	case rootsOnly:
		query = query.Where(sq.Eq{"parent_space_id": nil})
	}

	if search != "" {
		query = query.Where(sq.Or{
			sq.ILike{"name": "%" + search + "%"},
			sq.ILike{"description": "%" + search + "%"},
		})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list spaces query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list spaces: %w", err)
	}
	defer rows.Close()

	spaces := []*domain.Space{}
	for rows.Next() {
		s, err := scanSpace(rows)
		if err != nil {
			return nil, fmt.Errorf("list spaces: %w", err)
		}
		spaces = append(spaces, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list spaces: %w", err)
	}

	return spaces, nil
}

// ListChildren returns the child-space summaries of a space, ordered by name.
// Returns an empty slice (not nil) when the space has no children.
func (r *Repo) ListChildren(ctx context.Context, id uuid.UUID) ([]domain.SpaceChild, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listChildrenSQL, id)
	if err != nil {
		return nil, fmt.Errorf("list child spaces: %w", err)
	}
	defer rows.Close()

	children := []domain.SpaceChild{}
	for rows.Next() {
		var c domain.SpaceChild
		if err := rows.Scan(&c.ID, &c.Name, &c.IconURL, &c.MemberCount); err != nil {
			return nil, fmt.Errorf("list child spaces: %w", err)
		}
		children = append(children, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list child spaces: %w", err)
	}

	return children, nil
}

// HasChildren reports whether any space has this space as its parent.
func (r *Repo) HasChildren(ctx context.Context, id uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM community_spaces WHERE parent_space_id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check child spaces: %w", err)
	}

	return exists, nil
}

// IsDescendant reports whether candidate sits in the ancestor chain of spaceID
// (or is spaceID itself). Used to reject parent changes that would form a cycle.
func (r *Repo) IsDescendant(ctx context.Context, candidate, spaceID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var cyclic bool
	if err := q.QueryRow(ctx, isDescendantSQL, candidate, spaceID).Scan(&cyclic); err != nil {
		return false, fmt.Errorf("check space ancestry: %w", err)
	}

	return cyclic, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const insertSpaceSQL = `
INSERT INTO community_spaces
    (company_id, name, description, parent_space_id, icon_url, is_public, access_rules, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING` + spaceColumns

// Create inserts a new space and returns the persisted row.
func (r *Repo) Create(ctx context.Context, s *domain.Space) (*domain.Space, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rules, err := json.Marshal(s.AccessRules)
	if err != nil {
		return nil, fmt.Errorf("encode access rules: %w", err)
	}

	created, err := scanSpace(q.QueryRow(ctx, insertSpaceSQL,
		s.CompanyID, s.Name, s.Description, s.ParentSpaceID, s.IconURL, s.IsPublic, rules, s.CreatedBy,
	))
	if err != nil {
		return nil, postgres.MapError(err, "space", uuid.Nil)
	}

	return created, nil
}

// Update applies a partial update and returns the updated row.
// Returns domain.ErrNotFound if the space does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.SpaceUpdateParams) (*domain.Space, error) {
	update := builder.Update("community_spaces").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING" + spaceColumns)

	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.Description != nil {
		update = update.Set("description", *params.Description)
	}
	if params.ClearParent {
		update = update.Set("parent_space_id", nil)
	} else if params.ParentSpaceID != nil {
		update = update.Set("parent_space_id", *params.ParentSpaceID)
	}
	if params.IconURL != nil {
		update = update.Set("icon_url", *params.IconURL)
	}
	if params.IsPublic != nil {
		update = update.Set("is_public", *params.IsPublic)
	}
	if params.AccessRules != nil {
		rules, err := json.Marshal(*params.AccessRules)
		if err != nil {
			return nil, fmt.Errorf("encode access rules: %w", err)
		}
		update = update.Set("access_rules", rules)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update space query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	s, err := scanSpace(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "space", id)
	}

	return s, nil
}

// Delete removes a space. Posts and memberships cascade; children block the
// delete at the FK level, but the service checks first for a clean error.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM community_spaces WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "space", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("space %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// AdjustMemberCount adds delta to the denormalized member counter.
func (r *Repo) AdjustMemberCount(ctx context.Context, id uuid.UUID, delta int) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`UPDATE community_spaces SET member_count = member_count + $2 WHERE id = $1`, id, delta)
	if err != nil {
		return postgres.MapError(err, "space", id)
	}

	return nil
}

// IncrementPostCount bumps the denormalized post counter.
func (r *Repo) IncrementPostCount(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`UPDATE community_spaces SET post_count = post_count + 1 WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "space", id)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Membership
// ---------------------------------------------------------------------------

// GetMember returns a user's membership in a space.
// Returns domain.ErrNotFound if the user is not a member.
func (r *Repo) GetMember(ctx context.Context, spaceID, userID uuid.UUID) (*domain.SpaceMember, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var m domain.SpaceMember
	err := q.QueryRow(ctx,
		`SELECT space_id, user_id, role, joined_at FROM space_members WHERE space_id = $1 AND user_id = $2`,
		spaceID, userID,
	).Scan(&m.SpaceID, &m.UserID, &m.Role, &m.JoinedAt)
	if err != nil {
		return nil, postgres.MapError(err, "space member", userID)
	}

	return &m, nil
}

// AddMember inserts a membership row.
// Returns domain.ErrAlreadyExists if the user is already a member.
func (r *Repo) AddMember(ctx context.Context, spaceID, userID uuid.UUID, role domain.SpaceRole) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO space_members (space_id, user_id, role) VALUES ($1, $2, $3)`,
		spaceID, userID, role)
	if err != nil {
		return postgres.MapError(err, "space member", userID)
	}

	return nil
}

// RemoveMember deletes a membership row.
// Returns domain.ErrNotFound if no membership existed.
func (r *Repo) RemoveMember(ctx context.Context, spaceID, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM space_members WHERE space_id = $1 AND user_id = $2`, spaceID, userID)
	if err != nil {
		return postgres.MapError(err, "space member", userID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("space member %s: %w", userID, domain.ErrNotFound)
	}

	return nil
}

// CountAdmins returns the number of admin members in a space.
func (r *Repo) CountAdmins(ctx context.Context, spaceID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM space_members WHERE space_id = $1 AND role = $2`,
		spaceID, domain.RoleAdmin,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}

	return n, nil
}

// CountMembers returns the live membership cardinality of a space.
func (r *Repo) CountMembers(ctx context.Context, spaceID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM space_members WHERE space_id = $1`, spaceID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count members: %w", err)
	}

	return n, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanSpace(row pgx.Row) (*domain.Space, error) {
	var (
		s     domain.Space
		rules []byte
	)

	err := row.Scan(
		&s.ID, &s.CompanyID, &s.Name, &s.Description, &s.ParentSpaceID, &s.IconURL,
		&s.IsPublic, &rules, &s.MemberCount, &s.PostCount, &s.CreatedBy,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(rules) > 0 {
		if err := json.Unmarshal(rules, &s.AccessRules); err != nil {
			return nil, fmt.Errorf("decode access rules: %w", err)
		}
	}

	return &s, nil
}
