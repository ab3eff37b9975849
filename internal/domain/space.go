package domain

import (
	"time"

	"github.com/google/uuid"
)

// Space is a community container. Spaces form a forest via ParentSpaceID.
type Space struct {
	ID            uuid.UUID
	CompanyID     uuid.UUID
	Name          string
	Description   *string
	ParentSpaceID *uuid.UUID
	IconURL       *string
	IsPublic      bool
	AccessRules   AccessRules
	MemberCount   int
	PostCount     int
	CreatedBy     uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AccessRules is the decoded access policy of a space. It is stored as a
// JSON blob and treated as opaque beyond the storage boundary, but the
// known keys are typed here so business logic never touches raw JSON.
type AccessRules struct {
	RequireApproval bool     `json:"require_approval,omitempty"`
	AllowedDomains  []string `json:"allowed_domains,omitempty"`
	PostingRoles    []string `json:"posting_roles,omitempty"`
}

// SpaceMember is a user's membership in a space.
type SpaceMember struct {
	SpaceID  uuid.UUID
	UserID   uuid.UUID
	Role     SpaceRole
	JoinedAt time.Time
}

// SpaceChild is the summary of a child space attached to space detail views.
type SpaceChild struct {
	ID          uuid.UUID
	Name        string
	IconURL     *string
	MemberCount int
}

// SpaceDetail is a space together with the read-view extras: child spaces,
// a live member count, and the most recent posts.
type SpaceDetail struct {
	Space
	Children    []SpaceChild
	RecentPosts []PostSummary
}

// SpaceUpdateParams carries the partial-update fields for a space.
// nil means "leave unchanged".
type SpaceUpdateParams struct {
	Name          *string
	Description   *string
	ParentSpaceID *uuid.UUID
	ClearParent   bool
	IconURL       *string
	IsPublic      *bool
	AccessRules   *AccessRules
}
