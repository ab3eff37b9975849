package domain

import (
	"time"

	"github.com/google/uuid"
)

// Post is a community post inside a space.
type Post struct {
	ID             uuid.UUID
	SpaceID        uuid.UUID
	UserID         uuid.UUID
	Title          string
	Content        string
	ContentFormat  ContentFormat
	Tags           []string
	IsAnnouncement bool
	IsPinned       bool
	ViewCount      int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PostSummary is the compact post shape used in list views.
type PostSummary struct {
	Post
	AuthorName      string
	AuthorAvatarURL *string
	ReactionCount   int
}

// ReactionCount is one reaction type's tally on a post, with a flag for
// whether the requesting user contributed to it.
type ReactionCount struct {
	Type        string
	Count       int
	UserReacted bool
}

// PostDetail is a post joined with everything the single-post view needs.
type PostDetail struct {
	Post
	AuthorName      string
	AuthorAvatarURL *string
	Reactions       []ReactionCount
	IsBookmarked    bool
	Poll            *PollDetail
}

// PostUpdateParams carries the partial-update fields for a post.
// nil means "leave unchanged"; Tags non-nil replaces the tag set entirely.
type PostUpdateParams struct {
	Title         *string
	Content       *string
	ContentFormat *ContentFormat
	Tags          []string
	TagsSet       bool
	IsPinned      *bool
}

// PostPage is one page of posts plus pagination metadata.
type PostPage struct {
	Items      []PostSummary
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// Bookmark is a user's saved post with optional free-text notes.
type Bookmark struct {
	PostID    uuid.UUID
	UserID    uuid.UUID
	Notes     *string
	CreatedAt time.Time
}
