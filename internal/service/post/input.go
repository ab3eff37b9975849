package post

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/projecthub/community-backend/internal/domain"
)

const (
	maxTitleLen   = 255
	maxContentLen = 50000
	maxTags       = 10
	maxTagLen     = 50
	maxPollOpts   = 20
)

// PollInput holds an embedded poll definition on post creation.
type PollInput struct {
	Question         string
	Options          []string
	ClosesAt         *time.Time
	IsMultipleChoice bool
	IsAnonymous      bool
}

// Validate checks the poll definition.
func (p PollInput) Validate() []domain.FieldError {
	var errs []domain.FieldError

	if strings.TrimSpace(p.Question) == "" {
		errs = append(errs, domain.FieldError{Field: "poll.question", Message: "required"})
	}
	if len(p.Options) < 2 {
		errs = append(errs, domain.FieldError{Field: "poll.options", Message: "at least 2 options required"})
	}
	if len(p.Options) > maxPollOpts {
		errs = append(errs, domain.FieldError{Field: "poll.options", Message: "max 20 options"})
	}
	for _, opt := range p.Options {
		if strings.TrimSpace(opt) == "" {
			errs = append(errs, domain.FieldError{Field: "poll.options", Message: "options must not be empty"})
			break
		}
	}

	return errs
}

// CreatePostInput holds the parameters for creating a post.
type CreatePostInput struct {
	SpaceID        uuid.UUID
	Title          string
	Content        string
	ContentFormat  domain.ContentFormat
	Tags           []string
	IsAnnouncement bool
	Poll           *PollInput
}

// Validate checks all fields and collects all errors.
func (i CreatePostInput) Validate() error {
	var errs []domain.FieldError

	if i.SpaceID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "space_id", Message: "required"})
	}
	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(i.Content) > maxContentLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 50000 characters"})
	}
	if i.ContentFormat != "" && !i.ContentFormat.Valid() {
		errs = append(errs, domain.FieldError{Field: "content_format", Message: "must be one of markdown, plaintext, html"})
	}
	errs = append(errs, validateTags(i.Tags)...)
	if i.Poll != nil {
		errs = append(errs, i.Poll.Validate()...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdatePostInput holds the partial-update parameters for a post.
// Tags non-nil (TagsSet) replaces the post's tag set entirely.
type UpdatePostInput struct {
	PostID        uuid.UUID
	Title         *string
	Content       *string
	ContentFormat *domain.ContentFormat
	Tags          []string
	TagsSet       bool
	IsPinned      *bool
}

// Validate checks all fields and collects all errors.
func (i UpdatePostInput) Validate() error {
	var errs []domain.FieldError

	if i.PostID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "post_id", Message: "required"})
	}
	if i.Title == nil && i.Content == nil && i.ContentFormat == nil && !i.TagsSet && i.IsPinned == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		if strings.TrimSpace(*i.Title) == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		if len(*i.Title) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
		}
	}
	if i.Content != nil && strings.TrimSpace(*i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if i.ContentFormat != nil && !i.ContentFormat.Valid() {
		errs = append(errs, domain.FieldError{Field: "content_format", Message: "must be one of markdown, plaintext, html"})
	}
	if i.TagsSet {
		errs = append(errs, validateTags(i.Tags)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListPostsInput holds the parameters for listing posts in a space.
type ListPostsInput struct {
	SpaceID uuid.UUID
	Sort    domain.PostSort
	Filter  domain.PostFilter
	Page    int
	Limit   int
}

// ReactInput holds the parameters for a reaction toggle.
type ReactInput struct {
	PostID       uuid.UUID
	ReactionType string
}

// Validate checks all fields.
func (i ReactInput) Validate() error {
	var errs []domain.FieldError
	if i.PostID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "post_id", Message: "required"})
	}
	rt := strings.TrimSpace(i.ReactionType)
	if rt == "" {
		errs = append(errs, domain.FieldError{Field: "reaction_type", Message: "required"})
	}
	if len(rt) > 32 {
		errs = append(errs, domain.FieldError{Field: "reaction_type", Message: "max 32 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// BookmarkInput holds the parameters for the bookmark toggle.
type BookmarkInput struct {
	PostID uuid.UUID
	Notes  *string
}

func validateTags(tags []string) []domain.FieldError {
	var errs []domain.FieldError
	if len(tags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "max 10 tags"})
	}
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			errs = append(errs, domain.FieldError{Field: "tags", Message: "tags must not be empty"})
			break
		}
		if len(tag) > maxTagLen {
			errs = append(errs, domain.FieldError{Field: "tags", Message: "max 50 characters per tag"})
			break
		}
	}
	return errs
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
