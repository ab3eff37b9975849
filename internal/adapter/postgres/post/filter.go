package post

import (
	"github.com/projecthub/community-backend/internal/domain"
)

// Filter defines parameters for listing posts in a space.
type Filter struct {
	// Sort is one of the domain.PostSort values. Default: newest.
	Sort domain.PostSort

	// Filter is one of the domain.PostFilter values. Default: all.
	Filter domain.PostFilter

	// Page is the 1-based page number. Default: 1.
	Page int

	// Limit is the page size. Default: 10, max: 100.
	Limit int
}

const (
	defaultLimit = 10
	maxLimit     = 100
)

// normalize applies defaults and clamps values.
func (f *Filter) normalize() {
	switch f.Sort {
	case domain.SortNewest, domain.SortOldest, domain.SortMostViewed, domain.SortMostReactions:
		// valid
	default:
		f.Sort = domain.SortNewest
	}

	switch f.Filter {
	case domain.FilterAll, domain.FilterAnnouncements, domain.FilterPinned:
		// valid
	default:
		f.Filter = domain.FilterAll
	}

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
}

// offset returns the row offset for the current page.
func (f *Filter) offset() int {
	return (f.Page - 1) * f.Limit
}

// orderClause maps the enumerated sort to a fixed, pre-validated ORDER BY
// expression. Caller input never reaches SQL directly.
func (f *Filter) orderClause() string {
	switch f.Sort {
	case domain.SortOldest:
		return "p.created_at ASC"
	case domain.SortMostViewed:
		return "p.view_count DESC, p.created_at DESC"
	case domain.SortMostReactions:
		return "reaction_count DESC, p.created_at DESC"
	default:
		return "p.created_at DESC"
	}
}
