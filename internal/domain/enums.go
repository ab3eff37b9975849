package domain

// SpaceRole is the role a user holds inside a space.
type SpaceRole string

const (
	RoleAdmin     SpaceRole = "admin"
	RoleModerator SpaceRole = "moderator"
	RoleMember    SpaceRole = "member"
)

// Valid reports whether the role is one of the known values.
func (r SpaceRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleModerator, RoleMember:
		return true
	}
	return false
}

// CanModerate reports whether the role may perform moderation actions
// (announcements, pinning, editing or removing other members' posts).
func (r SpaceRole) CanModerate() bool {
	return r == RoleAdmin || r == RoleModerator
}

// PostSort enumerates the supported post list orderings.
type PostSort string

const (
	SortNewest        PostSort = "newest"
	SortOldest        PostSort = "oldest"
	SortMostViewed    PostSort = "most_viewed"
	SortMostReactions PostSort = "most_reactions"
)

// PostFilter enumerates the supported post list filters.
type PostFilter string

const (
	FilterAll           PostFilter = "all"
	FilterAnnouncements PostFilter = "announcements"
	FilterPinned        PostFilter = "pinned"
)

// ContentFormat is the markup format of a post body.
type ContentFormat string

const (
	FormatMarkdown  ContentFormat = "markdown"
	FormatPlaintext ContentFormat = "plaintext"
	FormatHTML      ContentFormat = "html"
)

// Valid reports whether the format is one of the known values.
func (f ContentFormat) Valid() bool {
	switch f {
	case FormatMarkdown, FormatPlaintext, FormatHTML:
		return true
	}
	return false
}

// ModerationAction is the kind of privileged action recorded in the moderation log.
type ModerationAction string

const (
	ModActionPostRemove ModerationAction = "post_remove"
	ModActionPostPin    ModerationAction = "post_pin"
	ModActionPostUnpin  ModerationAction = "post_unpin"
)

// ActivityAction is the kind of event recorded in the best-effort activity log.
type ActivityAction string

const (
	ActivityCreatePost ActivityAction = "create_post"
	ActivityUpdatePost ActivityAction = "update_post"
	ActivityDeletePost ActivityAction = "delete_post"
	ActivityJoinSpace  ActivityAction = "join_space"
)

// AnalyticsPeriod is a shorthand date range for analytics queries.
type AnalyticsPeriod string

const (
	Period7Days  AnalyticsPeriod = "7days"
	Period30Days AnalyticsPeriod = "30days"
	PeriodAll    AnalyticsPeriod = "all"
)
