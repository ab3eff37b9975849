package domain

import (
	"time"

	"github.com/google/uuid"
)

// Poll is an optional poll embedded in a post (at most one per post).
type Poll struct {
	ID               uuid.UUID
	PostID           uuid.UUID
	Question         string
	Options          []string
	ClosesAt         *time.Time
	IsMultipleChoice bool
	IsAnonymous      bool
	CreatedAt        time.Time
}

// Closed reports whether the poll no longer accepts votes at the given time.
// A poll with no ClosesAt never closes.
func (p *Poll) Closed(now time.Time) bool {
	return p.ClosesAt != nil && !now.Before(*p.ClosesAt)
}

// PollVoteCount is the tally for a single option.
type PollVoteCount struct {
	OptionIndex int
	Count       int
}

// PollDetail is a poll with tallies and the requesting user's own votes.
type PollDetail struct {
	Poll
	VoteCounts []PollVoteCount
	UserVotes  []int
}

// VoteOutcome is the result of a vote toggle.
type VoteOutcome string

const (
	VoteRecorded VoteOutcome = "recorded"
	VoteRemoved  VoteOutcome = "removed"
)
