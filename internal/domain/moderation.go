package domain

import (
	"time"

	"github.com/google/uuid"
)

// ModerationLogEntry is one append-only audit record of a privileged action
// performed by someone other than the content's author. Entries are never
// updated or deleted; the log is consumed by external reporting only.
type ModerationLogEntry struct {
	ID          uuid.UUID
	ModeratorID uuid.UUID
	ActionType  ModerationAction
	TargetType  string
	TargetID    uuid.UUID
	Reason      string
	CreatedAt   time.Time
}

// ActivityRecord is one best-effort activity log event. Writing it must
// never fail the operation that produced it.
type ActivityRecord struct {
	UserID     uuid.UUID
	ActionType ActivityAction
	TargetType string
	TargetID   uuid.UUID
}
