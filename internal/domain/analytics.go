package domain

import (
	"time"

	"github.com/google/uuid"
)

// AnalyticsDaily is the per-space, per-day counter row.
type AnalyticsDaily struct {
	SpaceID     uuid.UUID
	Date        time.Time
	NewPosts    int
	NewComments int
	Views       int
	ActiveUsers int
	NewMembers  int
}

// AnalyticsDeltas is the set of counter increments applied by UpsertDaily.
// Zero-valued counters are still written (as +0) on insert.
type AnalyticsDeltas struct {
	NewPosts    int
	NewComments int
	Views       int
	ActiveUsers int
	NewMembers  int
}

// AnalyticsTotals is the column-wise sum over a range of daily rows.
type AnalyticsTotals struct {
	NewPosts    int
	NewComments int
	Views       int
	ActiveUsers int
	NewMembers  int
}

// AnalyticsRange is the day series plus totals returned for a date range.
type AnalyticsRange struct {
	Days   []AnalyticsDaily
	Totals AnalyticsTotals
}
