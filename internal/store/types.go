// Package store persists analyzed typing sessions in SQLite.
package store

import (
	"time"

	"rhythmd/internal/rhythm"
)

// Session is a stored analysis result plus its bookkeeping metadata.
type Session struct {
	// ID is the session identifier (UUID).
	ID string

	// CreatedAt is when the session was stored.
	CreatedAt time.Time

	// StartedAt and EndedAt bound the monitored typing session.
	StartedAt time.Time
	EndedAt   time.Time

	// Label is an optional user-supplied name for the session.
	Label string

	// Summary columns, duplicated from the profile for cheap listing.
	TotalKeystrokes int
	TotalChars      int
	RhythmType      rhythm.RhythmType
	FluencyLevel    rhythm.FluencyLevel
	FluencyScore    float64

	// Profile is the full analysis result. Nil in listings.
	Profile *rhythm.Profile
}
