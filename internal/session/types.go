package session

import (
	"errors"
	"time"
)

// ErrZeroDuration is returned when a save is attempted with no elapsed
// time. The UI never offers a save in that state; the check is kept here
// so a broken caller cannot write a zero-length steep.
var ErrZeroDuration = errors.New("session has no elapsed time")

// Session is one completed, saved steep. Immutable once created.
type Session struct {
	ID        int64         // Unix milliseconds of the save instant
	Duration  time.Duration // elapsed time at save, always positive
	CreatedAt time.Time     // save instant, UTC
	Notes     string        // free text, may be empty
}

// New creates a Session from a finished steep. The save instant becomes
// both the creation timestamp and the ID; a single user saving one
// session at a time makes the millisecond timestamp unique enough.
func New(elapsed time.Duration, notes string) (Session, error) {
	if elapsed <= 0 {
		return Session{}, ErrZeroDuration
	}
	now := time.Now().UTC()
	return Session{
		ID:        now.UnixMilli(),
		Duration:  elapsed,
		CreatedAt: now,
		Notes:     notes,
	}, nil
}

// Minutes returns the steep length in minutes. Derived from Duration on
// every call rather than stored, so it can never drift out of sync.
func (s Session) Minutes() float64 {
	return float64(s.Duration.Milliseconds()) / 60000
}
