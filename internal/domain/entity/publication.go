package entity

import "time"

// PublicationState is the derived lifecycle state of a Publication.
type PublicationState string

const (
	// StateScheduled means the publication date is still in the future.
	StateScheduled PublicationState = "scheduled"
	// StatePublished means the publication date has been reached.
	StatePublished PublicationState = "published"
)

// Publication schedules one Post on one Media at Date.
// It holds non-owning references; many publications may share a Media or Post.
type Publication struct {
	ID      int64
	MediaID int64
	PostID  int64
	Date    time.Time
}

// IsPublished reports whether the publication date is at or before now.
// The state is always derived and never persisted.
func IsPublished(p *Publication, now time.Time) bool {
	return !p.Date.After(now)
}
