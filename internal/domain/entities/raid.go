package entities

import "time"

// NotifyOffset est le délai fixe entre le rappel et le début du raid.
const NotifyOffset = 30 * time.Minute

// Raid is an active scheduled raid. It is identified by the ID of its
// announcement message, assigned by Discord when the post is created.
type Raid struct {
	ID        string    // announcement message id
	Name      string
	ChannelID string
	Type      string    // raid type name, selects template and reaction mapping
	StartAt   time.Time // UTC
	NotifyAt  time.Time // StartAt - NotifyOffset, UTC
	Duration  string    // display label ("3 hours", ...)
	Timezone  string    // timezone code entered by the organizer (PT, ET, ...)
}

// Lapsed reports whether the notify instant has already passed.
// A lapsed raid must never be scheduled; it is deleted on sight.
func (r *Raid) Lapsed(now time.Time) bool {
	return !r.NotifyAt.After(now)
}
