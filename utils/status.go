package utils

import (
	"time"

	"contesthub/models"
)

// Display statuses as surfaced to callers. Stored "upcoming" collapses to
// "active" while the deadline has not passed; "ended" is never stored.
const (
	DisplayActive   = "active"
	DisplayEnded    = "ended"
	DisplayArchived = "archived"
)

// DisplayStatus computes the status shown for a competition at the given time.
// Archived wins regardless of deadline; otherwise a passed deadline means ended.
func DisplayStatus(c models.Competition, now time.Time) string {
	if c.Status == models.StatusArchived {
		return DisplayArchived
	}
	if c.Deadline.Before(now) {
		return DisplayEnded
	}
	return DisplayActive
}
