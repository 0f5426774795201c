package domain

import "time"

type Club struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	CreatedAt      time.Time `json:"created_at"`
}

// DayHours is the resolved business-hour window for one calendar day,
// after date-specific overrides have been applied.
type DayHours struct {
	OpenMinutes  int  // minutes from midnight, inclusive
	CloseMinutes int  // minutes from midnight, exclusive
	Closed       bool // full closure for the day
}

// Contains reports whether a slot starting at startMinutes (from midnight)
// with the given duration fits entirely inside the window.
func (h DayHours) Contains(startMinutes, durationMinutes int) bool {
	if h.Closed {
		return false
	}
	return startMinutes >= h.OpenMinutes && startMinutes+durationMinutes <= h.CloseMinutes
}
