package domain

type AvailabilityQuery struct {
	ClubID   string
	Date     string // YYYY-MM-DD
	Start    string // HH:MM
	End      string // HH:MM, alternative to Duration
	Duration int    // minutes
	Sport    string // optional court-type filter
}

// AvailabilityResult lists the courts free for the requested slot. When the
// list is empty, at most one of the alternative fields is populated:
// shorter durations first, other start times only when no shorter duration
// helps.
type AvailabilityResult struct {
	AvailableCourts      []AvailableCourt
	AlternativeDurations []int
	AlternativeTimeSlots []string
}
