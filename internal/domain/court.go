package domain

import "time"

type Court struct {
	ID                string    `json:"id"`
	ClubID            string    `json:"club_id"`
	Name              string    `json:"name"`
	Sport             string    `json:"sport"`
	PricePerHourCents int64     `json:"price_per_hour_cents"`
	Published         bool      `json:"published"`
	Active            bool      `json:"active"`
	CreatedAt         time.Time `json:"created_at"`
}

// PriceRule overrides a court's default hourly rate for a wall-clock window,
// optionally bound to a single weekday (nil = every day).
type PriceRule struct {
	ID                string
	CourtID           string
	Weekday           *int // 0 = Sunday .. 6 = Saturday
	StartMinutes      int
	EndMinutes        int
	PricePerHourCents int64
}

// AvailableCourt is a court that can take the requested slot, with the
// price resolved for that specific date/time/duration.
type AvailableCourt struct {
	Court
	PriceCents int64 `json:"price_cents"`
}
