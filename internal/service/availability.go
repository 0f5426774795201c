package service

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/ihor-metko/RSP-sub004/internal/domain"
	"github.com/ihor-metko/RSP-sub004/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// standardDurations are the bookable slot lengths in minutes, longest first.
// Shorter-duration fallback suggestions walk this set.
var standardDurations = []int{180, 120, 90, 60, 30}

const (
	altTimeStepMinutes   = 30
	altTimeWindowMinutes = 120
	maxAltTimeSlots      = 5
)

type AvailabilityService struct {
	clubRepo    ports.ClubRepo
	courtRepo   ports.CourtRepo
	bookingRepo ports.BookingRepo
	logger      logger.Logger
}

func NewAvailabilityService(
	clubRepo ports.ClubRepo,
	courtRepo ports.CourtRepo,
	bookingRepo ports.BookingRepo,
	logger logger.Logger,
) *AvailabilityService {
	return &AvailabilityService{
		clubRepo:    clubRepo,
		courtRepo:   courtRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

func (s *AvailabilityService) AvailableCourts(ctx context.Context, q *domain.AvailabilityQuery) (*domain.AvailabilityResult, error) {
	date, startMinutes, duration, err := parseSlot(q)
	if err != nil {
		return nil, err
	}

	if _, err = s.clubRepo.GetByID(ctx, q.ClubID); err != nil {
		return nil, fmt.Errorf("check club: %w", err)
	}

	hours, err := s.clubRepo.HoursForDate(ctx, q.ClubID, date)
	if err != nil {
		return nil, fmt.Errorf("get business hours: %w", err)
	}

	// Слот вне рабочих часов — пустой результат без запросов по кортам
	if !hours.Contains(startMinutes, duration) {
		return &domain.AvailabilityResult{}, nil
	}

	courts, err := s.courtRepo.ListBookable(ctx, q.ClubID, q.Sport)
	if err != nil {
		return nil, fmt.Errorf("list courts: %w", err)
	}
	if len(courts) == 0 {
		return &domain.AvailabilityResult{}, nil
	}

	courtIDs := make([]string, len(courts))
	for i, c := range courts {
		courtIDs[i] = c.ID
	}

	dayStart := date
	bookings, err := s.bookingRepo.ListForCourtsOnDay(ctx, courtIDs, dayStart, dayStart.Add(24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	free := freeCourts(courts, bookings, slotInstant(date, startMinutes), slotInstant(date, startMinutes+duration))
	if len(free) > 0 {
		priced, err := s.priceCourts(ctx, free, date, startMinutes, duration)
		if err != nil {
			return nil, err
		}
		return &domain.AvailabilityResult{AvailableCourts: priced}, nil
	}

	// Ничего не свободно: сначала более короткие длительности, потом
	// альтернативное время — но не то и другое сразу
	altDurations := s.alternativeDurations(courts, bookings, date, hours, startMinutes, duration)
	if len(altDurations) > 0 {
		return &domain.AvailabilityResult{AlternativeDurations: altDurations}, nil
	}

	altSlots := s.alternativeTimeSlots(courts, bookings, date, hours, startMinutes, duration)
	return &domain.AvailabilityResult{AlternativeTimeSlots: altSlots}, nil
}

func parseSlot(q *domain.AvailabilityQuery) (date time.Time, startMinutes, duration int, err error) {
	if !dateRe.MatchString(q.Date) {
		return date, 0, 0, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)
	}
	date, err = time.ParseInLocation("2006-01-02", q.Date, time.UTC)
	if err != nil {
		return date, 0, 0, fmt.Errorf("%w: invalid date", domain.ErrValidation)
	}

	if !timeRe.MatchString(q.Start) {
		return date, 0, 0, fmt.Errorf("%w: start must be HH:MM", domain.ErrValidation)
	}
	startMinutes = clockToMinutes(q.Start)

	switch {
	case q.End != "":
		if !timeRe.MatchString(q.End) {
			return date, 0, 0, fmt.Errorf("%w: end must be HH:MM", domain.ErrValidation)
		}
		duration = clockToMinutes(q.End) - startMinutes
		if duration <= 0 {
			return date, 0, 0, fmt.Errorf("%w: end must be after start", domain.ErrValidation)
		}
	case q.Duration > 0:
		duration = q.Duration
	default:
		return date, 0, 0, fmt.Errorf("%w: duration must be a positive number of minutes", domain.ErrValidation)
	}

	return date, startMinutes, duration, nil
}

func clockToMinutes(clock string) int {
	h := int(clock[0]-'0')*10 + int(clock[1]-'0')
	m := int(clock[3]-'0')*10 + int(clock[4]-'0')
	return h*60 + m
}

func minutesToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func slotInstant(date time.Time, minutes int) time.Time {
	return date.Add(time.Duration(minutes) * time.Minute)
}

func freeCourts(courts []*domain.Court, bookings []*domain.Booking, slotStart, slotEnd time.Time) []*domain.Court {
	var free []*domain.Court
	for _, c := range courts {
		taken := false
		for _, b := range bookings {
			if b.CourtID == c.ID && domain.Overlaps(b.StartTime, b.EndTime, slotStart, slotEnd) {
				taken = true
				break
			}
		}
		if !taken {
			free = append(free, c)
		}
	}
	return free
}

// priceCourts resolves the price for each free court. A failed rule lookup
// must not remove a court, so it degrades to the prorated default rate.
func (s *AvailabilityService) priceCourts(ctx context.Context, courts []*domain.Court, date time.Time, startMinutes, duration int) ([]domain.AvailableCourt, error) {
	ids := make([]string, len(courts))
	for i, c := range courts {
		ids[i] = c.ID
	}

	rules, err := s.courtRepo.RulesForCourts(ctx, ids)
	if err != nil {
		s.logger.Warn("price rule lookup failed, using default rates",
			logger.String("error", err.Error()),
		)
		rules = nil
	}

	weekday := int(date.Weekday())
	res := make([]domain.AvailableCourt, 0, len(courts))
	for _, c := range courts {
		res = append(res, domain.AvailableCourt{
			Court:      *c,
			PriceCents: resolvePrice(c, rules[c.ID], weekday, startMinutes, duration),
		})
	}

	return res, nil
}

// resolvePrice picks the first rule covering the whole slot on the right
// weekday; otherwise the slot is a linear prorate of the default hourly rate.
func resolvePrice(c *domain.Court, rules []domain.PriceRule, weekday, startMinutes, duration int) int64 {
	for _, r := range rules {
		if r.Weekday != nil && *r.Weekday != weekday {
			continue
		}
		if startMinutes >= r.StartMinutes && startMinutes+duration <= r.EndMinutes {
			return prorate(r.PricePerHourCents, duration)
		}
	}
	return prorate(c.PricePerHourCents, duration)
}

func prorate(perHourCents int64, durationMinutes int) int64 {
	return perHourCents * int64(durationMinutes) / 60
}

// alternativeDurations suggests shorter standard durations at the same start
// time, keeping the end-of-day guard.
func (s *AvailabilityService) alternativeDurations(courts []*domain.Court, bookings []*domain.Booking, date time.Time, hours domain.DayHours, startMinutes, duration int) []int {
	var res []int
	for _, d := range standardDurations {
		if d >= duration {
			continue
		}
		if !hours.Contains(startMinutes, d) {
			continue
		}
		free := freeCourts(courts, bookings, slotInstant(date, startMinutes), slotInstant(date, startMinutes+d))
		if len(free) > 0 {
			res = append(res, d)
		}
	}
	return res
}

// alternativeTimeSlots scans start times in 30-minute steps within ±2 hours
// of the requested start, keeping the requested duration, and returns up to 5
// candidates sorted by distance from the original start, nearest first.
func (s *AvailabilityService) alternativeTimeSlots(courts []*domain.Court, bookings []*domain.Booking, date time.Time, hours domain.DayHours, startMinutes, duration int) []string {
	type candidate struct {
		start    int
		distance int
	}

	var found []candidate
	for offset := -altTimeWindowMinutes; offset <= altTimeWindowMinutes; offset += altTimeStepMinutes {
		if offset == 0 {
			continue
		}
		start := startMinutes + offset
		if start < 0 || !hours.Contains(start, duration) {
			continue
		}
		free := freeCourts(courts, bookings, slotInstant(date, start), slotInstant(date, start+duration))
		if len(free) == 0 {
			continue
		}
		d := offset
		if d < 0 {
			d = -d
		}
		found = append(found, candidate{start: start, distance: d})
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].distance < found[j].distance
	})

	if len(found) > maxAltTimeSlots {
		found = found[:maxAltTimeSlots]
	}

	res := make([]string, 0, len(found))
	for _, c := range found {
		res = append(res, minutesToClock(c.start))
	}
	return res
}
