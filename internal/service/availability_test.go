package service

import (
	"context"
	"testing"
	"time"

	"github.com/ihor-metko/RSP-sub004/internal/domain"
	"github.com/ihor-metko/RSP-sub004/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type availabilityFixture struct {
	clubRepo    *mocks.MockClubRepo
	courtRepo   *mocks.MockCourtRepo
	bookingRepo *mocks.MockBookingRepo
	svc         *AvailabilityService
}

func newAvailabilityFixture(t *testing.T) *availabilityFixture {
	t.Helper()
	f := &availabilityFixture{
		clubRepo:    mocks.NewMockClubRepo(t),
		courtRepo:   mocks.NewMockCourtRepo(t),
		bookingRepo: mocks.NewMockBookingRepo(t),
	}
	f.svc = NewAvailabilityService(f.clubRepo, f.courtRepo, f.bookingRepo, newTestLogger(t))
	return f
}

// 08:00–22:00 every day
func openAllWeek() domain.DayHours {
	return domain.DayHours{OpenMinutes: 8 * 60, CloseMinutes: 22 * 60}
}

func testDate(t *testing.T) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", "2026-09-01", time.UTC)
	require.NoError(t, err)
	return d
}

func TestAvailability_Validation(t *testing.T) {
	cases := []struct {
		name string
		q    domain.AvailabilityQuery
	}{
		{"bad date", domain.AvailabilityQuery{Date: "01-09-2026", Start: "10:00", Duration: 60}},
		{"bad start", domain.AvailabilityQuery{Date: "2026-09-01", Start: "25:00", Duration: 60}},
		{"bad end", domain.AvailabilityQuery{Date: "2026-09-01", Start: "10:00", End: "10-30"}},
		{"end before start", domain.AvailabilityQuery{Date: "2026-09-01", Start: "10:00", End: "09:00"}},
		{"no duration", domain.AvailabilityQuery{Date: "2026-09-01", Start: "10:00"}},
		{"negative duration", domain.AvailabilityQuery{Date: "2026-09-01", Start: "10:00", Duration: -30}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newAvailabilityFixture(t)
			tc.q.ClubID = "club-1"

			_, err := f.svc.AvailableCourts(context.Background(), &tc.q)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestAvailability_ClubNotFound(t *testing.T) {
	f := newAvailabilityFixture(t)

	f.clubRepo.EXPECT().GetByID(mock.Anything, "club-1").Return(nil, domain.ErrClubNotFound)

	_, err := f.svc.AvailableCourts(context.Background(), &domain.AvailabilityQuery{
		ClubID: "club-1", Date: "2026-09-01", Start: "10:00", Duration: 60,
	})

	assert.ErrorIs(t, err, domain.ErrClubNotFound)
}

func TestAvailability_OutsideBusinessHours(t *testing.T) {
	f := newAvailabilityFixture(t)

	f.clubRepo.EXPECT().GetByID(mock.Anything, "club-1").Return(&domain.Club{ID: "club-1"}, nil)
	f.clubRepo.EXPECT().HoursForDate(mock.Anything, "club-1", mock.Anything).Return(openAllWeek(), nil)

	// 07:30 при часах 08:00–22:00 — отказ без похода за кортами
	res, err := f.svc.AvailableCourts(context.Background(), &domain.AvailabilityQuery{
		ClubID: "club-1", Date: "2026-09-01", Start: "07:30", Duration: 60,
	})

	require.NoError(t, err)
	assert.Empty(t, res.AvailableCourts)
	assert.Empty(t, res.AlternativeDurations)
	assert.Empty(t, res.AlternativeTimeSlots)
}

func TestAvailability_OpeningBoundaryAccepted(t *testing.T) {
	f := newAvailabilityFixture(t)

	court := &domain.Court{ID: "ct-1", Name: "Court 1", PricePerHourCents: 60000}

	f.clubRepo.EXPECT().GetByID(mock.Anything, "club-1").Return(&domain.Club{ID: "club-1"}, nil)
	f.clubRepo.EXPECT().HoursForDate(mock.Anything, "club-1", mock.Anything).Return(openAllWeek(), nil)
	f.courtRepo.EXPECT().ListBookable(mock.Anything, "club-1", "").Return([]*domain.Court{court}, nil)
	f.bookingRepo.EXPECT().ListForCourtsOnDay(mock.Anything, []string{"ct-1"}, mock.Anything, mock.Anything).
		Return(nil, nil)
	f.courtRepo.EXPECT().RulesForCourts(mock.Anything, []string{"ct-1"}).Return(nil, nil)

	// Старт ровно в открытие проходит
	res, err := f.svc.AvailableCourts(context.Background(), &domain.AvailabilityQuery{
		ClubID: "club-1", Date: "2026-09-01", Start: "08:00", Duration: 60,
	})

	require.NoError(t, err)
	require.Len(t, res.AvailableCourts, 1)
	assert.Equal(t, int64(60000), res.AvailableCourts[0].PriceCents)
}

func TestAvailability_ClosedDay(t *testing.T) {
	f := newAvailabilityFixture(t)

	f.clubRepo.EXPECT().GetByID(mock.Anything, "club-1").Return(&domain.Club{ID: "club-1"}, nil)
	f.clubRepo.EXPECT().HoursForDate(mock.Anything, "club-1", mock.Anything).
		Return(domain.DayHours{Closed: true}, nil)

	res, err := f.svc.AvailableCourts(context.Background(), &domain.AvailabilityQuery{
		ClubID: "club-1", Date: "2026-09-01", Start: "10:00", Duration: 60,
	})

	require.NoError(t, err)
	assert.Empty(t, res.AvailableCourts)
}

func TestAvailability_OverlapFilters(t *testing.T) {
	f := newAvailabilityFixture(t)

	date := testDate(t)
	courts := []*domain.Court{
		{ID: "ct-1", Name: "Court 1", PricePerHourCents: 60000},
		{ID: "ct-2", Name: "Court 2", PricePerHourCents: 70000},
	}
	// ct-1 занят 10:30–11:30, запрос 10:00–11:00 пересекается
	bookings := []*domain.Booking{
		{CourtID: "ct-1", StartTime: date.Add(10*time.Hour + 30*time.Minute), EndTime: date.Add(11*time.Hour + 30*time.Minute)},
	}

	f.clubRepo.EXPECT().GetByID(mock.Anything, "club-1").Return(&domain.Club{ID: "club-1"}, nil)
	f.clubRepo.EXPECT().HoursForDate(mock.Anything, "club-1", mock.Anything).Return(openAllWeek(), nil)
	f.courtRepo.EXPECT().ListBookable(mock.Anything, "club-1", "").Return(courts, nil)
	f.bookingRepo.EXPECT().ListForCourtsOnDay(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(bookings, nil)
	f.courtRepo.EXPECT().RulesForCourts(mock.Anything, []string{"ct-2"}).Return(nil, nil)

	res, err := f.svc.AvailableCourts(context.Background(), &domain.AvailabilityQuery{
		ClubID: "club-1", Date: "2026-09-01", Start: "10:00", Duration: 60,
	})

	require.NoError(t, err)
	require.Len(t, res.AvailableCourts, 1)
	assert.Equal(t, "ct-2", res.AvailableCourts[0].ID)
}

func TestAvailability_BackToBackSlotsDoNotOverlap(t *testing.T) {
	f := newAvailabilityFixture(t)

	date := testDate(t)
	courts := []*domain.Court{{ID: "ct-1", Name: "Court 1", PricePerHourCents: 60000}}
	// Бронь заканчивается ровно в начале запрошенного слота
	bookings := []*domain.Booking{
		{CourtID: "ct-1", StartTime: date.Add(9 * time.Hour), EndTime: date.Add(10 * time.Hour)},
	}

	f.clubRepo.EXPECT().GetByID(mock.Anything, "club-1").Return(&domain.Club{ID: "club-1"}, nil)
	f.clubRepo.EXPECT().HoursForDate(mock.Anything, "club-1", mock.Anything).Return(openAllWeek(), nil)
	f.courtRepo.EXPECT().ListBookable(mock.Anything, "club-1", "").Return(courts, nil)
	f.bookingRepo.EXPECT().ListForCourtsOnDay(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(bookings, nil)
	f.courtRepo.EXPECT().RulesForCourts(mock.Anything, []string{"ct-1"}).Return(nil, nil)

	res, err := f.svc.AvailableCourts(context.Background(), &domain.AvailabilityQuery{
		ClubID: "club-1", Date: "2026-09-01", Start: "10:00", Duration: 60,
	})

	require.NoError(t, err)
	assert.Len(t, res.AvailableCourts, 1)
}

func TestAvailability_PriceRuleApplies(t *testing.T) {
	f := newAvailabilityFixture(t)

	weekday := 2 // 2026-09-01 — вторник
	courts := []*domain.Court{{ID: "ct-1", Name: "Court 1", PricePerHourCents: 60000}}
	rules := map[string][]domain.PriceRule{
		"ct-1": {
			{CourtID: "ct-1", Weekday: &weekday, StartMinutes: 18 * 60, EndMinutes: 22 * 60, PricePerHourCents: 90000},
		},
	}

	f.clubRepo.EXPECT().GetByID(mock.Anything, "club-1").Return(&domain.Club{ID: "club-1"}, nil)
	f.clubRepo.EXPECT().HoursForDate(mock.Anything, "club-1", mock.Anything).Return(openAllWeek(), nil)
	f.courtRepo.EXPECT().ListBookable(mock.Anything, "club-1", "").Return(courts, nil)
	f.bookingRepo.EXPECT().ListForCourtsOnDay(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil)
	f.courtRepo.EXPECT().RulesForCourts(mock.Anything, []string{"ct-1"}).Return(rules, nil)

	// 19:00–20:30 покрыто вечерним правилом: 900.00/ч за 90 минут
	res, err := f.svc.AvailableCourts(context.Background(), &domain.AvailabilityQuery{
		ClubID: "club-1", Date: "2026-09-01", Start: "19:00", Duration: 90,
	})

	require.NoError(t, err)
	require.Len(t, res.AvailableCourts, 1)
	assert.Equal(t, int64(135000), res.AvailableCourts[0].PriceCents)
}

func TestAvailability_PriceRuleLookupFailureDegrades(t *testing.T) {
	f := newAvailabilityFixture(t)

	courts := []*domain.Court{{ID: "ct-1", Name: "Court 1", PricePerHourCents: 60000}}

	f.clubRepo.EXPECT().GetByID(mock.Anything, "club-1").Return(&domain.Club{ID: "club-1"}, nil)
	f.clubRepo.EXPECT().HoursForDate(mock.Anything, "club-1", mock.Anything).Return(openAllWeek(), nil)
	f.courtRepo.EXPECT().ListBookable(mock.Anything, "club-1", "").Return(courts, nil)
	f.bookingRepo.EXPECT().ListForCourtsOnDay(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil)
	f.courtRepo.EXPECT().RulesForCourts(mock.Anything, []string{"ct-1"}).Return(nil, assert.AnError)

	res, err := f.svc.AvailableCourts(context.Background(), &domain.AvailabilityQuery{
		ClubID: "club-1", Date: "2026-09-01", Start: "10:00", Duration: 30,
	})

	// Корт не выпадает, цена — пропорция базовой ставки
	require.NoError(t, err)
	require.Len(t, res.AvailableCourts, 1)
	assert.Equal(t, int64(30000), res.AvailableCourts[0].PriceCents)
}

func TestAvailability_AlternativeDurations(t *testing.T) {
	f := newAvailabilityFixture(t)

	date := testDate(t)
	courts := []*domain.Court{{ID: "ct-1", Name: "Court 1", PricePerHourCents: 60000}}
	// Занято 11:30–12:30: 120 минут с 10:00 не влезают, 90 и короче влезают
	bookings := []*domain.Booking{
		{CourtID: "ct-1", StartTime: date.Add(11*time.Hour + 30*time.Minute), EndTime: date.Add(12*time.Hour + 30*time.Minute)},
	}

	f.clubRepo.EXPECT().GetByID(mock.Anything, "club-1").Return(&domain.Club{ID: "club-1"}, nil)
	f.clubRepo.EXPECT().HoursForDate(mock.Anything, "club-1", mock.Anything).Return(openAllWeek(), nil)
	f.courtRepo.EXPECT().ListBookable(mock.Anything, "club-1", "").Return(courts, nil)
	f.bookingRepo.EXPECT().ListForCourtsOnDay(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(bookings, nil)

	res, err := f.svc.AvailableCourts(context.Background(), &domain.AvailabilityQuery{
		ClubID: "club-1", Date: "2026-09-01", Start: "10:00", Duration: 120,
	})

	require.NoError(t, err)
	assert.Empty(t, res.AvailableCourts)
	assert.Equal(t, []int{90, 60, 30}, res.AlternativeDurations)
	assert.Empty(t, res.AlternativeTimeSlots, "предлагается только один вид альтернатив")
}

func TestAvailability_AlternativeTimeSlots(t *testing.T) {
	f := newAvailabilityFixture(t)

	date := testDate(t)
	courts := []*domain.Court{{ID: "ct-1", Name: "Court 1", PricePerHourCents: 60000}}
	// Весь блок 09:30–11:00 занят: 30 минут с 10:00 не влезают ни в каком
	// усечении, зато сдвинутые старты свободны
	bookings := []*domain.Booking{
		{CourtID: "ct-1", StartTime: date.Add(9*time.Hour + 30*time.Minute), EndTime: date.Add(11 * time.Hour)},
	}

	f.clubRepo.EXPECT().GetByID(mock.Anything, "club-1").Return(&domain.Club{ID: "club-1"}, nil)
	f.clubRepo.EXPECT().HoursForDate(mock.Anything, "club-1", mock.Anything).Return(openAllWeek(), nil)
	f.courtRepo.EXPECT().ListBookable(mock.Anything, "club-1", "").Return(courts, nil)
	f.bookingRepo.EXPECT().ListForCourtsOnDay(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(bookings, nil)

	res, err := f.svc.AvailableCourts(context.Background(), &domain.AvailabilityQuery{
		ClubID: "club-1", Date: "2026-09-01", Start: "10:00", Duration: 30,
	})

	require.NoError(t, err)
	assert.Empty(t, res.AvailableCourts)
	assert.Empty(t, res.AlternativeDurations)
	// Ближайшие к 10:00 первыми, не больше пяти
	assert.Equal(t, []string{"09:00", "11:00", "08:30", "11:30", "08:00"}, res.AlternativeTimeSlots)
}

func TestAvailability_NoCourts(t *testing.T) {
	f := newAvailabilityFixture(t)

	f.clubRepo.EXPECT().GetByID(mock.Anything, "club-1").Return(&domain.Club{ID: "club-1"}, nil)
	f.clubRepo.EXPECT().HoursForDate(mock.Anything, "club-1", mock.Anything).Return(openAllWeek(), nil)
	f.courtRepo.EXPECT().ListBookable(mock.Anything, "club-1", "padel").Return(nil, nil)

	res, err := f.svc.AvailableCourts(context.Background(), &domain.AvailabilityQuery{
		ClubID: "club-1", Date: "2026-09-01", Start: "10:00", Duration: 60, Sport: "padel",
	})

	require.NoError(t, err)
	assert.Empty(t, res.AvailableCourts)
}
