package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ihor-metko/RSP-sub004/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ClubRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewClubRepo(db *dbpg.DB) *ClubRepository {
	return &ClubRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ClubRepository) GetByID(ctx context.Context, id string) (*domain.Club, error) {
	query := `SELECT id, organization_id, name, phone, created_at
			  FROM clubs
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get club: %w", err)
	}

	var c domain.Club
	if err = row.Scan(&c.ID, &c.OrganizationID, &c.Name, &c.Phone, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClubNotFound
		}
		return nil, fmt.Errorf("scan club: %w", err)
	}

	return &c, nil
}

// HoursForDate resolves the club's business hours for one calendar day:
// a date-specific override wins over the weekly schedule; no row at all
// means the club is closed that day.
func (r *ClubRepository) HoursForDate(ctx context.Context, clubID string, date time.Time) (domain.DayHours, error) {
	overrideQuery := `SELECT open_minutes, close_minutes, closed
					  FROM club_hour_overrides
					  WHERE club_id = $1 AND date = $2::date`

	var h domain.DayHours
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, overrideQuery, clubID, date.Format("2006-01-02"))
	if err != nil {
		return h, fmt.Errorf("get hour override: %w", err)
	}

	err = row.Scan(&h.OpenMinutes, &h.CloseMinutes, &h.Closed)
	if err == nil {
		return h, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return h, fmt.Errorf("scan hour override: %w", err)
	}

	weeklyQuery := `SELECT open_minutes, close_minutes, closed
					FROM club_hours
					WHERE club_id = $1 AND weekday = $2`

	row, err = r.db.QueryRowWithRetry(ctx, r.strategy, weeklyQuery, clubID, int(date.Weekday()))
	if err != nil {
		return h, fmt.Errorf("get weekly hours: %w", err)
	}

	if err = row.Scan(&h.OpenMinutes, &h.CloseMinutes, &h.Closed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DayHours{Closed: true}, nil
		}
		return h, fmt.Errorf("scan weekly hours: %w", err)
	}

	return h, nil
}
