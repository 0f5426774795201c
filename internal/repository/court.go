package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ihor-metko/RSP-sub004/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CourtRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCourtRepo(db *dbpg.DB) *CourtRepository {
	return &CourtRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CourtRepository) GetByID(ctx context.Context, id string) (*domain.Court, error) {
	query := `SELECT id, club_id, name, sport, price_per_hour_cents, published, active, created_at
			  FROM courts
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get court: %w", err)
	}

	var c domain.Court
	if err = row.Scan(
		&c.ID, &c.ClubID, &c.Name, &c.Sport,
		&c.PricePerHourCents, &c.Published, &c.Active, &c.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCourtNotFound
		}
		return nil, fmt.Errorf("scan court: %w", err)
	}

	return &c, nil
}

// ListBookable returns the club's published+active courts, optionally
// filtered by sport.
func (r *CourtRepository) ListBookable(ctx context.Context, clubID, sport string) ([]*domain.Court, error) {
	query := `SELECT id, club_id, name, sport, price_per_hour_cents, published, active, created_at
			  FROM courts
			  WHERE club_id = $1
			    AND published AND active
			    AND ($2 = '' OR sport = $2)
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, clubID, sport)
	if err != nil {
		return nil, fmt.Errorf("list courts: %w", err)
	}
	defer rows.Close()

	var res []*domain.Court
	for rows.Next() {
		var c domain.Court
		if err = rows.Scan(
			&c.ID, &c.ClubID, &c.Name, &c.Sport,
			&c.PricePerHourCents, &c.Published, &c.Active, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan court: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

// RulesForCourts loads the price rules of several courts in one query,
// keyed by court id.
func (r *CourtRepository) RulesForCourts(ctx context.Context, courtIDs []string) (map[string][]domain.PriceRule, error) {
	if len(courtIDs) == 0 {
		return map[string][]domain.PriceRule{}, nil
	}

	query := `SELECT id, court_id, weekday, start_minutes, end_minutes, price_per_hour_cents
			  FROM price_rules
			  WHERE court_id = ANY($1)
			  ORDER BY court_id, start_minutes`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(courtIDs))
	if err != nil {
		return nil, fmt.Errorf("list price rules: %w", err)
	}
	defer rows.Close()

	res := make(map[string][]domain.PriceRule)
	for rows.Next() {
		var pr domain.PriceRule
		var weekday sql.NullInt32
		if err = rows.Scan(
			&pr.ID, &pr.CourtID, &weekday,
			&pr.StartMinutes, &pr.EndMinutes, &pr.PricePerHourCents,
		); err != nil {
			return nil, fmt.Errorf("scan price rule: %w", err)
		}
		if weekday.Valid {
			w := int(weekday.Int32)
			pr.Weekday = &w
		}
		res[pr.CourtID] = append(res[pr.CourtID], pr)
	}

	return res, rows.Err()
}
