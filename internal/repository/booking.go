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

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// CreateIfFree inserts the booking unless a non-cancelled booking overlaps
// its [start, end) window. Overlapping rows are locked for the duration of
// the transaction; the exclusion constraint on (court_id, time range)
// backstops races the lock does not cover.
func (r *BookingRepository) CreateIfFree(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Проверяем пересечение слотов с блокировкой строки
	overlapQuery := `SELECT id FROM bookings
					 WHERE court_id = $1
					   AND booking_status <> $2
					   AND start_time < $4
					   AND end_time > $3
					 LIMIT 1
					 FOR UPDATE`

	var takenBy string
	err = tx.QueryRowContext(
		ctx, overlapQuery,
		b.CourtID, domain.BookingStatusCancelled, b.StartTime, b.EndTime,
	).Scan(&takenBy)
	if err == nil {
		return domain.ErrSlotTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("check overlap: %w", err)
	}

	query := `INSERT INTO bookings
				(id, court_id, user_id, start_time, end_time, price_cents,
				 booking_status, payment_status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = tx.ExecContext(
		ctx, query,
		b.ID, b.CourtID, b.UserID, b.StartTime, b.EndTime, b.PriceCents,
		b.BookingStatus, b.PaymentStatus, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) &&
			(pgErr.Code == pgExclusionViolation || pgErr.Code == pgUniqueViolation) {
			return domain.ErrSlotTaken
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT id, court_id, user_id, start_time, end_time, price_cents,
					 booking_status, payment_status, created_at, updated_at
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.Booking
	if err = row.Scan(
		&b.ID, &b.CourtID, &b.UserID, &b.StartTime, &b.EndTime, &b.PriceCents,
		&b.BookingStatus, &b.PaymentStatus, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}

// ListForCourtsOnDay returns non-cancelled bookings of the given courts
// whose start falls within [dayStart, dayEnd).
func (r *BookingRepository) ListForCourtsOnDay(ctx context.Context, courtIDs []string, dayStart, dayEnd time.Time) ([]*domain.Booking, error) {
	if len(courtIDs) == 0 {
		return nil, nil
	}

	query := `SELECT id, court_id, user_id, start_time, end_time, price_cents,
					 booking_status, payment_status, created_at, updated_at
			  FROM bookings
			  WHERE court_id = ANY($1)
			    AND booking_status <> $2
			    AND start_time >= $3 AND start_time < $4`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		pq.Array(courtIDs), domain.BookingStatusCancelled, dayStart, dayEnd,
	)
	if err != nil {
		return nil, fmt.Errorf("list bookings for day: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(
			&b.ID, &b.CourtID, &b.UserID, &b.StartTime, &b.EndTime, &b.PriceCents,
			&b.BookingStatus, &b.PaymentStatus, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}
