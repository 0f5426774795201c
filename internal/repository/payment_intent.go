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

type PaymentIntentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentIntentRepo(db *dbpg.DB) *PaymentIntentRepository {
	return &PaymentIntentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PaymentIntentRepository) Create(ctx context.Context, pi *domain.PaymentIntent) error {
	query := `INSERT INTO payment_intents
				(id, booking_id, account_id, provider, order_reference,
				 amount_cents, currency, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		pi.ID, pi.BookingID, pi.AccountID, pi.Provider, pi.OrderReference,
		pi.AmountCents, pi.Currency, pi.Status, pi.CreatedAt, pi.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment intent: %w", err)
	}

	return nil
}

const intentColumns = `id, booking_id, account_id, provider, order_reference,
					   amount_cents, currency, status, transaction_id, auth_code,
					   card_pan, card_type, signature_valid, callback_data,
					   error_message, completed_at, created_at, updated_at`

func scanIntent(row interface{ Scan(...any) error }) (*domain.PaymentIntent, error) {
	var pi domain.PaymentIntent
	var txID, authCode, cardPan, cardType, errMsg sql.NullString
	var sigValid sql.NullBool
	var callbackData sql.NullString
	var completedAt sql.NullTime

	err := row.Scan(
		&pi.ID, &pi.BookingID, &pi.AccountID, &pi.Provider, &pi.OrderReference,
		&pi.AmountCents, &pi.Currency, &pi.Status, &txID, &authCode,
		&cardPan, &cardType, &sigValid, &callbackData,
		&errMsg, &completedAt, &pi.CreatedAt, &pi.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	pi.TransactionID = txID.String
	pi.AuthCode = authCode.String
	pi.CardPan = cardPan.String
	pi.CardType = cardType.String
	pi.ErrorMessage = errMsg.String
	if sigValid.Valid {
		pi.SignatureValid = &sigValid.Bool
	}
	if callbackData.Valid {
		pi.CallbackData = []byte(callbackData.String)
	}
	if completedAt.Valid {
		t := completedAt.Time
		pi.CompletedAt = &t
	}

	return &pi, nil
}

func (r *PaymentIntentRepository) GetByOrderReference(ctx context.Context, ref string) (*domain.PaymentIntent, error) {
	query := `SELECT ` + intentColumns + `
			  FROM payment_intents
			  WHERE order_reference = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, ref)
	if err != nil {
		return nil, fmt.Errorf("get intent: %w", err)
	}

	pi, err := scanIntent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrIntentNotFound
		}
		return nil, fmt.Errorf("scan intent: %w", err)
	}

	return pi, nil
}

func (r *PaymentIntentRepository) LatestByBooking(ctx context.Context, bookingID string) (*domain.PaymentIntent, error) {
	query := `SELECT ` + intentColumns + `
			  FROM payment_intents
			  WHERE booking_id = $1
			  ORDER BY created_at DESC
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get latest intent: %w", err)
	}

	pi, err := scanIntent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrIntentNotFound
		}
		return nil, fmt.Errorf("scan intent: %w", err)
	}

	return pi, nil
}

// Finalize moves a pending intent to its terminal status and transitions the
// booking in the same transaction. The conditional update makes the intent a
// single-writer row: a second delivery of the same callback finds zero rows
// and reports applied=false.
func (r *PaymentIntentRepository) Finalize(ctx context.Context, intentID, bookingID string, res *domain.IntentResult) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	intentQuery := `UPDATE payment_intents
					SET status = $2, transaction_id = $3, auth_code = $4,
						card_pan = $5, card_type = $6, signature_valid = $7,
						callback_data = $8, error_message = $9,
						completed_at = now(), updated_at = now()
					WHERE id = $1 AND status = $10`

	var callbackData any
	if len(res.CallbackData) > 0 {
		callbackData = string(res.CallbackData)
	}

	execRes, err := tx.ExecContext(
		ctx, intentQuery,
		intentID, res.Status, res.TransactionID, res.AuthCode,
		res.CardPan, res.CardType, res.SignatureValid,
		callbackData, res.ErrorMessage,
		domain.IntentStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("finalize intent: %w", err)
	}

	rows, err := execRes.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("intent rows affected: %w", err)
	}
	if rows == 0 {
		// Уже обработан конкурентной доставкой
		return false, nil
	}

	bookingStatus := domain.BookingStatusCancelled
	paymentStatus := domain.PaymentStatusUnpaid
	if res.Status == domain.IntentStatusPaid {
		bookingStatus = domain.BookingStatusConfirmed
		paymentStatus = domain.PaymentStatusPaid
	}

	bookingQuery := `UPDATE bookings
					 SET booking_status = $2, payment_status = $3, updated_at = now()
					 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, bookingQuery, bookingID, bookingStatus, paymentStatus); err != nil {
		return false, fmt.Errorf("transition booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("commit finalize: %w", err)
	}

	return true, nil
}

// ExpireStale fails pending intents older than ttl and cancels their still
// unpaid bookings, returning the cancelled bookings.
func (r *PaymentIntentRepository) ExpireStale(ctx context.Context, ttl time.Duration) ([]*domain.Booking, error) {
	query := `
		WITH expired AS (
			UPDATE payment_intents pi
			SET status = $4, error_message = 'payment timeout',
				completed_at = now(), updated_at = now()
			FROM bookings b
			WHERE pi.booking_id = b.id
			  AND pi.status = $1
			  AND b.booking_status = $2
			  AND b.payment_status = $3
			  AND pi.created_at + make_interval(secs => $5) < now()
			RETURNING pi.booking_id
		)
		UPDATE bookings bk
		SET booking_status = $6, updated_at = now()
		FROM expired e
		WHERE bk.id = e.booking_id
		RETURNING bk.id, bk.court_id, bk.user_id, bk.start_time, bk.end_time,
				  bk.price_cents, bk.booking_status, bk.payment_status,
				  bk.created_at, bk.updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.IntentStatusPending,
		domain.BookingStatusConfirmed, domain.PaymentStatusUnpaid,
		domain.IntentStatusFailed,
		int64(ttl.Seconds()),
		domain.BookingStatusCancelled,
	)
	if err != nil {
		return nil, fmt.Errorf("expire stale intents: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(
			&b.ID, &b.CourtID, &b.UserID, &b.StartTime, &b.EndTime,
			&b.PriceCents, &b.BookingStatus, &b.PaymentStatus,
			&b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan expired booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}
