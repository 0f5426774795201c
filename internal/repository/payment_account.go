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

type PaymentAccountRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentAccountRepo(db *dbpg.DB) *PaymentAccountRepository {
	return &PaymentAccountRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const accountColumns = `id, scope, club_id, organization_id, provider,
						merchant_id_enc, secret_key_enc, status, created_at, updated_at`

func scanAccount(row interface{ Scan(...any) error }) (*domain.PaymentAccount, error) {
	var a domain.PaymentAccount
	var clubID, orgID sql.NullString
	err := row.Scan(
		&a.ID, &a.Scope, &clubID, &orgID, &a.Provider,
		&a.MerchantIDEnc, &a.SecretKeyEnc, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if clubID.Valid {
		a.ClubID = &clubID.String
	}
	if orgID.Valid {
		a.OrganizationID = &orgID.String
	}
	return &a, nil
}

func (r *PaymentAccountRepository) GetByID(ctx context.Context, id string) (*domain.PaymentAccount, error) {
	query := `SELECT ` + accountColumns + `
			  FROM payment_accounts
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}

	return a, nil
}

// FindActive returns the ACTIVE account for the given scope owner. When
// several match, the most recently updated one wins. provider narrows the
// match when non-empty.
func (r *PaymentAccountRepository) FindActive(ctx context.Context, scope domain.AccountScope, ownerID, provider string) (*domain.PaymentAccount, error) {
	query := `SELECT ` + accountColumns + `
			  FROM payment_accounts
			  WHERE scope = $1
			    AND (($1 = 'CLUB' AND club_id = $2) OR ($1 = 'ORGANIZATION' AND organization_id = $2))
			    AND status = $3
			    AND ($4 = '' OR provider = $4)
			  ORDER BY updated_at DESC
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, scope, ownerID, domain.AccountStatusActive, provider)
	if err != nil {
		return nil, fmt.Errorf("find active account: %w", err)
	}

	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}

	return a, nil
}

// FindStatus is the non-sensitive lookup behind the payment-status query:
// same scope precedence as FindActive but without the credential columns
// and without the ACTIVE filter.
func (r *PaymentAccountRepository) FindStatus(ctx context.Context, scope domain.AccountScope, ownerID string) (*domain.AccountStatusInfo, error) {
	query := `SELECT status, provider
			  FROM payment_accounts
			  WHERE scope = $1
			    AND (($1 = 'CLUB' AND club_id = $2) OR ($1 = 'ORGANIZATION' AND organization_id = $2))
			  ORDER BY (status = $3) DESC, updated_at DESC
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, scope, ownerID, domain.AccountStatusActive)
	if err != nil {
		return nil, fmt.Errorf("find account status: %w", err)
	}

	info := domain.AccountStatusInfo{Configured: true, Scope: scope}
	if err = row.Scan(&info.Status, &info.Provider); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("scan account status: %w", err)
	}

	return &info, nil
}

// ListPending returns accounts awaiting gateway verification.
func (r *PaymentAccountRepository) ListPending(ctx context.Context) ([]*domain.PaymentAccount, error) {
	query := `SELECT ` + accountColumns + `
			  FROM payment_accounts
			  WHERE status = $1
			  ORDER BY updated_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.AccountStatusPending)
	if err != nil {
		return nil, fmt.Errorf("list pending accounts: %w", err)
	}
	defer rows.Close()

	var res []*domain.PaymentAccount
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pending account: %w", err)
		}
		res = append(res, a)
	}

	return res, rows.Err()
}

func (r *PaymentAccountRepository) UpdateStatus(ctx context.Context, id string, status domain.AccountStatus) error {
	query := `UPDATE payment_accounts
			  SET status = $2, updated_at = now()
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("update account status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("account rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}
