package ports

import (
	"context"
	"time"

	"github.com/ihor-metko/RSP-sub004/internal/domain"
	"github.com/ihor-metko/RSP-sub004/internal/gateway"
)

type PaymentAccountRepo interface {
	GetByID(ctx context.Context, id string) (*domain.PaymentAccount, error)
	FindActive(ctx context.Context, scope domain.AccountScope, ownerID, provider string) (*domain.PaymentAccount, error)
	FindStatus(ctx context.Context, scope domain.AccountScope, ownerID string) (*domain.AccountStatusInfo, error)
	ListPending(ctx context.Context) ([]*domain.PaymentAccount, error)
	UpdateStatus(ctx context.Context, id string, status domain.AccountStatus) error
}

type PaymentIntentRepo interface {
	Create(ctx context.Context, pi *domain.PaymentIntent) error
	GetByOrderReference(ctx context.Context, ref string) (*domain.PaymentIntent, error)
	LatestByBooking(ctx context.Context, bookingID string) (*domain.PaymentIntent, error)
	Finalize(ctx context.Context, intentID, bookingID string, res *domain.IntentResult) (bool, error)
	ExpireStale(ctx context.Context, ttl time.Duration) ([]*domain.Booking, error)
}

type PaymentGateway interface {
	CreateInvoice(ctx context.Context, p *gateway.InvoiceParams) (string, error)
	VerifyCredentials(ctx context.Context, creds gateway.Credentials) (bool, error)
}

// CredentialCipher guards merchant credentials at rest.
type CredentialCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(encoded string) (string, error)
}
