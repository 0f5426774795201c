package domain

import "time"

type AccountScope string

const (
	AccountScopeClub         AccountScope = "CLUB"
	AccountScopeOrganization AccountScope = "ORGANIZATION"
)

type AccountStatus string

const (
	AccountStatusPending AccountStatus = "PENDING"
	AccountStatusActive  AccountStatus = "ACTIVE"
	AccountStatusInvalid AccountStatus = "INVALID"
)

// PaymentAccount holds one merchant credential set. MerchantID and SecretKey
// are stored encrypted; the decrypted values never leave the payment path.
type PaymentAccount struct {
	ID             string
	Scope          AccountScope
	ClubID         *string
	OrganizationID *string
	Provider       string
	MerchantIDEnc  string
	SecretKeyEnc   string
	Status         AccountStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AccountStatusInfo is the non-sensitive projection served by the status
// query: whether the club can take payments, and through which scope.
type AccountStatusInfo struct {
	Configured bool
	Status     AccountStatus
	Scope      AccountScope
	Provider   string
}

type IntentStatus string

const (
	IntentStatusPending IntentStatus = "pending"
	IntentStatusPaid    IntentStatus = "paid"
	IntentStatusFailed  IntentStatus = "failed"
)

// Terminal reports whether the intent has reached a final state.
func (s IntentStatus) Terminal() bool {
	return s == IntentStatusPaid || s == IntentStatusFailed
}

// PaymentIntent is one attempt to collect payment for a booking.
type PaymentIntent struct {
	ID             string
	BookingID      string
	AccountID      string
	Provider       string
	OrderReference string
	AmountCents    int64
	Currency       string
	Status         IntentStatus
	TransactionID  string
	AuthCode       string
	CardPan        string
	CardType       string
	SignatureValid *bool
	CallbackData   []byte // raw callback body as received
	ErrorMessage   string
	CompletedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CreateIntentInput struct {
	UserID   string
	ClubID   string
	CourtID  string
	StartAt  string // RFC 3339
	EndAt    string // RFC 3339
	Provider string
}

type CreateIntentResult struct {
	CheckoutURL     string
	BookingID       string
	PaymentIntentID string
	OrderReference  string
	AmountCents     int64
	Currency        string
}

// BookingStatusView is the polling projection: a booking together with its
// latest payment attempt, if any.
type BookingStatusView struct {
	Booking *Booking
	Intent  *PaymentIntent // nil when no attempt exists
}

// IntentResult carries the outcome of a processed callback into the
// atomic finalize update.
type IntentResult struct {
	Status         IntentStatus
	TransactionID  string
	AuthCode       string
	CardPan        string
	CardType       string
	SignatureValid bool
	CallbackData   []byte
	ErrorMessage   string
}
