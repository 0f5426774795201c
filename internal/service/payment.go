package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/ihor-metko/RSP-sub004/internal/domain"
	"github.com/ihor-metko/RSP-sub004/internal/gateway"
	"github.com/ihor-metko/RSP-sub004/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// PaymentConfig is the static gateway-facing configuration shared by every
// payment attempt.
type PaymentConfig struct {
	AppBaseURL   string
	DefaultPhone string
	Currency     string
}

type PaymentService struct {
	bookingRepo ports.BookingRepo
	courtRepo   ports.CourtRepo
	clubRepo    ports.ClubRepo
	intentRepo  ports.PaymentIntentRepo
	accountRepo ports.PaymentAccountRepo
	accounts    *AccountService
	gateway     ports.PaymentGateway
	cipher      ports.CredentialCipher
	notifier    ports.BookingNotifier
	cfg         PaymentConfig
	domainName  string
	logger      logger.Logger
}

func NewPaymentService(
	bookingRepo ports.BookingRepo,
	courtRepo ports.CourtRepo,
	clubRepo ports.ClubRepo,
	intentRepo ports.PaymentIntentRepo,
	accountRepo ports.PaymentAccountRepo,
	accounts *AccountService,
	gw ports.PaymentGateway,
	cipher ports.CredentialCipher,
	notifier ports.BookingNotifier,
	cfg PaymentConfig,
	logger logger.Logger,
) *PaymentService {
	domainName := cfg.AppBaseURL
	if u, err := url.Parse(cfg.AppBaseURL); err == nil && u.Host != "" {
		domainName = u.Host
	}
	if cfg.Currency == "" {
		cfg.Currency = "UAH"
	}

	return &PaymentService{
		bookingRepo: bookingRepo,
		courtRepo:   courtRepo,
		clubRepo:    clubRepo,
		intentRepo:  intentRepo,
		accountRepo: accountRepo,
		accounts:    accounts,
		gateway:     gw,
		cipher:      cipher,
		notifier:    notifier,
		cfg:         cfg,
		domainName:  domainName,
		logger:      logger,
	}
}

// CreateIntent reserves the slot and starts a checkout: booking and intent
// rows first, then the signed invoice request. A gateway failure leaves the
// created rows pending for later reconciliation, it does not roll them back.
func (s *PaymentService) CreateIntent(ctx context.Context, req *domain.CreateIntentInput) (*domain.CreateIntentResult, error) {
	start, err := time.Parse(time.RFC3339, req.StartAt)
	if err != nil {
		return nil, fmt.Errorf("%w: startAt must be RFC 3339", domain.ErrValidation)
	}
	end, err := time.Parse(time.RFC3339, req.EndAt)
	if err != nil {
		return nil, fmt.Errorf("%w: endAt must be RFC 3339", domain.ErrValidation)
	}
	start, end = start.UTC(), end.UTC()

	if !start.Before(end) {
		return nil, fmt.Errorf("%w: startAt must be before endAt", domain.ErrValidation)
	}
	if !start.After(time.Now().UTC()) {
		return nil, domain.ErrBookingInPast
	}

	club, err := s.clubRepo.GetByID(ctx, req.ClubID)
	if err != nil {
		return nil, fmt.Errorf("check club: %w", err)
	}

	court, err := s.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		return nil, fmt.Errorf("check court: %w", err)
	}
	if court.ClubID != req.ClubID {
		return nil, domain.ErrCourtNotFound
	}

	account, err := s.accounts.Resolve(ctx, req.ClubID, req.Provider)
	if err != nil {
		return nil, fmt.Errorf("resolve payment account: %w", err)
	}
	creds, err := s.accounts.Credentials(account)
	if err != nil {
		return nil, fmt.Errorf("account credentials: %w", err)
	}

	now := time.Now().UTC()
	duration := int(end.Sub(start).Minutes())
	booking := &domain.Booking{
		ID:            uuid.New().String(),
		CourtID:       court.ID,
		UserID:        req.UserID,
		StartTime:     start,
		EndTime:       end,
		PriceCents:    prorate(court.PricePerHourCents, duration),
		BookingStatus: domain.BookingStatusConfirmed,
		PaymentStatus: domain.PaymentStatusUnpaid,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err = s.bookingRepo.CreateIfFree(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	intent := &domain.PaymentIntent{
		ID:             uuid.New().String(),
		BookingID:      booking.ID,
		AccountID:      account.ID,
		Provider:       account.Provider,
		OrderReference: booking.ID + "-" + strconv.FormatInt(now.Unix(), 10),
		AmountCents:    booking.PriceCents,
		Currency:       s.cfg.Currency,
		Status:         domain.IntentStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err = s.intentRepo.Create(ctx, intent); err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	s.logger.Info("payment intent created",
		logger.String("booking_id", booking.ID),
		logger.String("intent_id", intent.ID),
		logger.String("order_reference", intent.OrderReference),
		logger.Int64("amount_cents", intent.AmountCents),
	)

	phone := club.Phone
	if phone == "" {
		phone = s.cfg.DefaultPhone
	}

	checkoutURL, err := s.gateway.CreateInvoice(ctx, &gateway.InvoiceParams{
		Credentials:    creds,
		DomainName:     s.domainName,
		OrderReference: intent.OrderReference,
		OrderDate:      now,
		AmountCents:    intent.AmountCents,
		Currency:       intent.Currency,
		ProductName:    fmt.Sprintf("%s, %s", club.Name, court.Name),
		ClientPhone:    phone,
		ReturnURL:      s.cfg.AppBaseURL + "/bookings/" + booking.ID,
		ServiceURL:     s.cfg.AppBaseURL + "/webhooks/payment-gateway",
	})
	if err != nil {
		// Бронь и intent остаются pending для последующей сверки
		s.logger.Error("gateway invoice failed",
			logger.String("intent_id", intent.ID),
			logger.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %s", domain.ErrGatewayUnavailable, err.Error())
	}

	return &domain.CreateIntentResult{
		CheckoutURL:     checkoutURL,
		BookingID:       booking.ID,
		PaymentIntentID: intent.ID,
		OrderReference:  intent.OrderReference,
		AmountCents:     intent.AmountCents,
		Currency:        intent.Currency,
	}, nil
}

// ProcessCallback finalizes a checkout from the gateway's asynchronous
// result. Safe to call any number of times per intent.
func (s *PaymentService) ProcessCallback(ctx context.Context, raw []byte) (string, error) {
	cb, err := gateway.ParseCallback(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	intent, err := s.intentRepo.GetByOrderReference(ctx, cb.OrderReference)
	if err != nil {
		return "", fmt.Errorf("load intent: %w", err)
	}

	if intent.Status.Terminal() {
		return "already processed", nil
	}

	account, err := s.accountRepo.GetByID(ctx, intent.AccountID)
	if err != nil {
		return "", fmt.Errorf("load account: %w", err)
	}
	secretKey, err := s.cipher.Decrypt(account.SecretKeyEnc)
	if err != nil {
		return "", fmt.Errorf("decrypt secret key: %w", err)
	}

	signatureValid := gateway.VerifyCallback(secretKey, cb)
	approved := signatureValid && cb.Approved()

	result := &domain.IntentResult{
		Status:         domain.IntentStatusFailed,
		TransactionID:  cb.TransactionID,
		AuthCode:       cb.AuthCode,
		CardPan:        cb.CardPan,
		CardType:       cb.CardType,
		SignatureValid: signatureValid,
		CallbackData:   raw,
	}
	switch {
	case approved:
		result.Status = domain.IntentStatusPaid
	case !signatureValid:
		result.ErrorMessage = "invalid callback signature"
		s.logger.Warn("callback signature mismatch",
			logger.String("intent_id", intent.ID),
			logger.String("account_id", account.ID),
			logger.String("order_reference", cb.OrderReference),
		)
	default:
		result.ErrorMessage = fmt.Sprintf("payment declined: %s", cb.TransactionStatus)
		s.logger.Info("payment declined",
			logger.String("intent_id", intent.ID),
			logger.String("transaction_status", cb.TransactionStatus),
			logger.String("reason", cb.Reason),
		)
	}

	applied, err := s.intentRepo.Finalize(ctx, intent.ID, intent.BookingID, result)
	if err != nil {
		return "", fmt.Errorf("finalize intent: %w", err)
	}
	if !applied {
		// Конкурентная доставка успела первой
		return "already processed", nil
	}

	s.logger.Info("payment intent finalized",
		logger.String("intent_id", intent.ID),
		logger.String("booking_id", intent.BookingID),
		logger.String("status", string(result.Status)),
	)

	if booking, err := s.bookingRepo.GetByID(ctx, intent.BookingID); err == nil {
		if result.Status == domain.IntentStatusPaid {
			go s.notifier.NotifyBookingPaid(context.WithoutCancel(ctx), booking)
		} else {
			go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), booking, result.ErrorMessage)
		}
	} else {
		s.logger.Error("load booking for notification",
			logger.String("booking_id", intent.BookingID),
			logger.String("error", err.Error()),
		)
	}

	return "processed", nil
}

// BookingStatus is the polling projection: booking plus its latest payment
// attempt, scoped to the owner.
func (s *PaymentService) BookingStatus(ctx context.Context, bookingID, userID string) (*domain.BookingStatusView, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking.UserID != userID {
		return nil, domain.ErrForbidden
	}

	intent, err := s.intentRepo.LatestByBooking(ctx, bookingID)
	if err != nil {
		if !errors.Is(err, domain.ErrIntentNotFound) {
			return nil, fmt.Errorf("get latest intent: %w", err)
		}
		intent = nil
	}

	return &domain.BookingStatusView{Booking: booking, Intent: intent}, nil
}

// ExpireStale cancels bookings whose payment window ran out.
func (s *PaymentService) ExpireStale(ctx context.Context, ttl time.Duration) ([]*domain.Booking, error) {
	cancelled, err := s.intentRepo.ExpireStale(ctx, ttl)
	if err != nil {
		return nil, fmt.Errorf("expire stale: %w", err)
	}

	if len(cancelled) > 0 {
		s.logger.Info("stale unpaid bookings cancelled",
			logger.Int("count", len(cancelled)),
		)
		go func(ctx context.Context, bookings []*domain.Booking) {
			for _, b := range bookings {
				s.notifier.NotifyBookingCancelled(ctx, b, "payment timeout")
			}
		}(context.WithoutCancel(ctx), cancelled)
	}

	return cancelled, nil
}
