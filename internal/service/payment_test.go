package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ihor-metko/RSP-sub004/internal/domain"
	"github.com/ihor-metko/RSP-sub004/internal/gateway"
	"github.com/ihor-metko/RSP-sub004/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentFixture struct {
	bookingRepo *mocks.MockBookingRepo
	courtRepo   *mocks.MockCourtRepo
	clubRepo    *mocks.MockClubRepo
	intentRepo  *mocks.MockPaymentIntentRepo
	accountRepo *mocks.MockPaymentAccountRepo
	gateway     *mocks.MockPaymentGateway
	cipher      *mocks.MockCredentialCipher
	notifier    *mocks.MockBookingNotifier
	svc         *PaymentService
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()
	f := &paymentFixture{
		bookingRepo: mocks.NewMockBookingRepo(t),
		courtRepo:   mocks.NewMockCourtRepo(t),
		clubRepo:    mocks.NewMockClubRepo(t),
		intentRepo:  mocks.NewMockPaymentIntentRepo(t),
		accountRepo: mocks.NewMockPaymentAccountRepo(t),
		gateway:     mocks.NewMockPaymentGateway(t),
		cipher:      mocks.NewMockCredentialCipher(t),
		notifier:    mocks.NewMockBookingNotifier(t),
	}
	log := newTestLogger(t)
	accounts := NewAccountService(f.accountRepo, f.clubRepo, f.gateway, f.cipher, log)
	f.svc = NewPaymentService(
		f.bookingRepo, f.courtRepo, f.clubRepo, f.intentRepo, f.accountRepo,
		accounts, f.gateway, f.cipher, f.notifier,
		PaymentConfig{AppBaseURL: "https://book.example.com", DefaultPhone: "0000000000"},
		log,
	)
	return f
}

func validCreateInput() *domain.CreateIntentInput {
	return &domain.CreateIntentInput{
		UserID:  "11111111-1111-1111-1111-111111111111",
		ClubID:  "club-1",
		CourtID: "ct-1",
		StartAt: time.Now().UTC().Add(24 * time.Hour).Format(time.RFC3339),
		EndAt:   time.Now().UTC().Add(25 * time.Hour).Format(time.RFC3339),
	}
}

func (f *paymentFixture) expectResolvedAccount() {
	account := &domain.PaymentAccount{
		ID:            "acc-1",
		Scope:         domain.AccountScopeClub,
		Provider:      "wayforpay",
		MerchantIDEnc: "enc-m",
		SecretKeyEnc:  "enc-s",
		Status:        domain.AccountStatusActive,
	}
	f.accountRepo.EXPECT().
		FindActive(mock.Anything, domain.AccountScopeClub, "club-1", "").
		Return(account, nil)
	f.cipher.EXPECT().Decrypt("enc-m").Return("merchant-1", nil)
	f.cipher.EXPECT().Decrypt("enc-s").Return("secret-1", nil)
}

func TestPaymentService_CreateIntent_Validation(t *testing.T) {
	f := newPaymentFixture(t)

	req := validCreateInput()
	req.StartAt = "tomorrow"
	_, err := f.svc.CreateIntent(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrValidation)

	req = validCreateInput()
	req.EndAt = req.StartAt
	_, err = f.svc.CreateIntent(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrValidation)

	req = validCreateInput()
	req.StartAt = time.Now().UTC().Add(-2 * time.Hour).Format(time.RFC3339)
	req.EndAt = time.Now().UTC().Add(-time.Hour).Format(time.RFC3339)
	_, err = f.svc.CreateIntent(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrBookingInPast)
}

func TestPaymentService_CreateIntent_CourtFromAnotherClub(t *testing.T) {
	f := newPaymentFixture(t)

	f.clubRepo.EXPECT().GetByID(mock.Anything, "club-1").Return(&domain.Club{ID: "club-1"}, nil)
	f.courtRepo.EXPECT().GetByID(mock.Anything, "ct-1").
		Return(&domain.Court{ID: "ct-1", ClubID: "club-other"}, nil)

	_, err := f.svc.CreateIntent(context.Background(), validCreateInput())

	assert.ErrorIs(t, err, domain.ErrCourtNotFound)
}

func TestPaymentService_CreateIntent_Success(t *testing.T) {
	f := newPaymentFixture(t)

	f.clubRepo.EXPECT().GetByID(mock.Anything, "club-1").
		Return(&domain.Club{ID: "club-1", Name: "Padel Hub", Phone: "+380501112233"}, nil)
	f.courtRepo.EXPECT().GetByID(mock.Anything, "ct-1").
		Return(&domain.Court{ID: "ct-1", ClubID: "club-1", Name: "Court 1", PricePerHourCents: 80000}, nil)
	f.expectResolvedAccount()

	var createdBooking *domain.Booking
	f.bookingRepo.EXPECT().CreateIfFree(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, b *domain.Booking) { createdBooking = b }).
		Return(nil)

	var createdIntent *domain.PaymentIntent
	f.intentRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, pi *domain.PaymentIntent) { createdIntent = pi }).
		Return(nil)

	f.gateway.EXPECT().CreateInvoice(mock.Anything, mock.MatchedBy(func(p *gateway.InvoiceParams) bool {
		return p.Credentials.MerchantID == "merchant-1" &&
			p.DomainName == "book.example.com" &&
			p.ProductName == "Padel Hub, Court 1" &&
			p.ClientPhone == "+380501112233" &&
			p.ServiceURL == "https://book.example.com/webhooks/payment-gateway"
	})).Return("https://pay.example.com/xyz", nil)

	res, err := f.svc.CreateIntent(context.Background(), validCreateInput())

	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/xyz", res.CheckoutURL)
	require.NotNil(t, createdBooking)
	assert.Equal(t, domain.BookingStatusConfirmed, createdBooking.BookingStatus)
	assert.Equal(t, domain.PaymentStatusUnpaid, createdBooking.PaymentStatus)
	assert.Equal(t, int64(80000), createdBooking.PriceCents)
	require.NotNil(t, createdIntent)
	assert.Equal(t, createdBooking.ID, createdIntent.BookingID)
	assert.Equal(t, "acc-1", createdIntent.AccountID)
	assert.Equal(t, domain.IntentStatusPending, createdIntent.Status)
	assert.Contains(t, createdIntent.OrderReference, createdBooking.ID)
	assert.Equal(t, res.OrderReference, createdIntent.OrderReference)
	assert.Equal(t, "UAH", res.Currency)
}

func TestPaymentService_CreateIntent_SlotTaken(t *testing.T) {
	f := newPaymentFixture(t)

	f.clubRepo.EXPECT().GetByID(mock.Anything, "club-1").Return(&domain.Club{ID: "club-1"}, nil)
	f.courtRepo.EXPECT().GetByID(mock.Anything, "ct-1").
		Return(&domain.Court{ID: "ct-1", ClubID: "club-1", PricePerHourCents: 80000}, nil)
	f.expectResolvedAccount()
	f.bookingRepo.EXPECT().CreateIfFree(mock.Anything, mock.Anything).Return(domain.ErrSlotTaken)

	_, err := f.svc.CreateIntent(context.Background(), validCreateInput())

	assert.ErrorIs(t, err, domain.ErrSlotTaken)
	f.intentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPaymentService_CreateIntent_GatewayFailureKeepsRows(t *testing.T) {
	f := newPaymentFixture(t)

	f.clubRepo.EXPECT().GetByID(mock.Anything, "club-1").Return(&domain.Club{ID: "club-1", Name: "Padel Hub"}, nil)
	f.courtRepo.EXPECT().GetByID(mock.Anything, "ct-1").
		Return(&domain.Court{ID: "ct-1", ClubID: "club-1", Name: "Court 1", PricePerHourCents: 80000}, nil)
	f.expectResolvedAccount()
	f.bookingRepo.EXPECT().CreateIfFree(mock.Anything, mock.Anything).Return(nil)
	f.intentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.gateway.EXPECT().CreateInvoice(mock.Anything, mock.Anything).Return("", assert.AnError)

	_, err := f.svc.CreateIntent(context.Background(), validCreateInput())

	// Бронь и intent созданы и не откатываются
	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
	f.bookingRepo.AssertCalled(t, "CreateIfFree", mock.Anything, mock.Anything)
	f.intentRepo.AssertCalled(t, "Create", mock.Anything, mock.Anything)
}

func signedCallback(t *testing.T, secret string, mutate func(cb *gateway.Callback)) []byte {
	t.Helper()
	cb := &gateway.Callback{
		MerchantAccount:   "merchant-1",
		OrderReference:    "ref-1",
		Amount:            json.Number("800.00"),
		Currency:          "UAH",
		AuthCode:          "123456",
		CardPan:           "44****1111",
		CardType:          "Visa",
		TransactionStatus: gateway.StatusApproved,
		TransactionID:     "tx-1",
		ReasonCode:        json.Number("1100"),
	}
	if mutate != nil {
		mutate(cb)
	}
	cb.MerchantSignature = gateway.CallbackSignature(secret, cb)

	raw, err := json.Marshal(cb)
	require.NoError(t, err)
	return raw
}

func pendingIntent() *domain.PaymentIntent {
	return &domain.PaymentIntent{
		ID:             "pi-1",
		BookingID:      "b-1",
		AccountID:      "acc-1",
		OrderReference: "ref-1",
		AmountCents:    80000,
		Currency:       "UAH",
		Status:         domain.IntentStatusPending,
	}
}

func (f *paymentFixture) expectCallbackAccount() {
	f.accountRepo.EXPECT().GetByID(mock.Anything, "acc-1").
		Return(&domain.PaymentAccount{ID: "acc-1", SecretKeyEnc: "enc-s"}, nil)
	f.cipher.EXPECT().Decrypt("enc-s").Return("secret-1", nil)
}

func TestPaymentService_ProcessCallback_Approved(t *testing.T) {
	f := newPaymentFixture(t)

	raw := signedCallback(t, "secret-1", nil)

	f.intentRepo.EXPECT().GetByOrderReference(mock.Anything, "ref-1").Return(pendingIntent(), nil)
	f.expectCallbackAccount()

	f.intentRepo.EXPECT().
		Finalize(mock.Anything, "pi-1", "b-1", mock.MatchedBy(func(res *domain.IntentResult) bool {
			return res.Status == domain.IntentStatusPaid &&
				res.SignatureValid &&
				res.TransactionID == "tx-1" &&
				string(res.CallbackData) == string(raw)
		})).
		Return(true, nil)

	booking := &domain.Booking{ID: "b-1", BookingStatus: domain.BookingStatusConfirmed, PaymentStatus: domain.PaymentStatusPaid}
	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b-1").Return(booking, nil)
	f.notifier.EXPECT().NotifyBookingPaid(mock.Anything, booking).Return()

	msg, err := f.svc.ProcessCallback(context.Background(), raw)

	require.NoError(t, err)
	assert.Equal(t, "processed", msg)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestPaymentService_ProcessCallback_InvalidSignature(t *testing.T) {
	f := newPaymentFixture(t)

	// Подпись посчитана чужим секретом, статус при этом Approved
	raw := signedCallback(t, "wrong-secret", nil)

	f.intentRepo.EXPECT().GetByOrderReference(mock.Anything, "ref-1").Return(pendingIntent(), nil)
	f.expectCallbackAccount()

	f.intentRepo.EXPECT().
		Finalize(mock.Anything, "pi-1", "b-1", mock.MatchedBy(func(res *domain.IntentResult) bool {
			return res.Status == domain.IntentStatusFailed &&
				!res.SignatureValid &&
				res.ErrorMessage == "invalid callback signature"
		})).
		Return(true, nil)

	booking := &domain.Booking{ID: "b-1"}
	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b-1").Return(booking, nil)
	f.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, booking, "invalid callback signature").Return()

	msg, err := f.svc.ProcessCallback(context.Background(), raw)

	require.NoError(t, err)
	assert.Equal(t, "processed", msg)

	time.Sleep(50 * time.Millisecond)
}

func TestPaymentService_ProcessCallback_Declined(t *testing.T) {
	f := newPaymentFixture(t)

	raw := signedCallback(t, "secret-1", func(cb *gateway.Callback) {
		cb.TransactionStatus = "Declined"
		cb.ReasonCode = json.Number("1105")
		cb.Reason = "Insufficient funds"
	})

	f.intentRepo.EXPECT().GetByOrderReference(mock.Anything, "ref-1").Return(pendingIntent(), nil)
	f.expectCallbackAccount()

	f.intentRepo.EXPECT().
		Finalize(mock.Anything, "pi-1", "b-1", mock.MatchedBy(func(res *domain.IntentResult) bool {
			return res.Status == domain.IntentStatusFailed &&
				res.SignatureValid &&
				res.ErrorMessage == "payment declined: Declined"
		})).
		Return(true, nil)

	booking := &domain.Booking{ID: "b-1"}
	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b-1").Return(booking, nil)
	f.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, booking, "payment declined: Declined").Return()

	msg, err := f.svc.ProcessCallback(context.Background(), raw)

	require.NoError(t, err)
	assert.Equal(t, "processed", msg)

	time.Sleep(50 * time.Millisecond)
}

func TestPaymentService_ProcessCallback_TerminalShortCircuit(t *testing.T) {
	f := newPaymentFixture(t)

	intent := pendingIntent()
	intent.Status = domain.IntentStatusPaid
	f.intentRepo.EXPECT().GetByOrderReference(mock.Anything, "ref-1").Return(intent, nil)

	msg, err := f.svc.ProcessCallback(context.Background(), signedCallback(t, "secret-1", nil))

	require.NoError(t, err)
	assert.Equal(t, "already processed", msg)
	f.intentRepo.AssertNotCalled(t, "Finalize", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentService_ProcessCallback_ConcurrentDelivery(t *testing.T) {
	f := newPaymentFixture(t)

	raw := signedCallback(t, "secret-1", nil)

	f.intentRepo.EXPECT().GetByOrderReference(mock.Anything, "ref-1").Return(pendingIntent(), nil)
	f.expectCallbackAccount()
	f.intentRepo.EXPECT().Finalize(mock.Anything, "pi-1", "b-1", mock.Anything).Return(false, nil)

	msg, err := f.svc.ProcessCallback(context.Background(), raw)

	require.NoError(t, err)
	assert.Equal(t, "already processed", msg)
	f.notifier.AssertNotCalled(t, "NotifyBookingPaid", mock.Anything, mock.Anything)
}

func TestPaymentService_ProcessCallback_Malformed(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.svc.ProcessCallback(context.Background(), []byte("not json"))
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.svc.ProcessCallback(context.Background(), []byte(`{"amount":"1.00"}`))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPaymentService_ProcessCallback_UnknownReference(t *testing.T) {
	f := newPaymentFixture(t)

	f.intentRepo.EXPECT().GetByOrderReference(mock.Anything, "ref-1").
		Return(nil, domain.ErrIntentNotFound)

	_, err := f.svc.ProcessCallback(context.Background(), signedCallback(t, "secret-1", nil))

	assert.ErrorIs(t, err, domain.ErrIntentNotFound)
}

func TestPaymentService_BookingStatus_Owner(t *testing.T) {
	f := newPaymentFixture(t)

	booking := &domain.Booking{ID: "b-1", UserID: "u-1"}
	intent := &domain.PaymentIntent{ID: "pi-1", BookingID: "b-1", Status: domain.IntentStatusPaid}

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b-1").Return(booking, nil)
	f.intentRepo.EXPECT().LatestByBooking(mock.Anything, "b-1").Return(intent, nil)

	view, err := f.svc.BookingStatus(context.Background(), "b-1", "u-1")

	require.NoError(t, err)
	assert.Equal(t, booking, view.Booking)
	assert.Equal(t, intent, view.Intent)
}

func TestPaymentService_BookingStatus_Forbidden(t *testing.T) {
	f := newPaymentFixture(t)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b-1").
		Return(&domain.Booking{ID: "b-1", UserID: "u-1"}, nil)

	_, err := f.svc.BookingStatus(context.Background(), "b-1", "someone-else")

	assert.ErrorIs(t, err, domain.ErrForbidden)
	f.intentRepo.AssertNotCalled(t, "LatestByBooking", mock.Anything, mock.Anything)
}

func TestPaymentService_BookingStatus_NoIntent(t *testing.T) {
	f := newPaymentFixture(t)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b-1").
		Return(&domain.Booking{ID: "b-1", UserID: "u-1"}, nil)
	f.intentRepo.EXPECT().LatestByBooking(mock.Anything, "b-1").
		Return(nil, domain.ErrIntentNotFound)

	view, err := f.svc.BookingStatus(context.Background(), "b-1", "u-1")

	require.NoError(t, err)
	assert.Nil(t, view.Intent)
}

func TestPaymentService_ExpireStale_Notifies(t *testing.T) {
	f := newPaymentFixture(t)

	cancelled := []*domain.Booking{
		{ID: "b-1", BookingStatus: domain.BookingStatusCancelled},
		{ID: "b-2", BookingStatus: domain.BookingStatusCancelled},
	}
	ttl := 15 * time.Minute

	f.intentRepo.EXPECT().ExpireStale(mock.Anything, ttl).Return(cancelled, nil)
	f.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, cancelled[0], "payment timeout").Return()
	f.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, cancelled[1], "payment timeout").Return()

	got, err := f.svc.ExpireStale(context.Background(), ttl)

	require.NoError(t, err)
	assert.Len(t, got, 2)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}
