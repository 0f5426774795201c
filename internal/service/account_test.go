package service

import (
	"context"
	"testing"

	"github.com/ihor-metko/RSP-sub004/internal/domain"
	"github.com/ihor-metko/RSP-sub004/internal/gateway"
	"github.com/ihor-metko/RSP-sub004/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountFixture struct {
	accountRepo *mocks.MockPaymentAccountRepo
	clubRepo    *mocks.MockClubRepo
	gateway     *mocks.MockPaymentGateway
	cipher      *mocks.MockCredentialCipher
	svc         *AccountService
}

func newAccountFixture(t *testing.T) *accountFixture {
	t.Helper()
	f := &accountFixture{
		accountRepo: mocks.NewMockPaymentAccountRepo(t),
		clubRepo:    mocks.NewMockClubRepo(t),
		gateway:     mocks.NewMockPaymentGateway(t),
		cipher:      mocks.NewMockCredentialCipher(t),
	}
	f.svc = NewAccountService(f.accountRepo, f.clubRepo, f.gateway, f.cipher, newTestLogger(t))
	return f
}

func TestAccountService_Resolve_ClubScopeWins(t *testing.T) {
	f := newAccountFixture(t)

	clubAcc := &domain.PaymentAccount{ID: "acc-club", Scope: domain.AccountScopeClub}
	f.accountRepo.EXPECT().
		FindActive(mock.Anything, domain.AccountScopeClub, "club-1", "").
		Return(clubAcc, nil)

	acc, err := f.svc.Resolve(context.Background(), "club-1", "")

	require.NoError(t, err)
	assert.Equal(t, "acc-club", acc.ID)
}

func TestAccountService_Resolve_FallsBackToOrganization(t *testing.T) {
	f := newAccountFixture(t)

	orgAcc := &domain.PaymentAccount{ID: "acc-org", Scope: domain.AccountScopeOrganization}
	f.accountRepo.EXPECT().
		FindActive(mock.Anything, domain.AccountScopeClub, "club-1", "").
		Return(nil, domain.ErrAccountNotFound)
	f.clubRepo.EXPECT().GetByID(mock.Anything, "club-1").
		Return(&domain.Club{ID: "club-1", OrganizationID: "org-1"}, nil)
	f.accountRepo.EXPECT().
		FindActive(mock.Anything, domain.AccountScopeOrganization, "org-1", "").
		Return(orgAcc, nil)

	acc, err := f.svc.Resolve(context.Background(), "club-1", "")

	require.NoError(t, err)
	assert.Equal(t, "acc-org", acc.ID)
}

func TestAccountService_Resolve_NotConfigured(t *testing.T) {
	f := newAccountFixture(t)

	f.accountRepo.EXPECT().
		FindActive(mock.Anything, domain.AccountScopeClub, "club-1", "wayforpay").
		Return(nil, domain.ErrAccountNotFound)
	f.clubRepo.EXPECT().GetByID(mock.Anything, "club-1").
		Return(&domain.Club{ID: "club-1", OrganizationID: "org-1"}, nil)
	f.accountRepo.EXPECT().
		FindActive(mock.Anything, domain.AccountScopeOrganization, "org-1", "wayforpay").
		Return(nil, domain.ErrAccountNotFound)

	_, err := f.svc.Resolve(context.Background(), "club-1", "wayforpay")

	assert.ErrorIs(t, err, domain.ErrPaymentNotConfigured)
}

func TestAccountService_Credentials_DecryptsBoth(t *testing.T) {
	f := newAccountFixture(t)

	acc := &domain.PaymentAccount{MerchantIDEnc: "enc-m", SecretKeyEnc: "enc-s"}
	f.cipher.EXPECT().Decrypt("enc-m").Return("merchant", nil)
	f.cipher.EXPECT().Decrypt("enc-s").Return("secret", nil)

	creds, err := f.svc.Credentials(acc)

	require.NoError(t, err)
	assert.Equal(t, "merchant", creds.MerchantID)
	assert.Equal(t, "secret", creds.SecretKey)
}

func TestAccountService_Status_NotConfiguredIsNotAnError(t *testing.T) {
	f := newAccountFixture(t)

	f.clubRepo.EXPECT().GetByID(mock.Anything, "club-1").
		Return(&domain.Club{ID: "club-1", OrganizationID: "org-1"}, nil)
	f.accountRepo.EXPECT().FindStatus(mock.Anything, domain.AccountScopeClub, "club-1").
		Return(nil, domain.ErrAccountNotFound)
	f.accountRepo.EXPECT().FindStatus(mock.Anything, domain.AccountScopeOrganization, "org-1").
		Return(nil, domain.ErrAccountNotFound)

	info, err := f.svc.Status(context.Background(), "club-1")

	require.NoError(t, err)
	assert.False(t, info.Configured)
}

func TestAccountService_Status_NeverDecrypts(t *testing.T) {
	f := newAccountFixture(t)

	f.clubRepo.EXPECT().GetByID(mock.Anything, "club-1").
		Return(&domain.Club{ID: "club-1", OrganizationID: "org-1"}, nil)
	f.accountRepo.EXPECT().FindStatus(mock.Anything, domain.AccountScopeClub, "club-1").
		Return(&domain.AccountStatusInfo{
			Configured: true,
			Status:     domain.AccountStatusActive,
			Scope:      domain.AccountScopeClub,
			Provider:   "wayforpay",
		}, nil)

	info, err := f.svc.Status(context.Background(), "club-1")

	require.NoError(t, err)
	assert.True(t, info.Configured)
	assert.Equal(t, domain.AccountStatusActive, info.Status)
	f.cipher.AssertNotCalled(t, "Decrypt", mock.Anything)
}

func TestAccountService_Status_ClubNotFound(t *testing.T) {
	f := newAccountFixture(t)

	f.clubRepo.EXPECT().GetByID(mock.Anything, "club-1").Return(nil, domain.ErrClubNotFound)

	_, err := f.svc.Status(context.Background(), "club-1")

	assert.ErrorIs(t, err, domain.ErrClubNotFound)
}

func TestAccountService_VerifyPending_Verdicts(t *testing.T) {
	f := newAccountFixture(t)

	valid := &domain.PaymentAccount{ID: "acc-ok", MerchantIDEnc: "m1", SecretKeyEnc: "s1"}
	invalid := &domain.PaymentAccount{ID: "acc-bad", MerchantIDEnc: "m2", SecretKeyEnc: "s2"}

	f.accountRepo.EXPECT().ListPending(mock.Anything).
		Return([]*domain.PaymentAccount{valid, invalid}, nil)

	f.cipher.EXPECT().Decrypt("m1").Return("merchant-1", nil)
	f.cipher.EXPECT().Decrypt("s1").Return("secret-1", nil)
	f.cipher.EXPECT().Decrypt("m2").Return("merchant-2", nil)
	f.cipher.EXPECT().Decrypt("s2").Return("secret-2", nil)

	f.gateway.EXPECT().VerifyCredentials(mock.Anything, mock.MatchedBy(func(c gateway.Credentials) bool {
		return c.MerchantID == "merchant-1"
	})).Return(true, nil)
	f.gateway.EXPECT().VerifyCredentials(mock.Anything, mock.MatchedBy(func(c gateway.Credentials) bool {
		return c.MerchantID == "merchant-2"
	})).Return(false, nil)

	f.accountRepo.EXPECT().UpdateStatus(mock.Anything, "acc-ok", domain.AccountStatusActive).Return(nil)
	f.accountRepo.EXPECT().UpdateStatus(mock.Anything, "acc-bad", domain.AccountStatusInvalid).Return(nil)

	verified, err := f.svc.VerifyPending(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, verified)
}

func TestAccountService_VerifyPending_TransportErrorLeavesPending(t *testing.T) {
	f := newAccountFixture(t)

	acc := &domain.PaymentAccount{ID: "acc-1", MerchantIDEnc: "m1", SecretKeyEnc: "s1"}
	f.accountRepo.EXPECT().ListPending(mock.Anything).Return([]*domain.PaymentAccount{acc}, nil)
	f.cipher.EXPECT().Decrypt("m1").Return("merchant", nil)
	f.cipher.EXPECT().Decrypt("s1").Return("secret", nil)
	f.gateway.EXPECT().VerifyCredentials(mock.Anything, mock.Anything).Return(false, assert.AnError)

	verified, err := f.svc.VerifyPending(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, verified)
	f.accountRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountService_VerifyPending_UndecryptableGoesInvalid(t *testing.T) {
	f := newAccountFixture(t)

	acc := &domain.PaymentAccount{ID: "acc-1", MerchantIDEnc: "garbage", SecretKeyEnc: "s1"}
	f.accountRepo.EXPECT().ListPending(mock.Anything).Return([]*domain.PaymentAccount{acc}, nil)
	f.cipher.EXPECT().Decrypt("garbage").Return("", assert.AnError)
	f.accountRepo.EXPECT().UpdateStatus(mock.Anything, "acc-1", domain.AccountStatusInvalid).Return(nil)

	verified, err := f.svc.VerifyPending(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, verified)
}
