package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ihor-metko/RSP-sub004/internal/domain"
	"github.com/ihor-metko/RSP-sub004/internal/gateway"
	"github.com/ihor-metko/RSP-sub004/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type AccountService struct {
	accountRepo ports.PaymentAccountRepo
	clubRepo    ports.ClubRepo
	gateway     ports.PaymentGateway
	cipher      ports.CredentialCipher
	logger      logger.Logger
}

func NewAccountService(
	accountRepo ports.PaymentAccountRepo,
	clubRepo ports.ClubRepo,
	gw ports.PaymentGateway,
	cipher ports.CredentialCipher,
	logger logger.Logger,
) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		clubRepo:    clubRepo,
		gateway:     gw,
		cipher:      cipher,
		logger:      logger,
	}
}

// Resolve finds the merchant account that should be charged for a club:
// CLUB scope first, then the owning organization. No usable account is a
// business state, reported as ErrPaymentNotConfigured.
func (s *AccountService) Resolve(ctx context.Context, clubID, provider string) (*domain.PaymentAccount, error) {
	acc, err := s.accountRepo.FindActive(ctx, domain.AccountScopeClub, clubID, provider)
	if err == nil {
		return acc, nil
	}
	if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, fmt.Errorf("find club account: %w", err)
	}

	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("get club: %w", err)
	}

	acc, err = s.accountRepo.FindActive(ctx, domain.AccountScopeOrganization, club.OrganizationID, provider)
	if err == nil {
		return acc, nil
	}
	if errors.Is(err, domain.ErrAccountNotFound) {
		return nil, domain.ErrPaymentNotConfigured
	}
	return nil, fmt.Errorf("find organization account: %w", err)
}

// Credentials decrypts the merchant credentials of a resolved account.
// Only the payment path calls this; status queries never decrypt.
func (s *AccountService) Credentials(acc *domain.PaymentAccount) (gateway.Credentials, error) {
	merchantID, err := s.cipher.Decrypt(acc.MerchantIDEnc)
	if err != nil {
		return gateway.Credentials{}, fmt.Errorf("decrypt merchant id: %w", err)
	}
	secretKey, err := s.cipher.Decrypt(acc.SecretKeyEnc)
	if err != nil {
		return gateway.Credentials{}, fmt.Errorf("decrypt secret key: %w", err)
	}
	return gateway.Credentials{MerchantID: merchantID, SecretKey: secretKey}, nil
}

// Status runs the same club-then-organization lookup over status fields
// only. "Not configured" is a regular answer, not an error.
func (s *AccountService) Status(ctx context.Context, clubID string) (*domain.AccountStatusInfo, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("get club: %w", err)
	}

	info, err := s.accountRepo.FindStatus(ctx, domain.AccountScopeClub, clubID)
	if err == nil {
		return info, nil
	}
	if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, fmt.Errorf("club account status: %w", err)
	}

	info, err = s.accountRepo.FindStatus(ctx, domain.AccountScopeOrganization, club.OrganizationID)
	if err == nil {
		return info, nil
	}
	if errors.Is(err, domain.ErrAccountNotFound) {
		return &domain.AccountStatusInfo{Configured: false}, nil
	}
	return nil, fmt.Errorf("organization account status: %w", err)
}

// VerifyPending probes the gateway for each PENDING account and moves it to
// ACTIVE or INVALID. Transport errors leave the account PENDING for the next
// scheduler tick. Returns the number of accounts that reached a verdict.
func (s *AccountService) VerifyPending(ctx context.Context) (int, error) {
	pending, err := s.accountRepo.ListPending(ctx)
	if err != nil {
		return 0, fmt.Errorf("list pending accounts: %w", err)
	}

	verified := 0
	for _, acc := range pending {
		creds, err := s.Credentials(acc)
		if err != nil {
			s.logger.Error("cannot decrypt pending account",
				logger.String("account_id", acc.ID),
				logger.String("error", err.Error()),
			)
			if err = s.accountRepo.UpdateStatus(ctx, acc.ID, domain.AccountStatusInvalid); err != nil {
				s.logger.Error("mark account invalid",
					logger.String("account_id", acc.ID),
					logger.String("error", err.Error()),
				)
			}
			continue
		}

		valid, err := s.gateway.VerifyCredentials(ctx, creds)
		if err != nil {
			s.logger.Warn("account verification unavailable, will retry",
				logger.String("account_id", acc.ID),
				logger.String("error", err.Error()),
			)
			continue
		}

		status := domain.AccountStatusInvalid
		if valid {
			status = domain.AccountStatusActive
		}
		if err = s.accountRepo.UpdateStatus(ctx, acc.ID, status); err != nil {
			s.logger.Error("update account status",
				logger.String("account_id", acc.ID),
				logger.String("error", err.Error()),
			)
			continue
		}

		s.logger.Info("payment account verified",
			logger.String("account_id", acc.ID),
			logger.String("status", string(status)),
		)
		verified++
	}

	return verified, nil
}
