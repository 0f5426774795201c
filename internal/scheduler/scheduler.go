package scheduler

import (
	"context"
	"time"

	"github.com/ihor-metko/RSP-sub004/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingExpirer interface {
	ExpireStale(ctx context.Context, ttl time.Duration) ([]*domain.Booking, error)
}

type accountVerifier interface {
	VerifyPending(ctx context.Context) (int, error)
}

type Scheduler struct {
	payments   bookingExpirer
	accounts   accountVerifier
	interval   time.Duration
	paymentTTL time.Duration
	logger     logger.Logger
}

func New(
	payments bookingExpirer,
	accounts accountVerifier,
	interval time.Duration,
	paymentTTL time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		payments:   payments,
		accounts:   accounts,
		interval:   interval,
		paymentTTL: paymentTTL,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.Duration("payment_ttl", s.paymentTTL),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	cancelled, err := s.payments.ExpireStale(ctx, s.paymentTTL)
	if err != nil {
		s.logger.Error("failed to expire stale bookings",
			logger.String("error", err.Error()),
		)
	}
	for _, b := range cancelled {
		s.logger.Info("booking expired",
			logger.String("booking_id", b.ID),
			logger.String("user_id", b.UserID),
			logger.String("court_id", b.CourtID),
		)
	}

	if _, err := s.accounts.VerifyPending(ctx); err != nil {
		s.logger.Error("failed to verify pending accounts",
			logger.String("error", err.Error()),
		)
	}
}
