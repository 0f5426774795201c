package ports

import (
	"context"

	"github.com/ihor-metko/RSP-sub004/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingPaid(ctx context.Context, b *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, b *domain.Booking, reason string)
}
