package ports

import (
	"context"
	"time"

	"github.com/ihor-metko/RSP-sub004/internal/domain"
)

type BookingRepo interface {
	CreateIfFree(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListForCourtsOnDay(ctx context.Context, courtIDs []string, dayStart, dayEnd time.Time) ([]*domain.Booking, error)
}
