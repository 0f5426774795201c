package ports

import (
	"context"
	"time"

	"github.com/ihor-metko/RSP-sub004/internal/domain"
)

type ClubRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Club, error)
	HoursForDate(ctx context.Context, clubID string, date time.Time) (domain.DayHours, error)
}

type CourtRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Court, error)
	ListBookable(ctx context.Context, clubID, sport string) ([]*domain.Court, error)
	RulesForCourts(ctx context.Context, courtIDs []string) (map[string][]domain.PriceRule, error)
}
