package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/effortcal/internal/domain"
)

// MonthCategoryTotal is one row of a per-month, per-category rollup.
type MonthCategoryTotal struct {
	Month    time.Month
	Category domain.Category
	Hours    float64
	Days     int
}

type TimeRecordRepo interface {
	Create(ctx context.Context, r *domain.TimeRecord) error
	GetByID(ctx context.Context, id string) (*domain.TimeRecord, error)
	ListByYear(ctx context.Context, year int) ([]*domain.TimeRecord, error)
	LatestDate(ctx context.Context) (time.Time, error)
	SummaryByMonth(ctx context.Context, year int) ([]MonthCategoryTotal, error)
	Delete(ctx context.Context, id string) error
}
