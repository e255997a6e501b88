package service

import (
	"context"
	"time"

	"github.com/alexanderramin/effortcal/internal/artifact"
	"github.com/alexanderramin/effortcal/internal/domain"
	"github.com/alexanderramin/effortcal/internal/metrics"
	"github.com/alexanderramin/effortcal/internal/render"
)

type RecordService interface {
	// Log stores one record. A missing ID, CreatedAt or Category is filled in.
	Log(ctx context.Context, r *domain.TimeRecord) error
	// Import stores all records in one transaction or none of them.
	Import(ctx context.Context, records []*domain.TimeRecord) (int, error)
	ListByYear(ctx context.Context, year int) ([]*domain.TimeRecord, error)
	Delete(ctx context.Context, id string) error
}

type CalendarService interface {
	// ResolveYear returns requested when positive, otherwise the current
	// year, or the latest year with data when that is earlier.
	ResolveYear(ctx context.Context, requested int) (int, error)
	Render(ctx context.Context, req RenderRequest) (*RenderResult, error)
	// RenderMany renders each request independently, one artifact per year.
	RenderMany(ctx context.Context, reqs []RenderRequest) ([]*RenderResult, error)
	Summary(ctx context.Context, year int) (*YearSummary, error)
}

// ArtifactWriter persists an encoded figure at path.
type ArtifactWriter interface {
	Write(path string, enc artifact.Encoder) error
}

// RenderRecorder receives render statistics. *metrics.Recorder satisfies it.
type RenderRecorder interface {
	ObserveRender(stats metrics.YearStats, took time.Duration, at time.Time)
	ObserveFailure()
}

type RenderRequest struct {
	// Year 0 means resolve automatically.
	Year int
	// OutPath may contain {year}.
	OutPath string
}

// RenderStats summarizes the data behind one figure.
type RenderStats struct {
	Year       int
	ActiveDays int
	Totals     domain.DayHours
	Max        domain.DayHours
}

type RenderResult struct {
	RenderStats
	OutPath string
	Months  [12]domain.MonthTotal
	Figure  *render.Figure
}

// MonthSummary is one month's per-category hours and days with data.
type MonthSummary struct {
	Month time.Month
	Hours domain.DayHours
	DaysA int
	DaysB int
}

type YearSummary struct {
	Year   int
	Rules  domain.CategoryRules
	Months [12]MonthSummary
	Totals domain.DayHours
}
