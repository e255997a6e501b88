package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alexanderramin/effortcal/internal/aggregate"
	"github.com/alexanderramin/effortcal/internal/artifact"
	"github.com/alexanderramin/effortcal/internal/domain"
	"github.com/alexanderramin/effortcal/internal/metrics"
	"github.com/alexanderramin/effortcal/internal/render"
	"github.com/alexanderramin/effortcal/internal/repository"
)

var (
	ErrNoOutputPath    = errors.New("output path is required")
	ErrDuplicateOutput = errors.New("two renders target the same output file")
)

type calendarService struct {
	records  repository.TimeRecordRepo
	writer   ArtifactWriter
	style    render.Style
	recorder RenderRecorder
	observer UseCaseObserver
	now      func() time.Time
}

// NewCalendarService wires the render pipeline. recorder may be nil.
func NewCalendarService(records repository.TimeRecordRepo, writer ArtifactWriter, style render.Style, recorder RenderRecorder, observers ...UseCaseObserver) CalendarService {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &calendarService{
		records:  records,
		writer:   writer,
		style:    style,
		recorder: recorder,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *calendarService) ResolveYear(ctx context.Context, requested int) (int, error) {
	if requested > 0 {
		return requested, nil
	}
	current := s.now().Year()
	latest, err := s.records.LatestDate(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return current, nil
	}
	if err != nil {
		return 0, fmt.Errorf("resolving year: %w", err)
	}
	if latest.Year() < current {
		return latest.Year(), nil
	}
	return current, nil
}

func (s *calendarService) Render(ctx context.Context, req RenderRequest) (result *RenderResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"requested_year": req.Year}
	defer func() {
		if err != nil {
			s.recorder.ObserveFailure()
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "render-calendar",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if req.OutPath == "" {
		return nil, ErrNoOutputPath
	}
	year, err := s.ResolveYear(ctx, req.Year)
	if err != nil {
		return nil, err
	}
	fields["year"] = year

	records, err := s.records.ListByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("loading %d records: %w", year, err)
	}
	totals := aggregate.Daily(records, year)

	fig, err := render.Compose(totals, s.style)
	if err != nil {
		return nil, fmt.Errorf("composing %d: %w", year, err)
	}

	out := artifact.ExpandPath(req.OutPath, year)
	fields["out"] = out
	if err = s.writer.Write(out, fig); err != nil {
		return nil, err
	}

	result = &RenderResult{
		RenderStats: statsOf(totals),
		OutPath:     out,
		Months:      aggregate.Monthly(totals),
		Figure:      fig,
	}
	fields["active_days"] = result.ActiveDays
	s.recorder.ObserveRender(result.metricsStats(), time.Since(startedAt), s.now())
	return result, nil
}

func (s *calendarService) RenderMany(ctx context.Context, reqs []RenderRequest) ([]*RenderResult, error) {
	resolved := make([]RenderRequest, len(reqs))
	seen := make(map[string]int, len(reqs))
	for i, req := range reqs {
		year, err := s.ResolveYear(ctx, req.Year)
		if err != nil {
			return nil, err
		}
		if req.OutPath == "" {
			return nil, ErrNoOutputPath
		}
		out := artifact.ExpandPath(req.OutPath, year)
		if prev, ok := seen[out]; ok {
			return nil, fmt.Errorf("%s for %d and %d: %w", out, prev, year, ErrDuplicateOutput)
		}
		seen[out] = year
		resolved[i] = RenderRequest{Year: year, OutPath: out}
	}

	results := make([]*RenderResult, len(resolved))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, req := range resolved {
		i, req := i, req
		g.Go(func() error {
			res, err := s.Render(gctx, req)
			if err != nil {
				return fmt.Errorf("rendering %d: %w", req.Year, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *calendarService) Summary(ctx context.Context, year int) (summary *YearSummary, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "year-summary",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"year": year},
		})
	}()

	if year, err = s.ResolveYear(ctx, year); err != nil {
		return nil, err
	}
	rows, err := s.records.SummaryByMonth(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("summarizing %d: %w", year, err)
	}

	summary = &YearSummary{Year: year, Rules: s.style.Rules}
	for i := range summary.Months {
		summary.Months[i].Month = time.January + time.Month(i)
	}
	for _, row := range rows {
		m := &summary.Months[row.Month-1]
		switch row.Category {
		case domain.CategoryA:
			m.Hours.A += row.Hours
			m.DaysA += row.Days
			summary.Totals.A += row.Hours
		case domain.CategoryB:
			m.Hours.B += row.Hours
			m.DaysB += row.Days
			summary.Totals.B += row.Hours
		}
	}
	return summary, nil
}

func statsOf(totals domain.DailyTotals) RenderStats {
	return RenderStats{
		Year:       totals.Year,
		ActiveDays: totals.ActiveDays(),
		Totals:     domain.DayHours{A: totals.Sum(domain.CategoryA), B: totals.Sum(domain.CategoryB)},
		Max:        domain.DayHours{A: totals.Max(domain.CategoryA), B: totals.Max(domain.CategoryB)},
	}
}

func (r *RenderResult) metricsStats() metrics.YearStats {
	stats := metrics.YearStats{
		Year:       r.Year,
		ActiveDays: r.ActiveDays,
		Hours:      make(map[string]float64, len(domain.Categories)),
		MaxHours:   make(map[string]float64, len(domain.Categories)),
	}
	for _, c := range domain.Categories {
		stats.Hours[string(c)] = r.Totals.Of(c)
		stats.MaxHours[string(c)] = r.Max.Of(c)
	}
	return stats
}

type noopRecorder struct{}

func (noopRecorder) ObserveRender(metrics.YearStats, time.Duration, time.Time) {}
func (noopRecorder) ObserveFailure()                                          {}
