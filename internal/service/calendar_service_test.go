package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"image/png"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/effortcal/internal/artifact"
	"github.com/alexanderramin/effortcal/internal/domain"
	"github.com/alexanderramin/effortcal/internal/metrics"
	"github.com/alexanderramin/effortcal/internal/render"
	"github.com/alexanderramin/effortcal/internal/repository"
	"github.com/alexanderramin/effortcal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memWriter struct {
	mu    sync.Mutex
	files map[string][]byte
	err   error
}

func (w *memWriter) Write(path string, enc artifact.Encoder) error {
	if w.err != nil {
		return w.err
	}
	var buf bytes.Buffer
	if err := enc.EncodePNG(&buf); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.files == nil {
		w.files = map[string][]byte{}
	}
	w.files[path] = buf.Bytes()
	return nil
}

func (w *memWriter) file(t *testing.T, path string) []byte {
	t.Helper()
	w.mu.Lock()
	defer w.mu.Unlock()
	data, ok := w.files[path]
	require.True(t, ok, "no artifact written at %s", path)
	return data
}

type countingRecorder struct {
	mu        sync.Mutex
	successes []metrics.YearStats
	failures  int
}

func (r *countingRecorder) ObserveRender(stats metrics.YearStats, _ time.Duration, _ time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.successes = append(r.successes, stats)
}

func (r *countingRecorder) ObserveFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures++
}

type calendarFixture struct {
	svc      *calendarService
	db       *sql.DB
	repo     *repository.SQLiteTimeRecordRepo
	writer   *memWriter
	recorder *countingRecorder
	observer *capturingObserver
}

func newCalendarFixture(t *testing.T, now time.Time) *calendarFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTimeRecordRepo(database)
	style := render.DefaultStyle()
	style.Width, style.Height = 480, 300
	f := &calendarFixture{
		db:       database,
		repo:     repo,
		writer:   &memWriter{},
		recorder: &countingRecorder{},
		observer: &capturingObserver{},
	}
	f.svc = NewCalendarService(repo, f.writer, style, f.recorder, f.observer).(*calendarService)
	f.svc.now = func() time.Time { return now }
	return f
}

func (f *calendarFixture) seed(t *testing.T, records ...*domain.TimeRecord) {
	t.Helper()
	for _, r := range records {
		require.NoError(t, f.repo.Create(context.Background(), r))
	}
}

var midYear2026 = time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

func TestCalendarService_ResolveYear(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit year wins", func(t *testing.T) {
		f := newCalendarFixture(t, midYear2026)
		f.seed(t, testutil.NewTestRecord(testutil.Date(2023, time.May, 1), domain.CategoryA, 1))
		year, err := f.svc.ResolveYear(ctx, 2020)
		require.NoError(t, err)
		assert.Equal(t, 2020, year)
	})

	t.Run("empty store uses current year", func(t *testing.T) {
		f := newCalendarFixture(t, midYear2026)
		year, err := f.svc.ResolveYear(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, 2026, year)
	})

	t.Run("latest data year when earlier", func(t *testing.T) {
		f := newCalendarFixture(t, midYear2026)
		f.seed(t,
			testutil.NewTestRecord(testutil.Date(2023, time.May, 1), domain.CategoryA, 1),
			testutil.NewTestRecord(testutil.Date(2024, time.December, 31), domain.CategoryB, 1))
		year, err := f.svc.ResolveYear(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, 2024, year)
	})

	t.Run("current year when data reaches it", func(t *testing.T) {
		f := newCalendarFixture(t, midYear2026)
		f.seed(t, testutil.NewTestRecord(testutil.Date(2026, time.January, 3), domain.CategoryA, 1))
		year, err := f.svc.ResolveYear(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, 2026, year)
	})
}

func TestCalendarService_RejectedInfiniteHoursDoNotFlattenYear(t *testing.T) {
	f := newCalendarFixture(t, midYear2026)
	records := NewRecordService(f.repo, testutil.NewTestUoW(f.db), domain.DefaultCategoryRules())
	ctx := context.Background()

	err := records.Log(ctx, testutil.NewTestRecord(testutil.Date(2024, time.March, 15), domain.CategoryA, math.Inf(1)))
	require.ErrorIs(t, err, domain.ErrNonFiniteHours)
	require.NoError(t, records.Log(ctx, testutil.NewTestRecord(testutil.Date(2024, time.March, 16), domain.CategoryA, 3)))

	res, err := f.svc.Render(ctx, RenderRequest{Year: 2024, OutPath: "effort-{year}.png"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.ActiveDays)
	assert.InDelta(t, 3.0, res.Max.A, 1e-9)
	assert.Equal(t, 3.0, res.Figure.Legends[0].Max)

	cell, ok := res.Figure.Panel(time.March).Cell(16)
	require.True(t, ok)
	assert.InDelta(t, 1.0, cell.IntensityA, 1e-9)
}

func TestCalendarService_RenderSingleRecord(t *testing.T) {
	f := newCalendarFixture(t, midYear2026)
	f.seed(t, testutil.NewTestRecord(testutil.Date(2024, time.March, 15), domain.CategoryA, 4.0))

	res, err := f.svc.Render(context.Background(), RenderRequest{Year: 2024, OutPath: "out/effort-{year}.png"})
	require.NoError(t, err)

	assert.Equal(t, "out/effort-2024.png", res.OutPath)
	assert.Equal(t, 2024, res.Year)
	assert.Equal(t, 1, res.ActiveDays)
	assert.InDelta(t, 4.0, res.Totals.A, 1e-9)
	assert.Zero(t, res.Totals.B)
	assert.InDelta(t, 4.0, res.Months[time.March-1].Hours.A, 1e-9)

	march := res.Figure.Panel(time.March)
	cell, ok := march.Cell(15)
	require.True(t, ok)
	assert.Equal(t, 2, cell.WeekRow)
	assert.Equal(t, 4, cell.WeekdayCol)
	assert.InDelta(t, 1.0, cell.IntensityA, 1e-9)
	assert.True(t, cell.FillA)
	assert.False(t, cell.FillB)
	for _, c := range march.Cells {
		if c.Day != 15 {
			assert.True(t, c.Empty(), "March %d should be empty", c.Day)
		}
	}

	img, err := png.Decode(bytes.NewReader(f.writer.file(t, "out/effort-2024.png")))
	require.NoError(t, err)
	assert.Equal(t, 480, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())

	require.Len(t, f.recorder.successes, 1)
	assert.Equal(t, 1, f.recorder.successes[0].ActiveDays)
	assert.InDelta(t, 4.0, f.recorder.successes[0].MaxHours["manuscript"], 1e-9)

	ev := f.observer.last(t)
	assert.Equal(t, "render-calendar", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, 2024, ev.Fields["year"])
}

func TestCalendarService_RenderIsIdempotent(t *testing.T) {
	f := newCalendarFixture(t, midYear2026)
	f.seed(t,
		testutil.NewTestRecord(testutil.Date(2024, time.January, 1), domain.CategoryA, 2),
		testutil.NewTestRecord(testutil.Date(2024, time.January, 1), domain.CategoryA, 1.5),
		testutil.NewTestRecord(testutil.Date(2024, time.January, 1), domain.CategoryB, 0.5),
		testutil.NewTestRecord(testutil.Date(2024, time.August, 9), domain.CategoryB, 3))
	ctx := context.Background()

	first, err := f.svc.Render(ctx, RenderRequest{Year: 2024, OutPath: "a.png"})
	require.NoError(t, err)
	second, err := f.svc.Render(ctx, RenderRequest{Year: 2024, OutPath: "b.png"})
	require.NoError(t, err)

	assert.Equal(t, f.writer.file(t, "a.png"), f.writer.file(t, "b.png"))
	assert.Equal(t, first.Figure.Panels, second.Figure.Panels)

	jan1, _ := first.Figure.Panel(time.January).Cell(1)
	assert.InDelta(t, 3.5, jan1.Hours.A, 1e-9)
	assert.InDelta(t, 0.5, jan1.Hours.B, 1e-9)
}

func TestCalendarService_RenderEmptyYear(t *testing.T) {
	f := newCalendarFixture(t, midYear2026)

	res, err := f.svc.Render(context.Background(), RenderRequest{OutPath: "empty.png"})
	require.NoError(t, err)
	assert.Equal(t, 2026, res.Year)
	assert.Zero(t, res.ActiveDays)
	for _, p := range res.Figure.Panels {
		for _, c := range p.Cells {
			assert.True(t, c.Empty())
		}
	}
}

func TestCalendarService_RenderFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("missing output path", func(t *testing.T) {
		f := newCalendarFixture(t, midYear2026)
		_, err := f.svc.Render(ctx, RenderRequest{Year: 2024})
		require.ErrorIs(t, err, ErrNoOutputPath)
		assert.Equal(t, 1, f.recorder.failures)
		assert.False(t, f.observer.last(t).Success)
	})

	t.Run("writer error", func(t *testing.T) {
		f := newCalendarFixture(t, midYear2026)
		f.writer.err = errors.New("disk full")
		_, err := f.svc.Render(ctx, RenderRequest{Year: 2024, OutPath: "x.png"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
		assert.Empty(t, f.recorder.successes)
		assert.Equal(t, 1, f.recorder.failures)
	})

	t.Run("unknown palette", func(t *testing.T) {
		f := newCalendarFixture(t, midYear2026)
		f.svc.style.Rules[1].Palette = "Rainbow"
		_, err := f.svc.Render(ctx, RenderRequest{Year: 2024, OutPath: "x.png"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Rainbow")
	})
}

func TestCalendarService_RenderManyWritesOneFilePerYear(t *testing.T) {
	f := newCalendarFixture(t, midYear2026)
	f.seed(t,
		testutil.NewTestRecord(testutil.Date(2022, time.April, 4), domain.CategoryA, 1),
		testutil.NewTestRecord(testutil.Date(2023, time.April, 4), domain.CategoryB, 2),
		testutil.NewTestRecord(testutil.Date(2024, time.April, 4), domain.CategoryA, 3))

	results, err := f.svc.RenderMany(context.Background(), []RenderRequest{
		{Year: 2022, OutPath: "cal-{year}.png"},
		{Year: 2023, OutPath: "cal-{year}.png"},
		{Year: 2024, OutPath: "cal-{year}.png"},
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, year := range []int{2022, 2023, 2024} {
		assert.Equal(t, year, results[i].Year, "results keep request order")
		assert.Equal(t, 1, results[i].ActiveDays)
		f.writer.file(t, artifact.ExpandPath("cal-{year}.png", year))
	}
	assert.Len(t, f.recorder.successes, 3)
}

func TestCalendarService_RenderManyRejectsSharedOutput(t *testing.T) {
	f := newCalendarFixture(t, midYear2026)

	_, err := f.svc.RenderMany(context.Background(), []RenderRequest{
		{Year: 2023, OutPath: "same.png"},
		{Year: 2024, OutPath: "same.png"},
	})
	require.ErrorIs(t, err, ErrDuplicateOutput)
	assert.Empty(t, f.writer.files)
}

func TestCalendarService_Summary(t *testing.T) {
	f := newCalendarFixture(t, midYear2026)
	f.seed(t,
		testutil.NewTestRecord(testutil.Date(2024, time.January, 1), domain.CategoryA, 2),
		testutil.NewTestRecord(testutil.Date(2024, time.January, 1), domain.CategoryA, 1.5),
		testutil.NewTestRecord(testutil.Date(2024, time.January, 9), domain.CategoryA, 1),
		testutil.NewTestRecord(testutil.Date(2024, time.January, 1), domain.CategoryB, 0.5),
		testutil.NewTestRecord(testutil.Date(2024, time.November, 30), domain.CategoryB, 4),
		testutil.NewTestRecord(testutil.Date(2025, time.January, 1), domain.CategoryA, 9))

	sum, err := f.svc.Summary(context.Background(), 2024)
	require.NoError(t, err)
	assert.Equal(t, 2024, sum.Year)

	jan := sum.Months[0]
	assert.Equal(t, time.January, jan.Month)
	assert.InDelta(t, 4.5, jan.Hours.A, 1e-9)
	assert.InDelta(t, 0.5, jan.Hours.B, 1e-9)
	assert.Equal(t, 2, jan.DaysA)
	assert.Equal(t, 1, jan.DaysB)

	assert.InDelta(t, 4.0, sum.Months[time.November-1].Hours.B, 1e-9)
	assert.Equal(t, time.December, sum.Months[11].Month)
	assert.True(t, sum.Months[11].Hours.Empty())

	assert.InDelta(t, 4.5, sum.Totals.A, 1e-9)
	assert.InDelta(t, 4.5, sum.Totals.B, 1e-9)
	assert.Equal(t, "Manuscript Hours", sum.Rules.Rule(domain.CategoryA).Label)
}
