package render

import (
	"testing"
	"time"

	"github.com/alexanderramin/effortcal/internal/aggregate"
	"github.com/alexanderramin/effortcal/internal/domain"
	"github.com/alexanderramin/effortcal/internal/palette"
	"github.com/alexanderramin/effortcal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallStyle() Style {
	s := DefaultStyle()
	s.Width = 960
	s.Height = 600
	return s
}

func composeRecords(t *testing.T, year int, records ...*domain.TimeRecord) *Figure {
	t.Helper()
	fig, err := Compose(aggregate.Daily(records, year), smallStyle())
	require.NoError(t, err)
	return fig
}

func TestCompose_SingleRecordEndToEnd(t *testing.T) {
	fig := composeRecords(t, 2024,
		testutil.NewTestRecord(testutil.Date(2024, time.March, 15), domain.CategoryA, 4.0))

	assert.Equal(t, "Daily Writing Effort for 2024", fig.Title)
	march := fig.Panel(time.March)
	assert.Equal(t, "March", march.Title)
	require.Len(t, march.Cells, 31)

	cell, ok := march.Cell(15)
	require.True(t, ok)
	assert.Equal(t, 2, cell.WeekRow)
	assert.Equal(t, 4, cell.WeekdayCol)
	assert.True(t, cell.FillA)
	assert.Equal(t, 1.0, cell.IntensityA)
	assert.Equal(t, palette.MustByName("Blues")(1.0), cell.ColorA)
	assert.False(t, cell.FillB)
	assert.Nil(t, cell.ColorB)

	for _, c := range march.Cells {
		if c.Day == 15 {
			continue
		}
		assert.True(t, c.Empty(), "March %d should be empty", c.Day)
	}
	for _, p := range fig.Panels {
		if p.Month == time.March {
			continue
		}
		for _, c := range p.Cells {
			assert.True(t, c.Empty(), "%s %d should be empty", p.Month, c.Day)
		}
	}
}

func TestCompose_PanelsCoverTheYear(t *testing.T) {
	fig := composeRecords(t, 2024)

	for i, p := range fig.Panels {
		assert.Equal(t, time.January+time.Month(i), p.Month)
	}
	assert.Len(t, fig.Panel(time.February).Cells, 29)
	assert.Len(t, fig.Panel(time.April).Cells, 30)

	_, ok := fig.Panel(time.April).Cell(31)
	assert.False(t, ok, "April has no 31st")
}

func TestCompose_EmptyYearIsRenderable(t *testing.T) {
	fig := composeRecords(t, 2023)

	for _, p := range fig.Panels {
		for _, c := range p.Cells {
			assert.True(t, c.Empty())
			assert.Equal(t, 0.0, c.IntensityA)
			assert.Equal(t, 0.0, c.IntensityB)
		}
	}
	assert.Equal(t, 1.0, fig.Legends[0].Max)
	assert.Equal(t, 1.0, fig.Legends[1].Max)

	img, err := fig.Draw()
	require.NoError(t, err)
	assert.Equal(t, 960, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}

func TestCompose_ZeroVersusTinyHours(t *testing.T) {
	fig := composeRecords(t, 2024,
		testutil.NewTestRecord(testutil.Date(2024, time.May, 2), domain.CategoryA, 0.001),
		testutil.NewTestRecord(testutil.Date(2024, time.May, 3), domain.CategoryB, 8))

	empty, _ := fig.Panel(time.May).Cell(1)
	tiny, _ := fig.Panel(time.May).Cell(2)

	assert.True(t, empty.Empty())
	assert.False(t, tiny.Empty())
	assert.True(t, tiny.FillA)
	assert.False(t, tiny.FillB)
	assert.InDelta(t, 0.001, tiny.IntensityA, 1e-9)
	assert.NotEqual(t, empty, tiny)
}

func TestCompose_CategoriesScaleIndependently(t *testing.T) {
	day := testutil.Date(2024, time.June, 10)
	fig := composeRecords(t, 2024,
		testutil.NewTestRecord(day, domain.CategoryA, 10),
		testutil.NewTestRecord(day, domain.CategoryB, 1),
		testutil.NewTestRecord(testutil.Date(2024, time.June, 11), domain.CategoryA, 5),
		testutil.NewTestRecord(testutil.Date(2024, time.June, 12), domain.CategoryB, 2))

	c10, _ := fig.Panel(time.June).Cell(10)
	c11, _ := fig.Panel(time.June).Cell(11)
	assert.Equal(t, 1.0, c10.IntensityA)
	assert.Equal(t, 0.5, c10.IntensityB)
	assert.Equal(t, 0.5, c11.IntensityA)
	assert.Equal(t, 10.0, fig.Legends[0].Max)
	assert.Equal(t, 2.0, fig.Legends[1].Max)
}

func TestCompose_UsesConfiguredPalettesAndLabels(t *testing.T) {
	style := smallStyle()
	style.Rules[0].Palette = "Oranges"
	style.Rules[1].Label = "Grant Writing"
	day := testutil.Date(2024, time.July, 1)

	fig, err := Compose(aggregate.Daily([]*domain.TimeRecord{
		testutil.NewTestRecord(day, domain.CategoryA, 2),
	}, 2024), style)
	require.NoError(t, err)

	cell, _ := fig.Panel(time.July).Cell(1)
	assert.Equal(t, palette.MustByName("Oranges")(1), cell.ColorA)
	assert.Equal(t, "Manuscript Hours (Orange, lower left)", fig.Legends[0].Label)
	assert.Equal(t, "Grant Writing (Green, upper right)", fig.Legends[1].Label)
}

func TestCompose_DefaultLegendLabelsNameColors(t *testing.T) {
	fig := composeRecords(t, 2024)
	assert.Equal(t, "Manuscript Hours (Blue, lower left)", fig.Legends[0].Label)
	assert.Equal(t, "Grant Hours (Green, upper right)", fig.Legends[1].Label)
}

func TestCompose_Errors(t *testing.T) {
	style := smallStyle()
	style.Rules[1].Palette = "rainbow"
	_, err := Compose(domain.NewDailyTotals(2024), style)
	assert.ErrorIs(t, err, palette.ErrUnknownPalette)

	style = smallStyle()
	style.Width = 0
	_, err = Compose(domain.NewDailyTotals(2024), style)
	assert.Error(t, err)
}

func TestCompose_Idempotent(t *testing.T) {
	records := []*domain.TimeRecord{
		testutil.NewTestRecord(testutil.Date(2024, time.January, 3), domain.CategoryA, 1.25),
		testutil.NewTestRecord(testutil.Date(2024, time.January, 3), domain.CategoryB, 3),
		testutil.NewTestRecord(testutil.Date(2024, time.August, 19), domain.CategoryA, 6),
	}

	first := composeRecords(t, 2024, records...)
	second := composeRecords(t, 2024, records...)

	assert.Equal(t, first.Panels, second.Panels)
	assert.Equal(t, first.Layout, second.Layout)

	img1, err := first.Draw()
	require.NoError(t, err)
	img2, err := second.Draw()
	require.NoError(t, err)
	assert.Equal(t, img1.Bounds(), img2.Bounds())
	assert.Equal(t, img1, img2)
}
