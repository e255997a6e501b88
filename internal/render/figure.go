// Package render composes a year of daily category totals into a calendar
// figure: twelve month panels of diagonally split day cells plus one legend
// per category.
package render

import (
	"fmt"
	"image/color"
	"time"

	"github.com/alexanderramin/effortcal/internal/calendar"
	"github.com/alexanderramin/effortcal/internal/domain"
	"github.com/alexanderramin/effortcal/internal/palette"
)

// Style controls the size and wording of a figure.
type Style struct {
	Width  int
	Height int
	// TitleFormat receives the year, e.g. "Daily Writing Effort for %d".
	TitleFormat string
	Rules       domain.CategoryRules
}

// DefaultStyle matches a 16x10 inch figure at 300 dpi.
func DefaultStyle() Style {
	return Style{
		Width:       4800,
		Height:      3000,
		TitleFormat: "Daily Writing Effort for %d",
		Rules:       domain.DefaultCategoryRules(),
	}
}

// CellState is everything needed to draw one day.
type CellState struct {
	calendar.GridCell
	Hours      domain.DayHours
	IntensityA float64
	IntensityB float64
	// FillA and FillB gate the triangles on raw hours, so a tiny positive
	// value still gets a (pale) fill while zero gets none.
	FillA  bool
	FillB  bool
	ColorA color.Color
	ColorB color.Color
}

// Empty reports whether the cell is drawn with background, label and
// diagonal only.
func (c CellState) Empty() bool {
	return !c.FillA && !c.FillB
}

// MonthPanel is the day grid of one month.
type MonthPanel struct {
	Month time.Month
	Title string
	Cells []CellState
}

// Cell returns the state of day, or false when the month has no such day.
func (p MonthPanel) Cell(day int) (CellState, bool) {
	if day < 1 || day > len(p.Cells) {
		return CellState{}, false
	}
	return p.Cells[day-1], true
}

// Legend describes one category's color bar.
type Legend struct {
	Category domain.Category
	Label    string
	Min      float64
	Max      float64
	Scale    palette.Scale
}

// Figure is a composed, not yet rasterized, calendar for one year.
type Figure struct {
	Year    int
	Title   string
	Panels  [12]MonthPanel
	Legends [2]Legend
	Layout  Layout
}

// Compose lays out totals as a figure. An empty DailyTotals yields a valid
// calendar with no filled cells.
func Compose(totals domain.DailyTotals, style Style) (*Figure, error) {
	if style.Width <= 0 || style.Height <= 0 {
		return nil, fmt.Errorf("invalid figure size %dx%d", style.Width, style.Height)
	}

	ruleA := style.Rules.Rule(domain.CategoryA)
	ruleB := style.Rules.Rule(domain.CategoryB)
	scaleA, err := palette.ByName(ruleA.Palette)
	if err != nil {
		return nil, fmt.Errorf("category %s: %w", ruleA.Category, err)
	}
	scaleB, err := palette.ByName(ruleB.Palette)
	if err != nil {
		return nil, fmt.Errorf("category %s: %w", ruleB.Category, err)
	}

	normA := palette.NewNormalizer(totals.Max(domain.CategoryA))
	normB := palette.NewNormalizer(totals.Max(domain.CategoryB))

	year := totals.Year
	fig := &Figure{
		Year:   year,
		Title:  fmt.Sprintf(style.TitleFormat, year),
		Layout: NewLayout(style.Width, style.Height),
		Legends: [2]Legend{
			{Category: domain.CategoryA, Label: legendLabel(ruleA, "lower left"), Max: normA.Max(), Scale: scaleA},
			{Category: domain.CategoryB, Label: legendLabel(ruleB, "upper right"), Max: normB.Max(), Scale: scaleB},
		},
	}

	for i := range fig.Panels {
		month := time.January + time.Month(i)
		grid := calendar.MonthCells(year, month)
		panel := MonthPanel{
			Month: month,
			Title: month.String(),
			Cells: make([]CellState, len(grid)),
		}
		for j, gc := range grid {
			hours := totals.Get(time.Date(year, month, gc.Day, 0, 0, 0, 0, time.UTC))
			cs := CellState{
				GridCell:   gc,
				Hours:      hours,
				IntensityA: normA.Normalize(hours.A),
				IntensityB: normB.Normalize(hours.B),
				FillA:      hours.A > 0,
				FillB:      hours.B > 0,
			}
			if cs.FillA {
				cs.ColorA = scaleA(cs.IntensityA)
			}
			if cs.FillB {
				cs.ColorB = scaleB(cs.IntensityB)
			}
			panel.Cells[j] = cs
		}
		fig.Panels[i] = panel
	}
	return fig, nil
}

// Panel returns the panel of month.
func (f *Figure) Panel(month time.Month) MonthPanel {
	return f.Panels[month-1]
}

// Size returns the raster dimensions.
func (f *Figure) Size() (int, int) {
	return int(f.Layout.Canvas.W), int(f.Layout.Canvas.H)
}

// legendLabel names the category, its color and the half of the cell it fills,
// e.g. "Manuscript Hours (Blue, lower left)".
func legendLabel(rule domain.CategoryRule, corner string) string {
	return fmt.Sprintf("%s (%s, %s)", rule.Label, palette.DisplayName(rule.Palette), corner)
}
