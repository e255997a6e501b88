package render

import "github.com/alexanderramin/effortcal/internal/calendar"

const (
	panelRows = 3
	panelCols = 4
)

// Rect is an axis-aligned box in canvas pixels, origin top-left.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether r and o share any interior area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Within reports whether r lies entirely inside o.
func (r Rect) Within(o Rect) bool {
	return r.X >= o.X && r.Y >= o.Y && r.Right() <= o.Right() && r.Bottom() <= o.Bottom()
}

// Layout holds the canvas regions of a figure. Panels are in month order,
// four per row.
type Layout struct {
	Canvas  Rect
	Title   Rect
	Panels  [12]Rect
	Legends [2]Rect
}

// NewLayout splits a width x height canvas into a title band, a 3x4 block of
// month panels and a legend band holding two side-by-side legends.
func NewLayout(width, height int) Layout {
	w, h := float64(width), float64(height)
	l := Layout{Canvas: Rect{W: w, H: h}}

	marginX := 0.02 * w
	l.Title = Rect{X: marginX, Y: 0.01 * h, W: w - 2*marginX, H: 0.05 * h}

	gutterX := 0.025 * w
	gutterY := 0.03 * h
	top := l.Title.Bottom() + 0.01*h
	bottom := 0.86 * h
	panelW := (w - 2*marginX - gutterX*(panelCols-1)) / panelCols
	panelH := (bottom - top - gutterY*(panelRows-1)) / panelRows
	for i := range l.Panels {
		row, col := i/panelCols, i%panelCols
		l.Panels[i] = Rect{
			X: marginX + float64(col)*(panelW+gutterX),
			Y: top + float64(row)*(panelH+gutterY),
			W: panelW,
			H: panelH,
		}
	}

	legendY := bottom + 0.03*h
	legendH := h - legendY - 0.01*h
	l.Legends[0] = Rect{X: 0.15 * w, Y: legendY, W: 0.30 * w, H: legendH}
	l.Legends[1] = Rect{X: 0.55 * w, Y: legendY, W: 0.30 * w, H: legendH}
	return l
}

// panelGeometry splits one month panel into its title, weekday header and
// the 6x7 day grid.
type panelGeometry struct {
	title  Rect
	header Rect
	grid   Rect
}

func newPanelGeometry(panel Rect) panelGeometry {
	titleH := 0.13 * panel.H
	headerH := 0.09 * panel.H
	return panelGeometry{
		title:  Rect{X: panel.X, Y: panel.Y, W: panel.W, H: titleH},
		header: Rect{X: panel.X, Y: panel.Y + titleH, W: panel.W, H: headerH},
		grid:   Rect{X: panel.X, Y: panel.Y + titleH + headerH, W: panel.W, H: panel.H - titleH - headerH},
	}
}

func (g panelGeometry) cellW() float64 { return g.grid.W / calendar.WeekdayCols }
func (g panelGeometry) cellH() float64 { return g.grid.H / calendar.WeekRows }

// cell returns the box of a grid cell. Row 0 is the top week.
func (g panelGeometry) cell(c calendar.GridCell) Rect {
	return Rect{
		X: g.grid.X + float64(c.WeekdayCol)*g.cellW(),
		Y: g.grid.Y + float64(c.WeekRow)*g.cellH(),
		W: g.cellW(),
		H: g.cellH(),
	}
}

// headerCell returns the box of weekday label col above the grid.
func (g panelGeometry) headerCell(col int) Rect {
	return Rect{X: g.grid.X + float64(col)*g.cellW(), Y: g.header.Y, W: g.cellW(), H: g.header.H}
}
