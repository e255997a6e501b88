package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/alexanderramin/effortcal/internal/calendar"
	"github.com/fogleman/gg"
)

var titleColor = color.RGBA{0x22, 0x22, 0x22, 0xff}

// Draw rasterizes the figure. The same figure always produces the same pixels.
func (f *Figure) Draw() (image.Image, error) {
	dc, err := f.draw()
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// EncodePNG rasterizes the figure and writes it to w as PNG.
func (f *Figure) EncodePNG(w io.Writer) error {
	dc, err := f.draw()
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

func (f *Figure) draw() (*gg.Context, error) {
	width, height := f.Size()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid figure size %dx%d", width, height)
	}
	ff, err := newFaces(f.Layout)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	lineWidth := math.Max(1, float64(height)/3000)

	dc.SetFontFace(ff.title)
	dc.SetColor(titleColor)
	t := f.Layout.Title
	dc.DrawStringAnchored(f.Title, t.X+t.W/2, t.Y+t.H/2, 0.5, 0.5)

	for i, panel := range f.Panels {
		drawPanel(dc, f.Layout.Panels[i], panel, lineWidth, ff)
	}
	for i, lg := range f.Legends {
		drawLegend(dc, f.Layout.Legends[i], lg, lineWidth, ff)
	}
	return dc, nil
}

func drawPanel(dc *gg.Context, r Rect, p MonthPanel, lineWidth float64, f *faces) {
	g := newPanelGeometry(r)

	dc.SetFontFace(f.month)
	dc.SetColor(titleColor)
	dc.DrawStringAnchored(p.Title, g.title.X+g.title.W/2, g.title.Y+g.title.H/2, 0.5, 0.5)

	dc.SetFontFace(f.weekday)
	for col, label := range calendar.WeekdayLabels {
		h := g.headerCell(col)
		dc.DrawStringAnchored(label, h.X+h.W/2, h.Y+h.H/2, 0.5, 0.5)
	}

	for _, cell := range p.Cells {
		drawCell(dc, g.cell(cell.GridCell), cell, lineWidth, f)
	}
}
