package render

import (
	"image/color"
	"strconv"

	"github.com/fogleman/gg"
)

var (
	cellBackground = color.RGBA{0xf8, 0xf8, 0xf8, 0xff}
	cellEdge       = color.RGBA{0x80, 0x80, 0x80, 0xff}
	dayLabelColor  = color.RGBA{0x55, 0x55, 0x55, 0xff}
	diagonalColor  = color.NRGBA{0x00, 0x00, 0x00, 0x99}
)

// drawCell paints one day: background, the category A triangle below the
// diagonal, the category B triangle above it, the diagonal itself and the
// day number in the top-left corner.
func drawCell(dc *gg.Context, r Rect, cell CellState, lineWidth float64, f *faces) {
	dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	dc.SetColor(cellBackground)
	dc.Fill()

	if cell.FillA {
		// bottom-left, bottom-right, top-left
		fillTriangle(dc, r.X, r.Bottom(), r.Right(), r.Bottom(), r.X, r.Y, cell.ColorA)
	}
	if cell.FillB {
		// bottom-right, top-right, top-left
		fillTriangle(dc, r.Right(), r.Bottom(), r.Right(), r.Y, r.X, r.Y, cell.ColorB)
	}

	dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	dc.SetColor(cellEdge)
	dc.SetLineWidth(lineWidth)
	dc.Stroke()

	dc.DrawLine(r.X, r.Y, r.Right(), r.Bottom())
	dc.SetColor(diagonalColor)
	dc.SetLineWidth(lineWidth)
	dc.Stroke()

	dc.SetFontFace(f.day)
	dc.SetColor(dayLabelColor)
	dc.DrawStringAnchored(strconv.Itoa(cell.Day), r.X+0.05*r.W, r.Y+0.05*r.H, 0, 1)
}

func fillTriangle(dc *gg.Context, x1, y1, x2, y2, x3, y3 float64, c color.Color) {
	dc.NewSubPath()
	dc.MoveTo(x1, y1)
	dc.LineTo(x2, y2)
	dc.LineTo(x3, y3)
	dc.ClosePath()
	dc.SetColor(c)
	dc.Fill()
}
