package render

import (
	"math"
	"strconv"

	"github.com/fogleman/gg"
)

var legendInk = cellEdge

// drawLegend paints a horizontal color bar for one category with tick
// labels from Min to Max and the category label underneath.
func drawLegend(dc *gg.Context, r Rect, lg Legend, lineWidth float64, f *faces) {
	bar := Rect{X: r.X, Y: r.Y, W: r.W, H: 0.25 * r.H}

	steps := int(math.Ceil(bar.W))
	if steps < 1 {
		steps = 1
	}
	stepW := bar.W / float64(steps)
	for i := 0; i < steps; i++ {
		t := 0.0
		if steps > 1 {
			t = float64(i) / float64(steps-1)
		}
		// Overdraw by half a pixel so antialiased seams do not show.
		dc.DrawRectangle(bar.X+float64(i)*stepW, bar.Y, stepW+0.5, bar.H)
		dc.SetColor(lg.Scale(t))
		dc.Fill()
	}
	dc.DrawRectangle(bar.X, bar.Y, bar.W, bar.H)
	dc.SetColor(legendInk)
	dc.SetLineWidth(lineWidth)
	dc.Stroke()

	dc.SetFontFace(f.legend)
	span := lg.Max - lg.Min
	tickLen := 0.08 * r.H
	for _, v := range niceTicks(lg.Min, lg.Max, 6) {
		x := bar.X
		if span > 0 {
			x += (v - lg.Min) / span * bar.W
		}
		dc.DrawLine(x, bar.Bottom(), x, bar.Bottom()+tickLen)
		dc.SetColor(legendInk)
		dc.Stroke()
		dc.SetColor(dayLabelColor)
		dc.DrawStringAnchored(formatTick(v), x, bar.Bottom()+tickLen, 0.5, 1)
	}

	dc.SetColor(titleColor)
	dc.DrawStringAnchored(lg.Label, bar.X+bar.W/2, r.Bottom(), 0.5, 0)
}

// niceTicks returns round tick values covering [lo, hi] with at most about
// maxTicks entries, using steps of 1, 2 or 5 times a power of ten.
func niceTicks(lo, hi float64, maxTicks int) []float64 {
	if hi <= lo || maxTicks < 2 {
		return []float64{lo}
	}
	raw := (hi - lo) / float64(maxTicks-1)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	step := 10 * mag
	for _, m := range []float64{1, 2, 5} {
		if m*mag >= raw {
			step = m * mag
			break
		}
	}
	var ticks []float64
	start := math.Ceil(lo/step) * step
	for v := start; v <= hi+step*1e-9; v += step {
		// Snap away float drift so labels read 0.3, not 0.30000000000000004.
		ticks = append(ticks, math.Round(v/step)*step)
	}
	return ticks
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
