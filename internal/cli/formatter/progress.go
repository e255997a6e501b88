package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBar renders value relative to max as a bar of width cells, e.g.
// ████░░░░. Any positive value gets at least one filled cell so small days
// stay visible next to large ones.
func RenderBar(value, max float64, width int, style lipgloss.Style) string {
	if width < 2 {
		width = 2
	}
	filled := barCells(value, max, width)
	bar := style.Render(strings.Repeat(filledBlock, filled))
	return bar + StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
}

func barCells(value, max float64, width int) int {
	if value <= 0 || max <= 0 {
		return 0
	}
	frac := value / max
	if frac > 1 {
		frac = 1
	}
	filled := int(frac*float64(width) + 0.5)
	if filled == 0 {
		filled = 1
	}
	return filled
}
