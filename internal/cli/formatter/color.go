package formatter

import (
	"github.com/alexanderramin/effortcal/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// CategoryStyle mirrors the default figure palettes: blue for the
// lower-left category, green for the upper-right one.
func CategoryStyle(c domain.Category) lipgloss.Style {
	switch c {
	case domain.CategoryA:
		return StyleBlue
	case domain.CategoryB:
		return StyleGreen
	default:
		return StyleDim
	}
}

// CategoryBadge renders a short colored category marker such as "◣ Manuscript Hours".
func CategoryBadge(c domain.Category, label string) string {
	marker := "◣"
	if c == domain.CategoryB {
		marker = "◥"
	}
	return CategoryStyle(c).Render(marker + " " + label)
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
