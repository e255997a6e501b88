package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// Table is an aligned text table. Columns listed in RightAlign are padded
// on the left, which suits numeric columns.
type Table struct {
	Headers    []string
	Rows       [][]string
	RightAlign map[int]bool
}

// RenderTable renders a left-aligned table with a header separator line.
func RenderTable(headers []string, rows [][]string) string {
	return Table{Headers: headers, Rows: rows}.Render()
}

func (t Table) Render() string {
	cols := len(t.Headers)
	if cols == 0 {
		return ""
	}

	// Widths are measured on visible characters so styled cells line up.
	widths := make([]int, cols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < cols && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var b strings.Builder
	header := make([]string, cols)
	for i, h := range t.Headers {
		header[i] = StyleHeader.Render(h)
	}
	t.writeRow(&b, header, widths)

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range t.Rows {
		t.writeRow(&b, row, widths)
	}
	return b.String()
}

func (t Table) writeRow(b *strings.Builder, row []string, widths []int) {
	last := len(widths) - 1
	for i, w := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		pad := max(w-lipgloss.Width(cell), 0)
		switch {
		case t.RightAlign[i]:
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(cell)
		case i < last:
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", pad))
		default:
			b.WriteString(cell)
		}
		if i < last {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")
}
