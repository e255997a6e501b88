package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/effortcal/internal/domain"
	"github.com/alexanderramin/effortcal/internal/service"
)

const summaryBarWidth = 16

// FormatSummary renders a per-month table with one bar per category. Bars
// are scaled to the busiest month of each category independently, the same
// way the calendar scales its two colormaps.
func FormatSummary(sum *service.YearSummary) string {
	ruleA := sum.Rules.Rule(domain.CategoryA)
	ruleB := sum.Rules.Rule(domain.CategoryB)

	var peak domain.DayHours
	for _, m := range sum.Months {
		peak.A = max(peak.A, m.Hours.A)
		peak.B = max(peak.B, m.Hours.B)
	}

	rows := make([][]string, 0, len(sum.Months))
	for _, m := range sum.Months {
		rows = append(rows, []string{
			m.Month.String()[:3],
			FormatHours(m.Hours.A),
			RenderBar(m.Hours.A, peak.A, summaryBarWidth, CategoryStyle(domain.CategoryA)),
			Dim(fmt.Sprintf("%dd", m.DaysA)),
			FormatHours(m.Hours.B),
			RenderBar(m.Hours.B, peak.B, summaryBarWidth, CategoryStyle(domain.CategoryB)),
			Dim(fmt.Sprintf("%dd", m.DaysB)),
		})
	}
	table := Table{
		Headers:    []string{"MONTH", strings.ToUpper(ruleA.Label), "", "DAYS", strings.ToUpper(ruleB.Label), "", "DAYS"},
		Rows:       rows,
		RightAlign: map[int]bool{1: true, 3: true, 4: true, 6: true},
	}

	var b strings.Builder
	b.WriteString(table.Render())
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %s   %s  %s\n",
		CategoryBadge(domain.CategoryA, ruleA.Label), Bold(FormatHours(sum.Totals.A)),
		CategoryBadge(domain.CategoryB, ruleB.Label), Bold(FormatHours(sum.Totals.B)))

	return RenderBox(fmt.Sprintf("Effort %d", sum.Year), b.String())
}
