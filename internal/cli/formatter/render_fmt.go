package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/effortcal/internal/domain"
	"github.com/alexanderramin/effortcal/internal/service"
)

// FormatRenderResult is the one-line report printed after a figure is written.
func FormatRenderResult(res *service.RenderResult, rules domain.CategoryRules) string {
	parts := []string{
		fmt.Sprintf("%d", res.Year),
		Plural(res.ActiveDays, "day"),
	}
	for _, c := range domain.Categories {
		parts = append(parts, fmt.Sprintf("%s %s (max %s)",
			CategoryStyle(c).Render(rules.Rule(c).Label),
			FormatHours(res.Totals.Of(c)),
			FormatHours(res.Max.Of(c))))
	}
	out := fmt.Sprintf("%s %s  %s\n",
		StyleGreen.Render("✔ Wrote"), Bold(res.OutPath), Dim(strings.Join(parts, " · ")))
	if res.ActiveDays == 0 {
		out += StyleYellow.Render(fmt.Sprintf("! No hours recorded in %d; every cell is blank.", res.Year)) + "\n"
	}
	return out
}
