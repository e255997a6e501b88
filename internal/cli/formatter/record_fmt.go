package formatter

import (
	"fmt"

	"github.com/alexanderramin/effortcal/internal/domain"
)

// FormatRecords lists records in storage order.
func FormatRecords(records []*domain.TimeRecord, rules domain.CategoryRules) string {
	if len(records) == 0 {
		return Dim("No records found.") + "\n"
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			TruncID(r.ID),
			r.Date.Format(domain.DateLayout),
			fmt.Sprintf("%d", r.ProjectID),
			CategoryStyle(r.Category).Render(rules.Rule(r.Category).Label),
			FormatHours(r.Hours),
			Dim(Truncate(r.Note, 40)),
		})
	}
	return Table{
		Headers:    []string{"ID", "DATE", "PROJECT", "CATEGORY", "HOURS", "NOTE"},
		Rows:       rows,
		RightAlign: map[int]bool{2: true, 4: true},
	}.Render()
}

// FormatDeleted confirms a removed record.
func FormatDeleted(id string) string {
	return StyleRed.Render("✘ Deleted record") + " " + Dim(id) + "\n"
}
