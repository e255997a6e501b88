// Package aggregate reduces raw time records into per-day category totals.
package aggregate

import (
	"time"

	"github.com/alexanderramin/effortcal/internal/domain"
)

// Daily sums records falling in year into DailyTotals. Duplicate records for
// the same date and category are added together; records from other years
// are ignored.
func Daily(records []*domain.TimeRecord, year int) domain.DailyTotals {
	totals := domain.NewDailyTotals(year)
	for _, r := range records {
		if r == nil || r.Date.Year() != year {
			continue
		}
		totals.Add(r.Date, r.Category, r.Hours)
	}
	return totals
}

// Monthly folds DailyTotals into twelve month totals, January first.
func Monthly(totals domain.DailyTotals) [12]domain.MonthTotal {
	var months [12]domain.MonthTotal
	for i := range months {
		months[i].Month = time.January + time.Month(i)
	}
	for date, h := range totals.Days {
		m := &months[date.Month()-1]
		m.Hours.A += h.A
		m.Hours.B += h.B
		if !h.Empty() {
			m.Days++
		}
	}
	return months
}
