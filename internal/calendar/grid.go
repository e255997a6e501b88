// Package calendar places the days of a month on a Monday-first week grid.
package calendar

import (
	"fmt"
	"time"
)

const (
	// WeekRows is enough rows for any month: a 31-day month starting on
	// Sunday spans exactly six weeks.
	WeekRows    = 6
	WeekdayCols = 7
)

// WeekdayLabels are the column headers, Monday first.
var WeekdayLabels = [WeekdayCols]string{"M", "T", "W", "T", "F", "S", "S"}

// GridCell addresses one calendar day inside its month panel.
type GridCell struct {
	Month      time.Month
	WeekRow    int
	WeekdayCol int
	Day        int
}

// Index is the cell's position in row-major order within the panel.
func (c GridCell) Index() int {
	return c.WeekRow*WeekdayCols + c.WeekdayCol
}

// IsLeap reports whether year has a February 29 in the Gregorian calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the length of month in year.
func DaysInMonth(year int, month time.Month) int {
	mustMonth(month)
	if month == time.February && IsLeap(year) {
		return 29
	}
	return monthDays[month-1]
}

// FirstWeekday returns the weekday of the 1st of the month, 0=Monday..6=Sunday.
func FirstWeekday(year int, month time.Month) int {
	mustMonth(month)
	wd := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
	return (int(wd) + 6) % 7
}

// Place maps day of month to its grid cell. Asking for a day the month does
// not have is a caller bug and panics.
func Place(year int, month time.Month, day int) GridCell {
	if n := DaysInMonth(year, month); day < 1 || day > n {
		panic(fmt.Sprintf("calendar: day %d out of range for %d-%02d (1..%d)", day, year, month, n))
	}
	offset := FirstWeekday(year, month) + day - 1
	return GridCell{
		Month:      month,
		WeekRow:    offset / WeekdayCols,
		WeekdayCol: offset % WeekdayCols,
		Day:        day,
	}
}

// MonthCells returns one cell per day of the month in day order.
func MonthCells(year int, month time.Month) []GridCell {
	n := DaysInMonth(year, month)
	first := FirstWeekday(year, month)
	cells := make([]GridCell, n)
	for day := 1; day <= n; day++ {
		offset := first + day - 1
		cells[day-1] = GridCell{
			Month:      month,
			WeekRow:    offset / WeekdayCols,
			WeekdayCol: offset % WeekdayCols,
			Day:        day,
		}
	}
	return cells
}

func mustMonth(month time.Month) {
	if month < time.January || month > time.December {
		panic(fmt.Sprintf("calendar: month %d out of range", month))
	}
}
