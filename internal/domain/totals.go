package domain

import "time"

// DayHours holds the hours of both categories for one day.
type DayHours struct {
	A float64
	B float64
}

// Of returns the hours recorded for c.
func (h DayHours) Of(c Category) float64 {
	if c == CategoryB {
		return h.B
	}
	return h.A
}

func (h DayHours) Empty() bool {
	return h.A <= 0 && h.B <= 0
}

// DailyTotals maps civil dates of a single year to their category hours.
// Dates without an entry count as zero in both categories.
type DailyTotals struct {
	Year int
	Days map[time.Time]DayHours
}

func NewDailyTotals(year int) DailyTotals {
	return DailyTotals{Year: year, Days: make(map[time.Time]DayHours)}
}

// Get returns the hours for date, defaulting to zero.
func (t DailyTotals) Get(date time.Time) DayHours {
	return t.Days[CivilDate(date)]
}

// Add accumulates hours for c on date.
func (t DailyTotals) Add(date time.Time, c Category, hours float64) {
	key := CivilDate(date)
	h := t.Days[key]
	if c == CategoryB {
		h.B += hours
	} else {
		h.A += hours
	}
	t.Days[key] = h
}

// Max returns the largest single-day value of c across the year.
func (t DailyTotals) Max(c Category) float64 {
	var m float64
	for _, h := range t.Days {
		if v := h.Of(c); v > m {
			m = v
		}
	}
	return m
}

// Sum returns the year total of c.
func (t DailyTotals) Sum(c Category) float64 {
	var s float64
	for _, h := range t.Days {
		s += h.Of(c)
	}
	return s
}

// ActiveDays counts the days with any hours recorded.
func (t DailyTotals) ActiveDays() int {
	n := 0
	for _, h := range t.Days {
		if !h.Empty() {
			n++
		}
	}
	return n
}

// MonthTotal sums both categories over one month.
type MonthTotal struct {
	Month time.Month
	Hours DayHours
	Days  int
}
