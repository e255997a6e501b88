package domain

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// DateLayout is the storage and CLI format for calendar dates.
const DateLayout = "2006-01-02"

var (
	ErrNegativeHours  = errors.New("hours must not be negative")
	ErrNonFiniteHours = errors.New("hours must be a finite number")
)

// TimeRecord is one tracked stretch of work on a single day.
type TimeRecord struct {
	ID        string
	Date      time.Time
	ProjectID int
	Category  Category
	Hours     float64
	Note      string
	CreatedAt time.Time
}

// Validate rejects records the aggregation cannot accept.
func (r *TimeRecord) Validate() error {
	if !r.Category.Valid() {
		return fmt.Errorf("record %s: %w", r.Date.Format(DateLayout), ErrUnknownCategory)
	}
	if math.IsNaN(r.Hours) || math.IsInf(r.Hours, 0) {
		return fmt.Errorf("record %s: %w", r.Date.Format(DateLayout), ErrNonFiniteHours)
	}
	if r.Hours < 0 {
		return fmt.Errorf("record %s: %w", r.Date.Format(DateLayout), ErrNegativeHours)
	}
	if r.Date.IsZero() {
		return errors.New("record date is required")
	}
	return nil
}

// CivilDate truncates t to midnight UTC of its calendar day, keeping the
// wall-clock date regardless of t's location.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a civil date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}
