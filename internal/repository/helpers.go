package repository

import (
	"fmt"
	"time"
)

// yearBounds returns the first and last day of year as inclusive bounds for
// range scans over date_dashed. The upper bound stays inside the year so
// 9999 does not spill into a five-digit year that sorts before it.
func yearBounds(year int, layout string) (string, string) {
	first := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return first.Format(layout), last.Format(layout)
}

// parseStoredTime parses a column written with layout, naming the column in
// the error.
func parseStoredTime(column, value, layout string) (time.Time, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", column, err)
	}
	return t, nil
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
