package testutil

import (
	"time"

	"github.com/alexanderramin/effortcal/internal/domain"
	"github.com/google/uuid"
)

// Date is a civil date at UTC midnight.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// RecordOption customizes a fixture record.
type RecordOption func(*domain.TimeRecord)

func WithProject(id int) RecordOption {
	return func(r *domain.TimeRecord) {
		r.ProjectID = id
	}
}

func WithNote(note string) RecordOption {
	return func(r *domain.TimeRecord) {
		r.Note = note
	}
}

func WithCreatedAt(t time.Time) RecordOption {
	return func(r *domain.TimeRecord) {
		r.CreatedAt = t
	}
}

// NewTestRecord builds a valid record. The project ID defaults to the first
// project of the category's default range.
func NewTestRecord(date time.Time, c domain.Category, hours float64, opts ...RecordOption) *domain.TimeRecord {
	project := 1
	if c == domain.CategoryB {
		project = 1001
	}
	r := &domain.TimeRecord{
		ID:        uuid.New().String(),
		Date:      date,
		ProjectID: project,
		Category:  c,
		Hours:     hours,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
