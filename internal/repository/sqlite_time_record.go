package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/effortcal/internal/db"
	"github.com/alexanderramin/effortcal/internal/domain"
)

const timeRecordColumns = `id, date_dashed, project_id, category, time_hr, note, created_at`

// SQLiteTimeRecordRepo implements TimeRecordRepo on the time_spent table.
type SQLiteTimeRecordRepo struct {
	db db.DBTX
}

// NewSQLiteTimeRecordRepo creates a repo over a database or a transaction.
func NewSQLiteTimeRecordRepo(db db.DBTX) *SQLiteTimeRecordRepo {
	return &SQLiteTimeRecordRepo{db: db}
}

func (r *SQLiteTimeRecordRepo) Create(ctx context.Context, rec *domain.TimeRecord) error {
	createdAt := nowUTC()
	if !rec.CreatedAt.IsZero() {
		createdAt = rec.CreatedAt.UTC().Format(time.RFC3339)
	}
	query := `INSERT INTO time_spent (` + timeRecordColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.Date.Format(domain.DateLayout),
		rec.ProjectID,
		string(rec.Category),
		rec.Hours,
		rec.Note,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("inserting time record: %w", err)
	}
	return nil
}

func (r *SQLiteTimeRecordRepo) GetByID(ctx context.Context, id string) (*domain.TimeRecord, error) {
	query := `SELECT ` + timeRecordColumns + ` FROM time_spent WHERE id = ?`
	rec, err := scanTimeRecord(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("time record %s: %w", id, ErrNotFound)
	}
	return rec, err
}

// ListByYear returns the records dated within year, oldest first.
func (r *SQLiteTimeRecordRepo) ListByYear(ctx context.Context, year int) ([]*domain.TimeRecord, error) {
	from, to := yearBounds(year, domain.DateLayout)
	query := `SELECT ` + timeRecordColumns + ` FROM time_spent
		WHERE date_dashed BETWEEN ? AND ?
		ORDER BY date_dashed, created_at`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing time records for %d: %w", year, err)
	}
	defer rows.Close()

	var records []*domain.TimeRecord
	for rows.Next() {
		rec, err := scanTimeRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating time records: %w", err)
	}
	return records, nil
}

// LatestDate returns the most recent recorded date, or ErrNotFound on an
// empty table.
func (r *SQLiteTimeRecordRepo) LatestDate(ctx context.Context) (time.Time, error) {
	var latest sql.NullString
	if err := r.db.QueryRowContext(ctx, `SELECT MAX(date_dashed) FROM time_spent`).Scan(&latest); err != nil {
		return time.Time{}, fmt.Errorf("querying latest date: %w", err)
	}
	if !latest.Valid {
		return time.Time{}, fmt.Errorf("latest date: %w", ErrNotFound)
	}
	return parseStoredTime("date_dashed", latest.String, domain.DateLayout)
}

// SummaryByMonth rolls up hours per month and category for year. Months
// without records are omitted.
func (r *SQLiteTimeRecordRepo) SummaryByMonth(ctx context.Context, year int) ([]MonthCategoryTotal, error) {
	from, to := yearBounds(year, domain.DateLayout)
	query := `SELECT CAST(strftime('%m', date_dashed) AS INTEGER) AS month,
			category,
			SUM(time_hr),
			COUNT(DISTINCT date_dashed)
		FROM time_spent
		WHERE date_dashed BETWEEN ? AND ? AND time_hr > 0
		GROUP BY month, category
		ORDER BY month, category DESC`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("summarizing %d by month: %w", year, err)
	}
	defer rows.Close()

	var out []MonthCategoryTotal
	for rows.Next() {
		var month int
		var category string
		var row MonthCategoryTotal
		if err := rows.Scan(&month, &category, &row.Hours, &row.Days); err != nil {
			return nil, fmt.Errorf("scanning month summary: %w", err)
		}
		row.Month = time.Month(month)
		row.Category = domain.Category(category)
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating month summary: %w", err)
	}
	return out, nil
}

func (r *SQLiteTimeRecordRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM time_spent WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting time record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting time record: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("time record %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTimeRecord(row rowScanner) (*domain.TimeRecord, error) {
	var rec domain.TimeRecord
	var dateStr, category, createdAtStr string
	err := row.Scan(&rec.ID, &dateStr, &rec.ProjectID, &category, &rec.Hours, &rec.Note, &createdAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning time record: %w", err)
	}
	rec.Category = domain.Category(category)
	if rec.Date, err = parseStoredTime("date_dashed", dateStr, domain.DateLayout); err != nil {
		return nil, err
	}
	if rec.CreatedAt, err = parseStoredTime("created_at", createdAtStr, time.RFC3339); err != nil {
		return nil, err
	}
	return &rec, nil
}
