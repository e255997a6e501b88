package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies the schema. Every statement is idempotent so it runs on
// each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS time_spent (
		id          TEXT PRIMARY KEY,
		date_dashed TEXT NOT NULL,
		project_id  INTEGER NOT NULL DEFAULT 0,
		category    TEXT NOT NULL
		            CHECK(category IN ('manuscript','grant')),
		time_hr     REAL NOT NULL CHECK(time_hr >= 0),
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_time_spent_date ON time_spent(date_dashed)`,
	`CREATE INDEX IF NOT EXISTS idx_time_spent_category ON time_spent(category, date_dashed)`,

	// Free-form note per record
	`ALTER TABLE time_spent ADD COLUMN note TEXT NOT NULL DEFAULT ''`,
}
