package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/effortcal/internal/db"
)

// FailingInsertUoW runs real transactions but makes the Nth write inside
// each transaction fail with Err. Reads are untouched.
type FailingInsertUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error
}

func (u *FailingInsertUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(ctx, &failingWrites{DBTX: tx, failOn: u.FailOn, err: u.Err}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type failingWrites struct {
	db.DBTX
	writes int
	failOn int
	err    error
}

func (f *failingWrites) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.writes++
	if f.writes == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
